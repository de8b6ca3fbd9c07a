package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/config"
	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/content"
	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/logging"
)

const conventionalLayoutsDir = "layouts"

var (
	cfgFile   string
	appConfig config.Config
	logger    = slog.Default()
	logCloser io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Academic portfolio site built from front-matter content files",
	Long: `portfolio reads one markdown file per section (bio, research, publications,
projects, teaching, seminars, experience) from the content directory and
renders them as a single-page academic portfolio, either as a static build
or from a local server.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
}

func Execute() {
	err := rootCmd.Execute()
	if logCloser != nil {
		logCloser.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().String("content", "", "content directory (default is ./content)")
}

func initializeConfig(cmd *cobra.Command) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	v := viper.New()

	v.SetDefault("siteTitle", "Academic Portfolio")
	v.SetDefault("baseURL", "")
	v.SetDefault("contentDir", "content")
	v.SetDefault("staticDir", "static")
	v.SetDefault("outputDir", "public")
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", 1313)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.filePath", "")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("PORTFOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlag("contentDir", cmd.Flags().Lookup("content")); err != nil {
		return fmt.Errorf("failed to bind content flag: %w", err)
	}

	configUsed := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
		if cfgFile != "" {
			return fmt.Errorf("config file %s not found: %w", cfgFile, err)
		}
	} else {
		configUsed = v.ConfigFileUsed()
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}

	l, closer, err := logging.New(appConfig)
	if err != nil {
		return fmt.Errorf("failed to initialise logging: %w", err)
	}
	logger, logCloser = l, closer

	if configUsed != "" {
		logger.Debug("using config file", "path", configUsed)
	} else {
		logger.Debug("no config file found, using defaults and environment")
	}
	return nil
}

func openStore() *content.Store {
	return content.Open(appConfig.ContentDir, logger)
}
