package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/config"
	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/content"
	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/model"
	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/render"
)

// buildCmd represents the build command
var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Builds the static portfolio page",
	Long: `The build command loads every section from the content directory, renders
the portfolio page (using './layouts/page.html' when present), copies static
assets into '<outputDir>/static/' and writes index.html plus a content.json
snapshot of the normalized content to the output directory (default './public/').`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBuild(cmd.Context(), appConfig, conventionalLayoutsDir, logger)
	},
}

func runBuild(ctx context.Context, cfg config.Config, layoutsDir string, log *slog.Logger) error {
	log.Info("starting build", "contentDir", cfg.ContentDir, "outputDir", cfg.OutputDir, "baseURL", cfg.BaseURL)

	if _, err := os.Stat(cfg.ContentDir); os.IsNotExist(err) {
		log.Warn("content directory not found, every section will use defaults", "dir", cfg.ContentDir)
	}

	renderer, err := render.New(layoutsDir)
	if err != nil {
		return fmt.Errorf("failed to load layouts: %w", err)
	}

	store := content.Open(cfg.ContentDir, log)
	portfolio := store.LoadAll(ctx)
	if portfolio.Degraded {
		log.Warn("content could not be fully loaded, building minimal page")
	}
	if issues := portfolio.Issues(); len(issues) > 0 {
		log.Warn("content has validation issues", "count", len(issues))
	}

	outputDir := cfg.OutputDir
	log.Debug("cleaning output directory", "dir", outputDir)
	if err := os.RemoveAll(outputDir); err != nil {
		return fmt.Errorf("failed to remove output directory '%s': %w", outputDir, err)
	}
	if err := os.MkdirAll(outputDir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create output directory '%s': %w", outputDir, err)
	}

	if cfg.StaticDir != "" {
		if _, err := os.Stat(cfg.StaticDir); err == nil {
			dst := filepath.Join(outputDir, "static")
			if err := copyDirContents(cfg.StaticDir, dst); err != nil {
				return fmt.Errorf("failed to copy static assets: %w", err)
			}
			log.Debug("static assets copied", "from", cfg.StaticDir, "to", dst)
		} else {
			log.Debug("static directory not found, skipping copy", "dir", cfg.StaticDir)
		}
	}

	page := model.PageData{
		SiteTitle: cfg.SiteTitle,
		BaseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
		Portfolio: portfolio,
	}
	if err := writeFile(filepath.Join(outputDir, "index.html"), func(w io.Writer) error {
		return renderer.Render(w, page)
	}); err != nil {
		return err
	}

	if err := writeFile(filepath.Join(outputDir, "content.json"), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(portfolio)
	}); err != nil {
		return err
	}

	log.Info("build completed", "outputDir", outputDir)
	return nil
}

// writeFile creates path and fills it with fill, reporting close errors.
func writeFile(path string, fill func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create '%s': %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close '%s': %w", path, cerr)
		}
	}()
	if err := fill(f); err != nil {
		return fmt.Errorf("failed to write '%s': %w", path, err)
	}
	return nil
}

// copyDirContents recursively copies the files and directories under src into dst.
func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relPath, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %s: %w", path, err)
		}
		dstPath := filepath.Join(dst, relPath)

		if d.IsDir() {
			// New directories get os.ModePerm filtered by umask, not the source mode.
			if err := os.MkdirAll(dstPath, os.ModePerm); err != nil {
				return fmt.Errorf("failed to create directory %s: %w", dstPath, err)
			}
			return nil
		}
		if err := copyFile(path, dstPath); err != nil {
			return fmt.Errorf("failed to copy file from %s to %s: %w", path, dstPath, err)
		}
		return nil
	})
}

func copyFile(srcFile, dstFile string) error {
	srcF, err := os.Open(srcFile)
	if err != nil {
		return fmt.Errorf("failed to open source file %s: %w", srcFile, err)
	}
	defer srcF.Close()

	info, err := srcF.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source file %s: %w", srcFile, err)
	}

	if err := os.MkdirAll(filepath.Dir(dstFile), os.ModePerm); err != nil {
		return fmt.Errorf("failed to create destination directory for %s: %w", dstFile, err)
	}

	dstF, err := os.OpenFile(dstFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create destination file %s: %w", dstFile, err)
	}
	if _, err := io.Copy(dstF, srcF); err != nil {
		dstF.Close()
		return fmt.Errorf("failed to copy data from %s to %s: %w", srcFile, dstFile, err)
	}
	return dstF.Close()
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
