package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/content"
	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/render"
	"github.com/LyuPeng-star/lyupeng-star.github.io/internal/server"
)

const debounceDuration = 500 * time.Millisecond

var serverPort int

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the portfolio locally and watches the content directory",
	Long: `The serve command starts a local web server that renders the portfolio page
from the content directory on every request, together with a small JSON API
(/api/content, /api/search, /api/diagnostics). Content files are watched and
each change is validated and reported in the log.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		port := appConfig.Server.Port
		if cmd.Flags().Changed("port") {
			port = serverPort
		}

		renderer, err := render.New(conventionalLayoutsDir)
		if err != nil {
			return fmt.Errorf("failed to load layouts: %w", err)
		}
		store := openStore()

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		watcher, err := watchContent(ctx, appConfig.ContentDir, store, logger)
		if err != nil {
			logger.Warn("content watcher disabled", "error", err)
		} else {
			defer watcher.Close()
		}

		srv := &http.Server{
			Addr: net.JoinHostPort(appConfig.Server.Host, strconv.Itoa(port)),
			Handler: server.New(store, renderer, server.Options{
				SiteTitle: appConfig.SiteTitle,
				BaseURL:   appConfig.BaseURL,
				StaticDir: appConfig.StaticDir,
				Logger:    logger,
			}).Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("serving portfolio", "addr", "http://"+displayAddr(srv.Addr), "contentDir", appConfig.ContentDir)
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("failed to start HTTP server: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

// watchContent logs a validation summary whenever files under dir change.
// Bursts of events are collapsed into one report.
func watchContent(ctx context.Context, dir string, store *content.Store, log *slog.Logger) (*fsnotify.Watcher, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("content directory '%s': %w", dir, err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}

	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			log.Warn("error walking content directory", "path", path, "error", err)
			return nil
		}
		if d.IsDir() {
			if err := watcher.Add(path); err != nil {
				log.Warn("failed to watch directory", "path", path, "error", err)
			}
		}
		return nil
	})
	if err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		var timer *time.Timer
		for {
			select {
			case <-ctx.Done():
				if timer != nil {
					timer.Stop()
				}
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}
				log.Debug("content change detected", "path", event.Name, "op", event.Op.String())

				if event.Has(fsnotify.Create) && isDir(event.Name) {
					if err := watcher.Add(event.Name); err != nil {
						log.Warn("failed to watch new directory", "path", event.Name, "error", err)
					}
				}

				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounceDuration, func() {
					reportStats(store, log)
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error("watcher error", "error", err)
			}
		}
	}()
	return watcher, nil
}

func reportStats(store *content.Store, log *slog.Logger) {
	st := store.Stats()
	if len(st.Invalid) > 0 {
		log.Warn("content reloaded with invalid files", "total", st.Total, "valid", st.Valid, "invalid", st.Invalid)
		return
	}
	log.Info("content reloaded", "total", st.Total, "valid", st.Valid)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func displayAddr(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil || host != "" {
		return addr
	}
	return net.JoinHostPort("localhost", port)
}

func init() {
	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 1313, "port to serve the site on (overrides server.port)")
	rootCmd.AddCommand(serveCmd)
}
