package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Szelwin/qrGenerator/api"
	"github.com/Szelwin/qrGenerator/config"
	"github.com/Szelwin/qrGenerator/sheet"
)

var version = "v1.0.0"

func main() {
	root := &cobra.Command{
		Use:   "qrgen",
		Short: "Generate Word documents filled with sequential QR codes",
	}

	// --- generate command ----------------------------------------------------
	var generateConfigPath string
	generateCmd := &cobra.Command{
		Use:   "generate <start> <end_exclusive> [output_path]",
		Short: "Generate a .docx of QR codes for the half-open range [start, end)",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(generateConfigPath, args)
		},
		SilenceUsage: true,
	}
	generateCmd.Flags().StringVarP(&generateConfigPath, "config", "c", "config.yaml", "Path to config file")
	root.AddCommand(generateCmd)

	// --- serve command -------------------------------------------------------
	var serveConfigPath string
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web front end for interactive generation",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(serveConfigPath)
		},
		SilenceUsage: true,
	}
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "config.yaml", "Path to config file")
	root.AddCommand(serveCmd)

	// --- version command -----------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("qrgen %s\n", version)
		},
	})

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the process logger from the configured level.
func newLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(log)
	return log
}

// runGenerate is the single-shot CLI entrypoint: parse the range, build
// the document, save it.
func runGenerate(configPath string, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := newLogger(cfg.LogLevel)

	start, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid start %q: not an integer", args[0])
	}
	end, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid end %q: not an integer", args[1])
	}

	outputPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("QR_%d_%d.docx", start, end))
	if len(args) == 3 {
		outputPath = args[2]
	}

	if err := sheet.GenerateFile(start, end, outputPath, cfg.Layout()); err != nil {
		if errors.Is(err, sheet.ErrEmptyRange) {
			return fmt.Errorf("invalid range [%d, %d): %w", start, end, err)
		}
		return err
	}

	log.Info("document written",
		"path", outputPath,
		"codes", end-start,
		"tables", len(sheet.Chunks(start, end, cfg.ChunkSize)))
	fmt.Printf("Saved %s\n", outputPath)
	return nil
}

// runServe starts the web front end and blocks until shutdown.
func runServe(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	log := newLogger(cfg.LogLevel)

	log.Info("starting qrgen", "version", version, "port", cfg.Port)

	srv := &http.Server{
		Addr: fmt.Sprintf(":%d", cfg.Port),
		Handler: api.NewRouter(&api.Server{
			Layout:    cfg.Layout(),
			Log:       log,
			Version:   version,
			StartTime: time.Now(),
		}),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	log.Info("web front end is running", "url", fmt.Sprintf("http://localhost:%d/", cfg.Port))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	log.Info("goodbye")
	return nil
}
