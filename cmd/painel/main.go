package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/victorcosta213/DashBoard-Apresentacao/internal/config"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/importer"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/logging"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/server"
	"github.com/victorcosta213/DashBoard-Apresentacao/internal/util"
)

var (
	port       = flag.Int("port", 0, "HTTP port (overrides config and PAINEL_PORT)")
	devMode    = flag.Bool("dev", false, "development mode")
	rosterPath = flag.String("roster", "", "roster file (CSV/XLSX) loaded at startup")
	configPath = flag.String("config", "", "config file (.toml, .yaml); default config.toml next to the executable")
)

func main() {
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Printf("failed to load .env: %v", err)
	}

	// config file, then env
	cfg, info, err := config.LoadConfigWithInfo(*configPath)
	if err != nil {
		log.Printf("failed to load config, using defaults: %v", err)
		cfg = config.DefaultConfig()
		info = config.LoadConfigInfo{}
	}

	// flags win
	if err := cfg.ApplyOverrides(config.Overrides{
		Port:       *port,
		DevMode:    *devMode,
		RosterPath: *rosterPath,
	}); err != nil {
		log.Fatalf("invalid command-line flags: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Printf("failed to build logger, using production defaults: %v", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Sugar().Infow("starting painel",
		"config", info.Path,
		"port", cfg.Server.Port,
		"timezone", cfg.Dashboard.Timezone,
		"devMode", cfg.Server.DevMode,
	)

	srv := server.NewServer(cfg, logger)

	if cfg.Data.RosterPath != "" {
		loadRoster(srv.Importer(), cfg.Data.RosterPath, cfg.Data.Sheet, logger)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Run()
	}()

	url := fmt.Sprintf("http://localhost:%d/api/status", cfg.Server.Port)
	if cfg.Server.OpenBrowser && !cfg.Server.DevMode {
		if err := util.OpenBrowser(url); err != nil {
			logger.Sugar().Infow("could not open a browser", "url", url, "error", err)
		}
	}

	select {
	case err := <-errCh:
		if err != nil {
			logger.Fatal("server failed", zap.Error(err))
		}
		return
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownDuration())
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// loadRoster imports the startup roster; failure leaves the server empty
func loadRoster(imp *importer.Coordinator, path, sheet string, logger *zap.Logger) {
	f, err := os.Open(path)
	if err != nil {
		logger.Warn("startup roster not loaded", zap.String("path", path), zap.Error(err))
		return
	}
	defer f.Close()

	if _, err := imp.Import(importer.ImportOptions{Name: path, Reader: f, Sheet: sheet}); err != nil {
		logger.Warn("startup roster not loaded", zap.String("path", path), zap.Error(err))
	}
}
