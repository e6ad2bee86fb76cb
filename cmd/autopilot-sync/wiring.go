package main

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/autopilot-sync/infrastructure/database/postgres"
	"github.com/vfg2006/autopilot-sync/infrastructure/integrator/autopilot/autopilotclient"
	"github.com/vfg2006/autopilot-sync/infrastructure/integrator/sheets"
	"github.com/vfg2006/autopilot-sync/infrastructure/lock"
	"github.com/vfg2006/autopilot-sync/infrastructure/migration"
	"github.com/vfg2006/autopilot-sync/infrastructure/repository"
	"github.com/vfg2006/autopilot-sync/internal/config"
	"github.com/vfg2006/autopilot-sync/internal/observability"
	"github.com/vfg2006/autopilot-sync/internal/usecases/mirroring"
	"github.com/vfg2006/autopilot-sync/internal/usecases/settings"
	"github.com/vfg2006/autopilot-sync/pkg/log"
)

// loadConfig carrega a configuração e ajusta o logger
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewConfig()
	if err != nil {
		return nil, err
	}

	if logLevel != "" {
		cfg.App.LogLevel = logLevel
	}
	log.Configure(cfg.App.LogLevel)
	observability.Register()

	return cfg, nil
}

// newOpener usa o arquivo local quando informado, senão o Google Sheets com repetição em 503
func newOpener(ctx context.Context, cfg *config.Config, xlsxPath string) (sheets.Opener, error) {
	if xlsxPath != "" {
		logrus.WithField("file", xlsxPath).Info("Usando planilha local")
		return sheets.NewXLSXOpener(xlsxPath), nil
	}

	google, err := sheets.NewGoogleOpener(ctx, cfg.Sheets.CredentialsFile, cfg.Sheets.SpreadsheetID)
	if err != nil {
		return nil, err
	}
	return sheets.NewRetryingOpener(google, cfg.Sheets.OpenRetries, cfg.Sheets.OpenRetryDelay), nil
}

func newSettingsService(cfg *config.Config, opener sheets.Opener) *settings.Service {
	client := autopilotclient.NewClient(cfg)
	reader := sheets.NewSettingsReader(opener, cfg.Sheets.SpreadsheetTitle, cfg.Sheets.SettingsTab)
	submitter := settings.NewSubmitter(client, cfg.Autopilot.MaxAttempts, cfg.Autopilot.MaxIterations)

	return settings.NewService(reader, submitter)
}

// newSnapshotStore devolve nil quando o warehouse não está configurado
func newSnapshotStore(ctx context.Context, cfg *config.Config) (mirroring.SnapshotStore, func(), error) {
	if cfg.Warehouse.DSN == "" {
		return nil, func() {}, nil
	}
	if err := cfg.RequireWarehouse(); err != nil {
		return nil, nil, err
	}

	conn, err := postgres.NewConnection(ctx, cfg.Warehouse)
	if err != nil {
		return nil, nil, err
	}
	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")

	if cfg.MirrorSync.SnapshotEnabled {
		if err := migration.EnsureSnapshotTable(ctx, conn, cfg.Warehouse.SettingsTable); err != nil {
			_ = conn.Close()
			return nil, nil, err
		}
	}

	closeFn := func() {
		if err := conn.Close(); err != nil {
			logrus.WithError(err).Warn("Erro ao fechar a conexão com PostgreSQL")
		}
	}
	return repository.NewSettingsSnapshotRepository(conn, cfg.Warehouse.SettingsTable), closeFn, nil
}

func newMirrorService(cfg *config.Config, opener sheets.Opener, store mirroring.SnapshotStore) *mirroring.Service {
	return mirroring.NewService(autopilotclient.NewClient(cfg), opener, store, mirroring.Options{
		Title:           cfg.Sheets.SpreadsheetTitle,
		CurrentTab:      cfg.Sheets.CurrentTab,
		YesterdayTab:    cfg.Sheets.YesterdayTab,
		SnapshotEnabled: cfg.MirrorSync.SnapshotEnabled,
	})
}

// newLocker usa o Redis quando configurado, senão um lock local
func newLocker(ctx context.Context, cfg *config.Config) (lock.Locker, func(), error) {
	if cfg.Lock.RedisURL == "" {
		return lock.NewLocalLocker(), func() {}, nil
	}

	locker, err := lock.NewRedisLocker(cfg.Lock.RedisURL, cfg.Lock.TTL)
	if err != nil {
		return nil, nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := locker.Ping(pingCtx); err != nil {
		_ = locker.Close()
		return nil, nil, fmt.Errorf("redis indisponível para o lock de sincronização: %w", err)
	}
	logrus.Info("Conexão com Redis estabelecida com sucesso")

	return locker, func() { _ = locker.Close() }, nil
}
