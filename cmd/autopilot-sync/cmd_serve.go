package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/vfg2006/autopilot-sync/internal/api"
	"github.com/vfg2006/autopilot-sync/internal/scheduler"
	"github.com/vfg2006/autopilot-sync/internal/usecases/authenticating"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Agenda os fluxos de envio e espelhamento e expõe a API HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	locker, closeLocker, err := newLocker(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeLocker()

	var pushSyncService, mirrorSyncService *scheduler.SyncJobService

	if cfg.Autopilot.APIKey == "" {
		logrus.Warn("AUTOPILOT_API_KEY não configurado, agendadores desabilitados")
	} else {
		opener, err := newOpener(ctx, cfg, "")
		if err != nil {
			return err
		}

		store, closeStore, err := newSnapshotStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		pushSyncService = scheduler.NewPushSyncService(newSettingsService(cfg, opener), locker, cfg)
		mirrorSyncService = scheduler.NewMirrorSyncService(newMirrorService(cfg, opener, store), locker, cfg)

		for _, job := range []*scheduler.SyncJobService{pushSyncService, mirrorSyncService} {
			if err := job.Start(ctx); err != nil {
				logrus.WithError(err).WithField("job", job.Job()).Error("Erro ao iniciar o agendador")
			} else {
				logrus.WithField("job", job.Job()).Info("Agendador iniciado com sucesso")
			}
		}
	}

	authenticator := authenticating.NewService(cfg)
	if !authenticator.Enabled() {
		logrus.Warn("AUTH_SECRET não configurado, disparo manual desabilitado")
	}

	server, err := api.New(cfg, authenticator, pushSyncService, mirrorSyncService)
	if err != nil {
		return err
	}

	return server.Run(ctx)
}
