package scheduler

import (
	"context"

	"github.com/vfg2006/autopilot-sync/infrastructure/lock"
	"github.com/vfg2006/autopilot-sync/internal/config"
	"github.com/vfg2006/autopilot-sync/internal/domain"
	"github.com/vfg2006/autopilot-sync/internal/usecases/mirroring"
)

// NewMirrorSyncService agenda o espelhamento do estado dos autopilotos na planilha
func NewMirrorSyncService(service mirroring.MirrorService, locker lock.Locker, appConfig *config.Config) *SyncJobService {
	cfg := SyncJobConfig{
		Job:          domain.SyncJobMirror,
		CronSchedule: appConfig.MirrorSync.CronSchedule,
		SyncEnabled:  appConfig.MirrorSync.Enabled,
	}

	return newSyncJobService(cfg, locker, func(ctx context.Context) error {
		_, err := service.Mirror(ctx)
		return err
	})
}
