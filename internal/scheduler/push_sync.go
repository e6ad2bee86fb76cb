package scheduler

import (
	"context"

	"github.com/vfg2006/autopilot-sync/infrastructure/lock"
	"github.com/vfg2006/autopilot-sync/internal/config"
	"github.com/vfg2006/autopilot-sync/internal/domain"
	"github.com/vfg2006/autopilot-sync/internal/usecases/settings"
)

// NewPushSyncService agenda o envio das configurações da planilha para a API
func NewPushSyncService(service settings.SettingsService, locker lock.Locker, appConfig *config.Config) *SyncJobService {
	cfg := SyncJobConfig{
		Job:          domain.SyncJobPush,
		CronSchedule: appConfig.PushSync.CronSchedule,
		SyncEnabled:  appConfig.PushSync.Enabled,
	}

	return newSyncJobService(cfg, locker, func(ctx context.Context) error {
		_, err := service.Push(ctx, settings.PushOptions{})
		return err
	})
}
