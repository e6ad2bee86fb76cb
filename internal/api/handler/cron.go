package handler

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/autopilot-sync/internal/domain"
	"github.com/vfg2006/autopilot-sync/internal/scheduler"
	"github.com/vfg2006/autopilot-sync/pkg/apiErrors"
	"github.com/vfg2006/autopilot-sync/pkg/middleware"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypePush   = "push"
	CronJobTypeMirror = "mirror"
	CronJobTypeAll    = "all"
)

// SyncJob é o que os handlers precisam de um job agendado
type SyncJob interface {
	TriggerManualSync() error
	GetStatus() domain.SyncStatus
}

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	PushSyncService   SyncJob
	MirrorSyncService SyncJob
}

func (s CronJobServices) byType(cronType string) []SyncJob {
	switch cronType {
	case CronJobTypePush:
		return []SyncJob{s.PushSyncService}
	case CronJobTypeMirror:
		return []SyncJob{s.MirrorSyncService}
	case CronJobTypeAll:
		return []SyncJob{s.PushSyncService, s.MirrorSyncService}
	}
	return nil
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")

		operator := ""
		if claims, ok := middleware.ClaimsFromContext(r.Context()); ok {
			operator = claims.Operator
		}
		logrus.WithFields(logrus.Fields{
			"type":     cronType,
			"operator": operator,
		}).Info("INIT - RunCronJob")

		jobs := services.byType(cronType)
		if jobs == nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: push, mirror, all", nil)
			return
		}

		started := make([]domain.SyncJob, 0, len(jobs))
		skipped := make([]domain.SyncJob, 0)
		for _, job := range jobs {
			if job == nil {
				apiErrors.WriteError(w, apiErrors.ErrSyncUnavailable, "Serviço de sincronização não disponível", nil)
				return
			}

			jobName := job.GetStatus().Job
			if err := job.TriggerManualSync(); err != nil {
				if errors.Is(err, scheduler.ErrJobAlreadyRunning) {
					skipped = append(skipped, jobName)
					continue
				}
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, err.Error(), nil)
				return
			}
			started = append(started, jobName)
		}

		if len(started) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrSyncAlreadyRunning, "Sincronização já em andamento", map[string]any{"skipped": skipped})
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
			"started": started,
			"skipped": skipped,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Debug("INIT - GetCronStatus")

		statuses := make([]domain.SyncStatus, 0, 2)
		for _, job := range []SyncJob{services.PushSyncService, services.MirrorSyncService} {
			if job != nil {
				statuses = append(statuses, job.GetStatus())
			}
		}

		writeJSON(w, http.StatusOK, statuses)
	}
}
