package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/autopilot-sync/infrastructure/lock"
	"github.com/vfg2006/autopilot-sync/internal/domain"
	"github.com/vfg2006/autopilot-sync/pkg/log"
)

var ErrJobAlreadyRunning = errors.New("sync job already running")

// SyncJobConfig representa a configuração de um job agendado
type SyncJobConfig struct {
	Job          domain.SyncJob
	CronSchedule string
	SyncEnabled  bool
}

// SyncJobService agenda e executa um fluxo de sincronização, garantindo uma
// execução por vez entre todas as réplicas
type SyncJobService struct {
	scheduler *gocron.Scheduler
	config    SyncJobConfig
	locker    lock.Locker
	run       func(ctx context.Context) error
	baseCtx   context.Context

	syncMutex sync.Mutex
	status    domain.SyncStatus
}

func newSyncJobService(cfg SyncJobConfig, locker lock.Locker, run func(ctx context.Context) error) *SyncJobService {
	logrus.WithFields(logrus.Fields{
		"job":           cfg.Job,
		"cron_schedule": cfg.CronSchedule,
		"sync_enabled":  cfg.SyncEnabled,
	}).Info("Configuração do agendador carregada")

	return &SyncJobService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		locker:    locker,
		run:       run,
		baseCtx:   context.Background(),
		status: domain.SyncStatus{
			Job:          cfg.Job,
			Enabled:      cfg.SyncEnabled,
			CronSchedule: cfg.CronSchedule,
		},
	}
}

func (s *SyncJobService) Job() domain.SyncJob {
	return s.config.Job
}

// Start inicia o agendador
func (s *SyncJobService) Start(ctx context.Context) error {
	s.syncMutex.Lock()
	s.baseCtx = ctx
	s.syncMutex.Unlock()

	if !s.config.SyncEnabled {
		logrus.WithField("job", s.config.Job).Info("Sincronização agendada desabilitada por configuração")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"job":  s.config.Job,
		"cron": s.config.CronSchedule,
	}).Info("Iniciando agendador de sincronização")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.Execute(ctx); err != nil && !errors.Is(err, ErrJobAlreadyRunning) {
			logrus.WithError(err).WithField("job", s.config.Job).Error("Erro na sincronização agendada")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar a sincronização %s: %w", s.config.Job, err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.WithField("job", s.config.Job).Info("Parando agendador de sincronização")
		s.scheduler.Stop()
	}()

	return nil
}

// Execute roda o fluxo de forma síncrona
func (s *SyncJobService) Execute(ctx context.Context) error {
	s.syncMutex.Lock()
	if s.status.Running {
		s.syncMutex.Unlock()
		logrus.WithField("job", s.config.Job).Info("Sincronização já em andamento, ignorando")
		return ErrJobAlreadyRunning
	}
	s.status.Running = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.status.Running = false
		s.syncMutex.Unlock()
	}()

	ctx, runID := log.WithRunID(ctx)
	logger := log.ForContext(ctx).WithField("job", s.config.Job)

	unlock, ok, err := s.locker.TryLock(ctx, string(s.config.Job))
	if err != nil {
		s.finish(runID, time.Now(), err)
		return fmt.Errorf("erro ao obter lock da sincronização %s: %w", s.config.Job, err)
	}
	if !ok {
		logger.Info("Sincronização em andamento em outra instância, ignorando")
		return ErrJobAlreadyRunning
	}
	defer unlock()

	startTime := time.Now()
	s.syncMutex.Lock()
	s.status.LastRunID = runID
	s.status.LastStartedAt = startTime
	s.syncMutex.Unlock()

	logger.Info("Iniciando sincronização")
	err = s.run(ctx)
	s.finish(runID, startTime, err)

	if err != nil {
		return err
	}

	logger.WithField("duration", time.Since(startTime).String()).Info("Sincronização finalizada")
	return nil
}

func (s *SyncJobService) finish(runID string, startedAt time.Time, err error) {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	s.status.LastRunID = runID
	if s.status.LastStartedAt.IsZero() {
		s.status.LastStartedAt = startedAt
	}
	s.status.LastCompletedAt = time.Now()
	s.status.LastError = ""
	if err != nil {
		s.status.LastError = err.Error()
	}
}

// TriggerManualSync dispara uma execução em segundo plano
func (s *SyncJobService) TriggerManualSync() error {
	s.syncMutex.Lock()
	running := s.status.Running
	ctx := s.baseCtx
	s.syncMutex.Unlock()

	if running {
		logrus.WithField("job", s.config.Job).Info("Sincronização já em andamento, ignorando solicitação manual")
		return ErrJobAlreadyRunning
	}

	logrus.WithField("job", s.config.Job).Info("Iniciando sincronização manual")
	go func() {
		if err := s.Execute(ctx); err != nil && !errors.Is(err, ErrJobAlreadyRunning) {
			logrus.WithError(err).WithField("job", s.config.Job).Error("Erro na sincronização manual")
		}
	}()

	return nil
}

// GetStatus retorna o status atual do agendador
func (s *SyncJobService) GetStatus() domain.SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()
	return s.status
}
