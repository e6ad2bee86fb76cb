package mirroring

import (
	"context"
	"fmt"
	"time"

	"github.com/vfg2006/autopilot-sync/infrastructure/integrator/sheets"
	"github.com/vfg2006/autopilot-sync/internal/domain"
	"github.com/vfg2006/autopilot-sync/internal/observability"
	"github.com/vfg2006/autopilot-sync/pkg/log"
)

// AutopilotLister consulta o estado atual dos autopilotos no serviço
type AutopilotLister interface {
	ListAutopilots(ctx context.Context) ([]domain.Autopilot, error)
}

// SnapshotStore guarda e consulta o histórico diário de configurações no warehouse
type SnapshotStore interface {
	Save(ctx context.Context, table *domain.Table) error
	ListByDate(ctx context.Context, date string) (*domain.Table, error)
}

type MirrorService interface {
	Mirror(ctx context.Context) (*domain.MirrorReport, error)
}

// Options define a planilha e as abas de destino
type Options struct {
	Title           string
	CurrentTab      string
	YesterdayTab    string
	SnapshotEnabled bool
}

type Service struct {
	lister AutopilotLister
	opener sheets.Opener
	store  SnapshotStore
	opts   Options
	now    func() time.Time
}

// NewService cria o serviço de espelhamento. Com store nil o histórico do
// warehouse não é consultado nem gravado.
func NewService(lister AutopilotLister, opener sheets.Opener, store SnapshotStore, opts Options) *Service {
	return &Service{
		lister: lister,
		opener: opener,
		store:  store,
		opts:   opts,
		now:    time.Now,
	}
}

// WithClock troca o relógio usado para datas e carimbos
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Mirror publica o estado atual dos autopilotos e o retrato de ontem na planilha
func (s *Service) Mirror(ctx context.Context) (report *domain.MirrorReport, err error) {
	if log.GetRunID(ctx) == "" {
		ctx, _ = log.WithRunID(ctx)
	}
	logger := log.ForContext(ctx)
	startTime := time.Now()

	defer func() {
		observability.ObserveRun(string(domain.SyncJobMirror), time.Since(startTime).Seconds(), err)
	}()

	now := s.now()
	today := now.Format(time.DateOnly)
	yesterday := now.AddDate(0, 0, -1).Format(time.DateOnly)
	stamp := now.Format(sheets.TimestampLayout)

	autopilots, err := s.lister.ListAutopilots(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrListAutopilots, err)
	}

	current := FlattenAutopilots(autopilots, today)
	logger.WithFields(log.Fields{
		"received": len(autopilots),
		"kept":     len(current.Rows),
	}).Info("Configurações atuais dos autopilotos recebidas")

	sheet, err := s.opener.Open(ctx, s.opts.Title)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPublish, err)
	}

	if err := sheets.PublishTable(ctx, sheet, s.opts.CurrentTab, sheetValues(current), stamp); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrPublish, s.opts.CurrentTab, err)
	}
	logger.Infof("Aba %s atualizada em %s", s.opts.CurrentTab, stamp)

	report = &domain.MirrorReport{
		RunID:           log.GetRunID(ctx),
		CurrentRows:     len(current.Rows),
		RefreshedAtText: stamp,
	}

	if s.store == nil {
		logger.Warn("Warehouse não configurado, histórico de ontem não publicado")
		return report, nil
	}

	if s.opts.SnapshotEnabled {
		if err := s.store.Save(ctx, current); err != nil {
			return report, fmt.Errorf("%w: %v", ErrSnapshot, err)
		}
		report.SnapshotSaved = true
		logger.WithField("date", today).Info("Retrato do dia gravado no warehouse")
	}

	history, err := s.store.ListByDate(ctx, yesterday)
	if err != nil {
		return report, fmt.Errorf("%w: %v", ErrReadHistory, err)
	}

	history = CoerceHistory(history)
	if err := sheets.PublishTable(ctx, sheet, s.opts.YesterdayTab, sheetValues(history), stamp); err != nil {
		return report, fmt.Errorf("%w: %s: %v", ErrPublish, s.opts.YesterdayTab, err)
	}
	report.YesterdayRows = len(history.Rows)

	logger.WithFields(log.Fields{
		"date":     yesterday,
		"rows":     report.YesterdayRows,
		"duration": time.Since(startTime).String(),
	}).Info("Espelhamento das configurações finalizado")

	return report, nil
}
