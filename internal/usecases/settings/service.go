package settings

import (
	"context"
	"time"

	"github.com/vfg2006/autopilot-sync/internal/domain"
	"github.com/vfg2006/autopilot-sync/internal/observability"
	"github.com/vfg2006/autopilot-sync/pkg/log"
	"github.com/vfg2006/autopilot-sync/pkg/utils"
)

// SettingsSource lê as linhas editadas pelos operadores, já com os cabeçalhos traduzidos
type SettingsSource interface {
	ReadSettingsRows(ctx context.Context) ([]domain.SettingsRow, error)
}

// PushOptions ajusta uma execução do fluxo de envio
type PushOptions struct {
	DryRun bool
}

type SettingsService interface {
	Push(ctx context.Context, opts PushOptions) (*domain.PushReport, error)
}

type Service struct {
	source    SettingsSource
	submitter *Submitter
}

func NewService(source SettingsSource, submitter *Submitter) *Service {
	return &Service{
		source:    source,
		submitter: submitter,
	}
}

// BuildBatch executa normalização, filtro e saneamento e devolve o lote pronto para envio
func BuildBatch(ctx context.Context, rows []domain.SettingsRow) (domain.Batch, int) {
	normalized := NormalizeRows(rows)
	kept, dropped := FilterNoops(ctx, normalized)
	return SanitizeBatch(kept), dropped
}

// Push lê a planilha, monta o lote e o envia para a API
func (s *Service) Push(ctx context.Context, opts PushOptions) (report *domain.PushReport, err error) {
	if log.GetRunID(ctx) == "" {
		ctx, _ = log.WithRunID(ctx)
	}
	logger := log.ForContext(ctx)
	startTime := time.Now()

	defer func() {
		observability.ObserveRun(string(domain.SyncJobPush), time.Since(startTime).Seconds(), err)
	}()

	rows, err := s.source.ReadSettingsRows(ctx)
	if err != nil {
		return nil, NewSyncError(ErrReadSettings, StageRead, err.Error())
	}
	logger.Infof("Recebidos %d registros da planilha", len(rows))

	batch, dropped := BuildBatch(ctx, rows)
	logger.WithFields(log.Fields{
		"rows":    len(rows),
		"dropped": dropped,
		"batch":   len(batch),
	}).Info("Parâmetros para envio das configurações montados")

	report = &domain.PushReport{
		RunID:     log.GetRunID(ctx),
		RowsRead:  len(rows),
		Dropped:   dropped,
		Submitted: len(batch),
		Removed:   []int64{},
		DryRun:    opts.DryRun,
	}

	if opts.DryRun {
		logger.Infof("Execução simulada, payload não enviado:\n%s", utils.PrettyJSON(batch))
		return report, nil
	}

	result := s.submitter.Submit(ctx, batch)
	report.Attempts = result.Attempts
	report.Success = result.Success
	report.FinalStatus = result.LastStatus
	if result.Removed != nil {
		report.Removed = result.Removed
	}

	logger.WithFields(log.Fields{
		"success":  result.Success,
		"attempts": result.Attempts,
		"removed":  len(result.Removed),
		"duration": time.Since(startTime).String(),
	}).Info("Envio das configurações finalizado")

	if !result.Success {
		return report, NewSyncError(ErrSubmissionFailed, StageSubmit, string(result.LastOutcome))
	}

	return report, nil
}
