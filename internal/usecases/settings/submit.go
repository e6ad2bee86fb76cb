package settings

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/autopilot-sync/internal/domain"
	"github.com/vfg2006/autopilot-sync/internal/observability"
	"github.com/vfg2006/autopilot-sync/pkg/log"
	"github.com/vfg2006/autopilot-sync/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	DefaultMaxAttempts   = 10
	DefaultMaxIterations = 100
)

// AutopilotPoster envia um lote para POST /v1/autopilots.
// Um erro indica falha de transporte (rede, timeout); qualquer status HTTP volta em APIResponse.
type AutopilotPoster interface {
	PostAutopilots(ctx context.Context, batch domain.Batch) (*domain.APIResponse, error)
}

// Outcome classifica a resposta de uma tentativa de envio
type Outcome string

const (
	OutcomeAccepted       Outcome = "accepted"
	OutcomeInvalidPayload Outcome = "invalid_payload"
	OutcomeUnauthorized   Outcome = "unauthorized"
	OutcomeForbidden      Outcome = "forbidden"
	OutcomeServerError    Outcome = "server_error"
	OutcomeRecordRejected Outcome = "record_rejected"
	OutcomeUnexpected     Outcome = "unexpected_status"
	OutcomeTransport      Outcome = "transport_error"
)

// transition descreve o que cada desfecho faz com o estado do envio
type transition struct {
	done          bool
	countsAttempt bool
	dropsRecord   bool
	message       string
}

var transitions = map[Outcome]transition{
	OutcomeAccepted:       {done: true, message: "Configurações do autopiloto aplicadas com sucesso"},
	OutcomeInvalidPayload: {countsAttempt: true, message: "Erro 422. Formato de dados inválido"},
	OutcomeUnauthorized:   {message: "Erro 401. Chave de API inválida"},
	OutcomeForbidden:      {message: "Erro 403. Permissões insuficientes"},
	OutcomeServerError:    {countsAttempt: true, message: "Erro no servidor da API de autopilotos"},
	OutcomeRecordRejected: {dropsRecord: true, message: "Erro 400. Artigo rejeitado pela API"},
	OutcomeUnexpected:     {message: "Status de resposta inesperado"},
	OutcomeTransport:      {message: "Erro na requisição ao servidor"},
}

// Classify mapeia o resultado de uma requisição para um desfecho
func Classify(resp *domain.APIResponse, err error) Outcome {
	if err != nil || resp == nil {
		return OutcomeTransport
	}

	switch code := resp.StatusCode; {
	case code == http.StatusOK:
		return OutcomeAccepted
	case code == http.StatusUnprocessableEntity:
		return OutcomeInvalidPayload
	case code == http.StatusUnauthorized:
		return OutcomeUnauthorized
	case code == http.StatusForbidden:
		return OutcomeForbidden
	case code >= http.StatusInternalServerError:
		return OutcomeServerError
	case code == http.StatusBadRequest:
		return OutcomeRecordRejected
	default:
		return OutcomeUnexpected
	}
}

// ParseRejectedProduct extrai o artigo do corpo de um erro 400,
// no formato {"detail": "<mensagem>: <product_id>"}
func ParseRejectedProduct(body []byte) (int64, error) {
	var payload struct {
		Detail interface{} `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return 0, errors.Wrap(err, "corpo do erro 400 não é JSON")
	}

	detail, ok := payload.Detail.(string)
	if !ok {
		return 0, ErrRejectedProductUnknown
	}

	parts := strings.Split(detail, ": ")
	if len(parts) < 2 {
		return 0, ErrRejectedProductUnknown
	}

	productID, err := strconv.ParseInt(strings.TrimSpace(parts[1]), 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrRejectedProductUnknown, "detail %q", detail)
	}
	return productID, nil
}

// SubmitResult é o estado final do envio
type SubmitResult struct {
	Success     bool
	Attempts    int // requisições feitas
	BudgetUsed  int // tentativas contabilizadas contra o limite
	Idle        int // requisições que não gastaram orçamento nem reduziram o lote
	Batch       domain.Batch
	Removed     []int64
	LastOutcome Outcome
	LastStatus  int
}

// Submitter conduz o lote até o sucesso ou até esgotar as tentativas
type Submitter struct {
	client        AutopilotPoster
	maxAttempts   int
	maxIterations int
}

func NewSubmitter(client AutopilotPoster, maxAttempts, maxIterations int) *Submitter {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	return &Submitter{
		client:        client,
		maxAttempts:   maxAttempts,
		maxIterations: maxIterations,
	}
}

// Submit nunca retorna erro: o desfecho fica em SubmitResult e nos logs.
// O lote recebido não é alterado.
func (s *Submitter) Submit(ctx context.Context, batch domain.Batch) SubmitResult {
	logger := log.ForContext(ctx)

	state := SubmitResult{Batch: batch.Clone()}
	for !state.Success && state.BudgetUsed < s.maxAttempts {
		if state.Idle >= s.maxIterations {
			logger.WithFields(log.Fields{
				"attempts": state.Attempts,
				"idle":     state.Idle,
			}).Warn("Limite de requisições sem progresso atingido, encerrando envio")
			break
		}
		if err := ctx.Err(); err != nil {
			logger.WithError(err).Warn("Envio interrompido pelo contexto")
			break
		}

		logger.WithField("records", len(state.Batch)).Info("Enviando POST para a API de autopilotos")
		resp, err := s.client.PostAutopilots(ctx, state.Batch)
		state = s.step(ctx, state, resp, err)
	}

	if !state.Success {
		logger.WithFields(log.Fields{
			"attempts":     state.Attempts,
			"budget_used":  state.BudgetUsed,
			"idle":         state.Idle,
			"last_outcome": state.LastOutcome,
		}).Error("Envio encerrado sem sucesso")
	}

	return state
}

// step aplica uma transição e devolve o novo estado
func (s *Submitter) step(ctx context.Context, prev SubmitResult, resp *domain.APIResponse, err error) SubmitResult {
	next := prev
	next.Attempts++

	outcome := Classify(resp, err)
	t := transitions[outcome]
	next.LastOutcome = outcome
	observability.SubmitResponsesTotal.WithLabelValues(string(outcome)).Inc()

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"attempt": next.Attempts,
		"outcome": outcome,
	})
	if resp != nil {
		next.LastStatus = resp.StatusCode
		logger = logger.WithField("status_code", resp.StatusCode)
	}

	switch {
	case t.done:
		next.Success = true
		logger.Infof("%s:\n%s", t.message, utils.PrettyJSON(resp.Body))
	case outcome == OutcomeTransport:
		logger.WithError(err).Warn(t.message)
	default:
		logger.Warnf("%s. Resposta: %s", t.message, responseText(resp))
	}

	if t.countsAttempt {
		next.BudgetUsed++
	}

	if !t.dropsRecord {
		if !t.done && !t.countsAttempt {
			next.Idle++
		}
		return next
	}

	productID, parseErr := ParseRejectedProduct(resp.Body)
	if parseErr != nil {
		logger.WithError(parseErr).Warn("Não foi possível identificar o artigo rejeitado")
		next.Idle++
		return next
	}

	var removed int
	next.Batch, removed = prev.Batch.WithoutProduct(productID)
	next.Removed = append(append([]int64{}, prev.Removed...), productID)
	observability.OverridesRemovedTotal.Add(float64(removed))
	if removed == 0 {
		next.Idle++
	}
	logger.WithFields(log.Fields{
		"product_id": productID,
		"removed":    removed,
		"remaining":  len(next.Batch),
	}).Warn("Artigo removido do lote, reenviando")

	return next
}

func responseText(resp *domain.APIResponse) string {
	if resp == nil {
		return ""
	}
	return string(resp.Body)
}
