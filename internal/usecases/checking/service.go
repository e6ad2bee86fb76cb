package checking

import (
	"context"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/autopilot-sync/pkg/utils"
)

const (
	GoogleStatusURL    = "https://status.google.com/"
	SheetsDiscoveryURL = "https://sheets.googleapis.com/$discovery/rest?version=v4"
)

// AutopilotProber faz uma chamada autenticada à API de autopilotos
type AutopilotProber interface {
	Probe(ctx context.Context) (int, error)
}

// ProbeResult é o resultado de uma verificação de disponibilidade
type ProbeResult struct {
	Name   string `json:"name"`
	Target string `json:"target"`
	Status int    `json:"status"`
	Error  string `json:"error,omitempty"`
}

// OK considera disponível qualquer resposta 2xx
func (p ProbeResult) OK() bool {
	return p.Error == "" && p.Status >= 200 && p.Status < 300
}

type Target struct {
	Name string
	URL  string
}

type Service struct {
	client    *http.Client
	autopilot AutopilotProber
	targets   []Target
}

func DefaultTargets() []Target {
	return []Target{
		{Name: "google_status", URL: GoogleStatusURL},
		{Name: "sheets_api", URL: SheetsDiscoveryURL},
	}
}

func NewService(client *http.Client, autopilot AutopilotProber, targets []Target) *Service {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Service{
		client:    client,
		autopilot: autopilot,
		targets:   targets,
	}
}

// Check verifica cada destino em sequência; falhas não interrompem as demais verificações
func (s *Service) Check(ctx context.Context) []ProbeResult {
	results := make([]ProbeResult, 0, len(s.targets)+1)

	for _, target := range s.targets {
		result := ProbeResult{Name: target.Name, Target: target.URL}
		status, err := utils.ProbeStatus(ctx, s.client, target.URL, nil)
		result.Status = status
		if err != nil {
			result.Error = err.Error()
		}
		results = append(results, s.log(result))
	}

	if s.autopilot != nil {
		result := ProbeResult{Name: "autopilot_api", Target: "GET /v1/autopilots"}
		status, err := s.autopilot.Probe(ctx)
		result.Status = status
		if err != nil {
			result.Error = err.Error()
		}
		results = append(results, s.log(result))
	}

	return results
}

func (s *Service) log(result ProbeResult) ProbeResult {
	entry := logrus.WithFields(logrus.Fields{
		"name":   result.Name,
		"target": result.Target,
		"status": result.Status,
	})
	if result.Error != "" {
		entry.WithField("error", result.Error).Warn("Erro na verificação")
	} else {
		entry.Info("Verificação concluída")
	}
	return result
}
