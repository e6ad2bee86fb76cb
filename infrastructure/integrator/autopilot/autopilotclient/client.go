package autopilotclient

import (
	"context"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/autopilot-sync/internal/config"
	"github.com/vfg2006/autopilot-sync/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const autopilotsPath = "/v1/autopilots"

type Client interface {
	ListAutopilots(ctx context.Context) ([]domain.Autopilot, error)
	PostAutopilots(ctx context.Context, batch domain.Batch) (*domain.APIResponse, error)
	Probe(ctx context.Context) (int, error)
}

type AutopilotClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient cria o cliente da API de autopilotos
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Autopilot.Timeout
	if timeout <= 0 {
		timeout = time.Minute
	}

	return &AutopilotClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: cfg.Autopilot.BaseURL,
		apiKey:  cfg.Autopilot.APIKey,
	}
}

// setHeaders a API espera a chave crua no header Authorization, sem prefixo
func (c *AutopilotClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Accept", "application/json")
}
