package autopilotclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/vfg2006/autopilot-sync/internal/domain"
)

// ListAutopilots busca as configurações atuais de todos os autopilotos
func (c *AutopilotClient) ListAutopilots(ctx context.Context) ([]domain.Autopilot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+autopilotsPath, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var autopilots []domain.Autopilot
	if err := json.NewDecoder(resp.Body).Decode(&autopilots); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return autopilots, nil
}

// PostAutopilots envia o lote de overrides. Qualquer status HTTP é devolvido
// em APIResponse; erro só em falha de transporte.
func (c *AutopilotClient) PostAutopilots(ctx context.Context, batch domain.Batch) (*domain.APIResponse, error) {
	if batch == nil {
		batch = domain.Batch{}
	}

	payload, err := json.Marshal(batch)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o lote: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+autopilotsPath, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	return &domain.APIResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
	}, nil
}

// Probe faz um GET autenticado e devolve apenas o status
func (c *AutopilotClient) Probe(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+autopilotsPath, nil)
	if err != nil {
		return 0, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}
