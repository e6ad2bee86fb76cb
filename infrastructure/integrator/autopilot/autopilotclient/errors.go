package autopilotclient

import "fmt"

// StatusError representa uma resposta não-200 em chamadas de leitura
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("requisição falhou com status %d: %s", e.StatusCode, e.Body)
}
