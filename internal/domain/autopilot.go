package domain

// AutopilotStatus é o estado reportado pelo serviço para um autopiloto
type AutopilotStatus string

const (
	AutopilotStatusStopped AutopilotStatus = "stopped"
)

// Autopilot é o estado atual de um autopiloto retornado por GET /v1/autopilots
type Autopilot struct {
	APIKeyID           *int64          `json:"api_key_id"`
	ProductID          *int64          `json:"product_id"`
	Status             AutopilotStatus `json:"status"`
	Active             *bool           `json:"active"`
	TargetDRR          []TargetDRR     `json:"target_drr"`
	TargetCostOverride []TargetCost    `json:"target_cost_override"`
	MinRem             []MinRemainder  `json:"min_rem"`
	DepositType        interface{}     `json:"deposit_type"`
	MinDailyCost       *float64        `json:"min_daily_cost"`
	MaxDailyCost       *float64        `json:"max_daily_cost"`
}

// APIResponse é a resposta crua de uma chamada à API de autopilotos
type APIResponse struct {
	StatusCode int
	Body       []byte
}
