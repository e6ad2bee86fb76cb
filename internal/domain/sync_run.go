package domain

import "time"

// SyncJob identifica os fluxos executados pelo agendador
type SyncJob string

const (
	SyncJobPush   SyncJob = "push"
	SyncJobMirror SyncJob = "mirror"
)

// SyncStatus é o retrato de um job para o endpoint de status
type SyncStatus struct {
	Job             SyncJob   `json:"job"`
	Enabled         bool      `json:"enabled"`
	Running         bool      `json:"running"`
	CronSchedule    string    `json:"cron_schedule"`
	LastRunID       string    `json:"last_run_id,omitempty"`
	LastStartedAt   time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt time.Time `json:"last_completed_at,omitempty"`
	LastError       string    `json:"last_error,omitempty"`
}

// PushReport resume uma execução do fluxo de envio
type PushReport struct {
	RunID       string  `json:"run_id"`
	RowsRead    int     `json:"rows_read"`
	Dropped     int     `json:"dropped"`
	Submitted   int     `json:"submitted"`
	Removed     []int64 `json:"removed_product_ids"`
	Attempts    int     `json:"attempts"`
	Success     bool    `json:"success"`
	DryRun      bool    `json:"dry_run"`
	FinalStatus int     `json:"final_status"`
}

// MirrorReport resume uma execução do fluxo de espelhamento
type MirrorReport struct {
	RunID           string `json:"run_id"`
	CurrentRows     int    `json:"current_rows"`
	YesterdayRows   int    `json:"yesterday_rows"`
	SnapshotSaved   bool   `json:"snapshot_saved"`
	RefreshedAtText string `json:"refreshed_at"`
}
