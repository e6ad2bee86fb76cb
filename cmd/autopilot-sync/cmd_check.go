package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/autopilot-sync/infrastructure/integrator/autopilot/autopilotclient"
	"github.com/vfg2006/autopilot-sync/internal/usecases/checking"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verifica a disponibilidade do Google e da API de autopilotos",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var prober checking.AutopilotProber
	if cfg.Autopilot.APIKey != "" {
		prober = autopilotclient.NewClient(cfg)
	}

	service := checking.NewService(&http.Client{Timeout: 10 * time.Second}, prober, checking.DefaultTargets())
	results := service.Check(cmd.Context())

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s erro: %s\n", r.Name, r.Error)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %d\n", r.Name, r.Status)
		}
		if !r.OK() {
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d verificações falharam", failed)
	}
	return nil
}
