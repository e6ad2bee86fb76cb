package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/autopilot-sync/internal/usecases/settings"
	"github.com/vfg2006/autopilot-sync/pkg/log"
)

var (
	pushXLSX   string
	pushDryRun bool
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Envia as configurações da planilha para a API de autopilotos",
	Long: `Lê a aba de configurações, normaliza, filtra e saneia as linhas e envia o lote
para POST /v1/autopilots com repetição. Sai com código diferente de zero quando
o lote não é aceito.`,
	RunE: runPush,
}

func init() {
	pushCmd.Flags().StringVar(&pushXLSX, "xlsx", "", "Lê as configurações de um arquivo .xlsx local")
	pushCmd.Flags().BoolVar(&pushDryRun, "dry-run", false, "Monta e registra o payload sem enviar")
}

func runPush(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if !pushDryRun {
		if err := cfg.RequireAutopilot(); err != nil {
			return err
		}
	}

	ctx, _ := log.WithRunID(cmd.Context())

	opener, err := newOpener(ctx, cfg, pushXLSX)
	if err != nil {
		return err
	}

	report, err := newSettingsService(cfg, opener).Push(ctx, settings.PushOptions{DryRun: pushDryRun})
	if report != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"rows":         report.RowsRead,
			"dropped":      report.Dropped,
			"submitted":    report.Submitted,
			"removed":      report.Removed,
			"attempts":     report.Attempts,
			"success":      report.Success,
			"final_status": report.FinalStatus,
		}).Info("Resumo do envio")
	}
	return err
}
