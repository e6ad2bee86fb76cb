package main

import (
	"github.com/spf13/cobra"
	"github.com/vfg2006/autopilot-sync/pkg/log"
)

var mirrorXLSX string

var mirrorCmd = &cobra.Command{
	Use:   "mirror",
	Short: "Publica o estado atual dos autopilotos e o retrato de ontem na planilha",
	RunE:  runMirror,
}

func init() {
	mirrorCmd.Flags().StringVar(&mirrorXLSX, "xlsx", "", "Grava as abas em um arquivo .xlsx local")
}

func runMirror(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.RequireAutopilot(); err != nil {
		return err
	}

	ctx, _ := log.WithRunID(cmd.Context())

	opener, err := newOpener(ctx, cfg, mirrorXLSX)
	if err != nil {
		return err
	}

	store, closeStore, err := newSnapshotStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	report, err := newMirrorService(cfg, opener, store).Mirror(ctx)
	if report != nil {
		log.ForContext(ctx).WithFields(log.Fields{
			"current_rows":   report.CurrentRows,
			"yesterday_rows": report.YesterdayRows,
			"snapshot_saved": report.SnapshotSaved,
			"refreshed_at":   report.RefreshedAtText,
		}).Info("Resumo do espelhamento")
	}
	return err
}
