package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/vfg2006/autopilot-sync/internal/domain"
	"github.com/vfg2006/autopilot-sync/internal/usecases/authenticating"
)

var (
	tokenRole     string
	tokenOperator string
	tokenTTL      time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Emite um token para os endpoints de disparo manual",
	Long: `Emite um JWT HS256 assinado com AUTH_SECRET.

Perfis:
  admin    - dispara e consulta todos os jobs
  operator - dispara e consulta todos os jobs`,
	RunE: runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenRole, "role", "operator", "Perfil do token (admin|operator)")
	tokenCmd.Flags().StringVar(&tokenOperator, "operator", "", "Nome de quem vai usar o token")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 24*time.Hour, "Validade do token")
	_ = tokenCmd.MarkFlagRequired("operator")
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	roleID, ok := domain.RoleID(tokenRole)
	if !ok {
		return fmt.Errorf("%w: %s", authenticating.ErrInvalidRole, tokenRole)
	}

	token, err := authenticating.NewService(cfg).GenerateToken(tokenOperator, roleID, tokenTTL)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}
