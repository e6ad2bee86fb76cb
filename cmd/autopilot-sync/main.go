package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	logLevel string
)

// rootCmd sincroniza as configurações de autopiloto entre a planilha e a API
var rootCmd = &cobra.Command{
	Use:   "autopilot-sync",
	Short: "Sincroniza as configurações de autopiloto entre a planilha e a API",
	Long: `Sincroniza as configurações de autopiloto de anúncios.

Comandos:
  serve  - agenda os fluxos de envio e espelhamento e expõe a API HTTP
  push   - lê a planilha e envia as configurações para POST /v1/autopilots
  mirror - publica o estado atual e o retrato de ontem na planilha
  check  - verifica a disponibilidade do Google e da API de autopilotos
  token  - emite um token para os endpoints de disparo manual`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Nível de log (sobrescreve LOG_LEVEL)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(mirrorCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokenCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
