package migration

import (
	"context"
	"fmt"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/autopilot-sync/infrastructure/database/postgres"
)

// snapshotColumns segue a ordem das colunas publicadas na aba de configurações atuais
var snapshotColumns = []struct {
	name string
	ddl  string
}{
	{"api_key_id", "BIGINT"},
	{"product_id", "BIGINT"},
	{"status", "TEXT"},
	{"active", "BOOLEAN"},
	{"target_drr", "DOUBLE PRECISION"},
	{"target_drr_date", "DATE"},
	{"target_cost_override", "TEXT"},
	{"target_cost", "DOUBLE PRECISION"},
	{"target_cost_date", "DATE"},
	{"min_rem", "TEXT"},
	{"deposit_type", "TEXT"},
	{"min_daily_cost", "DOUBLE PRECISION"},
	{"max_daily_cost", "DOUBLE PRECISION"},
	{"date", "DATE NOT NULL"},
}

// SnapshotStatements devolve o DDL idempotente da tabela de retratos diários.
// O índice único sustenta o upsert por (date, api_key_id, product_id).
func SnapshotStatements(table string) []string {
	quoted := pq.QuoteIdentifier(table)

	columns := ""
	for i, c := range snapshotColumns {
		if i > 0 {
			columns += ",\n\t"
		}
		columns += fmt.Sprintf("%s %s", pq.QuoteIdentifier(c.name), c.ddl)
	}

	return []string{
		fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)", quoted, columns),
		fmt.Sprintf(
			"CREATE UNIQUE INDEX IF NOT EXISTS %s ON %s (\"date\", \"api_key_id\", \"product_id\")",
			pq.QuoteIdentifier(table+"_snapshot_key"), quoted,
		),
	}
}

// EnsureSnapshotTable cria a tabela e o índice quando ainda não existem
func EnsureSnapshotTable(ctx context.Context, q postgres.Queryer, table string) error {
	for _, stmt := range SnapshotStatements(table) {
		if _, err := q.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("erro ao preparar a tabela %s: %w", table, err)
		}
	}

	logrus.WithField("table", table).Debug("Tabela de retratos pronta")
	return nil
}
