// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/autopilot-sync/infrastructure/database/postgres"
	"github.com/vfg2006/autopilot-sync/internal/domain"
)

// Chave do retrato diário
var snapshotKeyColumns = []string{"date", "api_key_id", "product_id"}

// limite de parâmetros por comando do protocolo do PostgreSQL
const maxBindParams = 65535

type SettingsSnapshotRepository interface {
	Save(ctx context.Context, table *domain.Table) error
	ListByDate(ctx context.Context, date string) (*domain.Table, error)
}

type settingsSnapshotRepository struct {
	conn  postgres.Conn
	table string
}

func NewSettingsSnapshotRepository(conn postgres.Conn, table string) SettingsSnapshotRepository {
	return &settingsSnapshotRepository{
		conn:  conn,
		table: table,
	}
}

// Save grava o retrato do dia; linhas com a mesma chave são atualizadas
func (r *settingsSnapshotRepository) Save(ctx context.Context, table *domain.Table) error {
	if table == nil || len(table.Rows) == 0 {
		return nil
	}

	chunks := snapshotChunks(table, maxBindParams)
	queries := make([]string, len(chunks))
	queryArgs := make([][]interface{}, len(chunks))
	for i, chunk := range chunks {
		sqlQuery, args, err := buildSnapshotUpsert(r.table, chunk)
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}
		queries[i], queryArgs[i] = sqlQuery, args
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for i, sqlQuery := range queries {
			if _, err := tx.ExecContext(ctx, sqlQuery, queryArgs[i]...); err != nil {
				return fmt.Errorf("erro ao gravar o retrato das configurações: %w", err)
			}
		}
		return nil
	})
}

// ListByDate devolve as linhas do dia que têm status preenchido
func (r *settingsSnapshotRepository) ListByDate(ctx context.Context, date string) (*domain.Table, error) {
	sqlQuery, args, err := buildHistoryQuery(r.table, date)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	table, err := postgres.ReadTable(ctx, r.conn, sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return table, nil
}

func buildHistoryQuery(tableName, date string) (string, []interface{}, error) {
	return squirrel.
		Select("*").
		From(pq.QuoteIdentifier(tableName)).
		Where(squirrel.Eq{"date": date}).
		Where("status IS NOT NULL").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// snapshotChunks remove linhas repetidas pela chave (a última vence) e divide
// o restante em blocos que cabem no limite de parâmetros
func snapshotChunks(table *domain.Table, maxParams int) []*domain.Table {
	keyIndex := make([]int, 0, len(snapshotKeyColumns))
	for _, k := range snapshotKeyColumns {
		for i, c := range table.Columns {
			if c == k {
				keyIndex = append(keyIndex, i)
				break
			}
		}
	}

	rows := make([][]interface{}, 0, len(table.Rows))
	position := make(map[string]int, len(table.Rows))
	for _, row := range table.Rows {
		key, ok := rowKey(row, keyIndex)
		if !ok || len(keyIndex) != len(snapshotKeyColumns) {
			rows = append(rows, row)
			continue
		}
		if i, seen := position[key]; seen {
			rows[i] = row
			continue
		}
		position[key] = len(rows)
		rows = append(rows, row)
	}

	size := len(rows)
	if len(table.Columns) > 0 {
		size = max(maxParams/len(table.Columns), 1)
	}

	chunks := make([]*domain.Table, 0, len(rows)/size+1)
	for start := 0; start < len(rows); start += size {
		end := min(start+size, len(rows))
		chunks = append(chunks, &domain.Table{Columns: table.Columns, Rows: rows[start:end]})
	}
	return chunks
}

// rowKey falha quando alguma coluna da chave é NULL, já que NULLs nunca conflitam
func rowKey(row []interface{}, keyIndex []int) (string, bool) {
	parts := make([]string, len(keyIndex))
	for i, idx := range keyIndex {
		if idx >= len(row) || row[idx] == nil {
			return "", false
		}
		parts[i] = fmt.Sprint(row[idx])
	}
	return strings.Join(parts, "\x00"), true
}

func buildSnapshotUpsert(tableName string, table *domain.Table) (string, []interface{}, error) {
	columns := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		columns[i] = pq.QuoteIdentifier(c)
	}

	builder := squirrel.
		Insert(pq.QuoteIdentifier(tableName)).
		Columns(columns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, row := range table.Rows {
		builder = builder.Values(row...)
	}

	return builder.Suffix(upsertSuffix(table.Columns)).ToSql()
}

func upsertSuffix(columns []string) string {
	isKey := make(map[string]bool, len(snapshotKeyColumns))
	keys := make([]string, len(snapshotKeyColumns))
	for i, k := range snapshotKeyColumns {
		isKey[k] = true
		keys[i] = pq.QuoteIdentifier(k)
	}

	updates := make([]string, 0, len(columns))
	for _, c := range columns {
		if isKey[c] {
			continue
		}
		quoted := pq.QuoteIdentifier(c)
		updates = append(updates, fmt.Sprintf("%s = EXCLUDED.%s", quoted, quoted))
	}

	conflict := fmt.Sprintf("ON CONFLICT (%s)", strings.Join(keys, ", "))
	if len(updates) == 0 {
		return conflict + " DO NOTHING"
	}
	return conflict + " DO UPDATE SET " + strings.Join(updates, ", ")
}
