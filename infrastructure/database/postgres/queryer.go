package postgres

import (
	"context"
	"database/sql"

	"github.com/vfg2006/autopilot-sync/internal/domain"
)

// Queryer é satisfeito por *sql.DB e *sql.Tx
type Queryer interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// Rows é o subconjunto de *sql.Rows usado por ScanTable
type Rows interface {
	Columns() ([]string, error)
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ReadTable executa uma consulta de colunas arbitrárias e devolve o resultado tabular
func ReadTable(ctx context.Context, q Queryer, query string, args ...interface{}) (*domain.Table, error) {
	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return ScanTable(rows)
}

// ScanTable lê todas as linhas mantendo os valores do driver ([]byte, int64,
// float64, bool, time.Time ou nil). []byte é copiado porque o driver reusa o buffer.
func ScanTable(rows Rows) (*domain.Table, error) {
	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	table := &domain.Table{
		Columns: columns,
		Rows:    make([][]interface{}, 0),
	}

	for rows.Next() {
		values := make([]interface{}, len(columns))
		dest := make([]interface{}, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}

		for i, v := range values {
			if b, ok := v.([]byte); ok {
				values[i] = append([]byte(nil), b...)
			}
		}
		table.Rows = append(table.Rows, values)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return table, nil
}
