package domain

// Table é um resultado tabular genérico (consulta ao warehouse ou conteúdo de aba)
type Table struct {
	Columns []string
	Rows    [][]interface{}
}

// Values devolve cabeçalho + linhas no formato aceito pelas planilhas
func (t *Table) Values() [][]interface{} {
	header := make([]interface{}, len(t.Columns))
	for i, c := range t.Columns {
		header[i] = c
	}

	values := make([][]interface{}, 0, len(t.Rows)+1)
	values = append(values, header)
	values = append(values, t.Rows...)
	return values
}

// ColumnIndex retorna a posição da coluna ou -1
func (t *Table) ColumnIndex(name string) int {
	for i, c := range t.Columns {
		if c == name {
			return i
		}
	}
	return -1
}
