package tabular

// Table é um export tabular já carregado, com cabeçalhos normalizados.
// Os dados ficam como texto; a interpretação (dinheiro, datas) é do chamador.
type Table struct {
	columns map[string]int
	rows    [][]string
}

// NewTable monta uma tabela a partir da linha de cabeçalho e das linhas de
// dados. Cabeçalhos são normalizados; em caso de duplicata, a primeira
// coluna vence.
func NewTable(header []string, rows [][]string) *Table {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		key := NormalizeHeader(name)
		if _, exists := columns[key]; !exists {
			columns[key] = i
		}
	}

	return &Table{columns: columns, rows: rows}
}

// Empty devolve uma tabela vazia, o resultado padrão para arquivo/aba
// ausente ou ilegível.
func Empty() *Table {
	return &Table{columns: map[string]int{}, rows: nil}
}

func (t *Table) IsEmpty() bool {
	return t == nil || len(t.rows) == 0
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

func (t *Table) HasColumn(key string) bool {
	if t == nil {
		return false
	}
	_, ok := t.columns[key]
	return ok
}

// Value retorna a célula da linha i na coluna key, ou "" se a coluna não
// existe ou a linha é curta (células finais vazias são omitidas em XLSX).
func (t *Table) Value(i int, key string) string {
	if t == nil || i < 0 || i >= len(t.rows) {
		return ""
	}

	col, ok := t.columns[key]
	if !ok || col >= len(t.rows[i]) {
		return ""
	}

	return t.rows[i][col]
}

// SetValue sobrescreve a célula da linha i na coluna key, estendendo a
// linha se necessário. Usado pela normalização de ASINs do planejamento.
func (t *Table) SetValue(i int, key, value string) {
	if t == nil || i < 0 || i >= len(t.rows) {
		return
	}

	col, ok := t.columns[key]
	if !ok {
		return
	}

	for len(t.rows[i]) <= col {
		t.rows[i] = append(t.rows[i], "")
	}

	t.rows[i][col] = value
}

// Filter devolve uma nova tabela apenas com as linhas aprovadas pelo
// predicado, preservando o mapa de colunas.
func (t *Table) Filter(keep func(i int) bool) *Table {
	if t == nil {
		return Empty()
	}

	filtered := make([][]string, 0, len(t.rows))
	for i := range t.rows {
		if keep(i) {
			filtered = append(filtered, t.rows[i])
		}
	}

	return &Table{columns: t.columns, rows: filtered}
}
