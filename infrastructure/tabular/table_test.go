package tabular

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTable(t *testing.T) {
	table := NewTable(
		[]string{"ASIN", "Ordered Product Sales", "asin"},
		[][]string{
			{"B0ABC", "₹100.00", "ignorado"},
			{"B0DEF"},
		},
	)

	assert.Equal(t, 2, table.Len())
	assert.True(t, table.HasColumn("asin"))
	assert.True(t, table.HasColumn("orderedproductsales"))

	// Cabeçalho duplicado: a primeira coluna vence
	assert.Equal(t, "B0ABC", table.Value(0, "asin"))

	// Linha curta degrada para célula vazia
	assert.Equal(t, "", table.Value(1, "orderedproductsales"))

	// Coluna inexistente e índice fora do intervalo
	assert.Equal(t, "", table.Value(0, "categoria"))
	assert.Equal(t, "", table.Value(5, "asin"))
}

func TestTable_SetValue(t *testing.T) {
	table := NewTable([]string{"asin", "category"}, [][]string{{"b0abc"}})

	// Estende a linha curta até a coluna pedida
	table.SetValue(0, "category", "Audio")
	assert.Equal(t, "Audio", table.Value(0, "category"))

	table.SetValue(0, "asin", "B0ABC")
	assert.Equal(t, "B0ABC", table.Value(0, "asin"))

	// Coluna e linha inexistentes são ignoradas sem pânico
	table.SetValue(0, "inexistente", "x")
	table.SetValue(9, "asin", "x")
}

func TestTable_Filter(t *testing.T) {
	table := NewTable([]string{"asin"}, [][]string{{"A"}, {"B"}, {"C"}})

	filtered := table.Filter(func(i int) bool { return table.Value(i, "asin") != "B" })

	assert.Equal(t, 2, filtered.Len())
	assert.Equal(t, "A", filtered.Value(0, "asin"))
	assert.Equal(t, "C", filtered.Value(1, "asin"))
}

func TestTable_Empty(t *testing.T) {
	var nilTable *Table

	assert.True(t, Empty().IsEmpty())
	assert.True(t, nilTable.IsEmpty())
	assert.Equal(t, 0, nilTable.Len())
	assert.False(t, nilTable.HasColumn("asin"))
	assert.Equal(t, "", nilTable.Value(0, "asin"))
}
