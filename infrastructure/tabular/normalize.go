package tabular

import "strings"

var headerReplacer = strings.NewReplacer(
	"\uFEFF", "",
	"(", "",
	")", "",
	"-", "",
	"_", "",
	" ", "",
)

// NormalizeHeader canonicaliza um cabeçalho de planilha: minúsculas, sem
// BOM, parênteses, hífens, sublinhados ou espaços. Função pura e total;
// cabeçalhos equivalentes de formatos diferentes ("Ordered Product Sales",
// "ordered_product_sales") colapsam para a mesma chave.
func NormalizeHeader(name string) string {
	return headerReplacer.Replace(strings.ToLower(strings.TrimSpace(name)))
}
