package domain

// ValidationReport é o resultado da auditoria somente leitura do ledger.
// Derivado e efêmero: existe apenas para exibição no dashboard.
//
// TotalViaDirectSum e TotalViaDayWiseSum são a mesma receita líquida
// computada por dois caminhos independentes; Difference diferente de zero
// sinaliza bug de agregação ou efeito de mês parcial na seleção.
type ValidationReport struct {
	ExtraASINCount        int     `json:"extra_asin_count"`
	FlaggedLegacyRowCount int     `json:"flagged_legacy_row_count"`
	TotalViaDirectSum     float64 `json:"total_via_direct_sum"`
	TotalViaDayWiseSum    float64 `json:"total_via_daywise_sum"`
	Difference            float64 `json:"difference"`
	Diagnostic            string  `json:"diagnostic"`
}
