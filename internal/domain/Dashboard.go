package domain

// DashboardResponse agrega tudo o que a tela principal renderiza para um
// recorte do ledger. As tabelas chegam como dados estruturados; a camada
// de apresentação decide o formato final.
type DashboardResponse struct {
	Months        []string            `json:"months"`
	SelectedMonth string              `json:"selected_month,omitempty"`
	FromDate      string              `json:"from_date,omitempty"`
	ToDate        string              `json:"to_date,omitempty"`
	KPIs          KPISnapshot         `json:"kpis"`
	DayWise       []DayPerformance    `json:"daywise"`
	Chart         MTDChart            `json:"chart"`
	WeekWise      []WeekSales         `json:"weekwise"`
	ASINTable     []ASINTargetRow     `json:"asin_target_table"`
	CategoryTable []CategoryTargetRow `json:"category_target_table"`
	Validation    *ValidationReport   `json:"validation,omitempty"`
	Message       string              `json:"message,omitempty"`
}

// UploadResult resume um upload diário de vendas processado.
type UploadResult struct {
	BatchID      string         `json:"batch_id"`
	SalesDate    string         `json:"sales_date"`
	ReplacedDay  bool           `json:"replaced_day"`
	RowsIngested int            `json:"rows_ingested"`
	RowsBySource map[string]int `json:"rows_by_source"`
}
