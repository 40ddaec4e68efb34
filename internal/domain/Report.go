package domain

// DayPerformance é uma linha da série dia a dia: receita líquida do dia
// contra a meta diária do planejamento.
type DayPerformance struct {
	Date     string  `json:"date"` // formato 2006-01-02
	Actual   float64 `json:"actual"`
	Target   float64 `json:"target"`
	Achieved float64 `json:"achieved"`
}

// MTDChart são as séries acumuladas do mês para o gráfico do dashboard.
// Target cresce por posição na série (um passo por dia presente no recorte),
// não por dia de calendário.
type MTDChart struct {
	Labels []string  `json:"labels"` // dia + mês abreviado (ex: "04 Aug")
	Actual []float64 `json:"actual"`
	Target []float64 `json:"target"`
}

// EmptyMTDChart retorna um gráfico com séries vazias (nunca nulas) para
// recortes sem dados.
func EmptyMTDChart() MTDChart {
	return MTDChart{
		Labels: []string{},
		Actual: []float64{},
		Target: []float64{},
	}
}

// WeekSales é uma linha do agregado semanal (semanas ISO).
type WeekSales struct {
	Week     string  `json:"week"` // formato 2006-W01
	NetSales float64 `json:"net_sales"`
}

// ASINTargetRow é uma linha da tabela meta vs. realizado por ASIN.
// Todo ASIN do planejamento aparece, mesmo com realizado zero.
type ASINTargetRow struct {
	ASIN        string  `json:"asin"`
	Category    string  `json:"category"`
	Target      float64 `json:"target"`
	Actual      float64 `json:"actual"`
	Achievement string  `json:"achievement_pct"` // percentual com sufixo literal "%"
}

// CategoryTargetRow é uma linha da tabela meta vs. realizado por categoria.
type CategoryTargetRow struct {
	Category     string  `json:"category"`
	PerDayTarget float64 `json:"per_day_target"`
	Target       float64 `json:"target"`
	Actual       float64 `json:"actual"`
	Achievement  string  `json:"achievement_pct"`
}
