package domain

// KPISnapshot é o resumo de desempenho de um recorte do ledger contra o
// planejamento do mês de referência. Valor derivado, nunca persistido.
//
// AchievementRatio e Pace carregam sempre o mesmo valor; a duplicação é
// intencional e preservada do modelo original de negócio.
type KPISnapshot struct {
	MonthlyTarget    float64 `json:"monthly_target"`
	TargetTillDate   float64 `json:"target_till_date"`
	Actual           float64 `json:"actual"`
	AchievementRatio float64 `json:"achievement_ratio"`
	Pace             float64 `json:"pace"`
}
