// Package reporting calcula os KPIs e agregados do dashboard a partir de
// um recorte do ledger e do planejamento do mês de referência.
package reporting

import (
	"sort"
	"strconv"
	"time"

	"github.com/nexlev/sales-ledger-api/internal/domain"
	"github.com/nexlev/sales-ledger-api/internal/usecases/planning"
	"github.com/nexlev/sales-ledger-api/pkg/utils"
)

// Reporter produz os derivados de leitura do dashboard. Todos os métodos
// degradam para resultado vazio/zerado diante de recorte ou plano vazio.
type Reporter interface {
	CalculateKPIs(records []domain.SalesRecord, refDate time.Time) domain.KPISnapshot
	DayWise(records []domain.SalesRecord, refDate time.Time) []domain.DayPerformance
	MTDChart(records []domain.SalesRecord, refDate time.Time) domain.MTDChart
	WeekWise(records []domain.SalesRecord) []domain.WeekSales
	ASINTargetVsActual(ledger []domain.SalesRecord, from, to time.Time) []domain.ASINTargetRow
	CategoryTargetVsActual(ledger []domain.SalesRecord, from, to time.Time) []domain.CategoryTargetRow
}

type Service struct {
	planResolver planning.Resolver
}

func NewService(planResolver planning.Resolver) Reporter {
	return &Service{
		planResolver: planResolver,
	}
}

// FilterByDateRange recorta o ledger ao intervalo [from, to], inclusivo nas
// duas pontas, comparando apenas a data.
func FilterByDateRange(records []domain.SalesRecord, from, to time.Time) []domain.SalesRecord {
	from = utils.TruncateToDay(from)
	to = utils.TruncateToDay(to)

	filtered := make([]domain.SalesRecord, 0, len(records))
	for _, record := range records {
		d := utils.TruncateToDay(record.Date)
		if d.Before(from) || d.After(to) {
			continue
		}
		filtered = append(filtered, record)
	}

	return filtered
}

// CalculateKPIs computa meta mensal, meta acumulada, realizado e as razões
// de atingimento/ritmo. As metas vêm exclusivamente do planejamento do mês
// de referência; sem plano, o snapshot é todo zero.
func (s *Service) CalculateKPIs(records []domain.SalesRecord, refDate time.Time) domain.KPISnapshot {
	if len(records) == 0 {
		return domain.KPISnapshot{}
	}

	plan := s.planResolver.ResolveMain(refDate)
	if plan.IsEmpty() {
		return domain.KPISnapshot{}
	}

	monthlyCol := planning.MonthlyGoalColumn(refDate)
	if !plan.HasColumn(monthlyCol) || !plan.HasColumn(planning.ColPerDayGoalProjected) {
		return domain.KPISnapshot{}
	}

	monthlyTarget := planning.SumColumn(plan, monthlyCol)
	perDayTarget := planning.SumColumn(plan, planning.ColPerDayGoalProjected)

	days := countDistinctDates(records)
	targetTillDate := perDayTarget * float64(days)
	actual := sumNetSales(records)

	achievement := utils.SafeRatio(actual, targetTillDate)

	return domain.KPISnapshot{
		MonthlyTarget:    utils.RoundWithOneDecimalPlace(monthlyTarget),
		TargetTillDate:   utils.RoundWithOneDecimalPlace(targetTillDate),
		Actual:           utils.RoundWithOneDecimalPlace(actual),
		AchievementRatio: achievement,
		Pace:             achievement,
	}
}

// DayWise agrupa o recorte por dia e compara com a meta diária constante
// do planejamento.
func (s *Service) DayWise(records []domain.SalesRecord, refDate time.Time) []domain.DayPerformance {
	if len(records) == 0 {
		return []domain.DayPerformance{}
	}

	plan := s.planResolver.ResolveMain(refDate)
	if plan.IsEmpty() || !plan.HasColumn(planning.ColPerDayGoalProjected) {
		return []domain.DayPerformance{}
	}

	perDayTarget := planning.SumColumn(plan, planning.ColPerDayGoalProjected)

	dates, totals := netSalesByDate(records)

	series := make([]domain.DayPerformance, 0, len(dates))
	for _, date := range dates {
		actual := totals[date]
		series = append(series, domain.DayPerformance{
			Date:     date,
			Actual:   actual,
			Target:   perDayTarget,
			Achieved: utils.RoundWithTwoDecimalPlace(utils.SafeRatio(actual, perDayTarget)),
		})
	}

	return series
}

// MTDChart monta as séries acumuladas do mês. A meta cresce um passo por
// posição na série, não por dia de calendário: um buraco de datas no
// recorte não alarga o degrau.
func (s *Service) MTDChart(records []domain.SalesRecord, refDate time.Time) domain.MTDChart {
	if len(records) == 0 {
		return domain.EmptyMTDChart()
	}

	plan := s.planResolver.ResolveMain(refDate)
	if plan.IsEmpty() || !plan.HasColumn(planning.ColPerDayGoalProjected) {
		return domain.EmptyMTDChart()
	}

	perDayTarget := planning.SumColumn(plan, planning.ColPerDayGoalProjected)

	dates, totals := netSalesByDate(records)

	chart := domain.MTDChart{
		Labels: make([]string, 0, len(dates)),
		Actual: make([]float64, 0, len(dates)),
		Target: make([]float64, 0, len(dates)),
	}

	var cumActual float64
	for i, date := range dates {
		cumActual += totals[date]

		parsed, err := time.Parse(time.DateOnly, date)
		if err != nil {
			continue
		}

		chart.Labels = append(chart.Labels, parsed.Format("02 Jan"))
		chart.Actual = append(chart.Actual, utils.RoundWithOneDecimalPlace(cumActual))
		chart.Target = append(chart.Target, utils.RoundWithOneDecimalPlace(perDayTarget*float64(i+1)))
	}

	return chart
}

// WeekWise agrupa a receita líquida por semana ISO.
func (s *Service) WeekWise(records []domain.SalesRecord) []domain.WeekSales {
	if len(records) == 0 {
		return []domain.WeekSales{}
	}

	totals := make(map[string]float64)
	for _, record := range records {
		year, week := record.Date.ISOWeek()
		label := strconv.Itoa(year) + "-W"
		if week < 10 {
			label += "0"
		}
		label += strconv.Itoa(week)
		totals[label] += record.NetSales
	}

	weeks := make([]string, 0, len(totals))
	for week := range totals {
		weeks = append(weeks, week)
	}
	sort.Strings(weeks)

	series := make([]domain.WeekSales, 0, len(weeks))
	for _, week := range weeks {
		series = append(series, domain.WeekSales{
			Week:     week,
			NetSales: utils.RoundWithOneDecimalPlace(totals[week]),
		})
	}

	return series
}

// ASINTargetVsActual compara realizado e meta por ASIN no período. O join
// parte do universo do plano: todo ASIN planejado aparece, mesmo com
// realizado zero; meta zero nunca divide.
func (s *Service) ASINTargetVsActual(ledger []domain.SalesRecord, from, to time.Time) []domain.ASINTargetRow {
	filtered := FilterByDateRange(ledger, from, to)
	if len(filtered) == 0 {
		return []domain.ASINTargetRow{}
	}

	plan := s.planResolver.ResolveMain(from)
	if plan.IsEmpty() {
		return []domain.ASINTargetRow{}
	}

	days := float64(countDistinctDates(filtered))
	perDayByASIN := planning.ColumnByKey(plan, planning.ColASIN, planning.ColPerDayGoalProjected)

	actualByASIN := make(map[string]float64)
	for _, record := range filtered {
		actualByASIN[record.ASIN] += record.NetSales
	}

	rows := make([]domain.ASINTargetRow, 0, plan.Len())
	for i := 0; i < plan.Len(); i++ {
		asin := plan.Value(i, planning.ColASIN)
		if asin == "" {
			continue
		}

		target := perDayByASIN[asin] * days
		actual := actualByASIN[asin]

		rows = append(rows, domain.ASINTargetRow{
			ASIN:        asin,
			Category:    plan.Value(i, planning.ColCategory),
			Target:      utils.RoundWithOneDecimalPlace(target),
			Actual:      utils.RoundWithOneDecimalPlace(actual),
			Achievement: formatAchievement(actual, target),
		})
	}

	return rows
}

// CategoryTargetVsActual compara realizado e meta por categoria. O realizado
// de cada linha do ledger é mapeado para a categoria via plano Main; o join
// parte do universo de categorias da aba Category.
func (s *Service) CategoryTargetVsActual(ledger []domain.SalesRecord, from, to time.Time) []domain.CategoryTargetRow {
	filtered := FilterByDateRange(ledger, from, to)
	if len(filtered) == 0 {
		return []domain.CategoryTargetRow{}
	}

	mainPlan := s.planResolver.ResolveMain(from)
	categoryPlan := s.planResolver.ResolveCategory(from)
	if mainPlan.IsEmpty() || categoryPlan.IsEmpty() {
		return []domain.CategoryTargetRow{}
	}

	categoryByASIN := planning.CategoryByASIN(mainPlan)

	actualByCategory := make(map[string]float64)
	for _, record := range filtered {
		category, ok := categoryByASIN[record.ASIN]
		if !ok || category == "" {
			// Receita de ASIN sem categoria no plano fica de fora; a
			// auditoria é quem aponta ASINs fora do planejamento.
			continue
		}
		actualByCategory[category] += record.NetSales
	}

	days := float64(countDistinctDates(filtered))
	perDayByCategory := planning.ColumnByKey(categoryPlan, planning.ColCategory, planning.ColPerDayGoal)

	rows := make([]domain.CategoryTargetRow, 0, categoryPlan.Len())
	for i := 0; i < categoryPlan.Len(); i++ {
		category := categoryPlan.Value(i, planning.ColCategory)
		if category == "" {
			continue
		}

		perDay := perDayByCategory[category]
		target := perDay * days
		actual := actualByCategory[category]

		rows = append(rows, domain.CategoryTargetRow{
			Category:     category,
			PerDayTarget: utils.RoundWithOneDecimalPlace(perDay),
			Target:       utils.RoundWithOneDecimalPlace(target),
			Actual:       utils.RoundWithOneDecimalPlace(actual),
			Achievement:  formatAchievement(actual, target),
		})
	}

	return rows
}

// formatAchievement formata a razão realizado/meta como percentual com
// sufixo literal "%", com meta zero degradando para "0%".
func formatAchievement(actual, target float64) string {
	pct := utils.RoundWithOneDecimalPlace(utils.SafeRatio(actual, target) * 100)
	return strconv.FormatFloat(pct, 'f', -1, 64) + "%"
}

// netSalesByDate agrupa a receita líquida por dia e devolve as datas em
// ordem crescente.
func netSalesByDate(records []domain.SalesRecord) ([]string, map[string]float64) {
	totals := make(map[string]float64)
	for _, record := range records {
		totals[record.Date.Format(time.DateOnly)] += record.NetSales
	}

	dates := make([]string, 0, len(totals))
	for date := range totals {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	return dates, totals
}

func countDistinctDates(records []domain.SalesRecord) int {
	distinct := make(map[string]bool)
	for _, record := range records {
		distinct[record.Date.Format(time.DateOnly)] = true
	}

	return len(distinct)
}

func sumNetSales(records []domain.SalesRecord) float64 {
	var total float64
	for _, record := range records {
		total += record.NetSales
	}

	return total
}
