package reporting

import (
	"testing"
	"time"

	"github.com/nexlev/sales-ledger-api/infrastructure/tabular"
	"github.com/nexlev/sales-ledger-api/internal/domain"
	"github.com/nexlev/sales-ledger-api/internal/usecases/planning/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var refDate = time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)

func day(d int) time.Time {
	return time.Date(2025, time.August, d, 0, 0, 0, 0, time.UTC)
}

func record(d int, account, asin string, net float64) domain.SalesRecord {
	return domain.SalesRecord{
		Date:       day(d),
		Account:    account,
		ASIN:       asin,
		GrossSales: net * 1.18,
		NetSales:   net,
	}
}

// mainPlan monta uma aba Main de agosto com metas por ASIN.
func mainPlan() *tabular.Table {
	return tabular.NewTable(
		[]string{"ASIN", "Category", "Aug Goal (Projected)", "Per Day Goal (Projected)"},
		[][]string{
			{"B0ABC", "Audio", "31000", "1000"},
			{"B0DEF", "Wearables", "15500", "500"},
		},
	)
}

func categoryPlan() *tabular.Table {
	return tabular.NewTable(
		[]string{"Category", "Per Day Goal"},
		[][]string{
			{"Audio", "1000"},
			{"Wearables", "500"},
		},
	)
}

func newReportService(t *testing.T) (Reporter, *mocks.MockResolver) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockResolver := mocks.NewMockResolver(ctrl)
	return NewService(mockResolver), mockResolver
}

func TestFilterByDateRange(t *testing.T) {
	ledger := []domain.SalesRecord{
		record(1, "Nexlev", "B0ABC", 100),
		record(10, "Nexlev", "B0ABC", 200),
		record(20, "Nexlev", "B0ABC", 300),
	}

	filtered := FilterByDateRange(ledger, day(1), day(10))

	// Intervalo inclusivo nas duas pontas
	require.Len(t, filtered, 2)
	assert.Equal(t, day(1), filtered[0].Date)
	assert.Equal(t, day(10), filtered[1].Date)

	assert.Empty(t, FilterByDateRange(ledger, day(25), day(31)))
}

func TestCalculateKPIs(t *testing.T) {
	service, mockResolver := newReportService(t)
	mockResolver.EXPECT().ResolveMain(refDate).Return(mainPlan())

	// Dois dias distintos de vendas
	records := []domain.SalesRecord{
		record(1, "Nexlev", "B0ABC", 1500),
		record(1, "Vendor Central", "B0DEF", 300),
		record(2, "Nexlev", "B0ABC", 1200),
	}

	kpis := service.CalculateKPIs(records, refDate)

	assert.Equal(t, 46500.0, kpis.MonthlyTarget)
	// 1500 por dia de meta x 2 dias com vendas
	assert.Equal(t, 3000.0, kpis.TargetTillDate)
	assert.Equal(t, 3000.0, kpis.Actual)
	assert.InDelta(t, 1.0, kpis.AchievementRatio, 1e-9)
	// Atingimento e ritmo compartilham a mesma definição
	assert.Equal(t, kpis.AchievementRatio, kpis.Pace)
}

func TestCalculateKPIs_Degradacoes(t *testing.T) {
	t.Run("recorte vazio", func(t *testing.T) {
		service, _ := newReportService(t)
		assert.Equal(t, domain.KPISnapshot{}, service.CalculateKPIs(nil, refDate))
	})

	t.Run("plano ausente", func(t *testing.T) {
		service, mockResolver := newReportService(t)
		mockResolver.EXPECT().ResolveMain(refDate).Return(tabular.Empty())

		kpis := service.CalculateKPIs([]domain.SalesRecord{record(1, "Nexlev", "B0ABC", 100)}, refDate)
		assert.Equal(t, domain.KPISnapshot{}, kpis)
	})

	t.Run("plano sem a coluna do mês", func(t *testing.T) {
		service, mockResolver := newReportService(t)
		plan := tabular.NewTable(
			[]string{"ASIN", "Per Day Goal (Projected)"},
			[][]string{{"B0ABC", "1000"}},
		)
		mockResolver.EXPECT().ResolveMain(refDate).Return(plan)

		kpis := service.CalculateKPIs([]domain.SalesRecord{record(1, "Nexlev", "B0ABC", 100)}, refDate)
		assert.Equal(t, domain.KPISnapshot{}, kpis)
	})
}

func TestDayWise(t *testing.T) {
	service, mockResolver := newReportService(t)
	mockResolver.EXPECT().ResolveMain(refDate).Return(mainPlan())

	records := []domain.SalesRecord{
		record(2, "Nexlev", "B0ABC", 750),
		record(1, "Nexlev", "B0ABC", 1500),
		record(1, "Vendor Central", "B0DEF", 300),
	}

	series := service.DayWise(records, refDate)

	require.Len(t, series, 2)
	// Dias em ordem crescente, agregados por data
	assert.Equal(t, "2025-08-01", series[0].Date)
	assert.Equal(t, 1800.0, series[0].Actual)
	assert.Equal(t, 1500.0, series[0].Target)
	assert.Equal(t, 1.2, series[0].Achieved)

	assert.Equal(t, "2025-08-02", series[1].Date)
	assert.Equal(t, 0.5, series[1].Achieved)

	// A soma do day-wise bate com a soma direta do recorte
	var total float64
	for _, point := range series {
		total += point.Actual
	}
	assert.InDelta(t, 2550.0, total, 1e-9)
}

func TestMTDChart(t *testing.T) {
	service, mockResolver := newReportService(t)
	mockResolver.EXPECT().ResolveMain(refDate).Return(mainPlan())

	// Buraco de datas entre os dias 1 e 5
	records := []domain.SalesRecord{
		record(1, "Nexlev", "B0ABC", 1000),
		record(5, "Nexlev", "B0ABC", 2000),
		record(6, "Nexlev", "B0ABC", 500),
	}

	chart := service.MTDChart(records, refDate)

	require.Len(t, chart.Labels, 3)
	assert.Equal(t, []string{"01 Aug", "05 Aug", "06 Aug"}, chart.Labels)

	// Realizado acumulado é monotônico
	assert.Equal(t, []float64{1000, 3000, 3500}, chart.Actual)

	// A meta sobe um degrau por posição da série, não por dia corrido
	assert.Equal(t, []float64{1500, 3000, 4500}, chart.Target)
}

func TestMTDChart_RecorteVazio(t *testing.T) {
	service, _ := newReportService(t)

	chart := service.MTDChart(nil, refDate)
	assert.Empty(t, chart.Labels)
	assert.Empty(t, chart.Actual)
	assert.Empty(t, chart.Target)
}

func TestWeekWise(t *testing.T) {
	service, _ := newReportService(t)

	// 2025-08-04 a 2025-08-10 é a semana ISO 32; 2025-08-11 começa a 33
	records := []domain.SalesRecord{
		record(4, "Nexlev", "B0ABC", 100),
		record(10, "Nexlev", "B0ABC", 200),
		record(11, "Nexlev", "B0ABC", 400),
	}

	series := service.WeekWise(records)

	require.Len(t, series, 2)
	assert.Equal(t, "2025-W32", series[0].Week)
	assert.Equal(t, 300.0, series[0].NetSales)
	assert.Equal(t, "2025-W33", series[1].Week)
	assert.Equal(t, 400.0, series[1].NetSales)
}

func TestASINTargetVsActual(t *testing.T) {
	service, mockResolver := newReportService(t)
	mockResolver.EXPECT().ResolveMain(day(1)).Return(mainPlan())

	// Dois dias distintos; B0DEF sem nenhuma venda
	ledger := []domain.SalesRecord{
		record(1, "Nexlev", "B0ABC", 1500),
		record(2, "Nexlev", "B0ABC", 500),
	}

	rows := service.ASINTargetVsActual(ledger, day(1), day(2))

	require.Len(t, rows, 2)
	assert.Equal(t, "B0ABC", rows[0].ASIN)
	assert.Equal(t, "Audio", rows[0].Category)
	assert.Equal(t, 2000.0, rows[0].Target)
	assert.Equal(t, 2000.0, rows[0].Actual)
	assert.Equal(t, "100%", rows[0].Achievement)

	// ASIN planejado sem vendas aparece com realizado zero
	assert.Equal(t, "B0DEF", rows[1].ASIN)
	assert.Equal(t, 0.0, rows[1].Actual)
	assert.Equal(t, "0%", rows[1].Achievement)
}

func TestASINTargetVsActual_RecorteVazio(t *testing.T) {
	service, _ := newReportService(t)

	rows := service.ASINTargetVsActual(nil, day(1), day(2))
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

// Os agregados degradam para fatia vazia, nunca nula: o payload JSON do
// dashboard carrega arrays vazios em todas as séries, como o gráfico MTD.
func TestAgregados_RecorteVazioViraFatiaVazia(t *testing.T) {
	service, mockResolver := newReportService(t)
	mockResolver.EXPECT().ResolveCategory(gomock.Any()).Return(tabular.Empty()).AnyTimes()
	mockResolver.EXPECT().ResolveMain(gomock.Any()).Return(tabular.Empty()).AnyTimes()

	daywise := service.DayWise(nil, refDate)
	assert.NotNil(t, daywise)
	assert.Empty(t, daywise)

	weekwise := service.WeekWise(nil)
	assert.NotNil(t, weekwise)
	assert.Empty(t, weekwise)

	categories := service.CategoryTargetVsActual(nil, day(1), day(2))
	assert.NotNil(t, categories)
	assert.Empty(t, categories)

	// Plano ausente com recorte presente também degrada para vazio
	withData := []domain.SalesRecord{record(1, "Nexlev", "B0ABC", 100)}
	daywise = service.DayWise(withData, refDate)
	assert.NotNil(t, daywise)
	assert.Empty(t, daywise)
}

func TestCategoryTargetVsActual(t *testing.T) {
	service, mockResolver := newReportService(t)
	mockResolver.EXPECT().ResolveMain(day(1)).Return(mainPlan())
	mockResolver.EXPECT().ResolveCategory(day(1)).Return(categoryPlan())

	ledger := []domain.SalesRecord{
		record(1, "Nexlev", "B0ABC", 800),
		record(1, "Vendor Central", "B0DEF", 250),
		// ASIN fora do plano não contribui para nenhuma categoria
		record(1, "Nexlev", "B0FORA", 999),
	}

	rows := service.CategoryTargetVsActual(ledger, day(1), day(1))

	require.Len(t, rows, 2)
	assert.Equal(t, "Audio", rows[0].Category)
	assert.Equal(t, 1000.0, rows[0].PerDayTarget)
	assert.Equal(t, 1000.0, rows[0].Target)
	assert.Equal(t, 800.0, rows[0].Actual)
	assert.Equal(t, "80%", rows[0].Achievement)

	assert.Equal(t, "Wearables", rows[1].Category)
	assert.Equal(t, 250.0, rows[1].Actual)
	assert.Equal(t, "50%", rows[1].Achievement)
}
