package auditing

import (
	"testing"
	"time"

	"github.com/nexlev/sales-ledger-api/infrastructure/tabular"
	"github.com/nexlev/sales-ledger-api/internal/config"
	"github.com/nexlev/sales-ledger-api/internal/domain"
	"github.com/nexlev/sales-ledger-api/internal/usecases/planning/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func day(d int) time.Time {
	return time.Date(2025, time.August, d, 0, 0, 0, 0, time.UTC)
}

func planWith(asins ...string) *tabular.Table {
	rows := make([][]string, 0, len(asins))
	for _, asin := range asins {
		rows = append(rows, []string{asin})
	}
	return tabular.NewTable([]string{"ASIN"}, rows)
}

func newAuditService(t *testing.T) (Auditor, *mocks.MockResolver) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockResolver := mocks.NewMockResolver(ctrl)

	cfg := &config.Config{}
	cfg.Audit.LegacyAccount = "Nexlev"

	return NewService(mockResolver, cfg), mockResolver
}

func TestValidate_DadosConsistentes(t *testing.T) {
	service, mockResolver := newAuditService(t)
	mockResolver.EXPECT().ResolveMain(gomock.Any()).Return(planWith("B0ABC"))

	ledger := []domain.SalesRecord{
		{Date: day(1), Account: "Nexlev", ASIN: "B0ABC", GrossSales: 100, NetSales: 100},
		{Date: day(2), Account: "Nexlev", ASIN: "B0ABC", GrossSales: 200, NetSales: 200},
	}

	report := service.Validate(ledger, nil, nil)

	require.NotNil(t, report)
	assert.Zero(t, report.ExtraASINCount)
	assert.Zero(t, report.FlaggedLegacyRowCount)
	assert.Equal(t, 300.0, report.TotalViaDirectSum)
	assert.Equal(t, 300.0, report.TotalViaDayWiseSum)
	assert.Zero(t, report.Difference)
	assert.Equal(t, "Todas as validações passaram. Dados consistentes.", report.Diagnostic)
}

func TestValidate_ASINsForaDoPlano(t *testing.T) {
	service, mockResolver := newAuditService(t)
	mockResolver.EXPECT().ResolveMain(gomock.Any()).Return(planWith("B0ABC"))

	ledger := []domain.SalesRecord{
		{Date: day(1), Account: "Vendor Central", ASIN: "B0ABC", GrossSales: 100, NetSales: 100},
		{Date: day(1), Account: "Vendor Central", ASIN: "B0FORA", GrossSales: 50, NetSales: 50},
		{Date: day(2), Account: "Vendor Central", ASIN: "B0FORA", GrossSales: 70, NetSales: 70},
	}

	report := service.Validate(ledger, nil, nil)

	require.NotNil(t, report)
	// ASINs distintos fora do plano, não linhas
	assert.Equal(t, 1, report.ExtraASINCount)
	assert.Equal(t, "Ledger contém ASINs ausentes do planejamento.", report.Diagnostic)
}

func TestValidate_LinhasLegadasB2B(t *testing.T) {
	service, mockResolver := newAuditService(t)
	mockResolver.EXPECT().ResolveMain(gomock.Any()).Return(planWith("B0ABC"))

	ledger := []domain.SalesRecord{
		// Conta legada com gross != net: resíduo da era B2B
		{Date: day(1), Account: "Nexlev", ASIN: "B0ABC", GrossSales: 118, NetSales: 100},
		// Mesma divergência em outra conta não conta como legado
		{Date: day(1), Account: "Vendor Central", ASIN: "B0ABC", GrossSales: 118, NetSales: 100},
	}

	report := service.Validate(ledger, nil, nil)

	require.NotNil(t, report)
	assert.Equal(t, 1, report.FlaggedLegacyRowCount)
	assert.Equal(t, "Linhas históricas de B2B detectadas na conta legada.", report.Diagnostic)
}

func TestValidate_DiagnosticoPriorizado(t *testing.T) {
	service, mockResolver := newAuditService(t)
	mockResolver.EXPECT().ResolveMain(gomock.Any()).Return(planWith("B0ABC"))

	ledger := []domain.SalesRecord{
		{Date: day(1), Account: "Nexlev", ASIN: "B0FORA", GrossSales: 118, NetSales: 100},
	}

	report := service.Validate(ledger, nil, nil)

	require.NotNil(t, report)
	assert.Equal(t, 1, report.ExtraASINCount)
	assert.Equal(t, 1, report.FlaggedLegacyRowCount)
	// As duas razões aparecem, na ordem de prioridade
	assert.Equal(t,
		"Ledger contém ASINs ausentes do planejamento. Linhas históricas de B2B detectadas na conta legada.",
		report.Diagnostic,
	)
}

func TestValidate_RecorteDeDatas(t *testing.T) {
	service, mockResolver := newAuditService(t)
	mockResolver.EXPECT().ResolveMain(day(1)).Return(planWith("B0ABC"))

	ledger := []domain.SalesRecord{
		{Date: day(1), Account: "Nexlev", ASIN: "B0ABC", GrossSales: 100, NetSales: 100},
		{Date: day(20), Account: "Nexlev", ASIN: "B0FORA", GrossSales: 999, NetSales: 999},
	}

	from, to := day(1), day(5)
	report := service.Validate(ledger, &from, &to)

	require.NotNil(t, report)
	// A linha fora do recorte não participa de nenhuma checagem
	assert.Zero(t, report.ExtraASINCount)
	assert.Equal(t, 100.0, report.TotalViaDirectSum)
}

func TestValidate_AusenteQuandoVazio(t *testing.T) {
	service, _ := newAuditService(t)

	assert.Nil(t, service.Validate(nil, nil, nil))

	from, to := day(10), day(20)
	ledger := []domain.SalesRecord{
		{Date: day(1), Account: "Nexlev", ASIN: "B0ABC", GrossSales: 100, NetSales: 100},
	}
	assert.Nil(t, service.Validate(ledger, &from, &to))
}

func TestValidate_PlanoIndisponivelNaoAcusaASINs(t *testing.T) {
	service, mockResolver := newAuditService(t)
	mockResolver.EXPECT().ResolveMain(gomock.Any()).Return(tabular.Empty())

	ledger := []domain.SalesRecord{
		{Date: day(1), Account: "Vendor Central", ASIN: "B0QUALQUER", GrossSales: 10, NetSales: 10},
	}

	report := service.Validate(ledger, nil, nil)

	require.NotNil(t, report)
	assert.Zero(t, report.ExtraASINCount)
}
