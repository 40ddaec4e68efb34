package ingesting

import (
	"testing"
	"time"

	repomocks "github.com/nexlev/sales-ledger-api/infrastructure/repository/mocks"
	"github.com/nexlev/sales-ledger-api/infrastructure/tabular"
	"github.com/nexlev/sales-ledger-api/internal/domain"
	"github.com/nexlev/sales-ledger-api/internal/usecases/ingesting/mocks"
	planmocks "github.com/nexlev/sales-ledger-api/internal/usecases/planning/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newUploadService(t *testing.T) (Uploader, *mocks.MockIngestor, *repomocks.MockLedgerRepository, *planmocks.MockResolver) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockIngestor := mocks.NewMockIngestor(ctrl)
	mockLedgerRepo := repomocks.NewMockLedgerRepository(ctrl)
	mockResolver := planmocks.NewMockResolver(ctrl)

	return NewUploadService(mockIngestor, mockLedgerRepo, mockResolver), mockIngestor, mockLedgerRepo, mockResolver
}

func uploadDate() time.Time {
	return time.Date(2025, time.August, 10, 0, 0, 0, 0, time.UTC)
}

func uploadPlan() *tabular.Table {
	return tabular.NewTable([]string{"ASIN"}, [][]string{{"B0ABC"}})
}

func TestLogSales(t *testing.T) {
	service, mockIngestor, mockLedgerRepo, mockResolver := newUploadService(t)
	mockResolver.EXPECT().ResolveMain(uploadDate()).Return(uploadPlan())

	files := map[string]tabular.Source{
		"aa_file": tabular.UploadSource{Filename: "nexlev.csv"},
		"vc_file": tabular.UploadSource{Filename: "vendor.csv"},
	}

	nexlevRows := []domain.SalesRecord{
		{Date: uploadDate(), Account: "Nexlev", ASIN: "B0ABC", GrossSales: 118, NetSales: 100},
	}
	vendorRows := []domain.SalesRecord{
		{Date: uploadDate(), Account: "Vendor Central", ASIN: "B0DEF", GrossSales: 50, NetSales: 50},
		{Date: uploadDate(), Account: "Vendor Central", ASIN: "B0GHI", GrossSales: 70, NetSales: 70},
	}

	mockIngestor.EXPECT().
		BuildRows(files["aa_file"], "Nexlev", uploadDate(), domain.MarketplaceChannel).
		Return(nexlevRows)
	mockIngestor.EXPECT().
		BuildRows(files["vc_file"], "Vendor Central", uploadDate(), domain.WholesaleChannel).
		Return(vendorRows)

	mockLedgerRepo.EXPECT().
		UpsertBatch(gomock.Len(3)).
		Return(nil)

	result, err := service.LogSales(uploadDate(), false, files)

	require.NoError(t, err)
	assert.NotEmpty(t, result.BatchID)
	assert.Equal(t, "2025-08-10", result.SalesDate)
	assert.False(t, result.ReplacedDay)
	assert.Equal(t, 3, result.RowsIngested)
	assert.Equal(t, map[string]int{"aa_file": 1, "vc_file": 2}, result.RowsBySource)
}

func TestLogSales_ReplaceDaySubstituiTodasAsContasEmUmaChamada(t *testing.T) {
	service, mockIngestor, mockLedgerRepo, mockResolver := newUploadService(t)
	mockResolver.EXPECT().ResolveMain(uploadDate()).Return(uploadPlan())

	files := map[string]tabular.Source{
		"aa_file": tabular.UploadSource{Filename: "nexlev.csv"},
	}

	rows := []domain.SalesRecord{{Date: uploadDate(), Account: "Nexlev", ASIN: "B0ABC"}}
	mockIngestor.EXPECT().
		BuildRows(gomock.Any(), "Nexlev", uploadDate(), domain.MarketplaceChannel).
		Return(rows)

	// Delete e upsert viajam juntos na mesma chamada transacional, com o
	// dia sendo apagado em todas as contas conhecidas, mesmo sem arquivo
	// no lote
	allAccounts := make([]string, 0, len(domain.DefaultChannelSources))
	for _, source := range domain.DefaultChannelSources {
		allAccounts = append(allAccounts, source.Account)
	}
	mockLedgerRepo.EXPECT().
		ReplaceDay(uploadDate(), allAccounts, rows).
		Return(nil)

	result, err := service.LogSales(uploadDate(), true, files)

	require.NoError(t, err)
	assert.True(t, result.ReplacedDay)
}

func TestLogSales_ReplaceDayComErroNaoFazUpsertAvulso(t *testing.T) {
	service, mockIngestor, mockLedgerRepo, mockResolver := newUploadService(t)
	mockResolver.EXPECT().ResolveMain(uploadDate()).Return(uploadPlan())

	files := map[string]tabular.Source{
		"aa_file": tabular.UploadSource{Filename: "nexlev.csv"},
	}

	mockIngestor.EXPECT().
		BuildRows(gomock.Any(), "Nexlev", uploadDate(), domain.MarketplaceChannel).
		Return([]domain.SalesRecord{{Date: uploadDate(), Account: "Nexlev", ASIN: "B0ABC"}})

	// A falha na substituição não pode ser seguida de um UpsertBatch fora
	// da transação: nenhuma outra chamada ao repositório é esperada
	mockLedgerRepo.EXPECT().
		ReplaceDay(uploadDate(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	result, err := service.LogSales(uploadDate(), true, files)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestLogSales_SemLinhasValidas(t *testing.T) {
	service, mockIngestor, _, mockResolver := newUploadService(t)
	mockResolver.EXPECT().ResolveMain(uploadDate()).Return(uploadPlan())

	files := map[string]tabular.Source{
		"aa_file": tabular.UploadSource{Filename: "nexlev.csv"},
	}

	mockIngestor.EXPECT().
		BuildRows(gomock.Any(), "Nexlev", uploadDate(), domain.MarketplaceChannel).
		Return(nil)

	result, err := service.LogSales(uploadDate(), false, files)

	assert.ErrorIs(t, err, ErrNoValidRows)
	assert.Nil(t, result)
}

func TestLogSales_ErroDoRepositorio(t *testing.T) {
	service, mockIngestor, mockLedgerRepo, mockResolver := newUploadService(t)
	mockResolver.EXPECT().ResolveMain(uploadDate()).Return(uploadPlan())

	files := map[string]tabular.Source{
		"aa_file": tabular.UploadSource{Filename: "nexlev.csv"},
	}

	mockIngestor.EXPECT().
		BuildRows(gomock.Any(), "Nexlev", uploadDate(), domain.MarketplaceChannel).
		Return([]domain.SalesRecord{{Date: uploadDate(), Account: "Nexlev", ASIN: "B0ABC"}})

	mockLedgerRepo.EXPECT().
		UpsertBatch(gomock.Any()).
		Return(assert.AnError)

	result, err := service.LogSales(uploadDate(), false, files)

	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestLogSales_PlanejamentoIndisponivel(t *testing.T) {
	service, _, _, mockResolver := newUploadService(t)

	mockResolver.EXPECT().ResolveMain(uploadDate()).Return(tabular.Empty())

	files := map[string]tabular.Source{
		"aa_file": tabular.UploadSource{Filename: "nexlev.csv"},
	}

	result, err := service.LogSales(uploadDate(), false, files)

	assert.ErrorIs(t, err, ErrPlanUnavailable)
	assert.Nil(t, result)
}
