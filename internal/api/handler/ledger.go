package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"
	"time"

	"github.com/nexlev/sales-ledger-api/internal/usecases/dashboarding"
	"github.com/nexlev/sales-ledger-api/pkg/apiErrors"
	"github.com/nexlev/sales-ledger-api/pkg/log"
)

// DownloadLedger exporta o recorte do ledger em CSV, com a mesma lógica de
// filtros do dashboard.
func DownloadLedger(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		filters := dashboarding.Filters{
			Month:    query.Get("month"),
			FromDate: query.Get("from_date"),
			ToDate:   query.Get("to_date"),
		}

		records, err := service.LedgerSlice(filters)
		if err != nil {
			logger.WithError(err).Error("ledger: failed to read ledger for download")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao ler o ledger", nil)
			return
		}

		if len(records) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Sem dados para os filtros selecionados", nil)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename=sales_ledger.csv`)

		writer := csv.NewWriter(w)
		if err := writer.Write([]string{"date", "account", "ASIN", "gross_sales", "net_sales"}); err != nil {
			logger.WithError(err).Error("ledger: failed to write csv header")
			return
		}

		for _, record := range records {
			row := []string{
				record.Date.Format(time.DateOnly),
				record.Account,
				record.ASIN,
				strconv.FormatFloat(record.GrossSales, 'f', -1, 64),
				strconv.FormatFloat(record.NetSales, 'f', -1, 64),
			}
			if err := writer.Write(row); err != nil {
				logger.WithError(err).Error("ledger: failed to write csv row")
				return
			}
		}

		writer.Flush()
		if err := writer.Error(); err != nil {
			logger.WithError(err).Error("ledger: failed to flush csv")
		}

		logger.WithField("rows", len(records)).Info("ledger: csv download served")
	})
}
