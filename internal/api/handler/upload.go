package handler

import (
	"net/http"
	"time"

	"github.com/nexlev/sales-ledger-api/infrastructure/tabular"
	"github.com/nexlev/sales-ledger-api/internal/domain"
	"github.com/nexlev/sales-ledger-api/internal/usecases/ingesting"
	"github.com/nexlev/sales-ledger-api/pkg/apiErrors"
	"github.com/nexlev/sales-ledger-api/pkg/log"
	"github.com/pkg/errors"
)

// maxUploadBytes limita o multipart em memória; exports diários são pequenos.
const maxUploadBytes = 32 << 20

// LogSales recebe o lote diário de exports de vendas, um arquivo por campo
// de conta, e grava as linhas normalizadas no ledger.
func LogSales(service ingesting.Uploader) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
			logger.WithError(err).Warn("upload: invalid multipart body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo multipart inválido", nil)
			return
		}

		salesDateRaw := r.FormValue("sales_date")
		salesDate, err := time.Parse("2006-01-02", salesDateRaw)
		if err != nil {
			logger.WithField("sales_date", salesDateRaw).Warn("upload: invalid sales_date")
			apiErrors.WriteError(w, apiErrors.ErrInvalidDate, "Data de vendas inválida, use o formato AAAA-MM-DD", nil)
			return
		}

		replaceDay := parseReplaceDay(r.FormValue("replace_day"))

		files := make(map[string]tabular.Source)
		for _, source := range domain.DefaultChannelSources {
			file, header, err := r.FormFile(source.FormField)
			if err != nil {
				continue
			}
			defer file.Close()

			if header.Filename == "" {
				continue
			}

			files[source.FormField] = tabular.UploadSource{
				Filename: header.Filename,
				Reader:   file,
			}
		}

		if len(files) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingUploadFile, "Nenhum arquivo de vendas enviado", nil)
			return
		}

		result, err := service.LogSales(salesDate, replaceDay, files)
		if err != nil {
			if errors.Is(err, ingesting.ErrPlanUnavailable) {
				apiErrors.WriteError(w, apiErrors.ErrPlanningNotFound, "Planilha de planejamento indisponível para o mês informado", nil)
				return
			}

			if errors.Is(err, ingesting.ErrNoValidRows) {
				apiErrors.WriteError(w, apiErrors.ErrEmptyIngestion, "Nenhuma linha válida de vendas encontrada nos arquivos", nil)
				return
			}

			logger.WithError(err).Error("upload: failed to log sales")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao gravar o lote de vendas", nil)
			return
		}

		logger.WithFields(log.Fields{
			"batch_id":   result.BatchID,
			"sales_date": result.SalesDate,
			"rows":       result.RowsIngested,
		}).Info("upload: sales batch ingested")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithError(err).Error("upload: failed to encode response")
		}
	})
}

// parseReplaceDay aceita os mesmos marcadores truthy do formulário legado.
func parseReplaceDay(raw string) bool {
	switch raw {
	case "1", "true", "True", "on":
		return true
	}
	return false
}
