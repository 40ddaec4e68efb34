package handler

import (
	"net/http"

	"github.com/nexlev/sales-ledger-api/internal/usecases/dashboarding"
	"github.com/nexlev/sales-ledger-api/pkg/apiErrors"
	"github.com/nexlev/sales-ledger-api/pkg/log"
)

// GetValidation roda o relatório de consistência do ledger de forma avulsa.
// Sem dados no recorte, responde 204.
func GetValidation(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		query := r.URL.Query()
		report, err := service.Validation(query.Get("from_date"), query.Get("to_date"))
		if err != nil {
			logger.WithError(err).Error("validation: failed to build report")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o relatório de validação", nil)
			return
		}

		if report == nil {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithError(err).Error("validation: failed to encode report")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
