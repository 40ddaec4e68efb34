package handler

import (
	"net/http"

	"github.com/nexlev/sales-ledger-api/internal/usecases/dashboarding"
	"github.com/nexlev/sales-ledger-api/pkg/apiErrors"
	"github.com/nexlev/sales-ledger-api/pkg/log"
)

// GetDashboard monta o payload completo do dashboard. Aceita GET com query
// string e POST com formulário, com os mesmos nomes de campo.
func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters := dashboardFilters(r)
		logger.WithFields(log.Fields{
			"month":     filters.Month,
			"from_date": filters.FromDate,
			"to_date":   filters.ToDate,
		}).Info("dashboard: rendering for filters")

		response, err := service.Render(filters)
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to render")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetDashboardMonths lista os meses disponíveis no ledger.
func GetDashboardMonths(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		months, err := service.AvailableMonths()
		if err != nil {
			logger.WithError(err).Error("dashboard: failed to list months")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar os meses do ledger", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(map[string]any{"months": months}); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode months")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// dashboardFilters lê os filtros da query string ou, em POSTs, do corpo do
// formulário. O corpo tem precedência quando presente.
func dashboardFilters(r *http.Request) dashboarding.Filters {
	value := func(name string) string {
		if r.Method == http.MethodPost {
			if v := r.PostFormValue(name); v != "" {
				return v
			}
		}
		return r.URL.Query().Get(name)
	}

	return dashboarding.Filters{
		Month:    value("month"),
		FromDate: value("from_date"),
		ToDate:   value("to_date"),
	}
}
