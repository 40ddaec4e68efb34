package handler

import (
	"net/http"

	"github.com/nexlev/sales-ledger-api/internal/api/handler/router"
	"github.com/nexlev/sales-ledger-api/internal/config"
	"github.com/nexlev/sales-ledger-api/internal/usecases/dashboarding"
	"github.com/nexlev/sales-ledger-api/internal/usecases/ingesting"
	"github.com/nexlev/sales-ledger-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// Dashboard expõe a leitura do dashboard: payload completo, meses
// disponíveis, download do ledger e relatório de validação avulso.
func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodPost,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/dashboard/months",
			Method:  http.MethodGet,
			Handler: GetDashboardMonths(service),
		},
		{
			Path:    "/v1/ledger/download",
			Method:  http.MethodGet,
			Handler: DownloadLedger(service),
		},
		{
			Path:    "/v1/validation",
			Method:  http.MethodGet,
			Handler: GetValidation(service),
		},
	}
}

// Sales expõe o upload diário de vendas, protegido pela chave de upload.
func Sales(service ingesting.Uploader, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/sales/log",
			Method:      http.MethodPost,
			Handler:     LogSales(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.UploadKeyRequired(cfg)},
		},
	}
}

func CronJobs(services CronJobServices, cfg *config.Config) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.UploadKeyRequired(cfg)},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.UploadKeyRequired(cfg)},
		},
	}
}
