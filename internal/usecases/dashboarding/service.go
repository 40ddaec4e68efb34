// Package dashboarding orquestra a montagem do payload do dashboard: resolve
// o recorte de datas, deriva os KPIs e agregados e anexa o relatório de
// validação do ledger completo.
package dashboarding

import (
	"sort"
	"time"

	"github.com/nexlev/sales-ledger-api/infrastructure/repository"
	"github.com/nexlev/sales-ledger-api/internal/domain"
	"github.com/nexlev/sales-ledger-api/internal/usecases/auditing"
	"github.com/nexlev/sales-ledger-api/internal/usecases/reporting"
	"github.com/nexlev/sales-ledger-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Filters carrega os filtros crus recebidos da camada HTTP. O intervalo de
// datas tem prioridade sobre o mês quando os dois chegam preenchidos.
type Filters struct {
	Month    string // formato "Jan 2006"
	FromDate string // formato "2006-01-02"
	ToDate   string // formato "2006-01-02"
}

type Dashboarder interface {
	Render(filters Filters) (*domain.DashboardResponse, error)
	AvailableMonths() ([]string, error)
	Validation(fromDate, toDate string) (*domain.ValidationReport, error)
	LedgerSlice(filters Filters) ([]domain.SalesRecord, error)
}

type Service struct {
	ledgerRepo repository.LedgerRepository
	reporter   reporting.Reporter
	auditor    auditing.Auditor
}

func NewService(
	ledgerRepo repository.LedgerRepository,
	reporter reporting.Reporter,
	auditor auditing.Auditor,
) Dashboarder {
	return &Service{
		ledgerRepo: ledgerRepo,
		reporter:   reporter,
		auditor:    auditor,
	}
}

// Render monta a resposta completa do dashboard para o recorte pedido.
func (s *Service) Render(filters Filters) (*domain.DashboardResponse, error) {
	ledger, err := s.ledgerRepo.ReadAll()
	if err != nil {
		return nil, err
	}

	// Séries sempre presentes no payload, vazias em vez de nulas
	response := &domain.DashboardResponse{
		Months:        availableMonths(ledger),
		SelectedMonth: filters.Month,
		FromDate:      filters.FromDate,
		ToDate:        filters.ToDate,
		Chart:         domain.EmptyMTDChart(),
		DayWise:       []domain.DayPerformance{},
		WeekWise:      []domain.WeekSales{},
		ASINTable:     []domain.ASINTargetRow{},
		CategoryTable: []domain.CategoryTargetRow{},
	}

	from, to := resolveWindow(filters)

	filtered := ledger
	if from != nil && to != nil {
		filtered = reporting.FilterByDateRange(ledger, *from, *to)
	}

	if len(filtered) == 0 {
		response.Message = "Sem dados para o recorte selecionado"
		return response, nil
	}

	refDate := resolveRefDate(filtered, from, to)

	response.KPIs = s.reporter.CalculateKPIs(filtered, refDate)
	response.DayWise = s.reporter.DayWise(filtered, refDate)
	response.Chart = s.reporter.MTDChart(filtered, refDate)
	response.WeekWise = s.reporter.WeekWise(filtered)

	// A validação roda sempre sobre o ledger completo, só o recorte muda
	response.Validation = s.auditor.Validate(ledger, from, to)

	if from != nil && to != nil {
		// Quando o recorte cruza meses, as metas são recortadas ao mês da
		// data de referência para que meta e realizado comparem o mesmo plano
		targetFrom, targetTo := *from, *to
		if from.Month() != to.Month() || from.Year() != to.Year() {
			targetFrom = time.Date(refDate.Year(), refDate.Month(), 1, 0, 0, 0, 0, refDate.Location())
			targetTo = refDate
		}
		response.ASINTable = s.reporter.ASINTargetVsActual(ledger, targetFrom, targetTo)
		response.CategoryTable = s.reporter.CategoryTargetVsActual(ledger, targetFrom, targetTo)
	} else {
		response.Message = "Selecione um intervalo de datas ou um mês para ver as metas"
	}

	return response, nil
}

// AvailableMonths lista os meses com lançamentos no ledger, em ordem
// cronológica, no formato "Jan 2006".
func (s *Service) AvailableMonths() ([]string, error) {
	ledger, err := s.ledgerRepo.ReadAll()
	if err != nil {
		return nil, err
	}
	return availableMonths(ledger), nil
}

// Validation roda o relatório de consistência de forma avulsa, com o mesmo
// recorte opcional de datas do dashboard.
func (s *Service) Validation(fromDate, toDate string) (*domain.ValidationReport, error) {
	ledger, err := s.ledgerRepo.ReadAll()
	if err != nil {
		return nil, err
	}

	from, to := resolveWindow(Filters{FromDate: fromDate, ToDate: toDate})
	return s.auditor.Validate(ledger, from, to), nil
}

// LedgerSlice devolve o recorte do ledger usado pelo download em CSV,
// ordenado por data, conta e ASIN.
func (s *Service) LedgerSlice(filters Filters) ([]domain.SalesRecord, error) {
	ledger, err := s.ledgerRepo.ReadAll()
	if err != nil {
		return nil, err
	}

	from, to := resolveWindow(filters)
	if from != nil && to != nil {
		ledger = reporting.FilterByDateRange(ledger, *from, *to)
	}

	sort.Slice(ledger, func(i, j int) bool {
		if !ledger[i].Date.Equal(ledger[j].Date) {
			return ledger[i].Date.Before(ledger[j].Date)
		}
		if ledger[i].Account != ledger[j].Account {
			return ledger[i].Account < ledger[j].Account
		}
		return ledger[i].ASIN < ledger[j].ASIN
	})

	return ledger, nil
}

// resolveWindow converte os filtros crus no intervalo efetivo. Intervalo de
// datas válido vence; mês válido é o fallback; filtros inválidos ou ausentes
// resultam em janela aberta.
func resolveWindow(filters Filters) (*time.Time, *time.Time) {
	if filters.FromDate != "" && filters.ToDate != "" {
		from, errFrom := time.Parse("2006-01-02", filters.FromDate)
		to, errTo := time.Parse("2006-01-02", filters.ToDate)
		if errFrom == nil && errTo == nil {
			return &from, &to
		}

		logrus.WithFields(logrus.Fields{
			"from_date": filters.FromDate,
			"to_date":   filters.ToDate,
		}).Warn("Intervalo de datas inválido, ignorando filtro")
	}

	if filters.Month != "" {
		ref, err := utils.ParseMonth(filters.Month)
		if err != nil {
			logrus.WithField("month", filters.Month).Warn("Mês inválido, ignorando filtro")
			return nil, nil
		}
		first, last := utils.MonthBounds(ref)
		return &first, &last
	}

	return nil, nil
}

// resolveRefDate escolhe a data de referência do plano: fim do recorte,
// senão início, senão a última data presente no ledger filtrado.
func resolveRefDate(records []domain.SalesRecord, from, to *time.Time) time.Time {
	if to != nil {
		return *to
	}
	if from != nil {
		return *from
	}

	refDate := records[0].Date
	for _, record := range records[1:] {
		if record.Date.After(refDate) {
			refDate = record.Date
		}
	}
	return refDate
}

func availableMonths(records []domain.SalesRecord) []string {
	if len(records) == 0 {
		return []string{}
	}

	seen := make(map[time.Time]bool)
	for _, record := range records {
		first := time.Date(record.Date.Year(), record.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
		seen[first] = true
	}

	periods := make([]time.Time, 0, len(seen))
	for period := range seen {
		periods = append(periods, period)
	}
	sort.Slice(periods, func(i, j int) bool { return periods[i].Before(periods[j]) })

	months := make([]string, 0, len(periods))
	for _, period := range periods {
		months = append(months, period.Format("Jan 2006"))
	}
	return months
}
