// Package auditing roda a validação somente leitura do ledger: cobertura
// de ASINs contra o planejamento, contaminação histórica conhecida e a
// reconciliação de receita por dois caminhos independentes.
package auditing

import (
	"strings"
	"time"

	"github.com/nexlev/sales-ledger-api/internal/config"
	"github.com/nexlev/sales-ledger-api/internal/domain"
	"github.com/nexlev/sales-ledger-api/internal/usecases/planning"
	"github.com/nexlev/sales-ledger-api/internal/usecases/reporting"
	"github.com/nexlev/sales-ledger-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Auditor produz o relatório de validação de um recorte do ledger, ou nil
// quando não há o que validar.
type Auditor interface {
	Validate(ledger []domain.SalesRecord, from, to *time.Time) *domain.ValidationReport
}

type Service struct {
	planResolver  planning.Resolver
	legacyAccount string
}

func NewService(planResolver planning.Resolver, cfg *config.Config) Auditor {
	return &Service{
		planResolver:  planResolver,
		legacyAccount: cfg.Audit.LegacyAccount,
	}
}

// Validate nunca muta o ledger e nunca propaga falha: qualquer problema
// interno degrada o relatório inteiro para ausente (nil).
func (s *Service) Validate(ledger []domain.SalesRecord, from, to *time.Time) (report *domain.ValidationReport) {
	defer func() {
		if r := recover(); r != nil {
			logrus.WithField("panic", r).Error("Falha interna na validação do ledger")
			report = nil
		}
	}()

	records := ledger
	if from != nil && to != nil {
		records = reporting.FilterByDateRange(ledger, *from, *to)
	}

	if len(records) == 0 {
		return nil
	}

	refDate := maxDate(records)
	if from != nil {
		refDate = *from
	}

	extraASINs := s.countExtraASINs(records, refDate)
	legacyRows := s.countLegacyRows(records)

	// Dois caminhos independentes para o mesmo total: soma direta do
	// recorte e soma dos agregados diários. Divergência aqui é bug de
	// agregação, não dado ruim.
	directSum := utils.RoundWithOneDecimalPlace(sumNetSales(records))
	dayWiseSum := utils.RoundWithOneDecimalPlace(sumByDay(records))
	difference := utils.RoundWithOneDecimalPlace(directSum - dayWiseSum)

	return &domain.ValidationReport{
		ExtraASINCount:        extraASINs,
		FlaggedLegacyRowCount: legacyRows,
		TotalViaDirectSum:     directSum,
		TotalViaDayWiseSum:    dayWiseSum,
		Difference:            difference,
		Diagnostic:            diagnostic(extraASINs, legacyRows, difference),
	}
}

// countExtraASINs conta ASINs presentes no recorte mas ausentes do
// planejamento do mês de referência. Plano indisponível conta como zero:
// sem referência não há como apontar contaminação.
func (s *Service) countExtraASINs(records []domain.SalesRecord, refDate time.Time) int {
	plan := s.planResolver.ResolveMain(refDate)
	if plan.IsEmpty() {
		return 0
	}

	planned := planning.ASINSet(plan)

	seen := make(map[string]bool)
	extra := 0
	for _, record := range records {
		if seen[record.ASIN] {
			continue
		}
		seen[record.ASIN] = true

		if !planned[record.ASIN] {
			extra++
		}
	}

	return extra
}

// countLegacyRows aplica a checagem estreita da conta com contaminação
// histórica de B2B: linhas dela com gross != net merecem revisão manual.
func (s *Service) countLegacyRows(records []domain.SalesRecord) int {
	count := 0
	for _, record := range records {
		if record.Account == s.legacyAccount && record.GrossSales != record.NetSales {
			count++
		}
	}

	return count
}

// diagnostic monta o texto priorizado do relatório: contaminação de ASIN
// primeiro, legado B2B depois, e só então desvio de reconciliação sem
// outra explicação.
func diagnostic(extraASINs, legacyRows int, difference float64) string {
	var reasons []string

	if extraASINs > 0 {
		reasons = append(reasons, "Ledger contém ASINs ausentes do planejamento.")
	}
	if legacyRows > 0 {
		reasons = append(reasons, "Linhas históricas de B2B detectadas na conta legada.")
	}
	if difference != 0 && len(reasons) == 0 {
		reasons = append(reasons, "Diferença causada por mês parcial / dias ausentes na seleção.")
	}

	if len(reasons) == 0 {
		return "Todas as validações passaram. Dados consistentes."
	}

	return strings.Join(reasons, " ")
}

func maxDate(records []domain.SalesRecord) time.Time {
	max := records[0].Date
	for _, record := range records[1:] {
		if record.Date.After(max) {
			max = record.Date
		}
	}

	return max
}

func sumNetSales(records []domain.SalesRecord) float64 {
	var total float64
	for _, record := range records {
		total += record.NetSales
	}

	return total
}

// sumByDay agrega por dia e soma os agregados, espelhando o caminho da
// série diária do dashboard sem depender dele.
func sumByDay(records []domain.SalesRecord) float64 {
	byDay := make(map[string]float64)
	for _, record := range records {
		byDay[record.Date.Format(time.DateOnly)] += record.NetSales
	}

	var total float64
	for _, dayTotal := range byDay {
		total += dayTotal
	}

	return total
}
