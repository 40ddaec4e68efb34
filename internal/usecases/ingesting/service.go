// Package ingesting transforma exports diários de canais de venda em
// linhas canônicas do ledger, aplicando o filtro de consistência com o
// planejamento e a regra de receita de cada tipo de canal.
package ingesting

import (
	"time"

	"github.com/nexlev/sales-ledger-api/infrastructure/tabular"
	"github.com/nexlev/sales-ledger-api/internal/config"
	"github.com/nexlev/sales-ledger-api/internal/domain"
	"github.com/nexlev/sales-ledger-api/internal/usecases/planning"
	"github.com/nexlev/sales-ledger-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

const (
	colParentASIN = "parentasin"
	colASIN       = "asin"
)

// Ingestor produz linhas canônicas a partir de um export bruto de canal.
type Ingestor interface {
	BuildRows(src tabular.Source, account string, salesDate time.Time, channel domain.Channel) []domain.SalesRecord
}

type Service struct {
	planResolver planning.Resolver
	taxRate      float64
}

func NewService(planResolver planning.Resolver, cfg *config.Config) Ingestor {
	return &Service{
		planResolver: planResolver,
		taxRate:      cfg.Ingestion.TaxRate,
	}
}

// BuildRows é uma transformação pura sobre o export: nenhum efeito além do
// log. Qualquer insumo inválido (arquivo vazio, coluna obrigatória ausente,
// planejamento indisponível) degrada para zero linhas, nunca para erro.
func (s *Service) BuildRows(
	src tabular.Source,
	account string,
	salesDate time.Time,
	channel domain.Channel,
) []domain.SalesRecord {
	table := tabular.Load(src, tabular.Options{HeaderSkip: channel.HeaderSkip})
	if table.IsEmpty() {
		logrus.WithField("account", account).Info("Export sem linhas de dados")
		return nil
	}

	// Listagens multi-variação agregam no ASIN pai quando a coluna existe.
	asinCol := colParentASIN
	if !table.HasColumn(asinCol) {
		asinCol = colASIN
	}
	if !table.HasColumn(asinCol) {
		logrus.WithField("account", account).Warn("Export sem coluna de ASIN")
		return nil
	}

	if !table.HasColumn(channel.RevenueColumn) {
		logrus.WithFields(logrus.Fields{
			"account": account,
			"column":  channel.RevenueColumn,
		}).Warn("Export sem a coluna de receita do canal")
		return nil
	}

	mainPlan := s.planResolver.ResolveMain(salesDate)
	if mainPlan.IsEmpty() {
		logrus.WithFields(logrus.Fields{
			"account":    account,
			"sales_date": salesDate.Format(time.DateOnly),
		}).Warn("Planejamento indisponível para a data; ingestão descartada")
		return nil
	}

	// Filtro autoritativo de consistência com o plano: SKU fora do
	// planejamento do mês não entra no ledger, independente da receita.
	allowed := planning.ASINSet(mainPlan)
	inPlan := table.Filter(func(i int) bool {
		asin := domain.NormalizeASIN(table.Value(i, asinCol))
		return asin != "" && allowed[asin]
	})

	records := make([]domain.SalesRecord, 0, inPlan.Len())
	for i := 0; i < inPlan.Len(); i++ {
		asin := domain.NormalizeASIN(inPlan.Value(i, asinCol))

		gross, err := utils.ParseMoney(inPlan.Value(i, channel.RevenueColumn))
		if err != nil {
			// Uma célula ruim não descarta a linha nem o lote.
			logrus.WithError(err).WithFields(logrus.Fields{
				"account": account,
				"asin":    asin,
			}).Warn("Valor de receita não parseável, usando zero")
			gross = 0
		}

		net := gross
		if channel.TaxAdjusted {
			net = gross / (1 + s.taxRate)
		}

		records = append(records, domain.SalesRecord{
			Date:       utils.TruncateToDay(salesDate),
			Account:    account,
			ASIN:       asin,
			GrossSales: gross,
			NetSales:   net,
		})
	}

	return records
}
