// Package planning resolve a referência de planejamento de um mês: a aba
// "Main" (metas por ASIN) e a aba "Category" (metas por categoria).
package planning

import (
	"sync"
	"time"

	"github.com/nexlev/sales-ledger-api/infrastructure/planstore"
	"github.com/nexlev/sales-ledger-api/infrastructure/tabular"
	"github.com/nexlev/sales-ledger-api/internal/domain"
	"github.com/nexlev/sales-ledger-api/pkg/utils"
	"github.com/sirupsen/logrus"
)

// Chaves de coluna já normalizadas das abas de planejamento.
const (
	ColASIN                = "asin"
	ColCategory            = "category"
	ColPerDayGoalProjected = "perdaygoalprojected"
	ColPerDayGoal          = "perdaygoal"
)

// MonthlyGoalColumn é a coluna de meta mensal da aba Main, nomeada
// dinamicamente pelo mês abreviado (ex: "auggoalprojected" em agosto).
func MonthlyGoalColumn(ref time.Time) string {
	return tabular.NormalizeHeader(ref.Format("Jan") + " goal projected")
}

// Resolver entrega as tabelas de planejamento do mês de uma data.
// Resultado vazio (nunca erro) quando a planilha está ausente, ilegível ou
// sem a coluna de ASIN: quem chama degrada para "sem metas disponíveis".
type Resolver interface {
	ResolveMain(ref time.Time) *tabular.Table
	ResolveCategory(ref time.Time) *tabular.Table
}

// cacheTTL limita a vida de uma entrada: a planilha pode ser republicada no
// meio do mês e o dashboard precisa enxergar a versão nova.
const cacheTTL = 10 * time.Minute

type cacheEntry struct {
	table    *tabular.Table
	loadedAt time.Time
}

// Service implementa Resolver com cache de leitura por (mês, ano, aba).
type Service struct {
	store planstore.Store

	mu    sync.RWMutex
	cache map[string]cacheEntry
}

func NewService(store planstore.Store) *Service {
	return &Service{
		store: store,
		cache: make(map[string]cacheEntry),
	}
}

// ResolveMain carrega a aba "Main" do mês de ref, com colunas normalizadas
// e a coluna de ASIN em forma canônica (maiúscula, sem espaços).
func (s *Service) ResolveMain(ref time.Time) *tabular.Table {
	return s.resolve(ref, planstore.MainSheet)
}

// ResolveCategory carrega a aba "Category" do mês de ref.
func (s *Service) ResolveCategory(ref time.Time) *tabular.Table {
	return s.resolve(ref, planstore.CategorySheet)
}

// WarmCache pré-carrega as duas abas do mês de ref. Usado pelo agendador
// de auditoria para a primeira consulta do dia não pagar o load.
func (s *Service) WarmCache(ref time.Time) {
	s.ResolveMain(ref)
	s.ResolveCategory(ref)
}

func (s *Service) resolve(ref time.Time, sheet string) *tabular.Table {
	key := ref.Format("Jan-2006") + "|" + sheet

	s.mu.RLock()
	entry, ok := s.cache[key]
	s.mu.RUnlock()

	if ok && time.Since(entry.loadedAt) < cacheTTL {
		return entry.table
	}

	table := s.load(ref, sheet)

	s.mu.Lock()
	s.cache[key] = cacheEntry{table: table, loadedAt: time.Now()}
	s.mu.Unlock()

	return table
}

func (s *Service) load(ref time.Time, sheet string) *tabular.Table {
	path := s.store.WorkbookPath(ref)

	table := tabular.Load(tabular.FileSource{Path: path}, tabular.Options{Sheet: sheet})
	if table.IsEmpty() {
		logrus.WithFields(logrus.Fields{
			"path":  path,
			"sheet": sheet,
		}).Info("Planejamento ausente ou vazio para o mês de referência")
		return tabular.Empty()
	}

	if sheet == planstore.MainSheet {
		if !table.HasColumn(ColASIN) {
			logrus.WithField("path", path).Warn("Aba Main do planejamento sem coluna de ASIN")
			return tabular.Empty()
		}

		for i := 0; i < table.Len(); i++ {
			table.SetValue(i, ColASIN, domain.NormalizeASIN(table.Value(i, ColASIN)))
		}
	}

	return table
}

// ASINSet devolve o universo de ASINs "no plano" da aba Main: a lista
// autoritativa do mês para o filtro de ingestão e a auditoria.
func ASINSet(main *tabular.Table) map[string]bool {
	if main.IsEmpty() {
		return map[string]bool{}
	}

	set := make(map[string]bool, main.Len())
	for i := 0; i < main.Len(); i++ {
		if asin := main.Value(i, ColASIN); asin != "" {
			set[asin] = true
		}
	}

	return set
}

// SumColumn soma uma coluna numérica de planejamento. Células vazias ou
// não numéricas contam como zero: a planilha é insumo externo e uma célula
// ruim não pode derrubar o cálculo inteiro.
func SumColumn(table *tabular.Table, key string) float64 {
	if table.IsEmpty() || !table.HasColumn(key) {
		return 0
	}

	var total float64
	for i := 0; i < table.Len(); i++ {
		amount, err := utils.ParseMoney(table.Value(i, key))
		if err != nil {
			continue
		}
		total += amount
	}

	return total
}

// ColumnByKey monta o mapa chave -> valor numérico de uma coluna da tabela,
// usando keyCol como chave de linha (ex: per_day_goal_projected por ASIN).
func ColumnByKey(table *tabular.Table, keyCol, valueCol string) map[string]float64 {
	values := make(map[string]float64)
	if table.IsEmpty() || !table.HasColumn(keyCol) || !table.HasColumn(valueCol) {
		return values
	}

	for i := 0; i < table.Len(); i++ {
		key := table.Value(i, keyCol)
		if key == "" {
			continue
		}

		amount, err := utils.ParseMoney(table.Value(i, valueCol))
		if err != nil {
			continue
		}
		values[key] = amount
	}

	return values
}

// CategoryByASIN monta o mapa asin -> categoria da aba Main.
func CategoryByASIN(main *tabular.Table) map[string]string {
	if main.IsEmpty() {
		return map[string]string{}
	}

	categories := make(map[string]string, main.Len())
	for i := 0; i < main.Len(); i++ {
		if asin := main.Value(i, ColASIN); asin != "" {
			categories[asin] = main.Value(i, ColCategory)
		}
	}

	return categories
}
