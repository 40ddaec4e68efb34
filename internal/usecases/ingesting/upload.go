package ingesting

import (
	"time"

	"github.com/nexlev/sales-ledger-api/infrastructure/repository"
	"github.com/nexlev/sales-ledger-api/infrastructure/tabular"
	"github.com/nexlev/sales-ledger-api/internal/domain"
	"github.com/nexlev/sales-ledger-api/internal/usecases/planning"
	"github.com/nexlev/sales-ledger-api/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrNoValidRows indica que nenhum dos arquivos enviados produziu linhas
// válidas após a normalização e o filtro de consistência com o plano.
var ErrNoValidRows = errors.New("nenhuma linha válida de vendas encontrada")

// ErrPlanUnavailable indica que não há planejamento carregável para o mês
// da data de vendas; sem plano não existe filtro de consistência possível.
var ErrPlanUnavailable = errors.New("planejamento indisponível para o mês da data de vendas")

// Uploader processa um lote diário de uploads: um arquivo por conta de
// canal, todos referentes à mesma data de vendas.
type Uploader interface {
	LogSales(salesDate time.Time, replaceDay bool, files map[string]tabular.Source) (*domain.UploadResult, error)
}

type UploadService struct {
	ingestor     Ingestor
	ledgerRepo   repository.LedgerRepository
	planResolver planning.Resolver
	sources      []domain.ChannelSource
}

func NewUploadService(ingestor Ingestor, ledgerRepo repository.LedgerRepository, planResolver planning.Resolver) Uploader {
	return &UploadService{
		ingestor:     ingestor,
		ledgerRepo:   ledgerRepo,
		planResolver: planResolver,
		sources:      domain.DefaultChannelSources,
	}
}

// LogSales constrói as linhas canônicas de cada arquivo presente e grava o
// lote no ledger. Com replaceDay ativo, o dia inteiro de todas as contas é
// apagado e regravado em uma transação, mesmo das contas sem arquivo no lote.
func (s *UploadService) LogSales(
	salesDate time.Time,
	replaceDay bool,
	files map[string]tabular.Source,
) (*domain.UploadResult, error) {
	batchID, err := utils.GenerateBatchID()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao gerar o id do lote")
	}

	logger := logrus.WithFields(logrus.Fields{
		"batch_id":   batchID,
		"sales_date": salesDate.Format(time.DateOnly),
	})

	if s.planResolver.ResolveMain(salesDate).IsEmpty() {
		logger.Warn("Planejamento indisponível para o mês da data de vendas")
		return nil, ErrPlanUnavailable
	}

	var records []domain.SalesRecord
	rowsBySource := make(map[string]int)

	for _, source := range s.sources {
		src, ok := files[source.FormField]
		if !ok {
			logger.WithField("account", source.Account).Debug("Sem arquivo para a conta, pulando")
			continue
		}

		rows := s.ingestor.BuildRows(src, source.Account, salesDate, source.Channel)
		rowsBySource[source.FormField] = len(rows)
		records = append(records, rows...)

		logger.WithFields(logrus.Fields{
			"account": source.Account,
			"rows":    len(rows),
		}).Info("Arquivo de canal processado")
	}

	if len(records) == 0 {
		return nil, ErrNoValidRows
	}

	if replaceDay {
		// O dia é apagado em todas as contas conhecidas e regravado na
		// mesma transação: as contas sem arquivo no lote não podem ficar
		// sem os dados antigos se o upsert falhar no meio.
		accounts := make([]string, 0, len(s.sources))
		for _, source := range s.sources {
			accounts = append(accounts, source.Account)
		}

		if err := s.ledgerRepo.ReplaceDay(salesDate, accounts, records); err != nil {
			return nil, errors.Wrap(err, "erro ao substituir o dia no ledger")
		}
		logger.Info("Dia substituído em todas as contas")
	} else if err := s.ledgerRepo.UpsertBatch(records); err != nil {
		return nil, errors.Wrap(err, "erro ao gravar o lote no ledger")
	}

	logger.WithField("rows", len(records)).Info("Lote de vendas gravado no ledger")

	return &domain.UploadResult{
		BatchID:      batchID,
		SalesDate:    salesDate.Format(time.DateOnly),
		ReplacedDay:  replaceDay,
		RowsIngested: len(records),
		RowsBySource: rowsBySource,
	}, nil
}
