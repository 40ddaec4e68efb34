// Package scheduler contém os serviços de agendamento para auditoria do ledger
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/nexlev/sales-ledger-api/infrastructure/repository"
	"github.com/nexlev/sales-ledger-api/internal/config"
	"github.com/nexlev/sales-ledger-api/internal/usecases/auditing"
	"github.com/nexlev/sales-ledger-api/internal/usecases/planning"
	"github.com/sirupsen/logrus"
)

type AuditSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// AuditSyncService roda periodicamente a validação de consistência do ledger
// contra o planejamento do mês corrente e aquece o cache da planilha.
type AuditSyncService struct {
	scheduler           *gocron.Scheduler
	ledgerRepo          repository.LedgerRepository
	auditor             auditing.Auditor
	planService         *planning.Service
	config              AuditSyncConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

func NewAuditSyncService(
	ledgerRepo repository.LedgerRepository,
	auditor auditing.Auditor,
	planService *planning.Service,
	cfg *config.Config,
) *AuditSyncService {
	auditConfig := AuditSyncConfig{
		CronSchedule: cfg.AuditSync.CronSchedule, // Default: 5h da manhã todos os dias
		SyncEnabled:  cfg.AuditSync.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": auditConfig.CronSchedule,
	}).Info("Configuração do agendador de auditoria do ledger carregada")

	return &AuditSyncService{
		scheduler:   scheduler,
		ledgerRepo:  ledgerRepo,
		auditor:     auditor,
		planService: planService,
		config:      auditConfig,
	}
}

func (s *AuditSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de auditoria do ledger desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de auditoria do ledger")

	// Agendar a auditoria periódica do ledger
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunAudit(); err != nil {
			logrus.WithError(err).Error("Erro na auditoria periódica do ledger")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar auditoria do ledger: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de auditoria do ledger")
		s.scheduler.Stop()
	}()

	return nil
}

// RunAudit lê o ledger completo, roda a validação de consistência e registra
// o relatório no log. O cache do planejamento do mês corrente é aquecido de
// antemão para que o primeiro dashboard do dia não pague a leitura do xlsx.
func (s *AuditSyncService) RunAudit() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Auditoria do ledger já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando auditoria do ledger")

	s.planService.WarmCache(time.Now())

	ledger, err := s.ledgerRepo.ReadAll()
	if err != nil {
		logrus.WithError(err).Error("Erro ao ler o ledger para auditoria")
		return err
	}

	report := s.auditor.Validate(ledger, nil, nil)
	if report == nil {
		logrus.Info("Ledger vazio, auditoria ignorada")
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"extra_asins":    report.ExtraASINCount,
		"legacy_rows":    report.FlaggedLegacyRowCount,
		"total_direct":   report.TotalViaDirectSum,
		"total_day_wise": report.TotalViaDayWiseSum,
		"difference":     report.Difference,
		"diagnostic":     report.Diagnostic,
	}).Info("Auditoria do ledger concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma auditoria do ledger
func (s *AuditSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Auditoria do ledger já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando auditoria manual do ledger")
	go func() {
		if err := s.RunAudit(); err != nil {
			logrus.WithError(err).Error("Erro na auditoria manual do ledger")
		}
	}()
}

// GetStatus retorna o estado atual da cron de auditoria
func (s *AuditSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
	}
}
