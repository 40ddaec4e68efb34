package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/nexlev/sales-ledger-api/infrastructure/database/postgres"
	"github.com/nexlev/sales-ledger-api/infrastructure/planstore"
	"github.com/nexlev/sales-ledger-api/infrastructure/repository"
	"github.com/nexlev/sales-ledger-api/internal/api"
	"github.com/nexlev/sales-ledger-api/internal/config"
	"github.com/nexlev/sales-ledger-api/internal/scheduler"
	"github.com/nexlev/sales-ledger-api/internal/usecases/auditing"
	"github.com/nexlev/sales-ledger-api/internal/usecases/dashboarding"
	"github.com/nexlev/sales-ledger-api/internal/usecases/ingesting"
	"github.com/nexlev/sales-ledger-api/internal/usecases/planning"
	"github.com/nexlev/sales-ledger-api/internal/usecases/reporting"
	"github.com/sirupsen/logrus"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	ledgerRepo := repository.NewLedgerRepository(pgConn)
	if err := ledgerRepo.EnsureSchema(); err != nil {
		logrus.WithError(err).Fatal("Erro ao garantir o schema do ledger")
	}

	planStore := planstore.NewFileStore(cfg.Planning)
	planService := planning.NewService(planStore)

	ingestService := ingesting.NewService(planService, cfg)
	uploadService := ingesting.NewUploadService(ingestService, ledgerRepo, planService)

	reportService := reporting.NewService(planService)
	auditService := auditing.NewService(planService, cfg)

	dashboardService := dashboarding.NewService(ledgerRepo, reportService, auditService)

	auditSyncService := scheduler.NewAuditSyncService(
		ledgerRepo,
		auditService,
		planService,
		cfg,
	)

	// Inicia o agendador em background
	if err := auditSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de auditoria do ledger")
	} else {
		logrus.Info("Agendador de auditoria do ledger iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		uploadService,
		auditSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
