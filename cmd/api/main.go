package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/adkpi/kpi-dashboard-api/infrastructure/database/postgres"
	"github.com/adkpi/kpi-dashboard-api/infrastructure/repository"
	"github.com/adkpi/kpi-dashboard-api/internal/api"
	"github.com/adkpi/kpi-dashboard-api/internal/config"
	"github.com/adkpi/kpi-dashboard-api/internal/scheduler"
	"github.com/adkpi/kpi-dashboard-api/internal/usecases/authenticating"
	"github.com/adkpi/kpi-dashboard-api/internal/usecases/exporting"
	"github.com/adkpi/kpi-dashboard-api/internal/usecases/ingesting"
	"github.com/adkpi/kpi-dashboard-api/internal/usecases/reporting"
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

	kpiRepo := repository.NewKpiRepository(pgConn)

	// Garante a tabela de KPIs antes de aceitar requisições
	if err := kpiRepo.EnsureSchema(ctx); err != nil {
		logrus.WithError(err).Fatal("Erro ao preparar o schema de kpi_records")
	}

	authenticator := authenticating.NewService(cfg)
	ingestService := ingesting.NewService(kpiRepo)
	reportService := reporting.NewService(kpiRepo)
	exportService := exporting.NewService(kpiRepo)

	// Inicializa o agendador de retenção de dados
	retentionService := scheduler.NewRetentionService(kpiRepo, cfg)

	if err := retentionService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de retenção")
	} else {
		logrus.Info("Agendador de retenção iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		ingestService,
		reportService,
		exportService,
		authenticator,
		retentionService,
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
