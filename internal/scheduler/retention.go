package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/adkpi/kpi-dashboard-api/infrastructure/repository"
	"github.com/adkpi/kpi-dashboard-api/internal/config"
	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
)

// RetentionConfig representa a configuração do agendador de retenção
type RetentionConfig struct {
	CronSchedule string
	Days         int
	Enabled      bool
}

// RetentionService agenda a limpeza de registros de KPI mais antigos que a
// janela de retenção configurada.
type RetentionService struct {
	scheduler          *gocron.Scheduler
	config             RetentionConfig
	kpiRepo            repository.KpiRepository
	runMutex           sync.Mutex
	running            bool
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunDeleted     int64
}

// NewRetentionService cria uma nova instância do serviço de retenção
func NewRetentionService(kpiRepo repository.KpiRepository, appConfig *config.Config) *RetentionService {
	retentionConfig := RetentionConfig{
		CronSchedule: appConfig.Retention.CronSchedule,
		Days:         appConfig.Retention.Days,
		Enabled:      appConfig.Retention.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule":     retentionConfig.CronSchedule,
		"retention_days":    retentionConfig.Days,
		"retention_enabled": retentionConfig.Enabled,
	}).Info("Configuração do agendador de retenção carregada")

	return &RetentionService{
		scheduler: scheduler,
		config:    retentionConfig,
		kpiRepo:   kpiRepo,
	}
}

// Start inicia o agendador
func (s *RetentionService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de retenção desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de retenção")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runRetention()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de retenção: %w", err)
	}

	s.scheduler.StartAsync()

	// Parar o agendador quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de retenção")
		s.scheduler.Stop()
	}()

	return nil
}

// runRetention executa uma rodada de limpeza, ignorando disparos sobrepostos
func (s *RetentionService) runRetention() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Limpeza de retenção já em andamento, ignorando")
		return
	}
	s.running = true
	s.runMutex.Unlock()

	startTime := time.Now()
	s.lastRunStartedAt = startTime

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.runMutex.Unlock()
	}()

	logrus.WithField("retention_days", s.config.Days).Info("Iniciando limpeza de registros de KPI antigos")

	deleted, err := s.kpiRepo.DeleteOlderThan(s.config.Days)
	if err != nil {
		logrus.WithError(err).Error("Erro ao executar limpeza de retenção")
		return
	}

	s.lastRunDeleted = deleted
	s.lastRunCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"deleted_rows": deleted,
		"duration":     time.Since(startTime).String(),
	}).Info("Limpeza de retenção concluída")
}

// TriggerManualRun dispara uma limpeza manual fora do agendamento
func (s *RetentionService) TriggerManualRun() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Limpeza de retenção já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando limpeza de retenção manual")
	go s.runRetention()
}

// GetStatus retorna o status atual do agendador
func (s *RetentionService) GetStatus() map[string]any {
	return map[string]any{
		"retention_enabled":     s.config.Enabled,
		"retention_cron":        s.config.CronSchedule,
		"retention_days":        s.config.Days,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_run_deleted_rows": s.lastRunDeleted,
	}
}
