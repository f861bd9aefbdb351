package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/XarpitX/Facebook-vs-Adwords/infrastructure/dataset"
	"github.com/XarpitX/Facebook-vs-Adwords/internal/config"
	"github.com/XarpitX/Facebook-vs-Adwords/internal/usecases/reshaping"
	"github.com/XarpitX/Facebook-vs-Adwords/pkg/utils"
)

// DatasetSyncConfig representa a configuração do agendador de recarga do dataset
type DatasetSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// DatasetSyncService gerencia o agendamento e a execução da recarga do
// dataset de campanhas. Uma recarga que falha mantém o snapshot anterior
// publicado.
type DatasetSyncService struct {
	scheduler           *gocron.Scheduler
	config              DatasetSyncConfig
	source              dataset.Source
	store               dataset.SnapshotStore
	reshaper            reshaping.Reshaper
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncError       string
}

// NewDatasetSyncService cria uma nova instância do serviço de recarga do dataset
func NewDatasetSyncService(
	source dataset.Source,
	store dataset.SnapshotStore,
	reshaper reshaping.Reshaper,
	appConfig *config.Config,
) *DatasetSyncService {
	syncConfig := DatasetSyncConfig{
		CronSchedule: appConfig.DatasetSync.CronSchedule,
		SyncEnabled:  appConfig.DatasetSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
		"source_path":   source.Path(),
	}).Info("Configuração do agendador de recarga do dataset carregada")

	return &DatasetSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		source:      source,
		store:       store,
		reshaper:    reshaper,
		syncRunning: false,
	}
}

// Start inicia o agendador
func (s *DatasetSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Recarga agendada do dataset desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de recarga do dataset")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncDataset()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar recarga do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de recarga do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// syncDataset executa uma recarga guardada pela flag de execução, para que
// disparos do cron e manuais não se sobreponham
func (s *DatasetSyncService) syncDataset() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	if err := s.SyncNow(); err != nil {
		logrus.WithError(err).Error("Erro na recarga do dataset, snapshot anterior mantido")
	}
}

// SyncNow carrega a fonte, deriva as observações e publica um novo snapshot.
// Em caso de erro nada é publicado e o snapshot anterior continua servindo
// as consultas.
func (s *DatasetSyncService) SyncNow() error {
	startTime := time.Now()
	s.lastSyncStartedAt = startTime

	logrus.WithField("source_path", s.source.Path()).Info("Iniciando recarga do dataset")

	campaignDataset, err := s.source.Load()
	if err != nil {
		s.lastSyncError = err.Error()
		return fmt.Errorf("erro ao carregar o dataset: %w", err)
	}

	observations, err := s.reshaper.Reshape(campaignDataset)
	if err != nil {
		s.lastSyncError = err.Error()
		return fmt.Errorf("erro ao remodelar o dataset: %w", err)
	}

	snapshotID, err := utils.GenerateID()
	if err != nil {
		s.lastSyncError = err.Error()
		return fmt.Errorf("erro ao gerar o identificador do snapshot: %w", err)
	}

	snapshot := &dataset.Snapshot{
		ID:           snapshotID,
		SourcePath:   s.source.Path(),
		LoadedAt:     time.Now(),
		Dataset:      campaignDataset,
		Observations: observations,
	}

	s.store.Replace(snapshot)

	s.lastSyncError = ""
	s.lastSyncCompletedAt = time.Now()

	logrus.WithFields(logrus.Fields{
		"snapshot_id":  snapshot.ID,
		"records":      len(campaignDataset.Records),
		"observations": len(observations),
		"duration":     time.Since(startTime).String(),
	}).Info("Recarga do dataset concluída")

	return nil
}

// TriggerManualSync inicia manualmente uma recarga do dataset
func (s *DatasetSyncService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Recarga do dataset já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando recarga manual do dataset")
	go s.syncDataset()
}

// GetStatus retorna o status atual do agendador
func (s *DatasetSyncService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"source_path":            s.source.Path(),
		"snapshot_loaded":        s.store.Current() != nil,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_error":        s.lastSyncError,
	}
}
