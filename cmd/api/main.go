package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/XarpitX/Facebook-vs-Adwords/infrastructure/dataset"
	"github.com/XarpitX/Facebook-vs-Adwords/internal/api"
	"github.com/XarpitX/Facebook-vs-Adwords/internal/config"
	"github.com/XarpitX/Facebook-vs-Adwords/internal/scheduler"
	"github.com/XarpitX/Facebook-vs-Adwords/internal/usecases/authenticating"
	"github.com/XarpitX/Facebook-vs-Adwords/internal/usecases/insighting"
	"github.com/XarpitX/Facebook-vs-Adwords/internal/usecases/reshaping"
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

	// Fora do ambiente de desenvolvimento os logs saem em JSON
	if !cfg.App.Development {
		logrus.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: time.RFC3339,
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	csvSource := dataset.NewCSVSource(cfg.Dataset)
	snapshotStore := dataset.NewSnapshotStore()
	reshaper := reshaping.NewService()

	authenticator := authenticating.NewService(cfg)
	insightService := insighting.NewService(snapshotStore)

	datasetSyncService := scheduler.NewDatasetSyncService(
		csvSource,
		snapshotStore,
		reshaper,
		cfg,
	)

	// A primeira carga é síncrona: sem snapshot a API não tem o que servir
	if err := datasetSyncService.SyncNow(); err != nil {
		logrus.WithError(err).Fatal("Erro ao carregar o dataset inicial")
	}

	if err := datasetSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de recarga do dataset")
	} else {
		logrus.Info("Agendador de recarga do dataset iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		insightService,
		authenticator,
		datasetSyncService,
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
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
