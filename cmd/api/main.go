package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bitekps/estimate-api/infrastructure/integrator/gdrive"
	"github.com/bitekps/estimate-api/infrastructure/integrator/gdrive/driveclient"
	"github.com/bitekps/estimate-api/infrastructure/integrator/pipedrive"
	"github.com/bitekps/estimate-api/infrastructure/integrator/pipedrive/pipedriveclient"
	"github.com/bitekps/estimate-api/infrastructure/integrator/sheets"
	"github.com/bitekps/estimate-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/bitekps/estimate-api/internal/api"
	"github.com/bitekps/estimate-api/internal/config"
	"github.com/bitekps/estimate-api/internal/counter"
	"github.com/bitekps/estimate-api/internal/pdf"
	"github.com/bitekps/estimate-api/internal/scheduler"
	"github.com/bitekps/estimate-api/internal/usecases/collecting"
	"github.com/bitekps/estimate-api/internal/usecases/dealing"
	"github.com/bitekps/estimate-api/internal/usecases/estimating"
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

	renderClient := config.NewRenderClient(cfg)
	googleCredentials := config.NewGoogleCredentialsProvider(cfg, renderClient)

	sheetsClient := sheetsclient.NewClient(googleCredentials)
	sheetsIntegrator := sheets.New(cfg, sheetsClient)

	driveClient := driveclient.NewClient(googleCredentials)
	driveIntegrator := gdrive.New(cfg, driveClient)

	pipedriveClient := pipedriveclient.NewClient(cfg)
	pipedriveIntegrator := pipedrive.New(cfg, pipedriveClient)

	dailyCounter := counter.New(cfg.Estimate.CounterFile)
	normalizer := estimating.NewNormalizer(dailyCounter)

	dealingService := dealing.NewEstimateDealService(cfg, pipedriveIntegrator)

	estimatingService := estimating.NewTemplateFillService(
		cfg,
		sheetsIntegrator,
		driveIntegrator,
		normalizer,
	)

	collectingService := collecting.NewDataCollectionService(
		cfg,
		sheetsIntegrator,
		driveIntegrator,
		dealingService,
		pdf.NewRenderer(),
		dailyCounter,
		normalizer,
	)

	// Ping periódico para a instância do Render não hibernar
	keepAliveService := scheduler.NewKeepAliveService(cfg)
	if err := keepAliveService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de keep-alive")
	} else {
		logrus.Info("Agendador de keep-alive iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		estimatingService,
		collectingService,
		pipedriveIntegrator,
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
