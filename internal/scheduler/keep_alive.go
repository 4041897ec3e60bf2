// Package scheduler agrupa os trabalhos periódicos do serviço.
package scheduler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"

	"github.com/bitekps/estimate-api/internal/config"
)

// KeepAliveConfig representa a configuração do ping periódico que mantém a
// instância acordada no free tier do Render.
type KeepAliveConfig struct {
	CronSchedule string
	TargetURL    string
	Enabled      bool
}

// KeepAliveService agenda um GET no próprio serviço para ele não hibernar.
type KeepAliveService struct {
	scheduler  *gocron.Scheduler
	config     KeepAliveConfig
	httpClient *http.Client
}

// NewKeepAliveService cria uma nova instância do serviço de keep-alive
func NewKeepAliveService(appConfig *config.Config) *KeepAliveService {
	keepAliveConfig := KeepAliveConfig{
		CronSchedule: appConfig.KeepAlive.CronSchedule,
		TargetURL:    appConfig.KeepAlive.TargetURL,
		Enabled:      appConfig.KeepAlive.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": keepAliveConfig.CronSchedule,
		"target_url":    keepAliveConfig.TargetURL,
		"enabled":       keepAliveConfig.Enabled,
	}).Info("Configuração do keep-alive carregada")

	return &KeepAliveService{
		scheduler: scheduler,
		config:    keepAliveConfig,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Start inicia o agendador
func (s *KeepAliveService) Start(ctx context.Context) error {
	if !s.config.Enabled || s.config.TargetURL == "" {
		logrus.Info("Keep-alive desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de keep-alive")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.ping()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o keep-alive: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de keep-alive")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *KeepAliveService) ping() {
	resp, err := s.httpClient.Get(s.config.TargetURL)
	if err != nil {
		logrus.WithError(err).Warn("keep-alive: ping failed")
		return
	}
	defer resp.Body.Close()

	logrus.WithFields(logrus.Fields{
		"status": resp.StatusCode,
		"url":    s.config.TargetURL,
	}).Debug("keep-alive: ping ok")
}
