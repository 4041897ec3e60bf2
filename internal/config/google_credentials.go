package config

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/bitekps/estimate-api/pkg/apiErrors"
)

// Escopos exigidos pelas operações de planilha e de Drive.
var googleScopes = []string{
	"https://www.googleapis.com/auth/spreadsheets",
	"https://www.googleapis.com/auth/drive",
}

// ErrNoCredentials indica que nenhuma fonte forneceu o service account.
var ErrNoCredentials = errors.New("config: google service account credentials not available")

// GoogleCredentialsProvider resolve o service account do Google sob demanda.
// Ordem das fontes: variável GOOGLE_CREDENTIALS, secret file do Render
// (quando configurado), arquivo creds.json local. O token resultante expira e
// deve ser resolvido a cada uso, não cacheado entre requisições.
type GoogleCredentialsProvider struct {
	cfg     *Config
	secrets SecretStorage
}

func NewGoogleCredentialsProvider(cfg *Config, secrets SecretStorage) *GoogleCredentialsProvider {
	return &GoogleCredentialsProvider{
		cfg:     cfg,
		secrets: secrets,
	}
}

// TokenSource devolve um TokenSource autenticado para os escopos de
// planilha e Drive, ou ErrNoCredentials quando nenhuma fonte responde.
func (p *GoogleCredentialsProvider) TokenSource(ctx context.Context) (oauth2.TokenSource, error) {
	raw, err := p.rawCredentials()
	if err != nil {
		return nil, err
	}

	jwtConfig, err := google.JWTConfigFromJSON(raw, googleScopes...)
	if err != nil {
		return nil, errors.Wrap(err, "config: invalid service account JSON")
	}

	return jwtConfig.TokenSource(ctx), nil
}

func (p *GoogleCredentialsProvider) rawCredentials() ([]byte, error) {
	if p.cfg.Google.CredentialsJSON != "" {
		logrus.Debug("config: google credentials loaded from environment")
		return []byte(p.cfg.Google.CredentialsJSON), nil
	}

	if p.secrets != nil && p.cfg.Render.ServiceID != "" {
		content, err := p.secrets.GetSecret(p.cfg.Render.ServiceID, "GOOGLE_CREDENTIALS")
		if err == nil && content != "" {
			logrus.Debug("config: google credentials loaded from render secret file")
			return []byte(content), nil
		}
		if err != nil {
			logrus.WithError(err).Warn("config: render secret file lookup failed, trying local file")
		}
	}

	if p.cfg.Google.CredentialsFile != "" {
		raw, err := os.ReadFile(p.cfg.Google.CredentialsFile)
		if err == nil {
			logrus.Debug("config: google credentials loaded from local file")
			return raw, nil
		}
		if !os.IsNotExist(err) {
			logrus.WithError(err).Warn("config: failed reading local credentials file")
		}
	}

	logrus.WithField("code", apiErrors.ErrConfigurationMissing).
		Error("config: no google credentials source available")
	return nil, ErrNoCredentials
}
