package gdrive

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/bitekps/estimate-api/infrastructure/integrator/gdrive/driveclient"
	"github.com/bitekps/estimate-api/internal/config"
)

// DriveIntegrator expõe as operações de armazenamento de arquivos: cópia do
// template de orçamento e upload do PDF gerado.
type DriveIntegrator interface {
	CopyTemplate(ctx context.Context, templateID, destFolderID, name string) (string, error)
	UploadPDF(ctx context.Context, localPath, destFolderID, name string) (*driveclient.UploadedFile, error)
}

type DriveService struct {
	cfg    *config.Config
	Client driveclient.Client
}

func New(cfg *config.Config, client driveclient.Client) DriveIntegrator {
	return &DriveService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *DriveService) CopyTemplate(ctx context.Context, templateID, destFolderID, name string) (string, error) {
	newID, err := s.Client.CopyFile(ctx, templateID, destFolderID, name)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"template_id": templateID,
			"error":       err.Error(),
		}).Error("gdrive: failed to copy estimate template")
		return "", err
	}

	logrus.WithFields(logrus.Fields{
		"template_id": templateID,
		"new_id":      newID,
		"name":        name,
	}).Info("gdrive: estimate template copied")

	return newID, nil
}

func (s *DriveService) UploadPDF(ctx context.Context, localPath, destFolderID, name string) (*driveclient.UploadedFile, error) {
	uploaded, err := s.Client.UploadFile(ctx, localPath, destFolderID, name, "application/pdf")
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"file":  name,
			"error": err.Error(),
		}).Error("gdrive: failed to upload pdf")
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"file_id": uploaded.ID,
		"name":    name,
	}).Info("gdrive: pdf uploaded")

	return uploaded, nil
}
