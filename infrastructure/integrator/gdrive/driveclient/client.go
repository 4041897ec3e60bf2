package driveclient

import (
	"context"
	"os"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/bitekps/estimate-api/internal/config"
)

type Client interface {
	CopyFile(ctx context.Context, fileID, destFolderID, name string) (string, error)
	UploadFile(ctx context.Context, localPath, destFolderID, name, mimeType string) (*UploadedFile, error)
}

// UploadedFile é o retorno mínimo de um upload: id e link de visualização.
type UploadedFile struct {
	ID          string
	WebViewLink string
}

type DriveClient struct {
	credentials *config.GoogleCredentialsProvider
}

func NewClient(credentials *config.GoogleCredentialsProvider) Client {
	return &DriveClient{
		credentials: credentials,
	}
}

func (c *DriveClient) service(ctx context.Context) (*drive.Service, error) {
	ts, err := c.credentials.TokenSource(ctx)
	if err != nil {
		return nil, err
	}
	return drive.NewService(ctx, option.WithTokenSource(ts))
}

// CopyFile duplica um arquivo do Drive dentro da pasta de destino.
func (c *DriveClient) CopyFile(ctx context.Context, fileID, destFolderID, name string) (string, error) {
	svc, err := c.service(ctx)
	if err != nil {
		return "", err
	}

	copied, err := svc.Files.Copy(fileID, &drive.File{
		Name:    name,
		Parents: []string{destFolderID},
	}).
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return "", err
	}

	return copied.Id, nil
}

// UploadFile envia um arquivo local para a pasta de destino.
func (c *DriveClient) UploadFile(ctx context.Context, localPath, destFolderID, name, mimeType string) (*UploadedFile, error) {
	svc, err := c.service(ctx)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(localPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	created, err := svc.Files.Create(&drive.File{
		Name:    name,
		Parents: []string{destFolderID},
	}).
		Media(file, googleapi.ContentType(mimeType)).
		Fields("id", "webViewLink").
		SupportsAllDrives(true).
		Context(ctx).
		Do()
	if err != nil {
		return nil, err
	}

	return &UploadedFile{
		ID:          created.Id,
		WebViewLink: created.WebViewLink,
	}, nil
}
