package sheets

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/bitekps/estimate-api/infrastructure/integrator/sheets/sheetsclient"
	"github.com/bitekps/estimate-api/internal/config"
	"github.com/bitekps/estimate-api/internal/domain"
)

// SpreadsheetIntegrator expõe as operações de planilha consumidas pelos
// use cases de preenchimento e coleta.
type SpreadsheetIntegrator interface {
	BatchWriteCells(ctx context.Context, docID string, updates []domain.CellUpdate) error
	AppendRow(ctx context.Context, docID string, row domain.SummaryRow) error
	RenameDocument(ctx context.Context, docID, title string) error
	ExportAsPDF(ctx context.Context, docID, localPath string) error
	SetCellWrap(ctx context.Context, docID, coordinate string) error
	InsertPageBreak(ctx context.Context, docID string, rowIndex int64) error
	UnmergeCell(ctx context.Context, docID, coordinate string) error
}

type SheetsService struct {
	cfg    *config.Config
	Client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) SpreadsheetIntegrator {
	return &SheetsService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *SheetsService) BatchWriteCells(ctx context.Context, docID string, updates []domain.CellUpdate) error {
	err := s.Client.BatchWriteCells(ctx, docID, updates)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"doc_id":  docID,
			"updates": len(updates),
			"error":   err.Error(),
		}).Error("sheets: batch write failed")
		return err
	}

	logrus.WithFields(logrus.Fields{
		"doc_id":  docID,
		"updates": len(updates),
	}).Info("sheets: batch write applied")

	return nil
}

func (s *SheetsService) AppendRow(ctx context.Context, docID string, row domain.SummaryRow) error {
	return s.Client.AppendRow(ctx, docID, row)
}

func (s *SheetsService) RenameDocument(ctx context.Context, docID, title string) error {
	return s.Client.RenameDocument(ctx, docID, title)
}

func (s *SheetsService) ExportAsPDF(ctx context.Context, docID, localPath string) error {
	return s.Client.ExportAsPDF(ctx, docID, localPath)
}

func (s *SheetsService) SetCellWrap(ctx context.Context, docID, coordinate string) error {
	return s.Client.SetCellWrap(ctx, docID, coordinate)
}

func (s *SheetsService) InsertPageBreak(ctx context.Context, docID string, rowIndex int64) error {
	return s.Client.InsertPageBreak(ctx, docID, rowIndex)
}

func (s *SheetsService) UnmergeCell(ctx context.Context, docID, coordinate string) error {
	return s.Client.UnmergeCell(ctx, docID, coordinate)
}
