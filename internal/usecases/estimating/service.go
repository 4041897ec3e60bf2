// Package estimating preenche o template de orçamento no Google Sheets a
// partir dos dados enviados pelo formulário do site.
package estimating

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bitekps/estimate-api/infrastructure/integrator/gdrive"
	"github.com/bitekps/estimate-api/infrastructure/integrator/sheets"
	"github.com/bitekps/estimate-api/internal/config"
	"github.com/bitekps/estimate-api/internal/domain"
	"github.com/bitekps/estimate-api/internal/fieldmap"
)

// Linha após a qual entra a quebra visual de página no template atual.
const pageBreakRow = 40

// FillResult é o retorno do preenchimento: o documento escrito e o número do
// orçamento efetivamente usado (pode ter sido gerado aqui).
type FillResult struct {
	FileID         string `json:"fileId"`
	SheetURL       string `json:"sheet_url"`
	EstimateNumber string `json:"estimate_number"`
	CellsWritten   int    `json:"cells_written"`
}

type EstimatingService interface {
	FillTemplate(ctx context.Context, req *domain.EstimateRequest) (*FillResult, error)
	CreateTemplate(ctx context.Context) (*FillResult, error)
}

type TemplateFillService struct {
	cfg        *config.Config
	sheets     sheets.SpreadsheetIntegrator
	drive      gdrive.DriveIntegrator
	normalizer *Normalizer
	now        func() time.Time
}

func NewTemplateFillService(
	cfg *config.Config,
	sheetsService sheets.SpreadsheetIntegrator,
	driveService gdrive.DriveIntegrator,
	normalizer *Normalizer,
) *TemplateFillService {
	return &TemplateFillService{
		cfg:        cfg,
		sheets:     sheetsService,
		drive:      driveService,
		normalizer: normalizer,
		now:        time.Now,
	}
}

// FillTemplate resolve o documento de destino, normaliza a requisição e grava
// todas as células de uma vez. Os ajustes cosméticos depois da escrita são
// best-effort: falha neles não invalida o orçamento.
func (s *TemplateFillService) FillTemplate(ctx context.Context, req *domain.EstimateRequest) (*FillResult, error) {
	fileID, err := s.resolveTargetDocument(ctx, req.FileID)
	if err != nil {
		return nil, err
	}

	s.normalizer.Normalize(req)

	if err := s.sheets.RenameDocument(ctx, fileID, req.EstimateNumber); err != nil {
		logrus.WithError(err).WithField("file_id", fileID).
			Warn("estimating: document rename failed, keeping current title")
	}

	fm := fieldmap.ForRevision(fieldmap.Revision(s.cfg.Estimate.TemplateRevision))
	updates := AssembleCellUpdates(fm, req)

	if err := s.sheets.BatchWriteCells(ctx, fileID, updates); err != nil {
		return nil, errors.Wrap(err, "falha ao gravar células do orçamento")
	}

	s.applyCosmeticFormatting(ctx, fileID)

	return &FillResult{
		FileID:         fileID,
		SheetURL:       SheetURL(fileID),
		EstimateNumber: req.EstimateNumber,
		CellsWritten:   len(updates),
	}, nil
}

// CreateTemplate só copia o template para um documento novo, sem escrever nada.
func (s *TemplateFillService) CreateTemplate(ctx context.Context) (*FillResult, error) {
	fileID, err := s.copyTemplate(ctx)
	if err != nil {
		return nil, err
	}
	return &FillResult{
		FileID:   fileID,
		SheetURL: SheetURL(fileID),
	}, nil
}

// resolveTargetDocument devolve o documento onde escrever. fileId vazio ou com
// placeholder não resolvido do formulário ({{...}}) dispara a cópia do template.
func (s *TemplateFillService) resolveTargetDocument(ctx context.Context, fileID string) (string, error) {
	if fileID != "" && !strings.Contains(fileID, "{{") {
		return fileID, nil
	}
	return s.copyTemplate(ctx)
}

func (s *TemplateFillService) copyTemplate(ctx context.Context) (string, error) {
	name := fmt.Sprintf("견적서_DLP_%s", s.now().Format("060102 1504"))

	fileID, err := s.drive.CopyTemplate(ctx, s.cfg.Google.TemplateSheetID, s.cfg.Google.EstimateFolderID, name)
	if err != nil {
		return "", errors.Wrap(err, "falha ao copiar o template de orçamento")
	}

	logrus.WithFields(logrus.Fields{
		"file_id": fileID,
		"name":    name,
	}).Info("estimating: template copied")

	return fileID, nil
}

// applyCosmeticFormatting aplica quebra de linha nas células de detalhe,
// a quebra de página visual e desfaz a mesclagem da linha de entrega.
func (s *TemplateFillService) applyCosmeticFormatting(ctx context.Context, fileID string) {
	fm := fieldmap.ForRevision(fieldmap.Revision(s.cfg.Estimate.TemplateRevision))

	for i := 0; i < domain.MaxProducts; i++ {
		coord, ok := fm.Resolve(fieldmap.ProductField(i, "detail"))
		if !ok {
			continue
		}
		if err := s.sheets.SetCellWrap(ctx, fileID, coord); err != nil {
			logrus.WithError(err).WithField("cell", coord).
				Warn("estimating: detail cell wrap failed")
		}
	}

	if err := s.sheets.InsertPageBreak(ctx, fileID, pageBreakRow); err != nil {
		logrus.WithError(err).Warn("estimating: page break insertion failed")
	}

	if coord, ok := fm.Resolve("delivery_date"); ok {
		if err := s.sheets.UnmergeCell(ctx, fileID, coord); err != nil {
			logrus.WithError(err).WithField("cell", coord).
				Warn("estimating: delivery cell unmerge failed")
		}
	}
}

// SheetURL monta o link de edição de um documento do Sheets.
func SheetURL(fileID string) string {
	return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/edit", fileID)
}
