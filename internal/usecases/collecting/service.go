// Package collecting fecha o ciclo de um orçamento: exporta o PDF, arquiva no
// Drive, registra o negócio no Pipedrive e anexa a linha de resumo à planilha
// de coleta de dados.
package collecting

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/bitekps/estimate-api/infrastructure/integrator/gdrive"
	"github.com/bitekps/estimate-api/infrastructure/integrator/sheets"
	"github.com/bitekps/estimate-api/internal/config"
	"github.com/bitekps/estimate-api/internal/domain"
	"github.com/bitekps/estimate-api/internal/usecases/dealing"
	"github.com/bitekps/estimate-api/internal/usecases/estimating"
	"github.com/bitekps/estimate-api/pkg/utils"
)

// PDFRenderer é o renderizador de contingência usado quando o export do
// documento vivo falha.
type PDFRenderer interface {
	Render(req *domain.EstimateRequest, localPath string) error
}

// CollectResult é a resposta do fluxo de coleta. PipedriveDealID fica nulo
// quando o negócio não pôde ser criado.
type CollectResult struct {
	PDFLink         string   `json:"pdf_link"`
	PDFID           string   `json:"pdf_id"`
	PDFCountToday   int      `json:"pdf_count_today"`
	PipedriveDealID *int     `json:"pipedrive_deal_id"`
	Warnings        []string `json:"warnings,omitempty"`
}

type CollectingService interface {
	CollectData(ctx context.Context, req *domain.EstimateRequest) (*CollectResult, error)
}

type DataCollectionService struct {
	cfg        *config.Config
	sheets     sheets.SpreadsheetIntegrator
	drive      gdrive.DriveIntegrator
	dealing    dealing.DealingService
	renderer   PDFRenderer
	counter    estimating.Sequencer
	normalizer *estimating.Normalizer
	tempDir    string
}

func NewDataCollectionService(
	cfg *config.Config,
	sheetsService sheets.SpreadsheetIntegrator,
	driveService gdrive.DriveIntegrator,
	dealingService dealing.DealingService,
	renderer PDFRenderer,
	counter estimating.Sequencer,
	normalizer *estimating.Normalizer,
) *DataCollectionService {
	return &DataCollectionService{
		cfg:        cfg,
		sheets:     sheetsService,
		drive:      driveService,
		dealing:    dealingService,
		renderer:   renderer,
		counter:    counter,
		normalizer: normalizer,
		tempDir:    os.TempDir(),
	}
}

// CollectData executa o fluxo completo. Export, upload e registro da linha de
// resumo são obrigatórios; a criação do negócio é best-effort.
func (s *DataCollectionService) CollectData(ctx context.Context, req *domain.EstimateRequest) (*CollectResult, error) {
	// O número do orçamento vem do documento preenchido; aqui ele nunca é
	// gerado, para não divergir do que já está na planilha.
	s.normalizer.NormalizeExisting(req)

	result := &CollectResult{}

	fileName := s.pdfFileName(req)
	tempPath := filepath.Join(s.tempDir, fmt.Sprintf("%s_%s", utils.TempSuffix(), fileName))
	defer s.removeTempFile(tempPath)

	if err := s.producePDF(ctx, req, tempPath, result); err != nil {
		return nil, err
	}

	uploaded, err := s.drive.UploadPDF(ctx, tempPath, s.cfg.Google.DriveFolderID, fileName)
	if err != nil {
		return nil, errors.Wrap(err, "falha ao arquivar o PDF no Drive")
	}
	result.PDFID = uploaded.ID
	result.PDFLink = uploaded.WebViewLink

	sheetURL := estimating.SheetURL(req.FileID)

	dealResult, err := s.dealing.CreateEstimateDeal(req, dealing.DealLinks{
		SheetURL:     sheetURL,
		PDFURL:       uploaded.WebViewLink,
		PDFLocalPath: tempPath,
		FileName:     fileName,
	})
	if err != nil {
		logrus.WithError(err).Warn("collecting: deal creation failed, continuing without deal")
		result.Warnings = append(result.Warnings, "Pipedrive 거래 생성 실패")
	} else {
		result.Warnings = append(result.Warnings, dealResult.Warnings...)
		if dealResult.Created {
			dealID := dealResult.DealID
			result.PipedriveDealID = &dealID
		}
	}

	row := BuildSummaryRow(req, sheetURL, uploaded.WebViewLink, dealIDValue(result.PipedriveDealID))
	if err := s.sheets.AppendRow(ctx, s.cfg.Google.DataCollectionSheetID, row); err != nil {
		return nil, errors.Wrap(err, "falha ao registrar a linha de resumo")
	}

	result.PDFCountToday = s.counter.Next()

	logrus.WithFields(logrus.Fields{
		"estimate_number": req.EstimateNumber,
		"pdf_id":          result.PDFID,
		"pdf_count":       result.PDFCountToday,
	}).Info("collecting: estimate collected")

	return result, nil
}

// producePDF tenta o export do documento vivo e, se falhar, o renderizador
// local. Sem documento de origem, vai direto para o renderizador. Só aborta
// quando nenhum caminho produz o PDF.
func (s *DataCollectionService) producePDF(ctx context.Context, req *domain.EstimateRequest, tempPath string, result *CollectResult) error {
	if req.FileID == "" {
		logrus.Warn("collecting: request without source document, rendering local pdf")
		result.Warnings = append(result.Warnings, "원본 문서가 없어 기본 PDF로 생성")
		if renderErr := s.renderer.Render(req, tempPath); renderErr != nil {
			return errors.Wrap(renderErr, "renderização local falhou sem documento de origem")
		}
		return nil
	}

	exportErr := s.sheets.ExportAsPDF(ctx, req.FileID, tempPath)
	if exportErr == nil {
		return nil
	}

	logrus.WithError(exportErr).WithField("file_id", req.FileID).
		Warn("collecting: sheet export failed, rendering fallback pdf")
	result.Warnings = append(result.Warnings, "시트 PDF 내보내기 실패, 기본 PDF로 대체")

	if renderErr := s.renderer.Render(req, tempPath); renderErr != nil {
		return errors.Wrapf(renderErr, "export e renderização local falharam (export: %v)", exportErr)
	}
	return nil
}

// pdfFileName monta 애니트론견적서_<produto>_<número>.pdf com o nome do
// primeiro produto higienizado para o Drive.
func (s *DataCollectionService) pdfFileName(req *domain.EstimateRequest) string {
	label := ""
	for _, p := range req.Products {
		if p.Name != "" {
			label = p.Name
			break
		}
	}
	if label == "" {
		label = req.ReceiverCompany
	}

	return fmt.Sprintf("애니트론견적서_%s_%s.pdf", utils.CleanFilename(label), req.EstimateNumber)
}

func (s *DataCollectionService) removeTempFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).WithField("path", path).Warn("collecting: temp pdf cleanup failed")
	}
}

func dealIDValue(id *int) interface{} {
	if id == nil {
		return nil
	}
	return *id
}
