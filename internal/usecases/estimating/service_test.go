package estimating

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	drivemocks "github.com/bitekps/estimate-api/infrastructure/integrator/gdrive/mocks"
	sheetsmocks "github.com/bitekps/estimate-api/infrastructure/integrator/sheets/mocks"
	"github.com/bitekps/estimate-api/internal/config"
	"github.com/bitekps/estimate-api/internal/domain"
)

func newEstimatingTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Google.TemplateSheetID = "template-id"
	cfg.Google.EstimateFolderID = "folder-id"
	cfg.Estimate.TemplateRevision = "2025"
	return cfg
}

func TestFillTemplate(t *testing.T) {
	referenceDate := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		req      *domain.EstimateRequest
		setup    func(sheetsMock *sheetsmocks.MockSpreadsheetIntegrator, driveMock *drivemocks.MockDriveIntegrator)
		validate func(t *testing.T, result *FillResult, err error)
	}{
		{
			name: "Documento existente é escrito sem copiar o template",
			req: &domain.EstimateRequest{
				FileID:         "doc-123",
				EstimateNumber: "DLP250601-A-3",
				EstimateDate:   "2025-06-01",
				SupplierPerson: "이훈수",
			},
			setup: func(sheetsMock *sheetsmocks.MockSpreadsheetIntegrator, driveMock *drivemocks.MockDriveIntegrator) {
				sheetsMock.EXPECT().RenameDocument(gomock.Any(), "doc-123", "DLP250601-A-3").Return(nil)
				sheetsMock.EXPECT().
					BatchWriteCells(gomock.Any(), "doc-123", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, updates []domain.CellUpdate) error {
						// 3 escalares informados + 8 linhas x 7 colunas
						assert.Len(t, updates, 59)
						return nil
					})
				sheetsMock.EXPECT().SetCellWrap(gomock.Any(), "doc-123", gomock.Any()).Return(nil).Times(8)
				sheetsMock.EXPECT().InsertPageBreak(gomock.Any(), "doc-123", int64(pageBreakRow)).Return(nil)
				sheetsMock.EXPECT().UnmergeCell(gomock.Any(), "doc-123", "B30").Return(nil)
			},
			validate: func(t *testing.T, result *FillResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "doc-123", result.FileID)
				assert.Equal(t, "https://docs.google.com/spreadsheets/d/doc-123/edit", result.SheetURL)
				assert.Equal(t, "DLP250601-A-3", result.EstimateNumber)
				assert.Equal(t, 59, result.CellsWritten)
			},
		},
		{
			name: "Placeholder não resolvido do formulário dispara cópia do template",
			req: &domain.EstimateRequest{
				FileID:         "{{fileId}}",
				SupplierPerson: "이훈수",
			},
			setup: func(sheetsMock *sheetsmocks.MockSpreadsheetIntegrator, driveMock *drivemocks.MockDriveIntegrator) {
				driveMock.EXPECT().
					CopyTemplate(gomock.Any(), "template-id", "folder-id", "견적서_DLP_250601 1430").
					Return("new-doc", nil)
				sheetsMock.EXPECT().RenameDocument(gomock.Any(), "new-doc", "DLP250601-A-1").Return(nil)
				sheetsMock.EXPECT().BatchWriteCells(gomock.Any(), "new-doc", gomock.Any()).Return(nil)
				sheetsMock.EXPECT().SetCellWrap(gomock.Any(), "new-doc", gomock.Any()).Return(nil).Times(8)
				sheetsMock.EXPECT().InsertPageBreak(gomock.Any(), "new-doc", int64(pageBreakRow)).Return(nil)
				sheetsMock.EXPECT().UnmergeCell(gomock.Any(), "new-doc", "B30").Return(nil)
			},
			validate: func(t *testing.T, result *FillResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "new-doc", result.FileID)
				assert.Equal(t, "DLP250601-A-1", result.EstimateNumber)
			},
		},
		{
			name: "Falha no rename não derruba o preenchimento",
			req: &domain.EstimateRequest{
				FileID:         "doc-123",
				EstimateNumber: "DLP250601-A-3",
			},
			setup: func(sheetsMock *sheetsmocks.MockSpreadsheetIntegrator, driveMock *drivemocks.MockDriveIntegrator) {
				sheetsMock.EXPECT().RenameDocument(gomock.Any(), "doc-123", "DLP250601-A-3").Return(errors.New("api down"))
				sheetsMock.EXPECT().BatchWriteCells(gomock.Any(), "doc-123", gomock.Any()).Return(nil)
				sheetsMock.EXPECT().SetCellWrap(gomock.Any(), "doc-123", gomock.Any()).Return(nil).Times(8)
				sheetsMock.EXPECT().InsertPageBreak(gomock.Any(), "doc-123", int64(pageBreakRow)).Return(nil)
				sheetsMock.EXPECT().UnmergeCell(gomock.Any(), "doc-123", "B30").Return(nil)
			},
			validate: func(t *testing.T, result *FillResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "doc-123", result.FileID)
			},
		},
		{
			name: "Falha na escrita em lote é fatal",
			req: &domain.EstimateRequest{
				FileID:         "doc-123",
				EstimateNumber: "DLP250601-A-3",
			},
			setup: func(sheetsMock *sheetsmocks.MockSpreadsheetIntegrator, driveMock *drivemocks.MockDriveIntegrator) {
				sheetsMock.EXPECT().RenameDocument(gomock.Any(), "doc-123", "DLP250601-A-3").Return(nil)
				sheetsMock.EXPECT().BatchWriteCells(gomock.Any(), "doc-123", gomock.Any()).Return(errors.New("quota exceeded"))
			},
			validate: func(t *testing.T, result *FillResult, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
		{
			name: "Falha na cópia do template é fatal",
			req:  &domain.EstimateRequest{},
			setup: func(sheetsMock *sheetsmocks.MockSpreadsheetIntegrator, driveMock *drivemocks.MockDriveIntegrator) {
				driveMock.EXPECT().
					CopyTemplate(gomock.Any(), "template-id", "folder-id", gomock.Any()).
					Return("", errors.New("not found"))
			},
			validate: func(t *testing.T, result *FillResult, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			sheetsMock := sheetsmocks.NewMockSpreadsheetIntegrator(ctrl)
			driveMock := drivemocks.NewMockDriveIntegrator(ctrl)
			tt.setup(sheetsMock, driveMock)

			normalizer := NewNormalizer(&fixedSequencer{n: 1})
			normalizer.now = fixedNow(referenceDate)

			service := NewTemplateFillService(newEstimatingTestConfig(), sheetsMock, driveMock, normalizer)
			service.now = fixedNow(referenceDate)

			result, err := service.FillTemplate(context.Background(), tt.req)
			tt.validate(t, result, err)
		})
	}
}

func TestCreateTemplate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	sheetsMock := sheetsmocks.NewMockSpreadsheetIntegrator(ctrl)
	driveMock := drivemocks.NewMockDriveIntegrator(ctrl)

	driveMock.EXPECT().
		CopyTemplate(gomock.Any(), "template-id", "folder-id", gomock.Any()).
		Return("fresh-doc", nil)

	service := NewTemplateFillService(newEstimatingTestConfig(), sheetsMock, driveMock, NewNormalizer(&fixedSequencer{n: 1}))

	result, err := service.CreateTemplate(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "fresh-doc", result.FileID)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/fresh-doc/edit", result.SheetURL)
}
