package dealing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	pipedrivedomain "github.com/bitekps/estimate-api/infrastructure/integrator/pipedrive/domain"
	pipedrivemocks "github.com/bitekps/estimate-api/infrastructure/integrator/pipedrive/mocks"
	"github.com/bitekps/estimate-api/internal/config"
	"github.com/bitekps/estimate-api/internal/domain"
)

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Pipedrive.PipelineID = 4
	cfg.Pipedrive.StageID = 47
	return cfg
}

func TestLookupSalesPerson(t *testing.T) {
	tests := []struct {
		name          string
		person        string
		expectedUser  int
		expectedStage int
		expectedCode  string
		matched       bool
	}{
		{
			name:          "Nome exato resolve usuário, etapa e código",
			person:        "이훈수",
			expectedUser:  23659842,
			expectedStage: 47,
			expectedCode:  "A",
			matched:       true,
		},
		{
			name:          "Nome com cargo resolve por substring",
			person:        "영업부 차재원 부장",
			expectedUser:  23787233,
			expectedStage: 48,
			expectedCode:  "B",
			matched:       true,
		},
		{
			name:          "전준영 usa a etapa própria mesmo sendo o último da tabela",
			person:        "전준영",
			expectedUser:  23839164,
			expectedStage: 49,
			expectedCode:  "F",
			matched:       true,
		},
		{
			name:          "Desconhecido cai na etapa padrão e código X",
			person:        "홍길동",
			expectedStage: defaultStageID,
			expectedCode:  defaultPersonCode,
			matched:       false,
		},
		{
			name:          "Vazio não resolve usuário",
			person:        "",
			expectedStage: defaultStageID,
			expectedCode:  defaultPersonCode,
			matched:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, ok := UserIDFor(tt.person)
			assert.Equal(t, tt.matched, ok)
			if tt.matched {
				assert.Equal(t, tt.expectedUser, userID)
			}
			assert.Equal(t, tt.expectedStage, StageIDFor(tt.person))
			assert.Equal(t, tt.expectedCode, PersonCode(tt.person))
		})
	}
}

func TestCreateEstimateDeal(t *testing.T) {
	req := &domain.EstimateRequest{
		EstimateNumber:  "DLP250601-A-3",
		SupplierPerson:  "이훈수",
		ReceiverCompany: "삼성전자",
		ReceiverPerson:  "김담당",
		ReceiverContact: "kim@samsung.com",
		Products: []domain.Product{
			{Name: "비전 센서", Qty: "2", Price: 1000000, Total: 2000000},
		},
	}

	tests := []struct {
		name     string
		req      *domain.EstimateRequest
		links    DealLinks
		setup    func(pd *pipedrivemocks.MockPipedriveIntegrator)
		validate func(t *testing.T, result *DealResult, err error)
	}{
		{
			name: "Fluxo completo cria negócio com organização, pessoa, anexo e nota",
			req:  req,
			links: DealLinks{
				SheetURL:     "https://docs.google.com/spreadsheets/d/abc",
				PDFURL:       "https://drive.google.com/file/d/def",
				PDFLocalPath: "/tmp/estimate.pdf",
				FileName:     "애니트론견적서_삼성전자_DLP250601-A-3.pdf",
			},
			setup: func(pd *pipedrivemocks.MockPipedriveIntegrator) {
				pd.EXPECT().CreateOrganization("삼성전자").Return(101, nil)
				pd.EXPECT().CreatePerson("김담당", "kim@samsung.com").Return(202, nil)
				pd.EXPECT().
					CreateDeal(gomock.Any()).
					DoAndReturn(func(payload pipedrivedomain.DealPayload) (int, error) {
						assert.Equal(t, "삼성전자 - DLP250601-A-3", payload.Title)
						// subtotal 2.000.000 + 10% de VAT
						assert.Equal(t, int64(2200000), payload.Value)
						assert.Equal(t, "KRW", payload.Currency)
						assert.Equal(t, 4, payload.PipelineID)
						assert.Equal(t, 47, payload.StageID)
						assert.Equal(t, 23659842, payload.UserID)
						assert.Equal(t, 101, payload.OrgID)
						assert.Equal(t, 202, payload.PersonID)
						return 303, nil
					})
				pd.EXPECT().
					AttachFile(303, "/tmp/estimate.pdf", "애니트론견적서_삼성전자_DLP250601-A-3.pdf").
					Return(404, nil)
				pd.EXPECT().
					AddNote(303, gomock.Any()).
					DoAndReturn(func(_ int, content string) error {
						assert.Contains(t, content, "견적서명: 애니트론견적서_삼성전자_DLP250601-A-3.pdf")
						assert.Contains(t, content, "엑셀견적서: https://docs.google.com/spreadsheets/d/abc")
						assert.Contains(t, content, "PDF견적서: https://drive.google.com/file/d/def")
						return nil
					})
			},
			validate: func(t *testing.T, result *DealResult, err error) {
				assert.NoError(t, err)
				assert.True(t, result.Created)
				assert.Equal(t, 303, result.DealID)
				assert.Empty(t, result.Warnings)
			},
		},
		{
			name: "Sem usuário correspondente não cria negócio e reporta",
			req: &domain.EstimateRequest{
				EstimateNumber:  "DLP250601-X-1",
				SupplierPerson:  "홍길동",
				ReceiverCompany: "ACME",
			},
			setup: func(pd *pipedrivemocks.MockPipedriveIntegrator) {},
			validate: func(t *testing.T, result *DealResult, err error) {
				assert.NoError(t, err)
				assert.False(t, result.Created)
				assert.Zero(t, result.DealID)
				assert.Len(t, result.Warnings, 1)
			},
		},
		{
			name: "Falhas acessórias viram warnings sem derrubar o negócio",
			req:  req,
			links: DealLinks{
				PDFLocalPath: "/tmp/estimate.pdf",
				FileName:     "estimate.pdf",
			},
			setup: func(pd *pipedrivemocks.MockPipedriveIntegrator) {
				pd.EXPECT().CreateOrganization("삼성전자").Return(0, errors.New("api down"))
				pd.EXPECT().CreatePerson("김담당", "kim@samsung.com").Return(0, errors.New("api down"))
				pd.EXPECT().CreateDeal(gomock.Any()).Return(303, nil)
				pd.EXPECT().AttachFile(303, "/tmp/estimate.pdf", "estimate.pdf").Return(0, errors.New("api down"))
				pd.EXPECT().AddNote(303, gomock.Any()).Return(errors.New("api down"))
			},
			validate: func(t *testing.T, result *DealResult, err error) {
				assert.NoError(t, err)
				assert.True(t, result.Created)
				assert.Equal(t, 303, result.DealID)
				assert.Len(t, result.Warnings, 4)
			},
		},
		{
			name: "Falha na criação do negócio é erro",
			req:  req,
			setup: func(pd *pipedrivemocks.MockPipedriveIntegrator) {
				pd.EXPECT().CreateOrganization("삼성전자").Return(101, nil)
				pd.EXPECT().CreatePerson("김담당", "kim@samsung.com").Return(202, nil)
				pd.EXPECT().CreateDeal(gomock.Any()).Return(0, errors.New("api down"))
			},
			validate: func(t *testing.T, result *DealResult, err error) {
				assert.Error(t, err)
				assert.Nil(t, result)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockPipedrive := pipedrivemocks.NewMockPipedriveIntegrator(ctrl)
			tt.setup(mockPipedrive)

			service := NewEstimateDealService(newTestConfig(), mockPipedrive)
			result, err := service.CreateEstimateDeal(tt.req, tt.links)
			tt.validate(t, result, err)
		})
	}
}
