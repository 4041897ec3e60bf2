package collecting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitekps/estimate-api/internal/domain"
)

func TestBuildSummaryRow(t *testing.T) {
	req := &domain.EstimateRequest{
		EstimateDate:    "2025-06-01",
		EstimateNumber:  "DLP250601-A-3",
		SupplierPerson:  "이훈수",
		ReceiverCompany: "삼성전자",
		ReceiverPerson:  "김담당",
		ReceiverContact: "kim@samsung.com",
		ProductCategory: "머신비전",
		DeliveryDate:    "발주 후 4주",
		Products: []domain.Product{
			{Name: "비전 센서", Total: 1000000},
			{Name: "8mm 렌즈", Total: 2000000},
		},
	}

	row := BuildSummaryRow(req,
		"https://docs.google.com/spreadsheets/d/abc/edit",
		"https://drive.google.com/file/d/def",
		303,
	)

	assert.Len(t, row, 20)

	assert.Equal(t, "2025-06-01", row[0])
	assert.Equal(t, "DLP250601-A-3", row[1])
	assert.Equal(t, "이훈수", row[2])
	assert.Equal(t, "삼성전자", row[3])
	assert.Equal(t, "김담당", row[4])
	assert.Equal(t, "kim@samsung.com", row[5])
	assert.Equal(t, "머신비전", row[6])

	// Produtos 1-8, com as linhas ausentes em branco
	assert.Equal(t, "비전 센서", row[7])
	assert.Equal(t, "8mm 렌즈", row[8])
	for i := 9; i < 15; i++ {
		assert.Equal(t, "", row[i])
	}

	// 3.000.000 + 10% de VAT
	assert.Equal(t, int64(3300000), row[15])
	assert.Equal(t, "발주 후 4주", row[16])
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/abc/edit", row[17])
	assert.Equal(t, "https://drive.google.com/file/d/def", row[18])
	assert.Equal(t, 303, row[19])
}

func TestBuildSummaryRowWithoutDeal(t *testing.T) {
	req := &domain.EstimateRequest{
		EstimateNumber: "DLP250601-X-1",
		Products: []domain.Product{
			{Name: "컨트롤러", Total: "1,500,000"},
		},
	}

	row := BuildSummaryRow(req, "", "", nil)

	assert.Len(t, row, 20)
	// Totais com string numérica de milhar
	assert.Equal(t, int64(1650000), row[15])
	// Sem negócio a coluna fica vazia, nunca nula
	assert.Equal(t, "", row[19])
}
