package estimating

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitekps/estimate-api/internal/domain"
	"github.com/bitekps/estimate-api/internal/fieldmap"
)

func TestAssembleCellUpdates(t *testing.T) {
	fm := fieldmap.ForRevision(fieldmap.Revision2025)

	req := &domain.EstimateRequest{
		EstimateDate:    "2025-06-01",
		EstimateNumber:  "DLP250601-A-3",
		SupplierPerson:  "이훈수",
		SupplierContact: "hslee@bitek.co.kr",
		ReceiverCompany: "삼성전자",
		ReceiverPerson:  "김담당",
		ReceiverContact: "kim@samsung.com",
		DeliveryDate:    "발주 후 4주",
		Products: []domain.Product{
			{Type: "카메라", Name: "비전 센서", Detail: "\n1920x1080\n", Qty: "2", Price: 1000000, Total: 2000000, Note: "재고"},
			{Type: "렌즈", Name: "8mm 렌즈", Qty: "2", Price: 150000, Total: 300000},
		},
	}

	updates := AssembleCellUpdates(fm, req)

	// 8 escalares informados + 8 linhas x 7 colunas
	assert.Len(t, updates, 64)

	byRange := make(map[string]interface{}, len(updates))
	for _, u := range updates {
		byRange[u.Range] = u.Value
	}

	// Escalares nas células do template atual
	assert.Equal(t, "2025-06-01", byRange["F5"])
	assert.Equal(t, "DLP250601-A-3", byRange["F6"])
	assert.Equal(t, "이훈수", byRange["B11"])
	assert.Equal(t, "삼성전자", byRange["D10"])
	assert.Equal(t, "발주 후 4주", byRange["B30"])

	// Primeira linha de produto preenchida
	assert.Equal(t, "카메라", byRange["A15"])
	assert.Equal(t, "비전 센서", byRange["B15"])
	assert.Equal(t, 1000000, byRange["E15"])
	assert.Equal(t, 2000000, byRange["F15"])

	// Linhas sem produto são limpas com string vazia
	assert.Equal(t, "", byRange["B17"])
	assert.Equal(t, "", byRange["E22"])
	assert.Equal(t, "", byRange["G22"])
}

func TestAssembleCellUpdatesOrderIsStable(t *testing.T) {
	fm := fieldmap.ForRevision(fieldmap.Revision2025)
	req := &domain.EstimateRequest{EstimateDate: "2025-06-01"}

	first := AssembleCellUpdates(fm, req)
	second := AssembleCellUpdates(fm, req)

	assert.Equal(t, first, second)
	// Único escalar informado primeiro, produtos na sequência das linhas
	assert.Len(t, first, 57)
	assert.Equal(t, "F5", first[0].Range)
	assert.Equal(t, "A15", first[1].Range)
	assert.Equal(t, "G22", first[len(first)-1].Range)
}

func TestAssembleCellUpdatesSkipsAbsentScalars(t *testing.T) {
	fm := fieldmap.ForRevision(fieldmap.Revision2025)

	// Payload sem delivery_date, como o formulário envia quando o campo fica
	// em branco
	req := &domain.EstimateRequest{}
	err := json.Unmarshal([]byte(`{
		"fileId": "doc-123",
		"estimate_date": "2025-06-01",
		"estimate_number": "DLP250601-A-3",
		"supplier_person": "이훈수",
		"products": [{"name": "비전 센서"}]
	}`), req)
	assert.NoError(t, err)

	updates := AssembleCellUpdates(fm, req)

	byRange := make(map[string]interface{}, len(updates))
	for _, u := range updates {
		byRange[u.Range] = u.Value
	}

	// Escalares omitidos não geram escrita: a célula da data de entrega fica
	// como está no template
	assert.NotContains(t, byRange, "B30")
	assert.Equal(t, "2025-06-01", byRange["F5"])
	assert.Equal(t, "이훈수", byRange["B11"])
	assert.Len(t, updates, 59)
}

func TestAssembleCellUpdatesWritesExplicitEmptyScalar(t *testing.T) {
	fm := fieldmap.ForRevision(fieldmap.Revision2025)

	req := &domain.EstimateRequest{}
	err := json.Unmarshal([]byte(`{
		"estimate_number": "DLP250601-A-3",
		"delivery_date": ""
	}`), req)
	assert.NoError(t, err)

	updates := AssembleCellUpdates(fm, req)

	byRange := make(map[string]interface{}, len(updates))
	for _, u := range updates {
		byRange[u.Range] = u.Value
	}

	// String vazia explícita limpa a célula, diferente do campo ausente
	assert.Contains(t, byRange, "B30")
	assert.Equal(t, "", byRange["B30"])
}

func TestAssembleCellUpdatesLegacyRevisionSkipsUnknownFields(t *testing.T) {
	fm := fieldmap.ForRevision(fieldmap.RevisionLegacy)
	req := &domain.EstimateRequest{
		EstimateDate:   "2025-06-01",
		SupplierPerson: "이훈수",
	}

	updates := AssembleCellUpdates(fm, req)

	// A revisão legada só conhece supplier_person entre os campos atuais;
	// todo o resto é descartado sem erro.
	assert.Len(t, updates, 1)
	assert.Equal(t, "B8", updates[0].Range)
	assert.Equal(t, "이훈수", updates[0].Value)
}
