package estimating

import (
	"github.com/sirupsen/logrus"

	"github.com/bitekps/estimate-api/internal/domain"
	"github.com/bitekps/estimate-api/internal/fieldmap"
	"github.com/bitekps/estimate-api/pkg/apiErrors"
)

// Subcampos de cada linha de produto, na ordem das colunas A-G.
var productFields = []string{"type", "name", "detail", "qty", "price", "total", "note"}

// AssembleCellUpdates monta a lista ordenada de escritas de célula para uma
// requisição já normalizada. Escalares ausentes do payload não geram escrita
// nenhuma, deixando a célula do template intocada. As oito linhas de produto,
// ao contrário, são sempre emitidas por inteiro: linhas vazias viram "" para
// limpar resíduos de usos anteriores do documento. Campos sem célula na
// revisão ativa são descartados com aviso.
func AssembleCellUpdates(fm *fieldmap.Map, req *domain.EstimateRequest) []domain.CellUpdate {
	updates := make([]domain.CellUpdate, 0, len(domain.ScalarFields)+domain.MaxProducts*len(productFields))

	appendUpdate := func(field string, value interface{}) {
		coord, ok := fm.Resolve(field)
		if !ok {
			logrus.WithFields(logrus.Fields{
				"code":     apiErrors.ErrMappingMiss,
				"field":    field,
				"revision": fm.Revision(),
			}).Warn("assembler: field has no cell in active template revision, skipping")
			return
		}
		updates = append(updates, domain.CellUpdate{Range: coord, Value: value})
	}

	for _, field := range domain.ScalarFields {
		if !req.ScalarPresent(field) {
			continue
		}
		appendUpdate(field, req.ScalarValue(field))
	}

	for i := 0; i < domain.MaxProducts; i++ {
		product := req.ProductAt(i)
		appendUpdate(fieldmap.ProductField(i, "type"), product.Type)
		appendUpdate(fieldmap.ProductField(i, "name"), product.Name)
		appendUpdate(fieldmap.ProductField(i, "detail"), product.Detail)
		appendUpdate(fieldmap.ProductField(i, "qty"), product.Qty)
		appendUpdate(fieldmap.ProductField(i, "price"), blankWhenNil(product.Price))
		appendUpdate(fieldmap.ProductField(i, "total"), blankWhenNil(product.Total))
		appendUpdate(fieldmap.ProductField(i, "note"), product.Note)
	}

	return updates
}

func blankWhenNil(v interface{}) interface{} {
	if v == nil {
		return ""
	}
	return v
}
