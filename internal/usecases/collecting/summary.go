package collecting

import (
	"github.com/bitekps/estimate-api/internal/domain"
)

// BuildSummaryRow monta a linha de 20 colunas da planilha consolidada de
// orçamentos. As oito colunas de produto são sempre emitidas, vazias quando a
// linha não existe, para o layout da planilha nunca deslizar.
func BuildSummaryRow(req *domain.EstimateRequest, sheetURL, pdfURL string, dealID interface{}) domain.SummaryRow {
	totals := domain.ComputeTotals(req.Products)

	row := make(domain.SummaryRow, 0, 20)
	row = append(row,
		req.EstimateDate,
		req.EstimateNumber,
		req.SupplierPerson,
		req.ReceiverCompany,
		req.ReceiverPerson,
		req.ReceiverContact,
		req.ProductCategory,
	)

	for i := 0; i < domain.MaxProducts; i++ {
		row = append(row, req.ProductAt(i).Name)
	}

	if dealID == nil {
		dealID = ""
	}

	row = append(row,
		totals.GrandTotal,
		req.DeliveryDate,
		sheetURL,
		pdfURL,
		dealID,
	)

	return row
}
