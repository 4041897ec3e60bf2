// Package pdf renderiza um orçamento de contingência direto dos dados da
// requisição, usado quando o export do documento vivo falha.
package pdf

import (
	"fmt"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/sirupsen/logrus"

	"github.com/bitekps/estimate-api/internal/domain"
	"github.com/bitekps/estimate-api/pkg/utils"
)

// Fonte TTF com cobertura de hangul. Sem ela o PDF sai em Arial e o texto
// coreano degrada, igual ao comportamento do renderizador antigo.
const koreanFontFile = "fonts/NanumGothic.ttf"

type Renderer struct {
	fontPath string
}

func NewRenderer() *Renderer {
	return &Renderer{fontPath: koreanFontFile}
}

// Render gera o PDF do orçamento em localPath.
func (r *Renderer) Render(req *domain.EstimateRequest, localPath string) error {
	pdf := gofpdf.New("P", "mm", "A4", "")

	font := "Arial"
	if _, err := os.Stat(r.fontPath); err == nil {
		pdf.AddUTF8Font("korean", "", r.fontPath)
		font = "korean"
	} else {
		logrus.WithField("font", r.fontPath).Warn("pdf: korean font not found, falling back to Arial")
	}

	pdf.AddPage()
	pdf.SetMargins(15, 15, 15)

	// Título
	pdf.SetFont(font, "", 18)
	pdf.SetTextColor(0x21, 0x80, 0x8c)
	pdf.CellFormat(180, 12, fmt.Sprintf("견적서 - %s", req.EstimateNumber), "", 1, "C", false, 0, "")
	pdf.Ln(6)
	pdf.SetTextColor(0, 0, 0)

	// Informações básicas
	pdf.SetFont(font, "", 10)
	basicInfo := [][2]string{
		{"견적일자", req.EstimateDate},
		{"견적번호", req.EstimateNumber},
		{"공급자", "(주)바이텍테크놀로지"},
		{"담당자", req.SupplierPerson},
		{"수신자 회사", req.ReceiverCompany},
		{"수신자 담당자", req.ReceiverPerson},
		{"납기일", req.DeliveryDate},
	}
	for _, row := range basicInfo {
		pdf.SetFillColor(0xf0, 0xf0, 0xf0)
		pdf.CellFormat(40, 8, row[0], "1", 0, "L", true, 0, "")
		pdf.CellFormat(140, 8, row[1], "1", 1, "L", false, 0, "")
	}
	pdf.Ln(8)

	// Tabela de produtos (somente linhas com nome)
	if hasNamedProduct(req.Products) {
		pdf.SetFillColor(0x21, 0x80, 0x8c)
		pdf.SetTextColor(255, 255, 255)
		pdf.CellFormat(25, 8, "구분", "1", 0, "C", true, 0, "")
		pdf.CellFormat(40, 8, "제품명", "1", 0, "C", true, 0, "")
		pdf.CellFormat(50, 8, "상세정보", "1", 0, "C", true, 0, "")
		pdf.CellFormat(15, 8, "수량", "1", 0, "C", true, 0, "")
		pdf.CellFormat(25, 8, "단가(원)", "1", 0, "C", true, 0, "")
		pdf.CellFormat(25, 8, "합계(원)", "1", 1, "C", true, 0, "")

		pdf.SetTextColor(0, 0, 0)
		for _, p := range req.Products {
			if p.Name == "" {
				continue
			}
			qty := p.Qty
			if qty == "" {
				qty = "1"
			}
			pdf.CellFormat(25, 8, p.Type, "1", 0, "C", false, 0, "")
			pdf.CellFormat(40, 8, p.Name, "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 8, p.Detail, "1", 0, "L", false, 0, "")
			pdf.CellFormat(15, 8, qty, "1", 0, "C", false, 0, "")
			pdf.CellFormat(25, 8, utils.FormatWon(domain.NumericAmount(p.Price)), "1", 0, "R", false, 0, "")
			pdf.CellFormat(25, 8, utils.FormatWon(domain.NumericAmount(p.Total)), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(8)
	}

	// Totais com VAT
	totals := domain.ComputeTotals(req.Products)
	pdf.SetFont(font, "", 12)
	pdf.CellFormat(60, 9, "공급가액", "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 9, utils.FormatWon(totals.Subtotal)+"원", "1", 1, "R", false, 0, "")
	pdf.CellFormat(60, 9, "부가세 (10%)", "1", 0, "C", false, 0, "")
	pdf.CellFormat(60, 9, utils.FormatWon(totals.VAT)+"원", "1", 1, "R", false, 0, "")
	pdf.SetFillColor(0x21, 0x80, 0x8c)
	pdf.SetTextColor(255, 255, 255)
	pdf.CellFormat(60, 9, "총액", "1", 0, "C", true, 0, "")
	pdf.CellFormat(60, 9, utils.FormatWon(totals.GrandTotal)+"원", "1", 1, "R", true, 0, "")

	return pdf.OutputFileAndClose(localPath)
}

func hasNamedProduct(products []domain.Product) bool {
	for _, p := range products {
		if p.Name != "" {
			return true
		}
	}
	return false
}
