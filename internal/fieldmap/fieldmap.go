// Package fieldmap mantém as tabelas de mapeamento campo lógico -> célula A1
// do template de orçamento. Cada revisão do template tem a sua própria tabela,
// selecionada explicitamente por configuração.
package fieldmap

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Revision identifica uma revisão do template de orçamento.
type Revision string

const (
	// Revision2025 é o template atual, com 8 linhas de produto (15-22).
	Revision2025 Revision = "2025"
	// RevisionLegacy é o primeiro template, de coluna única (B3-B10).
	RevisionLegacy Revision = "legacy"
)

// Map é uma tabela imutável de campo lógico para coordenada de destino.
type Map struct {
	revision Revision
	cells    map[string]string
}

// Revision retorna a revisão que originou o mapa.
func (m *Map) Revision() Revision {
	return m.revision
}

// Resolve devolve a coordenada do campo lógico. O segundo retorno indica se
// o campo existe na revisão ativa.
func (m *Map) Resolve(field string) (string, bool) {
	coord, ok := m.cells[field]
	return coord, ok
}

// ProductField monta a chave lógica de um subcampo de produto indexado,
// no formato products[i][field].
func ProductField(index int, field string) string {
	return fmt.Sprintf("products[%d][%s]", index, field)
}

// ForRevision devolve o mapa da revisão pedida. Revisões desconhecidas caem
// na revisão atual com um aviso, nunca em erro.
func ForRevision(rev Revision) *Map {
	switch rev {
	case Revision2025:
		return &Map{revision: Revision2025, cells: cells2025}
	case RevisionLegacy:
		return &Map{revision: RevisionLegacy, cells: cellsLegacy}
	default:
		logrus.WithField("revision", rev).Warn("fieldmap: unknown template revision, using current")
		return &Map{revision: Revision2025, cells: cells2025}
	}
}

var cells2025 = map[string]string{
	// 기본 정보
	"estimate_date":    "F5",
	"estimate_number":  "F6",
	"supplier_person":  "B11",
	"supplier_contact": "B12",
	"supplier_email":   "B12",
	"supplier_phone":   "B13",
	"receiver_company": "D10",
	"receiver_person":  "E11",
	"receiver_contact": "E12",
	"receiver_email":   "E12",
	"receiver_phone":   "E13",
	"delivery_date":    "B30",

	// 제품1-8 (행 15-22)
	"products[0][type]":   "A15",
	"products[0][name]":   "B15",
	"products[0][detail]": "C15",
	"products[0][qty]":    "D15",
	"products[0][price]":  "E15",
	"products[0][total]":  "F15",
	"products[0][note]":   "G15",

	"products[1][type]":   "A16",
	"products[1][name]":   "B16",
	"products[1][detail]": "C16",
	"products[1][qty]":    "D16",
	"products[1][price]":  "E16",
	"products[1][total]":  "F16",
	"products[1][note]":   "G16",

	"products[2][type]":   "A17",
	"products[2][name]":   "B17",
	"products[2][detail]": "C17",
	"products[2][qty]":    "D17",
	"products[2][price]":  "E17",
	"products[2][total]":  "F17",
	"products[2][note]":   "G17",

	"products[3][type]":   "A18",
	"products[3][name]":   "B18",
	"products[3][detail]": "C18",
	"products[3][qty]":    "D18",
	"products[3][price]":  "E18",
	"products[3][total]":  "F18",
	"products[3][note]":   "G18",

	"products[4][type]":   "A19",
	"products[4][name]":   "B19",
	"products[4][detail]": "C19",
	"products[4][qty]":    "D19",
	"products[4][price]":  "E19",
	"products[4][total]":  "F19",
	"products[4][note]":   "G19",

	"products[5][type]":   "A20",
	"products[5][name]":   "B20",
	"products[5][detail]": "C20",
	"products[5][qty]":    "D20",
	"products[5][price]":  "E20",
	"products[5][total]":  "F20",
	"products[5][note]":   "G20",

	"products[6][type]":   "A21",
	"products[6][name]":   "B21",
	"products[6][detail]": "C21",
	"products[6][qty]":    "D21",
	"products[6][price]":  "E21",
	"products[6][total]":  "F21",
	"products[6][note]":   "G21",

	"products[7][type]":   "A22",
	"products[7][name]":   "B22",
	"products[7][detail]": "C22",
	"products[7][qty]":    "D22",
	"products[7][price]":  "E22",
	"products[7][total]":  "F22",
	"products[7][note]":   "G22",

	// aliases mantidos por compatibilidade com formulários antigos
	"company_name":   "F5",
	"contact_person": "F6",
	"contact_email":  "B11",
	"contact_phone":  "B12",
	"project_name":   "D10",
	"total_amount":   "F22",
}

var cellsLegacy = map[string]string{
	"company_name":    "B3",
	"contact_person":  "B4",
	"contact_email":   "B5",
	"contact_phone":   "B6",
	"project_name":    "B7",
	"supplier_person": "B8",
	"total_amount":    "B9",
	"products":        "B10",
}
