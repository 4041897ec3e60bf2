package domain

import "encoding/json"

// MaxProducts é o número fixo de linhas de produto no template de orçamento.
// Linhas ausentes são escritas em branco para preservar o layout da planilha.
const MaxProducts = 8

// ScalarFields são os campos escalares do formulário, na ordem de escrita no
// template. Diferente das linhas de produto, um escalar ausente no payload
// não gera escrita nenhuma: a célula do template fica como está.
var ScalarFields = []string{
	"estimate_date",
	"estimate_number",
	"supplier_person",
	"supplier_contact",
	"receiver_company",
	"receiver_person",
	"receiver_contact",
	"delivery_date",
}

// Product é um item de linha do orçamento.
type Product struct {
	Type   string      `json:"type"`
	Name   string      `json:"name"`
	Detail string      `json:"detail"`
	Qty    string      `json:"qty"`
	Price  interface{} `json:"price"`
	Total  interface{} `json:"total"`
	Note   string      `json:"note"`
}

// EstimateRequest é o payload completo de um orçamento vindo do formulário.
type EstimateRequest struct {
	FileID          string    `json:"fileId"`
	EstimateDate    string    `json:"estimate_date"`
	EstimateNumber  string    `json:"estimate_number"`
	SupplierPerson  string    `json:"supplier_person"`
	SupplierContact string    `json:"supplier_contact"`
	ReceiverCompany string    `json:"receiver_company"`
	ReceiverPerson  string    `json:"receiver_person"`
	ReceiverContact string    `json:"receiver_contact"`
	DeliveryDate    string    `json:"delivery_date"`
	ProductCategory string    `json:"product_category"`
	Products        []Product `json:"products"`

	// Chaves que vieram de fato no payload JSON. Distingue campo ausente
	// (nenhuma escrita) de string vazia explícita (limpa a célula).
	present map[string]bool
}

// estimateRequestJSON evita a recursão do UnmarshalJSON customizado.
type estimateRequestJSON EstimateRequest

// UnmarshalJSON decodifica o payload e registra quais chaves estavam
// presentes, para que os campos escalares omitidos sejam pulados na escrita.
func (r *EstimateRequest) UnmarshalJSON(data []byte) error {
	var decoded estimateRequestJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	var keys map[string]json.RawMessage
	if err := json.Unmarshal(data, &keys); err != nil {
		return err
	}

	*r = EstimateRequest(decoded)
	r.present = make(map[string]bool, len(keys))
	for key := range keys {
		r.present[key] = true
	}
	return nil
}

// ScalarValue devolve o valor do campo escalar pelo nome lógico do formulário.
func (r *EstimateRequest) ScalarValue(field string) string {
	switch field {
	case "estimate_date":
		return r.EstimateDate
	case "estimate_number":
		return r.EstimateNumber
	case "supplier_person":
		return r.SupplierPerson
	case "supplier_contact":
		return r.SupplierContact
	case "receiver_company":
		return r.ReceiverCompany
	case "receiver_person":
		return r.ReceiverPerson
	case "receiver_contact":
		return r.ReceiverContact
	case "delivery_date":
		return r.DeliveryDate
	}
	return ""
}

// ScalarPresent informa se o campo escalar veio no payload. Requisições
// montadas em código, sem passar pelo JSON, consideram presentes os campos
// não vazios.
func (r *EstimateRequest) ScalarPresent(field string) bool {
	if r.present != nil {
		return r.present[field]
	}
	return r.ScalarValue(field) != ""
}

// MarkScalarPresent registra um campo preenchido depois do parse, como os
// derivados pela normalização.
func (r *EstimateRequest) MarkScalarPresent(field string) {
	if r.present == nil {
		r.present = make(map[string]bool, len(ScalarFields))
		for _, f := range ScalarFields {
			if r.ScalarValue(f) != "" {
				r.present[f] = true
			}
		}
	}
	r.present[field] = true
}

// ProductAt retorna o produto na posição i ou um produto vazio quando a
// posição não existe (layout de largura fixa).
func (r *EstimateRequest) ProductAt(i int) Product {
	if i >= 0 && i < len(r.Products) {
		return r.Products[i]
	}
	return Product{}
}

// CellUpdate é uma escrita (coordenada A1, valor) destinada à planilha.
type CellUpdate struct {
	Range string
	Value interface{}
}

// SummaryRow é uma linha achatada do log de coleta, na ordem fixa das
// colunas da planilha de coleta de dados.
type SummaryRow []interface{}

// EstimateTotals consolida os valores calculados de um orçamento.
type EstimateTotals struct {
	Subtotal   int64
	VAT        int64
	GrandTotal int64
}
