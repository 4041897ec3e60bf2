package estimating

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/bitekps/estimate-api/internal/domain"
	"github.com/bitekps/estimate-api/internal/usecases/dealing"
)

// Sequencer abstrai o contador diário usado na numeração dos orçamentos.
type Sequencer interface {
	Next() int
}

var (
	brTagPattern     = regexp.MustCompile(`(?i)<br\s*/?>`)
	blankRunsPattern = regexp.MustCompile(`\n{3,}`)
)

// Normalizer preenche os campos derivados de uma requisição antes da escrita
// na planilha: data do orçamento, número sequencial e texto dos detalhes.
type Normalizer struct {
	counter Sequencer
	now     func() time.Time
}

func NewNormalizer(counter Sequencer) *Normalizer {
	return &Normalizer{
		counter: counter,
		now:     time.Now,
	}
}

// Normalize muta a requisição in place. Campos opcionais ausentes permanecem
// ausentes, com exceção dos que têm valor derivado, que passam a contar como
// presentes para a escrita.
func (n *Normalizer) Normalize(req *domain.EstimateRequest) {
	n.defaultEstimateDate(req)

	if strings.TrimSpace(req.EstimateNumber) == "" {
		req.EstimateNumber = n.nextEstimateNumber(req.SupplierPerson)
		req.MarkScalarPresent("estimate_number")
	}

	normalizeDetails(req)
}

// NormalizeExisting prepara uma requisição que referencia um documento já
// numerado: aplica os mesmos defaults, mas nunca inventa um número novo nem
// consome o contador. O número do payload vale como está, mesmo vazio.
func (n *Normalizer) NormalizeExisting(req *domain.EstimateRequest) {
	n.defaultEstimateDate(req)
	normalizeDetails(req)
}

func (n *Normalizer) defaultEstimateDate(req *domain.EstimateRequest) {
	if strings.TrimSpace(req.EstimateDate) == "" {
		req.EstimateDate = n.now().Format(time.DateOnly)
		req.MarkScalarPresent("estimate_date")
	}
}

func normalizeDetails(req *domain.EstimateRequest) {
	for i := range req.Products {
		req.Products[i].Detail = normalizeDetail(req.Products[i].Detail)
	}
}

// nextEstimateNumber monta o identificador DLPyymmdd-<código>-<n>, onde o
// código vem do 담당자 e n do contador diário de orçamentos.
func (n *Normalizer) nextEstimateNumber(supplierPerson string) string {
	return fmt.Sprintf("DLP%s-%s-%d",
		n.now().Format("060102"),
		dealing.PersonCode(supplierPerson),
		n.counter.Next(),
	)
}

// normalizeDetail converte <br> em quebras de linha reais, comprime sequências
// de linhas em branco e envolve o texto com uma linha vazia de cada lado para
// o conteúdo respirar dentro da célula mesclada.
func normalizeDetail(detail string) string {
	if detail == "" {
		return ""
	}

	text := brTagPattern.ReplaceAllString(detail, "\n")
	text = blankRunsPattern.ReplaceAllString(text, "\n\n")
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	return "\n" + text + "\n"
}
