package estimating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitekps/estimate-api/internal/domain"
)

type fixedSequencer struct {
	n int
}

func (f *fixedSequencer) Next() int {
	return f.n
}

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNormalizeEstimateNumber(t *testing.T) {
	referenceDate := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		req      *domain.EstimateRequest
		count    int
		expected string
	}{
		{
			name:     "이훈수 terceiro orçamento do dia gera DLP250601-A-3",
			req:      &domain.EstimateRequest{SupplierPerson: "이훈수"},
			count:    3,
			expected: "DLP250601-A-3",
		},
		{
			name:     "차재원 primeiro orçamento do dia gera DLP250601-B-1",
			req:      &domain.EstimateRequest{SupplierPerson: "차재원 부장"},
			count:    1,
			expected: "DLP250601-B-1",
		},
		{
			name:     "담당자 desconhecido cai no código X",
			req:      &domain.EstimateRequest{SupplierPerson: "홍길동"},
			count:    7,
			expected: "DLP250601-X-7",
		},
		{
			name:     "Número já informado é preservado",
			req:      &domain.EstimateRequest{SupplierPerson: "이훈수", EstimateNumber: "DLP250531-A-9"},
			count:    3,
			expected: "DLP250531-A-9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			normalizer := NewNormalizer(&fixedSequencer{n: tt.count})
			normalizer.now = fixedNow(referenceDate)

			normalizer.Normalize(tt.req)

			assert.Equal(t, tt.expected, tt.req.EstimateNumber)
		})
	}
}

type countingSequencer struct {
	n     int
	calls int
}

func (c *countingSequencer) Next() int {
	c.calls++
	return c.n
}

func TestNormalizeExisting(t *testing.T) {
	referenceDate := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

	t.Run("Número ausente fica como está e o contador não é consumido", func(t *testing.T) {
		counter := &countingSequencer{n: 1}
		normalizer := NewNormalizer(counter)
		normalizer.now = fixedNow(referenceDate)

		req := &domain.EstimateRequest{SupplierPerson: "이훈수"}
		normalizer.NormalizeExisting(req)

		assert.Empty(t, req.EstimateNumber)
		assert.Zero(t, counter.calls)
	})

	t.Run("Número do payload é mantido", func(t *testing.T) {
		normalizer := NewNormalizer(&countingSequencer{n: 9})
		normalizer.now = fixedNow(referenceDate)

		req := &domain.EstimateRequest{EstimateNumber: "DLP250531-A-9"}
		normalizer.NormalizeExisting(req)

		assert.Equal(t, "DLP250531-A-9", req.EstimateNumber)
	})

	t.Run("Data vazia e detalhes recebem o mesmo tratamento do preenchimento", func(t *testing.T) {
		normalizer := NewNormalizer(&countingSequencer{n: 1})
		normalizer.now = fixedNow(referenceDate)

		req := &domain.EstimateRequest{
			Products: []domain.Product{{Detail: "라인1<br>라인2"}},
		}
		normalizer.NormalizeExisting(req)

		assert.Equal(t, "2025-06-01", req.EstimateDate)
		assert.Equal(t, "\n라인1\n라인2\n", req.Products[0].Detail)
	})
}

func TestNormalizeEstimateDate(t *testing.T) {
	referenceDate := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)

	t.Run("Data vazia recebe a data de hoje", func(t *testing.T) {
		req := &domain.EstimateRequest{SupplierPerson: "이훈수"}
		normalizer := NewNormalizer(&fixedSequencer{n: 1})
		normalizer.now = fixedNow(referenceDate)

		normalizer.Normalize(req)

		assert.Equal(t, "2025-06-01", req.EstimateDate)
	})

	t.Run("Data informada é preservada", func(t *testing.T) {
		req := &domain.EstimateRequest{SupplierPerson: "이훈수", EstimateDate: "2025-05-20"}
		normalizer := NewNormalizer(&fixedSequencer{n: 1})
		normalizer.now = fixedNow(referenceDate)

		normalizer.Normalize(req)

		assert.Equal(t, "2025-05-20", req.EstimateDate)
	})
}

func TestNormalizeDetail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Tags br viram quebras de linha com padding",
			input:    "해상도: 1920x1080<br>인터페이스: GigE<br/>렌즈 포함",
			expected: "\n해상도: 1920x1080\n인터페이스: GigE\n렌즈 포함\n",
		},
		{
			name:     "Tag br maiúscula também é convertida",
			input:    "라인1<BR>라인2",
			expected: "\n라인1\n라인2\n",
		},
		{
			name:     "Sequências de linhas em branco são comprimidas",
			input:    "라인1<br><br><br><br>라인2",
			expected: "\n라인1\n\n라인2\n",
		},
		{
			name:     "Vazio permanece vazio",
			input:    "",
			expected: "",
		},
		{
			name:     "Somente espaços vira vazio",
			input:    "  <br>  ",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeDetail(tt.input))
		})
	}
}
