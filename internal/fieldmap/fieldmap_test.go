package fieldmap

import (
	"testing"

	"github.com/bitekps/estimate-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestForRevision(t *testing.T) {
	tests := []struct {
		name     string
		revision Revision
		field    string
		want     string
		found    bool
	}{
		{
			name:     "revisão atual resolve campo escalar",
			revision: Revision2025,
			field:    "estimate_date",
			want:     "F5",
			found:    true,
		},
		{
			name:     "revisão atual resolve subcampo de produto",
			revision: Revision2025,
			field:    ProductField(7, "note"),
			want:     "G22",
			found:    true,
		},
		{
			name:     "revisão legada tem coordenadas próprias",
			revision: RevisionLegacy,
			field:    "company_name",
			want:     "B3",
			found:    true,
		},
		{
			name:     "campo inexistente não resolve",
			revision: Revision2025,
			field:    "products[8][type]",
			found:    false,
		},
		{
			name:     "revisão desconhecida cai na atual",
			revision: Revision("v99"),
			field:    "estimate_number",
			want:     "F6",
			found:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := ForRevision(tt.revision)
			got, ok := m.Resolve(tt.field)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRevision2025CoversAllProductSlots(t *testing.T) {
	m := ForRevision(Revision2025)

	for i := 0; i < domain.MaxProducts; i++ {
		for _, field := range []string{"type", "name", "detail", "qty", "price", "total", "note"} {
			_, ok := m.Resolve(ProductField(i, field))
			assert.True(t, ok, "slot %d field %s deveria resolver", i, field)
		}
	}
}
