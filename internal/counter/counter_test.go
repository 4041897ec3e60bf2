package counter

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextIncrementsPerDay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdf_count.json")

	c := New(path)
	c.now = func() time.Time { return time.Date(2025, 6, 1, 10, 0, 0, 0, time.Local) }

	assert.Equal(t, 1, c.Next())
	assert.Equal(t, 2, c.Next())
	assert.Equal(t, 3, c.Next())

	// dia seguinte recomeça, mas o dia anterior permanece no arquivo
	c.now = func() time.Time { return time.Date(2025, 6, 2, 10, 0, 0, 0, time.Local) }
	assert.Equal(t, 1, c.Next())

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"2025-06-01": 3, "2025-06-02": 1}`, string(raw))
}

func TestNextToleratesCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pdf_count.json")
	require.NoError(t, os.WriteFile(path, []byte("not-json"), 0o644))

	c := New(path)
	assert.Equal(t, 1, c.Next())
}

func TestNextToleratesMissingFile(t *testing.T) {
	c := New(filepath.Join(t.TempDir(), "missing", "..", "pdf_count.json"))
	assert.Equal(t, 1, c.Next())
}
