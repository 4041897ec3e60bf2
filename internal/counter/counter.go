// Package counter persiste o contador diário de orçamentos gerados em um
// arquivo JSON simples (data -> inteiro). O número alimenta apenas o
// identificador legível do orçamento, não é uma sequência crítica.
package counter

import (
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultFile = "pdf_count.json"

// DailyCounter incrementa e persiste a contagem de orçamentos por dia.
type DailyCounter struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

// New cria um contador persistido em path. Com path vazio usa pdf_count.json
// no diretório de trabalho.
func New(path string) *DailyCounter {
	if path == "" {
		path = defaultFile
	}
	return &DailyCounter{
		path: path,
		now:  time.Now,
	}
}

// Next incrementa e devolve a contagem do dia corrente. Arquivo ausente ou
// corrompido recomeça do zero; falha de escrita é registrada mas a contagem
// ainda é devolvida. O mutex protege apenas este processo, requisições de
// processos distintos podem repetir números (aceito, o número é informativo).
func (c *DailyCounter) Next() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	today := c.now().Format(time.DateOnly)

	counts := map[string]int{}
	if raw, err := os.ReadFile(c.path); err == nil {
		if err := json.Unmarshal(raw, &counts); err != nil {
			logrus.WithError(err).WithField("file", c.path).Warn("counter: corrupt counter file, resetting")
			counts = map[string]int{}
		}
	}

	counts[today]++

	raw, err := json.Marshal(counts)
	if err == nil {
		err = os.WriteFile(c.path, raw, 0o644)
	}
	if err != nil {
		logrus.WithError(err).WithField("file", c.path).Warn("counter: failed to persist daily count")
	}

	return counts[today]
}
