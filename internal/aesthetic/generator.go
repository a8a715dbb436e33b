// Package aesthetic picks a design direction from a built-in catalog.
// It is the default generator behind the recommendation composer; an
// LLM-backed generator can be swapped in through the same interface.
package aesthetic

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/kailas-cloud/designdex/internal/domain"
)

// Generator hands out aesthetic directions from the preset catalog.
// Safe for concurrent use.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a generator. A non-zero seed makes the sequence of
// directions reproducible.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns one direction from the catalog. The context is
// accepted for interface symmetry with remote generators and is not
// used here.
func (g *Generator) Generate(_ context.Context) (domain.AestheticDirection, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return presets[g.rng.Intn(len(presets))], nil
}

// Directions lists the catalog's direction names in declaration order.
func Directions() []string {
	names := make([]string, len(presets))
	for i, p := range presets {
		names[i] = p.Name
	}
	return names
}
