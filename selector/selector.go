// Package selector picks the random subset of games shown on the gallery page.
package selector

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"

	"github.com/dasdy/gamepedia/model"
)

var ErrInvalidCount = errors.New("invalid subset size")

type Selector interface {
	Pick(items []model.CatalogItem, k int) ([]model.CatalogItem, error)
}

// Random draws without replacement using a partial Fisher-Yates shuffle over a copy of the input.
type Random struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandom returns a selector backed by the global math/rand/v2 source.
func NewRandom() *Random {
	return &Random{}
}

// NewSeeded returns a selector with a deterministic source.
func NewSeeded(seed1, seed2 uint64) *Random {
	return &Random{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

func (r *Random) intN(n int) int {
	if r.rng == nil {
		return rand.IntN(n)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rng.IntN(n)
}

// Pick returns k distinct items from items in random order. items is not modified.
func (r *Random) Pick(items []model.CatalogItem, k int) ([]model.CatalogItem, error) {
	if k <= 0 || k > len(items) {
		return nil, fmt.Errorf("%w: %d of %d", ErrInvalidCount, k, len(items))
	}

	shuffled := slices.Clone(items)

	for i := range k {
		j := i + r.intN(len(shuffled)-i)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	return shuffled[:k:k], nil
}
