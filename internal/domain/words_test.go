package domain_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fluffhead-tim/awesome-yoga-app/internal/domain"
)

type seededRNG struct{ r *rand.Rand }

func (s seededRNG) Intn(n int) int { return s.r.IntN(n) }

func TestWordProvider_PicksByIndex(t *testing.T) {
	words := []string{"steady", "grounded", "aligned"}
	p := domain.NewWordProvider(words, &deterministicRNG{values: []int{2, 0, 1}})

	assert.Equal(t, "aligned", p.Next())
	assert.Equal(t, "steady", p.Next())
	assert.Equal(t, "grounded", p.Next())
}

func TestWordProvider_RoughlyUniform(t *testing.T) {
	words := []string{"a", "b", "c", "d", "e"}
	p := domain.NewWordProvider(words, seededRNG{r: rand.New(rand.NewPCG(1, 2))})

	const draws = 50000
	counts := make(map[string]int)
	for range draws {
		w := p.Next()
		require.Contains(t, words, w)
		counts[w]++
	}

	expected := draws / len(words)
	for _, w := range words {
		assert.InDelta(t, expected, counts[w], float64(expected)*0.1, "word %q", w)
	}
}
