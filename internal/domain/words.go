package domain

// WordProvider hands out alternatives to "awesome", uniformly at random.
type WordProvider struct {
	words []string
	rng   RNG
}

// NewWordProvider expects a non-empty word list; the catalog guarantees that.
func NewWordProvider(words []string, rng RNG) *WordProvider {
	return &WordProvider{words: words, rng: rng}
}

func (p *WordProvider) Next() string {
	return p.words[p.rng.Intn(len(p.words))]
}
