package domain

// RNG abstracts random number generation for deterministic testing.
type RNG interface {
	// Intn returns a non-negative random int in [0, n).
	Intn(n int) int
}

// PoseCue pairs a lowercase pose name (English or Sanskrit) with its cue.
// Several names may share one cue.
type PoseCue struct {
	Name string `yaml:"name"`
	Cue  string `yaml:"cue"`
}

// Catalog holds the fixed tables the service draws from.
// Poses is ordered: the fallback scan honours the declared order.
type Catalog struct {
	Words   []string  `yaml:"words"`
	Poses   []PoseCue `yaml:"poses"`
	Generic []string  `yaml:"generic"`
}

// CueResult is what the resolver hands back to callers.
// Note is empty unless a fallback notice applies.
type CueResult struct {
	Cue  string
	Note string
}

const (
	NoteNoCredential        = "Using fallback mode. Set OPENAI_API_KEY for AI-powered cues."
	NoteUpstreamUnavailable = "AI service unavailable. Using fallback response."
)
