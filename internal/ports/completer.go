package ports

import "context"

// Completer turns a teacher's phrase into a cue via a hosted language model.
// Implementations make exactly one upstream call and wrap every failure in
// domain.ErrUpstream.
type Completer interface {
	Complete(ctx context.Context, phrase string) (string, error)
}
