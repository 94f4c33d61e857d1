package classifier

import (
	"fmt"
	"math"

	"github.com/corey/tally/internal/ports"
)

// SizeTransform selects how the vocabulary size feeds the smoothing
// denominator: the raw distinct-token count, or its natural logarithm.
type SizeTransform int

const (
	// SizeIdentity uses the distinct-token count directly.
	SizeIdentity SizeTransform = iota
	// SizeNaturalLog uses ln(count). Smoothing against the log of the
	// vocabulary size keeps the denominator from drowning out sparse
	// categories when the vocabulary grows large.
	SizeNaturalLog
)

// Vocabulary tracks every distinct token the classifier has ever observed,
// with a global occurrence counter per token. Counts only grow under normal
// training; entries disappear wholesale via Remove (untrain or purge).
type Vocabulary struct {
	store     ports.CounterStore
	transform SizeTransform
}

// NewVocabulary creates a vocabulary view over store.
func NewVocabulary(store ports.CounterStore, transform SizeTransform) *Vocabulary {
	return &Vocabulary{store: store, transform: transform}
}

// Observe registers one occurrence of token, creating the entry at 1 if absent.
func (v *Vocabulary) Observe(token string) error {
	if _, err := v.store.Increment(ports.Key(ports.Vocabulary(), token), 1); err != nil {
		return fmt.Errorf("observe token %q: %w", token, err)
	}
	return nil
}

// Remove deletes the token entry entirely, regardless of its count.
// Removing an absent token is a no-op.
func (v *Vocabulary) Remove(token string) error {
	if _, err := v.store.Delete(ports.Key(ports.Vocabulary(), token)); err != nil {
		return fmt.Errorf("remove token %q: %w", token, err)
	}
	return nil
}

// Count returns the number of distinct registered tokens.
func (v *Vocabulary) Count() (int, error) {
	n, err := v.store.Len(ports.Vocabulary())
	if err != nil {
		return 0, fmt.Errorf("vocabulary size: %w", err)
	}
	return n, nil
}

// OccurrenceCount returns the global occurrence count for token (0 if absent).
func (v *Vocabulary) OccurrenceCount(token string) (int64, error) {
	n, err := v.store.Get(ports.Key(ports.Vocabulary(), token))
	if err != nil {
		return 0, fmt.Errorf("token count %q: %w", token, err)
	}
	return n, nil
}

// SmoothingSize returns the vocabulary size term V used by the probability
// engine, with the configured transform applied. An empty vocabulary yields 0
// under either transform (ln is never taken of zero).
func (v *Vocabulary) SmoothingSize() (float64, error) {
	n, err := v.Count()
	if err != nil {
		return 0, err
	}
	if v.transform == SizeNaturalLog {
		if n == 0 {
			return 0, nil
		}
		return math.Log(float64(n)), nil
	}
	return float64(n), nil
}

// Tokens enumerates all registered tokens. Order is unspecified.
func (v *Vocabulary) Tokens() ([]string, error) {
	keys, err := v.store.Keys(ports.Vocabulary())
	if err != nil {
		return nil, fmt.Errorf("vocabulary tokens: %w", err)
	}
	return keys, nil
}
