// Package classifier implements an online, incrementally-trainable Naive
// Bayes classifier over arbitrary discrete tokens. All state lives in a
// ports.CounterStore — every call re-reads from storage, so multiple
// processes sharing a store prefix see each other's training immediately.
//
// Training and untraining are sequences of single-key atomic increments;
// classification is a non-transactional multi-key read. Concurrent trainers
// never lose updates, but a classify racing a train may observe a torn
// snapshot. That trade-off is accepted throughout.
package classifier

import (
	"github.com/corey/tally/internal/ports"
)

// DefaultSmoothingK is the Laplace smoothing constant used when Options
// leaves SmoothingK unset.
const DefaultSmoothingK = 1.0

// Options configures a Classifier.
type Options struct {
	// Binarized deduplicates the token set of each example: repeated
	// occurrences of a token within one example count once.
	Binarized bool

	// UniformPriors gives every category the same prior probability
	// instead of weighting by example counts.
	UniformPriors bool

	// SmoothingK is the Laplace smoothing constant. Zero means
	// DefaultSmoothingK.
	SmoothingK float64

	// SizeTransform selects the vocabulary-size smoothing term: the raw
	// distinct-token count or its natural log.
	SizeTransform SizeTransform
}

func (o Options) withDefaults() Options {
	if o.SmoothingK == 0 {
		o.SmoothingK = DefaultSmoothingK
	}
	return o
}

// Classifier orchestrates training, untraining, purging and classification
// over a Vocabulary and Categories sharing one counter store.
type Classifier struct {
	opts   Options
	vocab  *Vocabulary
	counts *Categories
	engine *Engine
}

// New creates a Classifier over store.
func New(store ports.CounterStore, opts Options) *Classifier {
	opts = opts.withDefaults()
	vocab := NewVocabulary(store, opts.SizeTransform)
	counts := NewCategories(store)
	return &Classifier{
		opts:   opts,
		vocab:  vocab,
		counts: counts,
		engine: NewEngine(vocab, counts, opts.SmoothingK, opts.UniformPriors),
	}
}

// Vocabulary exposes the classifier's token vocabulary (read-mostly; used for
// stats and purge reporting).
func (c *Classifier) Vocabulary() *Vocabulary { return c.vocab }

// Counters exposes the classifier's category counters.
func (c *Classifier) Counters() *Categories { return c.counts }

// Train records tokens as one training example of category. In binarized
// mode the token set is deduplicated first.
func (c *Classifier) Train(tokens []string, category string) error {
	if c.opts.Binarized {
		tokens = dedupe(tokens)
	}
	if err := c.counts.RecordExample(category); err != nil {
		return err
	}
	for _, token := range tokens {
		if err := c.vocab.Observe(token); err != nil {
			return err
		}
		if err := c.counts.AddTokenOccurrence(category, token); err != nil {
			return err
		}
	}
	return nil
}

// Untrain reverses one training example of category. Tokens never trained
// for this category are silently skipped. Removing the category's last
// example deletes the category.
//
// A skipped token keeps its vocabulary entry; a removed one loses it
// globally, even when other categories still count it. That mirrors the
// long-standing behavior of the counting scheme and keeps untrain the exact
// inverse of train for the single-category case; with overlapping categories
// it shrinks the smoothing term early.
func (c *Classifier) Untrain(tokens []string, category string) error {
	if c.opts.Binarized {
		tokens = dedupe(tokens)
	}
	if _, err := c.counts.RemoveExample(category); err != nil {
		return err
	}
	for _, token := range tokens {
		trained, err := c.counts.HasTokenOccurrence(category, token)
		if err != nil {
			return err
		}
		if !trained {
			continue
		}
		if err := c.vocab.Remove(token); err != nil {
			return err
		}
		if _, err := c.counts.RemoveTokenOccurrence(category, token); err != nil {
			return err
		}
	}
	return nil
}

// PurgeLessThan removes every token whose total occurrence count across all
// categories is below minTotal, both from the per-category counters and from
// the vocabulary. Returns the purged tokens. Example counts are not
// adjusted, so purging is not exactly equivalent to never having trained the
// purged tokens.
func (c *Classifier) PurgeLessThan(minTotal int64) ([]string, error) {
	tokens, err := c.vocab.Tokens()
	if err != nil {
		return nil, err
	}
	var purged []string
	for _, token := range tokens {
		hit, err := c.counts.PurgeBelowThreshold(token, minTotal)
		if err != nil {
			return nil, err
		}
		if hit {
			purged = append(purged, token)
		}
	}
	// Vocabulary removal is batched after the scan so the scan never
	// mutates its own iteration target.
	for _, token := range purged {
		if err := c.vocab.Remove(token); err != nil {
			return nil, err
		}
	}
	return purged, nil
}

// DeleteCategory removes the category's registry entry. See
// Categories.DeleteCategory for the orphaned-occurrence caveat.
func (c *Classifier) DeleteCategory(category string) error {
	return c.counts.DeleteCategory(category)
}

// Classify returns the posterior probability distribution over all known
// categories for the given token set. The read spans many keys and is not
// transactional. Returns ErrNotTrained when no examples exist.
func (c *Classifier) Classify(tokens []string) (Result, error) {
	if c.opts.Binarized {
		tokens = dedupe(tokens)
	}
	return c.engine.Posterior(tokens)
}

// dedupe returns tokens with duplicates removed, preserving first-seen order.
func dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
