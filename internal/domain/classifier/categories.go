package classifier

import (
	"fmt"

	"github.com/corey/tally/internal/ports"
)

// Categories tracks, per category, how many training examples it has seen and
// how often each token appeared in those examples. Every mutation is a
// single-key atomic increment or delete on the store; there is no multi-key
// transaction, so cross-key readers may see a torn snapshot (accepted, see
// ports.CounterStore).
type Categories struct {
	store ports.CounterStore
}

// NewCategories creates a category counter view over store.
func NewCategories(store ports.CounterStore) *Categories {
	return &Categories{store: store}
}

// RecordExample increments the category's example count, creating the
// category at 1 if absent.
func (c *Categories) RecordExample(category string) error {
	if _, err := c.store.Increment(ports.Key(ports.Categories(), category), 1); err != nil {
		return fmt.Errorf("record example %q: %w", category, err)
	}
	return nil
}

// RemoveExample decrements the category's example count and returns the
// post-decrement value. When the count drops below 1 the category's registry
// entry is deleted — the category ceases to exist. Its per-token occurrence
// entries are NOT cleaned here; callers removing a category's last example
// (untrain) also remove the occurrences they touched.
func (c *Categories) RemoveExample(category string) (int64, error) {
	n, err := c.store.Increment(ports.Key(ports.Categories(), category), -1)
	if err != nil {
		return 0, fmt.Errorf("remove example %q: %w", category, err)
	}
	if n < 1 {
		if err := c.DeleteCategory(category); err != nil {
			return n, err
		}
	}
	return n, nil
}

// ExampleCount returns the category's example count (0 if absent).
func (c *Categories) ExampleCount(category string) (int64, error) {
	n, err := c.store.Get(ports.Key(ports.Categories(), category))
	if err != nil {
		return 0, fmt.Errorf("example count %q: %w", category, err)
	}
	return n, nil
}

// TotalExamples sums example counts across all known categories.
func (c *Categories) TotalExamples() (int64, error) {
	names, err := c.Names()
	if err != nil {
		return 0, err
	}
	var total int64
	for _, name := range names {
		n, err := c.ExampleCount(name)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// HasTokenOccurrence reports whether an occurrence entry exists for
// (category, token).
func (c *Categories) HasTokenOccurrence(category, token string) (bool, error) {
	n, err := c.OccurrenceCount(category, token)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// AddTokenOccurrence increments the (category, token) occurrence count,
// creating it at 1 if absent.
func (c *Categories) AddTokenOccurrence(category, token string) error {
	if _, err := c.store.Increment(ports.Key(ports.CategoryTokens(category), token), 1); err != nil {
		return fmt.Errorf("add occurrence %q/%q: %w", category, token, err)
	}
	return nil
}

// RemoveTokenOccurrence decrements the (category, token) occurrence count.
// When the count drops below 1 the entry is deleted, not left at zero.
// Returns true iff the entry was deleted.
func (c *Categories) RemoveTokenOccurrence(category, token string) (bool, error) {
	key := ports.Key(ports.CategoryTokens(category), token)
	n, err := c.store.Increment(key, -1)
	if err != nil {
		return false, fmt.Errorf("remove occurrence %q/%q: %w", category, token, err)
	}
	if n < 1 {
		if _, err := c.store.Delete(key); err != nil {
			return false, fmt.Errorf("delete occurrence %q/%q: %w", category, token, err)
		}
		return true, nil
	}
	return false, nil
}

// OccurrenceCount returns how many times token appeared in training examples
// of category (0 if absent).
func (c *Categories) OccurrenceCount(category, token string) (int64, error) {
	n, err := c.store.Get(ports.Key(ports.CategoryTokens(category), token))
	if err != nil {
		return 0, fmt.Errorf("occurrence count %q/%q: %w", category, token, err)
	}
	return n, nil
}

// CategoryTokenTotal sums the occurrence counts of every token in category.
func (c *Categories) CategoryTokenTotal(category string) (int64, error) {
	ns := ports.CategoryTokens(category)
	tokens, err := c.store.Keys(ns)
	if err != nil {
		return 0, fmt.Errorf("category tokens %q: %w", category, err)
	}
	var total int64
	for _, token := range tokens {
		n, err := c.store.Get(ports.Key(ns, token))
		if err != nil {
			return 0, fmt.Errorf("occurrence count %q/%q: %w", category, token, err)
		}
		total += n
	}
	return total, nil
}

// OccurrenceAcrossCategories sums token's occurrence counts over every known
// category. Occurrence entries orphaned by DeleteCategory are not visited.
func (c *Categories) OccurrenceAcrossCategories(token string) (int64, error) {
	names, err := c.Names()
	if err != nil {
		return 0, err
	}
	var total int64
	for _, name := range names {
		n, err := c.OccurrenceCount(name, token)
		if err != nil {
			return 0, err
		}
		total += n
	}
	return total, nil
}

// PurgeBelowThreshold deletes token's occurrence entry from every category
// when its total occurrence count across categories is below minTotal.
// Returns true iff the token was purged — the caller should then also remove
// it from the vocabulary. At or above the threshold this is a no-op.
func (c *Categories) PurgeBelowThreshold(token string, minTotal int64) (bool, error) {
	total, err := c.OccurrenceAcrossCategories(token)
	if err != nil {
		return false, err
	}
	if total >= minTotal {
		return false, nil
	}
	names, err := c.Names()
	if err != nil {
		return false, err
	}
	for _, name := range names {
		if _, err := c.store.Delete(ports.Key(ports.CategoryTokens(name), token)); err != nil {
			return false, fmt.Errorf("purge occurrence %q/%q: %w", name, token, err)
		}
	}
	return true, nil
}

// DeleteCategory removes the category's registry entry. Its occurrence
// entries become orphaned — they stop counting toward totals, but callers
// must not rely on this call to clean them up.
func (c *Categories) DeleteCategory(category string) error {
	if _, err := c.store.Delete(ports.Key(ports.Categories(), category)); err != nil {
		return fmt.Errorf("delete category %q: %w", category, err)
	}
	return nil
}

// Names enumerates all known category identifiers. Order is unspecified.
func (c *Categories) Names() ([]string, error) {
	names, err := c.store.Keys(ports.Categories())
	if err != nil {
		return nil, fmt.Errorf("category names: %w", err)
	}
	return names, nil
}
