// Package ports defines the interfaces (contracts) that adapters must implement.
// These are the boundaries of the hexagonal architecture. Domain logic depends
// only on these interfaces, never on concrete implementations.
package ports

// NamespaceKind identifies one of the three counter namespaces a classifier
// uses: the global token vocabulary, the category registry, and the per-category
// token occurrence counters.
type NamespaceKind int

const (
	// KindVocabulary holds one counter per distinct token ever observed.
	KindVocabulary NamespaceKind = iota
	// KindCategories holds one example counter per known category.
	KindCategories
	// KindCategoryTokens holds one counter per token within a single
	// category; Namespace.Category selects which one.
	KindCategoryTokens
)

// Namespace selects a counter keyspace. Category is set only for
// KindCategoryTokens and must be empty otherwise.
type Namespace struct {
	Kind     NamespaceKind
	Category string
}

// Vocabulary returns the global token vocabulary namespace.
func Vocabulary() Namespace { return Namespace{Kind: KindVocabulary} }

// Categories returns the category registry namespace.
func Categories() Namespace { return Namespace{Kind: KindCategories} }

// CategoryTokens returns the occurrence namespace for one category.
func CategoryTokens(category string) Namespace {
	return Namespace{Kind: KindCategoryTokens, Category: category}
}

// CounterKey addresses a single counter: a member (token or category id)
// within a namespace. Adapters map this schema to concrete storage keys;
// domain code never concatenates key strings itself.
type CounterKey struct {
	Namespace Namespace
	Member    string
}

// Key builds a CounterKey for member within ns.
func Key(ns Namespace, member string) CounterKey {
	return CounterKey{Namespace: ns, Member: member}
}

// CounterStore persists named int64 counters grouped into namespaces.
// Implementations are shared across all classifier instances opened with the
// same prefix; no caller may cache counts in-process.
//
// Consistency contract: Increment is atomic per key, so concurrent trainers
// never lose updates. There is no multi-key transaction — readers spanning
// several keys may observe a torn snapshot while a writer is active.
type CounterStore interface {
	// Increment adjusts the counter by delta (which may be negative),
	// creating it at delta if absent, and returns the new value.
	Increment(key CounterKey, delta int64) (int64, error)

	// Get returns the counter value. A missing key reads as 0.
	Get(key CounterKey) (int64, error)

	// Delete removes the counter entirely. Returns true iff a value was
	// present and removed. Deleting an absent key is not an error.
	Delete(key CounterKey) (bool, error)

	// Keys enumerates the members of a namespace. Order is unspecified.
	Keys(ns Namespace) ([]string, error)

	// Len returns the number of members in a namespace without
	// materializing them.
	Len(ns Namespace) (int, error)
}
