package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/tally/internal/adapters/memory"
)

func newTestCategories(t *testing.T) *Categories {
	t.Helper()
	return NewCategories(memory.NewStore())
}

func TestCategories_RecordAndCountExamples(t *testing.T) {
	c := newTestCategories(t)

	require.NoError(t, c.RecordExample("spam"))
	require.NoError(t, c.RecordExample("spam"))
	require.NoError(t, c.RecordExample("ham"))

	n, err := c.ExampleCount("spam")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = c.ExampleCount("missing")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	total, err := c.TotalExamples()
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestCategories_RemoveExampleDecrements(t *testing.T) {
	c := newTestCategories(t)
	require.NoError(t, c.RecordExample("spam"))
	require.NoError(t, c.RecordExample("spam"))

	n, err := c.RemoveExample("spam")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	names, err := c.Names()
	require.NoError(t, err)
	assert.Contains(t, names, "spam")
}

func TestCategories_RemoveLastExampleDeletesCategory(t *testing.T) {
	c := newTestCategories(t)
	require.NoError(t, c.RecordExample("spam"))

	n, err := c.RemoveExample("spam")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	names, err := c.Names()
	require.NoError(t, err)
	assert.NotContains(t, names, "spam", "category must vanish, not linger at 0")
}

func TestCategories_RemoveExampleOfAbsentCategoryLeavesNoResidue(t *testing.T) {
	c := newTestCategories(t)

	n, err := c.RemoveExample("ghost")
	require.NoError(t, err)
	assert.Less(t, n, int64(1))

	names, err := c.Names()
	require.NoError(t, err)
	assert.Empty(t, names)
}

func TestCategories_TokenOccurrenceLifecycle(t *testing.T) {
	c := newTestCategories(t)

	has, err := c.HasTokenOccurrence("spam", "cheap")
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, c.AddTokenOccurrence("spam", "cheap"))
	require.NoError(t, c.AddTokenOccurrence("spam", "cheap"))

	has, err = c.HasTokenOccurrence("spam", "cheap")
	require.NoError(t, err)
	assert.True(t, has)

	deleted, err := c.RemoveTokenOccurrence("spam", "cheap")
	require.NoError(t, err)
	assert.False(t, deleted)

	deleted, err = c.RemoveTokenOccurrence("spam", "cheap")
	require.NoError(t, err)
	assert.True(t, deleted, "count dropped below 1 — entry must be deleted")

	has, err = c.HasTokenOccurrence("spam", "cheap")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestCategories_CategoryTokenTotal(t *testing.T) {
	c := newTestCategories(t)
	require.NoError(t, c.AddTokenOccurrence("spam", "cheap"))
	require.NoError(t, c.AddTokenOccurrence("spam", "cheap"))
	require.NoError(t, c.AddTokenOccurrence("spam", "meds"))
	require.NoError(t, c.AddTokenOccurrence("ham", "hello"))

	total, err := c.CategoryTokenTotal("spam")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)

	total, err = c.CategoryTokenTotal("missing")
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)
}

func TestCategories_OccurrenceAcrossCategories(t *testing.T) {
	c := newTestCategories(t)
	require.NoError(t, c.RecordExample("spam"))
	require.NoError(t, c.RecordExample("ham"))
	require.NoError(t, c.AddTokenOccurrence("spam", "cheap"))
	require.NoError(t, c.AddTokenOccurrence("spam", "cheap"))
	require.NoError(t, c.AddTokenOccurrence("ham", "cheap"))

	total, err := c.OccurrenceAcrossCategories("cheap")
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestCategories_OrphanedOccurrencesAreInvisible(t *testing.T) {
	c := newTestCategories(t)
	require.NoError(t, c.RecordExample("spam"))
	require.NoError(t, c.AddTokenOccurrence("spam", "cheap"))

	// DeleteCategory removes only the registry entry; the occurrence entry
	// is orphaned and must stop counting toward totals.
	require.NoError(t, c.DeleteCategory("spam"))

	total, err := c.OccurrenceAcrossCategories("cheap")
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	n, err := c.OccurrenceCount("spam", "cheap")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n, "orphan entry still physically present")
}

func TestCategories_PurgeBelowThreshold(t *testing.T) {
	c := newTestCategories(t)
	require.NoError(t, c.RecordExample("spam"))
	require.NoError(t, c.RecordExample("ham"))
	require.NoError(t, c.AddTokenOccurrence("spam", "rare"))
	require.NoError(t, c.AddTokenOccurrence("spam", "common"))
	require.NoError(t, c.AddTokenOccurrence("spam", "common"))
	require.NoError(t, c.AddTokenOccurrence("ham", "common"))

	purged, err := c.PurgeBelowThreshold("common", 2)
	require.NoError(t, err)
	assert.False(t, purged, "token at/above threshold is a no-op")

	n, err := c.OccurrenceCount("spam", "common")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	purged, err = c.PurgeBelowThreshold("rare", 2)
	require.NoError(t, err)
	assert.True(t, purged)

	has, err := c.HasTokenOccurrence("spam", "rare")
	require.NoError(t, err)
	assert.False(t, has, "purged token removed from every category")
}

func TestCategories_DeleteAbsentCategoryIsNoOp(t *testing.T) {
	c := newTestCategories(t)
	require.NoError(t, c.DeleteCategory("ghost"))
}

func TestCategories_NamesEnumeration(t *testing.T) {
	c := newTestCategories(t)
	require.NoError(t, c.RecordExample("spam"))
	require.NoError(t, c.RecordExample("ham"))

	names, err := c.Names()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"spam", "ham"}, names)
}
