// Package app wires adapters and domain logic together: it resolves
// configuration, opens the counter store, and exposes the text-level
// operations the CLI works with (train, classify, corpus ingestion, watch).
package app

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	bboltstore "github.com/corey/tally/internal/adapters/bbolt"
	"github.com/corey/tally/internal/domain/classifier"
	"github.com/corey/tally/internal/ports"
)

// App owns a classifier and its backing store for one project directory.
type App struct {
	cfg   Config
	store ports.CounterStore
	clf   *classifier.Classifier
	close func() error

	// Per-file token snapshots for watch mode, so a changed file can be
	// untrained before retraining. Watch-local: rebuilt on every start.
	mu        sync.Mutex
	snapshots map[string]fileSnapshot
}

type fileSnapshot struct {
	category string
	tokens   []string
}

// Open loads the project config and opens the persistent store under
// projectRoot/.tally/.
func Open(projectRoot string) (*App, error) {
	cfg, err := LoadConfig(projectRoot)
	if err != nil {
		return nil, err
	}
	paths := NewPaths(projectRoot)
	dbPath := cfg.DBPath
	if dbPath == "" {
		if err := paths.EnsureRoot(); err != nil {
			return nil, fmt.Errorf("create %s: %w", paths.Root, err)
		}
		dbPath = paths.DB
	}
	store, err := bboltstore.NewStore(dbPath, cfg.Prefix)
	if err != nil {
		return nil, err
	}
	a, err := NewWithStore(cfg, store)
	if err != nil {
		store.Close()
		return nil, err
	}
	a.close = store.Close
	return a, nil
}

// NewWithStore builds an App over an already-open store. The caller keeps
// ownership of the store's lifecycle.
func NewWithStore(cfg Config, store ports.CounterStore) (*App, error) {
	opts, err := cfg.ClassifierOptions()
	if err != nil {
		return nil, err
	}
	return &App{
		cfg:       cfg,
		store:     store,
		clf:       classifier.New(store, opts),
		snapshots: make(map[string]fileSnapshot),
	}, nil
}

// Close releases the backing store, if this App opened it.
func (a *App) Close() error {
	if a.close == nil {
		return nil
	}
	return a.close()
}

// Config returns the effective configuration.
func (a *App) Config() Config { return a.cfg }

// Classifier exposes the underlying classifier.
func (a *App) Classifier() *classifier.Classifier { return a.clf }

// TrainText tokenizes text and trains it as one example of category.
func (a *App) TrainText(text, category string) error {
	return a.clf.Train(Tokenize(text), category)
}

// UntrainText tokenizes text and reverses one example of category.
func (a *App) UntrainText(text, category string) error {
	return a.clf.Untrain(Tokenize(text), category)
}

// ClassifyText tokenizes text and returns the posterior distribution.
func (a *App) ClassifyText(text string) (classifier.Result, error) {
	return a.clf.Classify(Tokenize(text))
}

// Ingest walks a labeled corpus tree (corpusDir/<category>/<files...>) and
// trains each file as one example of its category directory. Files directly
// under corpusDir have no category and are skipped. Returns the number of
// examples trained.
func (a *App) Ingest(corpusDir string) (int, error) {
	trained := 0
	err := filepath.WalkDir(corpusDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if shouldSkipDir(d.Name()) && path != corpusDir {
				return filepath.SkipDir
			}
			return nil
		}
		category, ok := categoryFor(corpusDir, path)
		if !ok {
			return nil
		}
		tokens, err := readTokens(path)
		if err != nil {
			return err
		}
		if len(tokens) == 0 {
			return nil
		}
		if err := a.clf.Train(tokens, category); err != nil {
			return err
		}
		a.rememberSnapshot(path, category, tokens)
		trained++
		return nil
	})
	if err != nil {
		return trained, fmt.Errorf("ingest %s: %w", corpusDir, err)
	}
	return trained, nil
}

// Watch ingests corpusDir and then retrains files as they change: a changed
// file is untrained from its previous snapshot and trained from its new
// content; a deleted file is untrained. Watch returns after wiring the
// watcher — the callback runs until w.Stop.
func (a *App) Watch(corpusDir string, w ports.Watcher) (int, error) {
	abs, err := filepath.Abs(corpusDir)
	if err != nil {
		return 0, err
	}
	trained, err := a.Ingest(abs)
	if err != nil {
		return trained, err
	}
	err = w.Watch(abs, func(path string) {
		// Errors here have no caller to bubble to; the next CLI
		// interaction surfaces inconsistent state via stats.
		_ = a.retrainFile(abs, path)
	})
	return trained, err
}

// retrainFile untrains path's previous snapshot (if any) and retrains from
// current content. Missing files are treated as deletions.
func (a *App) retrainFile(corpusDir, path string) error {
	a.mu.Lock()
	prev, hadPrev := a.snapshots[path]
	a.mu.Unlock()

	if hadPrev {
		if err := a.clf.Untrain(prev.tokens, prev.category); err != nil {
			return err
		}
		a.forgetSnapshot(path)
	}

	category, ok := categoryFor(corpusDir, path)
	if !ok {
		return nil
	}
	tokens, err := readTokens(path)
	if os.IsNotExist(err) {
		return nil // deletion: untraining above was the whole job
	}
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		return nil
	}
	if err := a.clf.Train(tokens, category); err != nil {
		return err
	}
	a.rememberSnapshot(path, category, tokens)
	return nil
}

func (a *App) rememberSnapshot(path, category string, tokens []string) {
	a.mu.Lock()
	a.snapshots[path] = fileSnapshot{category: category, tokens: tokens}
	a.mu.Unlock()
}

func (a *App) forgetSnapshot(path string) {
	a.mu.Lock()
	delete(a.snapshots, path)
	a.mu.Unlock()
}

// categoryFor derives the category from the first path component below the
// corpus root. Files directly under the root carry no category.
func categoryFor(corpusDir, path string) (string, bool) {
	rel, err := filepath.Rel(corpusDir, path)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return "", false
	}
	parts := strings.Split(rel, string(filepath.Separator))
	if len(parts) < 2 {
		return "", false
	}
	return parts[0], true
}

func readTokens(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Tokenize(string(data)), nil
}

func shouldSkipDir(name string) bool {
	return strings.HasPrefix(name, ".")
}

// CategoryStat is one row of Stats.
type CategoryStat struct {
	Name     string
	Examples int64
	Tokens   int64 // total token occurrences in this category
}

// Stats summarizes the classifier's stored state.
type Stats struct {
	VocabularyTokens int
	TotalExamples    int64
	Categories       []CategoryStat
}

// Stats reads a summary of the store. Like classification, this is a
// non-transactional multi-key read.
func (a *App) Stats() (Stats, error) {
	var s Stats
	vocabCount, err := a.clf.Vocabulary().Count()
	if err != nil {
		return s, err
	}
	s.VocabularyTokens = vocabCount

	counts := a.clf.Counters()
	names, err := counts.Names()
	if err != nil {
		return s, err
	}
	sort.Strings(names)
	for _, name := range names {
		examples, err := counts.ExampleCount(name)
		if err != nil {
			return s, err
		}
		tokens, err := counts.CategoryTokenTotal(name)
		if err != nil {
			return s, err
		}
		s.TotalExamples += examples
		s.Categories = append(s.Categories, CategoryStat{
			Name:     name,
			Examples: examples,
			Tokens:   tokens,
		})
	}
	return s, nil
}
