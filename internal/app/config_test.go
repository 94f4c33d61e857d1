package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corey/tally/internal/domain/classifier"
)

func writeConfig(t *testing.T, root, content string) {
	t.Helper()
	paths := NewPaths(root)
	require.NoError(t, paths.EnsureRoot())
	require.NoError(t, os.WriteFile(paths.Config, []byte(content), 0644))
}

func TestLoadConfig_DefaultsWhenAbsent(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.False(t, cfg.Binarized)
	assert.False(t, cfg.UniformPriors)
	assert.Equal(t, classifier.DefaultSmoothingK, cfg.SmoothingK)
	assert.Equal(t, TransformIdentity, cfg.SizeTransform)
	assert.Equal(t, DefaultPrefix, cfg.Prefix)
}

func TestLoadConfig_FileOverrides(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "binarized: true\nuniform_priors: true\nsmoothing_k: 0.5\nsize_transform: log\nprefix: mail\n")

	cfg, err := LoadConfig(root)
	require.NoError(t, err)

	assert.True(t, cfg.Binarized)
	assert.True(t, cfg.UniformPriors)
	assert.Equal(t, 0.5, cfg.SmoothingK)
	assert.Equal(t, TransformLog, cfg.SizeTransform)
	assert.Equal(t, "mail", cfg.Prefix)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "binarized: true\n")

	cfg, err := LoadConfig(root)
	require.NoError(t, err)

	assert.True(t, cfg.Binarized)
	assert.Equal(t, classifier.DefaultSmoothingK, cfg.SmoothingK)
	assert.Equal(t, DefaultPrefix, cfg.Prefix)
}

func TestLoadConfig_MalformedYAML(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "binarized: [not\n")

	_, err := LoadConfig(root)
	assert.Error(t, err)
}

func TestClassifierOptions(t *testing.T) {
	cfg := DefaultConfig()
	opts, err := cfg.ClassifierOptions()
	require.NoError(t, err)
	assert.Equal(t, classifier.SizeIdentity, opts.SizeTransform)

	cfg.SizeTransform = TransformLog
	opts, err = cfg.ClassifierOptions()
	require.NoError(t, err)
	assert.Equal(t, classifier.SizeNaturalLog, opts.SizeTransform)

	cfg.SizeTransform = "sqrt"
	_, err = cfg.ClassifierOptions()
	assert.Error(t, err, "unknown transforms are rejected, not defaulted")
}

func TestNewPaths(t *testing.T) {
	p := NewPaths("/work/project")
	assert.Equal(t, filepath.Join("/work/project", ".tally"), p.Root)
	assert.Equal(t, filepath.Join("/work/project", ".tally", "tally.db"), p.DB)
	assert.Equal(t, filepath.Join("/work/project", ".tally", "config.yml"), p.Config)
}
