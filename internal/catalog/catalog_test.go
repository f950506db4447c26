package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xtding233/skyblock-rng/internal/dropsim"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func TestLoadDefault(t *testing.T) {
	cat, err := NewLoader("").Load()
	require.NoError(t, err)
	require.Len(t, cat.Drops, 7)
	assert.Equal(t, "1", cat.Version)

	chimera := cat.Drops[0]
	assert.Equal(t, "chimera", chimera.ID)
	assert.Equal(t, 1.0, chimera.BaseChance)
	assert.True(t, chimera.Looting)
	assert.False(t, chimera.Meter)

	p, err := cat.Profile("warden_heart")
	require.NoError(t, err)
	assert.Equal(t, 0.0138, p.BaseChance)
	assert.True(t, p.Meter)
	assert.False(t, p.Looting)
}

func TestLoadMissingOverrideFallsBackToDefault(t *testing.T) {
	cat, err := NewLoader(filepath.Join(t.TempDir(), "nope.yaml")).Load()
	require.NoError(t, err)
	assert.Len(t, cat.Drops, 7)
}

func TestLoadMergesOverrideByID(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drops.yaml")
	writeFile(t, path, `
version: "2"
drops:
  - id: chimera
    chance: 2.5
  - id: shard_of_the_shredded
    name: Shard of the Shredded
    chance: 0.0243
    meter: true
`)

	cat, err := NewLoader(path).Load()
	require.NoError(t, err)
	assert.Equal(t, "2", cat.Version)
	require.Len(t, cat.Drops, 8)

	chimera, err := cat.Profile("chimera")
	require.NoError(t, err)
	assert.Equal(t, 2.5, chimera.BaseChance)
	assert.Equal(t, "Chimera", chimera.Name, "unset fields keep the default")
	assert.True(t, chimera.Looting)

	last := cat.Drops[7]
	assert.Equal(t, "shard_of_the_shredded", last.ID)
	assert.True(t, last.Meter)
}

func TestLoadRejectsInvalidOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drops.yaml")
	writeFile(t, path, `
drops:
  - id: chimera
    chance: 120
`)
	_, err := NewLoader(path).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "drops[0].chance must be in (0,100]")

	writeFile(t, path, "drops: [")
	_, err = NewLoader(path).Load()
	assert.Error(t, err)
}

func TestLoaderCacheAndInvalidate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drops.yaml")
	writeFile(t, path, "drops:\n  - id: chimera\n    chance: 3\n")

	l := NewLoader(path)
	cat, err := l.Load()
	require.NoError(t, err)
	p, _ := cat.Profile("chimera")
	assert.Equal(t, 3.0, p.BaseChance)

	writeFile(t, path, "drops:\n  - id: chimera\n    chance: 4\n")
	cat, _ = l.Load()
	p, _ = cat.Profile("chimera")
	assert.Equal(t, 3.0, p.BaseChance, "served from cache")

	l.Invalidate()
	cat, err = l.Load()
	require.NoError(t, err)
	p, _ = cat.Profile("chimera")
	assert.Equal(t, 4.0, p.BaseChance)
}

func TestValidateRawCollectsAllErrors(t *testing.T) {
	zero := 0.0
	ok := 1.0
	err := ValidateRaw(RawCatalog{Drops: []RawDrop{
		{ID: "a", Name: "A", Chance: &ok},
		{ID: "a", Name: "", Chance: &zero},
		{Name: "B"},
	}})
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `drops[1].id "a" is duplicated`)
	assert.Contains(t, msg, "drops[1].name is required")
	assert.Contains(t, msg, "drops[1].chance must be in (0,100]")
	assert.Contains(t, msg, "drops[2].id is required")
	assert.Contains(t, msg, "drops[2].chance is required")

	assert.Error(t, ValidateRaw(RawCatalog{}))
}

func TestProfileUnknown(t *testing.T) {
	cat, err := NewLoader("").Load()
	require.NoError(t, err)
	_, err = cat.Profile("hyperion")
	assert.ErrorIs(t, err, ErrUnknownDrop)
}

func TestCustom(t *testing.T) {
	p, err := Custom(0.5)
	require.NoError(t, err)
	assert.Equal(t, CustomID, p.ID)
	assert.True(t, p.Looting)
	assert.False(t, p.Meter)

	_, err = Custom(0)
	assert.ErrorIs(t, err, dropsim.ErrInvalidChance)
}

func TestFileWatcherReportsChange(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drops.yaml")
	writeFile(t, path, "drops: []\n")

	changed := make(chan string, 4)
	w := NewFileWatcher([]string{path}, 10*time.Millisecond, func(p string) { changed <- p })
	w.Start()
	defer w.Stop()

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))

	select {
	case p := <-changed:
		assert.Equal(t, path, p)
	case <-time.After(2 * time.Second):
		t.Fatal("no change reported")
	}

	w.Stop()
	w.Stop()
}
