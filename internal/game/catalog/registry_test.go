package catalog_test

import (
	"testing"

	"github.com/ironvale/forge/internal/game/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := catalog.NewRegistry()
	tmpl := validTemplate()
	require.NoError(t, r.Register(tmpl))

	got, ok := r.Template(tmpl.ID)
	require.True(t, ok)
	assert.Same(t, tmpl, got)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_LookupMissing(t *testing.T) {
	r := catalog.NewRegistry()
	_, ok := r.Template("nope")
	assert.False(t, ok)
}

func TestRegistry_RejectsDuplicateID(t *testing.T) {
	r := catalog.NewRegistry()
	require.NoError(t, r.Register(validTemplate()))
	err := r.Register(validTemplate())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_All_SortedByID(t *testing.T) {
	r := catalog.NewRegistry()
	for _, id := range []string{"zephyr", "aegis", "mjolnir"} {
		tmpl := validTemplate()
		tmpl.ID = id
		require.NoError(t, r.Register(tmpl))
	}

	all := r.All()
	require.Len(t, all, 3)
	assert.Equal(t, "aegis", all[0].ID)
	assert.Equal(t, "mjolnir", all[1].ID)
	assert.Equal(t, "zephyr", all[2].ID)
}

func TestRegistry_RegisterAll_StopsAtDuplicate(t *testing.T) {
	r := catalog.NewRegistry()
	a := validTemplate()
	b := validTemplate()
	b.ID = "ws_other"
	dup := validTemplate()

	err := r.RegisterAll([]*catalog.Template{a, b, dup})
	require.Error(t, err)
	assert.Equal(t, 2, r.Len())
}
