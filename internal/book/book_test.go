package book

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCreateOpenList(t *testing.T) {
	dir := t.TempDir()

	nb, err := Create("journal", dir)
	require.NoError(t, err)
	require.NoError(t, nb.Close())

	_, err = Create("journal", dir)
	require.Error(t, err)

	nb, err = Open("journal", dir)
	require.NoError(t, err)
	require.Equal(t, "journal", nb.Name)
	require.NoError(t, nb.Close())

	_, err = Open("missing", dir)
	require.Error(t, err)

	names, err := List(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"journal"}, names)
}

func TestDelete(t *testing.T) {
	dir := t.TempDir()

	nb, err := Create("scratch", dir)
	require.NoError(t, err)
	require.NoError(t, nb.Close())

	require.NoError(t, Delete("scratch", dir))
	require.Error(t, Delete("scratch", dir))

	names, err := List(dir)
	require.NoError(t, err)
	require.Empty(t, names)
}
