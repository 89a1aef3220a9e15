package client

import (
	"fmt"
	"io"
	"net"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quillbook/quill/internal/core"
	"github.com/quillbook/quill/internal/server"
	"github.com/quillbook/quill/internal/store"
)

func newTestAPI(t *testing.T, perms core.Permissions) *API {
	t.Helper()

	s, err := store.Open(filepath.Join(t.TempDir(), "test.book"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	srv := server.New("test", s, perms, io.Discard)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go srv.Listener(ln)
	t.Cleanup(func() { srv.Shutdown() })

	return New(fmt.Sprintf("http://%s", ln.Addr()))
}

func TestNoteRoundTrip(t *testing.T) {
	api := newTestAPI(t, core.ReadWrite)

	name, err := api.Name()
	require.NoError(t, err)
	require.Equal(t, "test", name)

	id, err := api.CreateNote("alpha", "hello world")
	require.NoError(t, err)

	note, err := api.LoadNoteByID(id)
	require.NoError(t, err)
	require.NotNil(t, note)
	require.Equal(t, "alpha", note.Name)
	require.Equal(t, "hello world", note.Content)

	require.NoError(t, api.UpdateNoteContent(id, "edited"))
	note, err = api.LoadNoteByName("alpha")
	require.NoError(t, err)
	require.NotNil(t, note)
	require.Equal(t, "edited", note.Content)

	require.NoError(t, api.RenameNote(id, "beta"))
	note, err = api.LoadNoteByName("alpha")
	require.NoError(t, err)
	require.Nil(t, note)

	require.NoError(t, api.DeleteNote(id))
	note, err = api.LoadNoteByName("beta")
	require.NoError(t, err)
	require.Nil(t, note)
}

func TestDomainErrorsAreTyped(t *testing.T) {
	api := newTestAPI(t, core.ReadWrite)

	_, err := api.CreateNote("", "")
	require.Equal(t, core.ErrNoteEmptyName, err)

	_, err = api.CreateNote("dup", "")
	require.NoError(t, err)
	_, err = api.CreateNote("dup", "")
	require.Equal(t, core.ErrNoteAlreadyExists, err)

	_, err = api.CreateTag("has space")
	require.Equal(t, core.ErrTagInvalidName, err)

	derr, err := api.ValidateNoteName("dup")
	require.NoError(t, err)
	require.Equal(t, core.ErrNoteAlreadyExists, derr)

	derr, err = api.ValidateTagName("fresh")
	require.NoError(t, err)
	require.NoError(t, derr)
}

func TestTagsAndSearch(t *testing.T) {
	api := newTestAPI(t, core.ReadWrite)

	id, err := api.CreateNote("groceries", "")
	require.NoError(t, err)
	tag, err := api.CreateTag("errand")
	require.NoError(t, err)

	derr, err := api.ValidateNewTag(id, tag.ID)
	require.NoError(t, err)
	require.NoError(t, derr)

	require.NoError(t, api.AddNoteTag(id, tag.ID))
	require.Equal(t, core.ErrNoteAlreadyTagged, api.AddNoteTag(id, tag.ID))

	tags, err := api.ListNoteTags(id)
	require.NoError(t, err)
	require.Len(t, tags, 1)
	require.Equal(t, "errand", tags[0].Name)

	byTag, err := api.SearchNotesByTag(tag.ID, "")
	require.NoError(t, err)
	require.Len(t, byTag, 1)
	require.Equal(t, "groceries", byTag[0].Name)

	byName, err := api.SearchNotesByName("groc")
	require.NoError(t, err)
	require.Len(t, byName, 1)

	require.NoError(t, api.RemoveNoteTag(id, tag.ID))
	byTag, err = api.SearchNotesByTag(tag.ID, "")
	require.NoError(t, err)
	require.Empty(t, byTag)

	found, err := api.LoadTagByName("errand")
	require.NoError(t, err)
	require.NotNil(t, found)
	require.Equal(t, tag.ID, found.ID)

	require.NoError(t, api.RenameTag(tag.ID, "chore"))
	all, err := api.SearchTagsByName("")
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, "chore", all[0].Name)

	require.NoError(t, api.DeleteTag(tag.ID))
	all, err = api.SearchTagsByName("")
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestAttachMissingTagIsTagError(t *testing.T) {
	api := newTestAPI(t, core.ReadWrite)

	id, err := api.CreateNote("alpha", "")
	require.NoError(t, err)

	require.Equal(t, core.ErrTagDoesNotExist, api.AddNoteTag(id, 999))

	derr, err := api.ValidateNewTag(id, 999)
	require.NoError(t, err)
	require.Equal(t, core.ErrTagDoesNotExist, derr)

	tag, err := api.CreateTag("errand")
	require.NoError(t, err)
	require.NoError(t, api.AddNoteTag(id, tag.ID))

	derr, err = api.ValidateNewTag(id, tag.ID)
	require.NoError(t, err)
	require.Equal(t, core.ErrNoteAlreadyTagged, derr)
}

func TestLinksRoundTrip(t *testing.T) {
	api := newTestAPI(t, core.ReadWrite)

	id, err := api.CreateNote("hub", "")
	require.NoError(t, err)

	links := []core.Link{{From: id, To: "a"}, {From: id, To: "b"}}
	require.NoError(t, api.UpdateNoteLinks(id, links))
	require.NoError(t, api.UpdateNoteLinks(id, []core.Link{{From: id, To: "b"}}))
}

func TestReadOnlySurfacesUnauthorized(t *testing.T) {
	api := newTestAPI(t, core.ReadOnly)

	info, err := api.Info()
	require.NoError(t, err)
	require.Equal(t, core.ReadOnly, info.Permissions)

	_, err = api.CreateNote("x", "")
	require.ErrorIs(t, err, ErrUnauthorized)
	require.ErrorIs(t, api.DeleteNote(1), ErrUnauthorized)
}
