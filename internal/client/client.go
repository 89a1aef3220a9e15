// Package client is the typed HTTP facade the terminal frontend talks
// through. Domain errors come back as core.NoteError / core.TagError values,
// transport and server faults as ordinary wrapped errors.
package client

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/quillbook/quill/internal/core"
)

// ErrUnauthorized is returned when a mutation hits a read-only notebook.
var ErrUnauthorized = errors.New("the notebook is read-only")

// API talks to one notebook server.
type API struct {
	base string
	http *http.Client
}

func New(base string) *API {
	return &API{
		base: base,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// errKind selects which domain taxonomy a wire tag belongs to. The tag alone
// is ambiguous ("AlreadyExists" exists in both), the endpoint disambiguates.
type errKind int

const (
	noteKind errKind = iota
	tagKind
	// attachKind covers the note/tag join endpoints, where a missing tag is
	// a TagError but NoteAlreadyTagged stays in the note taxonomy.
	attachKind
)

func (k errKind) wrap(tag string) error {
	switch k {
	case tagKind:
		return core.TagError(tag)
	case attachKind:
		if tag == string(core.ErrTagDoesNotExist) {
			return core.TagError(tag)
		}
	}
	return core.NoteError(tag)
}

type errorTag struct {
	Error *string `json:"error"`
}

func (a *API) do(method, path string, query url.Values, body, out any, kind errKind) error {
	u := a.base + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encoding %s request: %w", path, err)
		}
		reader = bytes.NewReader(raw)
	}
	req, err := http.NewRequest(method, u, reader)
	if err != nil {
		return fmt.Errorf("building %s request: %w", path, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.http.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding %s response: %w", path, err)
		}
		return nil
	case http.StatusNotAcceptable:
		var tag errorTag
		if err := json.NewDecoder(resp.Body).Decode(&tag); err != nil || tag.Error == nil {
			return fmt.Errorf("%s: malformed domain error", path)
		}
		return kind.wrap(*tag.Error)
	case http.StatusUnauthorized:
		return ErrUnauthorized
	default:
		return fmt.Errorf("%s: unexpected status %d", path, resp.StatusCode)
	}
}

func (a *API) get(path string, query url.Values, out any) error {
	return a.do(http.MethodGet, path, query, nil, out, noteKind)
}

// validate runs one of the validation endpoints, which answer 200 with the
// domain tag (or null) in the body. The first return is the domain error, the
// second a transport failure.
func (a *API) validate(path string, query url.Values, kind errKind) (error, error) {
	var tag errorTag
	if err := a.get(path, query, &tag); err != nil {
		return nil, err
	}
	if tag.Error == nil {
		return nil, nil
	}
	return kind.wrap(*tag.Error), nil
}

func (a *API) Name() (string, error) {
	var name string
	err := a.get("/name", nil, &name)
	return name, err
}

func (a *API) Info() (core.Info, error) {
	var info core.Info
	err := a.get("/notebook", nil, &info)
	return info, err
}

func (a *API) CreateNote(name, content string) (int64, error) {
	var out struct {
		ID int64 `json:"id"`
	}
	err := a.do(http.MethodPost, "/note/create", nil,
		map[string]string{"name": name, "content": content}, &out, noteKind)
	return out.ID, err
}

func (a *API) ValidateNoteName(name string) (error, error) {
	return a.validate("/note/validate/name", url.Values{"name": {name}}, noteKind)
}

// LoadNoteByID returns nil without error when no such note exists.
func (a *API) LoadNoteByID(id int64) (*core.Note, error) {
	var note *core.Note
	err := a.get("/note/load/id", idQuery(id), &note)
	return note, err
}

func (a *API) LoadNoteByName(name string) (*core.Note, error) {
	var note *core.Note
	err := a.get("/note/load/name", url.Values{"name": {name}}, &note)
	return note, err
}

func (a *API) RenameNote(id int64, name string) error {
	return a.do(http.MethodPatch, "/note/update/name", nil,
		map[string]any{"id": id, "name": name}, nil, noteKind)
}

func (a *API) UpdateNoteContent(id int64, content string) error {
	return a.do(http.MethodPatch, "/note/update/content", nil,
		map[string]any{"id": id, "content": content}, nil, noteKind)
}

func (a *API) UpdateNoteLinks(id int64, links []core.Link) error {
	if links == nil {
		links = []core.Link{}
	}
	return a.do(http.MethodPatch, "/note/update/links", nil,
		map[string]any{"id": id, "links": links}, nil, noteKind)
}

func (a *API) DeleteNote(id int64) error {
	return a.do(http.MethodDelete, "/note/delete", idQuery(id), nil, nil, noteKind)
}

func (a *API) SearchNotesByName(pattern string) ([]core.NoteSummary, error) {
	var summaries []core.NoteSummary
	err := a.get("/note/search/name", url.Values{"pattern": {pattern}}, &summaries)
	return summaries, err
}

func (a *API) SearchNotesByTag(tagID int64, pattern string) ([]core.NoteSummary, error) {
	q := url.Values{"tag_id": {formatID(tagID)}, "pattern": {pattern}}
	var summaries []core.NoteSummary
	err := a.get("/note/search/tag", q, &summaries)
	return summaries, err
}

func (a *API) ListNoteTags(id int64) ([]core.Tag, error) {
	var tags []core.Tag
	err := a.get("/note/tag/list", idQuery(id), &tags)
	return tags, err
}

func (a *API) ValidateNewTag(id, tagID int64) (error, error) {
	q := url.Values{"id": {formatID(id)}, "tag_id": {formatID(tagID)}}
	return a.validate("/note/validate/tag", q, attachKind)
}

func (a *API) AddNoteTag(id, tagID int64) error {
	return a.do(http.MethodPost, "/note/tag/add", nil,
		map[string]int64{"id": id, "tag_id": tagID}, nil, attachKind)
}

func (a *API) RemoveNoteTag(id, tagID int64) error {
	q := url.Values{"id": {formatID(id)}, "tag_id": {formatID(tagID)}}
	return a.do(http.MethodDelete, "/note/tag/remove", q, nil, nil, noteKind)
}

func (a *API) CreateTag(name string) (core.Tag, error) {
	var tag core.Tag
	err := a.do(http.MethodPost, "/tag/create", nil,
		map[string]string{"name": name}, &tag, tagKind)
	return tag, err
}

func (a *API) ValidateTagName(name string) (error, error) {
	return a.validate("/tag/validate/name", url.Values{"name": {name}}, tagKind)
}

func (a *API) LoadTagByName(name string) (*core.Tag, error) {
	var tag *core.Tag
	err := a.get("/tag/load/name", url.Values{"name": {name}}, &tag)
	return tag, err
}

func (a *API) SearchTagsByName(pattern string) ([]core.Tag, error) {
	var tags []core.Tag
	err := a.get("/tag/search/name", url.Values{"pattern": {pattern}}, &tags)
	return tags, err
}

func (a *API) RenameTag(id int64, name string) error {
	return a.do(http.MethodPatch, "/tag/rename", nil,
		map[string]any{"id": id, "name": name}, nil, tagKind)
}

func (a *API) DeleteTag(id int64) error {
	return a.do(http.MethodDelete, "/tag/delete", idQuery(id), nil, nil, tagKind)
}

func idQuery(id int64) url.Values {
	return url.Values{"id": {formatID(id)}}
}

func formatID(id int64) string {
	return fmt.Sprintf("%d", id)
}
