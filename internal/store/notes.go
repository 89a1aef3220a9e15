package store

import (
	"errors"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/quillbook/quill/internal/core"
)

// CreateNote validates the name and inserts the note, returning its id.
func (s *Store) CreateNote(name, content string) (int64, error) {
	if derr, err := s.ValidateNoteName(name); err != nil {
		return 0, err
	} else if derr != nil {
		return 0, derr
	}

	log.Printf("insert note %q in the notebook", name)
	note := Note{Name: name, Content: content}
	if err := s.db.Create(&note).Error; err != nil {
		return 0, fmt.Errorf("insert note: %w", err)
	}
	return note.ID, nil
}

// ValidateNoteName is the read-only validation the client uses for its live
// valid/invalid indicator. A nil, nil return means the name is acceptable.
func (s *Store) ValidateNoteName(name string) (error, error) {
	if name == "" {
		return core.ErrNoteEmptyName, nil
	}
	exists, err := s.NoteNameExists(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return core.ErrNoteAlreadyExists, nil
	}
	return nil, nil
}

func (s *Store) NoteNameExists(name string) (bool, error) {
	var count int64
	if err := s.db.Model(&Note{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check note name: %w", err)
	}
	return count > 0, nil
}

// LoadNoteByID returns nil when no such note exists.
func (s *Store) LoadNoteByID(id int64) (*core.Note, error) {
	var note Note
	err := s.db.First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load note %d: %w", id, err)
	}
	return &core.Note{ID: note.ID, Name: note.Name, Content: note.Content}, nil
}

func (s *Store) LoadNoteByName(name string) (*core.Note, error) {
	var note Note
	err := s.db.Where("name = ?", name).First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load note %q: %w", name, err)
	}
	return &core.Note{ID: note.ID, Name: note.Name, Content: note.Content}, nil
}

// RenameNote re-validates the new name before the update.
func (s *Store) RenameNote(id int64, name string) error {
	if derr, err := s.ValidateNoteName(name); err != nil {
		return err
	} else if derr != nil {
		return derr
	}

	log.Printf("rename note %d to %q", id, name)
	if err := s.db.Model(&Note{}).Where("id = ?", id).Update("name", name).Error; err != nil {
		return fmt.Errorf("rename note: %w", err)
	}
	return nil
}

func (s *Store) UpdateNoteContent(id int64, content string) error {
	if err := s.db.Model(&Note{}).Where("id = ?", id).Update("content", content).Error; err != nil {
		return fmt.Errorf("update note content: %w", err)
	}
	return nil
}

// DeleteNote removes the note; join rows and outgoing links cascade.
func (s *Store) DeleteNote(id int64) error {
	log.Printf("delete note %d", id)
	if err := s.db.Delete(&Note{}, id).Error; err != nil {
		return fmt.Errorf("delete note: %w", err)
	}
	return nil
}

// ListLinks returns the note's outgoing links.
func (s *Store) ListLinks(id int64) ([]core.Link, error) {
	var rows []Link
	if err := s.db.Where("from_id = ?", id).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list links of note %d: %w", id, err)
	}
	links := make([]core.Link, 0, len(rows))
	for _, row := range rows {
		links = append(links, core.Link{From: id, To: row.ToName})
	}
	return links, nil
}

// UpdateLinks replaces the note's outgoing link set with newLinks by symmetric
// difference: rows only in the old set are deleted, rows only in the new set
// are inserted. Both sides fan out concurrently; the correctness of the
// operation rests only on the resulting set, so ordering is immaterial and the
// operation is idempotent.
func (s *Store) UpdateLinks(id int64, newLinks []core.Link) error {
	current, err := s.ListLinks(id)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for _, link := range current {
		if containsLink(newLinks, link) {
			continue
		}
		link := link
		g.Go(func() error {
			return s.db.Where("from_id = ? AND to_name = ?", id, link.To).Delete(&Link{}).Error
		})
	}
	for _, link := range newLinks {
		if containsLink(current, link) {
			continue
		}
		row := Link{FromID: id, ToName: link.To}
		g.Go(func() error {
			return s.db.Create(&row).Error
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("reconcile links of note %d: %w", id, err)
	}
	return nil
}

func containsLink(links []core.Link, target core.Link) bool {
	for _, l := range links {
		if l == target {
			return true
		}
	}
	return false
}

// ListNoteTags returns the tags attached to a note via the join table.
func (s *Store) ListNoteTags(id int64) ([]core.Tag, error) {
	var rows []Tag
	err := s.db.
		Joins("INNER JOIN tag_join ON tag_join.tag_id = tags.id").
		Where("tag_join.note_id = ?", id).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list tags of note %d: %w", id, err)
	}
	tags := make([]core.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, core.Tag{ID: row.ID, Name: row.Name, Color: row.Color})
	}
	return tags, nil
}

func (s *Store) NoteHasTag(id, tagID int64) (bool, error) {
	var count int64
	err := s.db.Model(&TagJoin{}).Where("note_id = ? AND tag_id = ?", id, tagID).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check note tag: %w", err)
	}
	return count > 0, nil
}

// ValidateNewTag checks that the tag exists and is not yet attached.
func (s *Store) ValidateNewTag(id, tagID int64) (error, error) {
	exists, err := s.TagIDExists(tagID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return core.ErrTagDoesNotExist, nil
	}
	tagged, err := s.NoteHasTag(id, tagID)
	if err != nil {
		return nil, err
	}
	if tagged {
		return core.ErrNoteAlreadyTagged, nil
	}
	return nil, nil
}

// AttachTag inserts the join row after validation.
func (s *Store) AttachTag(id, tagID int64) error {
	if derr, err := s.ValidateNewTag(id, tagID); err != nil {
		return err
	} else if derr != nil {
		return derr
	}

	log.Printf("attach tag %d to note %d", tagID, id)
	if err := s.db.Create(&TagJoin{NoteID: id, TagID: tagID}).Error; err != nil {
		return fmt.Errorf("attach tag: %w", err)
	}
	return nil
}

// DetachTag removes the join row if present; absent rows are a no-op.
func (s *Store) DetachTag(id, tagID int64) error {
	if err := s.db.Where("note_id = ? AND tag_id = ?", id, tagID).Delete(&TagJoin{}).Error; err != nil {
		return fmt.Errorf("detach tag: %w", err)
	}
	return nil
}

// SearchNotesByName matches names case-insensitively by substring and pairs
// each hit with its current tag list. The per-result tag query is deliberate
// at notebook scale.
func (s *Store) SearchNotesByName(pattern string) ([]core.NoteSummary, error) {
	var rows []Note
	err := s.db.
		Where("name LIKE ? ESCAPE '\\'", likePattern(pattern)).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("search notes: %w", err)
	}
	return s.summarize(rows)
}

// SearchNotesByTag lists the notes carrying the tag, optionally filtered by a
// name pattern, ordered by name.
func (s *Store) SearchNotesByTag(tagID int64, pattern string) ([]core.NoteSummary, error) {
	var rows []Note
	err := s.db.
		Joins("INNER JOIN tag_join ON tag_join.note_id = notes.id").
		Where("tag_join.tag_id = ?", tagID).
		Where("notes.name LIKE ? ESCAPE '\\'", likePattern(pattern)).
		Order("notes.name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("search notes by tag: %w", err)
	}
	return s.summarize(rows)
}

func (s *Store) summarize(rows []Note) ([]core.NoteSummary, error) {
	summaries := make([]core.NoteSummary, 0, len(rows))
	for _, row := range rows {
		tags, err := s.ListNoteTags(row.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, core.NoteSummary{ID: row.ID, Name: row.Name, Tags: tags})
	}
	return summaries, nil
}
