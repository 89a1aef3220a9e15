package store

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"unicode"

	"gorm.io/gorm"

	"github.com/quillbook/quill/internal/core"
)

// CreateTag validates the name, assigns a bright random color and inserts.
func (s *Store) CreateTag(name string) (*core.Tag, error) {
	if derr, err := s.ValidateTagName(name); err != nil {
		return nil, err
	} else if derr != nil {
		return nil, derr
	}

	log.Printf("insert tag %q in the notebook", name)
	tag := Tag{Name: name, Color: randColor()}
	if err := s.db.Create(&tag).Error; err != nil {
		return nil, fmt.Errorf("insert tag: %w", err)
	}
	return &core.Tag{ID: tag.ID, Name: tag.Name, Color: tag.Color}, nil
}

// ValidateTagName rejects empty names, names with whitespace and duplicates.
func (s *Store) ValidateTagName(name string) (error, error) {
	if name == "" {
		return core.ErrTagEmptyName, nil
	}
	if strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		return core.ErrTagInvalidName, nil
	}
	exists, err := s.TagNameExists(name)
	if err != nil {
		return nil, err
	}
	if exists {
		return core.ErrTagAlreadyExists, nil
	}
	return nil, nil
}

func (s *Store) TagNameExists(name string) (bool, error) {
	var count int64
	if err := s.db.Model(&Tag{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check tag name: %w", err)
	}
	return count > 0, nil
}

func (s *Store) TagIDExists(id int64) (bool, error) {
	var count int64
	if err := s.db.Model(&Tag{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check tag id: %w", err)
	}
	return count > 0, nil
}

func (s *Store) LoadTagByName(name string) (*core.Tag, error) {
	var tag Tag
	err := s.db.Where("name = ?", name).First(&tag).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load tag %q: %w", name, err)
	}
	return &core.Tag{ID: tag.ID, Name: tag.Name, Color: tag.Color}, nil
}

// SearchTagsByName matches case-insensitively by substring, newest tags first.
func (s *Store) SearchTagsByName(pattern string) ([]core.Tag, error) {
	var rows []Tag
	err := s.db.
		Where("name LIKE ? ESCAPE '\\'", likePattern(pattern)).
		Order("id DESC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("search tags: %w", err)
	}
	tags := make([]core.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, core.Tag{ID: row.ID, Name: row.Name, Color: row.Color})
	}
	return tags, nil
}

// RenameTag re-validates the new name before the update.
func (s *Store) RenameTag(id int64, name string) error {
	if derr, err := s.ValidateTagName(name); err != nil {
		return err
	} else if derr != nil {
		return derr
	}

	log.Printf("rename tag %d to %q", id, name)
	if err := s.db.Model(&Tag{}).Where("id = ?", id).Update("name", name).Error; err != nil {
		return fmt.Errorf("rename tag: %w", err)
	}
	return nil
}

// DeleteTag removes the tag; its join rows cascade.
func (s *Store) DeleteTag(id int64) error {
	log.Printf("delete tag %d", id)
	if err := s.db.Delete(&Tag{}, id).Error; err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}
