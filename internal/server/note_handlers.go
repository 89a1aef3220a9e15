package server

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/quillbook/quill/internal/core"
)

type createNoteParam struct {
	Name    string `json:"name"`
	Content string `json:"content"`
}

type renameParam struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type updateContentParam struct {
	ID      int64  `json:"id"`
	Content string `json:"content"`
}

type updateLinksParam struct {
	ID    int64       `json:"id"`
	Links []core.Link `json:"links"`
}

type noteTagParam struct {
	ID    int64 `json:"id"`
	TagID int64 `json:"tag_id"`
}

func queryID(c *fiber.Ctx, key string) (int64, error) {
	return strconv.ParseInt(c.Query(key), 10, 64)
}

func (s *Server) createNote(c *fiber.Ctx) error {
	var p createNoteParam
	if err := c.BodyParser(&p); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	id, err := s.store.CreateNote(p.Name, p.Content)
	if err != nil {
		return respondOp(c, err)
	}
	return c.JSON(fiber.Map{"id": id})
}

func (s *Server) validateNoteName(c *fiber.Ctx) error {
	derr, err := s.store.ValidateNoteName(c.Query("name"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(tagOf(derr))
}

func (s *Server) loadNoteByID(c *fiber.Ctx) error {
	id, err := queryID(c, "id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	note, err := s.store.LoadNoteByID(id)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(note)
}

func (s *Server) loadNoteByName(c *fiber.Ctx) error {
	note, err := s.store.LoadNoteByName(c.Query("name"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(note)
}

func (s *Server) renameNote(c *fiber.Ctx) error {
	var p renameParam
	if err := c.BodyParser(&p); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return respondOp(c, s.store.RenameNote(p.ID, p.Name))
}

func (s *Server) updateNoteContent(c *fiber.Ctx) error {
	var p updateContentParam
	if err := c.BodyParser(&p); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return respondOp(c, s.store.UpdateNoteContent(p.ID, p.Content))
}

func (s *Server) updateNoteLinks(c *fiber.Ctx) error {
	var p updateLinksParam
	if err := c.BodyParser(&p); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return respondOp(c, s.store.UpdateLinks(p.ID, p.Links))
}

func (s *Server) deleteNote(c *fiber.Ctx) error {
	id, err := queryID(c, "id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return respondOp(c, s.store.DeleteNote(id))
}

func (s *Server) searchNotesByName(c *fiber.Ctx) error {
	summaries, err := s.store.SearchNotesByName(c.Query("pattern"))
	if err != nil {
		return internalError(c, err)
	}
	if summaries == nil {
		summaries = []core.NoteSummary{}
	}
	return c.JSON(summaries)
}

func (s *Server) searchNotesByTag(c *fiber.Ctx) error {
	tagID, err := queryID(c, "tag_id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	summaries, err := s.store.SearchNotesByTag(tagID, c.Query("pattern"))
	if err != nil {
		return internalError(c, err)
	}
	if summaries == nil {
		summaries = []core.NoteSummary{}
	}
	return c.JSON(summaries)
}

func (s *Server) listNoteTags(c *fiber.Ctx) error {
	id, err := queryID(c, "id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	tags, err := s.store.ListNoteTags(id)
	if err != nil {
		return internalError(c, err)
	}
	if tags == nil {
		tags = []core.Tag{}
	}
	return c.JSON(tags)
}

func (s *Server) validateNewTag(c *fiber.Ctx) error {
	id, err := queryID(c, "id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	tagID, err := queryID(c, "tag_id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	derr, err := s.store.ValidateNewTag(id, tagID)
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(tagOf(derr))
}

func (s *Server) addNoteTag(c *fiber.Ctx) error {
	var p noteTagParam
	if err := c.BodyParser(&p); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return respondOp(c, s.store.AttachTag(p.ID, p.TagID))
}

func (s *Server) removeNoteTag(c *fiber.Ctx) error {
	id, err := queryID(c, "id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	tagID, err := queryID(c, "tag_id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return respondOp(c, s.store.DetachTag(id, tagID))
}
