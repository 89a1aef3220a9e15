package server

import (
	"github.com/gofiber/fiber/v2"

	"github.com/quillbook/quill/internal/core"
)

type createTagParam struct {
	Name string `json:"name"`
}

func (s *Server) createTag(c *fiber.Ctx) error {
	var p createTagParam
	if err := c.BodyParser(&p); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	tag, err := s.store.CreateTag(p.Name)
	if err != nil {
		return respondOp(c, err)
	}
	return c.JSON(tag)
}

func (s *Server) validateTagName(c *fiber.Ctx) error {
	derr, err := s.store.ValidateTagName(c.Query("name"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(tagOf(derr))
}

func (s *Server) loadTagByName(c *fiber.Ctx) error {
	tag, err := s.store.LoadTagByName(c.Query("name"))
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(tag)
}

func (s *Server) searchTagsByName(c *fiber.Ctx) error {
	tags, err := s.store.SearchTagsByName(c.Query("pattern"))
	if err != nil {
		return internalError(c, err)
	}
	if tags == nil {
		tags = []core.Tag{}
	}
	return c.JSON(tags)
}

func (s *Server) renameTag(c *fiber.Ctx) error {
	var p renameParam
	if err := c.BodyParser(&p); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return respondOp(c, s.store.RenameTag(p.ID, p.Name))
}

func (s *Server) deleteTag(c *fiber.Ctx) error {
	id, err := queryID(c, "id")
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return respondOp(c, s.store.DeleteTag(id))
}
