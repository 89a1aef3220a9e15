// Package server exposes a notebook over JSON-HTTP, one endpoint per domain
// operation. Expected validation failures answer 406 with the domain-error tag
// in the body; unexpected failures answer 500; mutations under a read-only
// notebook answer 401.
package server

import (
	"io"
	"log"
	"net"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/quillbook/quill/internal/core"
	"github.com/quillbook/quill/internal/store"
)

type Server struct {
	app   *fiber.App
	store *store.Store
	name  string
	perms core.Permissions
}

// New assembles the fiber app for one notebook. logSink receives request
// lines; pass io.Discard when request logging is off.
func New(name string, s *store.Store, perms core.Permissions, logSink io.Writer) *Server {
	app := fiber.New(fiber.Config{
		AppName:               "quill",
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{Output: logSink}))

	srv := &Server{app: app, store: s, name: name, perms: perms}
	srv.routes()
	return srv
}

func (s *Server) routes() {
	app := s.app

	app.Get("/name", func(c *fiber.Ctx) error {
		return c.JSON(s.name)
	})
	app.Get("/notebook", func(c *fiber.Ctx) error {
		return c.JSON(core.Info{Name: s.name, Permissions: s.perms})
	})

	app.Post("/note/create", s.writable(s.createNote))
	app.Get("/note/validate/name", s.validateNoteName)
	app.Get("/note/load/id", s.loadNoteByID)
	app.Get("/note/load/name", s.loadNoteByName)
	app.Patch("/note/update/name", s.writable(s.renameNote))
	app.Patch("/note/update/content", s.writable(s.updateNoteContent))
	app.Patch("/note/update/links", s.writable(s.updateNoteLinks))
	app.Delete("/note/delete", s.writable(s.deleteNote))
	app.Get("/note/search/name", s.searchNotesByName)
	app.Get("/note/search/tag", s.searchNotesByTag)
	app.Get("/note/tag/list", s.listNoteTags)
	app.Get("/note/validate/tag", s.validateNewTag)
	app.Post("/note/tag/add", s.writable(s.addNoteTag))
	app.Delete("/note/tag/remove", s.writable(s.removeNoteTag))

	app.Post("/tag/create", s.writable(s.createTag))
	app.Get("/tag/validate/name", s.validateTagName)
	app.Get("/tag/load/name", s.loadTagByName)
	app.Get("/tag/search/name", s.searchTagsByName)
	app.Patch("/tag/rename", s.writable(s.renameTag))
	app.Delete("/tag/delete", s.writable(s.deleteTag))
}

// writable guards mutating endpoints under a read-only notebook.
func (s *Server) writable(h fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !s.perms.Writable() {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		return h(c)
	}
}

// Listen serves on addr until the listener fails or Shutdown is called.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Listener serves on an already-bound listener. Used by the open command to
// run the server in-process on a loopback port.
func (s *Server) Listener(ln net.Listener) error {
	return s.app.Listener(ln)
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber app for in-process serving and tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// errorTag is the wire body for a domain error.
type errorTag struct {
	Error *string `json:"error"`
}

func tagOf(err error) errorTag {
	if err == nil {
		return errorTag{}
	}
	var tag string
	switch e := err.(type) {
	case core.NoteError:
		tag = string(e)
	case core.TagError:
		tag = string(e)
	default:
		tag = err.Error()
	}
	return errorTag{Error: &tag}
}

// respondOp maps an operation result: domain errors are expected and answer
// 406, anything else is a server fault.
func respondOp(c *fiber.Ctx, err error) error {
	if err == nil {
		return c.JSON(nil)
	}
	if core.IsDomain(err) {
		return c.Status(fiber.StatusNotAcceptable).JSON(tagOf(err))
	}
	log.Printf("internal error on %s: %v", c.Path(), err)
	return c.SendStatus(fiber.StatusInternalServerError)
}

func internalError(c *fiber.Ctx, err error) error {
	log.Printf("internal error on %s: %v", c.Path(), err)
	return c.SendStatus(fiber.StatusInternalServerError)
}
