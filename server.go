package main

import (
	"bytes"
	"errors"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/utils/clock"

	"github.com/eisachaudhary/portfolio/internal/content"
	"github.com/eisachaudhary/portfolio/internal/site"
	"github.com/eisachaudhary/portfolio/internal/typewriter"
	"github.com/eisachaudhary/portfolio/internal/ui"
)

type server struct {
	site      *site.Site
	tmpl      *template.Template
	log       *slog.Logger
	clock     clock.WithTicker
	typing    typewriter.Config
	mailer    Mailer
	limiter   *clientLimiter
	salt      string
	staticDir string
}

func newRouter(s *server) *gin.Engine {
	r := gin.New()
	r.Use(requestID(), requestLogger(s.log, s.salt), recovery(s.log))
	r.SetHTMLTemplate(s.tmpl)

	r.Static("/static", s.staticDir)

	// Home page route
	r.GET("/", s.index)

	// Hero typewriter, streamed as server-sent events
	r.GET("/hero/stream", s.heroStream)

	// HTMX fragments, one per piece of local UI state
	r.GET("/nav/menu", s.menu)
	r.GET("/experience/:id", s.experience)
	r.GET("/skills/:category", s.skills)
	r.GET("/projects", s.projects)
	r.GET("/projects/:id", s.projectDetail)
	r.GET("/dialog/close", s.closeDialog)

	// Contact form
	r.GET("/contact-form", s.contactForm)
	r.POST("/contact", s.contact)

	r.GET(resumePath, s.resume)

	r.GET("/api/portfolio", func(c *gin.Context) {
		c.JSON(http.StatusOK, s.site.Content)
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return r
}

func (s *server) index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", s.site.Page(site.PageState{
		Experience: c.Query("experience"),
		Category:   c.Query("skills"),
		Filter:     ui.ParseFilter(c.Query("filter")),
	}))
}

// menu applies one action to the mobile menu state posted back by the fragment.
func (s *server) menu(c *gin.Context) {
	m := ui.MobileMenu{Open: c.Query("state") == "open"}
	switch c.Query("action") {
	case "open":
		m.SetOpen(true)
	case "close":
		m.SetOpen(false)
	case "navigate":
		m.Navigate()
	default:
		m.Toggle()
	}
	c.HTML(http.StatusOK, "menu.html", s.site.Menu(m.Open))
}

func (s *server) experience(c *gin.Context) {
	c.HTML(http.StatusOK, "experience.html", s.site.Experience(c.Param("id")))
}

func (s *server) skills(c *gin.Context) {
	c.HTML(http.StatusOK, "skills.html", s.site.Skills(c.Param("category")))
}

func (s *server) projects(c *gin.Context) {
	c.HTML(http.StatusOK, "projects.html", s.site.Projects(ui.ParseFilter(c.Query("filter"))))
}

func (s *server) projectDetail(c *gin.Context) {
	id := c.Param("id")
	detail, err := s.site.ProjectDetail(id)
	if errors.Is(err, content.ErrNotFound) {
		c.HTML(http.StatusNotFound, "not-found.html", gin.H{"Error": id + "_details.js"})
		return
	}
	if err != nil {
		s.log.Error("project.detail", "id", id, "err", err)
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.HTML(http.StatusOK, "project-dialog.html", detail)
}

// resumePath is where the generated plain-text résumé is served.
const resumePath = "/resume.txt"

func (s *server) resume(c *gin.Context) {
	c.Header("Content-Disposition", `attachment; filename="resume.txt"`)
	c.String(http.StatusOK, s.site.Resume())
}

func (s *server) closeDialog(c *gin.Context) {
	c.String(http.StatusOK, "")
}

// heroStream runs the typewriter for one visitor. Frames carry the highlighted
// prefix, cursor events the caret glyph. Both timers stop when the client leaves.
func (s *server) heroStream(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Writer.Header().Set("Content-Type", "text/event-stream")

	ctx := c.Request.Context()
	err := typewriter.Run(ctx, s.clock, s.typing, s.site.Content.Profile.HeroCode, func(e typewriter.Event) error {
		var data string
		switch e.Kind {
		case typewriter.EventCursor:
			if e.Cursor {
				data = "▌"
			}
		default:
			var buf bytes.Buffer
			if err := s.tmpl.ExecuteTemplate(&buf, "hero-lines.html", s.site.HeroLines(e.Text)); err != nil {
				return err
			}
			data = buf.String()
		}
		c.SSEvent(string(e.Kind), data)
		c.Writer.Flush()
		return nil
	})
	if err != nil && ctx.Err() == nil {
		s.log.Error("hero.stream", "err", err)
	}
}
