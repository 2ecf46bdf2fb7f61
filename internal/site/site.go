// Package site turns portfolio content and UI state into the data the page
// templates render, and parses those templates.
package site

import (
	"fmt"
	"html/template"
	"path/filepath"
	"time"

	"github.com/eisachaudhary/portfolio/internal/content"
	"github.com/eisachaudhary/portfolio/internal/markdown"
	"github.com/eisachaudhary/portfolio/internal/typewriter"
	"github.com/eisachaudhary/portfolio/internal/ui"
)

// Site renders one portfolio.
type Site struct {
	Content         *content.Portfolio
	ScrollThreshold int

	about    template.HTML
	journey  template.HTML
	learning template.HTML
	now      func() time.Time
}

type Option func(*Site)

func WithScrollThreshold(px int) Option {
	return func(s *Site) { s.ScrollThreshold = px }
}

func WithClock(now func() time.Time) Option {
	return func(s *Site) { s.now = now }
}

func New(p *content.Portfolio, opts ...Option) *Site {
	s := &Site{
		Content:         p,
		ScrollThreshold: ui.DefaultScrollThreshold,
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.about = markdown.MustRender(p.Profile.About)
	s.journey = markdown.MustRender(p.Profile.Journey)
	s.learning = markdown.MustRender(p.Profile.Learning)
	return s
}

// Templates parses every *.html file in dir; each is addressed by its file name.
func Templates(dir string) (*template.Template, error) {
	t, err := template.New("").Funcs(Funcs()).ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("parse templates in %s: %w", dir, err)
	}
	return t, nil
}

func Funcs() template.FuncMap {
	return map[string]any{
		"blocks": func(n int) []struct{} { return make([]struct{}, n) },
		"add":    func(a, b int) int { return a + b },
		"delay":  func(i int) string { return fmt.Sprintf("%dms", i*100) },
	}
}

// HeroView is the terminal in the hero banner.
type HeroView struct {
	Lines     []typewriter.Line
	Streaming bool
	Cursor    bool
}

type ExperienceView struct {
	Items    []content.Experience
	ActiveID string
	Active   content.Experience
}

type SkillsView struct {
	Categories []content.SkillCategory
	ActiveID   string
	Active     content.SkillCategory
	Bars       []ui.Bar
}

type ProjectsView struct {
	Filter ui.Filter
	Cards  []ui.Card
}

type MenuView struct {
	Open   bool
	Nav    []content.NavItem
	Resume string
}

// Page is everything index.html needs.
type Page struct {
	Profile         content.Profile
	Nav             []content.NavItem
	Features        []content.Feature
	About           template.HTML
	Journey         template.HTML
	Learning        template.HTML
	Hero            HeroView
	Experience      ExperienceView
	Skills          SkillsView
	Projects        ProjectsView
	Menu            MenuView
	ScrollThreshold int
	Year            int
}

// PageState is the initial UI state of a page render.
type PageState struct {
	Experience string
	Category   string
	Filter     ui.Filter
	// Static renders the hero fully typed instead of streaming it.
	Static bool
}

func (s *Site) Page(st PageState) Page {
	return Page{
		Profile:         s.Content.Profile,
		Nav:             s.Content.Nav,
		Features:        s.Content.Features,
		About:           s.about,
		Journey:         s.journey,
		Learning:        s.learning,
		Hero:            s.Hero(st.Static),
		Experience:      s.Experience(st.Experience),
		Skills:          s.Skills(st.Category),
		Projects:        s.Projects(st.Filter),
		Menu:            s.Menu(false),
		ScrollThreshold: s.ScrollThreshold,
		Year:            s.now().Year(),
	}
}

// Hero starts empty when streamed and fully typed otherwise.
func (s *Site) Hero(static bool) HeroView {
	r := typewriter.NewReveal(s.Content.Profile.HeroCode)
	if static {
		r.Complete()
	}
	return HeroView{
		Lines:     typewriter.Highlight(r.Text()),
		Streaming: !static,
		Cursor:    true,
	}
}

// HeroLines highlights a typed prefix for one streamed frame.
func (s *Site) HeroLines(text string) []typewriter.Line {
	return typewriter.Highlight(text)
}

// Experience resolves id to a known experience, falling back to the first.
func (s *Site) Experience(id string) ExperienceView {
	active := ui.Resolve(s.Content.ExperienceIDs(), id)
	v := ExperienceView{Items: s.Content.Experiences, ActiveID: active}
	if exp, err := s.Content.ExperienceByID(active); err == nil {
		v.Active = *exp
	}
	return v
}

func (s *Site) Skills(id string) SkillsView {
	active := ui.Resolve(s.Content.CategoryIDs(), id)
	v := SkillsView{Categories: s.Content.Skills, ActiveID: active}
	if cat, err := s.Content.CategoryByID(active); err == nil {
		v.Active = *cat
		v.Bars = ui.SkillBars(*cat)
	}
	return v
}

func (s *Site) Projects(f ui.Filter) ProjectsView {
	if f == "" {
		f = ui.FilterAll
	}
	return ProjectsView{
		Filter: f,
		Cards:  ui.ProjectCards(ui.FilterProjects(s.Content.Projects, f)),
	}
}

// ProjectDetail returns the dialog for id. Unlike the tabs there is no fallback:
// the dialog is either showing a project or closed.
func (s *Site) ProjectDetail(id string) (ui.Detail, error) {
	p, err := s.Content.ProjectByID(id)
	if err != nil {
		return ui.Detail{}, err
	}
	return ui.ProjectDetail(*p), nil
}

func (s *Site) Menu(open bool) MenuView {
	return MenuView{Open: open, Nav: s.Content.Nav, Resume: s.Content.Profile.ResumeURL}
}
