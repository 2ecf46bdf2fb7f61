package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/eisachaudhary/portfolio/internal/content"
	"github.com/eisachaudhary/portfolio/internal/typewriter"
	"github.com/eisachaudhary/portfolio/internal/ui"
)

type section int

const (
	sectionHero section = iota
	sectionAbout
	sectionExperience
	sectionSkills
	sectionProjects
)

var sectionNames = []string{"hero", "about", "experience", "skills", "projects"}

type typeTickMsg struct{}
type blinkMsg struct{}

type model struct {
	theme Theme
	keys  keyMap
	help  help.Model

	content *content.Portfolio
	cfg     typewriter.Config

	sec        section
	reveal     *typewriter.Reveal
	cursor     *typewriter.Cursor
	experience *ui.Selection
	skills     *ui.Selection
	filter     ui.Filter
	projects   *ui.Selection
	detail     string
}

// Run starts the full-screen browser and blocks until the user quits.
func Run(p *content.Portfolio, cfg typewriter.Config) error {
	prog := tea.NewProgram(newModel(p, cfg), tea.WithAltScreen())
	_, err := prog.Run()
	return err
}

func newModel(p *content.Portfolio, cfg typewriter.Config) model {
	if cfg.TypingInterval <= 0 {
		cfg.TypingInterval = typewriter.DefaultTypingInterval
	}
	if cfg.CursorInterval <= 0 {
		cfg.CursorInterval = typewriter.DefaultCursorInterval
	}
	return model{
		theme:      DefaultTheme(),
		keys:       defaultKeys(),
		help:       help.New(),
		content:    p,
		cfg:        cfg,
		reveal:     typewriter.NewReveal(p.Profile.HeroCode),
		cursor:     typewriter.NewCursor(),
		experience: ui.NewSelection(p.ExperienceIDs()),
		skills:     ui.NewSelection(p.CategoryIDs()),
		filter:     ui.FilterAll,
		projects:   ui.NewSelection(p.ProjectIDs()),
	}
}

func (m model) typeTick() tea.Cmd {
	return tea.Tick(m.cfg.TypingInterval, func(time.Time) tea.Msg { return typeTickMsg{} })
}

func (m model) blink() tea.Cmd {
	return tea.Tick(m.cfg.CursorInterval, func(time.Time) tea.Msg { return blinkMsg{} })
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.typeTick(), m.blink())
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case typeTickMsg:
		// no further ticks are scheduled once the text is complete
		if !m.reveal.Tick() || m.reveal.Done() {
			return m, nil
		}
		return m, m.typeTick()

	case blinkMsg:
		m.cursor.Blink()
		return m, m.blink()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Close):
		m.detail = ""
		return m, nil

	case key.Matches(msg, m.keys.NextTab):
		m.sec = (m.sec + 1) % section(len(sectionNames))
		m.detail = ""
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.sec = (m.sec + section(len(sectionNames)) - 1) % section(len(sectionNames))
		m.detail = ""
		return m, nil

	case key.Matches(msg, m.keys.Skip):
		m.reveal.Complete()
		return m, nil
	}

	switch m.sec {
	case sectionExperience:
		switch {
		case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Down):
			m.experience.Next()
		case key.Matches(msg, m.keys.Prev), key.Matches(msg, m.keys.Up):
			m.experience.Prev()
		}

	case sectionSkills:
		switch {
		case key.Matches(msg, m.keys.Next):
			m.skills.Next()
		case key.Matches(msg, m.keys.Prev):
			m.skills.Prev()
		}

	case sectionProjects:
		switch {
		case key.Matches(msg, m.keys.Filter):
			m.filter = m.filter.Toggle()
			m.projects = ui.NewSelection(projectIDs(ui.FilterProjects(m.content.Projects, m.filter)))
			m.detail = ""
		case key.Matches(msg, m.keys.Down), key.Matches(msg, m.keys.Next):
			if m.detail == "" {
				m.projects.Next()
			}
		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Prev):
			if m.detail == "" {
				m.projects.Prev()
			}
		case key.Matches(msg, m.keys.Open):
			m.detail = m.projects.Active()
		}
	}
	return m, nil
}

func projectIDs(ps []content.Project) []string {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	return ids
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)

	header := m.theme.Title.Render("~/"+m.content.Profile.Brand+".dev") + "\n" +
		m.theme.Subtitle.Render(m.content.Profile.Tagline) + "\n\n" +
		m.tabs() + "\n\n"

	var body string
	switch m.sec {
	case sectionHero:
		body = m.heroView()
	case sectionAbout:
		body = m.aboutView()
	case sectionExperience:
		body = m.experienceView()
	case sectionSkills:
		body = m.skillsView()
	case sectionProjects:
		body = m.projectsView()
	}

	footer := "\n" + m.theme.Help.Render(m.help.ShortHelpView(m.keys.ShortHelp()))
	return wrap.Render(header + m.theme.Card.Render(body) + footer)
}

func (m model) tabs() string {
	parts := make([]string, len(sectionNames))
	for i, name := range sectionNames {
		label := "./" + name
		if section(i) == m.sec {
			parts[i] = m.theme.ActiveTab.Render(label)
		} else {
			parts[i] = m.theme.Tab.Render(label)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m model) heroView() string {
	var b strings.Builder
	b.WriteString(m.theme.Subtitle.Render("portfolio.js") + "\n\n")
	lines := strings.Split(m.reveal.Text(), "\n")
	for i, l := range lines {
		b.WriteString(m.theme.LineNo.Render(fmt.Sprint(i + 1)))
		b.WriteString(l)
		if i == len(lines)-1 && m.cursor.Visible {
			b.WriteString(m.theme.Accent.Render("▌"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m model) aboutView() string {
	var b strings.Builder
	b.WriteString(m.theme.Accent.Render("/**") + "\n")
	b.WriteString(m.content.Profile.About + "\n")
	b.WriteString(m.theme.Accent.Render("*/") + "\n\n")
	for _, f := range m.content.Features {
		b.WriteString(m.theme.Accent.Render("function ") + f.Title + "() {...}\n")
		b.WriteString(m.theme.Subtitle.Render("  // "+f.Description) + "\n")
	}
	return b.String()
}

func (m model) experienceView() string {
	var b strings.Builder
	for _, e := range m.content.Experiences {
		if e.ID == m.experience.Active() {
			b.WriteString(m.theme.ActiveTab.Render(e.Company))
		} else {
			b.WriteString(m.theme.Tab.Render(e.Company))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	exp, err := m.content.ExperienceByID(m.experience.Active())
	if err != nil {
		return b.String()
	}
	b.WriteString(m.theme.Title.Render(exp.Position) + "\n")
	b.WriteString(exp.Company + "  " + m.theme.Subtitle.Render(exp.Period) + "\n\n")
	for _, d := range exp.Description {
		b.WriteString(m.theme.Accent.Render("• ") + d + "\n")
	}
	b.WriteString("\n" + m.theme.Subtitle.Render(strings.Join(exp.Technologies, " · ")) + "\n")
	return b.String()
}

func (m model) skillsView() string {
	var b strings.Builder
	var tabs []string
	for _, c := range m.content.Skills {
		label := "# " + c.Name
		if c.ID == m.skills.Active() {
			tabs = append(tabs, m.theme.ActiveTab.Render(label))
		} else {
			tabs = append(tabs, m.theme.Tab.Render(label))
		}
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tabs...) + "\n\n")

	cat, err := m.content.CategoryByID(m.skills.Active())
	if err != nil {
		return b.String()
	}
	for _, bar := range ui.SkillBars(*cat) {
		fmt.Fprintf(&b, "%-14s %s %s %s\n",
			bar.Name,
			m.theme.Accent.Render(strings.Repeat("█", bar.Blocks)),
			strings.Repeat(" ", 28-bar.Blocks),
			bar.Gauge,
		)
	}
	return b.String()
}

func (m model) projectsView() string {
	if m.detail != "" {
		if p, err := m.content.ProjectByID(m.detail); err == nil {
			return m.projectDetailView(*p)
		}
	}

	var b strings.Builder
	b.WriteString(m.theme.Subtitle.Render("filter: "+string(m.filter)) + "\n\n")
	for _, c := range ui.ProjectCards(ui.FilterProjects(m.content.Projects, m.filter)) {
		marker := "  "
		if c.ID == m.projects.Active() {
			marker = m.theme.Accent.Render("> ")
		}
		title := c.Title
		if c.Featured {
			title += m.theme.Accent.Render(" [featured]")
		}
		b.WriteString(marker + title + "\n")
		badges := strings.Join(c.Badges, ", ")
		if c.Overflow != "" {
			badges += " " + c.Overflow
		}
		b.WriteString("    " + m.theme.Subtitle.Render(badges) + "\n")
	}
	return b.String()
}

func (m model) projectDetailView(p content.Project) string {
	d := ui.ProjectDetail(p)
	var b strings.Builder
	b.WriteString(m.theme.Accent.Render("const") + " project = \"" + d.Title + "\";\n\n")
	for _, l := range d.Lines {
		b.WriteString(l + "\n")
	}
	b.WriteString("\n" + m.theme.Subtitle.Render(strings.Join(d.Technologies, " · ")) + "\n")
	if d.LiveURL != "" {
		b.WriteString("demo:   " + d.LiveURL + "\n")
	}
	if d.GitHubURL != "" {
		b.WriteString("source: " + d.GitHubURL + "\n")
	}
	return b.String()
}
