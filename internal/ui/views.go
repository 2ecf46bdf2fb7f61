package ui

import (
	"fmt"
	"strings"

	"github.com/eisachaudhary/portfolio/internal/content"
)

// blockWidth is how many percent points one filled block glyph stands for.
const blockWidth = 3.5

// maxCardBadges is how many technologies a project card lists before collapsing
// the rest into an overflow badge.
const maxCardBadges = 3

// Bar is the rendered form of a skill.
type Bar struct {
	Name   string
	Level  int
	Label  string
	Width  string
	Gauge  string
	Blocks int
}

// SkillBar renders a skill's percentage as label, fill width and block count.
func SkillBar(s content.Skill) Bar {
	return Bar{
		Name:   s.Name,
		Level:  s.Level,
		Label:  fmt.Sprintf("%d%%", s.Level),
		Width:  fmt.Sprintf("%d%%", s.Level),
		Gauge:  fmt.Sprintf("[%d/100]", s.Level),
		Blocks: int(float64(s.Level) / blockWidth),
	}
}

// SkillBars renders every skill of a category.
func SkillBars(c content.SkillCategory) []Bar {
	bars := make([]Bar, len(c.Skills))
	for i, s := range c.Skills {
		bars[i] = SkillBar(s)
	}
	return bars
}

// Card is a project as shown in the grid.
type Card struct {
	content.Project
	Badges   []string
	Overflow string
}

func ProjectCard(p content.Project) Card {
	c := Card{Project: p}
	if len(p.Technologies) > maxCardBadges {
		c.Badges = p.Technologies[:maxCardBadges]
		c.Overflow = fmt.Sprintf("+%d deps", len(p.Technologies)-maxCardBadges)
	} else {
		c.Badges = p.Technologies
	}
	return c
}

func ProjectCards(projects []content.Project) []Card {
	cards := make([]Card, len(projects))
	for i, p := range projects {
		cards[i] = ProjectCard(p)
	}
	return cards
}

// Detail is a project as shown in the dialog.
type Detail struct {
	content.Project
	Lines []string
}

// ProjectDetail prefers the long description and splits it into lines.
func ProjectDetail(p content.Project) Detail {
	text := p.LongDescription
	if text == "" {
		text = p.Description
	}
	return Detail{Project: p, Lines: strings.Split(text, "\n")}
}
