package content

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidLevel = errors.New("skill level out of range")
	ErrDuplicateID  = errors.New("duplicate id")
	ErrEmptySection = errors.New("section has no records")
	ErrNotFound     = errors.New("not found")
)

// Experience is one entry of the work history timeline.
type Experience struct {
	ID           string   `json:"id" yaml:"id"`
	Company      string   `json:"company" yaml:"company"`
	Position     string   `json:"position" yaml:"position"`
	Period       string   `json:"period" yaml:"period"`
	Description  []string `json:"description" yaml:"description"`
	Technologies []string `json:"technologies" yaml:"technologies"`
	Logo         string   `json:"logo" yaml:"logo"`
}

// Project represents a portfolio project card.
type Project struct {
	ID              string   `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	Description     string   `json:"description" yaml:"description"`
	LongDescription string   `json:"long_description,omitempty" yaml:"long_description,omitempty"`
	Image           string   `json:"image" yaml:"image"`
	Technologies    []string `json:"technologies" yaml:"technologies"`
	LiveURL         string   `json:"live_url,omitempty" yaml:"live_url,omitempty"`
	GitHubURL       string   `json:"github_url,omitempty" yaml:"github_url,omitempty"`
	Featured        bool     `json:"featured" yaml:"featured"`
}

type Skill struct {
	Name  string `json:"name" yaml:"name"`
	Level int    `json:"level" yaml:"level"`
}

// SkillCategory groups skills under one tab.
type SkillCategory struct {
	ID     string  `json:"id" yaml:"id"`
	Name   string  `json:"name" yaml:"name"`
	Skills []Skill `json:"skills" yaml:"skills"`
}

// Feature is one of the about section cards.
type Feature struct {
	Icon        string `json:"icon" yaml:"icon"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

type NavItem struct {
	Label string `json:"label" yaml:"label"`
	Href  string `json:"href" yaml:"href"`
}

// Profile holds the owner details shown in the header, hero, about and footer.
// About, Journey and Learning are markdown.
type Profile struct {
	Name        string   `json:"name" yaml:"name"`
	Brand       string   `json:"brand" yaml:"brand"`
	Tagline     string   `json:"tagline" yaml:"tagline"`
	ResumeURL   string   `json:"resume_url" yaml:"resume_url"`
	Email       string   `json:"email" yaml:"email"`
	GitHubURL   string   `json:"github_url" yaml:"github_url"`
	LinkedInURL string   `json:"linkedin_url" yaml:"linkedin_url"`
	Avatar      string   `json:"avatar" yaml:"avatar"`
	JourneyImg  string   `json:"journey_image" yaml:"journey_image"`
	HeroCode    string   `json:"hero_code" yaml:"hero_code"`
	About       string   `json:"about" yaml:"about"`
	Journey     string   `json:"journey" yaml:"journey"`
	FreeTime    []string `json:"free_time" yaml:"free_time"`
	Learning    string   `json:"learning" yaml:"learning"`
}

// Portfolio is the whole page content.
type Portfolio struct {
	Profile     Profile         `json:"profile" yaml:"profile"`
	Nav         []NavItem       `json:"nav" yaml:"nav"`
	Features    []Feature       `json:"features" yaml:"features"`
	Experiences []Experience    `json:"experiences" yaml:"experiences"`
	Skills      []SkillCategory `json:"skills" yaml:"skills"`
	Projects    []Project       `json:"projects" yaml:"projects"`
}

// Validate checks skill levels and id uniqueness within each list.
func (p *Portfolio) Validate() error {
	if len(p.Experiences) == 0 {
		return fmt.Errorf("experiences: %w", ErrEmptySection)
	}
	if len(p.Skills) == 0 {
		return fmt.Errorf("skills: %w", ErrEmptySection)
	}
	if len(p.Projects) == 0 {
		return fmt.Errorf("projects: %w", ErrEmptySection)
	}

	seen := make(map[string]bool, len(p.Experiences))
	for _, e := range p.Experiences {
		if seen[e.ID] {
			return fmt.Errorf("experience %q: %w", e.ID, ErrDuplicateID)
		}
		seen[e.ID] = true
	}

	seen = make(map[string]bool, len(p.Projects))
	for _, pr := range p.Projects {
		if seen[pr.ID] {
			return fmt.Errorf("project %q: %w", pr.ID, ErrDuplicateID)
		}
		seen[pr.ID] = true
	}

	seen = make(map[string]bool, len(p.Skills))
	for _, c := range p.Skills {
		if seen[c.ID] {
			return fmt.Errorf("skill category %q: %w", c.ID, ErrDuplicateID)
		}
		seen[c.ID] = true
		for _, s := range c.Skills {
			if s.Level < 0 || s.Level > 100 {
				return fmt.Errorf("skill %q in %q has level %d: %w", s.Name, c.ID, s.Level, ErrInvalidLevel)
			}
		}
	}
	return nil
}

// ExperienceIDs returns the experience ids in display order.
func (p *Portfolio) ExperienceIDs() []string {
	ids := make([]string, len(p.Experiences))
	for i, e := range p.Experiences {
		ids[i] = e.ID
	}
	return ids
}

func (p *Portfolio) CategoryIDs() []string {
	ids := make([]string, len(p.Skills))
	for i, c := range p.Skills {
		ids[i] = c.ID
	}
	return ids
}

func (p *Portfolio) ProjectIDs() []string {
	ids := make([]string, len(p.Projects))
	for i, pr := range p.Projects {
		ids[i] = pr.ID
	}
	return ids
}

// ExperienceByID returns a specific experience by ID
func (p *Portfolio) ExperienceByID(id string) (*Experience, error) {
	for i := range p.Experiences {
		if p.Experiences[i].ID == id {
			return &p.Experiences[i], nil
		}
	}
	return nil, fmt.Errorf("experience %q: %w", id, ErrNotFound)
}

// CategoryByID returns a specific skill category by ID
func (p *Portfolio) CategoryByID(id string) (*SkillCategory, error) {
	for i := range p.Skills {
		if p.Skills[i].ID == id {
			return &p.Skills[i], nil
		}
	}
	return nil, fmt.Errorf("skill category %q: %w", id, ErrNotFound)
}

// ProjectByID returns a specific project by ID
func (p *Portfolio) ProjectByID(id string) (*Project, error) {
	for i := range p.Projects {
		if p.Projects[i].ID == id {
			return &p.Projects[i], nil
		}
	}
	return nil, fmt.Errorf("project %q: %w", id, ErrNotFound)
}
