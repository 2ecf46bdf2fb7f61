package site

import (
	"fmt"
	"strings"
)

// Resume renders the profile, experience and skills as a plain-text résumé.
func (s *Site) Resume() string {
	p := s.Content
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n", p.Profile.Name, p.Profile.Tagline)
	for _, l := range []string{p.Profile.Email, p.Profile.GitHubURL, p.Profile.LinkedInURL} {
		if l != "" {
			fmt.Fprintf(&b, "%s\n", l)
		}
	}

	b.WriteString("\nEXPERIENCE\n")
	for _, e := range p.Experiences {
		fmt.Fprintf(&b, "\n%s, %s (%s)\n", e.Position, e.Company, e.Period)
		for _, d := range e.Description {
			fmt.Fprintf(&b, "  - %s\n", d)
		}
		if len(e.Technologies) > 0 {
			fmt.Fprintf(&b, "  %s\n", strings.Join(e.Technologies, ", "))
		}
	}

	b.WriteString("\nSKILLS\n")
	for _, c := range p.Skills {
		names := make([]string, len(c.Skills))
		for i, sk := range c.Skills {
			names[i] = sk.Name
		}
		fmt.Fprintf(&b, "  %s: %s\n", c.Name, strings.Join(names, ", "))
	}

	b.WriteString("\nPROJECTS\n")
	for _, pr := range p.Projects {
		fmt.Fprintf(&b, "  %s: %s\n", pr.Title, pr.Description)
	}
	return b.String()
}
