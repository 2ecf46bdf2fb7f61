// Package ui holds the transient, component-local state of the page:
// which record is active, whether the mobile menu is open, whether the
// header is in its scrolled style, and which projects are listed.
package ui

import (
	"github.com/eisachaudhary/portfolio/internal/content"
)

// DefaultScrollThreshold is the vertical offset in pixels past which the header
// switches to its compact style.
const DefaultScrollThreshold = 10

// Selection tracks the active id of an ordered list of records.
type Selection struct {
	ids    []string
	active string
}

// NewSelection starts on the first id.
func NewSelection(ids []string) *Selection {
	s := &Selection{ids: ids}
	if len(ids) > 0 {
		s.active = ids[0]
	}
	return s
}

// Select makes id active when it belongs to the list and returns the active id.
// Unknown ids leave the selection unchanged.
func (s *Selection) Select(id string) string {
	if s.has(id) {
		s.active = id
	}
	return s.active
}

func (s *Selection) Active() string { return s.active }

// Next and Prev cycle through the list, wrapping at both ends.
func (s *Selection) Next() string { return s.step(1) }
func (s *Selection) Prev() string { return s.step(-1) }

func (s *Selection) step(d int) string {
	if len(s.ids) == 0 {
		return s.active
	}
	i := s.index()
	i = (i + d + len(s.ids)) % len(s.ids)
	s.active = s.ids[i]
	return s.active
}

func (s *Selection) index() int {
	for i, id := range s.ids {
		if id == s.active {
			return i
		}
	}
	return 0
}

func (s *Selection) has(id string) bool {
	for _, v := range s.ids {
		if v == id {
			return true
		}
	}
	return false
}

// Resolve maps a requested id to the id that should be displayed: the id itself
// when known, otherwise the first one.
func Resolve(ids []string, id string) string {
	return NewSelection(ids).Select(id)
}

// MobileMenu is the open/closed state of the collapsed navigation.
type MobileMenu struct {
	Open bool
}

func (m *MobileMenu) Toggle() bool {
	m.Open = !m.Open
	return m.Open
}

// SetOpen sets the state explicitly; repeating the same call has no further effect.
func (m *MobileMenu) SetOpen(open bool) bool {
	m.Open = open
	return m.Open
}

// Navigate is called when a navigation link is activated; it always closes the menu.
func (m *MobileMenu) Navigate() bool {
	m.Open = false
	return m.Open
}

// ScrollHeader flips to the scrolled style once the offset passes Threshold.
type ScrollHeader struct {
	Threshold int
	Scrolled  bool
}

func NewScrollHeader(threshold int) *ScrollHeader {
	return &ScrollHeader{Threshold: threshold}
}

func (h *ScrollHeader) Update(offset int) bool {
	h.Scrolled = offset > h.Threshold
	return h.Scrolled
}

// Filter selects which projects the grid lists.
type Filter string

const (
	FilterAll      Filter = "all"
	FilterFeatured Filter = "featured"
)

// ParseFilter defaults to FilterAll for anything but "featured".
func ParseFilter(s string) Filter {
	if Filter(s) == FilterFeatured {
		return FilterFeatured
	}
	return FilterAll
}

// Toggle switches between the two filters.
func (f Filter) Toggle() Filter {
	if f == FilterFeatured {
		return FilterAll
	}
	return FilterFeatured
}

// FilterProjects returns every project for FilterAll and the featured subset
// otherwise, keeping their order.
func FilterProjects(projects []content.Project, f Filter) []content.Project {
	if f != FilterFeatured {
		return projects
	}
	out := make([]content.Project, 0, len(projects))
	for _, p := range projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
