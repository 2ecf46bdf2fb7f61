package ui

import (
	"testing"

	"github.com/eisachaudhary/portfolio/internal/content"
)

func TestSelectionDefaultsToFirst(t *testing.T) {
	s := NewSelection([]string{"a", "b", "c"})
	if s.Active() != "a" {
		t.Fatalf("expected a, got %q", s.Active())
	}
}

func TestSelectionSelectsEveryKnownID(t *testing.T) {
	p := content.Default()
	s := NewSelection(p.ExperienceIDs())

	for _, exp := range p.Experiences {
		got := s.Select(exp.ID)
		if got != exp.ID {
			t.Fatalf("expected %q, got %q", exp.ID, got)
		}
		rec, err := p.ExperienceByID(got)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Company != exp.Company {
			t.Fatalf("expected %q, got %q", exp.Company, rec.Company)
		}
	}
}

func TestSelectionIgnoresUnknownID(t *testing.T) {
	s := NewSelection([]string{"a", "b"})
	s.Select("b")
	if got := s.Select("zzz"); got != "b" {
		t.Fatalf("expected selection to stay on b, got %q", got)
	}
}

func TestSelectionCycles(t *testing.T) {
	s := NewSelection([]string{"a", "b", "c"})
	if s.Prev() != "c" {
		t.Fatalf("expected prev to wrap to c")
	}
	if s.Next() != "a" {
		t.Fatalf("expected next to wrap to a")
	}
	if s.Next() != "b" {
		t.Fatalf("expected b")
	}
}

func TestSelectionEmpty(t *testing.T) {
	s := NewSelection(nil)
	if s.Active() != "" || s.Next() != "" || s.Select("x") != "" {
		t.Fatalf("expected empty selection to stay empty")
	}
}

func TestResolveFallsBackToFirst(t *testing.T) {
	ids := []string{"frontend", "backend"}
	if got := Resolve(ids, "backend"); got != "backend" {
		t.Fatalf("expected backend, got %q", got)
	}
	if got := Resolve(ids, "missing"); got != "frontend" {
		t.Fatalf("expected frontend, got %q", got)
	}
}

func TestMobileMenu(t *testing.T) {
	var m MobileMenu

	if !m.Toggle() {
		t.Fatalf("expected open after first toggle")
	}
	if m.Toggle() {
		t.Fatalf("expected closed after second toggle")
	}

	m.SetOpen(true)
	m.SetOpen(true)
	if !m.Open {
		t.Fatalf("expected repeated open to stay open")
	}

	if m.Navigate() {
		t.Fatalf("expected navigate to close the menu")
	}
	if m.Navigate() {
		t.Fatalf("expected navigate on closed menu to stay closed")
	}
}

func TestScrollHeader(t *testing.T) {
	h := NewScrollHeader(DefaultScrollThreshold)

	tests := []struct {
		offset int
		want   bool
	}{
		{0, false},
		{10, false},
		{11, true},
		{500, true},
		{3, false},
	}
	for _, tt := range tests {
		if got := h.Update(tt.offset); got != tt.want {
			t.Fatalf("offset %d: expected %v, got %v", tt.offset, tt.want, got)
		}
	}
}

func TestParseFilter(t *testing.T) {
	if ParseFilter("featured") != FilterFeatured {
		t.Fatalf("expected featured")
	}
	for _, s := range []string{"", "all", "FEATURED", "bogus"} {
		if ParseFilter(s) != FilterAll {
			t.Fatalf("%q: expected all", s)
		}
	}
	if FilterAll.Toggle() != FilterFeatured || FilterFeatured.Toggle() != FilterAll {
		t.Fatalf("expected toggle to switch filters")
	}
}

func TestFilterProjects(t *testing.T) {
	projects := content.Default().Projects

	all := FilterProjects(projects, FilterAll)
	if len(all) != len(projects) {
		t.Fatalf("expected %d projects, got %d", len(projects), len(all))
	}
	for i := range all {
		if all[i].ID != projects[i].ID {
			t.Fatalf("expected order preserved at %d", i)
		}
	}

	featured := FilterProjects(projects, FilterFeatured)
	var want []string
	for _, p := range projects {
		if p.Featured {
			want = append(want, p.ID)
		}
	}
	if len(featured) != len(want) {
		t.Fatalf("expected %d featured, got %d", len(want), len(featured))
	}
	for i, p := range featured {
		if !p.Featured || p.ID != want[i] {
			t.Fatalf("unexpected featured project at %d: %+v", i, p)
		}
	}
}
