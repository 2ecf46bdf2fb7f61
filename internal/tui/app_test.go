package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/eisachaudhary/portfolio/internal/content"
	"github.com/eisachaudhary/portfolio/internal/typewriter"
)

func testModel(t *testing.T) model {
	t.Helper()
	p := content.Default()
	p.Profile.HeroCode = "ab"
	return newModel(p, typewriter.Config{})
}

func send(m model, msgs ...tea.Msg) (model, tea.Cmd) {
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(model)
	}
	return m, cmd
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestTypingStopsWhenDone(t *testing.T) {
	m := testModel(t)

	m, cmd := send(m, typeTickMsg{})
	if m.reveal.Text() != "a" {
		t.Fatalf("after one tick got %q", m.reveal.Text())
	}
	if cmd == nil {
		t.Fatal("expected another typing tick to be scheduled")
	}

	m, cmd = send(m, typeTickMsg{})
	if !m.reveal.Done() {
		t.Fatal("reveal should be done")
	}
	if cmd != nil {
		t.Fatal("no tick should be scheduled once typing is done")
	}
}

func TestBlinkTogglesCursor(t *testing.T) {
	m := testModel(t)
	if !m.cursor.Visible {
		t.Fatal("cursor should start visible")
	}
	m, cmd := send(m, blinkMsg{})
	if m.cursor.Visible {
		t.Fatal("cursor should be hidden after one blink")
	}
	if cmd == nil {
		t.Fatal("blinking never stops")
	}
}

func TestSkipCompletesHero(t *testing.T) {
	m := testModel(t)
	m, _ = send(m, keyRunes("s"))
	if m.reveal.Text() != "ab" {
		t.Fatalf("got %q", m.reveal.Text())
	}
	if !strings.Contains(m.View(), "ab") {
		t.Fatal("hero view should show the typed text")
	}
}

func TestTabCycling(t *testing.T) {
	m := testModel(t)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.sec != sectionProjects {
		t.Fatalf("shift+tab from hero should wrap to projects, got %d", m.sec)
	}
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.sec != sectionHero {
		t.Fatalf("tab from projects should wrap to hero, got %d", m.sec)
	}
}

func TestExperienceNavigation(t *testing.T) {
	m := testModel(t)
	ids := m.content.ExperienceIDs()
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyTab}, tea.KeyMsg{Type: tea.KeyTab})
	if m.sec != sectionExperience {
		t.Fatalf("expected experience section, got %d", m.sec)
	}
	if m.experience.Active() != ids[0] {
		t.Fatalf("first experience should be active, got %q", m.experience.Active())
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyDown})
	if m.experience.Active() != ids[1] {
		t.Fatalf("down should select the second experience, got %q", m.experience.Active())
	}
	exp, _ := m.content.ExperienceByID(ids[1])
	if !strings.Contains(m.View(), exp.Position) {
		t.Fatalf("view should show %q", exp.Position)
	}
}

func TestProjectsFilterAndDetail(t *testing.T) {
	m := testModel(t)
	m.sec = sectionProjects

	m, _ = send(m, keyRunes("f"))
	if m.filter != "featured" {
		t.Fatalf("filter should be featured, got %q", m.filter)
	}
	for _, p := range m.content.Projects {
		if p.ID == m.projects.Active() && !p.Featured {
			t.Fatalf("active project %q is not featured", p.ID)
		}
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.detail == "" {
		t.Fatal("enter should open the detail view")
	}
	p, err := m.content.ProjectByID(m.detail)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(m.View(), p.Title) {
		t.Fatalf("detail view should show %q", p.Title)
	}

	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.detail != "" {
		t.Fatal("esc should close the detail view")
	}
}

func TestQuit(t *testing.T) {
	m := testModel(t)
	_, cmd := send(m, keyRunes("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q should quit")
	}
}
