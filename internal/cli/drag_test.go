package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m DragModel, keys ...string) (DragModel, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = m.Update(key(k))
		m = next.(DragModel)
	}
	return m, cmd
}

func TestDragModelStartsAtOrigin(t *testing.T) {
	m := NewDragModel(testEngine(), sizeOne, "")
	if m.Row != 1 || m.Col != 1 {
		t.Fatalf("pointer = %d:%d, want 1:1", m.Row, m.Col)
	}
	// Origin is covered by widget a, so the drop moves.
	if m.Prediction.Confidence == 1 {
		t.Error("blocked origin should lower confidence")
	}
}

func TestDragModelMovement(t *testing.T) {
	m, _ := press(NewDragModel(testEngine(), sizeOne, ""), "down", "down", "right", "l", "l")
	if m.Row != 3 || m.Col != 3 {
		t.Errorf("pointer = %d:%d, want 3:3 (clamped to 3 columns)", m.Row, m.Col)
	}
	if m.Prediction.Position.RowStart != 3 || m.Prediction.Position.ColStart != 3 {
		t.Errorf("prediction = %+v, want row 3 col 3", m.Prediction.Position)
	}

	m, _ = press(m, "up", "up", "up", "up", "left", "h", "h")
	if m.Row != 1 || m.Col != 1 {
		t.Errorf("pointer = %d:%d, want clamped to 1:1", m.Row, m.Col)
	}
}

func TestDragModelIgnore(t *testing.T) {
	m := NewDragModel(testEngine(), sizeOne, "a")
	if m.Prediction.Confidence != 1 {
		t.Errorf("ignoring the widget under the pointer should give confidence 1, got %v", m.Prediction.Confidence)
	}
}

func TestDragModelAcceptAndQuit(t *testing.T) {
	m, cmd := press(NewDragModel(testEngine(), sizeOne, ""), "enter")
	if !m.Accepted || cmd == nil {
		t.Error("enter should accept and quit")
	}

	m, cmd = press(NewDragModel(testEngine(), sizeOne, ""), "q")
	if m.Accepted || cmd == nil {
		t.Error("q should quit without accepting")
	}
}

func TestDragModelScroll(t *testing.T) {
	m := NewDragModel(testEngine(), sizeOne, "")
	m.Height = 3
	m, _ = press(m, "down", "down", "down", "down")
	if m.Offset != 2 {
		t.Errorf("offset = %d, want 2", m.Offset)
	}
	m, _ = press(m, "up", "up", "up", "up")
	if m.Offset != 0 {
		t.Errorf("offset = %d, want 0", m.Offset)
	}
}

func TestDragModelView(t *testing.T) {
	view := NewDragModel(testEngine(), sizeOne, "").View()
	for _, want := range []string{"Drag 1x1 widget", glyphCursor, glyphWidget, "confidence"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
}
