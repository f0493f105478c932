package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/seabattle/internal/storage"
)

type fakeHistory struct {
	matches []storage.MatchRecord
	totals  []storage.WinTotal
	err     error
	loads   int
}

func (f *fakeHistory) RecentMatches(int) ([]storage.MatchRecord, error) {
	f.loads++
	return f.matches, f.err
}

func (f *fakeHistory) WinTotals() ([]storage.WinTotal, error) {
	return f.totals, nil
}

func sampleRecord() storage.MatchRecord {
	return storage.MatchRecord{
		MatchID:    "m-1",
		PlayerA:    "You",
		PlayerB:    "Computer",
		Winner:     "Computer",
		WinnerSide: "B",
		ShotsA:     20,
		ShotsB:     16,
		HitsA:      7,
		HitsB:      8,
		CreatedAt:  time.Date(2026, 3, 4, 10, 30, 0, 0, time.Local),
	}
}

func TestHistoryRow(t *testing.T) {
	row := HistoryRow(sampleRecord())
	expected := []string{"Mar 04 10:30", "You vs Computer", "Computer", "16", "50%"}
	if len(row) != len(expected) {
		t.Fatalf("row has %d cells, expected %d", len(row), len(expected))
	}
	for i := range expected {
		if row[i] != expected[i] {
			t.Errorf("cell %d = %q, expected %q", i, row[i], expected[i])
		}
	}
}

func TestHistoryModelView(t *testing.T) {
	src := &fakeHistory{
		matches: []storage.MatchRecord{sampleRecord()},
		totals:  []storage.WinTotal{{Name: "Computer", Wins: 1, Played: 1}, {Name: "You", Wins: 0, Played: 1}},
	}
	m := NewHistoryModel(src, 120, 30)

	view := m.View()
	for _, want := range []string{"MATCH HISTORY (1)", "You vs Computer", "Wins"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestHistoryModelEmptyAndError(t *testing.T) {
	m := NewHistoryModel(&fakeHistory{}, 60, 20)
	if !strings.Contains(m.View(), "No matches recorded yet.") {
		t.Error("expected the empty message")
	}

	m = NewHistoryModel(&fakeHistory{err: errors.New("disk gone")}, 60, 20)
	if !strings.Contains(m.View(), "disk gone") {
		t.Error("expected the load error to be shown")
	}

	m = NewHistoryModel(nil, 60, 20)
	if !strings.Contains(m.View(), "No matches recorded yet.") {
		t.Error("a missing store should read as empty")
	}
}

func TestHistoryModelKeys(t *testing.T) {
	src := &fakeHistory{matches: []storage.MatchRecord{sampleRecord()}}
	m := NewHistoryModel(src, 100, 30)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("r")})
	m = next.(HistoryModel)
	if src.loads != 2 {
		t.Errorf("reload should query the store again, loads = %d", src.loads)
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(HistoryModel).View() != "" {
		t.Error("a quitting model renders nothing")
	}
}
