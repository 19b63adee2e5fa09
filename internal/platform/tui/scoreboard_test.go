package tui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/storage"
)

func openScoreStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestScoreboardLoadsAndHighlights(t *testing.T) {
	store := openScoreStore(t)
	ctx := context.Background()

	var ids []int64
	for _, score := range []int{9, 4, 6} {
		id, err := store.SaveScore(ctx, storage.ScoreEntry{GameID: "flappy", Player: "ann", Score: score, Frames: score * 100})
		if err != nil {
			t.Fatalf("SaveScore() error: %v", err)
		}
		ids = append(ids, id)
	}

	// The score of 6 ranks second.
	m := NewScoreboardModel(store, "flappy", ids[2], 80, 30)

	scores := m.Scores()
	if len(scores) != 3 || scores[0].Score != 9 || scores[1].Score != 6 || scores[2].Score != 4 {
		t.Fatalf("Scores() = %+v, expected 9, 6, 4", scores)
	}
	if m.table.Cursor() != 1 {
		t.Errorf("cursor = %d, expected the highlighted entry at 1", m.table.Cursor())
	}
	if line := m.statsLine(); !strings.Contains(line, "3 games") || !strings.Contains(line, "best 9") {
		t.Errorf("statsLine() = %q", line)
	}
}

func TestScoreboardStatsLine(t *testing.T) {
	tests := []struct {
		name     string
		store    *storage.Store
		expected string
	}{
		{"no store", nil, "score storage is disabled"},
		{"empty store", openScoreStore(t), "no games played"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewScoreboardModel(tc.store, "flappy", 0, 80, 30)
			if got := m.statsLine(); got != tc.expected {
				t.Errorf("statsLine() = %q, expected %q", got, tc.expected)
			}
			if !strings.Contains(m.View(), "No scores recorded yet.") {
				t.Error("an empty scoreboard should say so")
			}
		})
	}
}

func TestScoreboardKeys(t *testing.T) {
	tests := []struct {
		name      string
		msg       tea.KeyMsg
		goingBack bool
		quitting  bool
	}{
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"t goes back", runeKey('t'), true, false},
		{"q quits", runeKey('q'), false, true},
		{"other keys stay", runeKey('x'), false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewScoreboardModel(nil, "flappy", 0, 80, 30)
			next, _ := m.Update(tc.msg)
			sb := next.(ScoreboardModel)
			if sb.IsGoingBack() != tc.goingBack || sb.IsQuitting() != tc.quitting {
				t.Errorf("goingBack=%v quitting=%v, expected %v %v",
					sb.IsGoingBack(), sb.IsQuitting(), tc.goingBack, tc.quitting)
			}
		})
	}
}
