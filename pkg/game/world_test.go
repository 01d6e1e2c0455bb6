package game

import (
	"testing"

	"github.com/decker502/starshooter/pkg/components"
)

func TestNewWorld(t *testing.T) {
	w := NewWorld(WindowBounds{W: 1280, H: 720}, 3)

	if w.State != StateMainMenu {
		t.Errorf("expected MainMenu, got %s", w.State)
	}
	if w.Wave != 1 || w.EnemyCount != 0 || w.Score != 0 {
		t.Errorf("unexpected counters: wave=%d enemies=%d score=%d", w.Wave, w.EnemyCount, w.Score)
	}
	if w.Player.Lives != 3 {
		t.Errorf("expected 3 lives, got %d", w.Player.Lives)
	}
	if w.Window.HalfW() != 640 || w.Window.HalfH() != 360 {
		t.Errorf("unexpected half extents %v %v", w.Window.HalfW(), w.Window.HalfH())
	}
}

func TestResetForNewGame(t *testing.T) {
	w := NewWorld(WindowBounds{W: 800, H: 600}, 3)
	w.Wave = 7
	w.EnemyCount = 4
	w.Score = 900
	w.Player.Lives = 1
	w.Player.WeaponLevel = 5

	w.ResetForNewGame()

	if w.Wave != 1 || w.EnemyCount != 0 || w.Score != 0 {
		t.Errorf("counters not reset: wave=%d enemies=%d score=%d", w.Wave, w.EnemyCount, w.Score)
	}
	if w.Player != DefaultPlayerState(3) {
		t.Errorf("player state not reset: %+v", w.Player)
	}
}

func TestApplySaveAndSnapshot(t *testing.T) {
	w := NewWorld(WindowBounds{W: 800, H: 600}, 3)
	w.EnemyCount = 2

	w.ApplySave(SaveRecord{Wave: 4, Score: 1200, Lives: 2})

	if w.EnemyCount != 0 {
		t.Errorf("EnemyCount should be reset, got %d", w.EnemyCount)
	}
	if got := w.Snapshot(); got != (SaveRecord{Wave: 4, Score: 1200, Lives: 2}) {
		t.Errorf("snapshot mismatch: %+v", got)
	}
}

func TestApplySaveResetsWeapon(t *testing.T) {
	w := NewWorld(WindowBounds{W: 800, H: 600}, 3)
	w.Player.WeaponType = components.WeaponShotgun
	w.Player.WeaponLevel = 6

	w.ApplySave(SaveRecord{Wave: 2, Score: 300, Lives: 1})

	if w.Player != DefaultPlayerState(1) {
		t.Errorf("expected default weapon with 1 life, got %+v", w.Player)
	}
}

func TestElapsedTimeFromTicks(t *testing.T) {
	w := NewWorld(WindowBounds{W: 800, H: 600}, 3)
	w.Tick = 90
	if got := w.ElapsedTime(1.0 / 60.0); got != 1.5 {
		t.Errorf("expected 1.5s, got %v", got)
	}
}

func TestRequestAndDrainEvents(t *testing.T) {
	w := NewWorld(WindowBounds{W: 800, H: 600}, 3)
	w.RequestEvent(EventLivesDepleted)
	w.RequestEvent(EventPause)

	events := w.DrainEvents()
	if len(events) != 2 || events[0] != EventLivesDepleted || events[1] != EventPause {
		t.Errorf("unexpected events %v", events)
	}
	if len(w.DrainEvents()) != 0 {
		t.Error("events should be cleared after drain")
	}
}

func TestHorizontalAxis(t *testing.T) {
	tests := []struct {
		in   InputState
		want float64
	}{
		{InputState{}, 0},
		{InputState{Left: true}, -1},
		{InputState{Right: true}, 1},
		{InputState{Left: true, Right: true}, -1},
	}
	for _, tt := range tests {
		if got := tt.in.HorizontalAxis(); got != tt.want {
			t.Errorf("%+v: got %v, want %v", tt.in, got, tt.want)
		}
	}
}
