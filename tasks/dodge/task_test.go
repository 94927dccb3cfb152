package dodge

import (
	"errors"
	"testing"

	"dodgebit/led"
)

func newGame(t *testing.T) (*fakeHAL, *led.Device, *Task) {
	t.Helper()
	h := newFakeHAL()
	d := led.NewDevice(h)
	g, err := New(d, h.Logger())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return h, d, g
}

// frame steps d through one whole frame.
func frame(t *testing.T, d *led.Device, g *Task) {
	t.Helper()
	for i := 0; i < 3; i++ {
		if _, err := d.Step(g.Frame); err != nil {
			t.Fatalf("Step: %v", err)
		}
	}
}

func liveRocks(g *Task) []rock {
	var out []rock
	for _, r := range g.rocks {
		if r.live {
			out = append(out, r)
		}
	}
	return out
}

func TestFirstFrameSpawnsWave(t *testing.T) {
	_, d, g := newGame(t)
	frame(t, d, g)

	rocks := liveRocks(g)
	if len(rocks) == 0 {
		t.Fatalf("no rocks spawned")
	}
	if len(rocks) >= led.Size {
		t.Fatalf("wave has %d rocks, want a gap", len(rocks))
	}
	for _, r := range rocks {
		if r.y != 0 {
			t.Fatalf("rock %+v not on top row", r)
		}
	}
	if got := d.Alarm(g.fall).Remaining(); got != fallTicks-3 {
		t.Fatalf("fall remaining = %d, want %d", got, fallTicks-3)
	}
	if got := d.Alarm(g.spawn).Remaining(); got != spawnTicks-3 {
		t.Fatalf("spawn remaining = %d, want %d", got, spawnTicks-3)
	}
}

func TestPlayerDrawnOnGroundRow(t *testing.T) {
	_, d, g := newGame(t)
	frame(t, d, g)
	frame(t, d, g)
	if !d.Canvas().Cell(startX, groundRow) {
		t.Fatalf("player not drawn at (%d,%d)", startX, groundRow)
	}
}

func TestPlayerMoveCooldown(t *testing.T) {
	h, d, g := newGame(t)

	h.a.level = false
	frame(t, d, g)
	if g.playerX != startX-1 {
		t.Fatalf("playerX = %d, want %d", g.playerX, startX-1)
	}

	h.a.level = true
	frame(t, d, g)
	h.a.level = false
	frame(t, d, g)
	if g.playerX != startX-1 {
		t.Fatalf("moved during cooldown: playerX = %d", g.playerX)
	}

	h.a.level = true
	for i := 0; i < moveCooldownFrames; i++ {
		frame(t, d, g)
	}
	h.b.level = false
	frame(t, d, g)
	if g.playerX != startX {
		t.Fatalf("playerX = %d, want %d", g.playerX, startX)
	}
}

func TestPlayerStaysOnGrid(t *testing.T) {
	h, d, g := newGame(t)
	g.playerX = 0
	h.a.level = false
	frame(t, d, g)
	if g.playerX != 0 {
		t.Fatalf("playerX = %d, want 0", g.playerX)
	}
}

func TestLandingScores(t *testing.T) {
	_, d, g := newGame(t)
	frame(t, d, g)

	g.rocks = [maxRocks]rock{}
	g.rocks[3] = rock{x: 0, y: groundRow, live: true}
	g.rocks[4] = rock{x: 4, y: groundRow, live: true}
	g.rocks[5] = rock{x: 1, y: 1, live: true}
	d.Alarm(g.fall).Set(0)
	frame(t, d, g)

	if g.Score() != 1 {
		t.Fatalf("Score() = %d, want 1", g.Score())
	}
	rocks := liveRocks(g)
	if len(rocks) != 1 || rocks[0] != (rock{x: 1, y: 2, live: true}) {
		t.Fatalf("rocks = %+v", rocks)
	}
	if g.Over() {
		t.Fatalf("game over without collision")
	}
}

func TestCollisionShowsScore(t *testing.T) {
	h, d, g := newGame(t)
	frame(t, d, g)

	g.score = 12
	g.rocks[0] = rock{x: startX, y: groundRow, live: true}
	frame(t, d, g)
	if !g.Over() {
		t.Fatalf("Over() = false after collision")
	}

	frame(t, d, g)
	txt := d.Text()
	if txt == nil {
		t.Fatalf("no score text after game over")
	}
	if txt.String() != "12" {
		t.Fatalf("text = %q, want %q", txt.String(), "12")
	}
	if len(h.log.lines) == 0 || h.log.lines[len(h.log.lines)-1] != "dodge: game over, score 12" {
		t.Fatalf("log = %q", h.log.lines)
	}
}

func TestResetOnButtonA(t *testing.T) {
	h, d, g := newGame(t)
	frame(t, d, g)
	g.rocks[0] = rock{x: startX, y: groundRow, live: true}
	g.score = 3
	g.playerX = startX
	frame(t, d, g)
	frame(t, d, g)
	if d.Text() == nil {
		t.Fatalf("no score text")
	}

	h.a.level = false
	frame(t, d, g)
	if g.Over() {
		t.Fatalf("Over() = true after reset")
	}
	if d.Text() != nil {
		t.Fatalf("score text still shown after reset")
	}
	if g.Score() != 0 {
		t.Fatalf("Score() = %d, want 0", g.Score())
	}
	for _, r := range liveRocks(g) {
		if r.y != 0 {
			t.Fatalf("rock %+v survived reset", r)
		}
	}
	if got := d.Alarm(g.spawn).Remaining(); got != spawnTicks-3 {
		t.Fatalf("spawn remaining = %d, want %d", got, spawnTicks-3)
	}
}

func TestSpawnWaveFillsFreeSlots(t *testing.T) {
	var g Task
	for i := range g.rocks {
		g.rocks[i] = rock{live: true, y: 2}
	}
	g.rocks[7] = rock{}
	g.spawnWave([led.Size]uint8{1, 0, 1, 0, 0})

	if g.rocks[7] != (rock{x: 0, y: 0, live: true}) {
		t.Fatalf("slot 7 = %+v", g.rocks[7])
	}
	for i, r := range g.rocks {
		if r.y == 0 && i != 7 {
			t.Fatalf("slot %d overwritten: %+v", i, r)
		}
	}
}

func TestObstaclesLeaveAGap(t *testing.T) {
	for i, o := range obstacles {
		gap := false
		for _, v := range o {
			if v == 0 {
				gap = true
			}
		}
		if !gap {
			t.Fatalf("obstacle %d has no gap", i)
		}
	}
}

func TestNewFailsWhenRegistryFull(t *testing.T) {
	d := led.NewDevice(newFakeHAL())
	for i := 0; i < led.MaxAlarms-1; i++ {
		if _, err := d.AddAlarm(led.NewAlarm(0)); err != nil {
			t.Fatalf("AddAlarm %d: %v", i, err)
		}
	}
	_, err := New(d, nil)
	if !errors.Is(err, led.ErrAlarmRegistryFull) {
		t.Fatalf("New err = %v, want ErrAlarmRegistryFull", err)
	}
}
