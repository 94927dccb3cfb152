// Package dodge is the falling-debris game: move along the bottom row with
// buttons A and B and avoid the rocks. The score is the number of debris
// waves that reached the ground; it scrolls across the display on game over
// until A starts a new game.
package dodge

import (
	"fmt"

	"dodgebit/hal"
	"dodgebit/led"
)

const (
	fallTicks          = 100
	spawnTicks         = 500
	moveCooldownFrames = 5

	groundRow = led.Size - 1
	startX    = led.Size / 2
	maxRocks  = led.Size * led.Size
)

// obstacles are the debris waves; every one leaves at least one gap.
var obstacles = [...][led.Size]uint8{
	{1, 1, 0, 1, 1},
	{1, 0, 1, 0, 1},
	{0, 1, 1, 1, 1},
	{1, 1, 1, 1, 0},
	{1, 1, 0, 0, 1},
	{1, 0, 0, 1, 1},
	{0, 0, 1, 0, 0},
	{1, 0, 0, 0, 1},
	{0, 1, 0, 1, 0},
	{1, 1, 1, 0, 1},
	{1, 0, 1, 1, 1},
}

type rock struct {
	x, y int
	live bool
}

type Task struct {
	log hal.Logger

	fall  led.AlarmID
	spawn led.AlarmID

	playerX  int
	cooldown int
	rocks    [maxRocks]rock

	score uint64
	over  bool
	text  led.Text
}

// New registers the game alarms with d.
func New(d *led.Device, log hal.Logger) (*Task, error) {
	fall, err := d.AddAlarm(led.NewAlarm(0))
	if err != nil {
		return nil, fmt.Errorf("dodge: fall alarm: %w", err)
	}
	spawn, err := d.AddAlarm(led.NewAlarm(0))
	if err != nil {
		return nil, fmt.Errorf("dodge: spawn alarm: %w", err)
	}
	return &Task{
		log:     log,
		fall:    fall,
		spawn:   spawn,
		playerX: startX,
	}, nil
}

// Frame runs one frame of game logic.
func (t *Task) Frame(d *led.Device) error {
	if t.over && d.ButtonA().JustPressed() {
		t.reset(d)
	}

	if t.over {
		if d.Text() == nil {
			t.text = led.Text{}
			t.text.SetUint(t.score)
			d.SetText(&t.text)
			t.logf("dodge: game over, score %d", t.score)
		}
		return nil
	}

	c := d.Canvas()
	c.SetCell(t.playerX, groundRow, true)
	for _, r := range t.rocks {
		if r.live {
			c.SetCell(r.x, r.y, true)
		}
	}

	if d.Alarm(t.fall).WaitFor(fallTicks) {
		t.dropRocks()
	}
	if d.Alarm(t.spawn).WaitFor(spawnTicks) {
		t.spawnWave(obstacles[d.Rand().IntN(len(obstacles))])
	}

	t.movePlayer(d)

	for _, r := range t.rocks {
		if r.live && r.x == t.playerX && r.y == groundRow {
			t.over = true
		}
	}
	return nil
}

func (t *Task) reset(d *led.Device) {
	t.over = false
	d.SetText(nil)
	t.score = 0
	t.playerX = startX
	t.cooldown = 0
	t.rocks = [maxRocks]rock{}
	d.Alarm(t.fall).Set(0)
	d.Alarm(t.spawn).Set(0)
	t.logf("dodge: new game")
}

// dropRocks moves every rock one row down. Rocks leaving the ground row
// despawn; a step that despawns any of them scores one point.
func (t *Task) dropRocks() {
	landed := false
	for i := range t.rocks {
		r := &t.rocks[i]
		if !r.live {
			continue
		}
		if r.y == groundRow {
			*r = rock{}
			landed = true
			continue
		}
		r.y++
	}
	if landed {
		t.score++
	}
}

// spawnWave places one rock on the top row for every set column of wave.
func (t *Task) spawnWave(wave [led.Size]uint8) {
	slot := 0
	for x, on := range wave {
		if on == 0 {
			continue
		}
		for slot < len(t.rocks) && t.rocks[slot].live {
			slot++
		}
		if slot == len(t.rocks) {
			return
		}
		t.rocks[slot] = rock{x: x, y: 0, live: true}
	}
}

func (t *Task) movePlayer(d *led.Device) {
	if t.cooldown != 0 {
		t.cooldown--
	}
	if d.ButtonA().JustPressed() && t.playerX != 0 && t.cooldown == 0 {
		t.playerX--
		t.cooldown = moveCooldownFrames
	}
	if d.ButtonB().JustPressed() && t.playerX != led.Size-1 && t.cooldown == 0 {
		t.playerX++
		t.cooldown = moveCooldownFrames
	}
}

// Score returns the current score.
func (t *Task) Score() uint64 { return t.score }

// Over reports whether the game has ended.
func (t *Task) Over() bool { return t.over }

func (t *Task) logf(format string, args ...any) {
	if t.log == nil {
		return
	}
	t.log.WriteLineString(fmt.Sprintf(format, args...))
}
