package led

// Alarm is a self-rearming countdown measured in ticks.
//
// The period of the next fire counts from the tick after the last one; no
// drift correction is applied. There is no cancel: Set(0) fires on the next
// WaitFor, a large Set postpones it.
type Alarm struct {
	remaining uint
}

// NewAlarm returns an alarm that fires after n ticks.
func NewAlarm(n uint) Alarm {
	return Alarm{remaining: n}
}

// Tick advances the alarm by one tick. It never goes below zero.
func (a *Alarm) Tick() {
	if a.remaining != 0 {
		a.remaining--
	}
}

// Set forces the remaining tick count.
func (a *Alarm) Set(n uint) {
	a.remaining = n
}

// Remaining returns the ticks left before the alarm fires.
func (a *Alarm) Remaining() uint {
	return a.remaining
}

// WaitFor reports whether the alarm has run out. When it has, it is re-armed
// with n ticks; otherwise nothing changes.
func (a *Alarm) WaitFor(n uint) bool {
	if a.remaining != 0 {
		return false
	}
	a.remaining = n
	return true
}
