package app

import "dodgebit/hal"

// fatal reports err, turns every LED off and halts.
func fatal(h hal.HAL, err error) {
	if h == nil {
		select {}
	}
	if l := h.Logger(); l != nil {
		l.WriteLineString("dodgebit fatal: " + err.Error())
	}
	if m := h.Matrix(); m != nil {
		_ = m.Idle()
	}
	select {}
}
