package hal

import (
	"testing"
	"time"
)

func TestSignalPinPulseTrain(t *testing.T) {
	now := time.Unix(0, 0)
	clock := func() time.Time { return now }

	// Shaped like an autoplay button: released most of the period, held
	// for the last 100ms.
	pin := newSignalPinWithClock("BTNA", 1300*time.Millisecond, 1200*time.Millisecond, clock)
	if pin == nil {
		t.Fatal("expected pin")
	}
	if err := pin.Configure(GPIOModeInput, GPIOPullNone); err != nil {
		t.Fatalf("Configure: %v", err)
	}

	cases := []struct {
		at   time.Duration
		want bool
	}{
		{0, true},
		{1199 * time.Millisecond, true},
		{1250 * time.Millisecond, false},
		{1300 * time.Millisecond, true},
		{2550 * time.Millisecond, false},
	}
	for _, c := range cases {
		now = time.Unix(0, 0).Add(c.at)
		level, err := pin.Read()
		if err != nil {
			t.Fatalf("Read at %v: %v", c.at, err)
		}
		if level != c.want {
			t.Fatalf("Read at %v = %v, want %v", c.at, level, c.want)
		}
	}
}

func TestSignalPinInputOnly(t *testing.T) {
	pin := newSignalPinWithClock("SIG", time.Second, time.Second/2, time.Now)
	if err := pin.Configure(GPIOModeOutput, GPIOPullNone); err == nil {
		t.Fatal("output mode accepted")
	}
	if err := pin.Configure(GPIOModeInput, GPIOPullUp); err == nil {
		t.Fatal("pull-up accepted")
	}
	if err := pin.Write(true); err == nil {
		t.Fatal("Write accepted")
	}
	if newSignalPinWithClock(" ", time.Second, 0, nil) != nil {
		t.Fatal("blank name accepted")
	}
}
