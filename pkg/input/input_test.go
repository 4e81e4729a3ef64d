package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestState_DerivedIntents(t *testing.T) {
	tests := []struct {
		name  string
		in    State
		accel bool
		rev   bool
		brake bool
		turn  float64
	}{
		{"idle", State{}, false, false, false, 0},
		{"accelerate", State{Accelerate: true}, true, false, false, 0},
		{"reverse", State{Reverse: true}, false, true, false, 0},
		{"both throttles brake", State{Accelerate: true, Reverse: true}, false, false, true, 0},
		{"brake key", State{Brake: true}, false, false, true, 0},
		{"brake while accelerating", State{Accelerate: true, Brake: true}, true, false, true, 0},
		{"left", State{TurnLeft: true}, false, false, false, -1},
		{"right", State{TurnRight: true}, false, false, false, 1},
		{"both directions cancel", State{TurnLeft: true, TurnRight: true}, false, false, false, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.accel, tt.in.IsAccelerating())
			assert.Equal(t, tt.rev, tt.in.IsReversing())
			assert.Equal(t, tt.brake, tt.in.IsBraking())
			assert.Equal(t, tt.turn, tt.in.TurnDirection())
		})
	}
}

func TestMerge_IsLogicalOrPerField(t *testing.T) {
	got := Merge(
		State{Accelerate: true},
		State{TurnLeft: true},
		State{},
		State{TurnRight: true, Brake: true},
	)
	assert.Equal(t, State{Accelerate: true, Brake: true, TurnLeft: true, TurnRight: true}, got)
	assert.Equal(t, State{}, Merge())
}

func TestMulti_SkipsNilSources(t *testing.T) {
	m := Multi{
		SourceFunc(func() State { return State{Reverse: true} }),
		nil,
		SourceFunc(func() State { return State{TurnLeft: true} }),
	}
	assert.Equal(t, State{Reverse: true, TurnLeft: true}, m.Poll())
}

func TestLatch_ResetReleasesHeldControls(t *testing.T) {
	held := State{Accelerate: true, TurnLeft: true}
	l := NewLatch(SourceFunc(func() State { return held }))

	assert.Equal(t, held, l.Poll())

	l.Reset()
	assert.Equal(t, State{}, l.Poll(), "still held after reset")

	held = State{Accelerate: true, Brake: true}
	assert.Equal(t, State{Brake: true}, l.Poll(), "new presses pass, old ones stay released")

	held = State{Brake: true}
	l.Poll()
	held = State{Accelerate: true, Brake: true, TurnLeft: true}
	assert.Equal(t, held, l.Poll(), "pressed again after letting go")
}

func TestLatch_NilSource(t *testing.T) {
	l := NewLatch(nil)
	l.Reset()
	assert.Equal(t, State{}, l.Poll())
}
