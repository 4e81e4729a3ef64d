package input

// State is a snapshot of the driving intents for a single tick.
// Values must stay stable for the duration of that tick.
type State struct {
	Accelerate bool
	Reverse    bool
	Brake      bool
	TurnLeft   bool
	TurnRight  bool
}

// IsAccelerating reports forward throttle without reverse held.
func (s State) IsAccelerating() bool {
	return s.Accelerate && !s.Reverse
}

// IsReversing reports reverse throttle without forward held.
func (s State) IsReversing() bool {
	return s.Reverse && !s.Accelerate
}

// IsBraking is true for the brake key, or when both throttles are held.
func (s State) IsBraking() bool {
	return s.Brake || (s.Accelerate && s.Reverse)
}

// TurnDirection returns -1 for left, +1 for right and 0 for none or both.
func (s State) TurnDirection() float64 {
	switch {
	case s.TurnLeft && !s.TurnRight:
		return -1
	case s.TurnRight && !s.TurnLeft:
		return 1
	}
	return 0
}

// Source is anything able to produce an input snapshot once per tick.
type Source interface {
	Poll() State
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() State

func (f SourceFunc) Poll() State {
	return f()
}

// Merge combines snapshots with a logical OR per field, so a key held on
// any device counts as held.
func Merge(states ...State) State {
	var out State
	for _, s := range states {
		out.Accelerate = out.Accelerate || s.Accelerate
		out.Reverse = out.Reverse || s.Reverse
		out.Brake = out.Brake || s.Brake
		out.TurnLeft = out.TurnLeft || s.TurnLeft
		out.TurnRight = out.TurnRight || s.TurnRight
	}
	return out
}

// Multi polls several sources and merges them with Merge.
type Multi []Source

func (m Multi) Poll() State {
	states := make([]State, 0, len(m))
	for _, src := range m {
		if src == nil {
			continue
		}
		states = append(states, src.Poll())
	}
	return Merge(states...)
}

// Resetter is implemented by sources that can drop whatever is held.
type Resetter interface {
	Reset()
}

// Latch wraps a Source so Reset releases every control. A control held
// through a Reset stays released until the device lets go of it once.
type Latch struct {
	src     Source
	blocked State
}

// NewLatch wraps src.
func NewLatch(src Source) *Latch {
	return &Latch{src: src}
}

func (l *Latch) Poll() State {
	if l.src == nil {
		return State{}
	}
	s := l.src.Poll()
	l.blocked = State{
		Accelerate: l.blocked.Accelerate && s.Accelerate,
		Reverse:    l.blocked.Reverse && s.Reverse,
		Brake:      l.blocked.Brake && s.Brake,
		TurnLeft:   l.blocked.TurnLeft && s.TurnLeft,
		TurnRight:  l.blocked.TurnRight && s.TurnRight,
	}
	return State{
		Accelerate: s.Accelerate && !l.blocked.Accelerate,
		Reverse:    s.Reverse && !l.blocked.Reverse,
		Brake:      s.Brake && !l.blocked.Brake,
		TurnLeft:   s.TurnLeft && !l.blocked.TurnLeft,
		TurnRight:  s.TurnRight && !l.blocked.TurnRight,
	}
}

// Reset releases everything currently held.
func (l *Latch) Reset() {
	l.blocked = State{Accelerate: true, Reverse: true, Brake: true, TurnLeft: true, TurnRight: true}
}
