package trajqueue

// --- Interfaces ---

// Trajectory is the capability every queued segment must satisfy. All times
// are in seconds; t is a local offset into the segment, valid on
// [0, Duration()]. Behavior outside that range is the segment's own
// responsibility — the queue never queries outside it.
type Trajectory interface {
	// Duration returns the total time span the segment covers. Must be
	// nonnegative.
	Duration() float64

	// PositionAt returns the sample at local offset t.
	PositionAt(t float64) Value
}

// SpeedTrajectory is an optional capability for segments that can also report
// velocity. The error return exists so that a composed Queue (which can have
// speed queries disabled) satisfies the same contract it consumes; leaf
// segments simply return a nil error.
type SpeedTrajectory interface {
	Trajectory

	// SpeedAt returns the velocity at local offset t.
	SpeedAt(t float64) (Value, error)
}

var (
	_ SpeedTrajectory = Line{}
	_ SpeedTrajectory = Ramp{}
	_ SpeedTrajectory = Constant{}
	_ SpeedTrajectory = (*Queue)(nil)
)

// --- Built-in Segments ---

// Line moves both pose channels in a straight line from From to To over
// Seconds. Speed is constant. A zero-duration Line reports To and zero speed.
type Line struct {
	From    Pose
	To      Pose
	Seconds float64
}

// Duration returns the configured time span.
func (l Line) Duration() float64 { return l.Seconds }

// PositionAt interpolates both channels linearly.
func (l Line) PositionAt(t float64) Value {
	if l.Seconds <= 0 {
		return l.To
	}
	f := t / l.Seconds
	return Pose{
		Position:    l.From.Position.Add(l.To.Position.Sub(l.From.Position).Mul(f)),
		Orientation: l.From.Orientation.Add(l.To.Orientation.Sub(l.From.Orientation).Mul(f)),
	}
}

// SpeedAt returns the constant rate (To−From)/Seconds.
func (l Line) SpeedAt(float64) (Value, error) {
	if l.Seconds <= 0 {
		return Pose{}, nil
	}
	return Pose{
		Position:    l.To.Position.Sub(l.From.Position).Mul(1 / l.Seconds),
		Orientation: l.To.Orientation.Sub(l.From.Orientation).Mul(1 / l.Seconds),
	}, nil
}

// Ramp moves numeric channels elementwise from From to To over Seconds.
// From and To must have the same length. Speed is constant. A zero-duration
// Ramp reports To and zero speed.
type Ramp struct {
	From    Vector
	To      Vector
	Seconds float64
}

// Duration returns the configured time span.
func (r Ramp) Duration() float64 { return r.Seconds }

// PositionAt interpolates each channel linearly.
func (r Ramp) PositionAt(t float64) Value {
	if r.Seconds <= 0 {
		return r.To
	}
	f := t / r.Seconds
	out := make(Vector, len(r.From))
	for i := range out {
		out[i] = r.From[i] + (r.To[i]-r.From[i])*f
	}
	return out
}

// SpeedAt returns the constant rate (To−From)/Seconds per channel.
func (r Ramp) SpeedAt(float64) (Value, error) {
	out := make(Vector, len(r.From))
	if r.Seconds <= 0 {
		return out, nil
	}
	for i := range out {
		out[i] = (r.To[i] - r.From[i]) / r.Seconds
	}
	return out, nil
}

// Constant holds a single value for Seconds. Speed is zero with the value's
// shape. Useful as a dwell between motions and as the filler segment passed
// to New.
type Constant struct {
	Value   Value
	Seconds float64
}

// Duration returns the configured time span.
func (c Constant) Duration() float64 { return c.Seconds }

// PositionAt returns the held value regardless of t.
func (c Constant) PositionAt(float64) Value { return c.Value }

// SpeedAt returns a zero velocity shaped like the held value.
func (c Constant) SpeedAt(float64) (Value, error) { return c.Value.ZeroLike(), nil }
