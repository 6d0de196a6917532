package trajqueue

import "github.com/golang/geo/r3"

// --- Values ---

// Value is the sample type trajectories produce. The queue treats values
// opaquely except for one capability: synthesizing a zero velocity with the
// same shape as the value, so held and live outputs never differ in shape.
type Value interface {
	// ZeroLike returns an all-zero value shaped like the receiver.
	ZeroLike() Value
}

// Vector is a plain numeric sample: one float per actuator channel.
type Vector []float64

// ZeroLike returns a zero vector with the same number of channels.
func (v Vector) ZeroLike() Value { return make(Vector, len(v)) }

// Pose is a structured 6-DOF sample with separate position and orientation
// channels. Positions are in metres; orientation is roll, pitch, yaw in
// radians. When a Pose is produced by a speed query, both channels are rates
// (m/s and rad/s).
type Pose struct {
	Position    r3.Vector
	Orientation r3.Vector
}

// ZeroLike returns a Pose with both channels zeroed.
func (p Pose) ZeroLike() Value { return Pose{} }
