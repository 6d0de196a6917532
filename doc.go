/*
Package trajqueue provides a bounded, fixed-capacity queue of
time-parameterized motion segments that presents itself to its caller as a
single continuous trajectory.

It is built for the inner sampling loop of a real-time controller. Each tick
the loop calls Next(): the queue advances its clock by a fixed step, discards
segments whose time has fully elapsed, and returns the position the actuator
should target now. When the queue runs dry it freezes its output at the last
scheduled target instead of producing a discontinuity or an error, so an
upstream planning underrun never glitches the actuator.

Key Features:

  - Static allocation: every queue owns exactly Capacity segment slots, so
    memory use and the worst-case cost of any single operation are fixed —
    no allocation or unbounded work ever happens on the tick path.

  - Hold on underrun: queries on an empty queue (or past the end of the
    scheduled content) return the end-boundary value of the most recently
    appended segment, updated on every Append.

  - Queue-as-segment: a Queue satisfies the same Trajectory / SpeedTrajectory
    contract it consumes, so queues compose — a queue can be appended as a
    segment of another queue.

  - Optional speed queries: velocity sampling can be disabled at
    construction, in which case SpeedAt returns ErrSpeedDisabled. Past the
    end of content, SpeedAt returns a zero velocity with the same shape as
    the held position, never a shape surprise.

Example: Driving an actuator

	// The filler is never played; it seeds the initial hold value and shape.
	q := trajqueue.New(
		trajqueue.Constant{Value: trajqueue.Vector{0}, Seconds: 0},
		trajqueue.WithTickIncrement(0.01), // 100 Hz loop
	)

	// The planner feeds motions as it produces them.
	q.Append(trajqueue.Ramp{From: trajqueue.Vector{0}, To: trajqueue.Vector{1}, Seconds: 2})

	// The control loop samples once per tick.
	for range ticker.C {
		target := q.Next()
		actuator.Set(target.(trajqueue.Vector))
	}

Example: Structured pose motion with velocity

	q := trajqueue.New(trajqueue.Constant{Value: trajqueue.Pose{}, Seconds: 0})
	q.Append(trajqueue.Line{
		From:    trajqueue.Pose{},
		To:      trajqueue.Pose{Position: r3.Vector{X: 0.5}},
		Seconds: 1.5,
	})

	pos := q.PositionAt(0)
	vel, err := q.SpeedAt(0) // constant (To−From)/Seconds while the Line plays

Example: Composing queues

	inner := trajqueue.New(filler)
	inner.Append(trajqueue.Ramp{From: trajqueue.Vector{0}, To: trajqueue.Vector{1}, Seconds: 1})

	outer := trajqueue.New(filler)
	outer.Append(inner) // the inner queue is just another segment

The queue is designed for a single-owner model: one control loop calls Next()
once per tick and otherwise issues read-only queries plus the occasional
Append. There is no internal locking; if multiple goroutines must share an
instance, serialize access externally.
*/
package trajqueue
