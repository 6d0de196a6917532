package trajqueue

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// --- Constants, Errors and Options ---

// Capacity is the fixed number of segment slots in every Queue. The queue is
// statically sized and never grows, so the worst-case cost of any operation
// is bounded by this constant.
const Capacity = 10

// DefaultTickIncrement is the time step, in seconds, that Next advances the
// queue's clock by unless WithTickIncrement overrides it. It corresponds to a
// 100 Hz sampling loop.
const DefaultTickIncrement = 0.01

// ErrFull is the panic value raised by Append on a full queue. A full queue
// means the owning planner outran the control loop; silently dropping the
// segment would corrupt the motion, so the condition is treated as a
// programming error rather than a recoverable one.
var ErrFull = errors.New("trajqueue: append on full queue")

// ErrSpeedDisabled is returned by SpeedAt when the queue was built with
// WithSpeedQueries(false).
var ErrSpeedDisabled = errors.New("trajqueue: speed queries not enabled")

// options holds the configuration for a Queue.
type options struct {
	speedQueries bool
	tick         float64
	log          zerolog.Logger
}

// Option is a function that configures a Queue's options.
type Option func(*options)

// WithSpeedQueries enables or disables SpeedAt on the queue.
// Enabled by default.
func WithSpeedQueries(enabled bool) Option {
	return func(o *options) {
		o.speedQueries = enabled
	}
}

// WithTickIncrement sets the fixed time step applied per Next call.
// The default is DefaultTickIncrement.
func WithTickIncrement(dt float64) Option {
	return func(o *options) {
		o.tick = dt
	}
}

// WithLogger sets a logger for append and eviction events. Logging is off
// (zerolog.Nop) by default; per-tick queries are never logged.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) {
		o.log = l
	}
}

// --- Queue Implementation ---

// Queue is a bounded FIFO queue of trajectory segments that presents itself
// to its caller as a single continuous trajectory: it satisfies the same
// SpeedTrajectory contract it consumes, so a Queue can itself be appended to
// another Queue.
//
// A Queue is owned by exactly one control loop. It has no internal locking;
// all operations are plain calls that complete in time bounded by Capacity.
// If several goroutines must touch one instance, the owner serializes access
// externally.
type Queue struct {
	segments  [Capacity]Trajectory
	durations [Capacity]float64
	active    int
	elapsed   float64
	total     float64
	hold      Value
	opts      options
}

// New creates an empty Queue. filler is never played back; it pre-seeds every
// slot and the initial hold value (its end-boundary position), so queries on
// a queue that has never been fed already produce a sample of the caller's
// shape.
func New(filler Trajectory, opts ...Option) *Queue {
	cfg := options{
		speedQueries: true,
		tick:         DefaultTickIncrement,
		log:          zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	q := &Queue{opts: cfg}
	for i := range q.segments {
		q.segments[i] = filler
	}
	q.hold = filler.PositionAt(filler.Duration())
	return q
}

// Append places seg at the back of the queue and re-aims the hold value at
// seg's end-boundary position, so an underrun always freezes where the
// trajectory was last headed. Append panics with ErrFull when the queue
// already holds Capacity segments.
func (q *Queue) Append(seg Trajectory) {
	if q.active == Capacity {
		panic(ErrFull)
	}

	q.segments[q.active] = seg
	q.durations[q.active] = seg.Duration()
	q.active++
	q.hold = seg.PositionAt(seg.Duration())

	q.opts.log.Debug().
		Float64("duration", q.durations[q.active-1]).
		Int("active", q.active).
		Msg("segment appended")

	// A zero-duration segment, or elapsed time that accumulated oddly while
	// the queue sat empty, can make the new front slot immediately evictable.
	q.normalize()
}

// Next advances the internal clock by one tick, evicts whatever that
// consumed, and returns the sample the actuator should target now. This is
// the steady-state call a control loop makes once per tick.
func (q *Queue) Next() Value {
	q.elapsed += q.opts.tick
	q.normalize()
	return q.PositionAt(0)
}

// PositionAt returns the position t seconds from now, t >= 0. It never
// mutates the queue and never fails: a query past the remaining scheduled
// content, or on an empty queue, resolves to the hold value.
func (q *Queue) PositionAt(t float64) Value {
	slot, local, ok := q.locate(t)
	if !ok {
		return q.hold
	}
	return q.segments[slot].PositionAt(local)
}

// SpeedAt returns the velocity t seconds from now, t >= 0. It fails with
// ErrSpeedDisabled when the queue was built with WithSpeedQueries(false).
// Past the remaining scheduled content it returns a zero velocity shaped
// like the hold value, so held and live outputs never differ in shape.
func (q *Queue) SpeedAt(t float64) (Value, error) {
	if !q.opts.speedQueries {
		return nil, ErrSpeedDisabled
	}
	slot, local, ok := q.locate(t)
	if !ok {
		return q.hold.ZeroLike(), nil
	}
	seg, ok := q.segments[slot].(SpeedTrajectory)
	if !ok {
		return nil, fmt.Errorf("trajqueue: segment %T does not support speed queries", q.segments[slot])
	}
	return seg.SpeedAt(local)
}

// Empty reports whether no segments remain.
func (q *Queue) Empty() bool { return q.active == 0 }

// Len returns the number of live segments.
func (q *Queue) Len() int { return q.active }

// Cap returns the fixed slot capacity.
func (q *Queue) Cap() int { return Capacity }

// Duration returns the remaining scheduled span: the sum of the live
// segments' durations minus the time already consumed within the first. It
// shrinks as the queue is consumed, and is what an enclosing queue records
// when this queue is appended as a segment.
func (q *Queue) Duration() float64 { return q.total - q.elapsed }

// --- Internals ---

// locate maps an offset from "now" to the owning slot and the local time to
// query it at. Slot 0 is special: its local coordinate includes the
// already-elapsed offset, which is what lets point queries stay read-only
// between normalizations. An offset that lands exactly on a slot boundary
// resolves to the earlier slot's end.
func (q *Queue) locate(t float64) (slot int, local float64, ok bool) {
	if q.active == 0 || t >= q.total-q.elapsed {
		return 0, 0, false
	}
	local = q.elapsed + t
	for slot+1 < q.active && local > q.durations[slot] {
		local -= q.durations[slot]
		slot++
	}
	return slot, local, true
}

// normalize evicts segments whose full duration has been consumed. A segment
// is discarded exactly when elapsed has caught up to its span; eviction is
// strictly FIFO and never partial. Runs after every Next and Append so that
// elapsed always sits inside slot 0 (or at 0 when the queue is empty).
func (q *Queue) normalize() {
	evicted := 0
	for q.active > 0 && q.elapsed >= q.durations[0] {
		q.elapsed -= q.durations[0]
		for i := 1; i < q.active; i++ {
			q.segments[i-1] = q.segments[i]
			q.durations[i-1] = q.durations[i]
		}
		q.active--
		evicted++
	}
	if q.active == 0 {
		q.elapsed = 0
	}

	q.total = 0
	for i := 0; i < q.active; i++ {
		q.total += q.durations[i]
	}

	if evicted > 0 {
		q.opts.log.Debug().
			Int("evicted", evicted).
			Int("active", q.active).
			Msg("segments evicted")
	}
}
