package animcurve

import (
	"fmt"
	"slices"
)

// Track drives a set of named curves with one shared clock, the way an
// animation player advances every channel of a clip each tick. Channels keep
// independent span caches, so advancing a track is O(1) per channel while
// playback is sequential.
//
// A Track is single-threaded, like the iterators it owns.
type Track struct {
	time     float64
	names    []string
	channels map[string]*Iterator
}

// NewTrack creates an empty track with its clock at 0.
func NewTrack() *Track {
	return &Track{
		channels: make(map[string]*Iterator),
	}
}

// AddChannel registers a named curve, seeked to the track's current clock.
// Channel names must be unique.
func (tr *Track) AddChannel(name string, c *Curve) error {
	if _, ok := tr.channels[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateChannel, name)
	}

	tr.channels[name] = NewIteratorAt(c, tr.time)
	tr.names = append(tr.names, name)

	return nil
}

// Advance moves the track clock by dt and every channel with it.
func (tr *Track) Advance(dt float64) {
	tr.time += dt
	for _, it := range tr.channels {
		it.Advance(dt)
	}
}

// Seek resets the track clock and every channel to the absolute time t.
func (tr *Track) Seek(t float64) {
	tr.time = t
	for _, it := range tr.channels {
		it.Reset(t)
	}
}

// Value samples one channel at the current clock. The second result is false
// when no channel has that name.
func (tr *Track) Value(name string) (float64, bool) {
	it, ok := tr.channels[name]
	if !ok {
		return 0, false
	}

	return it.Evaluate(), true
}

// Values samples every channel at the current clock into dst, allocating it
// when nil, and returns it.
func (tr *Track) Values(dst map[string]float64) map[string]float64 {
	if dst == nil {
		dst = make(map[string]float64, len(tr.channels))
	}

	for name, it := range tr.channels {
		dst[name] = it.Evaluate()
	}

	return dst
}

// Time returns the track clock.
func (tr *Track) Time() float64 {
	return tr.time
}

// Channels returns the channel names in registration order.
func (tr *Track) Channels() []string {
	return slices.Clone(tr.names)
}
