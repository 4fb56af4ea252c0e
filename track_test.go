package animcurve

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTrack(t *testing.T) *Track {
	t.Helper()

	x, err := NewLinear(K(0, 0), K(2, 4))
	require.NoError(t, err)
	y, err := NewStep(K(0, 1), K(1, 2), K(2, 3))
	require.NoError(t, err)

	tr := NewTrack()
	require.NoError(t, tr.AddChannel("x", x))
	require.NoError(t, tr.AddChannel("y", y))
	return tr
}

func TestTrack_AdvanceAllChannels(t *testing.T) {
	tr := buildTrack(t)

	tr.Advance(0.5)
	assert.Equal(t, 0.5, tr.Time())

	x, ok := tr.Value("x")
	require.True(t, ok)
	assert.InDelta(t, 1.0, x, 1e-15)

	y, ok := tr.Value("y")
	require.True(t, ok)
	assert.Equal(t, 1.0, y)

	tr.Advance(1.0)
	vals := tr.Values(nil)
	assert.InDelta(t, 3.0, vals["x"], 1e-15)
	assert.Equal(t, 2.0, vals["y"])
}

func TestTrack_MatchesStandaloneIterators(t *testing.T) {
	c, err := NewCatmullRom(K(0, 0), K(1, 2), K(2, -1), K(3, 1))
	require.NoError(t, err)

	tr := NewTrack()
	require.NoError(t, tr.AddChannel("c", c))
	standalone := NewIterator(c)

	for _, dt := range []float64{0.3, 0.3, 0.5, -0.7, 1.9, -0.1, 2.0} {
		tr.Advance(dt)
		standalone.Advance(dt)

		v, ok := tr.Value("c")
		require.True(t, ok)
		assert.Equal(t, standalone.Evaluate(), v, "after dt=%v", dt)
	}
}

func TestTrack_DuplicateChannel(t *testing.T) {
	tr := buildTrack(t)

	c, err := NewLinear(K(0, 0), K(1, 1))
	require.NoError(t, err)
	assert.ErrorIs(t, tr.AddChannel("x", c), ErrDuplicateChannel)
}

func TestTrack_UnknownChannel(t *testing.T) {
	tr := buildTrack(t)

	v, ok := tr.Value("missing")
	assert.False(t, ok)
	assert.Zero(t, v)
}

func TestTrack_Seek(t *testing.T) {
	tr := buildTrack(t)

	tr.Advance(1.75)
	tr.Seek(0.5)
	assert.Equal(t, 0.5, tr.Time())

	x, _ := tr.Value("x")
	assert.InDelta(t, 1.0, x, 1e-15)
}

func TestTrack_ChannelOrder(t *testing.T) {
	tr := buildTrack(t)
	assert.Equal(t, []string{"x", "y"}, tr.Channels())

	// AddChannel seeks new channels to the current clock.
	tr.Advance(1)
	c, err := NewLinear(K(0, 0), K(2, 2))
	require.NoError(t, err)
	require.NoError(t, tr.AddChannel("z", c))
	assert.Equal(t, []string{"x", "y", "z"}, tr.Channels())

	z, ok := tr.Value("z")
	require.True(t, ok)
	assert.InDelta(t, 1.0, z, 1e-15)
}
