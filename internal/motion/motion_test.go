package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionConverges(t *testing.T) {
	tr := Default()
	tr.Set("x", 0, 100)
	require.False(t, tr.Done())

	frames := 0
	for tr.Advance(time.Second/60) && frames < 1000 {
		frames++
	}

	v, ok := tr.Value("x")
	require.True(t, ok)
	assert.Equal(t, 100.0, v)
	assert.True(t, tr.Done())
	assert.LessOrEqual(t, frames, int(maxDuration/(time.Second/60))+1)
}

func TestTransitionMovesMonotonically(t *testing.T) {
	tr := Default()
	tr.Set("x", 0, 10)

	last := 0.0
	for tr.Advance(time.Second / 60) {
		v, _ := tr.Value("x")
		assert.GreaterOrEqual(t, v, last)
		assert.LessOrEqual(t, v, 10.0+1e-9)
		last = v
	}
}

func TestPartialFrameIsAccumulated(t *testing.T) {
	tr := Default()
	tr.Set("x", 0, 1)

	tr.Advance(time.Millisecond)
	v, _ := tr.Value("x")
	assert.Equal(t, 0.0, v, "no full frame elapsed yet")

	tr.Advance(20 * time.Millisecond)
	v, _ = tr.Value("x")
	assert.Greater(t, v, 0.0)
}

func TestRetargetKeepsPosition(t *testing.T) {
	tr := Default()
	tr.Set("x", 0, 10)
	tr.Advance(50 * time.Millisecond)
	mid, _ := tr.Value("x")

	tr.Set("x", 999, 20)
	v, _ := tr.Value("x")
	assert.Equal(t, mid, v)
	target, _ := tr.Target("x")
	assert.Equal(t, 20.0, target)
}

func TestFinishAndClear(t *testing.T) {
	tr := Default()
	tr.Set("a", 0, 1)
	tr.Set("b", 5, -5)
	assert.Equal(t, []string{"a", "b"}, tr.Names())

	tr.Finish()
	assert.True(t, tr.Done())
	b, _ := tr.Value("b")
	assert.Equal(t, -5.0, b)
	assert.False(t, tr.Advance(time.Second))

	tr.Clear()
	_, ok := tr.Value("a")
	assert.False(t, ok)
	assert.True(t, tr.Done())
}

func TestRemove(t *testing.T) {
	tr := Default()
	tr.Set("a", 0, 1)
	tr.Set("b", 0, 1)
	tr.Remove("a")
	assert.Equal(t, []string{"b"}, tr.Names())
	tr.Remove("b")
	assert.True(t, tr.Done())
}
