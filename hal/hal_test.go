//go:build !tinygo

package hal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewLogger(t *testing.T) {
	l, err := NewLogger("debug")
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zap.DebugLevel))

	l, err = NewLogger("warn")
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zap.InfoLevel))

	_, err = NewLogger("chatty")
	assert.Error(t, err)
}

func TestHostDefaults(t *testing.T) {
	h := New(Options{})
	fb := h.Display().Framebuffer()
	assert.Equal(t, 320, fb.Width())
	assert.Equal(t, 240, fb.Height())
	assert.Equal(t, 640, fb.StrideBytes())
	assert.Len(t, fb.Buffer(), 640*240)
	assert.Equal(t, PixelFormatRGB565, fb.Format())
	assert.NotNil(t, h.Logger())
	assert.NotNil(t, h.Input().Keyboard().Events())
}

func TestFramebufferClearAndExpand(t *testing.T) {
	fb := newHostFramebuffer(2, 1)
	fb.ClearRGB(0xFF, 0x00, 0xFF)

	snap := make([]byte, len(fb.buf))
	fb.snapshotRGB565(snap)
	assert.Equal(t, []byte{0x1F, 0xF8, 0x1F, 0xF8}, snap)

	rgba := make([]byte, 8)
	expandRGBA(rgba, snap)
	assert.Equal(t, []byte{0xFF, 0, 0xFF, 0xFF, 0xFF, 0, 0xFF, 0xFF}, rgba)
}

func TestRunHeadlessStopsAfterTicks(t *testing.T) {
	steps := 0
	err := RunHeadless(context.Background(), Options{Width: 8, Height: 8}, func(h HAL) func() error {
		require.Equal(t, 8, h.Display().Framebuffer().Width())
		return func() error {
			steps++
			return nil
		}
	}, HeadlessConfig{Enabled: true, Hz: 1000, Ticks: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, steps)
}

func TestRunHeadlessPropagatesStepError(t *testing.T) {
	boom := errors.New("boom")
	err := RunHeadless(context.Background(), Options{}, func(HAL) func() error {
		return func() error { return boom }
	}, HeadlessConfig{Hz: 1000})
	assert.ErrorIs(t, err, boom)
}

func TestRunHeadlessCanceled(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := RunHeadless(ctx, Options{}, func(HAL) func() error { return nil }, HeadlessConfig{Hz: 10})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestHostTimeTicks(t *testing.T) {
	ht := newHostTime()
	ht.step(1)
	select {
	case seq := <-ht.Ticks():
		assert.Equal(t, uint64(1), seq)
	default:
		t.Fatalf("expected a tick after the first step")
	}
}

func TestHostTimeAccumulates(t *testing.T) {
	clock := time.Unix(100, 0)
	ht := newHostTime()
	ht.now = func() time.Time { return clock }

	drain := func() int {
		n := 0
		for {
			select {
			case <-ht.Ticks():
				n++
			default:
				return n
			}
		}
	}

	ht.step(1)
	assert.Equal(t, 1, drain())

	clock = clock.Add(3500 * time.Microsecond)
	ht.step(1)
	assert.Equal(t, 3, drain())

	clock = clock.Add(600 * time.Microsecond)
	ht.step(1)
	assert.Equal(t, 1, drain(), "remainders carry over")
}
