package services

import (
	"bytes"
	"context"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"bavatarinee.dev/internal/field"
)

func TestFieldService_FirstFrameReady(t *testing.T) {
	svc := NewFieldService(field.Options{Width: 64, Height: 32, Seed: 1}, nil)

	scene := svc.Scene()
	assert.Equal(t, 64, scene.Width)
	assert.Equal(t, 32, scene.Height)
	assert.NotEmpty(t, scene.Ops)
	assert.Equal(t, uint64(1), svc.Frames())
}

func TestFieldService_WritePNG(t *testing.T) {
	svc := NewFieldService(field.Options{Width: 40, Height: 30, Seed: 1}, nil)

	var first, second bytes.Buffer
	require.NoError(t, svc.WritePNG(&first))
	require.NoError(t, svc.WritePNG(&second))
	assert.Equal(t, first.Bytes(), second.Bytes(), "same frame is served from cache")

	img, err := png.Decode(&first)
	require.NoError(t, err)
	assert.Equal(t, 40, img.Bounds().Dx())
	assert.Equal(t, 30, img.Bounds().Dy())
}

func TestFieldService_Resize(t *testing.T) {
	svc := NewFieldService(field.Options{Width: 40, Height: 30, Seed: 1}, nil)

	scene := svc.Resize(100, 50)
	assert.Equal(t, 100, scene.Width)
	assert.Equal(t, 50, scene.Height)
}

func TestFieldService_StartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	svc := NewFieldService(field.Options{Width: 40, Height: 30, Seed: 1, FrameInterval: time.Millisecond}, nil)
	svc.Start(context.Background())
	svc.Start(context.Background())

	require.Eventually(t, func() bool { return svc.Frames() > 5 }, time.Second, time.Millisecond)
	svc.Stop()
}

func TestFieldService_StopWithoutStart(t *testing.T) {
	svc := NewFieldService(field.Options{Width: 10, Height: 10}, nil)
	svc.Stop()
}
