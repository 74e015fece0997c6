package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"bavatarinee.dev/internal/field"
)

// FieldService owns the background particle field and its latest frame
type FieldService struct {
	renderer *field.Renderer
	recorder *field.Recorder
	logger   *zap.Logger

	mu       sync.Mutex
	started  bool
	pngFrame uint64 // frame the cached PNG was rasterised from
	png      []byte
	raster   *field.ImageCanvas
}

// NewFieldService creates a field and paints its first frame
func NewFieldService(opts field.Options, logger *zap.Logger) *FieldService {
	if logger == nil {
		logger = zap.NewNop()
	}
	rec := field.NewRecorder()
	r := field.NewRenderer(rec, opts)
	r.OnFrame(rec.Commit)
	r.Frame()

	return &FieldService{
		renderer: r,
		recorder: rec,
		logger:   logger,
		raster:   field.NewImageCanvas(opts.Width, opts.Height),
	}
}

// Start runs the animation loop in the background until ctx is cancelled
// or Stop is called. Starting twice is a no-op.
func (s *FieldService) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true

	w, h := s.renderer.Size()
	s.logger.Info("Particle field started", zap.Int("width", w), zap.Int("height", h))
	go s.renderer.Run(ctx)
}

// Stop halts the loop and waits for it to exit
func (s *FieldService) Stop() {
	s.mu.Lock()
	started := s.started
	s.mu.Unlock()

	s.renderer.Stop()
	if started {
		<-s.renderer.Done()
		s.logger.Info("Particle field stopped", zap.Uint64("frames", s.renderer.Frames()))
	}
}

// Scene returns the latest display list
func (s *FieldService) Scene() field.Scene {
	return s.recorder.Scene()
}

// Resize changes the field dimensions and reseeds the pool
func (s *FieldService) Resize(width, height int) field.Scene {
	s.renderer.Resize(width, height)
	s.renderer.Frame()
	s.logger.Debug("Particle field resized", zap.Int("width", width), zap.Int("height", height))
	return s.recorder.Scene()
}

// WritePNG rasterises the latest frame. The encoded image is cached until
// the next frame is painted.
func (s *FieldService) WritePNG(w io.Writer) error {
	frame := s.renderer.Frames()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.png == nil || s.pngFrame != frame {
		field.Replay(s.recorder.Scene(), s.raster)

		var buf bytes.Buffer
		if err := s.raster.EncodePNG(&buf); err != nil {
			return fmt.Errorf("encoding frame: %w", err)
		}
		s.png = buf.Bytes()
		s.pngFrame = frame
	}

	_, err := w.Write(s.png)
	return err
}

// Frames returns the number of frames painted
func (s *FieldService) Frames() uint64 {
	return s.renderer.Frames()
}
