package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bavatarinee.dev/internal/field"
)

var generateFrames int

var generateCmd = &cobra.Command{
	Use:   "generate <output-dir>",
	Short: "Render particle field frames to PNG files",
	Args:  cobra.ExactArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().IntVarP(&generateFrames, "frames", "n", 60, "number of frames to render")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	outputDir := args[0]
	if generateFrames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", generateFrames)
	}

	// Ensure output directory exists
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	opts := fieldOptions()
	canvas := field.NewImageCanvas(opts.Width, opts.Height)
	renderer := field.NewRenderer(canvas, opts)

	for i := 0; i < generateFrames; i++ {
		renderer.Frame()

		path := filepath.Join(outputDir, fmt.Sprintf("frame_%04d.png", i))
		if err := writePNG(path, canvas); err != nil {
			return err
		}
	}

	logger.Info("Frames written",
		zap.String("dir", outputDir),
		zap.Int("frames", generateFrames),
		zap.Int("width", opts.Width),
		zap.Int("height", opts.Height))
	return nil
}

func writePNG(path string, canvas *field.ImageCanvas) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := canvas.EncodePNG(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
