package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bavatarinee.dev/internal/field"
	"bavatarinee.dev/internal/tui"
)

var (
	fieldSync   bool
	fieldSpring bool
)

var fieldCmd = &cobra.Command{
	Use:   "field",
	Short: "Show the particle field in the terminal",
	Long: `Renders the hero particle field with the custom cursor in the
terminal. When stdout is not a terminal a single frame is printed instead.`,
	Args: cobra.NoArgs,
	RunE: runField,
}

func init() {
	fieldCmd.Flags().BoolVar(&fieldSync, "sync", false, "sync the project grid and animate the counter")
	fieldCmd.Flags().BoolVar(&fieldSpring, "spring", false, "use a spring for the cursor follower")
}

func runField(cmd *cobra.Command, args []string) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		canvas := field.NewTermCanvas(80, 24)
		opts := fieldOptions()
		opts.Width, opts.Height = canvas.PixelSize()
		field.NewRenderer(canvas, opts).Frame()
		fmt.Fprintln(cmd.OutOrStdout(), canvas.View())
		return nil
	}

	opts := tui.Options{Field: fieldOptions(), Spring: fieldSpring}
	if cfg.Site != nil {
		opts.CursorEase = cfg.Site.CursorEase
	}
	if fieldSync {
		// Logging would tear the alternate screen.
		projectService, err := newProjectService(zap.NewNop())
		if err != nil {
			return err
		}
		opts.Syncer = projectService
	}

	p := tea.NewProgram(
		tui.New(cmd.Context(), opts),
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithContext(cmd.Context()),
	)
	_, err := p.Run()
	return err
}
