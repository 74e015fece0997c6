package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"bavatarinee.dev/internal/models"
)

var (
	numberStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7d9b76")).Width(4)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	categoryStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6f7d6b"))
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#c98b7a"))
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync the project grid once and print the cards",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectService, err := newProjectService(zap.NewNop())
		if err != nil {
			return err
		}

		state, err := projectService.Sync(cmd.Context())
		printGrid(cmd.OutOrStdout(), state)
		if err != nil {
			logger.Debug("Sync failed", zap.Error(err))
		}
		return err
	},
}

func printGrid(w io.Writer, state models.ProjectList) {
	if state.Failed {
		fmt.Fprintln(w, noticeStyle.Render("Could not load live GitHub data right now."))
		fmt.Fprintf(w, "View all projects on GitHub: %s\n", state.ProfileURL)
		fmt.Fprintln(w, state.Status)
		return
	}

	for _, p := range state.Projects {
		fmt.Fprintf(w, "%s%s  %s  %s\n",
			numberStyle.Render(p.Number),
			titleStyle.Render(p.Title),
			categoryStyle.Render(p.Category),
			p.Stars)
		fmt.Fprintf(w, "    %s\n    %s\n", p.Description, p.URL)
	}
	fmt.Fprintln(w, state.Status)
}
