package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/sliicy/meatdairy/internal/parser"
	"github.com/sliicy/meatdairy/internal/timer"
)

var selectedStyle = lipgloss.NewStyle().Bold(true)

var presetsCmd = &cobra.Command{
	Use:     "presets",
	Aliases: []string{"ls", "minhagim"},
	Short:   "List the waiting times",
	Args:    cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, s *session) {
		selected := s.app.Preferences().SelectedPresetIndex

		fmt.Printf("%-3s %-3s %-24s %-9s %s\n", "", "#", "MINHAG", "WAIT", "CUSTOM")
		fmt.Println(strings.Repeat("-", 72))

		for i, p := range s.app.Table().All() {
			if p.IsPlaceholder() {
				continue
			}
			marker := ""
			if i == selected {
				marker = "▸"
			}
			line := fmt.Sprintf("%-3s %-3d %-24s %-9s %s", marker, i, p.Label, timer.FormatRemaining(p.Duration), p.Custom)
			if i == selected {
				line = selectedStyle.Render(line)
			}
			fmt.Println(line)
		}

		if s.app.SelectedPreset().IsPlaceholder() {
			fmt.Println("\nNo minhag selected yet. Use 'meatdairy select <preset>'.")
		}
	}),
}

var selectCmd = &cobra.Command{
	Use:   "select <preset>",
	Short: "Choose your minhag",
	Long: `Choose the waiting time used by 'meatdairy start'.

The preset can be an index, a label, or a duration.

Examples:
  meatdairy select 1
  meatdairy select "3 Hours"
  meatdairy select 5h31m`,
	Args: cobra.MinimumNArgs(1),
	Run: withApp(func(cmd *cobra.Command, args []string, s *session) {
		index, err := parser.ResolvePreset(s.app.Table(), strings.Join(args, " "))
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		if err := s.app.SelectPreset(index); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("✅ Selected %s\n", s.app.SelectedPreset().Label)
	}),
}
