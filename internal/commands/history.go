package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sliicy/meatdairy/internal/db"
	"github.com/sliicy/meatdairy/internal/models"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past countdowns",
	Args:  cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, s *session) {
		limit, _ := cmd.Flags().GetInt("limit")

		runs, err := db.RecentRuns(limit)
		if err != nil {
			fmt.Printf("Error fetching history: %v\n", err)
			return
		}
		if len(runs) == 0 {
			fmt.Println("No countdowns yet. Use 'meatdairy start' after your next meat meal.")
			return
		}

		fmt.Printf("%-17s %-24s %-10s %s\n", "STARTED", "MINHAG", "OUTCOME", "WAITED")
		fmt.Println(strings.Repeat("-", 64))

		for _, run := range runs {
			outcome := "✅ done"
			if run.Outcome == models.OutcomeCancelled {
				outcome = "⏹️  stopped"
			}
			label := run.PresetLabel
			if len(label) > 22 {
				label = label[:19] + "..."
			}
			fmt.Printf("%-17s %-24s %-10s %s\n",
				run.StartedAt.Local().Format("Jan 02 03:04 PM"),
				label,
				outcome,
				formatDuration(run.Waited()))
		}
	}),
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "Number of countdowns to show")
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}
