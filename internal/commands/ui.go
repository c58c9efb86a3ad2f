package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sliicy/meatdairy/internal/lookup"
	"github.com/sliicy/meatdairy/internal/timer"
	"github.com/sliicy/meatdairy/internal/tui"
)

var uiCmd = &cobra.Command{
	Use:   "ui",
	Short: "Open the interactive countdown",
	Args:  cobra.NoArgs,
	Run:   withApp(runUI),
}

func runUI(cmd *cobra.Command, args []string, s *session) {
	opts := tui.Options{
		Banner:  s.banner,
		Lookup:  lookup.New(s.cfg.LookupURL),
		Locale:  timer.DetectLocale(s.cfg.Locale),
		Animate: !s.cfg.UI.ReduceMotion,
	}
	if err := tui.RunTimerTUI(s.app, opts); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}
