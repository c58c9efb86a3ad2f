package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sliicy/meatdairy/internal/lookup"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup",
	Short: "Read about the waiting customs in your browser",
	Args:  cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, s *session) {
		l := lookup.New(s.cfg.LookupURL)
		if err := l.Open(); err != nil {
			fmt.Printf("Error: %v\n", err)
			fmt.Printf("Open it yourself: %s\n", l.URL)
			return
		}
		fmt.Printf("🔎 Opened %s\n", l.URL)
	}),
}
