package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var notifyCmd = &cobra.Command{
	Use:       "notify [on|off]",
	Short:     "Play a sound when the wait is over",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"on", "off"},
	Run: withApp(func(cmd *cobra.Command, args []string, s *session) {
		if len(args) == 0 {
			fmt.Printf("Sound on finish: %s\n", onOff(s.app.Preferences().NotifyOnComplete))
			return
		}

		var on bool
		switch strings.ToLower(args[0]) {
		case "on", "true", "yes":
			on = true
		case "off", "false", "no":
			on = false
		default:
			fmt.Printf("Error: expected on or off, got '%s'\n", args[0])
			return
		}

		if err := s.app.SetNotify(on); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🔔 Sound on finish: %s\n", onOff(on))
	}),
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
