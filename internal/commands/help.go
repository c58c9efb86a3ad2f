package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help",
	Short: "Show comprehensive help for meatdairy",
	Long:  `Display detailed help for all meatdairy commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		showCustomHelp()
	},
}

func showCustomHelp() {
	fmt.Print(`
🥩 ▸ 🥛  meatdairy - the wait between meat and dairy

COMMANDS:

  (no command), ui        Open the interactive countdown

    Keys:
      ↑/↓ or k/j    Choose your minhag (locked while waiting)
      space/enter   Start, stop, or clear a finished countdown
      n             Toggle the sound on finish
      l             Read about the customs in your browser
      ?             Show all keys
      esc/q         Leave (the countdown keeps running)

  start [preset]          Start waiting, optionally picking a minhag first
    --no-ui               Start without the interactive countdown

    Preset forms:
      3             Index from 'meatdairy presets'
      "3 Hours"     Label
      5h31m         Duration (also "90 minutes", "6 hours")

  stop                    Cancel the countdown
  status                  Show the countdown
  watch                   Stay attached and alert when dairy is fine

  presets                 List the waiting times
  select <preset>         Choose your minhag
  notify [on|off]         Play a sound when the wait is over
  history                 Show past countdowns
    -n, --limit           Number of countdowns to show (default 10)
  lookup                  Read about the waiting customs in your browser

  version                 Print the version
  help                    Show this help

GLOBAL FLAGS:

  --config <file>         Settings file (default ~/.meatdairy/config.yaml)
  --db <file>             Database file

SETTINGS (config.yaml):

  database.path           Database file
  log.path, log.level     Log file and level (debug|info|warn|error)
  locale                  Language for messages (default from LANG)
  lookup_url              Page opened by 'lookup' and the l key
  notifications.desktop   Desktop notifications (default true)
  notifications.icon      Icon for desktop notifications
  notifications.vibration Vibration pattern, e.g. ["0s", "3s"]
  notifications.banner_ttl  How long a finish banner stays on screen
  ui.reduce_motion        Turn off the headline animation

`)
}
