package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sliicy/meatdairy/internal/app"
	"github.com/sliicy/meatdairy/internal/notify"
	"github.com/sliicy/meatdairy/internal/parser"
	"github.com/sliicy/meatdairy/internal/timer"
)

var startCmd = &cobra.Command{
	Use:   "start [preset]",
	Short: "Start waiting",
	Long: `Start the countdown for the selected minhag, or pick one on the way.
Opens the interactive countdown by default, use --no-ui to just start it.

The preset can be an index, a label, or a duration from 'meatdairy presets'.

Examples:
  meatdairy start              # Start the selected minhag
  meatdairy start 6h           # Select "6 Hours" and start
  meatdairy start 3 --no-ui    # Select "3 Hours" and return to the shell`,
	Run: withApp(func(cmd *cobra.Command, args []string, s *session) {
		a := s.app

		// A finished countdown has been seen by now; clear it so a new one can begin.
		if a.State().Status == timer.StatusFinished {
			a.Acknowledge()
		}

		var (
			state timer.State
			err   error
		)
		if len(args) > 0 {
			index, perr := parser.ResolvePreset(a.Table(), strings.Join(args, " "))
			if perr != nil {
				fmt.Printf("Error: %v\n", perr)
				return
			}
			if running := a.State(); running.Status == timer.StatusRunning && running.PresetIndex != index {
				fmt.Printf("Error: %v\n", app.ErrRunning)
				return
			}
			state, err = a.StartPreset(index)
		} else {
			state, err = a.Start()
		}
		if errors.Is(err, timer.ErrNoPreset) {
			fmt.Println("Error: choose a preset first. Use 'meatdairy presets' to see them and 'meatdairy select <preset>' to pick one.")
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if noUI {
			fmt.Printf("⏳ Waiting %s\n", state.Preset.Label)
			printRunning(state)
			return
		}
		runUI(cmd, args, s)
	}),
}

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Cancel the countdown",
	Args:  cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, s *session) {
		state := s.app.State()
		switch state.Status {
		case timer.StatusRunning:
			s.app.Stop()
			fmt.Printf("⏹️  Stopped waiting %s\n", state.Preset.Label)
			fmt.Printf("Waited: %s of %s\n", formatDuration(state.EndsAt.Sub(state.StartedAt)-state.Remaining), formatDuration(state.Preset.Duration))
		case timer.StatusFinished:
			s.app.Acknowledge()
			fmt.Println("Cleared the finished countdown")
		default:
			fmt.Println("No countdown is running")
		}
	}),
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the countdown",
	Args:  cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, s *session) {
		state := s.app.State()
		switch state.Status {
		case timer.StatusRunning:
			fmt.Printf("⏳ Waiting %s\n", state.Preset.Label)
			printRunning(state)
		case timer.StatusFinished:
			fmt.Printf("🥛 %s\n", notify.TitleDairyNow)
			fmt.Printf("%s elapsed since %s.\n", timer.Pluralize(state.Preset.Label, timer.DetectLocale(s.cfg.Locale)), timer.FormatClockTime(state.StartedAt))
		default:
			fmt.Println("No countdown is running")
			if p := s.app.SelectedPreset(); !p.IsPlaceholder() {
				fmt.Printf("Selected minhag: %s\n", p.Label)
			} else {
				fmt.Println("No minhag selected yet. Use 'meatdairy select <preset>'.")
			}
		}
	}),
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Wait in the terminal and alert when dairy is fine",
	Long: `Stay attached to the running countdown, printing the time left, and raise the
completion alert when it reaches zero. Ctrl+C detaches without stopping the countdown.`,
	Args: cobra.NoArgs,
	Run: withApp(func(cmd *cobra.Command, args []string, s *session) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		s.app.OnUpdate(func(state timer.State) {
			if state.Status == timer.StatusRunning {
				fmt.Printf("\r⏳ %s left · dairy at %s ", state.RemainingText(), timer.FormatClockTime(state.EndsAt))
			}
		})
		defer s.app.OnUpdate(nil)

		state, err := s.app.Wait(ctx)
		fmt.Println()
		switch {
		case errors.Is(err, app.ErrNotRunning):
			fmt.Println("No countdown is running. Use 'meatdairy start' first.")
		case errors.Is(err, context.Canceled):
			fmt.Println("Detached. The countdown keeps running.")
		case err != nil:
			fmt.Printf("Error: %v\n", err)
		case state.Status == timer.StatusFinished:
			fmt.Printf("🥛 %s\n", notify.TitleDairyNow)
			if alert, ok := s.banner.Current(); ok && alert.Body != "" {
				fmt.Println(alert.Body)
			}
		default:
			fmt.Println("⏹️  The countdown was stopped")
		}
	}),
}

func init() {
	startCmd.Flags().Bool("no-ui", false, "Start the countdown without the interactive screen")
}

func printRunning(state timer.State) {
	fmt.Printf("Started at: %s\n", timer.FormatClockTime(state.StartedAt))
	fmt.Printf("Time left: %s\n", state.RemainingText())
	fmt.Printf("%s %s\n", notify.TitleDairyAt, timer.FormatClockTime(state.EndsAt))
}
