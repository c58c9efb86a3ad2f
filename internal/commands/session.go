package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sliicy/meatdairy/internal/app"
	"github.com/sliicy/meatdairy/internal/config"
	"github.com/sliicy/meatdairy/internal/db"
	"github.com/sliicy/meatdairy/internal/notify"
	"github.com/sliicy/meatdairy/internal/timer"
)

// session is everything a command needs once config, logging and the database are up
type session struct {
	cfg    *config.Config
	log    *slog.Logger
	banner *notify.Banner
	app    *app.App

	logFile io.Closer
}

func openSession() (*session, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dbPath != "" {
		cfg.Database.Path = dbPath
	}

	logger, logFile, err := cfg.OpenLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to open log: %w", err)
	}

	if err := db.Initialize(cfg.Database.Path); err != nil {
		logFile.Close()
		return nil, err
	}

	banner := notify.NewBanner(cfg.Notifications.BannerTTL)
	notifiers := notify.NewMulti(banner)
	if cfg.Notifications.Desktop {
		notifiers.Add(notify.NewDesktop(cfg.Notifications.Icon))
	}

	a, err := app.Open(app.Options{
		Store: db.Repository{},
		Alerter: &notify.Alerter{
			Notifier: notifiers,
			Feedback: notify.NewBeeper(),
			Pattern:  cfg.Notifications.Vibration,
			Locale:   timer.DetectLocale(cfg.Locale),
			Logger:   logger,
		},
		Logger: logger,
	})
	if err != nil {
		db.Close()
		logFile.Close()
		return nil, err
	}

	logger.Debug("session opened", "db", cfg.Database.Path)
	return &session{cfg: cfg, log: logger, banner: banner, app: a, logFile: logFile}, nil
}

func (s *session) Close() {
	s.app.Close()
	if err := db.Close(); err != nil {
		s.log.Warn("failed to close database", "error", err)
	}
	s.logFile.Close()
}

// withApp wraps a command function to open the session first
func withApp(fn func(*cobra.Command, []string, *session)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		s, err := openSession()
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer s.Close()
		fn(cmd, args, s)
	}
}
