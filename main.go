package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime/debug"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/llehouerou/ripple/internal/app"
	"github.com/llehouerou/ripple/internal/config"
	"github.com/llehouerou/ripple/internal/errmsg"
	"github.com/llehouerou/ripple/internal/icons"
	"github.com/llehouerou/ripple/internal/logging"
	"github.com/llehouerou/ripple/internal/mpris"
	"github.com/llehouerou/ripple/internal/notify"
	"github.com/llehouerou/ripple/internal/player"
	"github.com/llehouerou/ripple/internal/playlist"
	"github.com/llehouerou/ripple/internal/source"
	"github.com/llehouerou/ripple/internal/stderr"
	"github.com/llehouerou/ripple/internal/ui"
	"github.com/llehouerou/ripple/internal/ui/albumart"
	"github.com/llehouerou/ripple/internal/ui/playerbar"
)

type options struct {
	configPath string
	icons      string
	debug      bool
}

func main() {
	var opts options
	cmd := &cobra.Command{
		Use:           "ripple [file or directory...]",
		Short:         "A terminal music player",
		Long:          "Plays the given audio files and directories, or a built-in demo playlist when none are given.",
		Version:       appVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			return run(opts, args)
		},
	}
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/ripple/config.toml)")
	cmd.Flags().StringVar(&opts.icons, "icons", "", "icon style: nerd, unicode or none")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log at debug level")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(opts options, args []string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}
	if opts.icons != "" {
		cfg.Icons = opts.icons
	}

	logFile, err := logging.Setup(cfg.LogFile(), cfg.Log.Level, opts.debug)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer logFile.Close()
	log.Info().Str("version", appVersion()).Msg("starting")

	// Audio libraries write to fd 2 directly; keep it off the screen.
	if err := stderr.Start(logging.Component("stderr")); err != nil {
		log.Warn().Err(err).Msg("stderr capture unavailable")
	}
	defer stderr.Stop()

	icons.Init(cfg.Icons)

	tracks := playlist.Defaults()
	if len(args) > 0 {
		if tracks, err = playlist.FromPaths(args); err != nil {
			return errors.New(errmsg.Format(errmsg.OpInitialize, err))
		}
	}

	opener := source.NewOpener(source.WithLogger(logging.Component("source")))
	media := player.New(
		player.WithOpener(opener),
		player.WithLogger(logging.Component("player")),
		player.WithTickInterval(cfg.TimeUpdateInterval()),
	)
	defer media.Close()

	deps := app.Deps{
		Media:  media,
		Tracks: tracks,
		Config: cfg,
		Opener: opener,
		Rand:   rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)), //nolint:gosec // shuffle only
		Log:    logging.Component("app"),
	}
	if cfg.AlbumArtEnabled() {
		deps.Art = albumart.New(albumart.Detect(), ui.ArtCols, playerbar.Height())
		if deps.ArtCache, err = albumart.NewCache(""); err != nil {
			log.Warn().Err(err).Msg("album art cache disabled")
		}
	}
	if cfg.NotificationsEnabled() {
		if deps.Notifier, err = notify.New(notify.Sender{
			Name:         config.DisplayName,
			DesktopEntry: config.AppName,
		}); err != nil {
			log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpNotify, err))
			deps.Notifier = nil
		}
	}

	m := app.New(deps)

	// The remote is attached before the program exists; commands that
	// arrive before Run are dropped.
	sender := &programSender{}
	if cfg.MPRISEnabled() {
		remote, err := mpris.New(sender, logging.Component("mpris"))
		if err != nil {
			log.Warn().Err(err).Msg(errmsg.Format(errmsg.OpMPRISStart, err))
		} else {
			defer remote.Close()
			m.SetRemote(remote)
		}
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	sender.p.Store(p)
	final, err := p.Run()
	if fm, ok := final.(app.Model); ok {
		fm.Close()
	}
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	log.Info().Msg("exiting")
	return nil
}

// programSender forwards MPRIS commands to the running program.
type programSender struct {
	p atomic.Pointer[tea.Program]
}

func (s *programSender) Send(msg tea.Msg) {
	if p := s.p.Load(); p != nil {
		p.Send(msg)
	}
}

func appVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok || bi.Main.Version == "" {
		return "unknown"
	}
	return bi.Main.Version
}
