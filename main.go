package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/CrestNiraj12/terminalfeed/infra/config"
	"github.com/CrestNiraj12/terminalfeed/infra/logging"
	"github.com/CrestNiraj12/terminalfeed/infra/placeholder"
	"github.com/CrestNiraj12/terminalfeed/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// cliOptions holds the command-line flags.
type cliOptions struct {
	configPath string
	envFile    string
	debug      bool
	overrides  config.Overrides
}

type runFunc func(opts cliOptions) error

func newRootCmd(run runFunc) *cobra.Command {
	var opts cliOptions

	root := &cobra.Command{
		Use:   "terminalfeed",
		Short: "TerminalFeed - browse a paginated post feed in the terminal",
		Long: `TerminalFeed shows posts from a JSONPlaceholder-style API as cards with
author avatars, lazily loaded comments and a like toggle. Filter by author
from the sidebar and page through ten posts at a time.

Configuration is read from flags, TERMINALFEED_* environment variables
(optionally from a .env file) and a YAML config file, in that order.`,
		Version:       versionString(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	f := root.Flags()
	f.StringVar(&opts.overrides.APIURL, "api", "", "API base URL serving /posts and /comments")
	f.StringVar(&opts.overrides.UsersSource, "users", "", "users JSON file path or http(s) URL")
	f.StringVar(&opts.overrides.AvatarHost, "avatar-host", "", "host of the seed-based avatar service")
	f.StringVar(&opts.overrides.LogFile, "log-file", "", "diagnostic log file")
	f.StringVar(&opts.envFile, "env-file", "", "env file to load (default ./.env when present)")
	f.StringVar(&opts.configPath, "config", "", "YAML config file (default $XDG_CONFIG_HOME/terminalfeed/config.yaml)")
	f.BoolVar(&opts.debug, "debug", false, "log at debug level")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), versionString())
		},
	})
	return root
}

func versionString() string {
	v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
	return fmt.Sprintf("TerminalFeed %s\ncommit: %s\nbuilt: %s", v, c, d)
}

func resolveVersionInfo(v, c, d, moduleVersion string, settings map[string]string) (string, string, string) {
	if v == "dev" {
		mv := strings.TrimSpace(moduleVersion)
		if mv != "" && mv != "(devel)" {
			v = mv
		}
	}
	if c == "none" {
		rev := strings.TrimSpace(settings["vcs.revision"])
		if rev != "" {
			if len(rev) > 12 {
				rev = rev[:12]
			}
			c = rev
		}
	}
	if d == "unknown" {
		t := strings.TrimSpace(settings["vcs.time"])
		if t != "" {
			d = t
		}
	}
	return v, c, d
}

func buildSettingsMap(in []debug.BuildSetting) map[string]string {
	out := make(map[string]string, len(in))
	for _, s := range in {
		out[s.Key] = s.Value
	}
	return out
}

func resolvedRuntimeVersionInfo(v, c, d string) (string, string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok || info == nil {
		return v, c, d
	}
	return resolveVersionInfo(v, c, d, info.Main.Version, buildSettingsMap(info.Settings))
}

// loadConfig resolves configuration in precedence order: flags, environment
// (including the env file), YAML file, defaults.
func loadConfig(opts cliOptions) (config.Config, error) {
	if err := config.LoadEnvFile(opts.envFile); err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	return cfg.Apply(opts.overrides)
}

func runTUI(opts cliOptions) error {
	// 1. Load config.
	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// 2. Open the diagnostic log; the terminal belongs to the UI.
	level := slog.LevelInfo
	if opts.debug {
		level = slog.LevelDebug
	}
	logger, closer, err := logging.Open(cfg.LogFile, level)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer closer.Close()
	logger.Info("starting", "version", version, "api", cfg.APIURL, "users", cfg.UsersSource)

	// 3. Build services (concrete types satisfy app.* interfaces).
	client := placeholder.NewClient(cfg.APIURL, cfg.HTTPTimeout)
	postSvc := placeholder.NewPostService(client)
	userSvc := placeholder.NewUserService(client, cfg.UsersSource)

	// 4. Wire root TUI model.
	rootModel := tui.NewApp(tui.Deps{
		Posts:      postSvc,
		Users:      userSvc,
		Logger:     logger,
		AvatarHost: cfg.AvatarHost,
	})

	// 5. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		return err
	}
	return nil
}

func execute(args []string, stdout, stderr io.Writer, run runFunc) int {
	cmd := newRootCmd(run)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "terminalfeed: %v\n", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr, runTUI))
}
