package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hylla/tado/internal/app"
	"github.com/hylla/tado/internal/config"
	"github.com/hylla/tado/internal/keyscript"
	"github.com/hylla/tado/internal/platform"
	"github.com/hylla/tado/internal/tui"
	"github.com/spf13/cobra"
)

// defaultAppName is used when neither --app nor TADO_APP_NAME is set.
const defaultAppName = "tado"

// keysWidth is the wrap width for the styled key reference.
const keysWidth = 80

// rootOptions holds persistent flag values shared by every command.
type rootOptions struct {
	configPath string
	appName    string
	devMode    bool
}

// environment carries resolved paths and configuration for one command.
type environment struct {
	opts       rootOptions
	paths      platform.Paths
	configPath string
	cfg        config.Config
}

// newRootCmd builds the command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	defaultDevMode := version == "dev"
	if envDev, ok := parseBoolEnv("TADO_DEV_MODE"); ok {
		defaultDevMode = envDev
	}

	cmd := &cobra.Command{
		Use:          "tado",
		Short:        "Two-tab todo list for the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive list
  tado

  # Show the key reference
  tado keys

  # Drive the list headlessly from a key script
  printf 'e <space> u <tab>' | tado replay --frames
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, *opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to config TOML (env TADO_CONFIG)")
	cmd.PersistentFlags().StringVar(&opts.appName, "app", envOr("TADO_APP_NAME", defaultAppName), "application name for config/data path resolution")
	cmd.PersistentFlags().BoolVar(&opts.devMode, "dev", defaultDevMode, "use dev mode paths (<app>-dev) and the dev log file")

	cmd.AddCommand(newPathsCmd(opts))
	cmd.AddCommand(newKeysCmd())
	cmd.AddCommand(newReplayCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}

// resolveEnvironment resolves paths and loads configuration for opts.
func resolveEnvironment(opts rootOptions) (environment, error) {
	paths, err := platform.DefaultPathsWithOptions(platform.Options{
		AppName: opts.appName,
		DevMode: opts.devMode,
	})
	if err != nil {
		return environment{}, fmt.Errorf("resolve paths: %w", err)
	}
	configPath := strings.TrimSpace(opts.configPath)
	if configPath == "" {
		configPath = envOr("TADO_CONFIG", paths.ConfigPath)
	}
	cfg, err := config.Load(configPath, config.Default())
	if err != nil {
		return environment{}, fmt.Errorf("load config %q: %w", configPath, err)
	}
	return environment{opts: opts, paths: paths, configPath: configPath, cfg: cfg}, nil
}

// openLogger builds the runtime logger for env with a fresh session id.
func openLogger(env environment, stderr io.Writer) (*runtimeLogger, error) {
	logger, err := newRuntimeLogger(stderr, loggerOptions{
		appName: env.opts.appName,
		devMode: env.opts.devMode,
		logging: env.cfg.Logging,
		logDir:  resolveLogDir(env),
		now:     time.Now,
	})
	if err != nil {
		return nil, fmt.Errorf("configure runtime logger: %w", err)
	}
	logger.WithSession(uuid.NewString())
	return logger, nil
}

// resolveLogDir returns the configured dev log dir, falling back to the platform log dir.
func resolveLogDir(env environment) string {
	if dir := strings.TrimSpace(env.cfg.Logging.DevFile.Dir); dir != "" {
		return dir
	}
	return env.paths.LogDir
}

// closeLogger closes logger sinks, reporting failures on stderr when the console is live.
func closeLogger(logger *runtimeLogger, stderr io.Writer) {
	if closeErr := logger.Close(); closeErr != nil && logger.ConsoleEnabled() {
		_, _ = fmt.Fprintf(stderr, "warning: close runtime log sink: %v\n", closeErr)
	}
}

// seedFrom converts configured seed items into the state seed.
func seedFrom(cfg config.Config) app.Seed {
	return app.Seed{Todo: cfg.Seed.Todo, Done: cfg.Seed.Done}
}

// runTUI starts the interactive list.
func runTUI(cmd *cobra.Command, opts rootOptions) error {
	ctx := cmd.Context()
	stderr := cmd.ErrOrStderr()
	env, err := resolveEnvironment(opts)
	if err != nil {
		return err
	}
	logger, err := openLogger(env, stderr)
	if err != nil {
		return err
	}
	// Runtime logs stay in the dev-file sink while the list owns the terminal.
	logger.SetConsoleEnabled(false)
	defer closeLogger(logger, stderr)

	logger.Info("startup configuration resolved", "app", opts.appName, "dev_mode", opts.devMode, "command", "tui")
	logger.Debug("runtime paths resolved", "config_path", env.configPath, "data_dir", env.paths.DataDir)
	if devPath := logger.DevLogPath(); devPath != "" {
		logger.Info("dev file logging enabled", "path", devPath)
	}

	state := app.NewState(seedFrom(env.cfg))
	m := tui.NewModel(
		state,
		tui.WithTheme(tui.ThemeFromColors(env.cfg.UI.AccentColor, env.cfg.UI.HighlightColor, env.cfg.UI.MutedColor)),
		tui.WithAltScreen(env.cfg.UI.AltScreen),
		tui.WithShowHelp(env.cfg.UI.ShowHelp),
		tui.WithLogger(logger),
	)
	logger.Info("starting tui program loop", "state", state.Summary())
	if _, err := programFactory(ctx, m).Run(); err != nil {
		if ctx != nil && ctx.Err() != nil {
			logger.Info("tui program canceled", "err", err)
			return nil
		}
		logger.Error("tui program terminated with error", "err", err)
		return fmt.Errorf("run tui program: %w", err)
	}
	logger.Info("command flow complete", "command", "tui", "state", state.Summary())
	return nil
}

// newPathsCmd builds the paths command.
func newPathsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "paths",
		Short: "Print resolved config and data paths",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			env, err := resolveEnvironment(*opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "app: %s\n", opts.appName)
			_, _ = fmt.Fprintf(out, "dev_mode: %t\n", opts.devMode)
			_, _ = fmt.Fprintf(out, "config: %s\n", env.configPath)
			_, _ = fmt.Fprintf(out, "data_dir: %s\n", env.paths.DataDir)
			_, _ = fmt.Fprintf(out, "log_dir: %s\n", resolveLogDir(env))
			return nil
		},
	}
}

// newKeysCmd builds the key reference command.
func newKeysCmd() *cobra.Command {
	var plain bool
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show the key reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc := tui.KeyReferenceMarkdown()
			if !plain {
				doc = tui.RenderKeyReference(keysWidth) + "\n"
			}
			_, err := io.WriteString(cmd.OutOrStdout(), doc)
			return err
		},
	}
	cmd.Flags().BoolVar(&plain, "plain", false, "print raw markdown")
	return cmd
}

// newReplayCmd builds the headless replay command.
func newReplayCmd(opts *rootOptions) *cobra.Command {
	var (
		scriptPath string
		frames     bool
	)
	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Run the list headlessly from a key script",
		Long: strings.TrimSpace(`
Reads whitespace-separated key tokens from --script or stdin and feeds them
through the run loop. Bracketed names select special keys: <enter> <esc> <bs>
<tab> <s-tab> <space> <lt> <gt> <c-c>. Other tokens are typed rune by rune.
Lines starting with # are comments.
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runReplay(cmd, *opts, scriptPath, frames)
		},
	}
	cmd.Flags().StringVar(&scriptPath, "script", "", "key script file (default stdin)")
	cmd.Flags().BoolVar(&frames, "frames", false, "print every frame instead of only the last")
	return cmd
}

// runReplay drives the run loop from a parsed key script.
func runReplay(cmd *cobra.Command, opts rootOptions, scriptPath string, frames bool) error {
	ctx := cmd.Context()
	stderr := cmd.ErrOrStderr()
	env, err := resolveEnvironment(opts)
	if err != nil {
		return err
	}
	logger, err := openLogger(env, stderr)
	if err != nil {
		return err
	}
	defer closeLogger(logger, stderr)

	script := cmd.InOrStdin()
	if strings.TrimSpace(scriptPath) != "" {
		f, err := os.Open(scriptPath)
		if err != nil {
			return fmt.Errorf("open key script: %w", err)
		}
		defer func() {
			_ = f.Close()
		}()
		script = f
	}
	keys, err := keyscript.Parse(script)
	if err != nil {
		logger.Error("key script rejected", "err", err)
		return fmt.Errorf("parse key script: %w", err)
	}
	logger.Info("command flow start", "command", "replay", "keys", len(keys))

	renderer := tui.NewPlainRenderer(cmd.OutOrStdout(), frames)
	loop := app.NewLoop(app.NewState(seedFrom(env.cfg)), app.WithLoopLogger(logger))
	source := keyscript.NewSource(keys)
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if err := loop.Run(ctx, app.Listen(ctx, source, 0), renderer); err != nil {
		logger.Error("run loop failed", "err", err)
		return fmt.Errorf("run loop: %w", err)
	}
	if err := renderer.Flush(); err != nil {
		return fmt.Errorf("write final frame: %w", err)
	}
	logger.Info("command flow complete", "command", "replay", "frames", renderer.Frames(), "state", loop.State().Summary())
	return nil
}

// newConfigCmd builds the config command group.
func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}
	cmd.AddCommand(newConfigInitCmd(opts))
	return cmd
}

// newConfigInitCmd builds the config init command.
func newConfigInitCmd(opts *rootOptions) *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			paths, err := platform.DefaultPathsWithOptions(platform.Options{
				AppName: opts.appName,
				DevMode: opts.devMode,
			})
			if err != nil {
				return fmt.Errorf("resolve paths: %w", err)
			}
			configPath := strings.TrimSpace(opts.configPath)
			if configPath == "" {
				configPath = envOr("TADO_CONFIG", paths.ConfigPath)
			}
			if err := config.WriteDefault(configPath, config.Default(), force); err != nil {
				if errors.Is(err, config.ErrConfigExists) {
					return fmt.Errorf("%w (use --force to overwrite)", err)
				}
				return fmt.Errorf("write config: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}
