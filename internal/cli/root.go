package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"aelist/internal/config"
	"aelist/internal/discovery"
	"aelist/internal/domain"
	"aelist/internal/launcher"
	"aelist/internal/logx"
	"aelist/internal/searchpath"
	"aelist/internal/ui"
)

// Version is set at build time with -ldflags "-X aelist/internal/cli.Version=..."
var Version = "dev"

// errUsage marks a flag error; usage has been printed already
var errUsage = errors.New("usage")

// Exit codes
const (
	ExitOK     = 0
	ExitFailed = 1
	ExitConfig = 2
)

// app holds everything the command needs from the outside world
type app struct {
	stdout      io.Writer
	stderr      io.Writer
	getenv      func(string) string
	isTerminal  func() bool
	pick        func(n int) int
	newLogger   func(level string) (zerolog.Logger, io.Closer)
	prompt      func(ctx context.Context, m *ui.Model) (*ui.Model, error)
	newLauncher func(log zerolog.Logger) launcher.Launcher
}

// flags holds the raw command line values
type flags struct {
	configPath  string
	mode        string
	maxPrompts  string
	skipBanner  bool
	includePath bool
	logLevel    string
	writeConfig bool
}

func defaultApp() *app {
	return &app{
		stdout:      os.Stdout,
		stderr:      os.Stderr,
		getenv:      os.Getenv,
		isTerminal:  func() bool { return term.IsTerminal(int(os.Stdin.Fd())) },
		pick:        rand.IntN,
		newLogger:   openLogger,
		prompt:      runProgram,
		newLauncher: launcher.New,
	}
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	return execute(ctx, defaultApp(), os.Args[1:])
}

func execute(ctx context.Context, a *app, args []string) int {
	cmd := newRootCmd(a)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	switch {
	case err == nil, errors.Is(err, errUsage):
		return ExitOK
	case errors.Is(err, context.Canceled):
		return ExitOK
	case domain.IsConfigError(err):
		fmt.Fprintf(a.stderr, "aelist: %v\n", err)
		return ExitConfig
	default:
		fmt.Fprintf(a.stderr, "aelist: %v\n", err)
		return ExitFailed
	}
}

func newRootCmd(a *app) *cobra.Command {
	f := &flags{}

	cmd := &cobra.Command{
		Use:   "aelist [flags] [dir ...]",
		Short: "Filter the executables of a set of directories and launch one",
		Long: `aelist indexes every executable in the given directories (or $PATH),
filters them while you type and launches the selected one detached
from the terminal when you press enter.`,
		Version:       Version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, f, args)
		},
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	fs := cmd.Flags()
	fs.SortFlags = false
	addModeFlag(cmd, &f.mode, "short", "s", "short", "enable short display mode")
	addModeFlag(cmd, &f.mode, "long", "L", "long", "enable long display mode")
	addModeFlag(cmd, &f.mode, "line", "l", "line", "enable line display mode")
	addModeFlag(cmd, &f.mode, "random", "r", config.ModeRandom, "pick a random display mode")
	fs.StringVarP(&f.maxPrompts, "max", "n", "", "maximum number of matches shown (default 30)")
	fs.BoolVarP(&f.skipBanner, "skip-banner", "S", false, "skip the very first loading info")
	fs.BoolVarP(&f.includePath, "path", "P", false, "load $PATH in paths even when directories are given")
	fs.StringVar(&f.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error or off")
	fs.BoolVar(&f.writeConfig, "write-config", false, "write the effective configuration to the config file and exit")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintf(a.stderr, "aelist: %v\n", err)
		fmt.Fprint(a.stderr, c.UsageString())
		return errUsage
	})

	return cmd
}

// run resolves the configuration, builds the index, runs the prompt and
// launches the selection
func (a *app) run(cmd *cobra.Command, f *flags, args []string) error {
	ctx := cmd.Context()

	svc := config.NewConfigServiceAt(f.configPath)
	cfg, err := loadConfig(svc, cmd.Flags().Changed("config"), f.writeConfig)
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, f, cfg); err != nil {
		return err
	}

	if f.writeConfig {
		if err := svc.SaveToPath(cfg, svc.Path()); err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "wrote %s\n", svc.Path())
		return nil
	}

	mode, err := cfg.DisplayMode(a.pick)
	if err != nil {
		return err
	}

	log, closer := a.newLogger(cfg.LogLevel)
	if closer != nil {
		defer closer.Close()
	}

	explicit := args
	if len(explicit) == 0 {
		explicit = cfg.Paths
	}
	paths, err := searchpath.Resolve(explicit, a.getenv(cfg.PathEnv), cfg.IncludePath)
	if err != nil {
		return err
	}

	idx, err := discovery.NewDiscoveryService(log).Scan(ctx, paths)
	if err != nil {
		return err
	}

	if !a.isTerminal() {
		return domain.ErrNotTerminal
	}

	model := ui.NewModel(idx, ui.Options{
		Mode:       mode,
		SkipBanner: cfg.SkipBanner,
		DisplayCap: cfg.MaxPrompts,
	}, log)

	final, err := a.prompt(ctx, model)
	if err != nil {
		return err
	}

	exe, ok := final.Selected()
	if !ok {
		return nil
	}
	if _, err := a.newLauncher(log).Launch(exe.Path); err != nil {
		return err
	}
	return nil
}

// loadConfig reads the config file. An explicit file must exist unless it
// is about to be written.
func loadConfig(svc config.ConfigService, explicit, writing bool) (*config.Config, error) {
	if explicit && !writing {
		return svc.LoadFromPath(svc.Path())
	}
	return svc.Load()
}

// applyFlags overrides cfg with the flags given on the command line
func applyFlags(cmd *cobra.Command, f *flags, cfg *config.Config) error {
	fs := cmd.Flags()
	if f.mode != "" {
		cfg.Mode = f.mode
	}
	if fs.Changed("max") {
		n, err := config.ParseDisplayCap(f.maxPrompts)
		if err != nil {
			return err
		}
		cfg.MaxPrompts = n
	}
	if fs.Changed("skip-banner") {
		cfg.SkipBanner = f.skipBanner
	}
	if fs.Changed("path") {
		cfg.IncludePath = f.includePath
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	return nil
}

// modeFlag is a boolean flag that stores its mode in a shared target, so
// the last mode flag on the command line wins
type modeFlag struct {
	target *string
	mode   string
}

var _ pflag.Value = (*modeFlag)(nil)

func addModeFlag(cmd *cobra.Command, target *string, name, shorthand, mode, usage string) {
	flag := cmd.Flags().VarPF(&modeFlag{target: target, mode: mode}, name, shorthand, usage)
	flag.NoOptDefVal = "true"
}

func (f *modeFlag) String() string {
	return strconv.FormatBool(*f.target == f.mode)
}

func (f *modeFlag) Set(v string) error {
	on, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	if on {
		*f.target = f.mode
	}
	return nil
}

func (f *modeFlag) Type() string {
	return "bool"
}

func openLogger(level string) (zerolog.Logger, io.Closer) {
	log, closer, err := logx.New(logx.DefaultPath(), level)
	if err != nil {
		return zerolog.Nop(), nil
	}
	return log, closer
}

// runProgram runs the prompt until it is confirmed or interrupted
func runProgram(ctx context.Context, m *ui.Model) (*ui.Model, error) {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithoutSignalHandler())
	m.SetProgram(p)

	// Signals arrive through ctx; quit through the model so the terminal is restored
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			p.Send(ui.InterruptMsg{})
		case <-done:
		}
	}()

	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("running prompt: %w", err)
	}
	model, ok := final.(*ui.Model)
	if !ok {
		return nil, fmt.Errorf("unexpected model type %T", final)
	}
	return model, nil
}
