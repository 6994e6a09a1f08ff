// robot - articulated robot animation demo
//
// Controls:
//
//	1/2         - Wireframe / solid
//	3           - Toggle axes
//	4           - Toggle path
//	r           - Reset pose
//	a           - Start/stop walking
//	p           - Switch straight/circular path
//	c           - Dance
//	Left drag   - Orbit camera
//	Right drag  - Zoom
//	Esc         - Quit
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"robot/internal/anim"
	"robot/internal/config"
	"robot/internal/game"
)

var (
	configPath string
	verbose    bool
	flags      config.Flags
	showAxes   bool
	showPath   bool

	simMode   string
	simEvents []string
	simTicks  int
)

func main() {
	cmd := &cobra.Command{
		Use:   "robot",
		Short: "Articulated robot animation demo",
		Long: `robot - articulated robot animation demo

A jointed figure that walks a straight or circular path and dances a
scripted routine to music.

Controls:
` + game.Controls(),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			logger, err := newLogger(verbose)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()
			fmt.Print("Controls:\n" + game.Controls())
			return game.RunDesktop(cfg, logger, verbose)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "Path to YAML config")
	cmd.Flags().IntVar(&flags.Width, "width", 0, "Window width (overrides config)")
	cmd.Flags().IntVar(&flags.Height, "height", 0, "Window height (overrides config)")
	cmd.Flags().IntVar(&flags.TickRate, "fps", 0, "Animation ticks per second (overrides config)")
	cmd.Flags().BoolVar(&flags.Mute, "mute", false, "Disable audio")
	cmd.Flags().BoolVar(&showAxes, "axes", true, "Show reference axes at startup")
	cmd.Flags().BoolVar(&showPath, "path", false, "Show the walk path at startup")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log mode changes")

	simCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the animation headless and print the final pose",
		Long: `Run the animation without a window. The controller starts from the
rest pose, enters --mode, handles any --event in order, then advances
--ticks steps. The resulting state is printed as YAML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate()
		},
	}
	simCmd.Flags().StringVar(&simMode, "mode", anim.ModeIdle.String(), "Starting mode (idle, walk-straight, walk-circular, dance)")
	simCmd.Flags().StringSliceVar(&simEvents, "event", nil, "Extra events to apply after entering the mode")
	simCmd.Flags().IntVar(&simTicks, "ticks", 60, "Ticks to advance")
	cmd.AddCommand(simCmd)

	controlsCmd := &cobra.Command{
		Use:   "controls",
		Short: "Print the key and mouse bindings",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Print(game.Controls())
		},
	}
	cmd.AddCommand(controlsCmd)

	if err := fang.Execute(context.Background(), cmd); err != nil {
		os.Exit(1)
	}
}

// newLogger returns a console logger. Without verbose only warnings and
// errors are shown.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	}
	return cfg.Build()
}

// loadConfig reads the config file and applies explicitly set flags.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return config.Config{}, err
	}
	f := flags
	if cmd.Flags().Changed("axes") {
		f.Axes = &showAxes
	}
	if cmd.Flags().Changed("path") {
		f.Path = &showPath
	}
	cfg.Resolve(f)
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func runSimulate() error {
	if simTicks < 0 {
		return fmt.Errorf("ticks %d must not be negative", simTicks)
	}
	mode, err := anim.ParseMode(simMode)
	if err != nil {
		return err
	}
	events := anim.EnterEvents(mode)
	for _, name := range simEvents {
		ev, ok := anim.ParseEvent(strings.TrimSpace(name))
		if !ok {
			return fmt.Errorf("unknown event %q", name)
		}
		events = append(events, ev)
	}

	report := anim.Simulate(anim.SilentCue{}, events, simTicks)
	out, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
