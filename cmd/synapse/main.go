package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/san-kum/synapse/internal/background"
	"github.com/san-kum/synapse/internal/config"
	"github.com/san-kum/synapse/internal/content"
	"github.com/san-kum/synapse/internal/export"
	"github.com/san-kum/synapse/internal/session"
	"github.com/san-kum/synapse/internal/theme"
	"github.com/san-kum/synapse/internal/ui"
	"github.com/spf13/cobra"
)

var (
	configFile  string
	preset      string
	logFile     string
	verbose     bool
	contentFile string
	paletteFile string
	seed        int64
	// snapshot
	themeName string
	density   float64
	outFile   string
	width     int
	height    int
	warmup    float64
)

// main registers the commands and runs the portfolio when no subcommand is
// given. It exits with status 1 if the command fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "synapse",
		Short:         "terminal portfolio over a neural network background",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runPortfolio,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logFile, "log", "", "write logs to this file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().StringVar(&contentFile, "content", "", "portfolio content file (yaml)")
	rootCmd.PersistentFlags().StringVar(&paletteFile, "palette", "", "palette overrides (toml)")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "background random seed (0 = time based)")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot",
		Short: "render one background frame to SVG",
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().StringVar(&themeName, "theme", "cyber", "theme (cyber, nova, void, nebula)")
	snapshotCmd.Flags().Float64Var(&density, "density", float64(session.DefaultDensity), "synapse density")
	snapshotCmd.Flags().StringVarP(&outFile, "out", "o", "synapse.svg", "output file (- for stdout)")
	snapshotCmd.Flags().IntVar(&width, "width", 100, "frame width in cells")
	snapshotCmd.Flags().IntVar(&height, "height", 30, "frame height in cells")
	snapshotCmd.Flags().Float64Var(&warmup, "warmup", 2.0, "seconds to simulate before capture")

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list themes and their colours",
		RunE:  listThemes,
	}

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "run a scripted session without a terminal UI",
		RunE:  runDemo,
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage the config file",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the default config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "synapse.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			cfg := config.DefaultConfig()
			if preset != "" {
				if err := cfg.ApplyPreset(preset); err != nil {
					return err
				}
			}
			if err := config.Save(path, cfg); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Printf("  %-8s fps=%d nodes=%d\n", name, p.FPS, p.Nodes)
			}
		},
	}
	configCmd.AddCommand(configInitCmd, presetsCmd)

	rootCmd.AddCommand(snapshotCmd, themesCmd, demoCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file, applies a preset and folds in flag
// overrides.
func loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if preset != "" {
		if err := cfg.ApplyPreset(preset); err != nil {
			return nil, err
		}
	}
	if logFile != "" {
		cfg.LogFile = logFile
	}
	if contentFile != "" {
		cfg.ContentFile = contentFile
	}
	if paletteFile != "" {
		cfg.PaletteFile = paletteFile
	}
	if seed != 0 {
		cfg.Seed = seed
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

// newLogger opens the log file, if any. The TUI owns stdout so logs never go
// there.
func newLogger(path string) (*slog.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}

func loadAssets(cfg *config.Config, log *slog.Logger) (*content.Portfolio, theme.Table, error) {
	portfolio := content.Default()
	if cfg.ContentFile != "" {
		p, err := content.Load(cfg.ContentFile)
		if err != nil {
			return nil, nil, err
		}
		portfolio = p
		log.Debug("content loaded", "path", cfg.ContentFile, "projects", len(p.Projects))
	}
	palettes := theme.DefaultTable()
	if cfg.PaletteFile != "" {
		t, err := theme.LoadOverridesFile(cfg.PaletteFile)
		if err != nil {
			return nil, nil, err
		}
		palettes = t
		log.Debug("palette overrides loaded", "path", cfg.PaletteFile)
	}
	return portfolio, palettes, nil
}

func runPortfolio(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	portfolio, palettes, err := loadAssets(cfg, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return ui.Run(ctx, ui.Options{
		Content:   portfolio,
		Palettes:  palettes,
		Network:   background.New(cfg.Nodes, cfg.Seed),
		FPS:       cfg.FPS,
		Mouse:     cfg.Mouse,
		AltScreen: cfg.AltScreen,
		Logger:    log,
	})
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	name, err := theme.ParseName(themeName)
	if err != nil {
		return err
	}
	d, ok := session.ClampDensity(density)
	if !ok {
		return fmt.Errorf("density %v is not a number", density)
	}
	_, palettes, err := loadAssets(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		return err
	}

	net := background.New(cfg.Nodes, cfg.Seed)
	net.Configure(name, float64(d))
	svg := export.Snapshot(net, width, height, warmup, cfg.FPS, 8, palettes.Get(name))

	if outFile == "-" {
		_, err := fmt.Fprintln(os.Stdout, svg)
		return err
	}
	if err := os.WriteFile(outFile, []byte(svg), 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	fmt.Printf("%s  %s  density %.1f  nodes %d -> %s\n", name, palettes.Get(name).Accent, float64(d), net.Nodes(), outFile)
	return nil
}

func listThemes(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	_, palettes, err := loadAssets(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "THEME\tACCENT\tGLOW\tNODE\tEDGE")
	for _, n := range theme.Order {
		p := palettes.Get(n)
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", n, p.Accent, p.Glow, p.Node, strings.ToLower(string(p.Edge)))
	}
	return w.Flush()
}
