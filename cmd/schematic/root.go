package main

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/schematic/config"
	"github.com/katalvlaran/schematic/schematic"
	"github.com/katalvlaran/schematic/textgrid"
)

//go:embed input.txt
var bundledInput string

// flags holds the raw command-line values; only flags the user set override
// the config file.
type flags struct {
	configPath string
	part       int
	marker     string
	groupSize  int
	workers    int
	verbose    bool
}

// app carries state shared between the pre-run hook and the commands.
type app struct {
	flags  flags
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "schematic [input-file]",
		Short: "Sum part numbers or gear ratios of an engine schematic",
		Long: `schematic reads a rectangular grid of digits, '.' separators and symbols.

Part 1 sums every number adjacent (diagonals included) to a symbol.
Part 2 sums, for every '*' adjacent to exactly two numbers, their product.

Without an input file the bundled puzzle input is solved.`,
		Args:              cobra.MaximumNArgs(1),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runSolve,
	}

	f := rootCmd.PersistentFlags()
	f.StringVar(&a.flags.configPath, "config", "", "Path to YAML config file")
	f.BoolVarP(&a.flags.verbose, "verbose", "v", false, "Debug logging")
	rootCmd.Flags().IntVarP(&a.flags.part, "part", "p", 1, "Puzzle part: 1 (part numbers) or 2 (gear ratios)")
	rootCmd.Flags().StringVar(&a.flags.marker, "marker", string(schematic.DefaultGearMarker), "Gear marker symbol (part 2)")
	rootCmd.Flags().IntVar(&a.flags.groupSize, "group-size", schematic.DefaultGearSize, "Exact number of numbers adjacent to a gear (part 2)")
	rootCmd.Flags().IntVar(&a.flags.workers, "workers", schematic.DefaultWorkers, "Rows scanned concurrently")

	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// setup loads the config, applies flag overrides and builds the logger.
// The version command needs none of it and keeps the Nop logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	if fs.Changed("part") {
		cfg.Part = a.flags.part
	}
	if fs.Changed("marker") {
		cfg.Gear.Marker = a.flags.marker
	}
	if fs.Changed("group-size") {
		cfg.Gear.GroupSize = a.flags.groupSize
	}
	if fs.Changed("workers") {
		cfg.Workers = a.flags.workers
	}
	if a.flags.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := newLogger(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	return nil
}

// newLogger builds a production logger writing to stderr at level.
func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)

	return zcfg.Build()
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	text, source := bundledInput, "bundled"
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		text, source = string(data), args[0]
	}

	a.logger.Info("Solving schematic",
		zap.String("input", source),
		zap.Int("part", a.cfg.Part),
		zap.Int("workers", a.cfg.Workers))

	answer, err := solve(text, a.cfg, a.logger)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "The solution is %d.\n", answer)
	return nil
}

// solve computes the configured part for text.
func solve(text string, cfg *config.Config, logger *zap.Logger) (uint64, error) {
	g, err := textgrid.Parse(text)
	if err != nil {
		return 0, fmt.Errorf("parsing schematic: %w", err)
	}
	logger.Debug("Grid parsed", zap.Int("rows", g.Rows()), zap.Int("cols", g.Cols()))

	opts := []schematic.Option{
		schematic.WithWorkers(cfg.Workers),
		schematic.WithLogger(logger),
	}

	if cfg.Part == 1 {
		sum, err := schematic.SumPartNumbers(g, opts...)
		if err != nil {
			return 0, fmt.Errorf("summing part numbers: %w", err)
		}
		return sum, nil
	}

	s, err := schematic.Analyze(g, opts...)
	if err != nil {
		return 0, fmt.Errorf("analyzing schematic: %w", err)
	}
	var sum uint64
	for _, gear := range s.Gears(cfg.GearOptions()...) {
		logger.Debug("Gear found",
			zap.Int("col", gear.Pos.Col),
			zap.Int("row", gear.Pos.Row),
			zap.Uint64("ratio", gear.Ratio))
		sum += gear.Ratio
	}

	return sum, nil
}
