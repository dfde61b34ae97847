package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-stack/internal/config"
	"github.com/vovakirdan/tui-stack/internal/core"
	"github.com/vovakirdan/tui-stack/internal/games/stack"
)

var (
	flagTicks  int
	flagJitter float64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless game driven by the autopilot",
	Long: `Runs the game without a terminal UI. The autopilot drops each platform
within --jitter world units of a perfect drop. Events are logged, and the
final score is printed when the game ends or --ticks run out.

Examples:
  stack sim
  stack sim --seed 42 --jitter 0.5 --log-level debug
  stack sim --ticks 36000 --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	addGameFlags(simCmd)
	addPilotFlags(simCmd)
}

// addPilotFlags registers the autopilot flags.
func addPilotFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum number of ticks to simulate")
	cmd.Flags().Float64Var(&flagJitter, "jitter", 1.0, "Autopilot aim spread in world units")
}

// seed returns --seed, or a time based seed when it is 0.
func seed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// simulate runs an autopilot game for up to ticks ticks.
func simulate(cfg config.StackConfig, logger *log.Logger, s int64, ticks int) *stack.Game {
	game := stack.New(
		stack.WithConfig(cfg),
		stack.WithLogger(logger),
		stack.WithListener(func(e stack.Event) { logEvent(logger, e) }),
	)
	game.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: flagFPS, Seed: s})

	pilot := stack.NewAutopilot(s, flagJitter)
	for i := 0; i < ticks && !game.State().GameOver; i++ {
		game.Step(pilot.Decide(game))
	}
	return game
}

func logEvent(logger *log.Logger, e stack.Event) {
	switch e := e.(type) {
	case stack.NormalStackEvent:
		logger.Info("stacked", "height", e.Height, "width", e.Width, "depth", e.Depth)
	case stack.PerfectStackEvent:
		logger.Info("perfect", "height", e.Height, "streak", e.Streak)
	case stack.ExpandedEvent:
		logger.Info("expanded", "axis", e.Axis, "sign", e.Sign, "width", e.Width, "depth", e.Depth)
	case stack.GameOverEvent:
		logger.Info("game over", "score", e.Score)
	case stack.GradientsExtendedEvent:
		logger.Debug("gradients", "count", e.Count, "to", e.To)
	case stack.BackgroundTransitionEvent:
		logger.Debug("background", "start", e.Target.Start, "end", e.Target.End)
	}
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := newLogger("sim", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	s := seed()
	game := simulate(cfg, logger, s, flagTicks)
	snap := game.Snapshot()
	fmt.Fprintf(cmd.OutOrStdout(), "seed=%d ticks=%d score=%d game_over=%v\n", s, snap.Tick, snap.Score, snap.GameOver)
	return nil
}
