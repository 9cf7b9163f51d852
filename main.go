package main

import (
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"creaturebattle/internal/battle"
	"creaturebattle/internal/config"
	"creaturebattle/internal/logging"
	"creaturebattle/internal/session"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfg   config.Config
		seed  int64
		lang  string
		scale int
	)

	root := &cobra.Command{
		Use:          "creaturebattle",
		Short:        "Walk the tall grass, battle and capture wild creatures",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("seed") {
				loaded.Seed = seed
			}
			if flags.Changed("lang") {
				loaded.Lang = lang
			}
			if flags.Changed("scale") {
				loaded.WindowScale = scale
			}
			if err := loaded.Validate(); err != nil {
				return err
			}

			cfg = loaded
			logging.New(os.Stderr, cfg.LogFormat, cfg.LogLevel)
			battle.MustValidateRoster(battle.Roster)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cfg)
		},
	}

	root.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	root.PersistentFlags().StringVar(&lang, "lang", "en", "battle log language for console output (en, ja)")
	root.Flags().IntVar(&scale, "scale", 1, "window scale factor")

	root.AddCommand(newSimCmd(&cfg), newSpeciesCmd())
	return root
}

// runGame opens the window and blocks until it is closed
func runGame(cfg config.Config) error {
	src, seed := battle.NewSeededSource(cfg.Seed)
	logger := slog.Default()
	logger.Info("starting game", "seed", seed)

	// basicfont only carries ASCII glyphs, so the window always narrates
	// in English.
	narrator := battle.NewNarrator(language.English)
	newSession := func() *session.State {
		return session.New(src, session.Options{
			EncounterRate:  cfg.EncounterRate,
			StepTicks:      cfg.StepTicks,
			TurnDelayTicks: cfg.TurnDelayTicks(ebiten.DefaultTPS),
			Narrator:       narrator,
			Logger:         logger,
		})
	}

	ebiten.SetWindowSize(screenWidth*cfg.WindowScale, screenHeight*cfg.WindowScale)
	ebiten.SetWindowTitle("Creaturebattle")

	return ebiten.RunGame(NewGame(newSession, narrator))
}
