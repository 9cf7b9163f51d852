package main

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"creaturebattle/internal/battle"
	"creaturebattle/internal/config"
	"creaturebattle/internal/session"
)

const (
	// maxSimRounds stops a battle that keeps missing forever.
	maxSimRounds = 500
	// autoCaptureBelow is the health fraction under which the auto player
	// throws a ball instead of attacking.
	autoCaptureBelow = 0.35
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

func newSimCmd(cfg *config.Config) *cobra.Command {
	var battles int

	cmd := &cobra.Command{
		Use:   "sim",
		Short: "Run headless battles with an auto player and print the battle log",
		RunE: func(cmd *cobra.Command, args []string) error {
			if battles < 1 {
				return fmt.Errorf("--battles must be at least 1, got %d", battles)
			}
			return runSim(cmd.OutOrStdout(), *cfg, battles)
		},
	}
	cmd.Flags().IntVar(&battles, "battles", 5, "number of encounters to play")
	return cmd
}

// runSim plays encounters back to back without a window or turn delay.
func runSim(w io.Writer, cfg config.Config, battles int) error {
	src, seed := battle.NewSeededSource(cfg.Seed)
	narrator := battle.NewNarrator(battle.MatchLanguage(cfg.Lang))
	s := session.New(src, session.Options{
		EncounterRate: cfg.EncounterRate,
		StepTicks:     cfg.StepTicks,
		Narrator:      narrator,
		Logger:        slog.Default(),
	})
	slog.Info("simulation started", "seed", seed, "battles", battles, "lang", narrator.Language().String())

	results := make(map[battle.Result]int)
	for i := range battles {
		s.StartBattle()
		b := s.Battle()
		for round := 0; s.Mode() == session.ModeBattle && round < maxSimRounds; round++ {
			s.Update(session.Input{Action: autoAction(b.Snapshot())})
		}
		if s.Mode() == session.ModeBattle {
			return fmt.Errorf("battle %d did not finish within %d rounds", i+1, maxSimRounds)
		}

		results[b.Result()]++
		fmt.Fprintf(w, "== Battle %d ==\n", i+1)
		for _, line := range narrator.Lines(b.Events()) {
			fmt.Fprintln(w, line)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, renderPartyTable(s.Party().Views(), s.Party().ActiveIndex()))
	fmt.Fprintln(w, renderResultTable(results))
	return nil
}

// autoAction is the sim's player: capture weakened targets while there is
// room, otherwise use the move with the best expected damage.
func autoAction(snap battle.Snapshot) battle.Action {
	if snap.Wild.HPFraction() < autoCaptureBelow && len(snap.Party) < battle.MaxPartySize {
		return battle.ActionCapture
	}
	m := snap.Ally.Moves
	if float64(m[1].Power)*m[1].Accuracy > float64(m[0].Power)*m[0].Accuracy {
		return battle.ActionMove2
	}
	return battle.ActionMove1
}

func renderPartyTable(party []battle.MonsterView, active int) string {
	rows := make([][]string, 0, len(party))
	for i, v := range party {
		marker := ""
		if i == active {
			marker = "*"
		}
		rows = append(rows, []string{marker, v.Species, strconv.Itoa(v.Level), fmt.Sprintf("%d/%d", v.HP, v.MaxHP)})
	}
	return newTable("", "Species", "Lv", "HP").Rows(rows...).Render()
}

func renderResultTable(results map[battle.Result]int) string {
	order := []battle.Result{battle.ResultVictory, battle.ResultCaptured, battle.ResultFled, battle.ResultPartyWiped}
	rows := make([][]string, 0, len(order))
	for _, r := range order {
		rows = append(rows, []string{r.String(), strconv.Itoa(results[r])})
	}
	return newTable("Result", "Count").Rows(rows...).Render()
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		BorderHeader(true).
		BorderRow(false).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}
