package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"creaturebattle/internal/battle"
)

func newSpeciesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "species",
		Short: "List the species that can appear in the grass",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), renderSpeciesTable(battle.Roster))
			return nil
		},
	}
}

func renderSpeciesTable(roster []battle.Species) string {
	rows := make([][]string, 0, len(roster))
	for _, s := range roster {
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("#%02x%02x%02x", s.Color.R, s.Color.G, s.Color.B),
			strconv.Itoa(s.BaseHP),
			formatMove(s.Moves[0]),
			formatMove(s.Moves[1]),
		})
	}
	return newTable("Species", "Color", "Base HP", "Move 1", "Move 2").Rows(rows...).Render()
}

func formatMove(m battle.Move) string {
	return fmt.Sprintf("%s (%d, %.0f%%)", m.Name, m.Power, m.Accuracy*100)
}
