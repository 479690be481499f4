package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/vango-dev/teamfight/internal/errors"
	"github.com/vango-dev/teamfight/internal/tracker"
	"github.com/vango-dev/teamfight/internal/tracker/roster"
)

var (
	statsHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	statsCellStyle   = lipgloss.NewStyle().Padding(0, 1)
	statsNumberStyle = statsCellStyle.Align(lipgloss.Right)
	statsBorderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func statsCmd(dir *string) *cobra.Command {
	var (
		data string
		key  string
		asc  bool
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print champion usage",
		Long: `Print how often each champion was drafted, with wins, losses and
win rate, read from the data file.

Examples:
  teamfight stats
  teamfight stats --sort=wins
  teamfight stats --sort=losses --asc`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sortKey, err := tracker.ParseSortKey(key)
			if err != nil {
				return errors.New("T030").WithDetailf("Got %q.", key).Wrap(err)
			}
			order := tracker.StatsSort{Key: sortKey, Direction: tracker.Desc}
			if asc {
				order.Direction = tracker.Asc
			}

			cfg, err := loadConfig(*dir)
			if err != nil {
				return err
			}
			if data != "" {
				cfg.Data.File = data
			}
			matches, err := loadMatches(cfg, newLogger(cfg, cmd.ErrOrStderr()))
			if err != nil {
				return err
			}

			usage := tracker.ChampionUsage(roster.Default(), matches)
			tracker.SortUsage(usage, order)
			printStats(cmd.OutOrStdout(), usage, len(matches))
			return nil
		},
	}

	cmd.Flags().StringVarP(&data, "data", "d", "", "Data file holding the matches")
	cmd.Flags().StringVarP(&key, "sort", "s", string(tracker.SortTotal), "Sort by total, wins or losses")
	cmd.Flags().BoolVar(&asc, "asc", false, "Sort ascending")

	return cmd
}

// printStats renders usage as a bordered table, or a notice when nothing has
// been recorded.
func printStats(w io.Writer, usage []tracker.Usage, matchCount int) {
	if len(usage) == 0 {
		info(w, "No matches recorded yet.")
		return
	}

	rows := make([][]string, 0, len(usage))
	for _, u := range usage {
		rows = append(rows, []string{
			u.Champion.Name,
			strconv.Itoa(u.Total),
			strconv.Itoa(u.Wins),
			strconv.Itoa(u.Losses),
			fmt.Sprintf("%.1f%%", u.WinRate()),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(statsBorderStyle).
		Headers("チャンピオン", "合計", "勝利", "敗北", "勝率").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return statsHeaderStyle
			case col == 0:
				return statsCellStyle
			default:
				return statsNumberStyle
			}
		})

	fmt.Fprintln(w, t.Render())
	info(w, "%d matches", matchCount)
}
