package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/hako/durafmt"
	"github.com/jsphweid/midiroll/constants"
	"github.com/jsphweid/midiroll/midi"
	"github.com/jsphweid/midiroll/pitch"
	"github.com/jsphweid/midiroll/roll"
	"github.com/spf13/cobra"
)

var (
	rollRate   float64
	rollMargin int
	rollRows   bool
)

func init() {
	rollCmd.Flags().Float64Var(&rollRate, "rate", constants.GetSampleRate(), "ticks per second")
	rollCmd.Flags().IntVar(&rollMargin, "margin", constants.GetRangeMargin(), "notes added on each side of the active range")
	rollCmd.Flags().BoolVar(&rollRows, "rows", false, "print the roll rows inside the note range")
	rootCmd.AddCommand(rollCmd)
}

var rollCmd = &cobra.Command{
	Use:   "roll <file>",
	Short: "Builds a piano roll for a midi file",
	Long:  `Builds a piano roll for a midi file and prints its note range and chords`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return printRoll(cmd.OutOrStdout(), args[0], rollRate, rollMargin, rollRows)
	},
}

func formatSeconds(seconds float64) string {
	return durafmt.Parse(time.Duration(seconds * float64(time.Second))).LimitFirstN(2).String()
}

func printRoll(w io.Writer, path string, rate float64, margin int, rows bool) error {
	events, duration, err := midi.ReadEvents(path)
	if err != nil {
		return err
	}
	res, err := analyze(events, duration, rate, margin, roll.MaxColumns)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "file:     %v\n", path)
	fmt.Fprintf(w, "duration: %v\n", formatSeconds(duration))
	fmt.Fprintf(w, "columns:  %v (%v per second)\n", res.Columns, rate)
	fmt.Fprintf(w, "range:    %v..%v (%v..%v)\n", res.Low, res.High, pitch.Name(res.Low), pitch.Name(res.High))
	fmt.Fprintf(w, "chords:   %v\n", len(res.Chords))
	for _, c := range res.Chords {
		fmt.Fprintf(w, "  %8.2fs  %-12v %v\n", c.Offset, c.Key, chordNames(c.Notes))
	}
	if rows {
		for i := len(res.Rows) - 1; i >= 0; i-- {
			row := res.Rows[i]
			fmt.Fprintf(w, "%4v %s\n", row.Name, row.Pattern)
		}
	}
	return nil
}
