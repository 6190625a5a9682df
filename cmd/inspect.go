package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/midiroll/batch"
	"github.com/jsphweid/midiroll/model"
	"github.com/jsphweid/midiroll/pitch"
	"github.com/jsphweid/midiroll/roll"
	"github.com/jsphweid/midiroll/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inspectCmd)
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.dat>",
	Short: "Inspects a summaries file or a roll",
	Long:  `Prints the contents of summaries.dat or of a single roll binary`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspect(cmd.OutOrStdout(), args[0])
	},
}

func inspect(w io.Writer, path string) error {
	summaries, err := util.ReadBinary[[]model.RollSummary](path)
	if err == nil {
		for _, s := range summaries {
			fmt.Fprintf(w, "%5v %-40v %10v %6v cols  %v..%v  %v chords  %v\n",
				s.FileNum, s.Filename, formatSeconds(s.Duration), s.Columns,
				pitch.Name(s.Low), pitch.Name(s.High), s.NumChords, s.RollFile)
		}
		return nil
	}

	stored, rollErr := batch.ReadRoll(path)
	if rollErr != nil {
		return errors.Wrapf(rollErr, "%v is neither a summaries file (%v) nor a roll", path, err)
	}
	r := &stored.Roll
	fmt.Fprintf(w, "file:     %v\n", stored.Filename)
	fmt.Fprintf(w, "duration: %v\n", formatSeconds(stored.Duration))
	fmt.Fprintf(w, "columns:  %v (%v per second)\n", r.Columns, stored.SampleRate)
	for note := roll.NumNotes - 1; note >= 0; note-- {
		var active int
		for _, v := range r.Row(note) {
			if v > 0 {
				active++
			}
		}
		if active > 0 {
			fmt.Fprintf(w, "  %4v %6v cols\n", pitch.Name(note), active)
		}
	}
	return nil
}
