package cmd

import (
	"os"

	"github.com/jsphweid/midiroll/midi"
	"github.com/jsphweid/midiroll/sample"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	sampleOffset float64
	sampleNotes  int
)

func init() {
	sampleCmd.Flags().Float64Var(&sampleOffset, "offset", 0, "seconds to skip")
	sampleCmd.Flags().IntVar(&sampleNotes, "notes", 10, "note events to keep per track")
	rootCmd.AddCommand(sampleCmd)
}

var sampleCmd = &cobra.Command{
	Use:   "sample <in.mid> <out.mid>",
	Short: "Writes a short excerpt of a midi file",
	Long:  `Writes a short excerpt of a midi file`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeSample(args[0], args[1], sampleOffset, sampleNotes)
	},
}

func writeSample(in, out string, offset float64, notes int) error {
	mf, err := midi.ReadMidiFile(in)
	if err != nil {
		return err
	}
	excerpt, err := sample.Excerpt(mf, offset, notes)
	if err != nil {
		return err
	}
	data, err := sample.Encode(excerpt)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, data, 0666); err != nil {
		return errors.Wrapf(err, "could not write %v", out)
	}
	logrus.WithFields(logrus.Fields{"in": in, "out": out}).Info("wrote sample")
	return nil
}
