package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"

	"github.com/dustin/go-humanize"
	"github.com/jsphweid/midiroll/constants"
	"github.com/jsphweid/midiroll/model"
	"github.com/jsphweid/midiroll/pitch"
	"github.com/jsphweid/midiroll/util"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Summarizes the index in INDEX_PATH`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return report(cmd.OutOrStdout(), constants.GetIndexDir())
	},
}

var rollFileRegex = regexp.MustCompile("^[0-9a-fA-F]{8}-([0-9a-fA-F]{4}-){3}[0-9a-fA-F]{12}.dat$")

type indexReport struct {
	numRollFiles  int
	rollBytes     uint64
	numSummaries  int
	totalDuration float64
	totalColumns  []int
	low           int
	high          int
}

func analyzeIndex(dir string) (indexReport, error) {
	var rep indexReport
	files, err := os.ReadDir(dir)
	if err != nil {
		return rep, errors.Wrap(err, "could not read index dir")
	}
	for _, f := range files {
		if !rollFileRegex.MatchString(f.Name()) {
			continue
		}
		info, err := f.Info()
		if err != nil {
			return rep, errors.Wrap(err, "could not get file stats")
		}
		rep.numRollFiles++
		rep.rollBytes += uint64(info.Size())
	}

	summaries, err := util.ReadBinary[[]model.RollSummary](filepath.Join(dir, constants.SummariesFile))
	if err != nil {
		return rep, err
	}
	rep.numSummaries = len(summaries)
	rep.low, rep.high = 127, 0
	for _, s := range summaries {
		rep.totalDuration += s.Duration
		rep.totalColumns = append(rep.totalColumns, s.Columns)
		if s.Low < rep.low {
			rep.low = s.Low
		}
		if s.High > rep.high {
			rep.high = s.High
		}
	}
	return rep, nil
}

func report(w io.Writer, dir string) error {
	rep, err := analyzeIndex(dir)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "roll files:     %v (%v)\n", rep.numRollFiles, humanize.Bytes(rep.rollBytes))
	fmt.Fprintf(w, "summaries:      %v\n", rep.numSummaries)
	if rep.numSummaries != rep.numRollFiles {
		fmt.Fprintf(w, "WARNING: %v roll files are not in the summaries\n", rep.numRollFiles-rep.numSummaries)
	}
	fmt.Fprintf(w, "total duration: %v\n", formatSeconds(rep.totalDuration))
	fmt.Fprintf(w, "total columns:  %v\n", humanize.Comma(int64(util.Sum(rep.totalColumns))))
	if rep.numSummaries > 0 {
		fmt.Fprintf(w, "note range:     %v..%v\n", pitch.Name(rep.low), pitch.Name(rep.high))
	}
	return nil
}
