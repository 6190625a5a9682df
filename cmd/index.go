package cmd

import (
	"path/filepath"
	"strconv"

	"github.com/jsphweid/midiroll/batch"
	"github.com/jsphweid/midiroll/constants"
	"github.com/jsphweid/midiroll/db"
	"github.com/jsphweid/midiroll/file"
	"github.com/jsphweid/midiroll/util"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	indexRate    float64
	indexMargin  int
	indexWorkers int
	indexDynamo  bool
)

func init() {
	indexCmd.Flags().Float64Var(&indexRate, "rate", constants.GetSampleRate(), "ticks per second")
	indexCmd.Flags().IntVar(&indexMargin, "margin", constants.GetRangeMargin(), "notes added on each side of the active range")
	indexCmd.Flags().IntVar(&indexWorkers, "workers", 0, "files processed at once (0 means one per CPU)")
	indexCmd.Flags().BoolVar(&indexDynamo, "dynamo", false, "also store summaries in DynamoDB")
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index [maxNum]",
	Short: "Creates index",
	Long:  `Builds a roll for every midi file under MEDIA_PATH and writes them to INDEX_PATH`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var maxNum int
		if len(args) == 1 {
			arg1, err := strconv.Atoi(args[0])
			if err != nil {
				return errors.Wrap(err, "maxNum must be a number")
			}
			maxNum = arg1
		}
		return Index(maxNum)
	},
}

func Index(maxNum int) error {
	mediaDir, err := constants.GetMediaDir()
	if err != nil {
		return err
	}
	outDir := constants.GetIndexDir()
	if err := util.RecreateDir(outDir); err != nil {
		return err
	}

	paths, err := util.GatherAllMidiPaths(mediaDir, maxNum)
	if err != nil {
		return err
	}
	logrus.Infof("Found %v midi files in %v", len(paths), mediaDir)

	fileNumMap := file.CreateFileNumMap(paths)
	summaries := batch.ProcessAllMidiFiles(fileNumMap, batch.Options{
		MediaDir:   mediaDir,
		OutDir:     outDir,
		SampleRate: indexRate,
		Margin:     indexMargin,
		Workers:    indexWorkers,
	})
	if err := util.WriteBinary(filepath.Join(outDir, constants.SummariesFile), summaries); err != nil {
		return err
	}

	if indexDynamo {
		store, err := db.New(constants.GetDynamoEndpoint(), constants.GetDynamoTable())
		if err != nil {
			return err
		}
		if err := store.PutRollSummaries(summaries); err != nil {
			return err
		}
		logrus.Infof("Stored %v summaries in %v", len(summaries), constants.GetDynamoTable())
	}
	return nil
}
