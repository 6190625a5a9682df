package batch

import (
	"path/filepath"
	"runtime"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bep/debounce"
	"github.com/google/uuid"
	"github.com/jsphweid/midiroll/chord"
	"github.com/jsphweid/midiroll/midi"
	"github.com/jsphweid/midiroll/model"
	"github.com/jsphweid/midiroll/roll"
	"github.com/jsphweid/midiroll/util"
	"github.com/pkg/errors"
	"github.com/remeh/sizedwaitgroup"
	"github.com/sirupsen/logrus"
)

type Options struct {
	MediaDir   string
	OutDir     string
	SampleRate float64
	Margin     int
	// defaults to runtime.NumCPU()
	Workers int
	Logger  logrus.FieldLogger
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}

// StoredRoll is what gets written to each roll binary.
type StoredRoll struct {
	Filename   string
	Duration   float64
	SampleRate float64
	Roll       roll.Roll
}

func ReadRoll(path string) (StoredRoll, error) {
	return util.ReadBinary[StoredRoll](path)
}

func ProcessMidiFile(fileNum uint32, filename string, opts Options) (model.RollSummary, error) {
	var summary model.RollSummary
	path := filepath.Join(opts.MediaDir, filename)
	events, duration, err := midi.ReadEvents(path)
	if err != nil {
		return summary, err
	}

	ticks, err := roll.LinearTicks(duration, opts.SampleRate)
	if err != nil {
		return summary, err
	}
	r, err := roll.Build(events, ticks, roll.WithLogger(opts.logger().WithField("file", filename)))
	if err != nil {
		return summary, errors.Wrapf(err, "could not build roll for %v", filename)
	}
	low, high, err := roll.NoteRange(r, opts.Margin)
	if err != nil {
		return summary, errors.Wrapf(err, "%v", filename)
	}

	rollFile := uuid.New().String() + ".dat"
	stored := StoredRoll{
		Filename:   filename,
		Duration:   duration,
		SampleRate: opts.SampleRate,
		Roll:       *r,
	}
	if err := util.WriteBinary(filepath.Join(opts.OutDir, rollFile), stored); err != nil {
		return summary, err
	}

	return model.RollSummary{
		FileNum:    fileNum,
		Filename:   filename,
		RollFile:   rollFile,
		Duration:   duration,
		SampleRate: opts.SampleRate,
		Columns:    r.Columns,
		Low:        low,
		High:       high,
		NumChords:  len(chord.FromRoll(r, ticks)),
	}, nil
}

// ProcessAllMidiFiles builds and stores a roll for every file. Files that
// fail to parse or never sound a note are logged and left out.
func ProcessAllMidiFiles(m model.FileNumToMidiPath, opts Options) []model.RollSummary {
	log := opts.logger()
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	keys := util.GetKeys(m)
	var mu sync.Mutex
	var res []model.RollSummary
	var done int64
	progress := debounce.New(250 * time.Millisecond)

	wg := sizedwaitgroup.New(workers)
	for _, num := range keys {
		wg.Add()
		go func(num uint32, filename string) {
			defer wg.Done()
			summary, err := ProcessMidiFile(num, filename, opts)

			n := atomic.AddInt64(&done, 1)
			progress(func() {
				log.Infof("Processed %v of %v midi files", atomic.LoadInt64(&done), len(keys))
			})
			if err != nil {
				log.WithField("file", filename).Warnf("Skipping because: %v", err)
				return
			}
			log.WithFields(logrus.Fields{
				"file":    filename,
				"n":       n,
				"columns": summary.Columns,
				"low":     summary.Low,
				"high":    summary.High,
			}).Debug("processed")

			mu.Lock()
			res = append(res, summary)
			mu.Unlock()
		}(num, m[num])
	}
	wg.Wait()

	sort.Slice(res, func(i, j int) bool {
		return res[i].FileNum < res[j].FileNum
	})
	log.Infof("Indexed %v of %v midi files", len(res), len(keys))
	return res
}
