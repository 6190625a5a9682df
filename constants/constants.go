package constants

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DefaultSampleRate  = 100.0
	DefaultRangeMargin = 2
	DefaultPort        = 8080
	DefaultDynamoTable = "midiroll-summaries"

	SummariesFile = "summaries.dat"
)

func GetIndexDir() string {
	path := os.Getenv("INDEX_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetMediaDir() (string, error) {
	path := os.Getenv("MEDIA_PATH")
	if path != "" {
		return path, nil
	}
	return "", errors.New("MEDIA_PATH environment variable is not set")
}

func getFloat(name string, fallback float64) float64 {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		logrus.WithField("env", name).Warnf("ignoring invalid value %q", raw)
		return fallback
	}
	return v
}

func getInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		logrus.WithField("env", name).Warnf("ignoring invalid value %q", raw)
		return fallback
	}
	return v
}

// GetSampleRate is in ticks per second.
func GetSampleRate() float64 {
	return getFloat("SAMPLE_RATE", DefaultSampleRate)
}

func GetRangeMargin() int {
	return getInt("RANGE_MARGIN", DefaultRangeMargin)
}

func GetPort() int {
	return getInt("PORT", DefaultPort)
}

func GetDynamoEndpoint() string {
	endpoint := os.Getenv("DYNAMO_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

func GetDynamoTable() string {
	table := os.Getenv("DYNAMO_TABLE")
	if table != "" {
		return table
	}
	return DefaultDynamoTable
}
