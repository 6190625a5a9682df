package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jsphweid/midiroll/constants"
	"github.com/jsphweid/midiroll/midi"
	"github.com/jsphweid/midiroll/model"
	"github.com/jsphweid/midiroll/roll"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// 32MB is far more than any reasonable midi file
const maxBodySize = 32 << 20

// caps one response at a 128MB roll, under 3 hours at 100 ticks per second
const maxServeColumns = 1 << 20

var servePort int

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", constants.GetPort(), "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `Serves piano rolls for uploaded midi files over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve(servePort)
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Warnf("Could not write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func parseQuery(r *http.Request) (float64, int, error) {
	rate := constants.GetSampleRate()
	margin := constants.GetRangeMargin()
	q := r.URL.Query()
	if raw := q.Get("rate"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, 0, errors.Wrap(err, "invalid rate")
		}
		rate = v
	}
	if raw := q.Get("margin"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, errors.Wrap(err, "invalid margin")
		}
		margin = v
	}
	return rate, margin, nil
}

// HandleRoll takes a raw midi file as the request body.
func HandleRoll(w http.ResponseWriter, r *http.Request) {
	rate, margin, err := parseQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s, err := midi.Parse(io.LimitReader(r.Body, maxBodySize))
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	events, duration := midi.Events(s)

	res, err := analyze(events, duration, rate, margin, maxServeColumns)
	switch {
	case errors.Is(err, roll.ErrInvalidSampleRate),
		errors.Is(err, roll.ErrInvalidDuration),
		errors.Is(err, roll.ErrTooManyTicks):
		writeError(w, http.StatusBadRequest, err)
		return
	case err != nil:
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}

	logrus.WithFields(logrus.Fields{
		"events":  len(events),
		"columns": res.Columns,
		"low":     res.Low,
		"high":    res.High,
	}).Info("served roll")
	writeJSON(w, http.StatusOK, res)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/roll", HandleRoll).Methods("POST")
	router.HandleFunc("/health", handleHealth).Methods("GET")
	return cors.Default().Handler(router)
}

func serve(port int) {
	addr := fmt.Sprintf(":%v", port)
	logrus.Infof("Listening on %v", addr)
	logrus.Fatal(http.ListenAndServe(addr, NewRouter()))
}
