package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/theorydex/chord"
	"github.com/jsphweid/theorydex/constants"
	"github.com/jsphweid/theorydex/logger"
	"github.com/jsphweid/theorydex/mode"
	"github.com/jsphweid/theorydex/model"
	"github.com/jsphweid/theorydex/note"
	"github.com/jsphweid/theorydex/scale"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

const requestIDHeader = "X-Request-Id"

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Runs the HTTP API",
	Long:  `Serves chord and scale spelling and chord identification over HTTP on PORT.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/chord", HandleChord).Methods("POST")
	router.HandleFunc("/scale", HandleScale).Methods("POST")
	router.HandleFunc("/identify", HandleIdentify).Methods("POST")
	router.HandleFunc("/chords", listHandler(names(chord.Available()))).Methods("GET")
	router.HandleFunc("/chords/qualities", listHandler(names(chord.Qualities))).Methods("GET")
	router.HandleFunc("/chords/numbers", listHandler(names(chord.Numbers))).Methods("GET")
	router.HandleFunc("/scales", listHandler(names(scale.Available()))).Methods("GET")
	router.HandleFunc("/pitches", listHandler(names(note.Chromatic()))).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins: constants.GetCorsOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
	})
	return withRequestID(c.Handler(router))
}

// withRequestID keeps a caller's id when it is a UUID and makes one up
// otherwise.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("could not write response", err, nil)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger.Warn("bad request", logger.Fields{
		"path":       r.URL.Path,
		"error":      err.Error(),
		"request_id": w.Header().Get(requestIDHeader),
	})
	writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
}

func decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("could not read request body: %w", err)
	}
	return nil
}

func listHandler(values []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, values)
	}
}

func HandleChord(w http.ResponseWriter, r *http.Request) {
	var body model.ChordRequestBody
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	c, err := chordFromRequest(body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.FromNotes(c.String(), c.Notes()))
}

func HandleScale(w http.ResponseWriter, r *http.Request) {
	var body model.ScaleRequestBody
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	s, err := scaleFromRequest(body)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.FromNotes(s.String(), s.Notes()))
}

func HandleIdentify(w http.ResponseWriter, r *http.Request) {
	var body model.IdentifyRequestBody
	if err := decode(r, &body); err != nil {
		writeError(w, r, err)
		return
	}
	notes, err := parseNotes(body.Notes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	c, err := chord.IdentifyNotes(notes)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, model.FromChord(c))
}

func octaveOr(octave *uint8) uint8 {
	if octave == nil {
		return note.DefaultOctave
	}
	return *octave
}

// chordFromRequest prefers text. Without it the root is required and the
// quality and number take either their full names or the usual shorthand.
func chordFromRequest(body model.ChordRequestBody) (chord.Chord, error) {
	if body.Text != "" {
		c, err := chord.Parse(body.Text)
		if err != nil {
			return chord.Chord{}, err
		}
		return chord.WithInversion(c.Root, octaveOr(body.Octave), c.Quality, c.Number, int(c.Inversion)), nil
	}

	root, err := note.ParsePitch(body.Root)
	if err != nil {
		return chord.Chord{}, fmt.Errorf("%w: %w", chord.ErrChordParse, err)
	}
	q, err := lookup(body.Quality, chord.Major, chord.Qualities, chord.RecognizeQuality)
	if err != nil {
		return chord.Chord{}, err
	}
	num, err := lookup(body.Number, chord.Triad, chord.Numbers, chord.RecognizeNumber)
	if err != nil {
		return chord.Chord{}, err
	}
	return chord.WithInversion(root, octaveOr(body.Octave), q, num, body.Inversion), nil
}

func lookup[T fmt.Stringer](s string, fallback T, all []T, recognize func(string) (T, int, bool)) (T, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback, nil
	}
	for _, v := range all {
		if strings.EqualFold(v.String(), s) {
			return v, nil
		}
	}
	if v, n, ok := recognize(s); ok && strings.TrimSpace(s[n:]) == "" {
		return v, nil
	}
	return fallback, fmt.Errorf("%w: unknown %q", chord.ErrChordParse, s)
}

func scaleFromRequest(body model.ScaleRequestBody) (scale.Scale, error) {
	dir := note.Ascending
	if body.Descending {
		dir = note.Descending
	}

	if body.Text != "" {
		s, err := scale.Parse(body.Text, dir)
		if err != nil {
			return scale.Scale{}, err
		}
		return scale.FromMode(s.Tonic, octaveOr(body.Octave), s.Mode, dir), nil
	}

	tonic, err := note.ParsePitch(body.Tonic)
	if err != nil {
		return scale.Scale{}, fmt.Errorf("%w: %w", scale.ErrScaleParse, err)
	}
	m, err := mode.Parse(body.Mode)
	if err != nil {
		return scale.Scale{}, fmt.Errorf("%w: %w", scale.ErrScaleParse, err)
	}
	return scale.FromMode(tonic, octaveOr(body.Octave), m, dir), nil
}

func serve() error {
	addr := ":" + constants.GetPort()
	logger.Info("serving", logger.Fields{"addr": addr})
	return http.ListenAndServe(addr, NewRouter())
}
