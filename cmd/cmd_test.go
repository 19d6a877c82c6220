package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jsphweid/theorydex/chord"
	"github.com/jsphweid/theorydex/midi"
	"github.com/jsphweid/theorydex/model"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func run(t *testing.T, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		format = "text"
		descending = false
		exportOut = ""
		identifyMidi = ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestChordNotes(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"C Major Seventh", "C Major Seventh: C4 E4 G4 B4\n"},
		{"C7", "C Major Seventh: C4 E4 G4 B4\n"},
		{"C dom 7", "C Dominant Seventh: C4 E4 G4 Bb4\n"},
		{"F/C", "F Major Triad, 2nd Inversion: C4 F4 A4\n"},
		{"Eb/G", "Eb Major Triad, 1st Inversion: G4 Bb4 Eb5\n"},
		{"Am", "A Minor Triad: A4 C5 E5\n"},
		{"C dim", "C Diminished Triad: C4 Eb4 Gb4\n"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			out, err := run(t, append([]string{"chord", "notes"}, strings.Fields(tc.input)...)...)
			assert.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestChordNotesJSON(t *testing.T) {
	out, err := run(t, "--format", "json", "chord", "notes", "Am")

	assert := assert.New(t)
	assert.NoError(err)

	var res model.NotesResponse
	assert.NoError(json.Unmarshal([]byte(out), &res))
	assert.Equal("A Minor Triad", res.Name)
	assert.Equal([]model.Note{
		{Pitch: "A", Octave: 4, Midi: 69},
		{Pitch: "C", Octave: 5, Midi: 72},
		{Pitch: "E", Octave: 5, Midi: 76},
	}, res.Notes)
}

func TestBadChordFails(t *testing.T) {
	_, err := run(t, "chord", "notes", "H7")
	assert.ErrorIs(t, err, chord.ErrChordParse)
}

func TestChordList(t *testing.T) {
	out, err := run(t, "chord", "list")

	assert := assert.New(t)
	assert.NoError(err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(lines, 23)
	assert.Equal("Major Triad", lines[0])
	assert.Equal("Minor Thirteenth", lines[len(lines)-1])
}

func TestScaleNotes(t *testing.T) {
	out, err := run(t, "scale", "notes", "G", "mixolydian")
	assert.NoError(t, err)
	assert.Equal(t, "G Mixolydian: G4 A4 B4 C5 D5 E5 F5 G5\n", out)

	out, err = run(t, "scale", "notes", "C major", "--descending")
	assert.NoError(t, err)
	assert.Equal(t, "C Ionian, Descending: C4 B3 A3 G3 F3 E3 D3 C3\n", out)
}

func TestIntervalYAML(t *testing.T) {
	out, err := run(t, "--format", "yaml", "interval", "4")

	assert := assert.New(t)
	assert.NoError(err)

	var res model.IntervalResponse
	assert.NoError(yaml.Unmarshal([]byte(out), &res))
	assert.Equal(model.IntervalResponse{
		Semitones: 4,
		Short:     "M3",
		Name:      "Major Third",
		Inversion: "m6",
	}, res)
}

func TestIntervalOutOfRange(t *testing.T) {
	_, err := run(t, "interval", "13")
	assert.Error(t, err)

	_, err = run(t, "interval", "three")
	assert.Error(t, err)
}

func TestIdentify(t *testing.T) {
	out, err := run(t, "identify", "C", "Eb", "Gb")
	assert.NoError(t, err)
	assert.Equal(t, "C Diminished Triad\n", out)

	out, err = run(t, "identify", "E3", "G3", "C4")
	assert.NoError(t, err)
	assert.Equal(t, "C Major Triad, 1st Inversion\n", out)

	_, err = run(t, "identify")
	assert.Error(t, err)
}

func TestUnknownFormat(t *testing.T) {
	_, err := run(t, "--format", "xml", "interval", "4")
	assert.Error(t, err)
}

func TestExportThenIdentifyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "song", "cmaj7.mid")

	out, err := run(t, "export", "chord", "C", "Major", "Seventh", "--out", path)
	assert := assert.New(t)
	assert.NoError(err)
	assert.Equal(path+"\n", out)

	out, err = run(t, "identify", "--midi", path)
	assert.NoError(err)
	assert.Equal("C4 E4 G4 B4: C Major Seventh\n", out)
}

func TestExportScaleToExportDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("EXPORT_DIR", dir)

	out, err := run(t, "--format", "json", "export", "scale", "C", "pentatonic")
	assert := assert.New(t)
	assert.NoError(err)

	var res model.ExportResponse
	assert.NoError(json.Unmarshal([]byte(out), &res))
	assert.Equal("C Pentatonic Major", res.Name)
	assert.Equal(dir, filepath.Dir(res.Path))
	assert.Equal(".mid", filepath.Ext(res.Path))

	s, err := midi.ReadMidiFile(res.Path)
	assert.NoError(err)
	assert.Len(midi.NoteSets(s), 6)
}

func TestIdentifyFileReportsUnknownSets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scale.mid")
	_, err := run(t, "export", "scale", "C", "pentatonic", "--out", path)
	assert.NoError(t, err)

	out, err := run(t, "--format", "json", "identify", "--midi", path)
	assert.NoError(t, err)

	var res []model.IdentifiedSet
	assert.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Len(t, res, 6)
	assert.Equal(t, []string{"C4"}, res[0].Notes)
	assert.Nil(t, res[0].Chord)
}
