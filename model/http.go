package model

type Note struct {
	Pitch  string `json:"pitch" yaml:"pitch"`
	Octave uint8  `json:"octave" yaml:"octave"`
	Midi   uint8  `json:"midi" yaml:"midi"`
}

// NotesResponse is what chord and scale lookups return.
type NotesResponse struct {
	Name  string `json:"name" yaml:"name"`
	Notes []Note `json:"notes" yaml:"notes"`
}

// ChordRequestBody either names the chord as text or spells out its parts.
type ChordRequestBody struct {
	Text      string `json:"text,omitempty"`
	Root      string `json:"root,omitempty"`
	Quality   string `json:"quality,omitempty"`
	Number    string `json:"number,omitempty"`
	Inversion int    `json:"inversion,omitempty"`
	Octave    *uint8 `json:"octave,omitempty"`
}

type ScaleRequestBody struct {
	Text       string `json:"text,omitempty"`
	Tonic      string `json:"tonic,omitempty"`
	Mode       string `json:"mode,omitempty"`
	Octave     *uint8 `json:"octave,omitempty"`
	Descending bool   `json:"descending,omitempty"`
}

type IdentifyRequestBody struct {
	Notes []string `json:"notes"`
}

type IdentifyResponse struct {
	Name      string `json:"name" yaml:"name"`
	Root      string `json:"root" yaml:"root"`
	Quality   string `json:"quality" yaml:"quality"`
	Number    string `json:"number" yaml:"number"`
	Inversion uint8  `json:"inversion" yaml:"inversion"`
}

type IntervalResponse struct {
	Semitones uint8  `json:"semitones" yaml:"semitones"`
	Short     string `json:"short" yaml:"short"`
	Name      string `json:"name" yaml:"name"`
	Step      string `json:"step,omitempty" yaml:"step,omitempty"`
	Inversion string `json:"inversion" yaml:"inversion"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

// IdentifiedSet is one simultaneous note set read from a file. Chord is
// nil when the set does not spell a known chord.
type IdentifiedSet struct {
	Notes []string          `json:"notes" yaml:"notes"`
	Chord *IdentifyResponse `json:"chord" yaml:"chord"`
}

type ExportResponse struct {
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}
