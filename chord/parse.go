package chord

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/jsphweid/theorydex/note"
)

var ErrChordParse = errors.New("could not parse chord")

// Parse reads chords like "C#m Eleventh", "Bb dom 9" or "F/C". Quality
// defaults to major and number to triad. After a slash comes either a bass
// note from the chord or an inversion count.
func Parse(s string) (Chord, error) {
	body, bass, hasBass := strings.Cut(s, "/")

	root, n, err := note.RecognizePitch(body)
	if err != nil {
		return Chord{}, fmt.Errorf("%w: %w", ErrChordParse, err)
	}
	rest := body[n:]

	q := Major
	if got, n, ok := RecognizeQuality(rest); ok {
		q = got
		rest = rest[n:]
	}

	num := Triad
	if got, n, ok := RecognizeNumber(rest); ok {
		num = got
		rest = rest[n:]
	}

	if leftover := strings.TrimSpace(rest); leftover != "" {
		return Chord{}, fmt.Errorf("%w: unexpected %q in %q", ErrChordParse, leftover, s)
	}

	c := New(root, note.DefaultOctave, q, num)
	if !hasBass {
		return c, nil
	}

	inversion, err := bassInversion(c, strings.TrimSpace(bass))
	if err != nil {
		return Chord{}, err
	}
	return WithInversion(root, note.DefaultOctave, q, num, inversion), nil
}

func bassInversion(c Chord, bass string) (int, error) {
	if p, err := note.ParsePitch(bass); err == nil {
		for i, n := range c.Notes() {
			if n.Pitch.Semitone() == p.Semitone() {
				return i, nil
			}
		}
	}

	inversion, err := strconv.Atoi(bass)
	if err != nil || inversion < 0 {
		return 0, fmt.Errorf("%w: %q is neither a chord tone nor an inversion", ErrChordParse, bass)
	}
	return inversion, nil
}

func MustParse(s string) Chord {
	c, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return c
}
