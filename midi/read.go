package midi

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/jsphweid/theorydex/note"
	"github.com/jsphweid/theorydex/util"
	"gitlab.com/gomidi/midi/v2/smf"
	"golang.org/x/exp/slices"
)

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading midi file: %w", err)
	}
	return Read(bytes.NewReader(dat))
}

func Read(r io.Reader) (s *smf.SMF, e error) {
	// malformed files can panic inside the parser
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if rec := recover(); rec != nil {
			s, e = nil, fmt.Errorf("parsing midi file: %v", rec)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("parsing midi file: %w", err)
	}
	return res, nil
}

type reducedEvent struct {
	offset    int64
	isNoteOff bool
	key       uint8
}

// NoteSets returns every distinct set of keys held down in the file, in
// the order they first sound. Keys in a set are ascending.
func NoteSets(s *smf.SMF) [][]uint8 {
	var events []reducedEvent
	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteOn(&channel, &key, &velocity):
				events = append(events, reducedEvent{
					offset:    s.TimeAt(absTicks),
					isNoteOff: velocity == 0,
					key:       key,
				})
			case event.Message.GetNoteOff(&channel, &key, &velocity):
				events = append(events, reducedEvent{
					offset:    s.TimeAt(absTicks),
					isNoteOff: true,
					key:       key,
				})
			}
		}
	}

	// earlier first, and note offs before note ons at the same time
	slices.SortStableFunc(events, func(a, b reducedEvent) bool {
		if a.offset != b.offset {
			return a.offset < b.offset
		}
		return a.isNoteOff && !b.isNoteOff
	})

	var res [][]uint8
	pressed := make(map[uint8]bool)
	for i, evt := range events {
		if evt.isNoteOff {
			delete(pressed, evt.key)
		} else {
			pressed[evt.key] = true
		}

		// only look at the state once every event at this offset is applied
		if i+1 < len(events) && events[i+1].offset == evt.offset {
			continue
		}
		set := HeldKeys(pressed)
		if len(set) == 0 || (len(res) > 0 && slices.Equal(res[len(res)-1], set)) {
			continue
		}
		res = append(res, set)
	}
	return res
}

// HeldKeys sorts the keys of a held-note set.
func HeldKeys(pressed map[uint8]bool) []uint8 {
	return util.GetKeys(pressed)
}

func ToNotes(keys []uint8) []note.Note {
	res := make([]note.Note, len(keys))
	for i, k := range keys {
		res[i] = note.FromMIDI(k)
	}
	return res
}
