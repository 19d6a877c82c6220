package note

import (
	"github.com/jsphweid/theorydex/mode"
	"github.com/jsphweid/theorydex/util"
)

// KeySignature picks spellings for semitones heard in the context of a
// tonic and an optional mode.
type KeySignature struct {
	Tonic Pitch
	Mode  mode.Mode
}

func NewKeySignature(tonic Pitch, m mode.Mode) KeySignature {
	return KeySignature{Tonic: tonic, Mode: m}
}

// diatonic spellings of the major keys on the circle of fifths
var majorKeys = map[Pitch][7]PitchSymbol{
	{C, 0}:  {Cn, Dn, En, Fn, Gn, An, Bn},
	{G, 0}:  {Gn, An, Bn, Cn, Dn, En, Fs},
	{D, 0}:  {Dn, En, Fs, Gn, An, Bn, Cs},
	{A, 0}:  {An, Bn, Cs, Dn, En, Fs, Gs},
	{E, 0}:  {En, Fs, Gs, An, Bn, Cs, Ds},
	{B, 0}:  {Bn, Cs, Ds, En, Fs, Gs, As},
	{F, 1}:  {Fs, Gs, As, Bn, Cs, Ds, Es},
	{C, 1}:  {Cs, Ds, Es, Fs, Gs, As, Bs},
	{F, 0}:  {Fn, Gn, An, Bb, Cn, Dn, En},
	{B, -1}: {Bb, Cn, Dn, Eb, Fn, Gn, An},
	{E, -1}: {Eb, Fn, Gn, Ab, Bb, Cn, Dn},
	{A, -1}: {Ab, Bb, Cn, Db, Eb, Fn, Gn},
	{D, -1}: {Db, Eb, Fn, Gb, Ab, Bb, Cn},
	{G, -1}: {Gb, Ab, Bb, Cb, Db, Eb, Fn},
}

var sharpSymbols = [12]PitchSymbol{Cn, Cs, Dn, Ds, En, Fn, Fs, Gn, Gs, An, As, Bn}
var flatSymbols = [12]PitchSymbol{Cn, Db, Dn, Eb, En, Fn, Gb, Gn, Ab, An, Bb, Bn}

// RelativeMajor is the tonic of the major key sharing this key's signature.
// The letter is found by counting down the mode's degree so that Eb aeolian
// resolves to Gb rather than F#.
func (k KeySignature) RelativeMajor() Pitch {
	offset := k.Mode.Offset()
	if offset == 0 {
		return k.Tonic
	}
	letter := k.Tonic.Letter.Shift(-k.Mode.Degree())
	semitone := util.Mod(int(k.Tonic.Semitone())-offset, 12)
	accidental := util.Mod(semitone-letter.Base(), 12)
	if accidental > 6 {
		accidental -= 12
	}
	return NewPitch(letter, accidental)
}

// Spellings returns the seven diatonic symbols of the key, if the key has a
// conventional signature.
func (k KeySignature) Spellings() ([7]PitchSymbol, bool) {
	spellings, ok := majorKeys[k.RelativeMajor()]
	return spellings, ok
}

// UsesFlats reports whether chromatic tones are spelled with flats.
func (k KeySignature) UsesFlats() bool {
	if spellings, ok := k.Spellings(); ok {
		for _, s := range spellings {
			if s.Pitch().Accidental < 0 {
				return true
			}
		}
		return false
	}
	return k.RelativeMajor().Accidental < 0
}

func (k KeySignature) Symbol(semitone uint8) PitchSymbol {
	semitone %= 12
	if spellings, ok := k.Spellings(); ok {
		for _, s := range spellings {
			if s.Semitone() == semitone {
				return s
			}
		}
	}
	if k.UsesFlats() {
		return flatSymbols[semitone]
	}
	return sharpSymbols[semitone]
}

func (k KeySignature) Pitch(semitone uint8) Pitch {
	return k.Symbol(semitone).Pitch()
}

func (k KeySignature) String() string {
	if k.Mode == mode.None {
		return k.Tonic.String()
	}
	return k.Tonic.String() + " " + k.Mode.String()
}
