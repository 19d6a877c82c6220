package note

// PitchSymbol names the twenty spellings that key signatures use.
type PitchSymbol uint8

const (
	Bs PitchSymbol = iota
	Cn
	Cs
	Db
	Dn
	Ds
	Eb
	En
	Es
	Fn
	Fs
	Gb
	Gn
	Gs
	Ab
	An
	As
	Bb
	Bn
	Cb
)

var symbolPitches = [...]Pitch{
	Bs: {B, 1},
	Cn: {C, 0},
	Cs: {C, 1},
	Db: {D, -1},
	Dn: {D, 0},
	Ds: {D, 1},
	Eb: {E, -1},
	En: {E, 0},
	Es: {E, 1},
	Fn: {F, 0},
	Fs: {F, 1},
	Gb: {G, -1},
	Gn: {G, 0},
	Gs: {G, 1},
	Ab: {A, -1},
	An: {A, 0},
	As: {A, 1},
	Bb: {B, -1},
	Bn: {B, 0},
	Cb: {C, -1},
}

func (s PitchSymbol) Pitch() Pitch {
	return symbolPitches[s]
}

func (s PitchSymbol) Semitone() uint8 {
	return s.Pitch().Semitone()
}

func (s PitchSymbol) String() string {
	p := s.Pitch()
	switch p.Accidental {
	case 1:
		return p.Letter.String() + "♯"
	case -1:
		return p.Letter.String() + "♭"
	}
	return p.Letter.String()
}

// SymbolOf finds the symbol spelled exactly like p.
func SymbolOf(p Pitch) (PitchSymbol, bool) {
	for s, sp := range symbolPitches {
		if sp == p {
			return PitchSymbol(s), true
		}
	}
	return 0, false
}
