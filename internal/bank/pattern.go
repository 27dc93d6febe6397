package bank

import "github.com/dpsio/octatools/internal/codec"

const (
	AudioTracksPerPattern = 8
	MidiTracksPerPattern  = 8
)

// PatternScaleSettings is the pattern-wide scale/length block.
type PatternScaleSettings struct {
	Field0 byte
	Len1   byte
	Scale1 byte
	Len2   byte
	Scale2 byte
	Field5 byte
}

// PatternChainBehavior is the pattern's chain-with-next-pattern behavior.
type PatternChainBehavior struct {
	Field0 byte
	Field1 byte
}

// Pattern is one of a bank's 16 per-step sequences.
type Pattern struct {
	ScaleSettings  PatternScaleSettings
	ChainBehavior  PatternChainBehavior
	TempoHi        byte
	TempoLo        byte
	PartAssignment byte // 0..3
	AudioTracks    [AudioTracksPerPattern]AudioTrackTrigs
	MidiTracks     [MidiTracksPerPattern]MidiTrackTrigs
}

// DefaultPattern returns a pattern with the device's default scale/chain/
// tempo settings (tempo_1=11, tempo_2=64, believed to represent 120 BPM)
// and position-aware default tracks.
func DefaultPattern() Pattern {
	p := Pattern{
		ScaleSettings:  PatternScaleSettings{Len1: 16, Scale1: 2, Len2: 16, Scale2: 2},
		ChainBehavior:  PatternChainBehavior{},
		TempoHi:        11,
		TempoLo:        64,
		PartAssignment: 0,
	}
	for i := 0; i < AudioTracksPerPattern; i++ {
		p.AudioTracks[i] = DefaultAudioTrackTrigs(i)
	}
	for i := 0; i < MidiTracksPerPattern; i++ {
		p.MidiTracks[i] = DefaultMidiTrackTrigs(i)
	}
	return p
}

func decodePattern(r *codec.Reader) Pattern {
	var p Pattern
	p.ScaleSettings.Field0 = r.U8("pattern.scale.field0")
	p.ScaleSettings.Len1 = r.U8("pattern.scale.len1")
	p.ScaleSettings.Scale1 = r.U8("pattern.scale.scale1")
	p.ScaleSettings.Len2 = r.U8("pattern.scale.len2")
	p.ScaleSettings.Scale2 = r.U8("pattern.scale.scale2")
	p.ScaleSettings.Field5 = r.U8("pattern.scale.field5")
	p.ChainBehavior.Field0 = r.U8("pattern.chain.field0")
	p.ChainBehavior.Field1 = r.U8("pattern.chain.field1")
	p.TempoHi = r.U8("pattern.tempo_hi")
	p.TempoLo = r.U8("pattern.tempo_lo")
	p.PartAssignment = r.U8("pattern.part_assignment")
	r.Check(p.PartAssignment <= 3, "pattern.part_assignment", "got %d, max 3", p.PartAssignment)
	for i := range p.AudioTracks {
		p.AudioTracks[i] = decodeAudioTrackTrigs(r)
	}
	for i := range p.MidiTracks {
		p.MidiTracks[i] = decodeMidiTrackTrigs(r)
	}
	return p
}

func encodePattern(w *codec.Writer, p Pattern) {
	w.U8(p.ScaleSettings.Field0)
	w.U8(p.ScaleSettings.Len1)
	w.U8(p.ScaleSettings.Scale1)
	w.U8(p.ScaleSettings.Len2)
	w.U8(p.ScaleSettings.Scale2)
	w.U8(p.ScaleSettings.Field5)
	w.U8(p.ChainBehavior.Field0)
	w.U8(p.ChainBehavior.Field1)
	w.U8(p.TempoHi)
	w.U8(p.TempoLo)
	w.U8(p.PartAssignment)
	for _, t := range p.AudioTracks {
		encodeAudioTrackTrigs(w, t)
	}
	for _, t := range p.MidiTracks {
		encodeMidiTrackTrigs(w, t)
	}
}

// UpdateStaticPlock rewrites every audio track's static sample-lock plocks
// equal to from into to.
func (p *Pattern) UpdateStaticPlock(from, to byte) {
	for i := range p.AudioTracks {
		p.AudioTracks[i].UpdateStaticPlock(from, to)
	}
}

// UpdateFlexPlock is the flex-kind counterpart of UpdateStaticPlock.
func (p *Pattern) UpdateFlexPlock(from, to byte) {
	for i := range p.AudioTracks {
		p.AudioTracks[i].UpdateFlexPlock(from, to)
	}
}
