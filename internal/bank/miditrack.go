package bank

import "github.com/dpsio/octatools/internal/codec"

var midiTrackHeader = [4]byte{'M', 'T', 'R', 'A'}

// MidiTrackTrigs mirrors AudioTrackTrigs for a MIDI track: no recorder
// mask, MIDI-specific plocks, and a 16-byte arp sequence in place of the
// sample-locked plock sentinel fields.
type MidiTrackTrigs struct {
	TrackID                  byte // 0..7
	Masks                    MidiTrigMasks
	ScalePerTrackMode        PerTrackScale
	SwingAmount              byte
	PatternSettings          TrackPatternSettings
	Plocks                   [TrigCount]MidiPlock
	ArpSequence              [16]byte
}

// DefaultMidiTrackTrigs returns the position-dependent default for MIDI
// track id (0..7), mirroring DefaultAudioTrackTrigs.
func DefaultMidiTrackTrigs(id int) MidiTrackTrigs {
	if id < 0 || id >= 8 {
		panic("bank: midi track id out of range")
	}
	t := MidiTrackTrigs{TrackID: byte(id)}
	for i := range t.Masks.Swing {
		t.Masks.Swing[i] = 170
	}
	t.ScalePerTrackMode = PerTrackScale{Length: 16, Scale: 2}
	t.PatternSettings = TrackPatternSettings{StartSilent: 255}
	for i := range t.Plocks {
		t.Plocks[i] = DefaultMidiPlock()
	}
	return t
}

func decodeMidiTrackTrigs(r *codec.Reader) MidiTrackTrigs {
	r.CheckHeader(midiTrackHeader[:], "midi_track.header")
	_ = r.Bytes(4, "midi_track.reserved")
	var t MidiTrackTrigs
	t.TrackID = r.U8("midi_track.track_id")
	r.Array(t.Masks.Trigger[:], "midi_track.masks.trigger")
	r.Array(t.Masks.Trigless[:], "midi_track.masks.trigless")
	r.Array(t.Masks.Plock[:], "midi_track.masks.plock")
	r.Array(t.Masks.Oneshot[:], "midi_track.masks.oneshot")
	r.Array(t.Masks.Swing[:], "midi_track.masks.swing")
	t.ScalePerTrackMode.Length = r.U8("midi_track.scale.length")
	t.ScalePerTrackMode.Scale = r.U8("midi_track.scale.scale")
	t.SwingAmount = r.U8("midi_track.swing_amount")
	t.PatternSettings.StartSilent = r.U8("midi_track.settings.start_silent")
	t.PatternSettings.PlaysFree = r.U8("midi_track.settings.plays_free")
	t.PatternSettings.TrigMode = r.U8("midi_track.settings.trig_mode")
	t.PatternSettings.TrigQuant = r.U8("midi_track.settings.trig_quant")
	t.PatternSettings.OneshotTrk = r.U8("midi_track.settings.oneshot_trk")
	for i := range t.Plocks {
		r.Array(t.Plocks[i].Params[:], "midi_track.plock.params")
	}
	r.Array(t.ArpSequence[:], "midi_track.arp_sequence")
	r.Check(t.SwingAmount <= 30, "midi_track.swing_amount", "got %d, max 30", t.SwingAmount)
	return t
}

func encodeMidiTrackTrigs(w *codec.Writer, t MidiTrackTrigs) {
	w.Raw(midiTrackHeader[:])
	w.Raw(make([]byte, 4))
	w.U8(t.TrackID)
	w.Raw(t.Masks.Trigger[:])
	w.Raw(t.Masks.Trigless[:])
	w.Raw(t.Masks.Plock[:])
	w.Raw(t.Masks.Oneshot[:])
	w.Raw(t.Masks.Swing[:])
	w.U8(t.ScalePerTrackMode.Length)
	w.U8(t.ScalePerTrackMode.Scale)
	w.U8(t.SwingAmount)
	w.U8(t.PatternSettings.StartSilent)
	w.U8(t.PatternSettings.PlaysFree)
	w.U8(t.PatternSettings.TrigMode)
	w.U8(t.PatternSettings.TrigQuant)
	w.U8(t.PatternSettings.OneshotTrk)
	for _, p := range t.Plocks {
		w.Raw(p.Params[:])
	}
	w.Raw(t.ArpSequence[:])
}
