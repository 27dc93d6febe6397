package bank

import (
	"github.com/dpsio/octatools/internal/codec"
)

var audioTrackHeader = [4]byte{'T', 'R', 'A', 'C'}

const TrigCount = 64

// PerTrackScale is a track's step-length/scale-divisor pair.
type PerTrackScale struct {
	Length byte
	Scale  byte
}

// TrackPatternSettings is the per-track playback-behavior block.
type TrackPatternSettings struct {
	StartSilent byte
	PlaysFree   byte
	TrigMode    byte
	TrigQuant   byte
	OneshotTrk  byte
}

// AudioTrackTrigs is one audio track's per-pattern sequencer data.
type AudioTrackTrigs struct {
	TrackID                byte // 0..7
	Masks                   TrigMasks
	ScalePerTrackMode       PerTrackScale
	SwingAmount             byte // 0..30
	PatternSettings         TrackPatternSettings
	Plocks                  [TrigCount]AudioPlock
	Extras                  [TrigCount]byte // unknown, preserved verbatim
	OffsetsRepeatsConditions [TrigCount]TrigOffsetRepeatCondition
}

// DefaultAudioTrackTrigs returns the position-dependent default for audio
// track id (0..7): swing mask all 170, per-track scale {16,2}, pattern
// settings {start_silent:255, plays_free:0, trig_mode:0, trig_quant:0,
// oneshot_trk:0}, and all-0xFF plocks.
func DefaultAudioTrackTrigs(id int) AudioTrackTrigs {
	if id < 0 || id >= 8 {
		panic("bank: audio track id out of range")
	}
	t := AudioTrackTrigs{TrackID: byte(id)}
	for i := range t.Masks.Swing {
		t.Masks.Swing[i] = 170
	}
	t.ScalePerTrackMode = PerTrackScale{Length: 16, Scale: 2}
	t.PatternSettings = TrackPatternSettings{StartSilent: 255}
	for i := range t.Plocks {
		t.Plocks[i] = DefaultAudioPlock()
	}
	return t
}

func decodeAudioTrackTrigs(r *codec.Reader) AudioTrackTrigs {
	r.CheckHeader(audioTrackHeader[:], "audio_track.header")
	_ = r.Bytes(4, "audio_track.reserved")
	var t AudioTrackTrigs
	t.TrackID = r.U8("audio_track.track_id")
	r.Array(t.Masks.Trigger[:], "audio_track.masks.trigger")
	r.Array(t.Masks.Trigless[:], "audio_track.masks.trigless")
	r.Array(t.Masks.Plock[:], "audio_track.masks.plock")
	r.Array(t.Masks.Oneshot[:], "audio_track.masks.oneshot")
	r.Array(t.Masks.Swing[:], "audio_track.masks.swing")
	r.Array(t.Masks.Slide[:], "audio_track.masks.slide")
	r.Array(t.Masks.RecorderMask[:], "audio_track.masks.recorder")
	t.ScalePerTrackMode.Length = r.U8("audio_track.scale.length")
	t.ScalePerTrackMode.Scale = r.U8("audio_track.scale.scale")
	t.SwingAmount = r.U8("audio_track.swing_amount")
	t.PatternSettings.StartSilent = r.U8("audio_track.settings.start_silent")
	t.PatternSettings.PlaysFree = r.U8("audio_track.settings.plays_free")
	t.PatternSettings.TrigMode = r.U8("audio_track.settings.trig_mode")
	t.PatternSettings.TrigQuant = r.U8("audio_track.settings.trig_quant")
	t.PatternSettings.OneshotTrk = r.U8("audio_track.settings.oneshot_trk")
	for i := range t.Plocks {
		p := &t.Plocks[i]
		r.Array(p.MachineParams[:], "audio_track.plock.machine")
		r.Array(p.LfoParams[:], "audio_track.plock.lfo")
		r.Array(p.AmpParams[:], "audio_track.plock.amp")
		r.Array(p.Fx1Params[:], "audio_track.plock.fx1")
		r.Array(p.Fx2Params[:], "audio_track.plock.fx2")
		p.SampleLockStatic = r.U8("audio_track.plock.sample_lock_static")
		p.SampleLockFlex = r.U8("audio_track.plock.sample_lock_flex")
	}
	r.Array(t.Extras[:], "audio_track.extras")
	for i := range t.OffsetsRepeatsConditions {
		t.OffsetsRepeatsConditions[i].Byte1 = r.U8("audio_track.orc.byte1")
		t.OffsetsRepeatsConditions[i].Byte2 = r.U8("audio_track.orc.byte2")
	}
	r.Check(t.SwingAmount <= 30, "audio_track.swing_amount", "got %d, max 30", t.SwingAmount)
	return t
}

func encodeAudioTrackTrigs(w *codec.Writer, t AudioTrackTrigs) {
	w.Raw(audioTrackHeader[:])
	w.Raw(make([]byte, 4)) // reserved
	w.U8(t.TrackID)
	w.Raw(t.Masks.Trigger[:])
	w.Raw(t.Masks.Trigless[:])
	w.Raw(t.Masks.Plock[:])
	w.Raw(t.Masks.Oneshot[:])
	w.Raw(t.Masks.Swing[:])
	w.Raw(t.Masks.Slide[:])
	w.Raw(t.Masks.RecorderMask[:])
	w.U8(t.ScalePerTrackMode.Length)
	w.U8(t.ScalePerTrackMode.Scale)
	w.U8(t.SwingAmount)
	w.U8(t.PatternSettings.StartSilent)
	w.U8(t.PatternSettings.PlaysFree)
	w.U8(t.PatternSettings.TrigMode)
	w.U8(t.PatternSettings.TrigQuant)
	w.U8(t.PatternSettings.OneshotTrk)
	for _, p := range t.Plocks {
		w.Raw(p.MachineParams[:])
		w.Raw(p.LfoParams[:])
		w.Raw(p.AmpParams[:])
		w.Raw(p.Fx1Params[:])
		w.Raw(p.Fx2Params[:])
		w.U8(p.SampleLockStatic)
		w.U8(p.SampleLockFlex)
	}
	w.Raw(t.Extras[:])
	for _, o := range t.OffsetsRepeatsConditions {
		w.U8(o.Byte1)
		w.U8(o.Byte2)
	}
}

// UpdateStaticPlock rewrites every trig's static sample-lock equal to from
// into to, leaving every other field untouched.
func (t *AudioTrackTrigs) UpdateStaticPlock(from, to byte) {
	for i := range t.Plocks {
		if t.Plocks[i].SampleLockStatic == from {
			t.Plocks[i].SampleLockStatic = to
		}
	}
}

// UpdateFlexPlock is the flex-kind counterpart of UpdateStaticPlock.
func (t *AudioTrackTrigs) UpdateFlexPlock(from, to byte) {
	for i := range t.Plocks {
		if t.Plocks[i].SampleLockFlex == from {
			t.Plocks[i].SampleLockFlex = to
		}
	}
}
