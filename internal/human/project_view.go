package human

import (
	"fmt"

	"github.com/dpsio/octatools/internal/enums"
	"github.com/dpsio/octatools/internal/octerr"
	"github.com/dpsio/octatools/internal/project"
)

var trigQuantStepValues = [...]int{1, 2, 3, 4, 6, 8, 16, 24, 32, 48, 64, 96, 128, 192, 256}

func trigQuantStepName(n int) string {
	return fmt.Sprintf("%d_STEPS", trigQuantStepValues[n-1])
}

// SampleSlotView is the human form of project.SampleSlot.
type SampleSlotView struct {
	Kind          string `yaml:"kind" json:"kind"`
	SlotID        int    `yaml:"slot_id" json:"slot_id"`
	Path          string `yaml:"path,omitempty" json:"path,omitempty"`
	TrimBars      float64 `yaml:"trim_bars" json:"trim_bars"`
	TimestretchMode string `yaml:"timestretch_mode" json:"timestretch_mode"`
	LoopMode      string `yaml:"loop_mode" json:"loop_mode"`
	Gain          int    `yaml:"gain" json:"gain"`
	TrigQuant     string `yaml:"trig_quantization" json:"trig_quantization"`
	BPM           float64 `yaml:"bpm" json:"bpm"`
}

// ProjectView is the human form of a project.work/project.strd file. The
// [STATES] section and any [SETTINGS] keys not modeled by name are carried
// through verbatim as an ordered key/value list, same as the binary layer.
type ProjectView struct {
	Type      string           `yaml:"type" json:"type"`
	Version   string           `yaml:"version" json:"version"`
	OSVersion string           `yaml:"os_version" json:"os_version"`
	Settings  []KV             `yaml:"settings" json:"settings"`
	States    []KV             `yaml:"states" json:"states"`
	Slots     []SampleSlotView `yaml:"slots" json:"slots"`
}

// KV is an ordered key/value pair, used where a section's keys are not all
// individually modeled (e.g. [SETTINGS] carries dozens of device options).
type KV struct {
	Key   string `yaml:"key" json:"key"`
	Value string `yaml:"value" json:"value"`
}

func ToProjectView(p *project.Project) *ProjectView {
	v := &ProjectView{
		Type:      p.Type(),
		Version:   p.Version(),
		OSVersion: p.OSVersion(),
	}
	for _, e := range p.Settings.Entries {
		v.Settings = append(v.Settings, KV{e.Key, e.Value})
	}
	for _, e := range p.States.Entries {
		v.States = append(v.States, KV{e.Key, e.Value})
	}
	for _, s := range p.Slots {
		v.Slots = append(v.Slots, SampleSlotView{
			Kind:            s.Kind.String(),
			SlotID:          s.SlotID,
			Path:            s.Path,
			TrimBars:        float64(s.TrimBarsX100) / 100,
			TimestretchMode: s.TSMode.String(),
			LoopMode:        s.LoopMode.String(),
			Gain:            s.Gain,
			TrigQuant:       s.TrigQuant.String(),
			BPM:             float64(s.BPMx24) / 24,
		})
	}
	return v
}

func FromProjectView(v *ProjectView) (*project.Project, error) {
	p := &project.Project{}
	p.Meta.Name = "META"
	p.Meta.Set("TYPE", v.Type)
	p.Meta.Set("VERSION", v.Version)
	p.Meta.Set("OS_VERSION", v.OSVersion)
	p.Settings.Name = "SETTINGS"
	for _, kv := range v.Settings {
		p.Settings.Add(kv.Key, kv.Value)
	}
	p.States.Name = "STATES"
	for _, kv := range v.States {
		p.States.Add(kv.Key, kv.Value)
	}
	for _, sv := range v.Slots {
		kind, err := enums.ParseSampleSlotKind(slotKindFileName(sv.Kind), sv.SlotID)
		if err != nil {
			return nil, err
		}
		ts, err := enums.TimestretchModeFromValue(tsModeValue(sv.TimestretchMode))
		if err != nil {
			return nil, err
		}
		lm, err := enums.LoopModeFromValue(loopModeValue(sv.LoopMode))
		if err != nil {
			return nil, err
		}
		tq, err := trigQuantFromName(sv.TrigQuant)
		if err != nil {
			return nil, err
		}
		slot := projectSampleSlot(kind, sv, ts, lm)
		slot.TrigQuant = tq
		p.Slots = append(p.Slots, slot)
	}
	return p, nil
}

func trigQuantFromName(name string) (enums.TrigQuantization, error) {
	if name == "DIRECT" {
		return enums.TrigQuantDirect, nil
	}
	if name == "PATTERN_LENGTH" {
		return enums.TrigQuantPatternLength, nil
	}
	for n := 1; n <= 15; n++ {
		if name == trigQuantStepName(n) {
			return enums.TrigQuantization(n), nil
		}
	}
	return 0, octerr.NewDecodeError("trig_quantization", "unknown name %q", name)
}

func slotKindFileName(s string) string {
	if s == "STATIC" {
		return "STATIC"
	}
	return "FLEX"
}

func tsModeValue(name string) uint32 {
	switch name {
	case "NORMAL":
		return 2
	case "BEAT":
		return 3
	default:
		return 0
	}
}

func loopModeValue(name string) uint32 {
	switch name {
	case "NORMAL":
		return 1
	case "PING_PONG":
		return 2
	default:
		return 0
	}
}

func projectSampleSlot(kind enums.SampleSlotKind, sv SampleSlotView, ts enums.TimestretchMode, lm enums.LoopMode) project.SampleSlot {
	return project.SampleSlot{
		Kind:         kind,
		SlotID:       sv.SlotID,
		Path:         sv.Path,
		TrimBarsX100: int(sv.TrimBars * 100),
		TSMode:       ts,
		LoopMode:     lm,
		Gain:         sv.Gain,
		BPMx24:       int(sv.BPM * 24),
	}
}
