package human

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/dpsio/octatools/internal/arrangement"
	"github.com/dpsio/octatools/internal/bank"
	"github.com/dpsio/octatools/internal/project"
	"github.com/dpsio/octatools/internal/sampleattr"
)

// Format selects the human serialization used by the bin-to-human/
// human-to-bin CLI commands (SPEC_FULL.md §6).
type Format int

const (
	YAML Format = iota
	JSON
)

func marshal(f Format, v any) ([]byte, error) {
	if f == JSON {
		return json.MarshalIndent(v, "", "  ")
	}
	return yaml.Marshal(v)
}

func unmarshal(f Format, buf []byte, v any) error {
	if f == JSON {
		return json.Unmarshal(buf, v)
	}
	return yaml.Unmarshal(buf, v)
}

// MarshalSampleAttributes renders an .ot file's content in human form.
func MarshalSampleAttributes(f Format, s *sampleattr.SampleAttributes) ([]byte, error) {
	return marshal(f, ToSampleAttributesView(s))
}

// UnmarshalSampleAttributes parses a human .ot rendering back to binary form.
func UnmarshalSampleAttributes(f Format, buf []byte) (*sampleattr.SampleAttributes, error) {
	var v SampleAttributesView
	if err := unmarshal(f, buf, &v); err != nil {
		return nil, err
	}
	return FromSampleAttributesView(&v)
}

// MarshalBank renders a bankNN file's content in human form.
func MarshalBank(f Format, b *bank.Bank) ([]byte, error) {
	return marshal(f, ToBankView(b))
}

// UnmarshalBank parses a human bank rendering back to binary form.
func UnmarshalBank(f Format, buf []byte) (*bank.Bank, error) {
	var v BankView
	if err := unmarshal(f, buf, &v); err != nil {
		return nil, err
	}
	return FromBankView(&v)
}

// MarshalArrangement renders an arrNN file's content in human form.
func MarshalArrangement(f Format, a *arrangement.File) ([]byte, error) {
	return marshal(f, ToArrangementView(a))
}

// UnmarshalArrangement parses a human arrangement rendering back to binary form.
func UnmarshalArrangement(f Format, buf []byte) (*arrangement.File, error) {
	var v ArrangementView
	if err := unmarshal(f, buf, &v); err != nil {
		return nil, err
	}
	return FromArrangementView(&v), nil
}

// MarshalProject renders a project.work/.strd file's content in human form.
func MarshalProject(f Format, p *project.Project) ([]byte, error) {
	return marshal(f, ToProjectView(p))
}

// UnmarshalProject parses a human project rendering back to text form.
func UnmarshalProject(f Format, buf []byte) (*project.Project, error) {
	var v ProjectView
	if err := unmarshal(f, buf, &v); err != nil {
		return nil, err
	}
	return FromProjectView(&v)
}
