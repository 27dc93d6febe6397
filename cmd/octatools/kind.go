package main

import (
	"fmt"
	"strings"

	"github.com/dpsio/octatools/internal/arrangement"
	"github.com/dpsio/octatools/internal/bank"
	"github.com/dpsio/octatools/internal/human"
	"github.com/dpsio/octatools/internal/project"
	"github.com/dpsio/octatools/internal/sampleattr"
)

// entity bundles a file kind's binary decode/encode with its human view
// conversion, so every kind-dispatching command (inspect, create-default,
// human-to-bin, bin-to-human) shares one switch.
type entity struct {
	decode     func([]byte) (any, error)
	encode     func(any) []byte
	defaultVal func() any
	marshal    func(human.Format, any) ([]byte, error)
	unmarshal  func(human.Format, []byte) (any, error)
}

var entities = map[string]entity{
	"bank": {
		decode: func(b []byte) (any, error) { return bank.Decode(b) },
		encode: func(v any) []byte { return bank.Encode(v.(*bank.Bank)) },
		defaultVal: func() any { d := bank.Default(); return &d },
		marshal: func(f human.Format, v any) ([]byte, error) { return human.MarshalBank(f, v.(*bank.Bank)) },
		unmarshal: func(f human.Format, b []byte) (any, error) { return human.UnmarshalBank(f, b) },
	},
	"arrangement": {
		decode: func(b []byte) (any, error) { return arrangement.Decode(b) },
		encode: func(v any) []byte { return arrangement.Encode(v.(*arrangement.File)) },
		defaultVal: func() any { d := arrangement.Default(); return &d },
		marshal: func(f human.Format, v any) ([]byte, error) { return human.MarshalArrangement(f, v.(*arrangement.File)) },
		unmarshal: func(f human.Format, b []byte) (any, error) { return human.UnmarshalArrangement(f, b) },
	},
	"sampleattr": {
		decode: func(b []byte) (any, error) { return sampleattr.Decode(b) },
		encode: func(v any) []byte { return sampleattr.Encode(v.(*sampleattr.SampleAttributes)) },
		defaultVal: func() any { return &sampleattr.SampleAttributes{TempoX24: 120 * 24, GainPlus48: 48} },
		marshal: func(f human.Format, v any) ([]byte, error) { return human.MarshalSampleAttributes(f, v.(*sampleattr.SampleAttributes)) },
		unmarshal: func(f human.Format, b []byte) (any, error) { return human.UnmarshalSampleAttributes(f, b) },
	},
	"project": {
		decode: func(b []byte) (any, error) { return project.Parse(b) },
		encode: func(v any) []byte { return project.Emit(v.(*project.Project)) },
		defaultVal: func() any { return &project.Project{} },
		marshal: func(f human.Format, v any) ([]byte, error) { return human.MarshalProject(f, v.(*project.Project)) },
		unmarshal: func(f human.Format, b []byte) (any, error) { return human.UnmarshalProject(f, b) },
	},
}

func lookupEntity(kind string) (entity, error) {
	e, ok := entities[kind]
	if !ok {
		return entity{}, fmt.Errorf("unknown kind %q (want bank, arrangement, sampleattr, or project)", kind)
	}
	return e, nil
}

func formatFromExt(path string) human.Format {
	if strings.HasSuffix(path, ".json") {
		return human.JSON
	}
	return human.YAML
}
