package project

import (
	"bytes"
	"strings"

	"github.com/dpsio/octatools/internal/octerr"
)

// Project is the decoded content of a project.work/project.strd file.
type Project struct {
	Meta     Section
	States   Section
	Settings Section
	Slots    []SampleSlot
}

// Meta typed convenience accessors (spec §3's [META] keys).
func (p *Project) Type() string      { v, _ := p.Meta.Get("TYPE"); return v }
func (p *Project) Version() string   { v, _ := p.Meta.Get("VERSION"); return v }
func (p *Project) OSVersion() string { v, _ := p.Meta.Get("OS_VERSION"); return v }

// TrigModeMidi returns the eight TRIG_MODE_MIDI values from [SETTINGS] in
// file order, one per MIDI track.
func (p *Project) TrigModeMidi() []string {
	return p.Settings.GetAll("TRIG_MODE_MIDI")
}

const crlf = "\r\n"

// Parse decodes a full project.work/.strd buffer.
func Parse(buf []byte) (*Project, error) {
	text := string(buf)
	lines := strings.Split(text, "\n")
	// normalize trailing \r dropped by Split on "\n" boundaries
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	p := &Project{}
	i := 0
	next := func() (string, bool) {
		for i < len(lines) {
			l := lines[i]
			i++
			if l != "" {
				return l, true
			}
		}
		return "", false
	}

	for {
		line, ok := next()
		if !ok {
			break
		}
		if !strings.HasPrefix(line, "[") || !strings.HasSuffix(line, "]") || strings.HasPrefix(line, "[/") {
			return nil, octerr.NewDecodeError("project.section", "expected a [SECTION] opener, got %q", line)
		}
		name := line[1 : len(line)-1]
		closer := "[/" + name + "]"
		sec := &Section{Name: name}
		for {
			inner, ok := next()
			if !ok {
				return nil, octerr.NewDecodeError("project.section", "unterminated section %q", name)
			}
			if inner == closer {
				break
			}
			key, value, found := strings.Cut(inner, "=")
			if !found {
				return nil, octerr.NewDecodeError("project.line", "not a KEY=VALUE line: %q", inner)
			}
			sec.Add(key, value)
		}
		switch name {
		case "META":
			p.Meta = *sec
		case "STATES":
			p.States = *sec
		case "SETTINGS":
			p.Settings = *sec
		case "SAMPLE":
			slot, err := parseSampleSlot(sec)
			if err != nil {
				return nil, err
			}
			p.Slots = append(p.Slots, slot)
		default:
			return nil, octerr.NewDecodeError("project.section", "unknown section %q", name)
		}
	}
	return p, nil
}

// Emit serializes a Project in the fixed section/field order: META, STATES,
// SETTINGS, then one [SAMPLE] block per populated slot.
func Emit(p *Project) []byte {
	var buf bytes.Buffer
	writeSection(&buf, "META", &p.Meta)
	writeSection(&buf, "STATES", &p.States)
	writeSection(&buf, "SETTINGS", &p.Settings)
	for _, slot := range p.Slots {
		writeSection(&buf, "SAMPLE", emitSampleSlot(slot))
	}
	return buf.Bytes()
}

func writeSection(buf *bytes.Buffer, name string, sec *Section) {
	buf.WriteString("[" + name + "]" + crlf)
	for _, e := range sec.Entries {
		buf.WriteString(e.Key + "=" + e.Value + crlf)
	}
	buf.WriteString("[/" + name + "]" + crlf)
}
