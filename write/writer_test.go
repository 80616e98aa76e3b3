package write

import (
	"bytes"
	"strings"
	"testing"
)

type constAdder struct {
	iter int
	loc  float64
}

func (c *constAdder) AppendWriteData(v []*Value) []*Value {
	v = append(v, &Value{Heading: "Iter", Value: c.iter})
	v = append(v, &Value{Heading: "Loc", Value: c.loc})
	return v
}

func TestDefaultIsSilent(t *testing.T) {
	d := NewDisplay()
	d.AddDataAdder(&constAdder{})
	if err := d.Init(DefaultWriteSettings()); err != nil {
		t.Fatalf("init error: %v", err)
	}
	// No writers: iterating must be a no-op, not a panic
	if err := d.Iterate(); err != nil {
		t.Fatalf("iterate error: %v", err)
	}
}

func TestLoggerCSV(t *testing.T) {
	var buf bytes.Buffer
	adder := &constAdder{iter: 0, loc: 1.5}

	d := NewDisplay()
	d.AddDataAdder(adder)
	settings := &WriteSettings{DisplayWriters: []Writer{{&buf, Logger}}}
	if err := d.Init(settings); err != nil {
		t.Fatalf("init error: %v", err)
	}

	for i := 1; i <= 3; i++ {
		adder.iter = i
		adder.loc = float64(i) / 2
		if err := d.Iterate(); err != nil {
			t.Fatalf("iterate error: %v", err)
		}
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// run header, blank line, heading row, then one row per iteration
	if len(lines) != 6 {
		t.Fatalf("wrong number of lines: %d\n%s", len(lines), buf.String())
	}
	if lines[2] != "Iter,Loc" {
		t.Errorf("wrong heading row: %q", lines[2])
	}
	row := strings.Split(lines[3], ",")
	if len(row) != 2 {
		t.Fatalf("wrong number of fields in %q", lines[3])
	}
	if row[0] != "1" {
		t.Errorf("wrong iteration field: %q", row[0])
	}
	if !strings.Contains(row[1], "e") {
		t.Errorf("float field not in scientific notation: %q", row[1])
	}
}

func TestDisplayerAligned(t *testing.T) {
	var buf bytes.Buffer
	adder := &constAdder{iter: 1, loc: 0.25}

	d := NewDisplay()
	d.AddDataAdder(adder)
	settings := &WriteSettings{DisplayWriters: []Writer{{&buf, Displayer}}}
	if err := d.Init(settings); err != nil {
		t.Fatalf("init error: %v", err)
	}
	if err := d.Iterate(); err != nil {
		t.Fatalf("iterate error: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Iter") || !strings.Contains(out, "Loc") {
		t.Errorf("headings missing from display output:\n%s", out)
	}
	if !strings.Contains(out, "1") {
		t.Errorf("value row missing from display output:\n%s", out)
	}
}
