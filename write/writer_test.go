package write

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type values struct {
	iter int
	obj  float64
}

func (v *values) AppendWriteData(d []*Value) []*Value {
	d = append(d, &Value{Heading: "Iter", Value: v.iter})
	d = append(d, &Value{Heading: "Obj", Value: v.obj})
	d = append(d, &Value{Heading: "Name", Value: "run"})
	return d
}

type failAfter struct {
	n int
}

func (f *failAfter) Write(p []byte) (int, error) {
	if f.n == 0 {
		return 0, errors.New("write failed")
	}
	f.n--
	return len(p), nil
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	v := &values{}
	d := NewDisplay()
	d.AddDataAdder(v)
	if err := d.Init(&WriteSettings{DisplayWriters: []Writer{{&buf, Logger}}}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		v.iter = i
		v.obj = float64(i) / 2
		if err := d.Iterate(); err != nil {
			t.Fatal(err)
		}
	}
	want := "Iter,Obj,Name\n" +
		"0,0.000000e+00,run\n" +
		"1,5.000000e-01,run\n" +
		"2,1.000000e+00,run\n"
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestDisplayer(t *testing.T) {
	var buf bytes.Buffer
	d := NewDisplay()
	d.AddDataAdder(&values{iter: 12345, obj: 1})
	if err := d.Init(&WriteSettings{DisplayWriters: []Writer{{&buf, Displayer}}}); err != nil {
		t.Fatal(err)
	}
	d.Iterate()
	// Further values are rate limited.
	d.Iterate()

	lines := strings.Split(buf.String(), "\n")
	if lines[0] != "Beginning Optimization" {
		t.Errorf("missing banner: %q", lines[0])
	}
	// banner, two blank lines, headings, one row and the final newline
	if len(lines) != 6 {
		t.Fatalf("got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[3] != "Iter \tObj         \tName\t" {
		t.Errorf("headings not aligned: %q", lines[3])
	}
	if lines[4] != "12345\t1.000000e+00\trun \t" {
		t.Errorf("values not aligned: %q", lines[4])
	}
}

func TestDisplayErrors(t *testing.T) {
	d := NewDisplay()
	d.AddDataAdder(&values{})
	if err := d.Init(&WriteSettings{DisplayWriters: []Writer{{&failAfter{n: 0}, Logger}}}); err == nil {
		t.Errorf("expected error writing headings")
	}

	w := &failAfter{n: 1}
	if err := d.Init(&WriteSettings{DisplayWriters: []Writer{{w, Logger}}}); err != nil {
		t.Fatal(err)
	}
	if err := d.Iterate(); err == nil {
		t.Errorf("expected error writing values")
	}
	w.n = 10
	if err := d.Iterate(); err == nil || d.Err() == nil {
		t.Errorf("display should keep failing after an error")
	}

	// A new run clears the error.
	if err := d.Init(DefaultWriteSettings()); err != nil || d.Err() != nil {
		t.Errorf("error not cleared by Init")
	}
}
