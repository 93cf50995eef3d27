package write

import (
	"fmt"
	"io"
	"strings"
	"time"
)

type WriteSettings struct {
	DisplayWriters []Writer // Where should the display be written. nil turns off all display
}

// DefaultWriteSettings returns settings with no writers, so optimization
// runs are silent unless a writer is added.
func DefaultWriteSettings() *WriteSettings {
	return &WriteSettings{}
}

type Type int

const (
	// Logger is a writer intended to save details of the optimization run
	// for future postprocessing. The data is saved as a csv and a row is
	// written for the initial point and for every accepted iteration
	Logger Type = iota

	// Displayer is a writer intended for human monitoring of the optimization
	// Writes only happen periodically, and an effort is made to align columns
	Displayer
)

type Writer struct {
	io.Writer
	T Type
}

type Value struct {
	Value   interface{}
	Heading string
}

type DataAdder interface {
	AppendWriteData([]*Value) []*Value
}

const headingInterval = 30
const valueInterval time.Duration = 500 * time.Millisecond

// Display writes the values of its DataAdders to a set of writers.
// Displayers print at most once per valueInterval, and repeat the headings
// every headingInterval prints. Loggers get a row on every call to Iterate.
// The headings are assumed not to change during a run.
type Display struct {
	displayValues []*Value

	headings   []string
	values     []string
	maxLengths []int

	lastHeadingDisplay int
	lastValueDisplay   time.Time

	existsDisplayer bool
	existsLogger    bool

	writers []Writer

	dataAdders []DataAdder

	err error
}

func NewDisplay() *Display {
	return &Display{}
}

// AddDataAdder adds a DataAdder to the list of values to be printed/logged.
// This should only be called during initialization
func (d *Display) AddDataAdder(dataAdders ...DataAdder) {
	d.dataAdders = append(d.dataAdders, dataAdders...)
}

// accumulateValues gets all of the values from the data adders and stores
// them in display
func (d *Display) accumulateValues() {
	d.displayValues = d.displayValues[:0]
	for _, add := range d.dataAdders {
		d.displayValues = add.AppendWriteData(d.displayValues)
	}
}

// Init resets the display for a new run and writes the initial headers
// to the writers according to their Type
func (d *Display) Init(w *WriteSettings) error {
	d.err = nil
	d.existsDisplayer = false
	d.existsLogger = false
	// make sure headings and values are displayed on the first iteration
	d.lastHeadingDisplay = headingInterval + 1
	d.lastValueDisplay = time.Now().Add(-valueInterval)

	d.writers = nil
	if w != nil {
		d.writers = w.DisplayWriters
	}
	if len(d.writers) == 0 {
		return nil
	}

	d.accumulateValues()
	d.headings = d.headings[:0]
	for _, dat := range d.displayValues {
		d.headings = append(d.headings, dat.Heading)
	}

	for _, w := range d.writers {
		switch w.T {
		default:
			panic("display: unknown writer type")
		case Logger:
			d.existsLogger = true
			if err := writeCSV(w, d.headings); err != nil {
				return err
			}
		case Displayer:
			d.existsDisplayer = true
			if _, err := io.WriteString(w, "Beginning Optimization\n\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// Err returns the first error encountered while writing during Iterate.
func (d *Display) Err() error {
	return d.err
}

// Iterate is the write action performed by display at every iteration
// of the algorithm, as set by the values in the Writers and dataAdders which
// were set during initialization. Once a write has failed Iterate stops
// writing, and the error is available from Err.
func (d *Display) Iterate() error {
	if d.err != nil || len(d.writers) == 0 {
		return d.err
	}

	var displayValues bool
	var displayHeadings bool

	if d.existsDisplayer {
		displayValues = time.Since(d.lastValueDisplay) > valueInterval
		if displayValues {
			d.lastValueDisplay = time.Now()
			d.lastHeadingDisplay++
			displayHeadings = d.lastHeadingDisplay > headingInterval
			if displayHeadings {
				d.lastHeadingDisplay = 0
			}
		}
	}

	// only accumulate values if needed
	if d.existsLogger || displayValues {
		d.accumulateValues()
		d.values = d.values[:0]
		for _, v := range d.displayValues {
			d.values = append(d.values, valueToString(v.Value))
		}
	}

	if displayValues {
		d.maxLengths = d.maxLengths[:0]
		for i, v := range d.values {
			n := len(v)
			if len(d.headings[i]) > n {
				n = len(d.headings[i])
			}
			d.maxLengths = append(d.maxLengths, n)
		}
	}

	for _, w := range d.writers {
		var err error
		switch w.T {
		default:
			panic("display: unknown writer type")
		case Logger:
			err = writeCSV(w, d.values)
		case Displayer:
			if displayHeadings {
				if _, err = io.WriteString(w, "\n"); err == nil {
					err = writeAlignedStrings(w, d.headings, d.maxLengths)
				}
			}
			if err == nil && displayValues {
				err = writeAlignedStrings(w, d.values, d.maxLengths)
			}
		}
		if err != nil {
			d.err = err
			return err
		}
	}
	return nil
}

func writeAlignedStrings(w io.Writer, strs []string, maxLengths []int) error {
	var sb strings.Builder
	for i, str := range strs {
		sb.WriteString(str)
		sb.WriteString(strings.Repeat(" ", maxLengths[i]-len(str)))
		sb.WriteString("\t")
	}
	sb.WriteString("\n")
	_, err := io.WriteString(w, sb.String())
	return err
}

// writeCSV writes one comma separated row
func writeCSV(w io.Writer, values []string) error {
	_, err := io.WriteString(w, strings.Join(values, ",")+"\n")
	return err
}

func valueToString(v interface{}) string {
	switch v := v.(type) {
	case int:
		return fmt.Sprintf("%d", v)
	case float64:
		return fmt.Sprintf("%e", v)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
