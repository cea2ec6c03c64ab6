// Command growdemo walks through the lifecycle of the containers in this
// module and prints their state after every step.
//
// Usage:
//
//	growdemo [flags]
//
// Sections:
//
//	heap     heap blocks, exclusive and shared ownership
//	dynamic  a growable buffer filling up and doubling
//	tables   the same table in the row-indirect and flat layouts
//	frames   a growable frame matrix and the spectrum of one frame
//
// Examples:
//
//	growdemo
//	growdemo -sections dynamic -capacity 2
//	growdemo -sections tables -rows 4 -cols 6 -tracealloc -loglevel debug
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fulldump/goconfig"

	"github.com/cwbudde/algo-container/container/alloc"
)

func main() {
	c := defaultConfiguration()
	goconfig.Read(&c)

	logger := newLogger(c.LogLevel, c.LogFormat, os.Stderr)
	if err := run(os.Stdout, c, logger); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run executes the configured sections, writing the rendered state to outW.
func run(outW io.Writer, c configuration, logger *slog.Logger) error {
	if err := c.validate(); err != nil {
		return err
	}
	sections, err := c.sections()
	if err != nil {
		return err
	}

	var rec *alloc.Recorder
	d := &demo{out: outW, cfg: c, logger: logger, alloc: alloc.Default}
	if c.TraceAlloc {
		rec = alloc.NewRecorder(alloc.NewLogging(alloc.NewHeap(), logger))
		d.alloc = rec
	}

	for _, name := range sections {
		logger.Debug("running section", "section", name)
		if err := d.runSection(name); err != nil {
			return fmt.Errorf("section %s: %w", name, err)
		}
	}

	if rec != nil {
		acquired, released := rec.Counts()
		status := "balanced"
		if !rec.Balanced() {
			status = "LEAKED"
		}
		if _, err := fmt.Fprintf(outW, "\nAllocations: %d acquired, %d released (%s)\n", acquired, released, status); err != nil {
			return err
		}
		if !rec.Balanced() {
			return fmt.Errorf("%d blocks were never released", acquired-released)
		}
	}
	return nil
}
