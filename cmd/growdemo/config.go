package main

import (
	"fmt"
	"strings"
)

// configuration is filled from flags and environment variables by goconfig.
type configuration struct {
	Sections   string `usage:"comma separated sections to run: heap, dynamic, tables, frames (empty runs all)"`
	Capacity   int    `usage:"initial capacity of the dynamic array"`
	Rows       int    `usage:"rows of the 2-D tables"`
	Cols       int    `usage:"columns of the 2-D tables"`
	FrameWidth int    `usage:"samples per frame in the frames section"`
	TraceAlloc bool   `usage:"log every allocation and print the acquire/release balance"`
	LogLevel   string `usage:"log level: debug, info, warn, error"`
	LogFormat  string `usage:"log format: text or json"`
}

var allSections = []string{"heap", "dynamic", "tables", "frames"}

func defaultConfiguration() configuration {
	return configuration{
		Capacity:   4,
		Rows:       3,
		Cols:       4,
		FrameWidth: 8,
		LogLevel:   "info",
		LogFormat:  "text",
	}
}

// sections returns the requested sections in canonical order.
func (c configuration) sections() ([]string, error) {
	if strings.TrimSpace(c.Sections) == "" {
		return allSections, nil
	}
	want := map[string]bool{}
	for _, s := range strings.Split(c.Sections, ",") {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		known := false
		for _, k := range allSections {
			if s == k {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown section %q (available: %s)", s, strings.Join(allSections, ", "))
		}
		want[s] = true
	}
	var out []string
	for _, k := range allSections {
		if want[k] {
			out = append(out, k)
		}
	}
	return out, nil
}

func (c configuration) validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", c.Capacity)
	}
	if c.Rows < 0 || c.Cols < 0 {
		return fmt.Errorf("table shape must not be negative, got %d x %d", c.Rows, c.Cols)
	}
	if c.FrameWidth <= 0 {
		return fmt.Errorf("frame width must be positive, got %d", c.FrameWidth)
	}
	return nil
}
