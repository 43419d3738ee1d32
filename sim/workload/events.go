// Package workload loads the events a simulation is seeded with.
//
// An event file has one event per line:
//
//	<timestamp> Arrive <customer> (<item> <time>)*
//	<timestamp> Close <line>
//
// Blank lines and lines starting with '#' are ignored.
package workload

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/grocery-sim/grocery-sim/sim"
)

// LoadEventsFile parses the event file at path.
func LoadEventsFile(path string) ([]sim.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening event file: %w", err)
	}
	defer f.Close()
	events, err := ParseEvents(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return events, nil
}

// ParseEvents reads events from r and returns them in file order.
// Each Arrive line creates a new customer.
func ParseEvents(r io.Reader) ([]sim.Event, error) {
	var events []sim.Event
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		ev, err := parseLine(strings.Fields(text))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading events: %w", err)
	}
	return events, nil
}

func parseLine(fields []string) (sim.Event, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("expected at least 3 fields, got %d", len(fields))
	}
	ts, err := parseNonNegative(fields[0], "timestamp")
	if err != nil {
		return nil, err
	}

	switch fields[1] {
	case "Arrive":
		items, err := parseItems(fields[3:])
		if err != nil {
			return nil, fmt.Errorf("customer %s: %w", fields[2], err)
		}
		return sim.NewArrival(ts, sim.NewCustomer(fields[2], items)), nil
	case "Close":
		if len(fields) != 3 {
			return nil, fmt.Errorf("Close takes exactly one line index, got %d fields", len(fields)-2)
		}
		line, err := strconv.Atoi(fields[2])
		if err != nil || line < 0 {
			return nil, fmt.Errorf("invalid line index %q", fields[2])
		}
		return sim.NewLineClosed(ts, line), nil
	default:
		return nil, fmt.Errorf("unknown event type %q", fields[1])
	}
}

func parseItems(fields []string) ([]sim.Item, error) {
	if len(fields)%2 != 0 {
		return nil, fmt.Errorf("item list must be name/time pairs, got %d tokens", len(fields))
	}
	items := make([]sim.Item, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		t, err := parseNonNegative(fields[i+1], "item time")
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", fields[i], err)
		}
		items = append(items, sim.Item{Name: fields[i], Time: t})
	}
	return items, nil
}

func parseNonNegative(s, what string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", what, s, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("%s must be non-negative, got %d", what, v)
	}
	return v, nil
}
