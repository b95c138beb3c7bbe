package client

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/yourusername/winswitch/internal/types"
)

// ParseError describes one line of window manager output that could not be
// parsed. The rest of the listing is still usable.
type ParseError struct {
	Line   int    // 1-indexed line number
	Text   string // the offending line
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Reason, e.Text)
}

// windowFieldCount is the minimum number of fields in a `wmctrl -l -G -x`
// line: id, desktop, x, y, width, height, class, host. The title may be empty.
const windowFieldCount = 8

// ParseWindows parses `wmctrl -l -G -x` output.
//
// Example line:
//
//	0x05000006  0 1920 24   1920 1056 gnome-terminal-server.Gnome-terminal  devin-Desktop Terminal
//
// Lines whose class is N/A are not windows and are dropped. Malformed lines
// are skipped and reported as *ParseError values joined into the returned
// error; the windows parsed from the other lines are returned regardless.
func ParseWindows(output string) ([]types.Window, error) {
	var (
		windows []types.Window
		errs    []error
	)

	for i, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		w, err := parseWindowLine(line)
		if err != nil {
			errs = append(errs, &ParseError{Line: i + 1, Text: line, Reason: err.Error()})
			continue
		}
		if !w.IsApplication() {
			continue
		}
		windows = append(windows, w)
	}

	return windows, errors.Join(errs...)
}

func parseWindowLine(line string) (types.Window, error) {
	fields := strings.Fields(line)
	if len(fields) < windowFieldCount {
		return types.Window{}, fmt.Errorf("expected at least %d fields, got %d", windowFieldCount, len(fields))
	}

	id, err := types.ParseWindowID(fields[0])
	if err != nil {
		return types.Window{}, err
	}

	ints := make([]int, 5)
	names := []string{"desktop", "x offset", "y offset", "width", "height"}
	for j := range ints {
		v, err := strconv.Atoi(fields[1+j])
		if err != nil {
			return types.Window{}, fmt.Errorf("invalid %s %q", names[j], fields[1+j])
		}
		ints[j] = v
	}

	return types.Window{
		ID:      id,
		Desktop: ints[0],
		X:       ints[1],
		Y:       ints[2],
		Width:   ints[3],
		Height:  ints[4],
		Class:   fields[6],
		Host:    fields[7],
		Title:   strings.Join(fields[8:], " "),
	}, nil
}

// ParseDesktops parses `wmctrl -d` output and returns the desktop geometry
// and viewport of the current desktop (the line marked with '*').
//
// Example line:
//
//	0  * DG: 17280x3240  VP: 5760,0  WA: 0,24 5760x1056  N/A
func ParseDesktops(output string) (types.DesktopGeometry, types.Workspace, error) {
	var current string
	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		if current == "" {
			current = line
		}
		if len(fields) > 1 && fields[1] == "*" {
			current = line
			break
		}
	}
	if current == "" {
		return types.DesktopGeometry{}, types.Workspace{}, fmt.Errorf("no desktops listed")
	}

	return ParseDesktopLine(current)
}

// ParseDesktopLine extracts the "DG: WxH" and "VP: X,Y" values of one
// `wmctrl -d` line by splitting on the literal markers.
func ParseDesktopLine(line string) (types.DesktopGeometry, types.Workspace, error) {
	_, afterDG, ok := strings.Cut(line, "DG:")
	if !ok {
		return types.DesktopGeometry{}, types.Workspace{}, fmt.Errorf("missing DG: marker in %q", line)
	}
	rawDG, afterVP, ok := strings.Cut(afterDG, "VP:")
	if !ok {
		return types.DesktopGeometry{}, types.Workspace{}, fmt.Errorf("missing VP: marker in %q", line)
	}
	rawVP, _, _ := strings.Cut(afterVP, "WA:")

	w, h, err := parsePair(rawDG, "x")
	if err != nil {
		return types.DesktopGeometry{}, types.Workspace{}, fmt.Errorf("desktop geometry: %w", err)
	}
	x, y, err := parsePair(rawVP, ",")
	if err != nil {
		return types.DesktopGeometry{}, types.Workspace{}, fmt.Errorf("viewport: %w", err)
	}

	return types.DesktopGeometry{Width: w, Height: h}, types.Workspace{X: x, Y: y}, nil
}

// parsePair parses "AsepB" into two integers
func parsePair(s, sep string) (int, int, error) {
	s = strings.TrimSpace(s)
	left, right, ok := strings.Cut(s, sep)
	if !ok {
		return 0, 0, fmt.Errorf("expected 'A%sB' format, got: %q", sep, s)
	}
	a, err := strconv.Atoi(strings.TrimSpace(left))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value %q", left)
	}
	b, err := strconv.Atoi(strings.TrimSpace(right))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid value %q", right)
	}
	return a, b, nil
}
