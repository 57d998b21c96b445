// Package core/types.go - Domain Data Structures
//
// This file defines the value records that make up the persisted application
// state: launchable program entries, the named groups that own them, and the
// captured window placement descriptors. These types carry the JSON wire
// tags for the configuration file, but no behavior beyond parsing helpers;
// validation happens at the editing boundary (see model.go).

package core

import (
	"encoding/json"
	"fmt"
)

// ProgramItem is one launchable entry inside a group.
type ProgramItem struct {
	Title      string `json:"title"`
	Command    string `json:"command"`
	WorkingDir string `json:"working_dir,omitempty"`
	IconPath   string `json:"icon_path,omitempty"`
}

// ProgramGroup is a named, ordered collection of program items. Items are
// owned exclusively by their group; the slice order is display order.
type ProgramGroup struct {
	Title string        `json:"title"`
	Items []ProgramItem `json:"items"`
}

// Theme is the persisted visual style selector.
type Theme string

const (
	ThemeSystem  Theme = "system"
	ThemeClassic Theme = "classic"
)

// ParseTheme maps a raw theme string to a known theme. Unknown or empty
// values resolve to ThemeSystem so that loading a config can never fail on
// the theme field alone.
func ParseTheme(raw string) Theme {
	switch Theme(raw) {
	case ThemeSystem, ThemeClassic:
		return Theme(raw)
	default:
		return ThemeSystem
	}
}

// WindowState describes a group window's display state.
type WindowState string

const (
	WindowNormal    WindowState = "normal"
	WindowMinimized WindowState = "minimized"
	WindowMaximized WindowState = "maximized"
)

// ParseWindowState maps a raw state string to a known state, defaulting to
// WindowNormal for anything unrecognized.
func ParseWindowState(raw string) WindowState {
	switch WindowState(raw) {
	case WindowNormal, WindowMinimized, WindowMaximized:
		return WindowState(raw)
	default:
		return WindowNormal
	}
}

// Geometry is a window rectangle in workspace cell coordinates. It is
// persisted as the four-element array [x, y, w, h].
type Geometry struct {
	X int
	Y int
	W int
	H int
}

// MarshalJSON encodes the geometry as [x, y, w, h].
func (g Geometry) MarshalJSON() ([]byte, error) {
	return json.Marshal([4]int{g.X, g.Y, g.W, g.H})
}

// UnmarshalJSON decodes a [x, y, w, h] array.
func (g *Geometry) UnmarshalJSON(data []byte) error {
	var arr []int
	if err := json.Unmarshal(data, &arr); err != nil {
		return err
	}
	if len(arr) != 4 {
		return fmt.Errorf("geometry needs 4 elements, got %d", len(arr))
	}
	g.X, g.Y, g.W, g.H = arr[0], arr[1], arr[2], arr[3]
	return nil
}

// LayoutDescriptor captures one open group window's placement. Correlation
// back to a group at restore time is by title value match.
type LayoutDescriptor struct {
	Title    string      `json:"title"`
	Geometry Geometry    `json:"geometry"`
	State    WindowState `json:"state"`
}

// ValidationError reports an empty required field rejected at the editing
// boundary.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}

// NotFoundError reports a group or item lookup that matched nothing.
type NotFoundError struct {
	Kind  string
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Kind, e.Title)
}
