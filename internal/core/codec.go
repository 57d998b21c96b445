// Package core/codec.go - Configuration Codec
//
// This file implements the pure translation between the in-memory state and
// the on-disk JSON document. The codec does no I/O. Decoding is tolerant:
// missing optional fields fall back to defaults, an unknown theme becomes
// "system", and a malformed layout_state string degrades to an empty layout
// without aborting the rest of the decode. Only a top-level unparseable
// document is reported as an error.

package core

import (
	"encoding/json"
	"fmt"
)

// State is the codec's view of the full persisted state.
type State struct {
	Theme  Theme
	Groups []ProgramGroup
	Layout []LayoutDescriptor
}

// configDocument is the outer wire shape of the configuration file. The
// window layout travels as a nested JSON array embedded in a single string
// field and is parsed in a second, independent step.
type configDocument struct {
	Theme       string         `json:"theme"`
	LayoutState string         `json:"layout_state,omitempty"`
	Groups      []ProgramGroup `json:"groups"`
}

// Codec converts between State and the configuration document bytes.
type Codec struct{}

// Encode renders the state as an indented JSON document. It cannot fail for
// the domain types; empty optional item fields are omitted from the output
// and an empty layout omits layout_state entirely.
func (Codec) Encode(s State) []byte {
	doc := configDocument{
		Theme:  string(s.Theme),
		Groups: s.Groups,
	}
	if doc.Groups == nil {
		doc.Groups = []ProgramGroup{}
	}
	if len(s.Layout) > 0 {
		// Marshal of plain structs and ints cannot fail.
		inner, _ := json.Marshal(s.Layout)
		doc.LayoutState = string(inner)
	}
	out, _ := json.MarshalIndent(doc, "", "  ")
	return out
}

// Decode parses a configuration document. The returned error is non-nil
// only when the top-level document is not valid JSON; every inner field is
// recovered with its default instead.
func (Codec) Decode(data []byte) (State, error) {
	var doc configDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return State{}, fmt.Errorf("parse config document: %w", err)
	}

	s := State{
		Theme:  ParseTheme(doc.Theme),
		Groups: doc.Groups,
		Layout: decodeLayoutState(doc.LayoutState),
	}
	if s.Groups == nil {
		s.Groups = []ProgramGroup{}
	}
	for i := range s.Groups {
		if s.Groups[i].Items == nil {
			s.Groups[i].Items = []ProgramItem{}
		}
	}
	return s, nil
}

// decodeLayoutState parses the embedded layout array. Any failure means the
// saved layout is unusable, which is recoverable: the workspace simply opens
// with default placements.
func decodeLayoutState(raw string) []LayoutDescriptor {
	if raw == "" {
		return []LayoutDescriptor{}
	}
	var layout []LayoutDescriptor
	if err := json.Unmarshal([]byte(raw), &layout); err != nil {
		return []LayoutDescriptor{}
	}
	if layout == nil {
		return []LayoutDescriptor{}
	}
	for i := range layout {
		layout[i].State = ParseWindowState(string(layout[i].State))
	}
	return layout
}
