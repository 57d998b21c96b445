// Package core/model.go - Application Model
//
// This file implements the root aggregate owning the full application state:
// the theme choice, the ordered program groups, and the captured window
// layout. The model is constructed once per process by Load, mutated in
// place by the presentation layer through the operations below, and
// persisted on demand with Save. Load never fails; a missing or unreadable
// configuration file yields a synthesized starter model instead.

package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// DefaultConfigPath returns the per-user dotfile location of the
// configuration file.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".progman.json"), nil
}

// AppModel owns the persisted application state. It is not safe for
// concurrent use; all access happens on the presentation loop.
type AppModel struct {
	configPath string
	theme      Theme
	groups     []ProgramGroup
	layout     []LayoutDescriptor
	codec      Codec
	logger     *Logger
}

// Load reads the configuration file at path and builds the model. A missing
// file is first-run behavior, not an error: the starter model is synthesized
// and written back best-effort. An unreadable or top-level corrupt file also
// yields the starter model, but the broken file is left on disk untouched
// until the next explicit save.
func Load(path string, logger *Logger) *AppModel {
	m := &AppModel{configPath: path, logger: logger}

	data, err := os.ReadFile(path)
	if err != nil {
		m.loadDefault()
		if errors.Is(err, fs.ErrNotExist) {
			logger.Info("model", "no config file, creating starter configuration")
			if saveErr := m.Save(); saveErr != nil {
				logger.Error("model", saveErr)
			}
		} else {
			logger.Warn("model", fmt.Sprintf("config unreadable, starting with defaults: %v", err))
		}
		return m
	}

	st, err := m.codec.Decode(data)
	if err != nil {
		logger.Warn("model", fmt.Sprintf("config corrupt, starting with defaults: %v", err))
		m.loadDefault()
		return m
	}

	m.theme = st.Theme
	m.groups = st.Groups
	m.layout = st.Layout
	logger.Debug("model", fmt.Sprintf("loaded %d groups from %s", len(m.groups), path))
	return m
}

// loadDefault synthesizes the first-run state: one starter group with a
// platform-sensitive example item.
func (m *AppModel) loadDefault() {
	starter := ProgramItem{Title: "Terminal", Command: "xterm"}
	if runtime.GOOS == "windows" {
		starter = ProgramItem{Title: "Notepad", Command: "notepad.exe"}
	}

	m.theme = ThemeSystem
	m.groups = []ProgramGroup{{Title: "Main", Items: []ProgramItem{starter}}}
	m.layout = []LayoutDescriptor{}
}

// Save encodes the current state and overwrites the configuration file as a
// whole. The write goes through a temp file in the same directory followed
// by a rename. On failure the in-memory state is untouched and the error is
// returned to the caller.
func (m *AppModel) Save() error {
	data := m.codec.Encode(State{Theme: m.theme, Groups: m.groups, Layout: m.layout})

	dir := filepath.Dir(m.configPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".progman-*.tmp")
	if err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("save config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save config: %w", err)
	}
	if err := os.Rename(tmpName, m.configPath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// ConfigPath returns the file location the model persists to.
func (m *AppModel) ConfigPath() string {
	return m.configPath
}

// Theme returns the active theme.
func (m *AppModel) Theme() Theme {
	return m.theme
}

// SetTheme records a new theme choice. Unknown names fall back to the
// system theme rather than failing, mirroring the decode behavior.
func (m *AppModel) SetTheme(name string) {
	m.theme = ParseTheme(name)
}

// Groups returns a copy of the group sequence. Callers get display-time
// snapshots only; mutations go through the model operations.
func (m *AppModel) Groups() []ProgramGroup {
	out := make([]ProgramGroup, len(m.groups))
	for i, g := range m.groups {
		out[i] = ProgramGroup{
			Title: g.Title,
			Items: append([]ProgramItem(nil), g.Items...),
		}
	}
	return out
}

// Group returns a copy of the first group with the given title.
func (m *AppModel) Group(title string) (ProgramGroup, bool) {
	g := m.findGroup(title)
	if g == nil {
		return ProgramGroup{}, false
	}
	return ProgramGroup{Title: g.Title, Items: append([]ProgramItem(nil), g.Items...)}, true
}

// Layout returns a copy of the captured layout descriptors.
func (m *AppModel) Layout() []LayoutDescriptor {
	return append([]LayoutDescriptor(nil), m.layout...)
}

// FindLayout returns the first layout descriptor whose title matches.
func (m *AppModel) FindLayout(title string) (LayoutDescriptor, bool) {
	for _, d := range m.layout {
		if d.Title == title {
			return d, true
		}
	}
	return LayoutDescriptor{}, false
}

// SetLayout replaces the layout wholesale with a fresh capture. The caller
// passes one descriptor per currently open window; stale descriptors are
// dropped by never being captured again.
func (m *AppModel) SetLayout(descriptors []LayoutDescriptor) {
	m.layout = append([]LayoutDescriptor(nil), descriptors...)
}

// AddGroup appends a new empty group. The title is rejected when empty or
// whitespace-only.
func (m *AppModel) AddGroup(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return &ValidationError{Field: "group title"}
	}
	m.groups = append(m.groups, ProgramGroup{Title: title, Items: []ProgramItem{}})
	return nil
}

// RenameGroup retitles the first group matching old. The saved layout keeps
// the old title and is silently dropped at the next capture; the open
// window's placement survives because the workspace retitles it in place.
func (m *AppModel) RenameGroup(old, new string) error {
	new = strings.TrimSpace(new)
	if new == "" {
		return &ValidationError{Field: "group title"}
	}
	g := m.findGroup(old)
	if g == nil {
		return &NotFoundError{Kind: "group", Title: old}
	}
	g.Title = new
	return nil
}

// DeleteGroup removes the first group matching title together with its
// items, and drops any layout descriptors captured for it.
func (m *AppModel) DeleteGroup(title string) error {
	for i := range m.groups {
		if m.groups[i].Title == title {
			m.groups = append(m.groups[:i], m.groups[i+1:]...)
			m.pruneLayout(title)
			return nil
		}
	}
	return &NotFoundError{Kind: "group", Title: title}
}

// AddItem appends a validated item to the named group. Title and command
// must be non-blank; all fields are stored trimmed.
func (m *AppModel) AddItem(group string, item ProgramItem) error {
	clean, err := sanitizeItem(item)
	if err != nil {
		return err
	}
	g := m.findGroup(group)
	if g == nil {
		return &NotFoundError{Kind: "group", Title: group}
	}
	g.Items = append(g.Items, clean)
	return nil
}

// UpdateItem replaces the first item in the named group equal to old with
// the validated new value.
func (m *AppModel) UpdateItem(group string, old, new ProgramItem) error {
	clean, err := sanitizeItem(new)
	if err != nil {
		return err
	}
	g := m.findGroup(group)
	if g == nil {
		return &NotFoundError{Kind: "group", Title: group}
	}
	for i := range g.Items {
		if g.Items[i] == old {
			g.Items[i] = clean
			return nil
		}
	}
	return &NotFoundError{Kind: "item", Title: old.Title}
}

// DeleteItem removes the first item in the named group equal to item.
func (m *AppModel) DeleteItem(group string, item ProgramItem) error {
	g := m.findGroup(group)
	if g == nil {
		return &NotFoundError{Kind: "group", Title: group}
	}
	for i := range g.Items {
		if g.Items[i] == item {
			g.Items = append(g.Items[:i], g.Items[i+1:]...)
			return nil
		}
	}
	return &NotFoundError{Kind: "item", Title: item.Title}
}

func (m *AppModel) findGroup(title string) *ProgramGroup {
	for i := range m.groups {
		if m.groups[i].Title == title {
			return &m.groups[i]
		}
	}
	return nil
}

func (m *AppModel) pruneLayout(title string) {
	kept := m.layout[:0]
	for _, d := range m.layout {
		if d.Title != title {
			kept = append(kept, d)
		}
	}
	m.layout = kept
}

func sanitizeItem(item ProgramItem) (ProgramItem, error) {
	clean := ProgramItem{
		Title:      strings.TrimSpace(item.Title),
		Command:    strings.TrimSpace(item.Command),
		WorkingDir: strings.TrimSpace(item.WorkingDir),
		IconPath:   strings.TrimSpace(item.IconPath),
	}
	if clean.Title == "" {
		return ProgramItem{}, &ValidationError{Field: "item title"}
	}
	if clean.Command == "" {
		return ProgramItem{}, &ValidationError{Field: "item command"}
	}
	return clean, nil
}
