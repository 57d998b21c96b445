// Package core/launch.go - Launch Service
//
// Spawns a program item's command as a detached process through the
// platform shell, so users can write plain shell-style command lines in
// their items. The launcher never waits for the child; a failure to start
// is returned for the caller to surface.

package core

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Launcher starts external programs from program items.
type Launcher struct{}

// Launch spawns the item's command, honoring its working directory when
// set. The returned error is nil once the process has started.
func (Launcher) Launch(item ProgramItem) error {
	if strings.TrimSpace(item.Command) == "" {
		return &ValidationError{Field: "item command"}
	}

	cmd := shellCommand(item.Command)
	if item.WorkingDir != "" {
		cmd.Dir = item.WorkingDir
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch '%s' (%s): %w", item.Title, item.Command, err)
	}
	return nil
}

// shellCommand wraps a command line in the platform shell so that
// arguments, pipes and quoting behave the way users expect.
func shellCommand(command string) *exec.Cmd {
	if runtime.GOOS == "windows" {
		return exec.Command("cmd", "/C", command)
	}
	return exec.Command("sh", "-c", command)
}
