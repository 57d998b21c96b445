package cmd

import (
	"fmt"
	"strings"

	"progman/internal/core"
	"progman/internal/tui"
)

// Execute runs the root command
func Execute() error {
	cfg := core.ParseEnv()
	logger := core.NewLogger(&cfg)

	if cfg.ShowVersion {
		fmt.Println("progman v1.0.0")
		fmt.Println("Program Manager-style launcher for the terminal")
		return nil
	}

	if cfg.CLICommand != "" {
		return handleCLICommand(cfg, logger)
	}

	// Default: launch the workspace TUI
	if err := tui.Run(cfg, logger); err != nil {
		logger.Error("cmd", err)
		return err
	}
	return nil
}

// handleCLICommand handles non-interactive CLI commands
func handleCLICommand(cfg core.Config, logger *core.Logger) error {
	path := cfg.ConfigPath
	if path == "" {
		var err error
		path, err = core.DefaultConfigPath()
		if err != nil {
			return err
		}
	}

	switch cfg.CLICommand {
	case "path":
		fmt.Println(path)
		return nil
	case "list":
		return cmdList(path, logger)
	case "launch":
		return cmdLaunch(path, logger, cfg.CLIArgs)
	default:
		return fmt.Errorf("unknown command: %s", cfg.CLICommand)
	}
}

// cmdList prints every group and its items
func cmdList(path string, logger *core.Logger) error {
	model := core.Load(path, logger)

	for _, group := range model.Groups() {
		fmt.Printf("%s\n", group.Title)
		for _, item := range group.Items {
			fmt.Printf("  %-20s %s\n", item.Title, item.Command)
		}
	}
	return nil
}

// cmdLaunch launches one item without opening the workspace. The target is
// addressed as "Group/Title" or as two separate arguments.
func cmdLaunch(path string, logger *core.Logger, args []string) error {
	var groupTitle, itemTitle string
	switch len(args) {
	case 1:
		parts := strings.SplitN(args[0], "/", 2)
		if len(parts) != 2 {
			return fmt.Errorf("launch target must be 'Group/Title'")
		}
		groupTitle, itemTitle = parts[0], parts[1]
	case 2:
		groupTitle, itemTitle = args[0], args[1]
	default:
		return fmt.Errorf("usage: progman launch <group>/<title>")
	}

	model := core.Load(path, logger)
	group, ok := model.Group(groupTitle)
	if !ok {
		return fmt.Errorf("group '%s' not found", groupTitle)
	}

	for _, item := range group.Items {
		if item.Title == itemTitle {
			var launcher core.Launcher
			if err := launcher.Launch(item); err != nil {
				return err
			}
			logger.Infof("cmd", "launched '%s'", item.Title)
			return nil
		}
	}
	return fmt.Errorf("item '%s' not found in group '%s'", itemTitle, groupTitle)
}
