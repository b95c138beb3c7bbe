package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yourusername/winswitch/internal/config"
)

// configCmd is the parent command for config subcommands
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Commands for showing, validating and creating the monitor layout configuration.`,
}

// configShowCmd shows the effective config
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if jsonOutput {
			return printJSON(cfg)
		}

		format, _ := cmd.Flags().GetString("format")
		data, err := cfg.Marshal(format)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

// configValidateCmd validates a config file
var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if len(args) > 0 {
			path = args[0]
		}

		// LoadConfig validates
		cfg, err := config.LoadConfig(path)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		width, height := cfg.WorkspaceSize()
		successColor.Println("✓ Configuration is valid")
		keyColor.Print("  Backend: ")
		fmt.Println(cfg.Settings.Backend)
		keyColor.Print("  Monitors: ")
		fmt.Println(len(cfg.Monitors))
		keyColor.Print("  Workspace: ")
		fmt.Printf("%dx%d\n", width, height)

		return nil
	},
}

// configInitCmd creates the default config
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.GetConfigPath()
		}

		force, _ := cmd.Flags().GetBool("force")
		if _, err := os.Stat(path); err == nil && !force {
			return fmt.Errorf("config file already exists at %s", path)
		}

		format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		data, err := config.Default().Marshal(format)
		if err != nil {
			return err
		}
		content := string(data)
		if format != "json" {
			content = "# winswitch monitor layout\n" +
				"# Monitors are listed left to right; focus monitor <index> counts from 0.\n" +
				content
		}

		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		successColor.Printf("✓ Created default config at: %s\n", path)
		return nil
	},
}
