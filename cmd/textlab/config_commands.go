package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"textlab/internal/config"
)

func newConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Manage textlab configuration",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}
	cmd.AddCommand(newConfigInitCommand())
	cmd.AddCommand(newConfigValidateCommand())
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var (
		path      string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			target := strings.TrimSpace(path)
			if target == "" {
				defaultPath, err := config.DefaultConfigPath()
				if err != nil {
					return err
				}
				target = defaultPath
			}
			expanded, err := config.ExpandPath(target)
			if err != nil {
				return err
			}
			if _, err := os.Stat(expanded); err == nil && !overwrite {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", expanded)
			}
			if err := config.CreateSample(expanded); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote sample config to %s\n", expanded)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Destination path (default: the standard config location)")
	cmd.Flags().BoolVar(&overwrite, "force", false, "Overwrite an existing config file")
	return cmd
}

func newConfigValidateCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that the configuration loads and passes validation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, resolvedPath, exists, err := config.Load(strings.TrimSpace(path))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if !exists {
				fmt.Fprintln(out, "No config file found; built-in defaults are valid")
			} else {
				fmt.Fprintf(out, "Config at %s is valid\n", resolvedPath)
			}
			fmt.Fprintf(out, "input_dir:  %s\n", cfg.Paths.InputDir)
			fmt.Fprintf(out, "output_dir: %s\n", cfg.Paths.OutputDir)
			fmt.Fprintf(out, "log_dir:    %s\n", cfg.Paths.LogDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", "", "Config file to validate (default: the standard locations)")
	return cmd
}
