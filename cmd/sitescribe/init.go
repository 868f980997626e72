package main

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sitescribe/sitescribe/internal/config"
)

//go:embed templates/questions.yaml
var questionsTemplate embed.FS

// NewInitCmd creates the init command.
func NewInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a starter questions file",
		Long: `Init creates a starter questions.yaml in the current directory.

The generated file contains commented example questions grouped into
sections (company, products, contact, team). Edit it to match what you
want to learn about the sites you crawl.

Examples:
  # Create questions.yaml in the current directory
  sitescribe init

  # Create the standing questions file in the XDG config directory
  sitescribe init --global

  # Create at a specific path, overwriting if present
  sitescribe init -o myquestions.yaml -f`,
		RunE: runInitCmd,
	}

	cmd.Flags().StringP("output", "o", config.QuestionsFileName,
		"Output file path for the questions file")
	cmd.Flags().BoolP("force", "f", false,
		"Overwrite an existing questions file")
	cmd.Flags().BoolP("global", "g", false,
		"Write to the XDG config location instead of the current directory")

	return cmd
}

// runInitCmd executes the init command.
func runInitCmd(cmd *cobra.Command, _ []string) error {
	outputPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}

	global, err := cmd.Flags().GetBool("global")
	if err != nil {
		return err
	}
	if global {
		outputPath = config.DefaultQuestionsPath()
	}

	if !force {
		if _, err := os.Stat(outputPath); err == nil {
			return fmt.Errorf("questions file already exists: %s (use -f to overwrite)", outputPath)
		}
	}

	content, err := questionsTemplate.ReadFile("templates/questions.yaml")
	if err != nil {
		return fmt.Errorf("failed to read questions template: %w", err)
	}

	dir := filepath.Dir(outputPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(outputPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write questions file: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created questions file: %s\n", outputPath)
	return nil
}
