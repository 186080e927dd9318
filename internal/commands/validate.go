package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"evalgo.org/archium/internal/validation"
	"evalgo.org/archium/internal/workspace"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a workspace document",
	Long: `Validate a workspace document against the Archium schemas.

Examples:
  archium validate workspace.json
  archium validate architecture.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	filename := cfg.Workspace.Path
	if len(args) > 0 {
		filename = args[0]
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	// YAML workspaces are validated through their JSON equivalent.
	if workspace.FormatForPath(filename) == workspace.FormatYAML {
		ws, err := workspace.Decode(data, workspace.FormatYAML)
		if err != nil {
			return err
		}
		if data, err = workspace.Encode(ws, workspace.FormatJSON); err != nil {
			return err
		}
	}

	validator := validation.New()
	result, err := validator.ValidateWorkspace(data)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if result.Valid {
		fmt.Println("✓ Workspace is valid")
		return nil
	}

	fmt.Println("✗ Validation failed:")
	for _, e := range result.Errors {
		if e.Value != nil {
			fmt.Printf("  - %s: %s (value: %v)\n", e.Field, e.Message, e.Value)
		} else {
			fmt.Printf("  - %s: %s\n", e.Field, e.Message)
		}
	}

	return fmt.Errorf("validation failed")
}
