package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"evalgo.org/archium/internal/workspace"
)

var (
	exportFormat string
	exportOutput string
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export a workspace document to another format",
	Long: `Export a workspace document as JSON, YAML or JSON-LD.

The JSON-LD export expands the document against its @context and
compacts it again, producing a normalized rendition for graph tooling.

Examples:
  archium export workspace.json --format yaml
  archium export workspace.yaml --format jsonld -o workspace.jsonld`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "", "output format: json, yaml or jsonld (default from config)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
}

func runExport(cmd *cobra.Command, args []string) error {
	filename := cfg.Workspace.Path
	if len(args) > 0 {
		filename = args[0]
	}

	format := exportFormat
	if format == "" {
		format = cfg.Output.Format
	}

	logger := newLogger(cfg)
	logger.Debug("loading workspace", "file", filename)

	ws, err := workspace.Load(filename)
	if err != nil {
		return err
	}

	var data []byte
	switch format {
	case "json", "yaml":
		data, err = workspace.Encode(ws, format)
	case "jsonld":
		data, err = workspace.ExportJSONLD(ws)
	default:
		return fmt.Errorf("unknown format: %s (use 'json', 'yaml' or 'jsonld')", format)
	}
	if err != nil {
		return err
	}

	if exportOutput == "" {
		fmt.Println(string(data))
		return nil
	}

	if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	logger.Info("workspace exported", "file", exportOutput, "format", format)
	return nil
}
