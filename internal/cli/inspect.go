package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/timmy/machines-eye/internal/service"
	"gopkg.in/yaml.v3"
)

func newInspectCmd(opts *options) *cobra.Command {
	var compareWith int
	var format string

	cmd := &cobra.Command{
		Use:   "inspect <object_id>",
		Short: "Print the lens view of a work, or a comparison of two works",
		Example: `  # Lens view as YAML
  galleryctl inspect 56197

  # Comparison as JSON
  galleryctl inspect 56197 --compare 44102 --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid object id %q", args[0])
			}

			ws, err := opts.openWorkspace()
			if err != nil {
				return err
			}
			snap, err := ws.snapshot(cmd.Context())
			if err != nil {
				return err
			}
			return runInspect(cmd.OutOrStdout(), snap, id, compareWith, format)
		},
	}

	cmd.Flags().IntVar(&compareWith, "compare", 0, "Object ID of the work to compare against")
	cmd.Flags().StringVar(&format, "format", "yaml", "Output format (yaml or json)")

	return cmd
}

func runInspect(out io.Writer, snap *service.Snapshot, id, compareWith int, format string) error {
	var v any
	if compareWith != 0 {
		summary, ok := snap.Comparison.GetComparisonSummary(id, compareWith)
		if !ok {
			return fmt.Errorf("work %d or %d not found in corpus", id, compareWith)
		}
		v = summary
	} else {
		view, ok := snap.Lens.GetLensData(id)
		if !ok {
			return fmt.Errorf("work %d not found in corpus", id)
		}
		v = view
	}

	return writeFormatted(out, v, format)
}

func writeFormatted(out io.Writer, v any, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want yaml or json)", format)
	}
}
