package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sh2mp4/sh2mp4/internal/plan"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func validFormat(format string) bool {
	switch format {
	case "yaml", "json", "text":
		return true
	}
	return false
}

// writePlan renders an accepted plan to the command's stdout.
func writePlan(cmd *cobra.Command, req *plan.Request, format string) error {
	w := cmd.OutOrStdout()
	switch format {
	case "json":
		return formatPlanJSON(w, req)
	case "text":
		formatPlanText(w, req)
		return nil
	default:
		return formatPlanYAML(w, req)
	}
}

func formatPlanYAML(w io.Writer, req *plan.Request) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(req); err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return enc.Close()
}

func formatPlanJSON(w io.Writer, req *plan.Request) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(req); err != nil {
		return fmt.Errorf("failed to encode plan: %w", err)
	}
	return nil
}

// formatPlanText writes a short human-readable summary.
func formatPlanText(w io.Writer, req *plan.Request) {
	fmt.Fprintf(w, "Mode:     %s\n", req.Mode)
	if req.Mode == plan.ModeUtility {
		if req.CheckDeps {
			fmt.Fprintln(w, "  - check dependencies")
		}
		if req.MeasureFonts {
			fmt.Fprintln(w, "  - measure fonts")
		}
		return
	}

	fmt.Fprintf(w, "Command:  %s\n", req.Command)
	if req.CastFile != "" {
		fmt.Fprintf(w, "Cast:     %s\n", req.CastFile)
	}
	fmt.Fprintf(w, "Output:   %s\n", req.Output)
	if req.Multiplier > 0 {
		fmt.Fprintf(w, "FPS:      %d (recording at %d, speed %s)\n", req.FPS, req.RecordingFPS, req.Speed)
	} else {
		fmt.Fprintf(w, "FPS:      %d\n", req.FPS)
	}
	if req.Cols > 0 && req.Lines > 0 {
		fmt.Fprintf(w, "Geometry: %dx%d\n", req.Cols, req.Lines)
	}
}
