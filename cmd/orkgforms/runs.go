// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nlp4re/orkgforms/internal/runlog"
	"github.com/nlp4re/orkgforms/pkg/types"
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Inspect the pipeline run log",
	Long: `Runs lists and exports the SQLite run log written by batch: one record
per processed PDF with its JSON document, instance ID, status, and
timestamps.`,
}

var runsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded pipeline runs, most recent first",
	RunE:  runRunsList,
}

var runsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the run log to YAML or JSON",
	RunE:  runRunsExport,
}

func init() {
	runsCmd.PersistentFlags().String("log-dir", "run_logs", "directory for the run database")
	runsListCmd.Flags().Bool("json", false, "output runs as JSON")
	runsExportCmd.Flags().String("format", "yaml", "export format: yaml or json")

	runsCmd.AddCommand(runsListCmd)
	runsCmd.AddCommand(runsExportCmd)
	rootCmd.AddCommand(runsCmd)
}

func openRunLog(cmd *cobra.Command) (*runlog.Store, error) {
	logDir, _ := cmd.Flags().GetString("log-dir")
	return runlog.NewStore(types.RunLogConfig{LogDir: logDir})
}

func runRunsList(cmd *cobra.Command, args []string) error {
	store, err := openRunLog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.List(context.Background())
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-19s  %-9s  %-40s  %-12s  %s\n",
		"Started", "Status", "PDF", "Instance", "Error")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 100))

	for _, run := range runs {
		pdf := run.PDFPath
		if len(pdf) > 40 {
			pdf = "..." + pdf[len(pdf)-37:]
		}
		errMsg := run.Error
		if len(errMsg) > 30 {
			errMsg = errMsg[:27] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-19s  %-9s  %-40s  %-12s  %s\n",
			run.StartedAt.Local().Format(time.DateTime),
			run.Status, pdf, run.InstanceID, errMsg)
	}

	fmt.Fprintf(os.Stdout, "\n%d run(s)\n", len(runs))
	return nil
}

func runRunsExport(cmd *cobra.Command, args []string) error {
	store, err := openRunLog(cmd)
	if err != nil {
		return err
	}
	defer store.Close()

	format, _ := cmd.Flags().GetString("format")
	var path string
	switch format {
	case "yaml", "":
		path, err = store.ExportYAML(context.Background())
	case "json":
		path, err = store.ExportJSON(context.Background())
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}
	if err != nil {
		return err
	}

	fmt.Println("Exported to", path)
	return nil
}
