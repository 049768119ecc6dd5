// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/nlp4re/orkgforms/internal/instance"
	"github.com/nlp4re/orkgforms/internal/pdfform"
	"github.com/nlp4re/orkgforms/internal/runlog"
	"github.com/nlp4re/orkgforms/pkg/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch <folder>",
	Short: "Run the full pipeline over every PDF in a folder",
	Long: `Batch finds all PDF files in a folder and runs extraction and instance
creation for each one, recording every run in the run log. Per-file
failures do not stop the batch; the command fails only when no PDF
makes it through.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	orkgFlags(batchCmd)
	batchCmd.Flags().String("out-dir", defaultOutDir, "directory for extracted JSON documents")
	batchCmd.Flags().Float64("label-proximity", pdfform.DefaultLabelProximity, "max distance in points between a widget and its label")
	batchCmd.Flags().String("log-dir", "run_logs", "directory for the run database")

	rootCmd.AddCommand(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	pdfs, err := findPDFs(args[0])
	if err != nil {
		return err
	}
	if len(pdfs) == 0 {
		return fmt.Errorf("no PDF files found in %s", args[0])
	}
	fmt.Printf("found %d PDF file(s) in %s\n", len(pdfs), args[0])

	outDir, _ := cmd.Flags().GetString("out-dir")
	proximity, _ := cmd.Flags().GetFloat64("label-proximity")
	extractCfg := types.ExtractionConfig{OutDir: outDir, LabelProximity: proximity}

	logDir, _ := cmd.Flags().GetString("log-dir")
	store, err := runlog.NewStore(types.RunLogConfig{LogDir: logDir})
	if err != nil {
		return err
	}
	defer store.Close()

	creator := instance.NewCreator(orkgClient(cmd), types.InstanceConfig{}, os.Stdout)

	ctx := context.Background()
	extracted, created := 0, 0
	var failures []string

	for i, pdfPath := range pdfs {
		fmt.Printf("\n[%d/%d] %s\n", i+1, len(pdfs), filepath.Base(pdfPath))

		run, err := store.Begin(ctx, pdfPath)
		if err != nil {
			return err
		}

		jsonPath, doc, err := extractPDF(pdfPath, extractCfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  extraction failed: %v\n", err)
			failures = append(failures, fmt.Sprintf("%s: %v", filepath.Base(pdfPath), err))
			recordFailure(ctx, store, run.ID, err)
			continue
		}
		extracted++
		if err := store.MarkExtracted(ctx, run.ID, jsonPath); err != nil {
			return err
		}
		printExtractionSummary(doc, jsonPath)

		instanceID, err := creator.Create(ctx, doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "  instance creation failed: %v\n", err)
			failures = append(failures, fmt.Sprintf("%s: %v", filepath.Base(pdfPath), err))
			recordFailure(ctx, store, run.ID, err)
			continue
		}
		created++
		if err := store.MarkCreated(ctx, run.ID, instanceID); err != nil {
			return err
		}
		fmt.Printf("  instance: %s/resource/%s\n", templateHost(cmd), instanceID)
	}

	fmt.Printf("\nextracted: %d/%d, instances created: %d/%d\n",
		extracted, len(pdfs), created, len(pdfs))
	for _, failure := range failures {
		fmt.Fprintf(os.Stderr, "failed  %s\n", failure)
	}

	if created == 0 {
		return fmt.Errorf("no instances created")
	}
	return nil
}

func findPDFs(folder string) ([]string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		return nil, fmt.Errorf("reading folder %s: %w", folder, err)
	}

	var pdfs []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".pdf" {
			continue
		}
		pdfs = append(pdfs, filepath.Join(folder, entry.Name()))
	}
	sort.Strings(pdfs)
	return pdfs, nil
}

func recordFailure(ctx context.Context, store *runlog.Store, runID string, cause error) {
	if err := store.MarkFailed(ctx, runID, cause.Error()); err != nil {
		fmt.Fprintf(os.Stderr, "  warning: run log update failed: %v\n", err)
	}
}
