// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nlp4re/orkgforms/internal/pdfform"
	"github.com/nlp4re/orkgforms/internal/survey"
	"github.com/nlp4re/orkgforms/pkg/types"
)

const defaultOutDir = "pdf2JSON_Results"

var extractCmd = &cobra.Command{
	Use:   "extract [pdfs...]",
	Short: "Extract form data from PDF surveys into JSON documents",
	Long: `Extract reads the AcroForm fields of each PDF, groups them into
questions with their selected answers, and writes a JSON document per
PDF into the output directory.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("out-dir", defaultOutDir, "directory for extracted JSON documents")
	extractCmd.Flags().Float64("label-proximity", pdfform.DefaultLabelProximity, "max distance in points between a widget and its label")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more PDF files")
	}

	outDir, _ := cmd.Flags().GetString("out-dir")
	proximity, _ := cmd.Flags().GetFloat64("label-proximity")
	cfg := types.ExtractionConfig{OutDir: outDir, LabelProximity: proximity}

	failed := 0
	for _, pdfPath := range args {
		jsonPath, doc, err := extractPDF(pdfPath, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed  %s: %v\n", pdfPath, err)
			failed++
			continue
		}
		printExtractionSummary(doc, jsonPath)
	}

	if failed > 0 {
		return fmt.Errorf("%d PDF(s) failed extraction", failed)
	}
	return nil
}

// extractPDF converts one PDF into a survey document and writes it to
// the output directory as <name>.json.
func extractPDF(pdfPath string, cfg types.ExtractionConfig) (string, types.Document, error) {
	fields, err := pdfform.ExtractFile(pdfPath, cfg.LabelProximity)
	if err != nil {
		return "", types.Document{}, err
	}

	doc := survey.Build(filepath.Base(pdfPath), fields)

	outDir := cfg.OutDir
	if outDir == "" {
		outDir = defaultOutDir
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", types.Document{}, fmt.Errorf("creating output directory: %w", err)
	}

	name := strings.TrimSuffix(filepath.Base(pdfPath), filepath.Ext(pdfPath))
	jsonPath := filepath.Join(outDir, name+".json")
	if err := survey.SaveDocument(jsonPath, doc); err != nil {
		return "", types.Document{}, err
	}
	return jsonPath, doc, nil
}

func printExtractionSummary(doc types.Document, jsonPath string) {
	fmt.Printf("%s: %d questions (%d with selections, %d fields) -> %s\n",
		doc.PDFName, doc.TotalQuestions,
		doc.Summary.QuestionsWithSelections, doc.Summary.TotalFields,
		jsonPath)

	for _, q := range doc.Questions {
		if survey.HasAnswer(q) {
			fmt.Printf("  sample: %s\n", q.Text)
			if q.Answer != "" {
				fmt.Printf("    answer: %s\n", q.Answer)
			} else {
				fmt.Printf("    selected: %s\n", strings.Join(q.SelectedAnswers, "; "))
			}
			break
		}
	}
}
