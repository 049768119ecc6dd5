// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nlp4re/orkgforms/internal/orkg"
	"github.com/nlp4re/orkgforms/internal/survey"
	"github.com/nlp4re/orkgforms/internal/template"
)

const defaultTemplateLabel = "NLP4RE Paper Analysis Survey"

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Create and inspect ORKG templates",
	Long: `Template manages native ORKG template definitions built from survey
documents: a template resource with a target class and one parameter
per question, option classes for choice questions.`,
}

var templateCreateCmd = &cobra.Command{
	Use:   "create <json>",
	Short: "Build a native ORKG template from a survey JSON document",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateCreate,
}

var templateMaterializeCmd = &cobra.Command{
	Use:   "materialize <template-id>",
	Short: "Check that a template's graph is complete enough for instances",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplateMaterialize,
}

func init() {
	orkgFlags(templateCreateCmd)
	templateCreateCmd.Flags().String("label", defaultTemplateLabel, "label for the new template")
	orkgFlags(templateMaterializeCmd)

	templateCmd.AddCommand(templateCreateCmd)
	templateCmd.AddCommand(templateMaterializeCmd)
	rootCmd.AddCommand(templateCmd)
}

func runTemplateCreate(cmd *cobra.Command, args []string) error {
	doc, err := survey.LoadDocument(args[0])
	if err != nil {
		return err
	}
	label, _ := cmd.Flags().GetString("label")

	client := orkgClient(cmd)
	builder := template.NewBuilder(client)

	info, err := builder.Create(context.Background(), doc, label, os.Stdout)
	if err != nil {
		return err
	}

	// Creation succeeded; verification failures are only warnings.
	status, err := builder.Verify(context.Background(), info.ID)
	switch {
	case err != nil:
		fmt.Fprintf(os.Stderr, "warning: template verification failed: %v\n", err)
	case !status.Materialized():
		fmt.Fprintln(os.Stderr, "warning: template graph incomplete, it may need manual review")
	}

	fmt.Printf("Template URL: %s\n", info.URL(templateHost(cmd)))
	return nil
}

func runTemplateMaterialize(cmd *cobra.Command, args []string) error {
	client := orkgClient(cmd)
	builder := template.NewBuilder(client)

	status, err := builder.Verify(context.Background(), args[0])
	if err != nil {
		return err
	}

	fmt.Printf("template %s: target class %s, %d parameters\n",
		status.TemplateID, status.TargetClassID, status.Parameters)
	if !status.Materialized() {
		return fmt.Errorf("template %s is not materialized", args[0])
	}
	fmt.Println("template is materialized")
	return nil
}

func templateHost(cmd *cobra.Command) string {
	host, _ := cmd.Flags().GetString("host")
	if host = secretDefault("orkg-host", host); host == "" {
		host = orkg.DefaultHost
	}
	return host
}
