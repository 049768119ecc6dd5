// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nlp4re/orkgforms/internal/instance"
	"github.com/nlp4re/orkgforms/pkg/types"
)

var instanceCmd = &cobra.Command{
	Use:   "instance [jsons...]",
	Short: "Create NLP4RE template instances from survey JSON documents",
	Long: `Instance populates the published NLP4RE ID card template on ORKG from
extracted survey documents: a paper resource per document, component
resources per section, and answers mapped to the template's curated
resources or created as literals.`,
	RunE: runInstance,
}

func init() {
	orkgFlags(instanceCmd)
	instanceCmd.Flags().String("template", "", "template resource to create instances of (default "+instance.DefaultTemplateID+")")
	instanceCmd.Flags().String("target-class", "", "target class for paper resources (default "+instance.DefaultTargetClass+")")

	rootCmd.AddCommand(instanceCmd)
}

func runInstance(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("provide one or more survey JSON files")
	}

	templateID, _ := cmd.Flags().GetString("template")
	targetClass, _ := cmd.Flags().GetString("target-class")
	creator := instance.NewCreator(orkgClient(cmd),
		types.InstanceConfig{TemplateID: templateID, TargetClassID: targetClass}, os.Stdout)

	created := 0
	for _, jsonPath := range args {
		instanceID, err := creator.CreateFromFile(context.Background(), jsonPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed  %s: %v\n", jsonPath, err)
			continue
		}
		created++
		fmt.Printf("Instance URL: %s/resource/%s\n", templateHost(cmd), instanceID)
	}

	if created < len(args) {
		return fmt.Errorf("%d document(s) failed instance creation", len(args)-created)
	}
	return nil
}
