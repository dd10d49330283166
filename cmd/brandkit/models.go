// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brandkit/brandkit/internal/generate"
	"github.com/brandkit/brandkit/internal/model"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the Gemini models available to the configured key",
	Long: `Models queries the Gemini API for the model catalog, marks which
models support text generation, and shows which one the preference
list resolves to.`,
	RunE: runModels,
}

func runModels(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	stack := newStack(ctx)
	defer stack.Close()

	if !model.ValidKey(stack.key) {
		fmt.Println(generate.UserMessage(model.ErrCredentialMissing))
		return nil
	}
	if stack.client == nil {
		fmt.Println(generate.UserMessage(model.ErrModelUnavailable))
		return nil
	}

	candidates, err := stack.client.List(ctx)
	if err != nil {
		fmt.Println(generate.UserMessage(fmt.Errorf("%w: %v", generate.ErrRemoteCallFailed, err)))
		return nil
	}
	resolved := stack.modelID(ctx)

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatModelsOutput(candidates, resolved, jsonOutput)
}

func formatModelsOutput(candidates []model.Candidate, resolved string, jsonOutput bool) error {
	if jsonOutput {
		type modelRow struct {
			Name               string `json:"name"`
			SupportsGeneration bool   `json:"supports_generation"`
		}
		listing := struct {
			Models   []modelRow `json:"models"`
			Resolved string     `json:"resolved,omitempty"`
		}{Resolved: resolved}
		for _, c := range candidates {
			listing.Models = append(listing.Models, modelRow{Name: c.Name, SupportsGeneration: c.SupportsGeneration})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(listing)
	}

	if len(candidates) == 0 {
		fmt.Println("No models found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-50s  %s\n", "Model", "Generates")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 61))

	for _, c := range candidates {
		generates := "no"
		if c.SupportsGeneration {
			generates = "yes"
		}
		marker := ""
		if resolved != "" && model.Normalize(c.Name) == model.Normalize(resolved) {
			marker = "   <- resolved"
		}
		fmt.Fprintf(os.Stdout, "%-50s  %s%s\n", c.Name, generates, marker)
	}

	fmt.Fprintf(os.Stdout, "\n%d models\n", len(candidates))
	return nil
}

func init() {
	modelsCmd.Flags().Bool("json", false, "output the catalog as JSON")

	rootCmd.AddCommand(modelsCmd)
}
