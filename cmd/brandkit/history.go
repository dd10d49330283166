// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brandkit/brandkit/internal/history"
	"github.com/brandkit/brandkit/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history [query]",
	Short: "Search past generations",
	Long: `History lists stored generations newest first, or searches them with
full-text search over topics and content. Filter by kind with --kind
(ideas, post, plan).`,
	RunE: runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := history.NewStore(appConfig().History)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := historyOptsFromFlags(cmd, args)
	records, err := store.Retrieve(context.Background(), opts)
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatHistoryOutput(records, jsonOutput)
}

func formatHistoryOutput(records []types.GenerationRecord, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(records)
	}

	if len(records) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-16s  %-5s  %-25s  %-22s  %s\n",
		"Created", "Kind", "Topic", "Model", "Content")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 105))

	for _, r := range records {
		topic := r.Topic
		if topic == "" {
			topic = "-"
		}
		if len(topic) > 25 {
			topic = topic[:22] + "..."
		}
		modelID := r.Model
		if len(modelID) > 22 {
			modelID = modelID[:19] + "..."
		}
		content := strings.ReplaceAll(r.Content, "\n", " ")
		if len(content) > 40 {
			content = content[:37] + "..."
		}
		fmt.Fprintf(os.Stdout, "%-16s  %-5s  %-25s  %-22s  %s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Kind, topic, modelID, content)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(records))
	return nil
}

// --- export subcommand ---

var historyExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the history to YAML or JSON",
	Long: `Export writes the stored generations (or a filtered subset) to
export.yaml or export.json inside the history directory. Supports the
same query and filter flags as history itself.`,
	RunE: runHistoryExport,
}

func runHistoryExport(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	cfg := appConfig().History
	store, err := history.NewStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	opts := historyOptsFromFlags(cmd, args)

	switch format {
	case "yaml", "":
		if err := store.ExportYAML(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to " + filepath.Join(cfg.Dir, "export.yaml"))
	case "json":
		if err := store.ExportJSON(context.Background(), opts); err != nil {
			return err
		}
		fmt.Println("Exported to " + filepath.Join(cfg.Dir, "export.json"))
	default:
		return fmt.Errorf("unsupported format %q: use yaml or json", format)
	}

	return nil
}

// --- shared helpers ---

func historyOptsFromFlags(cmd *cobra.Command, args []string) history.QueryOptions {
	queryText, _ := cmd.Flags().GetString("query")
	if queryText == "" && len(args) > 0 {
		queryText = strings.Join(args, " ")
	}

	kind, _ := cmd.Flags().GetString("kind")
	limit, _ := cmd.Flags().GetInt("limit")

	return history.QueryOptions{
		Query:      queryText,
		Kind:       types.GenerationKind(kind),
		MaxResults: limit,
	}
}

func init() {
	historyCmd.Flags().String("query", "", "full-text search query")
	historyCmd.Flags().String("kind", "", "filter by kind: ideas, post, plan")
	historyCmd.Flags().Int("limit", 0, "maximum results (0 = use default)")
	historyCmd.Flags().Bool("json", false, "output results as JSON")

	historyExportCmd.Flags().String("format", "yaml", "export format: yaml or json")
	historyExportCmd.Flags().String("query", "", "full-text search filter for partial export")
	historyExportCmd.Flags().String("kind", "", "filter by kind for partial export")
	historyExportCmd.Flags().Int("limit", 0, "maximum records to export (0 = all)")

	historyCmd.AddCommand(historyExportCmd)

	rootCmd.AddCommand(historyCmd)
}
