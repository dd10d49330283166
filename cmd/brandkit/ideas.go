// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/brandkit/brandkit/internal/generate"
	"github.com/brandkit/brandkit/pkg/types"
)

// Idea and plan counts clamp to the same bounds the interactive menu of
// the original tool offered.
const (
	minIdeaCount     = 3
	maxIdeaCount     = 10
	defaultIdeaCount = 5
)

var ideasCmd = &cobra.Command{
	Use:   "ideas",
	Short: "Generate content ideas grounded in the brand profile",
	Long: `Ideas asks the resolved Gemini model for a numbered list of content
ideas tailored to the saved brand profile. The result is printed one
idea per line and recorded in the history.`,
	RunE: runIdeas,
}

func runIdeas(cmd *cobra.Command, args []string) error {
	count, _ := cmd.Flags().GetInt("count")
	count = clampCount(count, minIdeaCount, maxIdeaCount)

	ctx := context.Background()
	stack := newStack(ctx)
	defer stack.Close()

	profile := stack.profiles.Load()
	ideas, err := stack.svc.Ideas(ctx, profile, count)
	if err != nil {
		fmt.Println(generate.UserMessage(err))
		return nil
	}

	for _, idea := range ideas {
		fmt.Println(idea)
	}

	stack.record(ctx, &types.GenerationRecord{
		Kind:    types.KindIdeas,
		Count:   count,
		Model:   stack.modelID(ctx),
		Content: strings.Join(ideas, "\n"),
	})
	return nil
}

// clampCount confines n to [lo, hi].
func clampCount(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func init() {
	ideasCmd.Flags().Int("count", defaultIdeaCount, "number of ideas to generate (3-10)")

	rootCmd.AddCommand(ideasCmd)
}
