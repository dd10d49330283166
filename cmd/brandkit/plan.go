// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brandkit/brandkit/internal/generate"
	"github.com/brandkit/brandkit/pkg/types"
)

const (
	minPlanCount          = 3
	maxPlanCount          = 30
	defaultWeekPlanCount  = 7
	defaultMonthPlanCount = 15
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a day-by-day content plan",
	Long: `Plan produces a publishing schedule for a week or a month, one entry
per day with a topic, format, and description, grounded in the saved
brand profile. The post count defaults to 7 for a week and 15 for a
month.`,
	RunE: runPlan,
}

func runPlan(cmd *cobra.Command, args []string) error {
	period, _ := cmd.Flags().GetString("period")
	count, _ := cmd.Flags().GetInt("count")
	if count <= 0 {
		if period == "week" {
			count = defaultWeekPlanCount
		} else {
			count = defaultMonthPlanCount
		}
	} else {
		count = clampCount(count, minPlanCount, maxPlanCount)
	}

	ctx := context.Background()
	stack := newStack(ctx)
	defer stack.Close()

	profile := stack.profiles.Load()
	content, err := stack.svc.Plan(ctx, profile, period, count)
	if err != nil {
		fmt.Println(generate.UserMessage(err))
		return nil
	}

	fmt.Println(content)

	stack.record(ctx, &types.GenerationRecord{
		Kind:    types.KindPlan,
		Period:  period,
		Count:   count,
		Model:   stack.modelID(ctx),
		Content: content,
	})
	return nil
}

func init() {
	planCmd.Flags().String("period", "week", "planning period: week or month")
	planCmd.Flags().Int("count", 0, "number of posts (0 = default for the period)")

	rootCmd.AddCommand(planCmd)
}
