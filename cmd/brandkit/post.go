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

var postCmd = &cobra.Command{
	Use:   "post <topic>",
	Short: "Write a platform-ready post on a topic",
	Long: `Post writes a single social media post on the given topic, shaped by
the saved brand profile, the target platform's conventions, and the
requested length. Platforms: instagram, facebook, telegram, blog.
Lengths: short, medium, long.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPost,
}

func runPost(cmd *cobra.Command, args []string) error {
	topic := strings.Join(args, " ")
	platform, _ := cmd.Flags().GetString("platform")
	length, _ := cmd.Flags().GetString("length")

	ctx := context.Background()
	stack := newStack(ctx)
	defer stack.Close()

	profile := stack.profiles.Load()
	content, err := stack.svc.Post(ctx, profile, topic, platform, length)
	if err != nil {
		fmt.Println(generate.UserMessage(err))
		return nil
	}

	fmt.Println(content)

	stack.record(ctx, &types.GenerationRecord{
		Kind:     types.KindPost,
		Topic:    topic,
		Platform: platform,
		Length:   length,
		Model:    stack.modelID(ctx),
		Content:  content,
	})
	return nil
}

func init() {
	postCmd.Flags().String("platform", "instagram", "target platform: instagram, facebook, telegram, blog")
	postCmd.Flags().String("length", "short", "post length: short, medium, long")

	rootCmd.AddCommand(postCmd)
}
