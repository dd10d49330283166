// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/brandkit/brandkit/internal/brand"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage the brand profile (show, edit, set)",
	Long: `Profile manages the brand profile that grounds every generation:
company name, description, audience, tone of voice, values, and key
messages. The profile is stored as JSON next to the working directory
and reused by the ideas, post, and plan commands.`,
}

// --- show subcommand ---

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved brand profile",
	RunE:  runProfileShow,
}

func runProfileShow(cmd *cobra.Command, args []string) error {
	store := profileStore()
	profile := store.Load()

	cyan := color.New(color.FgCyan).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()

	shown := 0
	for _, field := range brand.Fields() {
		value := *field.Get(&profile)
		if value == "" {
			continue
		}
		fmt.Printf("%s %s\n", cyan(field.Label+":"), value)
		shown++
	}
	if shown == 0 {
		fmt.Println(yellow(`No brand profile saved yet. Run "brandkit profile edit" to create one.`))
		return nil
	}

	fmt.Printf("\nStored in %s\n", store.Path())
	return nil
}

// --- edit subcommand ---

var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Fill in or update the brand profile interactively",
	Long: `Edit walks through every profile field with an interactive prompt.
Existing values are offered as editable defaults; press Enter to keep
them. Ctrl+C leaves the stored profile untouched.`,
	RunE: runProfileEdit,
}

func runProfileEdit(cmd *cobra.Command, args []string) error {
	store := profileStore()
	profile := store.Load()

	for _, field := range brand.Fields() {
		target := field.Get(&profile)
		prompt := promptui.Prompt{
			Label:     field.Label,
			Default:   *target,
			AllowEdit: true,
		}
		value, err := prompt.Run()
		if err != nil {
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrAbort) || errors.Is(err, promptui.ErrEOF) {
				fmt.Println("Profile unchanged.")
				return nil
			}
			return err
		}
		*target = strings.TrimSpace(value)
	}

	if err := store.Save(profile); err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	fmt.Println(green("Brand profile saved to " + store.Path()))
	return nil
}

// --- set subcommand ---

var profileSetCmd = &cobra.Command{
	Use:   "set <field> <value>",
	Short: "Set a single profile field without the interactive prompt",
	Long: `Set writes one profile field directly. Field names:
company_name, company_description, target_audience, tone_of_voice,
brand_values, key_messages.`,
	Args: cobra.ExactArgs(2),
	RunE: runProfileSet,
}

func runProfileSet(cmd *cobra.Command, args []string) error {
	name, value := args[0], args[1]

	store := profileStore()
	profile := store.Load()

	for _, field := range brand.Fields() {
		if field.Name != name {
			continue
		}
		*field.Get(&profile) = strings.TrimSpace(value)
		if err := store.Save(profile); err != nil {
			return err
		}
		fmt.Printf("Set %s.\n", field.Name)
		return nil
	}

	return fmt.Errorf("unknown field %q: use one of %s", name, strings.Join(fieldNames(), ", "))
}

// --- shared helpers ---

func profileStore() *brand.Store {
	return brand.NewStore(appConfig().Profile.Path)
}

func fieldNames() []string {
	fields := brand.Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	profileCmd.AddCommand(profileEditCmd)
	profileCmd.AddCommand(profileSetCmd)

	rootCmd.AddCommand(profileCmd)
}
