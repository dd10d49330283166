// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the brandkit CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/brandkit/brandkit/internal/brand"
	"github.com/brandkit/brandkit/internal/credentials"
	"github.com/brandkit/brandkit/internal/gemini"
	"github.com/brandkit/brandkit/internal/generate"
	"github.com/brandkit/brandkit/internal/history"
	"github.com/brandkit/brandkit/internal/model"
	"github.com/brandkit/brandkit/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the brandkit CLI.
var rootCmd = &cobra.Command{
	Use:   "brandkit",
	Short: "Brand-aware marketing content generation powered by Gemini",
	Long: `brandkit keeps a reusable brand profile on disk and turns it into
marketing content through the Gemini API: content ideas, platform-ready
posts, and day-by-day content plans.

Generated results are recorded in a local searchable history. Commands
degrade gracefully: a missing API key or an unavailable model produces
an explanatory message, never a crash.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./brandkit.yaml or ~/.config/brandkit/brandkit.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("brandkit")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "brandkit"))
		}
	}

	viper.SetEnvPrefix("BRANDKIT")
	viper.AutomaticEnv()

	viper.SetDefault("profile_path", brand.DefaultPath)
	viper.SetDefault("history_dir", ".brandkit")
	viper.SetDefault("preferred_models", model.DefaultPreferred)
	viper.SetDefault("generation.temperature", 0.7)
	viper.SetDefault("generation.top_p", 0.95)
	viper.SetDefault("generation.max_output_tokens", 2048)
	viper.SetDefault("server.addr", ":8080")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// appConfig assembles the effective configuration from viper.
func appConfig() types.AppConfig {
	return types.AppConfig{
		Profile: types.ProfileConfig{Path: viper.GetString("profile_path")},
		History: types.HistoryConfig{Dir: viper.GetString("history_dir")},
		Server:  types.ServerConfig{Addr: viper.GetString("server.addr")},
		Generation: types.GenerationConfig{
			PreferredModels: viper.GetStringSlice("preferred_models"),
			Temperature:     viper.GetFloat64("generation.temperature"),
			TopP:            viper.GetFloat64("generation.top_p"),
			MaxOutputTokens: viper.GetInt("generation.max_output_tokens"),
		},
	}
}

// appStack bundles the collaborators a generation command needs.
type appStack struct {
	cfg      types.AppConfig
	key      string
	profiles *brand.Store
	client   *gemini.Client
	session  *model.Session
	svc      *generate.Service
}

// newStack locates the credential and wires the generation pipeline.
// Without a usable credential the stack still builds; resolution then
// reports the missing credential.
func newStack(ctx context.Context) *appStack {
	cfg := appConfig()
	key := credentials.Locate(".")

	resolver := model.Resolver{
		APIKey:    key,
		Preferred: cfg.Generation.PreferredModels,
	}

	var client *gemini.Client
	if model.ValidKey(key) {
		c, err := gemini.NewClient(ctx, key, cfg.Generation)
		if err == nil {
			client = c
			resolver.Catalog = c
			resolver.Factory = c
		} else {
			fmt.Fprintf(os.Stderr, "warning: gemini client unavailable: %v\n", err)
		}
	}

	session := model.NewSession(resolver)
	return &appStack{
		cfg:      cfg,
		key:      key,
		profiles: brand.NewStore(cfg.Profile.Path),
		client:   client,
		session:  session,
		svc:      &generate.Service{Models: session},
	}
}

// Close releases the SDK connection, if one was opened.
func (a *appStack) Close() {
	if a.client != nil {
		a.client.Close()
	}
}

// modelID names the resolved model, or "" when resolution failed.
func (a *appStack) modelID(ctx context.Context) string {
	h, err := a.session.Handle(ctx)
	if err != nil {
		return ""
	}
	return h.ModelID()
}

// record stores a generation result in the history. Best effort: history
// problems warn and never fail the command.
func (a *appStack) record(ctx context.Context, rec *types.GenerationRecord) {
	store, err := history.NewStore(a.cfg.History)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: history unavailable: %v\n", err)
		return
	}
	defer store.Close()

	if err := store.Add(ctx, rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: recording generation failed: %v\n", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
