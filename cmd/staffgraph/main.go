/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

// Command staffgraph serves skills, employees and projects through GraphQL.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/botobag/staffgraph/config"
	"github.com/botobag/staffgraph/store"
)

var rootCmd = &cobra.Command{
	Use:   "staffgraph",
	Short: "GraphQL service over skills, employees and projects",
	Long: `staffgraph loads skills, employees and projects from a YAML seed file (or a built-in
demo data set) and answers GraphQL queries against them.`,
	SilenceUsage: true,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

var configFile string

func initConfig() {
	config.SetDefaults(viper.GetViper())
	if len(configFile) > 0 {
		viper.SetConfigFile(configFile)
	}
}

func addPersistentFlags() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (yaml, json or toml)")
	flags.String("seed", "", "YAML seed file; the demo data set is used when empty")
	flags.String("log-level", "info", "log level")
	_ = viper.BindPFlag(config.KeySeed, flags.Lookup("seed"))
	_ = viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
}

func registerCommands() {
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(queryCmd())
	rootCmd.AddCommand(dumpCmd())
}

// env holds what every command needs.
type env struct {
	config *config.Config
	logger *zap.Logger
	store  *store.Store
}

// withEnv loads settings, builds the logger and seeds the store before calling fn.
func withEnv(fn func(e *env) error) error {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync()

	s, err := loadStore(cfg.Seed)
	if err != nil {
		return err
	}
	logger.Debug("store loaded",
		zap.String("seed", cfg.Seed),
		zap.Int("skills", s.NumSkills()),
		zap.Int("employees", s.NumEmployees()),
		zap.Int("projects", s.NumProjects()))

	return fn(&env{
		config: cfg,
		logger: logger,
		store:  s,
	})
}

func loadStore(seed string) (*store.Store, error) {
	if len(seed) == 0 {
		return store.Demo(), nil
	}
	return store.LoadFile(seed)
}
