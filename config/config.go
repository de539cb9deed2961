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

// Package config loads staffgraph settings from flags, environment variables and an optional config
// file through viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is prepended to environment variables read by viper. For example, STAFFGRAPH_SERVER_ADDR
// sets server.addr.
const EnvPrefix = "STAFFGRAPH"

// Keys of the settings
const (
	KeySeed                     = "seed"
	KeyLogLevel                 = "log.level"
	KeyLogFormat                = "log.format"
	KeyServerAddr               = "server.addr"
	KeyServerOperationCacheSize = "server.operation_cache_size"
	KeyServerMaxBodySize        = "server.max_body_size"
	KeyServerShutdownTimeout    = "server.shutdown_timeout"
)

// Config holds all settings.
type Config struct {
	// Seed is the path to a YAML seed file. The built-in demo data set is served when it's empty.
	Seed   string
	Log    Log
	Server Server
}

// Log configures the logger.
type Log struct {
	// Level is one of zap's level names ("debug", "info", "warn", "error", ...).
	Level string

	// Format is either "console" or "json".
	Format string
}

// Server configures the HTTP service.
type Server struct {
	Addr               string
	OperationCacheSize uint
	MaxBodySize        uint
	ShutdownTimeout    time.Duration
}

// SetDefaults registers default values and environment bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeySeed, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyServerAddr, ":8080")
	v.SetDefault(KeyServerOperationCacheSize, 512)
	v.SetDefault(KeyServerMaxBodySize, 10<<20)
	v.SetDefault(KeyServerShutdownTimeout, 5*time.Second)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
}

// Load reads settings from v. The config file named by v, if any, is read first. Call SetDefaults
// on v before Load.
func Load(v *viper.Viper) (*Config, error) {
	if len(v.ConfigFileUsed()) > 0 {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	c := &Config{
		Seed: v.GetString(KeySeed),
		Log: Log{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
		},
		Server: Server{
			Addr:               v.GetString(KeyServerAddr),
			OperationCacheSize: v.GetUint(KeyServerOperationCacheSize),
			MaxBodySize:        v.GetUint(KeyServerMaxBodySize),
			ShutdownTimeout:    v.GetDuration(KeyServerShutdownTimeout),
		},
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%s: %w", KeyLogLevel, err)
	}
	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("%s must be either console or json, got %q", KeyLogFormat, c.Log.Format)
	}
	if len(c.Server.Addr) == 0 {
		return fmt.Errorf("%s is required", KeyServerAddr)
	}
	if c.Server.OperationCacheSize == 0 {
		return fmt.Errorf("%s must be positive", KeyServerOperationCacheSize)
	}
	if c.Server.MaxBodySize == 0 {
		return fmt.Errorf("%s must be positive", KeyServerMaxBodySize)
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%s must not be negative", KeyServerShutdownTimeout)
	}
	return nil
}

// NewLogger builds a zap logger for the given settings.
func NewLogger(c Log) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}

	var zc zap.Config
	if c.Format == "json" {
		zc = zap.NewProductionConfig()
	} else {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	// Logs go to stderr so the query command can write results to stdout.
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
