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

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/botobag/artemis/graphql/executor"
	"github.com/spf13/cobra"

	"github.com/botobag/staffgraph/query"
	"github.com/botobag/staffgraph/schema"
	"github.com/botobag/staffgraph/store"
)

var errQueryFailed = errors.New("query returned errors")

func queryCmd() *cobra.Command {
	var (
		file string
		vars []string
	)
	cmd := &cobra.Command{
		Use:   "query [query]",
		Short: "Execute a GraphQL query and print the result as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := querySource(args, file)
			if err != nil {
				return err
			}
			variables, err := parseVars(vars)
			if err != nil {
				return err
			}
			return withEnv(func(e *env) error {
				return runQuery(cmdContext(cmd), e.store, source, variables, os.Stdout)
			})
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the query from a file")
	cmd.Flags().StringArrayVar(&vars, "var", nil, "query variable as name=value (repeatable)")
	return cmd
}

// querySource returns the query given either as the only argument or in a file.
func querySource(args []string, file string) (string, error) {
	switch {
	case len(args) > 0 && len(file) > 0:
		return "", errors.New("query argument and --file are mutually exclusive")

	case len(args) > 0:
		return args[0], nil

	case len(file) > 0:
		b, err := os.ReadFile(file)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	return "", errors.New("a query argument or --file is required")
}

// parseVars turns name=value pairs into query variables. Values are passed as strings.
func parseVars(pairs []string) (map[string]interface{}, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	variables := make(map[string]interface{}, len(pairs))
	for _, pair := range pairs {
		i := strings.IndexByte(pair, '=')
		if i <= 0 {
			return nil, fmt.Errorf("invalid variable %q: expected name=value", pair)
		}
		variables[pair[:i]] = pair[i+1:]
	}
	return variables, nil
}

// runQuery executes source against s and writes the result to w. errQueryFailed is returned when
// the result carries errors.
func runQuery(ctx context.Context, s *store.Store, source string, variables map[string]interface{}, w io.Writer) error {
	gqlSchema, err := schema.New(query.New(s))
	if err != nil {
		return err
	}

	var opts []executor.ExecuteOption
	if variables != nil {
		opts = append(opts, executor.VariableValues(variables))
	}

	result := schema.Do(ctx, gqlSchema, source, opts...)
	if err := result.MarshalJSONTo(w); err != nil {
		return err
	}
	fmt.Fprintln(w)

	if result.Errors.HaveOccurred() {
		return errQueryFailed
	}
	return nil
}
