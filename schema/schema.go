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

// Package schema declares the GraphQL schema of staffgraph and binds its root fields to a
// query.Query.
//
// The entry points of query.Query return fully resolved objects. The GraphQL executor walks them
// with its default field resolver and keeps only the fields named in the selection set.
package schema

import (
	"context"

	"github.com/botobag/artemis/graphql"
	"github.com/botobag/artemis/graphql/executor"
	"github.com/botobag/artemis/graphql/parser"
	"github.com/botobag/artemis/graphql/token"

	"github.com/botobag/staffgraph/query"
)

// idArgs declares the arguments of the lookup-by-id root fields.
var idArgs = graphql.ArgumentConfigMap{
	"id": {
		Type: graphql.NonNullOfType(graphql.ID()),
	},
}

// idArg returns the value given to the "id" argument. Validation guarantees its presence.
func idArg(info graphql.ResolveInfo) string {
	id, _ := info.Args().Get("id").(string)
	return id
}

// New creates a schema whose query root type serves data from q.
func New(q *query.Query) (graphql.Schema, error) {
	configs := newTypeConfigs()

	queryType, err := graphql.NewObject(&graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"skills": {
				Type: nonNullListOf(configs.skill),
				Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
					return q.Skills(), nil
				}),
			},
			"employees": {
				Type: nonNullListOf(configs.employee),
				Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
					return q.Employees(), nil
				}),
			},
			"projects": {
				Type: nonNullListOf(configs.project),
				Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
					return q.Projects(), nil
				}),
			},
			"skill": {
				Type: configs.skill,
				Args: idArgs,
				Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
					return q.Skill(idArg(info)), nil
				}),
			},
			"employee": {
				Type: configs.employee,
				Args: idArgs,
				Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
					return q.Employee(idArg(info)), nil
				}),
			},
			"project": {
				Type: configs.project,
				Args: idArgs,
				Resolver: graphql.FieldResolverFunc(func(ctx context.Context, source interface{}, info graphql.ResolveInfo) (interface{}, error) {
					return q.Project(idArg(info)), nil
				}),
			},
		},
	})
	if err != nil {
		return nil, err
	}

	return graphql.NewSchema(&graphql.SchemaConfig{
		Query: queryType,
	})
}

// MustNew is like New but panics on error.
func MustNew(q *query.Query) graphql.Schema {
	s, err := New(q)
	if err != nil {
		panic(err)
	}
	return s
}

// Do parses, validates and executes a query against s. Syntax and validation errors are reported in
// the Errors of the returned result rather than as a separate error.
func Do(ctx context.Context, s graphql.Schema, q string, opts ...executor.ExecuteOption) *executor.ExecutionResult {
	document, err := parser.Parse(token.NewSource(q))
	if err != nil {
		// Syntax errors from the parser are *graphql.Error which carry locations.
		if _, ok := err.(*graphql.Error); !ok {
			err = graphql.NewError(err.Error())
		}
		return &executor.ExecutionResult{
			Errors: graphql.ErrorsOf(err),
		}
	}

	operation, errs := executor.Prepare(s, document)
	if errs.HaveOccurred() {
		return &executor.ExecutionResult{
			Errors: errs,
		}
	}

	return operation.Execute(ctx, opts...)
}
