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

package schema

import (
	"github.com/botobag/artemis/graphql"

	"github.com/botobag/staffgraph/store"
)

// typeConfigs holds the definitions of the entity types. They refer to each other so they're built
// together.
type typeConfigs struct {
	state    *graphql.EnumConfig
	skill    *graphql.ObjectConfig
	employee *graphql.ObjectConfig
	project  *graphql.ObjectConfig
}

// nonNullListOf returns the definition for [T!]!.
func nonNullListOf(elementTypeDef graphql.TypeDefinition) graphql.TypeDefinition {
	return graphql.NonNullOf(graphql.ListOf(graphql.NonNullOf(elementTypeDef)))
}

// newTypeConfigs defines the entity types. Fields are resolved by the default field resolver from
// the structs in package resolver.
func newTypeConfigs() *typeConfigs {
	configs := &typeConfigs{}

	configs.state = &graphql.EnumConfig{
		Name:        "State",
		Description: "The stage a project is in.",
		Values: graphql.EnumValueDefinitionMap{
			store.StatePlanning.String(): {
				Description: "The project has not started yet.",
				Value:       store.StatePlanning,
			},
			store.StateOngoing.String(): {
				Description: "The project is in progress.",
				Value:       store.StateOngoing,
			},
			store.StateFinished.String(): {
				Description: "The project is done.",
				Value:       store.StateFinished,
			},
		},
		// Results carry store.State, not labels.
		ResultCoercerFactory: graphql.DefaultEnumResultCoercerFactory(
			graphql.DefaultEnumResultCoercerLookupByValue),
	}

	configs.skill = &graphql.ObjectConfig{
		Name:        "Skill",
		Description: "A capability that employees have and projects require.",
		Fields: graphql.Fields{
			"id": {
				Type: graphql.NonNullOfType(graphql.ID()),
			},
			"description": {
				Type: graphql.NonNullOfType(graphql.String()),
			},
		},
	}

	configs.employee = &graphql.ObjectConfig{
		Name: "Employee",
		Fields: graphql.Fields{
			"id": {
				Type: graphql.NonNullOfType(graphql.ID()),
			},
			"firstName": {
				Type: graphql.T(graphql.String()),
			},
			"lastName": {
				Type: graphql.NonNullOfType(graphql.String()),
			},
			"skills": {
				Type: nonNullListOf(configs.skill),
			},
		},
	}

	configs.project = &graphql.ObjectConfig{
		Name: "Project",
		Fields: graphql.Fields{
			"id": {
				Type: graphql.NonNullOfType(graphql.ID()),
			},
			"short": {
				Type: graphql.T(graphql.String()),
			},
			"description": {
				Type: graphql.T(graphql.String()),
			},
			"state": {
				Type: graphql.NonNullOf(configs.state),
			},
			"skillsRequired": {
				Description: "Skills needed to work on the project",
				Type:        nonNullListOf(configs.skill),
			},
			"responsible": {
				Description: "The employee in charge of the project",
				Type:        graphql.NonNullOf(configs.employee),
			},
			"assigned": {
				Description: "Employees working on the project",
				Type:        nonNullListOf(configs.employee),
			},
		},
	}

	return configs
}
