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

// Package query provides the root entry points of the staffgraph schema.
package query

import (
	"github.com/botobag/staffgraph/resolver"
	"github.com/botobag/staffgraph/store"
)

// Store is the read access needed by Query. *store.Store implements it.
type Store interface {
	resolver.Store

	Skills() []store.SkillEntry
	Employees() []store.EmployeeEntry
	Projects() []store.ProjectEntry
}

var _ Store = (*store.Store)(nil)

// Query resolves the root fields of a query against a Store. Every call walks the store again;
// nothing is cached between calls.
//
// The list methods are total over a store built by store.Builder. A reference that fails to resolve
// panics with a *resolver.InvariantViolation.
type Query struct {
	store Store
}

// New creates a Query serving data from s.
func New(s Store) *Query {
	return &Query{s}
}

// Skills returns all skills in insertion order.
func (q *Query) Skills() []*resolver.Skill {
	entries := q.store.Skills()
	skills := make([]*resolver.Skill, len(entries))
	for i, entry := range entries {
		skills[i] = resolver.MustResolveSkill(q.store, entry.Ref)
	}
	return skills
}

// Employees returns all employees in insertion order.
func (q *Query) Employees() []*resolver.Employee {
	entries := q.store.Employees()
	employees := make([]*resolver.Employee, len(entries))
	for i, entry := range entries {
		employees[i] = resolver.MustResolveEmployee(q.store, entry.Ref)
	}
	return employees
}

// Projects returns all projects in insertion order.
func (q *Query) Projects() []*resolver.Project {
	entries := q.store.Projects()
	projects := make([]*resolver.Project, len(entries))
	for i, entry := range entries {
		projects[i] = resolver.MustResolveProject(q.store, entry.Ref)
	}
	return projects
}

// Skill returns the skill with the given id or nil if there's no such skill.
func (q *Query) Skill(id string) *resolver.Skill {
	ref, err := store.ParseSkillRef(id)
	if err != nil {
		return nil
	}
	if _, err := q.store.Skill(ref); err != nil {
		return nil
	}
	return resolver.MustResolveSkill(q.store, ref)
}

// Employee returns the employee with the given id or nil if there's no such employee.
func (q *Query) Employee(id string) *resolver.Employee {
	ref, err := store.ParseEmployeeRef(id)
	if err != nil {
		return nil
	}
	if _, err := q.store.Employee(ref); err != nil {
		return nil
	}
	return resolver.MustResolveEmployee(q.store, ref)
}

// Project returns the project with the given id or nil if there's no such project.
func (q *Query) Project(id string) *resolver.Project {
	ref, err := store.ParseProjectRef(id)
	if err != nil {
		return nil
	}
	if _, err := q.store.Project(ref); err != nil {
		return nil
	}
	return resolver.MustResolveProject(q.store, ref)
}
