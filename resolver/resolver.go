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

// Package resolver materializes denormalized views of the entities in a store.
//
// The store keeps entities normalized: employees and projects refer to skills and employees by
// position. Resolution follows those references and embeds the referenced entities, exactly one
// level per relationship, so that a query executor can walk the result without going back to the
// store. Resolution is always total: every field of the returned object is populated and it's up to
// the query executor to project the fields a caller asked for.
//
// A reference that fails to resolve means the store was populated without going through its
// integrity checks. The Resolve functions describe such failure with a ResolutionError; the Must
// variants treat it as a broken invariant and panic.
package resolver

import (
	"github.com/botobag/staffgraph/store"
)

// Store provides read access to the entity collections by position. *store.Store implements it.
type Store interface {
	Skill(ref store.SkillRef) (store.Skill, error)
	Employee(ref store.EmployeeRef) (store.Employee, error)
	Project(ref store.ProjectRef) (store.Project, error)
}

var _ Store = (*store.Store)(nil)

// Skill is the public form of store.Skill.
type Skill struct {
	ID          string `graphql:"id"`
	Description string
}

// Employee is the public form of store.Employee with its skills embedded.
type Employee struct {
	ID        string `graphql:"id"`
	FirstName *string
	LastName  string
	Skills    []*Skill
}

// Project is the public form of store.Project with its skills and employees embedded.
type Project struct {
	ID             string `graphql:"id"`
	Short          string
	Description    *string
	State          store.State
	SkillsRequired []*Skill
	Responsible    *Employee
	Assigned       []*Employee
}

// ResolveSkill returns the public form of the skill at ref.
func ResolveSkill(s Store, ref store.SkillRef) (*Skill, error) {
	skill, err := s.Skill(ref)
	if err != nil {
		return nil, &ResolutionError{
			Kind:       MissingSkill,
			Collection: store.Skills,
			Pos:        int(ref),
			Err:        err,
		}
	}

	return &Skill{
		ID:          ref.ID(),
		Description: skill.Description,
	}, nil
}

// ResolveEmployee returns the public form of the employee at ref with its skills resolved.
func ResolveEmployee(s Store, ref store.EmployeeRef) (*Employee, error) {
	employee, err := s.Employee(ref)
	if err != nil {
		return nil, &ResolutionError{
			Kind:       MissingEmployee,
			Collection: store.Employees,
			Pos:        int(ref),
			Err:        err,
		}
	}

	owner := Owner{store.Employees, int(ref)}
	skills, err := resolveSkills(s, owner, employee.Skills)
	if err != nil {
		return nil, err
	}

	return &Employee{
		ID:        ref.ID(),
		FirstName: employee.FirstName,
		LastName:  employee.LastName,
		Skills:    skills,
	}, nil
}

// ResolveProject returns the public form of the project at ref. Required skills are resolved first,
// followed by the responsible employee and then the assigned ones.
func ResolveProject(s Store, ref store.ProjectRef) (*Project, error) {
	project, err := s.Project(ref)
	if err != nil {
		return nil, &ResolutionError{
			Kind:       MissingProject,
			Collection: store.Projects,
			Pos:        int(ref),
			Err:        err,
		}
	}

	owner := Owner{store.Projects, int(ref)}

	skills, err := resolveSkills(s, owner, project.SkillsRequired)
	if err != nil {
		return nil, err
	}

	responsible, err := ResolveEmployee(s, project.Responsible)
	if err != nil {
		return nil, brokenReference(owner, store.Employees, int(project.Responsible), err)
	}

	assigned := make([]*Employee, len(project.Assigned))
	for i, employeeRef := range project.Assigned {
		employee, err := ResolveEmployee(s, employeeRef)
		if err != nil {
			return nil, brokenReference(owner, store.Employees, int(employeeRef), err)
		}
		assigned[i] = employee
	}

	return &Project{
		ID:             ref.ID(),
		Short:          project.Short,
		Description:    project.Description,
		State:          project.State,
		SkillsRequired: skills,
		Responsible:    responsible,
		Assigned:       assigned,
	}, nil
}

func resolveSkills(s Store, owner Owner, refs []store.SkillRef) ([]*Skill, error) {
	skills := make([]*Skill, len(refs))
	for i, ref := range refs {
		skill, err := ResolveSkill(s, ref)
		if err != nil {
			return nil, brokenReference(owner, store.Skills, int(ref), err)
		}
		skills[i] = skill
	}
	return skills, nil
}

// MustResolveSkill is like ResolveSkill but panics with an *InvariantViolation on failure.
func MustResolveSkill(s Store, ref store.SkillRef) *Skill {
	skill, err := ResolveSkill(s, ref)
	if err != nil {
		panic(newInvariantViolation(err))
	}
	return skill
}

// MustResolveEmployee is like ResolveEmployee but panics with an *InvariantViolation on failure.
func MustResolveEmployee(s Store, ref store.EmployeeRef) *Employee {
	employee, err := ResolveEmployee(s, ref)
	if err != nil {
		panic(newInvariantViolation(err))
	}
	return employee
}

// MustResolveProject is like ResolveProject but panics with an *InvariantViolation on failure.
func MustResolveProject(s Store, ref store.ProjectRef) *Project {
	project, err := ResolveProject(s, ref)
	if err != nil {
		panic(newInvariantViolation(err))
	}
	return project
}
