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

package store

import (
	"fmt"
)

// ReferenceError is returned by Builder when an entity refers to an entity that has not been added.
type ReferenceError struct {
	// Owner is the collection of the entity being added.
	Owner Collection

	// Field of the entity that holds the reference
	Field string

	// Target is the collection the reference points into.
	Target Collection

	// Pos is the offending position.
	Pos int
}

// Error implements Go's error interface.
func (err *ReferenceError) Error() string {
	return fmt.Sprintf("%s.%s refers to %s %d which does not exist", err.Owner, err.Field, err.Target, err.Pos)
}

// Builder populates collections for a Store. Every reference passed to Builder is checked against
// the entities added so far so a reference is never accepted before its target exists. A Builder is
// not safe for concurrent use.
type Builder struct {
	skills    []Skill
	employees []Employee
	projects  []Project
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// AddSkill appends a skill and returns its position.
func (b *Builder) AddSkill(skill Skill) SkillRef {
	b.skills = append(b.skills, skill)
	return SkillRef(len(b.skills) - 1)
}

// AddEmployee appends an employee and returns its position.
func (b *Builder) AddEmployee(employee Employee) (EmployeeRef, error) {
	if err := b.checkSkillRefs(Employees, "skills", employee.Skills); err != nil {
		return 0, err
	}
	b.employees = append(b.employees, copyEmployee(employee))
	return EmployeeRef(len(b.employees) - 1), nil
}

// AddProject appends a project and returns its position.
func (b *Builder) AddProject(project Project) (ProjectRef, error) {
	if !project.State.Valid() {
		return 0, fmt.Errorf("project has invalid state %d", int(project.State))
	}
	if err := b.checkSkillRefs(Projects, "skillsRequired", project.SkillsRequired); err != nil {
		return 0, err
	}
	if err := b.checkEmployeeRef("responsible", project.Responsible); err != nil {
		return 0, err
	}
	for _, ref := range project.Assigned {
		if err := b.checkEmployeeRef("assigned", ref); err != nil {
			return 0, err
		}
	}
	b.projects = append(b.projects, copyProject(project))
	return ProjectRef(len(b.projects) - 1), nil
}

// Build returns a Store containing everything added so far. The Store doesn't share memory with
// the Builder; entities added after Build are not visible in the returned Store.
func (b *Builder) Build() *Store {
	s := &Store{
		skills:    append(make([]Skill, 0, len(b.skills)), b.skills...),
		employees: make([]Employee, len(b.employees)),
		projects:  make([]Project, len(b.projects)),
	}
	for i, employee := range b.employees {
		s.employees[i] = copyEmployee(employee)
	}
	for i, project := range b.projects {
		s.projects[i] = copyProject(project)
	}
	return s
}

func (b *Builder) checkSkillRefs(owner Collection, field string, refs []SkillRef) error {
	for _, ref := range refs {
		if ref < 0 || int(ref) >= len(b.skills) {
			return &ReferenceError{
				Owner:  owner,
				Field:  field,
				Target: Skills,
				Pos:    int(ref),
			}
		}
	}
	return nil
}

func (b *Builder) checkEmployeeRef(field string, ref EmployeeRef) error {
	if ref < 0 || int(ref) >= len(b.employees) {
		return &ReferenceError{
			Owner:  Projects,
			Field:  field,
			Target: Employees,
			Pos:    int(ref),
		}
	}
	return nil
}
