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
	"strconv"
)

// Collection names one of the entity collections in a Store.
type Collection int

// Enumeration of Collection
const (
	Skills Collection = iota
	Employees
	Projects
)

// String returns the singular entity name stored in c.
func (c Collection) String() string {
	switch c {
	case Skills:
		return "skill"
	case Employees:
		return "employee"
	case Projects:
		return "project"
	}
	return fmt.Sprintf("Collection(%d)", int(c))
}

// NotFoundError is returned when a position is outside of the current range of a collection.
type NotFoundError struct {
	Collection Collection

	// Pos is the requested position. It is -1 when the request carried an identifier that is not a
	// valid position at all.
	Pos int

	// ID is set when the lookup was made with an external identifier.
	ID string
}

// Error implements Go's error interface.
func (err *NotFoundError) Error() string {
	if len(err.ID) > 0 {
		return fmt.Sprintf("%s %q not found", err.Collection, err.ID)
	}
	return fmt.Sprintf("%s %d not found", err.Collection, err.Pos)
}

// IsNotFound returns true if err is a *NotFoundError.
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// SkillEntry pairs a skill with its position.
type SkillEntry struct {
	Ref   SkillRef
	Skill Skill
}

// EmployeeEntry pairs an employee with its position.
type EmployeeEntry struct {
	Ref      EmployeeRef
	Employee Employee
}

// ProjectEntry pairs a project with its position.
type ProjectEntry struct {
	Ref     ProjectRef
	Project Project
}

// Store is an immutable set of entity collections. Use a Builder to create one. The zero value is
// an empty store.
type Store struct {
	skills    []Skill
	employees []Employee
	projects  []Project
}

// NumSkills returns the number of skills in the store.
func (s *Store) NumSkills() int {
	return len(s.skills)
}

// NumEmployees returns the number of employees in the store.
func (s *Store) NumEmployees() int {
	return len(s.employees)
}

// NumProjects returns the number of projects in the store.
func (s *Store) NumProjects() int {
	return len(s.projects)
}

// Skill returns the skill at ref.
func (s *Store) Skill(ref SkillRef) (Skill, error) {
	if ref < 0 || int(ref) >= len(s.skills) {
		return Skill{}, &NotFoundError{Collection: Skills, Pos: int(ref)}
	}
	return s.skills[ref], nil
}

// Employee returns a copy of the employee at ref.
func (s *Store) Employee(ref EmployeeRef) (Employee, error) {
	if ref < 0 || int(ref) >= len(s.employees) {
		return Employee{}, &NotFoundError{Collection: Employees, Pos: int(ref)}
	}
	return copyEmployee(s.employees[ref]), nil
}

// Project returns a copy of the project at ref.
func (s *Store) Project(ref ProjectRef) (Project, error) {
	if ref < 0 || int(ref) >= len(s.projects) {
		return Project{}, &NotFoundError{Collection: Projects, Pos: int(ref)}
	}
	return copyProject(s.projects[ref]), nil
}

// Skills returns all skills in insertion order.
func (s *Store) Skills() []SkillEntry {
	entries := make([]SkillEntry, len(s.skills))
	for i, skill := range s.skills {
		entries[i] = SkillEntry{
			Ref:   SkillRef(i),
			Skill: skill,
		}
	}
	return entries
}

// Employees returns copies of all employees in insertion order.
func (s *Store) Employees() []EmployeeEntry {
	entries := make([]EmployeeEntry, len(s.employees))
	for i, employee := range s.employees {
		entries[i] = EmployeeEntry{
			Ref:      EmployeeRef(i),
			Employee: copyEmployee(employee),
		}
	}
	return entries
}

// Projects returns copies of all projects in insertion order.
func (s *Store) Projects() []ProjectEntry {
	entries := make([]ProjectEntry, len(s.projects))
	for i, project := range s.projects {
		entries[i] = ProjectEntry{
			Ref:     ProjectRef(i),
			Project: copyProject(project),
		}
	}
	return entries
}

// parsePos converts an external identifier into a position in c. It only checks the syntax of id;
// whether the position exists is up to the getters.
func parsePos(c Collection, id string) (int, error) {
	pos, err := strconv.Atoi(id)
	// Reject forms like "+1" or "01" which would alias a canonical identifier.
	if err != nil || pos < 0 || strconv.Itoa(pos) != id {
		return 0, &NotFoundError{Collection: c, Pos: -1, ID: id}
	}
	return pos, nil
}

// ParseSkillRef converts an external skill identifier into a SkillRef.
func ParseSkillRef(id string) (SkillRef, error) {
	pos, err := parsePos(Skills, id)
	return SkillRef(pos), err
}

// ParseEmployeeRef converts an external employee identifier into an EmployeeRef.
func ParseEmployeeRef(id string) (EmployeeRef, error) {
	pos, err := parsePos(Employees, id)
	return EmployeeRef(pos), err
}

// ParseProjectRef converts an external project identifier into a ProjectRef.
func ParseProjectRef(id string) (ProjectRef, error) {
	pos, err := parsePos(Projects, id)
	return ProjectRef(pos), err
}

func copyEmployee(e Employee) Employee {
	e.FirstName = copyString(e.FirstName)
	e.Skills = append([]SkillRef{}, e.Skills...)
	return e
}

func copyProject(p Project) Project {
	p.Description = copyString(p.Description)
	p.SkillsRequired = append([]SkillRef{}, p.SkillsRequired...)
	p.Assigned = append([]EmployeeRef{}, p.Assigned...)
	return p
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
