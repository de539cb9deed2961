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
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// seedDocument is the layout of a YAML seed file. References are positions in the lists of the same
// document.
type seedDocument struct {
	Skills    []*string `yaml:"skills"`
	Employees []struct {
		FirstName *string    `yaml:"firstName"`
		LastName  string     `yaml:"lastName"`
		Skills    []SkillRef `yaml:"skills"`
	} `yaml:"employees"`
	Projects []struct {
		Short          string        `yaml:"short"`
		Description    *string       `yaml:"description"`
		State          *State        `yaml:"state"`
		SkillsRequired []SkillRef    `yaml:"skillsRequired"`
		Responsible    *EmployeeRef  `yaml:"responsible"`
		Assigned       []EmployeeRef `yaml:"assigned"`
	} `yaml:"projects"`
}

// Load builds a Store from a YAML seed document read from r. Unknown keys, references to entries
// that don't exist and missing required fields (null skills, a project's state or responsible
// employee) are reported as errors.
func Load(r io.Reader) (*Store, error) {
	var doc seedDocument

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	b := NewBuilder()

	for i, description := range doc.Skills {
		if description == nil {
			return nil, fmt.Errorf("skills[%d]: description is required", i)
		}
		b.AddSkill(Skill{Description: *description})
	}

	for i, e := range doc.Employees {
		if len(e.LastName) == 0 {
			return nil, fmt.Errorf("employees[%d]: lastName is required", i)
		}
		if _, err := b.AddEmployee(Employee{
			FirstName: e.FirstName,
			LastName:  e.LastName,
			Skills:    e.Skills,
		}); err != nil {
			return nil, fmt.Errorf("employees[%d]: %w", i, err)
		}
	}

	for i, p := range doc.Projects {
		if p.State == nil {
			return nil, fmt.Errorf("projects[%d]: state is required", i)
		}
		if p.Responsible == nil {
			return nil, fmt.Errorf("projects[%d]: responsible is required", i)
		}
		if _, err := b.AddProject(Project{
			Short:          p.Short,
			Description:    p.Description,
			State:          *p.State,
			SkillsRequired: p.SkillsRequired,
			Responsible:    *p.Responsible,
			Assigned:       p.Assigned,
		}); err != nil {
			return nil, fmt.Errorf("projects[%d]: %w", i, err)
		}
	}

	return b.Build(), nil
}

// LoadFile builds a Store from the YAML seed file at path.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Demo returns the built-in data set: two skills, one employee who has both and one finished
// project the employee is responsible for.
func Demo() *Store {
	b := NewBuilder()
	dancing := b.AddSkill(Skill{Description: "Dancing"})
	singing := b.AddSkill(Skill{Description: "Singing"})

	firstName := "Michael"
	michael, err := b.AddEmployee(Employee{
		FirstName: &firstName,
		LastName:  "Jackson",
		Skills:    []SkillRef{dancing, singing},
	})
	if err != nil {
		panic(err)
	}

	if _, err := b.AddProject(Project{
		Short:          "One of the greatest pop songs of all time!",
		State:          StateFinished,
		SkillsRequired: []SkillRef{dancing, singing},
		Responsible:    michael,
		Assigned:       []EmployeeRef{},
	}); err != nil {
		panic(err)
	}

	return b.Build()
}
