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
	"strings"

	"gopkg.in/yaml.v3"
)

// SkillRef is a position in the skill collection.
type SkillRef int

// ID returns the external identifier for the skill at ref.
func (ref SkillRef) ID() string {
	return strconv.Itoa(int(ref))
}

// EmployeeRef is a position in the employee collection.
type EmployeeRef int

// ID returns the external identifier for the employee at ref.
func (ref EmployeeRef) ID() string {
	return strconv.Itoa(int(ref))
}

// ProjectRef is a position in the project collection.
type ProjectRef int

// ID returns the external identifier for the project at ref.
func (ref ProjectRef) ID() string {
	return strconv.Itoa(int(ref))
}

// Skill is a capability that employees have and projects require.
type Skill struct {
	Description string
}

// Employee is a person. Skills refers to entries in the skill collection.
type Employee struct {
	// FirstName is nil when unknown.
	FirstName *string
	LastName  string
	Skills    []SkillRef
}

// Project is a piece of work with exactly one responsible employee.
type Project struct {
	Short string

	// Description is nil when the project has none.
	Description    *string
	State          State
	SkillsRequired []SkillRef
	Responsible    EmployeeRef
	Assigned       []EmployeeRef
}

// State is the stage a project is in.
type State int

// Enumeration of State
const (
	StatePlanning State = iota
	StateOngoing
	StateFinished
)

// NumStates is the number of defined project states.
const NumStates = 3

var stateLabels = [NumStates]string{
	StatePlanning: "PLANNING",
	StateOngoing:  "ONGOING",
	StateFinished: "FINISHED",
}

// Valid returns true if s is one of the defined states.
func (s State) Valid() bool {
	return s >= 0 && s < NumStates
}

// String returns the label of s as it appears in query results.
func (s State) String() string {
	if !s.Valid() {
		return fmt.Sprintf("State(%d)", int(s))
	}
	return stateLabels[s]
}

// ParseState converts a label into a State. Matching ignores case so both "FINISHED" and
// "Finished" are accepted.
func ParseState(label string) (State, error) {
	for s, l := range stateLabels {
		if strings.EqualFold(l, label) {
			return State(s), nil
		}
	}
	return 0, fmt.Errorf("unknown project state %q", label)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *State) UnmarshalYAML(value *yaml.Node) error {
	var label string
	if err := value.Decode(&label); err != nil {
		return err
	}
	state, err := ParseState(label)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*s = state
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (s State) MarshalYAML() (interface{}, error) {
	return s.String(), nil
}
