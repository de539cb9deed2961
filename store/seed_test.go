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

package store_test

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/botobag/staffgraph/store"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Seed", func() {
	It("loads a seed document", func() {
		s, err := store.Load(strings.NewReader(`
skills:
  - Dancing
  - Singing
employees:
  - firstName: Michael
    lastName: Jackson
    skills: [0, 1]
  - lastName: Ross
    skills: [1]
projects:
  - short: Thriller
    description: null
    state: Finished
    skillsRequired: [0, 1]
    responsible: 0
    assigned: [1]
  - short: Tour
    description: World tour
    state: PLANNING
    responsible: 1
`))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(s.NumSkills()).Should(Equal(2))
		Expect(s.NumEmployees()).Should(Equal(2))
		Expect(s.NumProjects()).Should(Equal(2))

		ross, err := s.Employee(1)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(ross.FirstName).Should(BeNil())
		Expect(ross.Skills).Should(Equal([]store.SkillRef{1}))

		thriller, err := s.Project(0)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(thriller.Description).Should(BeNil())
		Expect(thriller.State).Should(Equal(store.StateFinished))
		Expect(thriller.Assigned).Should(Equal([]store.EmployeeRef{1}))

		tour, err := s.Project(1)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(*tour.Description).Should(Equal("World tour"))
		Expect(tour.State).Should(Equal(store.StatePlanning))
		Expect(tour.Responsible).Should(Equal(store.EmployeeRef(1)))
		Expect(tour.Assigned).Should(BeEmpty())
	})

	It("loads an empty document", func() {
		s, err := store.Load(strings.NewReader(""))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(s.Skills()).Should(BeEmpty())
		Expect(s.Employees()).Should(BeEmpty())
		Expect(s.Projects()).Should(BeEmpty())
	})

	It("rejects dangling references", func() {
		_, err := store.Load(strings.NewReader(`
skills: [Dancing]
employees:
  - lastName: Jackson
    skills: [0, 1]
`))
		Expect(err).Should(MatchError("employees[0]: employee.skills refers to skill 1 which does not exist"))

		_, err = store.Load(strings.NewReader(`
employees:
  - lastName: Jackson
projects:
  - short: Thriller
    state: FINISHED
    responsible: 0
    assigned: [0, 1]
`))
		Expect(err).Should(MatchError("projects[0]: project.assigned refers to employee 1 which does not exist"))
	})

	It("requires a responsible employee", func() {
		_, err := store.Load(strings.NewReader(`
employees:
  - lastName: Jackson
projects:
  - short: Thriller
    state: FINISHED
`))
		Expect(err).Should(MatchError("projects[0]: responsible is required"))
	})

	It("requires a state", func() {
		_, err := store.Load(strings.NewReader(`
employees:
  - lastName: Jackson
projects:
  - short: Thriller
    responsible: 0
`))
		Expect(err).Should(MatchError("projects[0]: state is required"))

		_, err = store.Load(strings.NewReader(`
employees:
  - lastName: Jackson
projects:
  - short: Thriller
    state: null
    responsible: 0
`))
		Expect(err).Should(MatchError("projects[0]: state is required"))
	})

	It("rejects null skills", func() {
		_, err := store.Load(strings.NewReader(`
skills: [Dancing, ~]
`))
		Expect(err).Should(MatchError("skills[1]: description is required"))
	})

	It("requires a last name", func() {
		_, err := store.Load(strings.NewReader(`
employees:
  - firstName: Michael
`))
		Expect(err).Should(MatchError("employees[0]: lastName is required"))
	})

	It("rejects unknown states and keys", func() {
		_, err := store.Load(strings.NewReader(`
employees:
  - lastName: Jackson
projects:
  - short: Thriller
    state: CANCELLED
    responsible: 0
`))
		Expect(err).Should(MatchError(ContainSubstring(`unknown project state "CANCELLED"`)))

		_, err = store.Load(strings.NewReader(`
skills: [Dancing]
departments: [Music]
`))
		Expect(err).Should(MatchError(ContainSubstring("field departments not found")))
	})

	It("loads a seed file", func() {
		dir, err := os.MkdirTemp("", "staffgraph")
		Expect(err).ShouldNot(HaveOccurred())
		defer os.RemoveAll(dir)

		path := filepath.Join(dir, "seed.yaml")
		Expect(os.WriteFile(path, []byte("skills: [Dancing, Singing]\n"), 0644)).Should(Succeed())

		s, err := store.LoadFile(path)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(s.NumSkills()).Should(Equal(2))

		_, err = store.LoadFile(filepath.Join(dir, "missing.yaml"))
		Expect(os.IsNotExist(err)).Should(BeTrue())
	})

	It("builds the demo data set", func() {
		s := store.Demo()
		Expect(s.Skills()).Should(Equal([]store.SkillEntry{
			{Ref: 0, Skill: store.Skill{Description: "Dancing"}},
			{Ref: 1, Skill: store.Skill{Description: "Singing"}},
		}))

		project, err := s.Project(0)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(project.Short).Should(Equal("One of the greatest pop songs of all time!"))
		Expect(project.Description).Should(BeNil())
		Expect(project.State).Should(Equal(store.StateFinished))
		Expect(project.Responsible).Should(Equal(store.EmployeeRef(0)))
		Expect(project.Assigned).Should(BeEmpty())
	})
})
