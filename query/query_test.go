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

package query_test

import (
	"github.com/botobag/staffgraph/query"
	"github.com/botobag/staffgraph/resolver"
	"github.com/botobag/staffgraph/store"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// danglingSkillStore serves employees which refer to a skill that doesn't exist.
type danglingSkillStore struct {
	*store.Store
}

func (s danglingSkillStore) Employee(ref store.EmployeeRef) (store.Employee, error) {
	employee, err := s.Store.Employee(ref)
	if err != nil {
		return employee, err
	}
	employee.Skills = append(employee.Skills, store.SkillRef(s.NumSkills()))
	return employee, nil
}

func buildStore() *store.Store {
	b := store.NewBuilder()
	for _, description := range []string{"Dancing", "Singing", "Acting"} {
		b.AddSkill(store.Skill{Description: description})
	}
	for i, lastName := range []string{"Jackson", "Ross", "Jones", "Wonder"} {
		_, err := b.AddEmployee(store.Employee{
			LastName: lastName,
			Skills:   []store.SkillRef{store.SkillRef(i % 3)},
		})
		Expect(err).ShouldNot(HaveOccurred())
	}
	for i, short := range []string{"Thriller", "The Wiz", "Off the Wall"} {
		_, err := b.AddProject(store.Project{
			Short:          short,
			State:          store.State(i),
			SkillsRequired: []store.SkillRef{2, 0},
			Responsible:    store.EmployeeRef(3 - i),
			Assigned:       []store.EmployeeRef{store.EmployeeRef(i), 3},
		})
		Expect(err).ShouldNot(HaveOccurred())
	}
	return b.Build()
}

var _ = Describe("Query", func() {
	var q *query.Query

	BeforeEach(func() {
		q = query.New(buildStore())
	})

	It("returns skills in insertion order", func() {
		Expect(q.Skills()).Should(Equal([]*resolver.Skill{
			{ID: "0", Description: "Dancing"},
			{ID: "1", Description: "Singing"},
			{ID: "2", Description: "Acting"},
		}))
	})

	It("returns employees in insertion order", func() {
		employees := q.Employees()
		Expect(employees).Should(HaveLen(4))
		for i, lastName := range []string{"Jackson", "Ross", "Jones", "Wonder"} {
			Expect(employees[i].ID).Should(Equal(store.EmployeeRef(i).ID()))
			Expect(employees[i].LastName).Should(Equal(lastName))
		}
		Expect(employees[3].Skills).Should(Equal([]*resolver.Skill{{ID: "0", Description: "Dancing"}}))
	})

	It("returns projects in insertion order", func() {
		projects := q.Projects()
		Expect(projects).Should(HaveLen(3))
		for i, short := range []string{"Thriller", "The Wiz", "Off the Wall"} {
			Expect(projects[i].ID).Should(Equal(store.ProjectRef(i).ID()))
			Expect(projects[i].Short).Should(Equal(short))
			Expect(projects[i].State).Should(Equal(store.State(i)))
			Expect(projects[i].Responsible.ID).Should(Equal(store.EmployeeRef(3 - i).ID()))
		}
	})

	It("matches employees embedded in projects with direct resolution", func() {
		employees := q.Employees()
		for _, project := range q.Projects() {
			var responsible *resolver.Employee
			for _, employee := range employees {
				if employee.ID == project.Responsible.ID {
					responsible = employee
				}
			}
			Expect(responsible).ShouldNot(BeNil())
			Expect(project.Responsible).Should(Equal(responsible))
		}
	})

	It("is idempotent", func() {
		Expect(q.Skills()).Should(Equal(q.Skills()))
		Expect(q.Employees()).Should(Equal(q.Employees()))
		Expect(q.Projects()).Should(Equal(q.Projects()))
	})

	It("returns empty lists for an empty store", func() {
		q := query.New(store.NewBuilder().Build())

		Expect(q.Skills()).ShouldNot(BeNil())
		Expect(q.Skills()).Should(BeEmpty())
		Expect(q.Employees()).ShouldNot(BeNil())
		Expect(q.Employees()).Should(BeEmpty())
		Expect(q.Projects()).ShouldNot(BeNil())
		Expect(q.Projects()).Should(BeEmpty())
	})

	Describe("lookup by id", func() {
		It("finds entities", func() {
			Expect(q.Skill("1")).Should(Equal(&resolver.Skill{ID: "1", Description: "Singing"}))
			Expect(q.Employee("2").LastName).Should(Equal("Jones"))
			Expect(q.Project("0").Short).Should(Equal("Thriller"))
		})

		It("returns nil for unknown ids", func() {
			Expect(q.Skill("3")).Should(BeNil())
			Expect(q.Employee("-1")).Should(BeNil())
			Expect(q.Project("one")).Should(BeNil())
			Expect(q.Project("00")).Should(BeNil())
		})
	})

	Describe("with broken references", func() {
		BeforeEach(func() {
			q = query.New(danglingSkillStore{buildStore()})
		})

		It("panics instead of returning partial data", func() {
			Expect(func() { q.Employees() }).Should(Panic())
			Expect(func() { q.Projects() }).Should(Panic())
			Expect(func() { q.Employee("0") }).Should(Panic())
		})

		It("still serves entities without references", func() {
			Expect(q.Skills()).Should(HaveLen(3))
			Expect(q.Employee("4")).Should(BeNil())
		})
	})
})
