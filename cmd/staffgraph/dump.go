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

package main

import (
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/botobag/staffgraph/store"
)

func dumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the seeded data as tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(func(e *env) error {
				dump(e.store, os.Stdout)
				return nil
			})
		},
	}
}

// dump renders the collections of s to w. References are shown as ids.
func dump(s *store.Store, w io.Writer) {
	skills := table.NewWriter()
	skills.SetOutputMirror(w)
	skills.SetTitle("Skills")
	skills.AppendHeader(table.Row{"ID", "Description"})
	for _, entry := range s.Skills() {
		skills.AppendRow(table.Row{entry.Ref.ID(), entry.Skill.Description})
	}
	skills.Render()

	employees := table.NewWriter()
	employees.SetOutputMirror(w)
	employees.SetTitle("Employees")
	employees.AppendHeader(table.Row{"ID", "First Name", "Last Name", "Skills"})
	for _, entry := range s.Employees() {
		e := entry.Employee
		employees.AppendRow(table.Row{
			entry.Ref.ID(),
			optional(e.FirstName),
			e.LastName,
			skillIDs(e.Skills),
		})
	}
	employees.Render()

	projects := table.NewWriter()
	projects.SetOutputMirror(w)
	projects.SetTitle("Projects")
	projects.AppendHeader(table.Row{"ID", "Short", "Description", "State", "Skills Required", "Responsible", "Assigned"})
	for _, entry := range s.Projects() {
		p := entry.Project
		projects.AppendRow(table.Row{
			entry.Ref.ID(),
			p.Short,
			optional(p.Description),
			p.State,
			skillIDs(p.SkillsRequired),
			p.Responsible.ID(),
			employeeIDs(p.Assigned),
		})
	}
	projects.Render()
}

func optional(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func skillIDs(refs []store.SkillRef) string {
	ids := make([]string, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID()
	}
	return strings.Join(ids, ",")
}

func employeeIDs(refs []store.EmployeeRef) string {
	ids := make([]string, len(refs))
	for i, ref := range refs {
		ids[i] = ref.ID()
	}
	return strings.Join(ids, ",")
}
