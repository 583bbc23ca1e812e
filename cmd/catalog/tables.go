package main

import (
	"io"
	"strconv"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/yigit/unitutor/internal/app/models/dto"
)

func renderSubjects(w io.Writer, subjects []dto.SubjectResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Title", "URL", "Description"})
	for _, s := range subjects {
		table.Append([]string{s.Title, s.URL, s.Description})
	}
	table.Render()
}

func renderProfessors(w io.Writer, professors []dto.ProfessorResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Email", "Subjects", "Instructions"})
	for _, p := range professors {
		table.Append([]string{
			strconv.FormatInt(p.ID, 10),
			p.Name + " " + p.Surname,
			p.Email,
			stringOrDash(p.Subjects),
			intOrDash(p.InstructionsCount),
		})
	}
	table.Render()
}

func renderSessions(w io.Writer, sessions []dto.InstructionSessionResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", "Professor ID"})
	for _, s := range sessions {
		table.Append([]string{
			s.DateTime.UTC().Format(time.RFC3339),
			strconv.FormatInt(s.ProfessorID, 10),
		})
	}
	table.Render()
}

func stringOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

func intOrDash(i *int) string {
	if i == nil {
		return "-"
	}
	return strconv.Itoa(*i)
}
