package main

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/arloliu/rota"
)

// renderResult writes the state and notices of res in a human-readable layout.
func renderResult(w io.Writer, res rota.Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	state := res.State
	fmt.Fprintf(tw, "Revision:\t%d\n", res.Revision)
	if state.LastAssignment != nil {
		fmt.Fprintf(tw, "Last assignment:\t%s\n", state.LastAssignment.Format(time.RFC1123))
	} else {
		fmt.Fprintf(tw, "Last assignment:\t-\n")
	}
	fmt.Fprintf(tw, "Students:\t%s\n", joinStudents(state.Students))
	fmt.Fprintf(tw, "Jobs:\t%s\n", joinJobs(state.JobTitles))
	fmt.Fprintf(tw, "Cycle queue:\t%s\n", joinStudents(state.CycleQueue))

	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "JOB\tSTUDENT")
	for _, job := range state.JobTitles {
		holder := "-"
		if s, ok := state.CurrentAssignments.HolderOf(job); ok {
			holder = s.String()
		}
		fmt.Fprintf(tw, "%s\t%s\n", job, holder)
	}

	if len(state.History) > 0 {
		fmt.Fprintln(tw)
		fmt.Fprintln(tw, "STUDENT\tHISTORY")
		for _, s := range historyOrder(state) {
			fmt.Fprintf(tw, "%s\t%s\n", s, joinJobs(state.History[s]))
		}
	}

	if err := tw.Flush(); err != nil {
		return err
	}

	return renderNotices(w, res.Notices)
}

// renderNotices writes one line per notice, warnings marked with "!".
func renderNotices(w io.Writer, notices []rota.Notice) error {
	if len(notices) == 0 {
		return nil
	}

	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	for _, n := range notices {
		mark := "-"
		if n.Kind.IsWarning() {
			mark = "!"
		}
		if _, err := fmt.Fprintf(w, "%s %s\n", mark, n.Message); err != nil {
			return err
		}
	}

	return nil
}

// historyOrder lists students with history in roster order, followed by
// former students still present in the log in ascending id order.
func historyOrder(state rota.AppState) []rota.Student {
	out := make([]rota.Student, 0, len(state.History))
	for _, s := range state.Students {
		if _, ok := state.History[s]; ok {
			out = append(out, s)
		}
	}

	var former []rota.Student
	for s := range state.History {
		if !state.HasStudent(s) {
			former = append(former, s)
		}
	}
	slices.Sort(former)

	return append(out, former...)
}

func joinStudents(ids []rota.Student) string {
	if len(ids) == 0 {
		return "-"
	}

	parts := make([]string, len(ids))
	for i, s := range ids {
		parts[i] = s.String()
	}

	return strings.Join(parts, ", ")
}

func joinJobs(jobs []rota.JobTitle) string {
	if len(jobs) == 0 {
		return "-"
	}

	parts := make([]string, len(jobs))
	for i, j := range jobs {
		parts[i] = string(j)
	}

	return strings.Join(parts, ", ")
}
