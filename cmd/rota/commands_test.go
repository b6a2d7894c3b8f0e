package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/rota"
	"github.com/arloliu/rota/store"
)

// runCLI executes the command tree against st and returns stdout.
func runCLI(t *testing.T, st *store.Memory, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	a := newApp(&out, &errOut)
	a.openStore = func(context.Context, *rota.Config, string) (rota.StateStore, func(), error) {
		return st, func() {}, nil
	}
	defer a.close()

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func writeConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "rota.yaml")
	content := `
strategy: round-robin
defaultStudents: [1, 2, 3]
defaultJobTitles: ["Line Leader", "Door Holder"]
operationTimeout: 2s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestCLI_AssignAndShow(t *testing.T) {
	st := store.NewMemory()
	cfg := writeConfig(t)

	out, err := runCLI(t, st, "--config", cfg, "-n", "room-12", "assign")
	require.NoError(t, err)
	require.Contains(t, out, "Revision:")
	require.Contains(t, out, "Line Leader  1")
	require.Contains(t, out, "Door Holder  2")
	require.Contains(t, out, "- new fairness cycle started with 3 students")

	out, err = runCLI(t, st, "--config", cfg, "-n", "room-12", "show")
	require.NoError(t, err)
	require.Contains(t, out, "Revision:         1")
	require.Contains(t, out, "STUDENT  HISTORY")
}

func TestCLI_RosterCommands(t *testing.T) {
	st := store.NewMemory()
	cfg := writeConfig(t)

	_, err := runCLI(t, st, "--config", cfg, "-n", "room-12", "student", "add", "4")
	require.NoError(t, err)

	out, err := runCLI(t, st, "--config", cfg, "-n", "room-12", "job", "add", "Plant", "Waterer")
	require.NoError(t, err)
	require.Contains(t, out, "Students:         1, 2, 3, 4")
	require.Contains(t, out, "Jobs:             Line Leader, Door Holder, Plant Waterer")

	_, err = runCLI(t, st, "--config", cfg, "-n", "room-12", "student", "remove", "9")
	require.ErrorIs(t, err, rota.ErrNotFound)

	_, err = runCLI(t, st, "--config", cfg, "-n", "room-12", "student", "add", "zero")
	require.ErrorContains(t, err, "invalid student id")

	out, err = runCLI(t, st, "--config", cfg, "-n", "room-12", "job", "remove", "Door Holder")
	require.NoError(t, err)
	require.Contains(t, out, "Jobs:             Line Leader, Plant Waterer")
}

func TestCLI_Resets(t *testing.T) {
	st := store.NewMemory()
	cfg := writeConfig(t)

	_, err := runCLI(t, st, "--config", cfg, "-n", "room-12", "assign")
	require.NoError(t, err)

	out, err := runCLI(t, st, "--config", cfg, "-n", "room-12", "clear")
	require.NoError(t, err)
	require.Contains(t, out, "Last assignment:  -")

	_, err = runCLI(t, st, "--config", cfg, "-n", "room-12", "reset-history")
	require.NoError(t, err)

	out, err = runCLI(t, st, "--config", cfg, "-n", "room-12", "reset-all",
		"--student", "7,8", "--job", "Librarian", "--job", "Messenger, Office")
	require.NoError(t, err)
	require.Contains(t, out, "Students:         7, 8")
	require.Contains(t, out, "Jobs:             Librarian, Messenger, Office")

	_, err = runCLI(t, st, "--config", cfg, "-n", "room-12", "reset-all", "--student=-1")
	require.ErrorContains(t, err, "must be positive")
}

func TestCLI_GlobalFlags(t *testing.T) {
	st := store.NewMemory()

	t.Run("namespace required", func(t *testing.T) {
		_, err := runCLI(t, st, "show")
		require.ErrorIs(t, err, rota.ErrNamespaceRequired)
	})

	t.Run("bad log level", func(t *testing.T) {
		_, err := runCLI(t, st, "-n", "room-12", "--log-level", "loud", "show")
		require.ErrorContains(t, err, "unknown log level")
	})

	t.Run("missing config file", func(t *testing.T) {
		_, err := runCLI(t, st, "-n", "room-12", "--config", filepath.Join(t.TempDir(), "nope.yaml"), "show")
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("config file", func(t *testing.T) {
		out, err := runCLI(t, store.NewMemory(), "-n", "room-12", "--config", writeConfig(t), "show")
		require.NoError(t, err)
		require.Contains(t, out, "Students:         1, 2, 3")
		require.Contains(t, out, "Jobs:             Line Leader, Door Holder")
		require.Contains(t, out, "Revision:         0")
	})

	t.Run("seed makes assignments reproducible", func(t *testing.T) {
		first, err := runCLI(t, store.NewMemory(), "-n", "room-12", "--seed", "42", "assign")
		require.NoError(t, err)
		second, err := runCLI(t, store.NewMemory(), "-n", "room-12", "--seed", "42", "assign")
		require.NoError(t, err)

		require.Equal(t, stripTimestamp(first), stripTimestamp(second))
	})
}

func TestCLI_HelpSkipsStore(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "help command", args: []string{"help", "assign"}, want: "Generate this week's assignments"},
		{name: "help with namespace", args: []string{"-n", "room-12", "help", "student"}, want: "Edit the student roster"},
		{name: "completion", args: []string{"completion", "bash"}, want: "bash completion"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			a := newApp(&out, &out)
			a.openStore = func(context.Context, *rota.Config, string) (rota.StateStore, func(), error) {
				t.Fatal("store opened for a command that does not use it")
				return nil, nil, nil
			}
			defer a.close()

			cmd := newRootCmd(a)
			cmd.SetArgs(tt.args)
			cmd.SetOut(&out)
			cmd.SetErr(&out)

			require.NoError(t, cmd.ExecuteContext(context.Background()))
			require.Contains(t, out.String(), tt.want)
			require.Nil(t, a.svc)
		})
	}
}

func stripTimestamp(out string) string {
	lines := strings.Split(out, "\n")
	kept := lines[:0]
	for _, l := range lines {
		if !strings.HasPrefix(l, "Last assignment:") {
			kept = append(kept, l)
		}
	}

	return strings.Join(kept, "\n")
}

func TestParseStudent(t *testing.T) {
	tests := []struct {
		arg     string
		want    rota.Student
		wantErr bool
	}{
		{arg: "1", want: 1},
		{arg: " 21 ", want: 21},
		{arg: "0", wantErr: true},
		{arg: "-3", wantErr: true},
		{arg: "abc", wantErr: true},
		{arg: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := parseStudent(tt.arg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestRenderResult(t *testing.T) {
	ts := time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)
	res := rota.Result{
		Revision: 3,
		State: rota.AppState{
			Students:           []rota.Student{1, 2},
			JobTitles:          []rota.JobTitle{"Line Leader", "Messenger"},
			CurrentAssignments: rota.AssignmentMap{2: "Line Leader"},
			CycleQueue:         rota.CycleQueue{1},
			History: rota.HistoryLog{
				2: {"Messenger", "Line Leader"},
				9: {"Messenger"},
			},
			LastAssignment: &ts,
		},
		Notices: []rota.Notice{
			{Kind: rota.NoticeInsufficientStudents, Message: "not enough students", Job: "Messenger"},
			{Kind: rota.NoticeCycleCompleted, Message: "cycle done"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, renderResult(&buf, res))

	want := `Revision:         3
Last assignment:  Mon, 19 Oct 2026 08:00:00 UTC
Students:         1, 2
Jobs:             Line Leader, Messenger
Cycle queue:      1

JOB          STUDENT
Line Leader  2
Messenger    -

STUDENT  HISTORY
2        Messenger, Line Leader
9        Messenger

! not enough students
- cycle done
`
	require.Equal(t, want, buf.String())
}
