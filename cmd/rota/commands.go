package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/nats-io/nats.go"
	"github.com/spf13/cobra"

	"github.com/arloliu/rota"
)

// newRootCmd builds the command tree around a.
func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "rota",
		Short:         "rota assigns weekly classroom jobs fairly across students.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if !usesStore(cmd) {
				return nil
			}

			return a.setup(cmd.Context())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.flags.configPath, "config", "", "Path to a YAML configuration file")
	flags.StringVar(&a.flags.natsURL, "nats-url", "", "NATS server URL (defaults to $NATS_URL, then "+nats.DefaultURL+")")
	flags.StringVarP(&a.flags.namespace, "namespace", "n", "", "Namespace that owns the rotation, e.g. a teacher or classroom id")
	flags.Uint64Var(&a.flags.seed, "seed", 0, "Seed for reproducible shuffles (0 uses a random seed)")
	flags.StringVar(&a.flags.logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	flags.StringVar(&a.flags.logFormat, "log-format", "text", "Log format: text or json")
	flags.StringVar(&a.flags.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address while the command runs")

	cmd.AddCommand(
		showCmd(a),
		assignCmd(a),
		clearCmd(a),
		resetHistoryCmd(a),
		resetAllCmd(a),
		studentCmd(a),
		jobCmd(a),
	)

	return cmd
}

// usesStore reports whether cmd talks to the state store. Cobra's help and
// completion commands, and anything below them, do not.
func usesStore(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return false
		}
	}

	return true
}

// operation is a Service call, shaped like a method expression on *rota.Service.
type operation func(svc *rota.Service, ctx context.Context, namespace string) (rota.Result, error)

// runOperation executes op and renders its result.
func (a *app) runOperation(cmd *cobra.Command, op operation) error {
	res, err := op(a.svc, cmd.Context(), a.flags.namespace)
	if err != nil {
		return err
	}

	return renderResult(a.out, res)
}

func showCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show rosters, this week's assignments, the fairness cycle and history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runOperation(cmd, (*rota.Service).Snapshot)
		},
	}
}

func assignCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "assign",
		Short: "Generate this week's assignments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runOperation(cmd, (*rota.Service).Assign)
		},
	}
}

func clearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear this week's assignments, keeping history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runOperation(cmd, (*rota.Service).ClearCurrentAssignments)
		},
	}
}

func resetHistoryCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset-history",
		Short: "Forget all past assignments and start a new fairness cycle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runOperation(cmd, (*rota.Service).ResetAssignmentHistory)
		},
	}
}

func resetAllCmd(a *app) *cobra.Command {
	var (
		students []int
		jobs     []string
	)

	cmd := &cobra.Command{
		Use:   "reset-all",
		Short: "Replace the rosters and discard all assignments and history",
		Long: "Replace the rosters and discard all assignments and history.\n\n" +
			"Without --student or --job flags the configured default rosters are used.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ids, err := toStudents(students)
			if err != nil {
				return err
			}
			titles := toJobTitles(jobs)

			return a.runOperation(cmd, func(svc *rota.Service, ctx context.Context, ns string) (rota.Result, error) {
				return svc.ResetAll(ctx, ns, ids, titles)
			})
		},
	}

	cmd.Flags().IntSliceVar(&students, "student", nil, "Student id of the new roster (repeatable or comma-separated)")
	cmd.Flags().StringArrayVar(&jobs, "job", nil, "Job title of the new roster (repeatable)")

	return cmd
}

func studentCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "student",
		Short: "Edit the student roster",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <id>",
			Short: "Add a student to the roster",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseStudent(args[0])
				if err != nil {
					return err
				}

				return a.runOperation(cmd, func(svc *rota.Service, ctx context.Context, ns string) (rota.Result, error) {
					return svc.AddStudent(ctx, ns, id)
				})
			},
		},
		&cobra.Command{
			Use:   "remove <id>",
			Short: "Remove a student with their assignment and history",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseStudent(args[0])
				if err != nil {
					return err
				}

				return a.runOperation(cmd, func(svc *rota.Service, ctx context.Context, ns string) (rota.Result, error) {
					return svc.RemoveStudent(ctx, ns, id)
				})
			},
		},
	)

	return cmd
}

func jobCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "job",
		Short: "Edit the job roster",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "add <title>",
			Short: "Add a job title to the roster",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				title := rota.JobTitle(strings.Join(args, " "))

				return a.runOperation(cmd, func(svc *rota.Service, ctx context.Context, ns string) (rota.Result, error) {
					return svc.AddJobTitle(ctx, ns, title)
				})
			},
		},
		&cobra.Command{
			Use:   "remove <title>",
			Short: "Remove a job title from the roster",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				title := rota.JobTitle(strings.Join(args, " "))

				return a.runOperation(cmd, func(svc *rota.Service, ctx context.Context, ns string) (rota.Result, error) {
					return svc.RemoveJobTitle(ctx, ns, title)
				})
			},
		},
	)

	return cmd
}

// parseStudent parses a positive student id.
func parseStudent(arg string) (rota.Student, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("invalid student id %q: %w", arg, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid student id %q: must be positive", arg)
	}

	return rota.Student(id), nil
}

func toStudents(ids []int) ([]rota.Student, error) {
	out := make([]rota.Student, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			return nil, fmt.Errorf("invalid student id %d: must be positive", id)
		}
		out = append(out, rota.Student(id))
	}

	return out, nil
}

func toJobTitles(titles []string) []rota.JobTitle {
	out := make([]rota.JobTitle, 0, len(titles))
	for _, t := range titles {
		out = append(out, rota.JobTitle(t))
	}

	return out
}
