package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/go-drift/cardstack/cmd/cardstack/internal/scenario"
	"github.com/go-drift/cardstack/pkg/cardstack"
)

var (
	styleSwipe  = color.New(color.FgGreen).SprintFunc()
	styleReturn = color.New(color.FgYellow).SprintFunc()
	styleError  = color.New(color.FgRed).SprintFunc()
	styleDim    = color.New(color.Faint).SprintFunc()
	styleBold   = color.New(color.Bold).SprintFunc()
)

func newSimulateCommand(root *rootOptions) *cobra.Command {
	steps := -1
	cmd := &cobra.Command{
		Use:   "simulate FILE",
		Short: "Replay a scenario and print the outcome of every step",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scenario.Load(args[0])
			if err != nil {
				return err
			}
			runner, err := scenario.NewRunner(s, root.logger)
			if err != nil {
				return err
			}
			defer runner.Close()

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s %d cards, threshold %.1fpx\n",
				styleBold("stack:"), runner.Stack().Len(), runner.Controller().Threshold())
			runner.Run(steps, func(res scenario.StepResult) {
				printStep(out, res)
			})
			printSummary(out, runner)
			return nil
		},
	}
	cmd.Flags().IntVar(&steps, "steps", steps, "Number of steps to run (-1 runs all)")
	return cmd
}

func printStep(w io.Writer, res scenario.StepResult) {
	var outcome string
	switch {
	case res.Err != nil:
		outcome = styleError(res.Err.Error())
	case res.Step.Kind() == "release":
		outcome = styleDecision(res.Decision)
	case !res.Applied:
		outcome = styleDim("dropped")
	default:
		outcome = "ok"
	}
	line := fmt.Sprintf("[%3d] %-24s %s  index=%d phase=%s",
		res.Index, res.Step.String(), outcome, res.CurrentIndex, res.Phase)
	if len(res.Events) > 0 {
		line += "  " + styleSwipe(strings.Join(res.Events, ", "))
	}
	fmt.Fprintln(w, line)
}

func styleDecision(d cardstack.Decision) string {
	switch d {
	case cardstack.DecisionSwipeLeft, cardstack.DecisionSwipeRight:
		return styleSwipe(d.String())
	case cardstack.DecisionReturnToCenter:
		return styleReturn(d.String())
	default:
		return styleDim(d.String())
	}
}

func printSummary(w io.Writer, runner *scenario.Runner) {
	stack := runner.Stack()
	fmt.Fprintf(w, "%s index=%d remaining=%d\n", styleBold("final:"), stack.CurrentIndex(), stack.Remaining())
	if top, ok := stack.Top(); ok {
		fmt.Fprintf(w, "%s %s\n", styleBold("top:"), top)
	}
	if runner.Exhausted() {
		fmt.Fprintln(w, styleReturn("stack exhausted"))
	}
}
