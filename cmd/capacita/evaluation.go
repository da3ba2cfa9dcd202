package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	evaluationdto "capacita/internal/modules/evaluation/dto"
	apperrors "capacita/internal/platform/errors"
)

func newEvaluationCmd(flags *globalFlags) *cobra.Command {
	evaluation := &cobra.Command{Use: "evaluation", Short: "Final evaluation"}

	status := &cobra.Command{
		Use:   "status",
		Short: "Show the evaluation state and any retry cooldown",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			gate, err := app.EvaluationCLI.Status(cmd.Context())
			if err != nil {
				return err
			}
			printGate(cmd, gate)
			return nil
		},
	}

	retry := &cobra.Command{
		Use:   "retry",
		Short: "Request another attempt after a failed evaluation",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			out, err := app.EvaluationCLI.Retry(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if out.Granted {
				_, _ = fmt.Fprintln(w, "retry granted")
			} else {
				_, _ = fmt.Fprintf(w, "retry refused: %s\n", out.Message)
			}
			printGate(cmd, out.Gate)
			return nil
		},
	}

	questions := &cobra.Command{
		Use:   "questions",
		Short: "List the evaluation questions",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			qs, err := app.EvaluationCLI.Questions(cmd.Context())
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, q := range qs {
				_, _ = fmt.Fprintf(w, "%d. [%s] %s\n", i+1, q.ID, q.Text)
				for j, opt := range q.Options {
					_, _ = fmt.Fprintf(w, "   %d) %s\n", j+1, opt)
				}
			}
			return nil
		},
	}

	var answers []string
	submit := &cobra.Command{
		Use:   "submit --answer <question-id>=<option> ...",
		Short: "Submit answers; an option is its text or 1-based number",
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsed := make(map[string]string, len(answers))
			for _, a := range answers {
				qid, option, ok := strings.Cut(a, "=")
				if !ok || strings.TrimSpace(qid) == "" {
					return fmt.Errorf("%w: answer %q must be question-id=option", apperrors.ErrInvalidInput, a)
				}
				parsed[strings.TrimSpace(qid)] = strings.TrimSpace(option)
			}
			app, done, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			defer done()
			out, err := app.EvaluationCLI.Submit(cmd.Context(), parsed)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "passed=%t status=%s\n", out.Passed, out.Status)
			if out.Message != "" {
				_, _ = fmt.Fprintln(w, out.Message)
			}
			printGate(cmd, out.Gate)
			return nil
		},
	}
	submit.Flags().StringArrayVar(&answers, "answer", nil, "question-id=option, repeatable")

	evaluation.AddCommand(status, retry, questions, submit)
	return evaluation
}

func printGate(cmd *cobra.Command, gate evaluationdto.GateOutput) {
	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "state=%s can_retry=%t", gate.State, gate.CanRetry)
	if gate.RetryLocked {
		_, _ = fmt.Fprintf(w, " retry_in=%s", gate.Countdown)
	}
	_, _ = fmt.Fprintln(w)
	if gate.Message != "" {
		_, _ = fmt.Fprintln(w, gate.Message)
	}
}
