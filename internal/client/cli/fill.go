package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"timeboard/internal/client/drafts"
	"timeboard/internal/datex"
)

var fillCmd = &cobra.Command{
	Use:   "fill <day>",
	Short: "Describe a day in free text and save the proposed time entries",
	Long: `fill sends a free-text description of one working day to the server,
which turns it into structured time entries. The proposal is shown for review
and nothing is saved until you confirm.

The text is kept as a local draft until a save succeeds, so a lost connection
or a declined proposal never loses what you typed.`,
	Args: cobra.ExactArgs(1),
	RunE: withApp(runFill),
}

func runFill(ctx context.Context, a *App, args []string) error {
	return a.Fill(ctx, args[0])
}

// Fill drives the describe-review-save flow for one day: collect text (or
// reuse a draft), ask the server for proposed entries, show them, and save on
// confirmation. The local draft is deleted only after the server confirms.
func (a *App) Fill(ctx context.Context, day string) error {
	if _, err := datex.ParseDay(day); err != nil {
		return err
	}

	text, err := a.fillText(ctx, day)
	if err != nil {
		return err
	}
	if text == "" {
		return errors.New("nothing to fill: no text entered")
	}

	if err := a.drafts.Save(ctx, day, text); err != nil {
		return err
	}

	rows, err := a.api.ProposeRows(ctx, text)
	if err != nil {
		fmt.Fprintln(a.out, "Your text is kept as a draft; run fill again to retry.")
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(a.out, "No entries proposed. Your text is kept as a draft.")
		return nil
	}

	fmt.Fprintf(a.out, "Proposed entries for %s:\n", day)
	renderRows(a.out, rows)

	answer, err := getSimpleText(a.reader, "Save these entries? (y/N)", a.out)
	if err != nil {
		return err
	}
	if !isYes(answer) {
		fmt.Fprintln(a.out, "Not saved. Your text is kept as a draft.")
		return nil
	}

	res, err := a.api.SaveDay(ctx, day, rows)
	if err != nil {
		fmt.Fprintln(a.out, "Save failed; your text is kept as a draft.")
		return err
	}
	if err := a.drafts.Delete(ctx, day); err != nil {
		return err
	}

	var total float64
	for _, act := range res.Activities {
		total += act.Hours
	}
	fmt.Fprintf(a.out, "Saved %d entries for %s, %s total.\n", len(res.Activities), res.Day, formatHours(total))
	return nil
}

// fillText returns the text to send: an existing draft if the user wants to
// reuse it, otherwise a fresh multi-line prompt.
func (a *App) fillText(ctx context.Context, day string) (string, error) {
	draft, err := a.drafts.Get(ctx, day)
	if err != nil && !errors.Is(err, drafts.ErrNoDraft) {
		return "", err
	}

	if draft != nil {
		fmt.Fprintf(a.out, "Found an unsaved draft for %s:\n%s\n", day, draft.Body)
		answer, err := getSimpleText(a.reader, "Use this draft? (y/N)", a.out)
		if err != nil {
			return "", err
		}
		if isYes(answer) {
			return draft.Body, nil
		}
	}

	return getMultiline(a.reader, "Describe your day", a.out)
}
