package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timeboard/internal/client/api"
	"timeboard/internal/client/drafts"
	"timeboard/internal/timesheet"
)

var proposedRows = []timesheet.Row{
	{Ticket: "TB-12", Subject: "Fixed the importer", Project: "Phoenix", Hours: 5, Type: timesheet.TypeWork},
	{Subject: "Daily standup", Hours: 0.5, Type: timesheet.TypeMeeting},
}

func TestFill_SaveAfterConfirm(t *testing.T) {
	restoreML := stubMultiline(t, "5h on TB-12, short standup")
	defer restoreML()
	restoreST := stubAnswers(t, "y")
	defer restoreST()

	f := &fakeAPI{
		proposeOut: proposedRows,
		saveOut: &api.SaveDayResult{Day: "2024-03-04", Activities: []api.Activity{
			{ID: "a1", Day: "2024-03-04", Subject: "Fixed the importer", Hours: 5, Type: "Work"},
			{ID: "a2", Day: "2024-03-04", Subject: "Daily standup", Hours: 0.5, Type: "Meeting"},
		}},
	}
	d := &fakeDrafts{}
	app, out := newTestApp(f, d)

	require.NoError(t, app.Fill(context.Background(), "2024-03-04"))

	assert.Equal(t, "5h on TB-12, short standup", f.proposeText)
	assert.Equal(t, "2024-03-04", f.saveDay)
	assert.Equal(t, proposedRows, f.saveRows)
	assert.Equal(t, "5h on TB-12, short standup", d.saved["2024-03-04"])
	assert.Equal(t, []string{"2024-03-04"}, d.deleted)
	assert.Contains(t, out.String(), "TB-12 Fixed the importer [Phoenix]")
	assert.Contains(t, out.String(), "Saved 2 entries for 2024-03-04, 5.5h total.")
}

func TestFill_DeclineKeepsDraft(t *testing.T) {
	restoreML := stubMultiline(t, "5h on TB-12")
	defer restoreML()
	restoreST := stubAnswers(t, "n")
	defer restoreST()

	f := &fakeAPI{proposeOut: proposedRows}
	d := &fakeDrafts{}
	app, out := newTestApp(f, d)

	require.NoError(t, app.Fill(context.Background(), "2024-03-04"))

	assert.Empty(t, f.saveDay)
	assert.Empty(t, d.deleted)
	assert.Equal(t, "5h on TB-12", d.saved["2024-03-04"])
	assert.Contains(t, out.String(), "Not saved. Your text is kept as a draft.")
}

func TestFill_AssistErrorKeepsDraft(t *testing.T) {
	restoreML := stubMultiline(t, "5h on TB-12")
	defer restoreML()

	f := &fakeAPI{proposeErr: errors.New("assist service unavailable")}
	d := &fakeDrafts{}
	app, out := newTestApp(f, d)

	err := app.Fill(context.Background(), "2024-03-04")
	require.Error(t, err)
	assert.Equal(t, "5h on TB-12", d.saved["2024-03-04"])
	assert.Empty(t, d.deleted)
	assert.Contains(t, out.String(), "kept as a draft")
}

func TestFill_SaveErrorKeepsDraft(t *testing.T) {
	restoreML := stubMultiline(t, "5h on TB-12")
	defer restoreML()
	restoreST := stubAnswers(t, "y")
	defer restoreST()

	f := &fakeAPI{proposeOut: proposedRows, saveErr: errors.New("server unavailable")}
	d := &fakeDrafts{}
	app, out := newTestApp(f, d)

	err := app.Fill(context.Background(), "2024-03-04")
	require.Error(t, err)
	assert.Empty(t, d.deleted)
	assert.Contains(t, out.String(), "Save failed; your text is kept as a draft.")
}

func TestFill_ReusesDraft(t *testing.T) {
	restoreML := noMultiline(t)
	defer restoreML()
	restoreST := stubAnswers(t, "y", "y") // reuse the draft, then confirm the save
	defer restoreST()

	f := &fakeAPI{
		proposeOut: proposedRows,
		saveOut:    &api.SaveDayResult{Day: "2024-03-04", Activities: []api.Activity{{ID: "a1", Hours: 5.5}}},
	}
	d := &fakeDrafts{getOut: &drafts.Draft{Day: "2024-03-04", Body: "the draft text"}}
	app, out := newTestApp(f, d)

	require.NoError(t, app.Fill(context.Background(), "2024-03-04"))
	assert.Equal(t, "the draft text", f.proposeText)
	assert.Contains(t, out.String(), "Found an unsaved draft for 2024-03-04")
}

func TestFill_RejectedDraftPromptsFresh(t *testing.T) {
	restoreML := stubMultiline(t, "a fresh description")
	defer restoreML()
	restoreST := stubAnswers(t, "n", "y") // reject the draft, then confirm the save
	defer restoreST()

	f := &fakeAPI{
		proposeOut: proposedRows,
		saveOut:    &api.SaveDayResult{Day: "2024-03-04"},
	}
	d := &fakeDrafts{getOut: &drafts.Draft{Day: "2024-03-04", Body: "the old draft"}}
	app, _ := newTestApp(f, d)

	require.NoError(t, app.Fill(context.Background(), "2024-03-04"))
	assert.Equal(t, "a fresh description", f.proposeText)
}

func TestFill_NoRowsProposed(t *testing.T) {
	restoreML := stubMultiline(t, "mysterious gibberish")
	defer restoreML()

	f := &fakeAPI{}
	d := &fakeDrafts{}
	app, out := newTestApp(f, d)

	require.NoError(t, app.Fill(context.Background(), "2024-03-04"))
	assert.Empty(t, f.saveDay)
	assert.Equal(t, "mysterious gibberish", d.saved["2024-03-04"])
	assert.Contains(t, out.String(), "No entries proposed.")
}

func TestFill_EmptyTextErrors(t *testing.T) {
	restoreML := stubMultiline(t, "")
	defer restoreML()

	f := &fakeAPI{}
	d := &fakeDrafts{}
	app, _ := newTestApp(f, d)

	err := app.Fill(context.Background(), "2024-03-04")
	require.Error(t, err)
	assert.Empty(t, d.saved)
	assert.Empty(t, f.proposeText)
}

func TestFill_BadDay(t *testing.T) {
	f := &fakeAPI{}
	app, _ := newTestApp(f, &fakeDrafts{})

	err := app.Fill(context.Background(), "04.03.2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected YYYY-MM-DD")
	assert.Empty(t, f.proposeText)
}
