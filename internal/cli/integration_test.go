//go:build integration

package cli_test

import (
	"testing"

	"github.com/aidanlsb/rolo/internal/testutil"
)

// TestIntegration_PersonLifecycle adds, edits, archives and deletes a person.
func TestIntegration_PersonLifecycle(t *testing.T) {
	b := testutil.NewTestBook(t, "book.json")

	b.RunCLI("add", "n/John", "Doe", "p/98765432", "e/johnd@example.com", "a/311, Clementi Ave 2", "t/friends").
		MustSucceed(t).
		AssertFeedback(t, "New person added: John Doe; Phone: 98765432; Email: johnd@example.com; Address: 311, Clementi Ave 2; Priority: NONE; Tags: [friends]")
	b.AssertFileExists()
	b.AssertFileContains("johnd@example.com")

	b.RunCLI("edit", "1", "p/91234567", "pr/high").MustSucceed(t)
	if p := b.AssertPersonStored("John Doe"); p.Phone() != "91234567" {
		t.Fatalf("phone = %q, want 91234567", p.Phone())
	}

	b.RunCLI("archive", "1").MustSucceed(t)
	b.AssertPersonCount(0, 1)

	b.RunCLI("listarchive").MustSucceed(t).AssertResultCount(t, "persons", 1)
	b.RunCLI("unarchive", "1").MustSucceed(t)
	b.AssertPersonCount(1, 0)

	b.RunCLI("delete", "1").MustSucceed(t)
	b.AssertPersonCount(0, 0)
}

// TestIntegration_FindAndDeleteByDisplayedIndex checks that indexes refer to
// the list a one-shot command displays, which always starts unfiltered.
func TestIntegration_FindAndDeleteByDisplayedIndex(t *testing.T) {
	b := testutil.NewTestBook(t, "book.yaml").WithTypicalPersons()

	b.RunCLI("find", "n/alice|benson").MustSucceed(t).AssertResultCount(t, "persons", 2)
	b.RunCLI("find", "n/alice", "a/jurong").MustSucceed(t).AssertResultCount(t, "persons", 1)

	b.RunCLI("delete", "1,", "2").MustSucceed(t)
	b.AssertPersonCount(5, 1)

	b.RunCLI("delete", "99").MustFail(t, "INVALID_INDEX")
	b.AssertPersonCount(5, 1)
}

// TestIntegration_ShellFromStdin runs several lines through the shell in
// one process, so find narrows the list that delete indexes into.
func TestIntegration_ShellFromStdin(t *testing.T) {
	b := testutil.NewTestBook(t, "book.db").WithTypicalPersons()

	b.RunCLIWithStdin("find n/benson\ndelete 1\nexit\n")
	b.AssertPersonCount(6, 1)
	if _, ok := b.Load().FindPerson("Benson Meier"); ok {
		t.Fatalf("expected Benson Meier to be deleted")
	}
}

// TestIntegration_Appointments schedules, lists and cancels appointments.
func TestIntegration_Appointments(t *testing.T) {
	b := testutil.NewTestBook(t, "book.json").WithTypicalPersons()

	b.RunCLI("schedule", "n/Alice", "Pauline", "from/2026-10-14", "09:00", "to/2026-10-14", "10:00", "d/Review").MustSucceed(t)
	b.RunCLI("schedule", "n/Alice", "Pauline", "from/2026-10-14", "09:30", "to/2026-10-14", "11:00").MustFail(t, "APPOINTMENT_CONFLICT")
	b.RunCLI("schedule", "n/Nobody", "from/2026-10-14", "09:30", "to/2026-10-14", "11:00").MustFail(t, "PERSON_NOT_FOUND")

	b.RunCLI("appointments").MustSucceed(t).AssertResultCount(t, "appointments", 1)
	b.RunCLI("cancel", "1").MustSucceed(t)
	b.RunCLI("appointments").MustSucceed(t).AssertFeedback(t, "0 appointments listed!")
}

func TestIntegration_InvalidCommands(t *testing.T) {
	b := testutil.NewTestBook(t, "book.json").WithTypicalPersons()

	b.RunCLI("get", "name", "p/").MustFail(t, "INVALID_COMMAND_FORMAT")
	b.RunCLI("find").MustFail(t, "INVALID_COMMAND_FORMAT")
	b.RunCLI("clear").MustFail(t, "CONFIRMATION_REQUIRED")
	b.RunCLI("clear", "--force").MustSucceed(t).AssertFeedback(t, "Address book has been cleared!")
	b.AssertPersonCount(0, 0)
}
