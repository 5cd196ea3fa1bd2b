package parser

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/aidanlsb/rolo/internal/commands"
	"github.com/aidanlsb/rolo/internal/model"
)

func TestParseDelete(t *testing.T) {
	tests := []struct {
		args string
		want []int
	}{
		{"1", []int{1}},
		{" 1, 2", []int{1, 2}},
		{"2,1", []int{2, 1}},
		{"3-5", []int{3, 4, 5}},
		{"1 3-4, 7", []int{1, 3, 4, 7}},
		{"2 1 2", []int{2, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.args, func(t *testing.T) {
			cmd, err := ParseDelete(tt.args)
			if err != nil {
				t.Fatalf("ParseDelete(%q): %v", tt.args, err)
			}
			del := cmd.(*commands.DeleteCommand)
			got := make([]int, len(del.Targets))
			for i, idx := range del.Targets {
				got[i] = idx.OneBased()
			}
			if !slices.Equal(got, tt.want) {
				t.Errorf("targets = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDeleteRejects(t *testing.T) {
	for _, args := range []string{"", "0", "-1", "a", "1, b", "5-3", "1-1001", "1.5"} {
		_, err := ParseDelete(args)
		if err == nil {
			t.Errorf("ParseDelete(%q) succeeded, want error", args)
			continue
		}
		if !errors.Is(err, ErrInvalidIndex) {
			t.Errorf("ParseDelete(%q) error = %v, want ErrInvalidIndex cause", args, err)
		}
		if !strings.HasPrefix(err.Error(), "Invalid command format!") {
			t.Errorf("ParseDelete(%q) message = %q", args, err.Error())
		}
	}
}

func TestParseDeleteEqualityFollowsInputOrder(t *testing.T) {
	a, _ := ParseDelete("1,2")
	b, _ := ParseDelete("2,1")
	c, _ := ParseDelete("1 2")
	if a.(*commands.DeleteCommand).Equal(b.(*commands.DeleteCommand)) {
		t.Error("[1,2] should not equal [2,1]")
	}
	if !a.(*commands.DeleteCommand).Equal(c.(*commands.DeleteCommand)) {
		t.Error("'1,2' should equal '1 2'")
	}
}

func TestParseAdd(t *testing.T) {
	cmd, err := ParseAdd(" n/John Doe p/98765432 e/johnd@example.com a/311, Clementi Ave 2, #02-25 pr/high t/friends t/owesMoney")
	if err != nil {
		t.Fatalf("ParseAdd: %v", err)
	}
	p := cmd.(*commands.AddCommand).Person
	if p.Name() != "John Doe" || p.Phone() != "98765432" || p.Email() != "johnd@example.com" {
		t.Errorf("person = %s", p)
	}
	if p.Address() != "311, Clementi Ave 2, #02-25" || p.Priority() != model.PriorityHigh {
		t.Errorf("person = %s", p)
	}
	if got := p.Tags(); !slices.Equal(got, []model.Tag{"friends", "owesMoney"}) {
		t.Errorf("tags = %v", got)
	}

	cmd, err = ParseAdd("n/Amy Bee p/11111111 e/amy@example.com a/Block 312")
	if err != nil {
		t.Fatalf("ParseAdd minimal: %v", err)
	}
	if got := cmd.(*commands.AddCommand).Person.Priority(); got != model.PriorityNone {
		t.Errorf("default priority = %v", got)
	}
}

func TestParseAddRejects(t *testing.T) {
	tests := []struct {
		name       string
		args       string
		wantPrefix string
	}{
		{"missing email", " n/Amy p/111 a/x", "Invalid command format!"},
		{"preamble", "junk n/Amy p/111 e/a@b.co a/x", "Invalid command format!"},
		{"duplicate name", " n/Amy n/Bob p/111 e/a@b.co a/x", "Multiple values specified"},
		{"bad name", " n/Am*y p/111 e/a@b.co a/x", model.NameConstraints},
		{"bad phone", " n/Amy p/1a1 e/a@b.co a/x", model.PhoneConstraints},
		{"bad email", " n/Amy p/111 e/amy a/x", "Emails should be"},
		{"bad tag", " n/Amy p/111 e/a@b.co a/x t/hub*", model.TagConstraints},
		{"bad priority", " n/Amy p/111 e/a@b.co a/x pr/top", model.PriorityConstraints},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseAdd(tt.args)
			if err == nil {
				t.Fatalf("ParseAdd(%q) succeeded", tt.args)
			}
			if !strings.HasPrefix(err.Error(), tt.wantPrefix) {
				t.Errorf("message = %q, want prefix %q", err.Error(), tt.wantPrefix)
			}
		})
	}
}

func TestParseEdit(t *testing.T) {
	cmd, err := ParseEdit(" 2 p/91234567 e/johndoe@example.com")
	if err != nil {
		t.Fatalf("ParseEdit: %v", err)
	}
	edit := cmd.(*commands.EditCommand)
	if edit.Index.OneBased() != 2 {
		t.Errorf("index = %d", edit.Index.OneBased())
	}
	d := edit.Descriptor
	if d.Phone == nil || *d.Phone != "91234567" || d.Email == nil || d.Name != nil || d.Tags != nil {
		t.Errorf("descriptor = %+v", d)
	}

	cmd, err = ParseEdit("1 t/")
	if err != nil {
		t.Fatalf("ParseEdit clear tags: %v", err)
	}
	tags := cmd.(*commands.EditCommand).Descriptor.Tags
	if tags == nil || len(*tags) != 0 {
		t.Errorf("tags = %v, want empty non-nil", tags)
	}
}

func TestParseEditRejects(t *testing.T) {
	tests := []struct {
		args       string
		wantPrefix string
	}{
		{"", "Invalid command format!"},
		{"n/Amy", "Invalid command format!"},
		{"0 n/Amy", "Invalid command format!"},
		{"1", "At least one field to edit must be provided."},
		{"1 p/abc", model.PhoneConstraints},
		{"1 t/ok t/", model.TagConstraints},
	}
	for _, tt := range tests {
		_, err := ParseEdit(tt.args)
		if err == nil {
			t.Errorf("ParseEdit(%q) succeeded", tt.args)
			continue
		}
		if !strings.HasPrefix(err.Error(), tt.wantPrefix) {
			t.Errorf("ParseEdit(%q) = %q, want prefix %q", tt.args, err.Error(), tt.wantPrefix)
		}
	}
}

func TestParseRemarkArchiveSort(t *testing.T) {
	cmd, err := ParseRemark(" 1 r/Likes to swim.")
	if err != nil {
		t.Fatalf("ParseRemark: %v", err)
	}
	if r := cmd.(*commands.RemarkCommand); r.Remark != "Likes to swim." || r.Index.OneBased() != 1 {
		t.Errorf("remark = %+v", r)
	}
	if cmd, err = ParseRemark("3 r/"); err != nil || cmd.(*commands.RemarkCommand).Remark != "" {
		t.Errorf("empty remark: %v %v", cmd, err)
	}
	if _, err := ParseRemark("1"); err == nil {
		t.Error("remark without r/ should fail")
	}

	if cmd, err := ParseArchive(" 4 "); err != nil || cmd.(*commands.ArchiveCommand).Index.OneBased() != 4 {
		t.Errorf("archive: %v %v", cmd, err)
	}
	if _, err := ParseUnarchive("x"); err == nil {
		t.Error("unarchive x should fail")
	}

	for args, field := range map[string]string{"": "", "n/": "name", " PR/ ": "priority", "a/": "address"} {
		cmd, err := ParseSort(args)
		if err != nil {
			t.Fatalf("ParseSort(%q): %v", args, err)
		}
		if got := cmd.(*commands.SortCommand).Field; got != field {
			t.Errorf("ParseSort(%q).Field = %q, want %q", args, got, field)
		}
	}
	if _, err := ParseSort("e/"); err == nil {
		t.Error("sort e/ should fail")
	}
}

func TestParseSchedule(t *testing.T) {
	orig := now
	now = func() time.Time { return time.Date(2026, time.October, 14, 8, 0, 0, 0, time.UTC) }
	defer func() { now = orig }()

	cmd, err := ParseSchedule(" n/Alice Pauline from/2026-10-14 09:00 to/tomorrow 10:30 d/Annual review")
	if err != nil {
		t.Fatalf("ParseSchedule: %v", err)
	}
	s := cmd.(*commands.ScheduleCommand)
	if s.Person != "Alice Pauline" || s.Description != "Annual review" {
		t.Errorf("schedule = %+v", s)
	}
	if !s.Start.Equal(time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", s.Start)
	}
	if !s.End.Equal(time.Date(2026, 10, 15, 10, 30, 0, 0, time.UTC)) {
		t.Errorf("end = %v", s.End)
	}

	for _, args := range []string{
		"",
		" n/Alice from/2026-10-14 09:00",
		" n/Alice from/soon to/2026-10-14 10:00",
		" n/Al*ce from/2026-10-14 09:00 to/2026-10-14 10:00",
		"x n/Alice from/2026-10-14 09:00 to/2026-10-14 10:00",
	} {
		if _, err := ParseSchedule(args); err == nil {
			t.Errorf("ParseSchedule(%q) succeeded", args)
		}
	}
}

func TestParseCancelAndAppointments(t *testing.T) {
	if cmd, err := ParseCancel("2"); err != nil || cmd.(*commands.CancelCommand).Index.OneBased() != 2 {
		t.Errorf("cancel: %v %v", cmd, err)
	}
	if _, err := ParseCancel(""); err == nil {
		t.Error("cancel with no index should fail")
	}

	cmd, err := ParseAppointments(" n/alice|bob")
	if err != nil {
		t.Fatalf("ParseAppointments: %v", err)
	}
	if got := cmd.(*commands.AppointmentsCommand).Keywords; !slices.Equal(got, []string{"alice", "bob"}) {
		t.Errorf("keywords = %v", got)
	}
	cmd, err = ParseAppointments("")
	if err != nil || len(cmd.(*commands.AppointmentsCommand).Keywords) != 0 {
		t.Errorf("appointments with no filter: %v %v", cmd, err)
	}
}
