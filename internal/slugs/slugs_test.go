package slugs

import "testing"

func TestBookSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Work", "work"},
		{"Work Contacts", "work-contacts"},
		{"  UPPER CASE  ", "upper-case"},
		{"clients.db", "clients"},
		{"Special: Characters!", "special-characters"},
		{"version 1.2", "version-1-2"},
		{"!!!", "book"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := BookSlug(tt.in); got != tt.want {
				t.Fatalf("BookSlug(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestBookFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Work Contacts", "work-contacts.json"},
		{"Clients.DB", "clients.db"},
		{"family.yaml", "family.yaml"},
		{"notes.txt", "notes-txt.json"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := BookFileName(tt.in); got != tt.want {
				t.Fatalf("BookFileName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
