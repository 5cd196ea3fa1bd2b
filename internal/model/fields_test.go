package model

import (
	"errors"
	"testing"
)

func TestFieldValidators(t *testing.T) {
	tests := []struct {
		name  string
		valid func(string) bool
		input string
		want  bool
	}{
		{name: "name alnum", valid: ValidName, input: "peter jack", want: true},
		{name: "name with digits", valid: ValidName, input: "Capital Tan 2nd", want: true},
		{name: "name empty", valid: ValidName, input: "", want: false},
		{name: "name spaces only", valid: ValidName, input: " ", want: false},
		{name: "name symbol", valid: ValidName, input: "peter*", want: false},
		{name: "name leading space", valid: ValidName, input: " peter", want: false},
		{name: "name non-ascii letter", valid: ValidName, input: "Zoë Tan", want: false},
		{name: "phone ok", valid: ValidPhone, input: "911", want: true},
		{name: "phone too short", valid: ValidPhone, input: "91", want: false},
		{name: "phone letters", valid: ValidPhone, input: "9011p041", want: false},
		{name: "address ok", valid: ValidAddress, input: "Blk 456, Den Road, #01-355", want: true},
		{name: "address blank", valid: ValidAddress, input: " ", want: false},
		{name: "address empty", valid: ValidAddress, input: "", want: false},
		{name: "email ok", valid: ValidEmail, input: "peter_jack@very-very-long.example.com", want: true},
		{name: "email no domain dot", valid: ValidEmail, input: "a@bc", want: true},
		{name: "email plus", valid: ValidEmail, input: "a+b@example.com", want: true},
		{name: "email missing at", valid: ValidEmail, input: "peterjack.example.com", want: false},
		{name: "email leading special", valid: ValidEmail, input: "-peterjack@example.com", want: false},
		{name: "email short tld", valid: ValidEmail, input: "peterjack@example.c", want: false},
		{name: "email trailing hyphen label", valid: ValidEmail, input: "peterjack@example-.com", want: false},
		{name: "tag ok", valid: ValidTag, input: "friends", want: true},
		{name: "tag space", valid: ValidTag, input: "best friend", want: false},
		{name: "tag non-ascii letter", valid: ValidTag, input: "café", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.valid(tt.input); got != tt.want {
				t.Errorf("validator(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewNameConstraintError(t *testing.T) {
	_, err := NewName("bad*name")
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConstraintError, got %T", err)
	}
	if ce.Field != FieldName {
		t.Errorf("Field = %q, want %q", ce.Field, FieldName)
	}
	if ce.Error() != NameConstraints {
		t.Errorf("Error() = %q, want name constraints", ce.Error())
	}
}

func TestParsePriority(t *testing.T) {
	tests := []struct {
		input   string
		want    Priority
		wantErr bool
	}{
		{input: "high", want: PriorityHigh},
		{input: "HIGH", want: PriorityHigh},
		{input: " Medium ", want: PriorityMedium},
		{input: "low", want: PriorityLow},
		{input: "none", want: PriorityNone},
		{input: "", wantErr: true},
		{input: "urgent", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParsePriority(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePriority(%q) expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParsePriority(%q) unexpected error: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePriority(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestPriorityTextRoundTrip(t *testing.T) {
	for _, p := range []Priority{PriorityNone, PriorityLow, PriorityMedium, PriorityHigh} {
		text, err := p.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v): %v", p, err)
		}
		var back Priority
		if err := back.UnmarshalText(text); err != nil {
			t.Fatalf("UnmarshalText(%q): %v", text, err)
		}
		if back != p {
			t.Errorf("round trip: got %v, want %v", back, p)
		}
	}
}
