package utils

import (
	"strings"
	"testing"
)

func TestValidator_ValidateRoomTitle(t *testing.T) {
	v := NewValidator()
	if v.ValidateRoomTitle("room_title", "") {
		t.Error("Expected empty title to fail")
	}
	if !v.HasErrors() {
		t.Error("Expected validation errors")
	}

	v = NewValidator()
	if !v.ValidateRoomTitle("room_title", "Weekly Standup") {
		t.Errorf("Expected valid title to pass: %v", v.Errors())
	}

	v = NewValidator()
	if v.ValidateRoomTitle("room_title", strings.Repeat("x", 256)) {
		t.Error("Expected 256-char title to fail")
	}
}

func TestValidator_ValidateMaxParticipants(t *testing.T) {
	v := NewValidator()
	if !v.ValidateMaxParticipants("max_participants", 0) {
		t.Error("Expected 0 (unlimited) to pass")
	}
	if !v.ValidateMaxParticipants("max_participants", 50) {
		t.Error("Expected 50 to pass")
	}
	if v.ValidateMaxParticipants("max_participants", -1) {
		t.Error("Expected -1 to fail")
	}
}

func TestValidateOrderBy(t *testing.T) {
	cases := map[string]string{
		"ASC":      "ASC",
		"asc":      "ASC",
		" desc ":   "DESC",
		"DESC":     "DESC",
		"":         "DESC",
		"sideways": "DESC",
	}
	for in, want := range cases {
		if got := ValidateOrderBy(in); got != want {
			t.Errorf("ValidateOrderBy(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSanitizeText_StripsMarkupAndControls(t *testing.T) {
	got := SanitizeText("  Hello <script>alert(1)</script>world\x00  ")
	if strings.Contains(got, "<script>") {
		t.Errorf("Expected markup to be stripped, got %q", got)
	}
	if strings.Contains(got, "\x00") {
		t.Errorf("Expected control characters to be stripped, got %q", got)
	}
}

func TestSanitizeDescription_KeepsAllowedSubset(t *testing.T) {
	got := SanitizeDescription(`<p>Agenda</p><script>alert(1)</script>`)
	if !strings.Contains(got, "<p>Agenda</p>") {
		t.Errorf("Expected paragraph to survive, got %q", got)
	}
	if strings.Contains(got, "script") {
		t.Errorf("Expected script to be stripped, got %q", got)
	}
}
