package utils

import "testing"

func TestValidateEmail(t *testing.T) {
	valid := []string{"sam@corp.test", "a.b+tag@example.co.uk"}
	invalid := []string{"", "no-at-sign", "missing@tld", "@corp.test"}

	for _, email := range valid {
		if !ValidateEmail(email) {
			t.Errorf("expected %q to be valid", email)
		}
	}
	for _, email := range invalid {
		if ValidateEmail(email) {
			t.Errorf("expected %q to be invalid", email)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	if ok, _ := ValidatePassword("short"); ok {
		t.Error("expected short password to fail")
	}
	if ok, msg := ValidatePassword("long enough"); !ok {
		t.Errorf("expected password to pass, got %q", msg)
	}
}

func TestSanitizeInput(t *testing.T) {
	if got := SanitizeInput("  hello\x00world  "); got != "helloworld" {
		t.Errorf("unexpected sanitized value: %q", got)
	}
}
