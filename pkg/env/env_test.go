package env

import "testing"

func TestGetReturnsValue(t *testing.T) {
	t.Setenv("EMART_TEST_KEY", "console")

	if got := Get("EMART_TEST_KEY", "json"); got != "console" {
		t.Fatalf("expected set value, got %q", got)
	}
}

func TestGetFallsBackWhenUnset(t *testing.T) {
	if got := Get("EMART_TEST_MISSING", "json"); got != "json" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestGetTreatsBlankAsUnset(t *testing.T) {
	t.Setenv("EMART_TEST_KEY", "   ")

	if got := Get("EMART_TEST_KEY", "json"); got != "json" {
		t.Fatalf("expected fallback for blank value, got %q", got)
	}
}

func TestGetTrimsWhitespace(t *testing.T) {
	t.Setenv("EMART_TEST_KEY", " console ")

	if got := Get("EMART_TEST_KEY", "json"); got != "console" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
}
