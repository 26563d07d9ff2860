package timezone

import "testing"

func TestIsValid(t *testing.T) {
	if !IsValid("America/Sao_Paulo") {
		t.Fatal("expected valid timezone")
	}
	if IsValid("") {
		t.Fatal("empty timezone is not valid")
	}
	if IsValid("Mars/Olympus") {
		t.Fatal("unknown timezone is not valid")
	}
}

func TestLocation_FallsBack(t *testing.T) {
	if got := Location("Mars/Olympus"); got.String() != DefaultTimezone {
		t.Fatalf("expected fallback to %s, got %s", DefaultTimezone, got)
	}
	if got := Location("UTC"); got.String() != "UTC" {
		t.Fatalf("expected UTC, got %s", got)
	}
}
