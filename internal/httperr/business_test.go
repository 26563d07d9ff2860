package httperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsBusiness(t *testing.T) {
	err := ErrBusiness("slot_taken")

	if !IsBusiness(err, "slot_taken") {
		t.Fatal("expected match for slot_taken")
	}
	if IsBusiness(err, "invalid_request") {
		t.Fatal("unexpected match for invalid_request")
	}
	if IsBusiness(errors.New("boom"), "slot_taken") {
		t.Fatal("plain errors are not business errors")
	}
}

func TestIsBusiness_Wrapped(t *testing.T) {
	err := fmt.Errorf("reserve: %w", ErrBusiness("unavailable"))

	if !IsBusiness(err, "unavailable") {
		t.Fatal("expected match through wrapping")
	}
	if BusinessCode(err) != "unavailable" {
		t.Fatalf("expected code unavailable, got %q", BusinessCode(err))
	}
}

func TestBusinessCode_NonBusiness(t *testing.T) {
	if code := BusinessCode(errors.New("boom")); code != "" {
		t.Fatalf("expected empty code, got %q", code)
	}
}
