package clipboard

import (
	"os/exec"
	"testing"
)

func TestCopy_EmptyString(t *testing.T) {
	if err := Copy(""); err == nil {
		t.Error("Copy(\"\") should return an error")
	}
}

func TestCopy(t *testing.T) {
	if !IsAvailable() {
		t.Skip("no clipboard tool available")
	}

	if err := Copy("https://example.com/test-url"); err != nil {
		t.Errorf("Copy() returned error: %v", err)
	}
}

func TestIsAvailable(t *testing.T) {
	_, wlErr := exec.LookPath("wl-copy")
	_, xErr := exec.LookPath("xclip")
	want := wlErr == nil || xErr == nil

	if got := IsAvailable(); got != want {
		t.Errorf("IsAvailable() = %v, want %v", got, want)
	}
}
