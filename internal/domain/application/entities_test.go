package application

import (
	"errors"
	"testing"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		in   string
		want Status
	}{
		{"", StatusPending},
		{"Pending", StatusPending},
		{"Approved by SB", StatusApproved},
		{"Rejected by SB", StatusRejected},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.in)
		if err != nil {
			t.Fatalf("ParseStatus(%q) err: %v", tt.in, err)
		}
		if got != tt.want {
			t.Fatalf("ParseStatus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParseStatus_RejectsUnknownLabels(t *testing.T) {
	for _, in := range []string{"approved", "APPROVED BY SB", "Approved", "done", "Rejected"} {
		if _, err := ParseStatus(in); !errors.Is(err, ErrUnknownStatus) {
			t.Fatalf("ParseStatus(%q) err = %v, want ErrUnknownStatus", in, err)
		}
	}
}
