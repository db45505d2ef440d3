package application

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		selected string
		other    string
		want     string
	}{
		{"other takes free text", "Other", "Foo", "Foo"},
		{"plain selection verbatim", "Bank X", "", "Bank X"},
		{"empty selection stays empty", "", "", ""},
		{"empty selection ignores other", "", "leftover", ""},
		{"other with empty free text", "Other", "", ""},
		{"selection wins over stale other", "HDFC", "stale", "HDFC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalize(tt.selected, tt.other); got != tt.want {
				t.Fatalf("normalize(%q, %q) = %q, want %q", tt.selected, tt.other, got, tt.want)
			}
		})
	}
}

func TestFormInput_Normalized(t *testing.T) {
	in := FormInput{
		Code:               "Other",
		OtherCode:          "PARKER",
		Product:            "Home Loan",
		OtherProduct:       "ignored",
		Bank:               "Other",
		OtherBank:          "Gruh Finance",
		SourceChannel:      "Other",
		OtherSourceChannel: "Walk-in",
		PropertyType:       "Residential",
		Category:           "Other",
		OtherCategory:      "NRI",
	}
	got := in.normalized()

	if got.Code != "PARKER" {
		t.Fatalf("Code = %q", got.Code)
	}
	if got.Product != "Home Loan" {
		t.Fatalf("Product = %q", got.Product)
	}
	if got.Bank != "Gruh Finance" {
		t.Fatalf("Bank = %q", got.Bank)
	}
	if got.SourceChannel != "Walk-in" {
		t.Fatalf("SourceChannel = %q", got.SourceChannel)
	}
	if got.PropertyType != "Residential" {
		t.Fatalf("PropertyType = %q", got.PropertyType)
	}
	if got.Category != "NRI" {
		t.Fatalf("Category = %q", got.Category)
	}
	// the free-text halves are consumed, never persisted
	if got.OtherCode != "" || got.OtherBank != "" || got.OtherSourceChannel != "" || got.OtherCategory != "" {
		t.Fatalf("Other* fields should be cleared: %+v", got)
	}
}
