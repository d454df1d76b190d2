package cmd

import (
	"testing"

	"github.com/polkashop/polka/internal/api"
)

func TestBrandLine(t *testing.T) {
	tests := []struct {
		name  string
		brand api.Brand
		want  string
	}{
		{
			name:  "with description",
			brand: api.Brand{ID: 1, Name: "Monochrome", Description: "Минимализм и базовые силуэты"},
			want:  "1    Monochrome  Минимализм и базовые силуэты",
		},
		{
			name:  "without description",
			brand: api.Brand{ID: 23, Name: "Vagabond"},
			want:  "23   Vagabond",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := brandLine(tt.brand); got != tt.want {
				t.Errorf("brandLine = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyleLine(t *testing.T) {
	got := styleLine(api.Style{ID: "old_money", Name: "Старые деньги"})
	want := "old_money      Старые деньги"
	if got != want {
		t.Errorf("styleLine = %q, want %q", got, want)
	}
}

func TestCategoryLine(t *testing.T) {
	got := categoryLine(api.Category{ID: "dresses", Name: "Платья", Description: "Платья и сарафаны"})
	want := "dresses        Платья  Платья и сарафаны"
	if got != want {
		t.Errorf("categoryLine = %q, want %q", got, want)
	}
}
