package cmd

import (
	"strings"
	"testing"

	"github.com/polkashop/polka/internal/api"
	"github.com/polkashop/polka/internal/money"
)

func TestProductLine(t *testing.T) {
	p := api.Product{
		Name:      "Платье-комбинация",
		BrandName: "Monochrome",
		Price:     990000,
		IsLiked:   true,
	}

	got := productLine(p, money.Tag("ru"))
	if !strings.Contains(got, "Платье-комбинация ♥") {
		t.Errorf("liked product missing heart marker: %q", got)
	}
	if !strings.Contains(got, "Monochrome") {
		t.Errorf("missing brand: %q", got)
	}
	if !strings.HasSuffix(got, "9 900 ₽") {
		t.Errorf("missing formatted price: %q", got)
	}
}

func TestProductLineNotLiked(t *testing.T) {
	p := api.Product{Name: "Джинсы", BrandName: "Denim Lab", Price: 450000}

	if got := productLine(p, money.Tag("ru")); strings.Contains(got, "♥") {
		t.Errorf("unliked product must not carry the heart marker: %q", got)
	}
}
