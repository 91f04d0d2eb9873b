package core

import (
	"testing"
)

func TestNewSearchResult(t *testing.T) {
	path := Leaf(TextField(func(p product) string { return p.Name }))

	r1 := NewSearchResult("lamp", "Lamp shade", path)
	r2 := NewSearchResult("lamp", "Lamp shade", path)

	if r1.Query != "lamp" || r1.Matched != "Lamp shade" || r1.Path != path {
		t.Errorf("NewSearchResult() = %+v, fields not populated", r1)
	}
	if r1.Category != "" {
		t.Errorf("NewSearchResult() Category = %q, want empty", r1.Category)
	}
	if r1.ID == r2.ID {
		t.Error("NewSearchResult() produced same ID for distinct instances")
	}
}
