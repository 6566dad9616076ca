// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package model_test

import (
	"testing"

	"github.com/mdhender/ccapi/model"
)

func TestRegulator(t *testing.T) {
	cond := model.Condition{Type: "if", State: true, Relation: "and", Components: []string{"B", "C"}}

	pos := model.NewPositiveRegulator("A", cond)
	if !pos.IsPositive() || pos.Type != model.Positive {
		t.Errorf("positive regulator has type %q", pos.Type)
	}
	if pos.Component != "A" {
		t.Errorf("Component = %q, want A", pos.Component)
	}
	if pos.Conditions.Len() != 1 {
		t.Fatalf("Conditions.Len = %d, want 1", pos.Conditions.Len())
	}

	neg := model.NewNegativeRegulator("D")
	if neg.IsPositive() || neg.Type != model.Negative {
		t.Errorf("negative regulator has type %q", neg.Type)
	}
	if neg.Conditions.Len() != 0 {
		t.Errorf("Conditions.Len = %d, want 0", neg.Conditions.Len())
	}

	unless := func(c model.Condition) bool { return c.Type == "unless" }
	if _, ok := pos.Conditions.First(unless); ok {
		t.Error("no unless condition expected")
	}
}
