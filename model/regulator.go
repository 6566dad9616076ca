// Copyright (c) 2026 Michael D Henderson. All rights reserved.

package model

import "time"

// Resource holds the fields every Cell Collective object carries.
type Resource struct {
	ID      int
	Name    string
	Created time.Time
	Updated time.Time
}

// RegulatorType says whether a regulator activates or inhibits its component.
type RegulatorType string

const (
	Positive RegulatorType = "positive"
	Negative RegulatorType = "negative"
)

// Condition restricts when a regulator applies.
type Condition struct {
	Resource
	// Type is "if" or "unless".
	Type string
	// State is the component state the condition tests for.
	State bool
	// Relation combines Components: "and" or "or".
	Relation   string
	Components []string
}

// Regulator is an edge of a boolean network: Component regulates the
// species that owns the regulator.
type Regulator struct {
	Resource
	Component  string
	Type       RegulatorType
	Conditions QueryList[Condition]
}

// NewRegulator returns a regulator of typ for component.
func NewRegulator(component string, typ RegulatorType, conditions ...Condition) *Regulator {
	return &Regulator{
		Component:  component,
		Type:       typ,
		Conditions: NewQueryList(conditions...),
	}
}

// NewPositiveRegulator returns an activating regulator for component.
func NewPositiveRegulator(component string, conditions ...Condition) *Regulator {
	return NewRegulator(component, Positive, conditions...)
}

// NewNegativeRegulator returns an inhibiting regulator for component.
func NewNegativeRegulator(component string, conditions ...Condition) *Regulator {
	return NewRegulator(component, Negative, conditions...)
}

// IsPositive reports whether r activates its component.
func (r *Regulator) IsPositive() bool {
	return r.Type == Positive
}
