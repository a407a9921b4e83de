package models

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ResourceType is one of the fixed measurement categories
type ResourceType string

const (
	ResourceWater   ResourceType = "water"
	ResourceEnergy  ResourceType = "energy"
	ResourceGas     ResourceType = "gas"
	ResourceWaste   ResourceType = "waste"
	ResourceCompost ResourceType = "compost"
)

// ResourceTypes lists every resource type in display order
var ResourceTypes = []ResourceType{
	ResourceWater,
	ResourceEnergy,
	ResourceGas,
	ResourceWaste,
	ResourceCompost,
}

// ResourceTypeConfig holds the static presentation data of a resource type
type ResourceTypeConfig struct {
	Type  ResourceType `json:"type"`
	Label string       `json:"label"`
	Unit  string       `json:"unit"`
	Color string       `json:"color"`
	Icon  string       `json:"icon"`
}

// ResourceConfig maps each resource type to its unit and labels
var ResourceConfig = map[ResourceType]ResourceTypeConfig{
	ResourceWater:   {Type: ResourceWater, Label: "Água", Unit: "L", Color: "water", Icon: "💧"},
	ResourceEnergy:  {Type: ResourceEnergy, Label: "Energia", Unit: "kWh", Color: "energy", Icon: "⚡"},
	ResourceGas:     {Type: ResourceGas, Label: "Gás", Unit: "m³", Color: "gas", Icon: "🔥"},
	ResourceWaste:   {Type: ResourceWaste, Label: "Resíduos", Unit: "kg", Color: "waste", Icon: "🗑️"},
	ResourceCompost: {Type: ResourceCompost, Label: "Composto", Unit: "kg", Color: "compost", Icon: "🌱"},
}

// IsValid reports whether t is a known resource type
func (t ResourceType) IsValid() bool {
	_, ok := ResourceConfig[t]
	return ok
}

// Unit returns the static unit for the resource type, or "" if unknown
func (t ResourceType) Unit() string {
	return ResourceConfig[t].Unit
}

// Label returns the readable name for the resource type
func (t ResourceType) Label() string {
	if cfg, ok := ResourceConfig[t]; ok {
		return cfg.Label
	}
	return "Unknown"
}

// ResourceRecord represents one observed consumption measurement
type ResourceRecord struct {
	ID          string       `json:"id"`
	Type        ResourceType `json:"type"`
	Value       float64      `json:"value"`
	Unit        string       `json:"unit"`
	Date        string       `json:"date"` // "2024-07-20" format
	Description string       `json:"description,omitempty"`
	CreatedAt   string       `json:"createdAt"`
	UpdatedAt   string       `json:"updatedAt"`
}

// ResourceInput is the data needed to create a record. Unit is derived from Type.
type ResourceInput struct {
	Type        ResourceType `json:"type"`
	Value       float64      `json:"value"`
	Date        string       `json:"date"`
	Description string       `json:"description,omitempty"`
}

// ResourcePatch carries the replaceable fields of a record. Nil fields are left untouched.
type ResourcePatch struct {
	Type        *ResourceType `json:"type,omitempty"`
	Value       *float64      `json:"value,omitempty"`
	Date        *string       `json:"date,omitempty"`
	Description *string       `json:"description,omitempty"`
}

// Apply merges the patch over r and re-derives the unit
func (p ResourcePatch) Apply(r *ResourceRecord) {
	if p.Type != nil {
		r.Type = *p.Type
	}
	if p.Value != nil {
		r.Value = *p.Value
	}
	if p.Date != nil {
		r.Date = *p.Date
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	r.Unit = r.Type.Unit()
}

// ResourceForm represents raw user input for creating or editing a record
type ResourceForm struct {
	Type        string `json:"type"`
	Value       string `json:"value"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

// Validate validates the resource form against today's date
func (f *ResourceForm) Validate(today time.Time) ValidationErrors {
	var errors ValidationErrors

	if !ResourceType(f.Type).IsValid() {
		errors = append(errors, ValidationError{Field: "type", Message: "Type must be one of water, energy, gas, waste, compost"})
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64)
	if err != nil || math.IsNaN(value) || math.IsInf(value, 0) {
		errors = append(errors, ValidationError{Field: "value", Message: "Value must be a number"})
	} else if value <= 0 {
		errors = append(errors, ValidationError{Field: "value", Message: "Value must be greater than zero"})
	}

	if f.Date == "" {
		errors = append(errors, ValidationError{Field: "date", Message: "Date is required"})
	} else if date, err := ParseDate(f.Date); err != nil {
		errors = append(errors, ValidationError{Field: "date", Message: "Date must be in YYYY-MM-DD format"})
	} else if FormatDate(date) > FormatDate(today) {
		errors = append(errors, ValidationError{Field: "date", Message: "Date cannot be in the future"})
	}

	return errors
}

// ToInput converts a validated form into store input
func (f *ResourceForm) ToInput() ResourceInput {
	value, _ := strconv.ParseFloat(strings.TrimSpace(f.Value), 64)
	return ResourceInput{
		Type:        ResourceType(f.Type),
		Value:       value,
		Date:        f.Date,
		Description: strings.TrimSpace(f.Description),
	}
}

// ToPatch converts a validated form into a full replacement patch
func (f *ResourceForm) ToPatch() ResourcePatch {
	in := f.ToInput()
	return ResourcePatch{
		Type:        &in.Type,
		Value:       &in.Value,
		Date:        &in.Date,
		Description: &in.Description,
	}
}
