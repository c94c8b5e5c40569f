// Package script runs batches of directory operations described in YAML.
//
// A script is a list of steps applied in order to one Directory:
//
//	steps:
//	  - op: add-record
//	    name: John
//	    phones: ["1234567890", "5555555555"]
//	  - op: edit-phone
//	    name: John
//	    phone: "1234567890"
//	    new: "1112223333"
//	  - op: show
//
// The first failing step stops the run.
package script

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Step operations.
const (
	OpAddRecord   = "add-record"
	OpAddPhone    = "add-phone"
	OpRemovePhone = "remove-phone"
	OpEditPhone   = "edit-phone"
	OpFindPhone   = "find-phone"
	OpDelete      = "delete"
	OpShow        = "show"
)

// Script parse errors.
var (
	ErrUnknownOp    = errors.New("unknown op")
	ErrMissingField = errors.New("missing field")
	ErrEmptyScript  = errors.New("script has no steps")
)

// requiredFields lists, per op, the fields a step must set.
var requiredFields = map[string][]string{
	OpAddRecord:   {"name"},
	OpAddPhone:    {"name", "phone"},
	OpRemovePhone: {"name", "phone"},
	OpEditPhone:   {"name", "phone", "new"},
	OpFindPhone:   {"name", "phone"},
	OpDelete:      {"name"},
	OpShow:        {},
}

//go:embed demo.yaml
var demoYAML []byte

// Script is a parsed list of steps.
type Script struct {
	Steps []Step `yaml:"steps"`
}

// Step is one operation. Which fields apply depends on Op.
type Step struct {
	Op     string   `yaml:"op"`
	Name   string   `yaml:"name,omitempty"`
	Phone  string   `yaml:"phone,omitempty"`
	New    string   `yaml:"new,omitempty"`
	Phones []string `yaml:"phones,omitempty"`
}

// field returns the value of a required field by its YAML name.
func (s Step) field(name string) string {
	switch name {
	case "name":
		return s.Name
	case "phone":
		return s.Phone
	case "new":
		return s.New
	}
	return ""
}

// validate checks the op and its required fields. Value formats are left
// to the types package at run time.
func (s Step) validate() error {
	fields, ok := requiredFields[s.Op]
	if !ok {
		return fmt.Errorf("%w %q", ErrUnknownOp, s.Op)
	}
	for _, f := range fields {
		if s.field(f) == "" {
			return fmt.Errorf("%s: %w %q", s.Op, ErrMissingField, f)
		}
	}
	return nil
}

// Parse decodes and validates a script. Unknown keys are rejected.
func Parse(r io.Reader) (*Script, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Script
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScript
		}
		return nil, fmt.Errorf("decode script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, ErrEmptyScript
	}
	for i, s := range sc.Steps {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &sc, nil
}

// Demo returns the built-in demonstration script.
func Demo() (*Script, error) {
	return Parse(bytes.NewReader(demoYAML))
}
