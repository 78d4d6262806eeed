package ui

import (
	"fmt"
	"net/url"
	"strconv"
	"time"
)

type fieldKind int

const (
	fieldNumber fieldKind = iota
	fieldInteger
	fieldDate
	fieldSelect
	fieldCheckbox
)

type selectOption struct {
	Value, Label string
}

type formField struct {
	Name    string
	Label   string
	Kind    fieldKind
	Default string
	Options []selectOption // fieldSelect only
}

// resultRow is one label/value line of a calculator result.
type resultRow struct {
	Label, Value string
}

// resultTable is an optional tabular part of a result, e.g. an amortization
// schedule.
type resultTable struct {
	Headers []string
	Rows    [][]string
}

type calcResult struct {
	Rows  []resultRow
	Table *resultTable
}

// calcForm describes one calculator page: its input fields and the pure
// computation over the submitted values.
type calcForm struct {
	Fields  []formField
	Compute func(v formValues) (calcResult, error)
}

// formValues wraps submitted query parameters with typed accessors. Each
// accessor returns a user-facing error naming the field.
type formValues struct {
	values url.Values
	fields []formField
}

func newFormValues(values url.Values, fields []formField) formValues {
	return formValues{values: values, fields: fields}
}

func (v formValues) raw(name string) string {
	s := v.values.Get(name)
	if s != "" {
		return s
	}
	for _, f := range v.fields {
		if f.Name == name {
			return f.Default
		}
	}
	return ""
}

func (v formValues) label(name string) string {
	for _, f := range v.fields {
		if f.Name == name {
			return f.Label
		}
	}
	return name
}

func (v formValues) float(name string) (float64, error) {
	s := v.raw(name)
	if s == "" {
		return 0, fmt.Errorf("%s is required", v.label(name))
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a number", v.label(name))
	}
	return f, nil
}

func (v formValues) integer(name string) (int, error) {
	s := v.raw(name)
	if s == "" {
		return 0, fmt.Errorf("%s is required", v.label(name))
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", v.label(name))
	}
	return n, nil
}

func (v formValues) int64Val(name string) (int64, error) {
	s := v.raw(name)
	if s == "" {
		return 0, fmt.Errorf("%s is required", v.label(name))
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number", v.label(name))
	}
	return n, nil
}

func (v formValues) date(name string) (time.Time, error) {
	s := v.raw(name)
	if s == "" {
		return time.Time{}, fmt.Errorf("%s is required", v.label(name))
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date (YYYY-MM-DD)", v.label(name))
	}
	return t, nil
}

func (v formValues) boolean(name string) bool {
	s := v.values.Get(name)
	return s == "1" || s == "on" || s == "true"
}

func (v formValues) choice(name string) string {
	s := v.raw(name)
	for _, f := range v.fields {
		if f.Name != name {
			continue
		}
		for _, opt := range f.Options {
			if opt.Value == s {
				return s
			}
		}
		if len(f.Options) > 0 {
			return f.Options[0].Value
		}
	}
	return s
}

func money(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func rounded(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func dateOnly(t time.Time) string {
	return t.Format("January 2, 2006")
}
