// File: entry_test.go
// Title: Log Entry Tests
// Description: Tests for entries and field helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19

package log

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

func TestNewEntry(t *testing.T) {
	entry := NewEntry(LevelInfo, "evaluated")
	if entry.Level != LevelInfo || entry.Message != "evaluated" {
		t.Errorf("NewEntry() = %+v", entry)
	}
	if entry.Fields == nil {
		t.Error("NewEntry() should initialize fields")
	}
	if entry.Timestamp.IsZero() {
		t.Error("NewEntry() should set timestamp")
	}
}

func TestFieldHelpers(t *testing.T) {
	err := errors.New("boom")
	tests := []struct {
		name  string
		got   Fields
		key   string
		value interface{}
	}{
		{"Field", Field("k", 1), "k", 1},
		{"Err", Err(err), "error", err},
		{"Formula", Formula("quality.cpk"), "formula", "quality.cpk"},
		{"Duration", Duration("d", time.Second), "d", time.Second},
		{"Int", Int("n", 3), "n", 3},
		{"Float64", Float64("x", 1.5), "x", 1.5},
		{"String", String("s", "v"), "s", "v"},
		{"Bool", Bool("b", true), "b", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.got[tt.key]; got != tt.value {
				t.Errorf("%s()[%q] = %v, want %v", tt.name, tt.key, got, tt.value)
			}
		})
	}
}

func TestFieldsMerge(t *testing.T) {
	a := Fields{"a": 1, "b": 2}
	b := Fields{"b": 3, "c": 4}
	got := a.Merge(b)

	want := Fields{"a": 1, "b": 3, "c": 4}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Merge() = %v, want %v", got, want)
	}
	if a["b"] != 2 {
		t.Error("Merge() should not modify the receiver")
	}
}

func TestFieldsWithAndClone(t *testing.T) {
	var f Fields
	f = f.With("k", "v")
	if f["k"] != "v" {
		t.Errorf("With() on nil = %v", f)
	}

	clone := f.Clone()
	clone["k"] = "changed"
	if f["k"] != "v" {
		t.Error("Clone() should return an independent copy")
	}

	var nilFields Fields
	if nilFields.Clone() != nil {
		t.Error("Clone() of nil should be nil")
	}
}

func TestFieldsKeysSorted(t *testing.T) {
	f := Fields{"zeta": 1, "alpha": 2, "mu": 3}
	want := []string{"alpha", "mu", "zeta"}
	if got := f.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys() = %v, want %v", got, want)
	}
}

func TestEntryBuilders(t *testing.T) {
	err := errors.New("boom")
	entry := NewEntry(LevelWarn, "m").
		WithFields(Fields{"a": 1}).
		WithError(err).
		WithDuration(time.Millisecond).
		WithCaller("fn", "file.go", 12)

	if entry.Fields["a"] != 1 {
		t.Errorf("WithFields() = %v", entry.Fields)
	}
	if entry.Error != err {
		t.Errorf("WithError() = %v", entry.Error)
	}
	if entry.Duration != time.Millisecond {
		t.Errorf("WithDuration() = %v", entry.Duration)
	}
	if entry.Caller == nil || entry.Caller.Line != 12 {
		t.Errorf("WithCaller() = %+v", entry.Caller)
	}
}
