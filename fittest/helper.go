// Package fittest provides testify-based assertion helpers shared by
// this module's _test.go files, rather than repeating boilerplate in
// every test file.
package fittest

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/aldas/go-fit-decoder"
)

// UTCTime creates a time.Time in UTC, avoiding test flakiness on
// machines in other timezones.
func UTCTime(sec int64) time.Time {
	return time.Unix(sec, 0).In(time.UTC)
}

// LoadBytes reads the fixture file at path, failing the test
// immediately if it is missing.
func LoadBytes(t *testing.T, path string) []byte {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("fittest: loading fixture %q: %v", path, err)
	}
	return b
}

// AssertDataMessage compares a decoded message's kind and fields against
// expectations, field by field.
func AssertDataMessage(t *testing.T, expect, actual fit.DataMessage) {
	t.Helper()
	assert.Equal(t, expect.Kind, actual.Kind)
	AssertFields(t, expect.Fields, actual.Fields)
}

// AssertFields compares two field slices irrespective of order, matching
// by field kind instead of index.
func AssertFields(t *testing.T, expect, actual []fit.DataField) {
	t.Helper()
	assert.Len(t, actual, len(expect))
	for _, af := range actual {
		ef, ok := findFieldByKind(expect, af.Kind)
		if !ok {
			t.Errorf("actual fields contain unexpected field %v", af.Kind)
			continue
		}
		assert.Equal(t, ef, af, "field %v", af.Kind)
	}
}

func findFieldByKind(fields []fit.DataField, kind fit.FieldKind) (fit.DataField, bool) {
	for _, f := range fields {
		if f.Kind == kind {
			return f, true
		}
	}
	return fit.DataField{}, false
}
