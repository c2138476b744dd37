// Package test provides assertion helpers for circuit tests.
package test

import (
	"testing"

	"github.com/zkcollective/plonkish/checker"
)

type Assert struct {
	t *testing.T
}

func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t}
}

// Accepts fails the test unless the laid-out circuit verifies.
func (a *Assert) Accepts(ch *checker.Checker) {
	a.t.Helper()
	if err := ch.Verify(); err != nil {
		a.t.Fatalf("should accept: %v", err)
	}
}

// Rejects fails the test unless verification reports at least one failure.
func (a *Assert) Rejects(ch *checker.Checker) {
	a.t.Helper()
	if err := ch.Verify(); err == nil {
		a.t.Fatal("should reject")
	}
}
