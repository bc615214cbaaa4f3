package report_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/juspay/omnix-sub000/internal/adapters/report"
	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	report.WriteSummary(&buf, []domain.UnitOutcome{
		{Name: "alpha", Status: domain.UnitBuilt, Outputs: 3},
		{Name: "beta", Status: domain.UnitIncompatible, Reason: "cannot run on this system"},
		{Name: "gamma", Status: domain.UnitDeselected, Reason: "not selected"},
		{Name: "delta", Status: domain.UnitFailed, Err: errors.New("nix command failed: exit status 1\nmore")},
	})

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Contains(t, out, "SUBFLAKE")
	assert.Contains(t, out, "✓ built")
	assert.Contains(t, out, "3 output(s)")
	assert.Contains(t, out, "↷ incompatible")
	assert.Contains(t, out, "cannot run on this system")
	assert.Contains(t, out, "↷ deselected")
	assert.Contains(t, out, "✗ failed")
	assert.Contains(t, out, "nix command failed: exit status 1")
	assert.NotContains(t, out, "more")
	// Borders, header, separator and four rows.
	assert.Len(t, lines, 8)
}

func TestWriteSummary_Empty(t *testing.T) {
	var buf bytes.Buffer
	report.WriteSummary(&buf, nil)
	assert.Empty(t, buf.String())
}
