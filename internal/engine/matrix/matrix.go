// Package matrix computes the CI job matrix of a flake.
package matrix

import (
	"github.com/juspay/omnix-sub000/internal/core/domain"
	"go.trai.ch/zerr"
)

// Generate returns one row per system and unit the unit may build on.
// Rows follow the order of systems, then unit name. Units with skip set
// never appear, and a unit selected by the reference restricts the
// matrix to that unit.
func Generate(systems []domain.System, cfg *domain.ResolvedConfig, policy domain.SelectionPolicy) (domain.Matrix, error) {
	units := cfg.Units
	if selected, ok := cfg.Selected(); ok {
		unit, found := cfg.Lookup(selected)
		switch {
		case found:
			units = []domain.Subflake{unit}
		case policy == domain.SelectionAllowEmpty:
			units = nil
		default:
			return domain.Matrix{}, zerr.With(zerr.Wrap(domain.ErrUnitNotFound, "cannot select subflake"), "subflake", selected)
		}
	}

	rows := []domain.MatrixRow{}
	for _, system := range systems {
		for _, unit := range units {
			if unit.Skip || !unit.Systems.Allows(system) {
				continue
			}
			rows = append(rows, domain.MatrixRow{System: system, Subflake: unit.Name})
		}
	}
	return domain.Matrix{Include: rows}, nil
}
