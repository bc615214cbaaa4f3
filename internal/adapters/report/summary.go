// Package report renders the end-of-run summary.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/ui/style"
)

// WriteSummary prints one row per unit with its status and a short detail.
func WriteSummary(w io.Writer, outcomes []domain.UnitOutcome) {
	if len(outcomes) == 0 {
		return
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleLight)
	tw.AppendHeader(table.Row{"Subflake", "Status", "Detail"})
	for _, o := range outcomes {
		tw.AppendRow(table.Row{o.Name, icon(o.Status) + " " + o.Status.String(), detail(o)})
	}
	tw.Render()
}

func icon(s domain.UnitStatus) string {
	switch s {
	case domain.UnitBuilt:
		return style.Check
	case domain.UnitFailed:
		return style.Cross
	default:
		return style.Skip
	}
}

func detail(o domain.UnitOutcome) string {
	switch {
	case o.Err != nil:
		msg, _, _ := strings.Cut(o.Err.Error(), "\n")
		return msg
	case o.Reason != "":
		return o.Reason
	case o.Status == domain.UnitBuilt:
		return fmt.Sprintf("%d output(s)", o.Outputs)
	default:
		return ""
	}
}
