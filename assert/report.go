package assert

import (
	"fmt"
	"strings"

	"github.com/antithesishq/floateq"
)

// labelWidth right-aligns report labels so the values line up.
const labelWidth = 13

type line struct {
	label string
	value any
}

func reportLines(r *floateq.Report) []line {
	lines := []line{
		{"left:", r.Left},
		{"right:", r.Right},
	}
	if r.AbsDiff != nil {
		lines = append(lines, line{"abs_diff:", r.AbsDiff})
	}
	if r.UlpsDiff != nil {
		lines = append(lines, line{"ulps_diff:", r.UlpsDiff})
	}
	for _, eps := range r.Epsilons {
		lines = append(lines, line{fmt.Sprintf("[%s] ε:", eps.Tolerance.Name()), eps.Value})
	}
	return lines
}

func errorLines(err error) []line {
	return []line{{"error:", err}}
}

func failure(name string, tols []floateq.Tolerance, message string, lines []line) string {
	checks := make([]string, len(tols))
	for i, tol := range tols {
		checks[i] = tol.String()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "assertion failed: `%s(left, right, %s)`", name, strings.Join(checks, ", "))
	if message != "" {
		fmt.Fprintf(&b, ": %s", message)
	}
	for i, l := range lines {
		fmt.Fprintf(&b, "\n%*s `%v`", labelWidth, l.label, l.value)
		if i < len(lines)-1 {
			b.WriteString(",")
		}
	}
	return b.String()
}
