package export

import (
	"fmt"
	"strings"

	"rf-heatmap.klederson.com/internal/coverage"
)

// Summary renders the post-run statistics report as plain text.
func Summary(res *coverage.Result) string {
	var sb strings.Builder
	rule := strings.Repeat("-", 60)

	sb.WriteString(rule + "\n")
	sb.WriteString("RF COVERAGE SUMMARY\n")
	sb.WriteString(rule + "\n")
	fmt.Fprintf(&sb, "Emitters:         %d\n", len(res.Emitters))
	fmt.Fprintf(&sb, "Total points:     %d\n", res.Stats.TotalPoints)
	fmt.Fprintf(&sb, "Signal range:     %gm - %gm\n", res.Params.MinRange, res.Params.MaxRange)
	fmt.Fprintf(&sb, "Point size:       %g\n", res.Params.PointSize)

	if res.Stats.TotalPoints == 0 {
		sb.WriteString("No visible emitters found; coverage map is empty.\n")
		sb.WriteString(rule + "\n")
		return sb.String()
	}

	sb.WriteString("\nPoints per emitter:\n")
	for _, ec := range res.Stats.PerEmitter {
		fmt.Fprintf(&sb, "  %-24s %d\n", ec.Emitter, ec.Points)
	}

	sb.WriteString("\nSignal strength:\n")
	fmt.Fprintf(&sb, "  Min: %.1f%%  Max: %.1f%%  Avg: %.1f%%\n",
		res.Stats.MinStrength, res.Stats.MaxStrength, res.Stats.AvgStrength)

	sb.WriteString("\nBand distribution:\n")
	fmt.Fprintf(&sb, "  weak   (<33%%):  %6d points (%.1f%%)\n", res.Stats.WeakCount, res.Stats.WeakPct)
	fmt.Fprintf(&sb, "  medium (<66%%):  %6d points (%.1f%%)\n", res.Stats.MediumCount, res.Stats.MediumPct)
	fmt.Fprintf(&sb, "  strong (>=66%%): %6d points (%.1f%%)\n", res.Stats.StrongCount, res.Stats.StrongPct)
	sb.WriteString(rule + "\n")
	return sb.String()
}
