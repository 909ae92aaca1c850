package visuals

import (
	"fmt"
	"math"
	"strings"

	"drs-mcp/internal/simulation"
)

// GenerateSeverityCurve creates a Mermaid xychart-beta showing downgrade
// probability (any time and within the headline window) across the
// severity sweep.
func GenerateSeverityCurve(summaries []simulation.Summary, window int) string {
	if len(summaries) == 0 {
		return ""
	}

	var labels []string
	var anyVals []string
	var windowVals []string

	maxY := 0.0
	for _, s := range summaries {
		labels = append(labels, fmt.Sprintf("\"%.2f\"", s.Severity))
		anyVals = append(anyVals, fmt.Sprintf("%.3f", s.ProbDowngradedAny))
		windowVals = append(windowVals, fmt.Sprintf("%.3f", s.ProbDowngradedWithinWindow))
		if s.ProbDowngradedAny > maxY {
			maxY = s.ProbDowngradedAny
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString(fmt.Sprintf("    title \"Downgrade probability vs leakage severity (window %dy = lower line)\"\n", window))
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"P(downgrade)\" 0 --> %.2f\n", math.Min(1.0, maxY*1.2+0.05)))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(anyVals, ", ")))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(windowVals, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateCoverageChart creates a Mermaid xychart-beta for one example
// path: the interest-coverage trajectory against the breach threshold.
func GenerateCoverageChart(path simulation.PathResult, threshold float64) string {
	if len(path.Coverage) == 0 {
		return ""
	}

	var labels []string
	var values []string
	var thresholds []string

	maxY := threshold * 1.2
	for i, v := range path.Coverage {
		labels = append(labels, fmt.Sprintf("%d", i+1))
		values = append(values, fmt.Sprintf("%.2f", v))
		thresholds = append(thresholds, fmt.Sprintf("%.2f", threshold))
		if v > maxY {
			maxY = v * 1.1
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Example path: interest coverage vs threshold\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"EBITDA / Interest\" 0 --> %d\n", int(math.Ceil(maxY))))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(values, ", ")))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(thresholds, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateLeverageChart creates a Mermaid xychart-beta for one example
// path: the leverage trajectory against the breach threshold.
func GenerateLeverageChart(path simulation.PathResult, threshold float64) string {
	if len(path.Leverage) == 0 {
		return ""
	}

	var labels []string
	var values []string
	var thresholds []string

	maxY := threshold * 1.2
	for i, v := range path.Leverage {
		labels = append(labels, fmt.Sprintf("%d", i+1))
		values = append(values, fmt.Sprintf("%.2f", v))
		thresholds = append(thresholds, fmt.Sprintf("%.2f", threshold))
		if v > maxY {
			maxY = v * 1.1
		}
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Example path: leverage vs threshold\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Debt / EBITDA\" 0 --> %d\n", int(math.Ceil(maxY))))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(values, ", ")))
	sb.WriteString(fmt.Sprintf("    line [%s]\n", strings.Join(thresholds, ", ")))
	sb.WriteString("```")
	return sb.String()
}

// GenerateDowngradeYearHistogram creates a Mermaid bar chart of the
// distribution of first-trigger years in a batch. counts[i] is the number
// of paths triggered in year i+1.
func GenerateDowngradeYearHistogram(counts []int) string {
	if len(counts) == 0 {
		return ""
	}

	var labels []string
	var values []string
	maxVal := 0
	total := 0

	for i, c := range counts {
		labels = append(labels, fmt.Sprintf("\"Y%d\"", i+1))
		values = append(values, fmt.Sprintf("%d", c))
		if c > maxVal {
			maxVal = c
		}
		total += c
	}
	if total == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("```mermaid\n")
	sb.WriteString("xychart-beta\n")
	sb.WriteString("    title \"Distribution of downgrade timing\"\n")
	sb.WriteString(fmt.Sprintf("    x-axis [%s]\n", strings.Join(labels, ", ")))
	sb.WriteString(fmt.Sprintf("    y-axis \"Paths\" 0 --> %d\n", maxVal+int(math.Max(1, float64(maxVal)*0.2))))
	sb.WriteString(fmt.Sprintf("    bar [%s]\n", strings.Join(values, ", ")))
	sb.WriteString("```")
	return sb.String()
}
