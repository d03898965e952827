package experiment

import (
	"fmt"
	"io"
	"sort"
	"strings"
)

// Summary holds descriptive statistics of a cost distribution.
type Summary struct {
	Mean   float64
	Median float64
	Min    int
	Max    int
}

// Summarize computes mean, median, min and max of the given costs.
func Summarize(costs []int) Summary {
	if len(costs) == 0 {
		return Summary{}
	}

	sorted := append([]int{}, costs...)
	sort.Ints(sorted)

	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		median = float64(sorted[mid-1]+sorted[mid]) / 2
	} else {
		median = float64(sorted[mid])
	}

	return Summary{
		Mean:   mean(costs),
		Median: median,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
	}
}

func mean(costs []int) float64 {
	if len(costs) == 0 {
		return 0
	}
	sum := 0
	for _, c := range costs {
		sum += c
	}
	return float64(sum) / float64(len(costs))
}

// histogramBins is the bin count of the text histograms; values past the
// last regular bin fall into an overflow bin.
const histogramBins = 10

// Histogram renders a text histogram of the costs using mark as the fill
// character, one line per bin with its value range and count.
func Histogram(costs []int, mark byte) string {
	if len(costs) == 0 {
		return ""
	}

	minV, maxV := costs[0], costs[0]
	for _, v := range costs {
		if v < minV {
			minV = v
		}
		if v > maxV {
			maxV = v
		}
	}

	width := float64(maxV-minV) / histogramBins
	if width == 0 {
		width = 1
	}

	hist := make([]int, histogramBins+1)
	for _, v := range costs {
		idx := int(float64(v-minV) / width)
		if idx > histogramBins {
			idx = histogramBins
		}
		hist[idx]++
	}

	var b strings.Builder
	for i := 0; i <= histogramBins; i++ {
		lo := float64(minV) + float64(i)*width
		bar := strings.Repeat(string(mark), hist[i])
		if i == histogramBins {
			fmt.Fprintf(&b, "[%6.1f+       ] | %s (%d)\n", lo, bar, hist[i])
		} else {
			fmt.Fprintf(&b, "[%6.1f-%6.1f] | %s (%d)\n", lo, lo+width, bar, hist[i])
		}
	}
	return b.String()
}

// WriteReport renders the full experiment report: configuration, raw
// data, summary statistics, rank-by-rank comparison and histograms.
func (o *Outcome) WriteReport(w io.Writer) error {
	rnd := Summarize(o.RandomCosts)
	opt := Summarize(o.OptimizedCosts)

	var b strings.Builder

	b.WriteString("========================================\n")
	b.WriteString("   LABS Optimization Baseline Experiment\n")
	b.WriteString("========================================\n")
	fmt.Fprintf(&b, "Sequence Length (N): %d\n", o.Config.N)
	fmt.Fprintf(&b, "Trials:              %d\n", o.Config.Trials)
	fmt.Fprintf(&b, "Restarts per Trial:  %d\n", o.Config.Restarts)
	fmt.Fprintf(&b, "Seed:                %d\n", o.Config.Seed)
	fmt.Fprintf(&b, "Elapsed:             %s\n", o.Elapsed)

	b.WriteString("\n--- Raw Data ---\n")
	fmt.Fprintf(&b, "Random Costs:    %v\n", o.RandomCosts)
	fmt.Fprintf(&b, "Optimized Costs: %v\n", o.OptimizedCosts)

	b.WriteString("\n--- Summary Statistics ---\n")
	fmt.Fprintf(&b, "%-15s | %-15s | %-15s\n", "Metric", "Random", "Optimized")
	b.WriteString(strings.Repeat("-", 50) + "\n")
	fmt.Fprintf(&b, "%-15s | %-15.2f | %-15.2f\n", "Average Cost", rnd.Mean, opt.Mean)
	fmt.Fprintf(&b, "%-15s | %-15.2f | %-15.2f\n", "Median Cost", rnd.Median, opt.Median)
	fmt.Fprintf(&b, "%-15s | %-15d | %-15d\n", "Best (Min)", rnd.Min, opt.Min)
	fmt.Fprintf(&b, "%-15s | %-15d | %-15d\n", "Worst (Max)", rnd.Max, opt.Max)

	diff := rnd.Mean - opt.Mean
	var pct float64
	if rnd.Mean > 0 {
		pct = diff / rnd.Mean * 100
	}
	b.WriteString(strings.Repeat("-", 50) + "\n")
	fmt.Fprintf(&b, "Improvement: %.2f points (%.1f%%)\n", diff, pct)

	b.WriteString("\n--- Cost Comparison (Ascending Sort) ---\n")
	sortedRnd := append([]int{}, o.RandomCosts...)
	sortedOpt := append([]int{}, o.OptimizedCosts...)
	sort.Ints(sortedRnd)
	sort.Ints(sortedOpt)
	for i := range sortedRnd {
		fmt.Fprintf(&b, "Rank %2d: Random %4d  vs  Optimized %4d\n", i+1, sortedRnd[i], sortedOpt[i])
	}

	b.WriteString("\n--- Cost Histogram (Text-Based) ---\n")
	b.WriteString("\nRandom Costs:\n")
	b.WriteString(Histogram(o.RandomCosts, '#'))
	b.WriteString("\nOptimized Costs:\n")
	b.WriteString(Histogram(o.OptimizedCosts, '@'))

	_, err := io.WriteString(w, b.String())
	return err
}
