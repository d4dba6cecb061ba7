package backtest

import (
	"fmt"
	"time"
)

var ratingOrder = []string{"STRONG BUY", "BUY", "OUTPERFORM", "HOLD", "UNDERPERFORM", "SELL"}

// PrintReport prints the full back-test summary to stdout: sample counts,
// per-tier accuracy tables for both score types, and the best and worst
// three-month calls.
func PrintReport(ticker string, results []Result, start, end time.Time) {
	fmt.Println("=====================================")
	fmt.Printf("BACKTEST REPORT: %s\n", ticker)
	fmt.Printf("Period: %s to %s\n", start.Format("2006-01-02"), end.Format("2006-01-02"))
	fmt.Printf("Samples: %d\n", len(results))
	fmt.Println("=====================================")

	if len(results) == 0 {
		fmt.Println("No samples scored (not enough price history).")
		return
	}

	printAccuracyTable("TRADE SCORE", EvaluateAccuracy(results, "trade"))
	printAccuracyTable("INVESTMENT SCORE", EvaluateAccuracy(results, "investment"))
	printSummary(results)
	printExtremes(results)
}

func printAccuracyTable(title string, stats map[string]AccuracyStats) {
	fmt.Printf("\n--- %s ACCURACY ---\n", title)
	fmt.Printf("%-14s %5s | %8s %8s | %8s %8s | %8s %8s\n",
		"Rating", "N", "Win 2W", "Avg 2W", "Win 1M", "Avg 1M", "Win 3M", "Avg 3M")

	for _, rating := range ratingOrder {
		s, ok := stats[rating]
		if !ok {
			continue
		}
		fmt.Printf("%-14s %5d | %7.1f%% %+7.2f%% | %7.1f%% %+7.2f%% | %7.1f%% %+7.2f%%\n",
			s.Rating, s.Count,
			s.PositiveRate2W*100, s.AvgReturn2W*100,
			s.PositiveRate1M*100, s.AvgReturn1M*100,
			s.PositiveRate3M*100, s.AvgReturn3M*100)
	}
}

func printSummary(results []Result) {
	tradeSum, investSum := 0, 0
	for _, r := range results {
		tradeSum += r.TradeScore
		investSum += r.InvestmentScore
	}
	fmt.Println("\n--- SUMMARY ---")
	fmt.Printf("Average Trade Score:      %.1f\n", float64(tradeSum)/float64(len(results)))
	fmt.Printf("Average Investment Score: %.1f\n", float64(investSum)/float64(len(results)))
}

func printExtremes(results []Result) {
	graded := make([]Result, 0, len(results))
	for _, r := range results {
		if r.Return3M != nil {
			graded = append(graded, r)
		}
	}
	if len(graded) == 0 {
		return
	}

	best, worst := graded[0], graded[0]
	for _, r := range graded[1:] {
		if *r.Return3M > *best.Return3M {
			best = r
		}
		if *r.Return3M < *worst.Return3M {
			worst = r
		}
	}

	fmt.Println("\n--- 3-MONTH EXTREMES ---")
	fmt.Printf("Best:  %s  trade=%d (%s)  invest=%d (%s)  return %+.1f%%\n",
		best.Date.Format("2006-01-02"), best.TradeScore, best.TradeRating,
		best.InvestmentScore, best.InvestmentRating, *best.Return3M*100)
	fmt.Printf("Worst: %s  trade=%d (%s)  invest=%d (%s)  return %+.1f%%\n",
		worst.Date.Format("2006-01-02"), worst.TradeScore, worst.TradeRating,
		worst.InvestmentScore, worst.InvestmentRating, *worst.Return3M*100)
}
