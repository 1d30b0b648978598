package results

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"flipseven-simulator/pkg/simulator"
)

var csvHeader = []string{
	"strategy", "position", "games", "wins", "win_rate",
	"win_rate_low", "win_rate_high", "avg_score", "avg_rounds_to_win",
	"busts", "flip_sevens",
}

// WriteCSV writes the per-strategy table as CSV
func WriteCSV(w io.Writer, stats []simulator.StrategyStats) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, st := range stats {
		record := []string{
			st.Strategy,
			strconv.Itoa(st.Position),
			strconv.Itoa(st.Games),
			strconv.Itoa(st.Wins),
			formatFloat(st.WinRate),
			formatFloat(st.WinRateLow),
			formatFloat(st.WinRateHigh),
			formatFloat(st.AvgScore),
			formatFloat(st.AvgRoundsToWin),
			strconv.Itoa(st.Busts),
			strconv.Itoa(st.FlipSevens),
		}

		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(f float64) string {
	return fmt.Sprintf("%.4f", f)
}
