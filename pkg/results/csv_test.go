package results

import (
	"bytes"
	"strings"
	"testing"

	"flipseven-simulator/pkg/simulator"

	"github.com/bmizerany/assert"
)

func TestWriteCSV(t *testing.T) {
	stats := []simulator.StrategyStats{
		{
			Strategy:       "CardCount_5",
			Position:       0,
			Games:          100,
			Wins:           40,
			WinRate:        0.4,
			WinRateLow:     0.31,
			WinRateHigh:    0.50,
			TotalScore:     21000,
			AvgScore:       210,
			AvgRoundsToWin: 8.5,
			Busts:          12,
			FlipSevens:     3,
		},
		{
			Strategy: "PointThreshold_45",
			Position: 1,
			Games:    100,
			Wins:     60,
			WinRate:  0.6,
		},
	}

	var buf bytes.Buffer
	err := WriteCSV(&buf, stats)
	assert.Equal(t, nil, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, 3, len(lines))
	assert.Equal(t, "strategy,position,games,wins,win_rate,win_rate_low,win_rate_high,avg_score,avg_rounds_to_win,busts,flip_sevens", lines[0])
	assert.Equal(t, "CardCount_5,0,100,40,0.4000,0.3100,0.5000,210.0000,8.5000,12,3", lines[1])
	assert.Equal(t, "PointThreshold_45,1,100,60,0.6000,0.0000,0.0000,0.0000,0.0000,0,0", lines[2])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, nil)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(strings.Split(strings.TrimSpace(buf.String()), "\n")))
}
