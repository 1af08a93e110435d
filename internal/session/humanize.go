package session

import (
	"fmt"
	"math"
	"time"

	humanize "github.com/dustin/go-humanize"
)

// Unit is the smallest unit a relative-time phrase may mention.
type Unit int

const (
	Second Unit = iota
	Minute
	Hour
	Day
)

// ParseUnit reads a granularity name from configuration.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "second":
		return Second, nil
	case "minute":
		return Minute, nil
	case "hour":
		return Hour, nil
	case "day":
		return Day, nil
	}
	return 0, fmt.Errorf("unknown granularity %q (want second, minute, hour or day)", s)
}

// relTail holds the magnitude buckets from seconds upward. Per-unit
// tables slice into it so coarser granularities skip the fine buckets.
var relTail = []humanize.RelTimeMagnitude{
	{D: 2 * time.Second, Format: "1 second %s", DivBy: 1},
	{D: time.Minute, Format: "%d seconds %s", DivBy: time.Second},
	{D: 2 * time.Minute, Format: "1 minute %s", DivBy: 1},
	{D: time.Hour, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 2 * time.Hour, Format: "1 hour %s", DivBy: 1},
	{D: humanize.Day, Format: "%d hours %s", DivBy: time.Hour},
	{D: 2 * humanize.Day, Format: "1 day %s", DivBy: 1},
	{D: humanize.Week, Format: "%d days %s", DivBy: humanize.Day},
	{D: 2 * humanize.Week, Format: "1 week %s", DivBy: 1},
	{D: humanize.Month, Format: "%d weeks %s", DivBy: humanize.Week},
	{D: 2 * humanize.Month, Format: "1 month %s", DivBy: 1},
	{D: humanize.Year, Format: "%d months %s", DivBy: humanize.Month},
	{D: 2 * humanize.Year, Format: "1 year %s", DivBy: 1},
	{D: math.MaxInt64, Format: "%d years %s", DivBy: humanize.Year},
}

// unitCut maps each Unit to its just-now threshold and the index of the
// first relTail bucket it keeps.
var unitCut = map[Unit]struct {
	threshold time.Duration
	tail      int
}{
	Second: {time.Second, 0},
	Minute: {time.Minute, 2},
	Hour:   {time.Hour, 4},
	Day:    {humanize.Day, 6},
}

// Relative phrases the distance between t and now ("3 hours ago"),
// never mentioning anything finer than unit. Purely presentational.
func Relative(t, now time.Time, unit Unit) string {
	cut := unitCut[unit]
	mags := make([]humanize.RelTimeMagnitude, 0, 1+len(relTail)-cut.tail)
	mags = append(mags, humanize.RelTimeMagnitude{D: cut.threshold, Format: "just now", DivBy: 1})
	mags = append(mags, relTail[cut.tail:]...)
	return humanize.CustomRelTime(t, now, "ago", "from now", mags)
}
