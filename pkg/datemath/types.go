package datemath

// minuteLayout is the canonical wall-clock form used in prompts and replies.
const minuteLayout = "2006-01-02 15:04"

// epochMillisThreshold separates second-based from millisecond-based epoch
// values. Anything below it is taken as seconds.
const epochMillisThreshold = 1_000_000_000_000

// layout is one step of the string fallback chain.
type layout struct {
	format string
	// zoned layouts carry their own offset.
	zoned bool
	// yearless layouts take the year of the reference time.
	yearless bool
	// clockOnly layouts take the date of the reference time.
	clockOnly bool
}

// layouts is tried in order; the first match wins.
var layouts = []layout{
	{format: minuteLayout},
	{format: "2006-01-02T15:04:05Z07:00", zoned: true},
	{format: "2006-01-02T15:04:05"},
	{format: "2006-01-02T15:04"},
	{format: "01-02 15:04", yearless: true},
	{format: "01/02 15:04", yearless: true},
	{format: "15:04", clockOnly: true},
	{format: "2006-01-02"},
}
