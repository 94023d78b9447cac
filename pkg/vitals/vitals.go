package vitals

// Rating buckets a metric value against the published Web Vitals
// thresholds.
type Rating string

const (
	RatingGood             Rating = "good"
	RatingNeedsImprovement Rating = "needs-improvement"
	RatingPoor             Rating = "poor"
)

// Metric names, as reported by the web-vitals library on the page.
const (
	LCP  = "LCP"  // Largest Contentful Paint, ms
	CLS  = "CLS"  // Cumulative Layout Shift, unitless score
	FCP  = "FCP"  // First Contentful Paint, ms
	INP  = "INP"  // Interaction to Next Paint, ms
	TTFB = "TTFB" // Time to First Byte, ms
	FID  = "FID"  // First Input Delay, ms (superseded by INP, still reported)
)

// Metric is one Web Vitals measurement as collected on the page. The
// tracker fills Path and Rating when the collector left them empty.
type Metric struct {
	Name           string  `json:"name"`
	Value          float64 `json:"value"`
	Rating         Rating  `json:"rating,omitempty"`
	Path           string  `json:"path,omitempty"`
	NavigationType string  `json:"navigation_type,omitempty"`
}

// thresholds holds the good/poor boundaries per metric. Values between
// them rate needs-improvement.
var thresholds = map[string][2]float64{
	LCP:  {2500, 4000},
	CLS:  {0.1, 0.25},
	FCP:  {1800, 3000},
	INP:  {200, 500},
	TTFB: {800, 1800},
	FID:  {100, 300},
}

// Rate buckets a value against the metric's published thresholds. Unknown
// metric names rate empty so callers can pass ratings through unchanged.
func Rate(name string, value float64) Rating {
	t, ok := thresholds[name]
	if !ok {
		return ""
	}
	switch {
	case value <= t[0]:
		return RatingGood
	case value <= t[1]:
		return RatingNeedsImprovement
	default:
		return RatingPoor
	}
}
