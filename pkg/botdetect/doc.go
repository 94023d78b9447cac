// Package botdetect classifies user agents against a flat lookup table of
// known bot signatures, generic crawler suffixes, automation clients, and
// headless browser markers, with a suspicious-agent heuristic as the last
// line.
//
// The table is embedded at build time from bots.yaml; there is no taxonomy
// beyond the flat list and no runtime reloading. The detector carries all
// of its state in the constructed instance, so tests get a fresh table per
// Detector and nothing lives at module level.
//
// # Usage
//
//	import "github.com/dmitrymomot/trackkit/pkg/botdetect"
//
//	detector := botdetect.New()
//	if res := detector.Detect(r.UserAgent()); res.Bot {
//		// suppress tracking, optionally report res.Name / res.Reason
//	}
package botdetect
