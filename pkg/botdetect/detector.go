package botdetect

import (
	_ "embed"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

//go:embed bots.yaml
var botsYAML []byte

// Detection reasons, for operator diagnostics and the bot event payload.
const (
	ReasonSignature  = "known_bot_signature"
	ReasonPattern    = "bot_pattern"
	ReasonClient     = "automation_client"
	ReasonHeadless   = "headless_browser"
	ReasonSuspicious = "suspicious_user_agent"
)

// Result is a detection verdict. Name is best-effort: pattern and client
// hits derive it from the matched token, suspicious agents carry none.
type Result struct {
	Bot    bool
	Name   string
	Reason string
}

type table struct {
	Signatures []signature `yaml:"signatures"`
	Patterns   []string    `yaml:"patterns"`
	Clients    []string    `yaml:"clients"`
	Headless   []string    `yaml:"headless"`
}

type signature struct {
	Name    string   `yaml:"name"`
	Matches []string `yaml:"matches"`
}

// Detector matches user agents against the embedded signature table.
// Construct one per tracker instance; the detector itself is stateless
// after construction and safe for concurrent use.
type Detector struct {
	table    table
	patterns []*regexp.Regexp
	caser    cases.Caser
}

// New parses the embedded table and compiles the generic suffix patterns.
// The table ships with the binary, so a parse failure is a build defect
// and panics.
func New() *Detector {
	var t table
	if err := yaml.Unmarshal(botsYAML, &t); err != nil {
		panic(fmt.Sprintf("botdetect: embedded bot table is invalid: %v", err))
	}

	patterns := make([]*regexp.Regexp, 0, len(t.Patterns))
	for _, suffix := range t.Patterns {
		patterns = append(patterns, regexp.MustCompile(`(?i)([a-z0-9\-_]+`+regexp.QuoteMeta(suffix)+`)`))
	}

	return &Detector{
		table:    t,
		patterns: patterns,
		caser:    cases.Title(language.English),
	}
}

// Detect classifies a raw user agent string. Known signatures are checked
// first, then headless markers, automation clients, and generic crawler
// suffixes; what remains is screened with the suspicious-agent heuristics.
func (d *Detector) Detect(userAgent string) Result {
	ua := strings.ToLower(strings.TrimSpace(userAgent))

	for _, sig := range d.table.Signatures {
		for _, match := range sig.Matches {
			if strings.Contains(ua, match) {
				return Result{Bot: true, Name: sig.Name, Reason: ReasonSignature}
			}
		}
	}

	for _, marker := range d.table.Headless {
		if strings.Contains(ua, marker) {
			return Result{Bot: true, Name: d.caser.String(marker), Reason: ReasonHeadless}
		}
	}

	for _, client := range d.table.Clients {
		if strings.Contains(ua, client) {
			name := strings.TrimSuffix(client, "/")
			return Result{Bot: true, Name: d.caser.String(name), Reason: ReasonClient}
		}
	}

	for _, re := range d.patterns {
		if m := re.FindString(ua); m != "" {
			return Result{Bot: true, Name: d.caser.String(m), Reason: ReasonPattern}
		}
	}

	if d.suspicious(ua) {
		return Result{Bot: true, Reason: ReasonSuspicious}
	}

	return Result{}
}

// browserMarkers are tokens any real browser carries. Their complete
// absence in a non-trivial user agent is treated as suspicious.
var browserMarkers = []string{"mozilla", "chrome", "safari", "firefox", "opera", "edg"}

func (d *Detector) suspicious(ua string) bool {
	if len(ua) < 10 {
		return true
	}
	for _, marker := range browserMarkers {
		if strings.Contains(ua, marker) {
			return false
		}
	}
	return true
}
