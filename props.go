package trackkit

// Props carries the inbound context the hosting page or edge runtime knows
// about the client. The tracker treats every field as given: nothing here
// is derived or validated, it is copied into outbound events as-is.
type Props struct {
	// IP is the client address as resolved at the edge.
	IP string

	// Server-enriched geo fields.
	Country    string
	City       string
	Region     string
	Continent  string
	Latitude   string
	Longitude  string
	Timezone   string
	PostalCode string

	// Deployment context.
	Host          string
	Protocol      string
	DeploymentURL string
	EdgeRegion    string

	// UserAgent is the raw user agent string, fed to bot detection and
	// the anonymous fingerprint.
	UserAgent string

	// Referrer is attached to the first pageview only.
	Referrer string

	// Username is the authenticated-identity hint. When set, visitor ids
	// derive from it and the visitor is never reported as new.
	Username string

	// Client context, reported by the page.
	ScreenResolution string // "WxH"
	ViewportSize     string // "WxH"
	ConnectionType   string
	ClientTimezone   string
	Locale           string
}

// fingerprintComponents returns the composite-fingerprint inputs used when
// neither a username nor a usable IP is available.
func (p Props) fingerprintComponents() []string {
	return []string{p.UserAgent, p.Locale, p.ScreenResolution, p.ClientTimezone}
}
