package trackkit

import "time"

// Version is the SDK version tag attached to every outbound event.
const Version = "0.3.0"

// Event types emitted by the engine.
const (
	EventPageview     = "pageview"
	EventSessionStart = "session_start"
	EventHeartbeat    = "heartbeat"
)

// Event is the flat, versioned payload delivered to the ingestion
// endpoint. It is append-only and fire-and-forget: the engine never reads
// one back.
type Event struct {
	SiteID       string `json:"site_id"`
	Path         string `json:"path"`
	VisitorID    string `json:"visitor_id"`
	SessionID    string `json:"session_id"`
	EventType    string `json:"event_type"`
	IsNewVisitor bool   `json:"is_new_visitor"`

	// Referrer is set on the first pageview only.
	Referrer string `json:"referrer,omitempty"`

	// Client context.
	ScreenResolution string    `json:"screen_resolution,omitempty"`
	ViewportSize     string    `json:"viewport_size,omitempty"`
	ConnectionType   string    `json:"connection_type,omitempty"`
	Timezone         string    `json:"timezone,omitempty"`
	SessionStartTime time.Time `json:"session_start_time"`

	// Server-enriched network and geo context.
	IP            string `json:"ip,omitempty"`
	Country       string `json:"country,omitempty"`
	City          string `json:"city,omitempty"`
	Region        string `json:"region,omitempty"`
	Continent     string `json:"continent,omitempty"`
	Latitude      string `json:"latitude,omitempty"`
	Longitude     string `json:"longitude,omitempty"`
	PostalCode    string `json:"postal_code,omitempty"`
	Host          string `json:"host,omitempty"`
	Protocol      string `json:"protocol,omitempty"`
	DeploymentURL string `json:"deployment_url,omitempty"`
	EdgeRegion    string `json:"edge_region,omitempty"`

	Username   string `json:"username,omitempty"`
	SDKVersion string `json:"sdk_version"`
}

// VitalsEvent is the performance payload delivered on the vitals route.
type VitalsEvent struct {
	SiteID         string  `json:"site_id"`
	Path           string  `json:"path"`
	VisitorID      string  `json:"visitor_id,omitempty"`
	SessionID      string  `json:"session_id,omitempty"`
	Name           string  `json:"name"`
	Value          float64 `json:"value"`
	Rating         string  `json:"rating,omitempty"`
	NavigationType string  `json:"navigation_type,omitempty"`
	SDKVersion     string  `json:"sdk_version"`
}

// BotEvent reports a suppressed bot visit. It goes out once, right before
// the tracker disables itself for the client.
type BotEvent struct {
	SiteID     string `json:"site_id"`
	Path       string `json:"path"`
	UserAgent  string `json:"user_agent"`
	BotName    string `json:"bot_name,omitempty"`
	Reason     string `json:"reason"`
	IP         string `json:"ip,omitempty"`
	SDKVersion string `json:"sdk_version"`
}
