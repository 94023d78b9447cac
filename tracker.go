package trackkit

import (
	"context"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/dmitrymomot/trackkit/pkg/botdetect"
	"github.com/dmitrymomot/trackkit/pkg/environment"
	"github.com/dmitrymomot/trackkit/pkg/heartbeat"
	"github.com/dmitrymomot/trackkit/pkg/logger"
	"github.com/dmitrymomot/trackkit/pkg/session"
	"github.com/dmitrymomot/trackkit/pkg/storage"
	"github.com/dmitrymomot/trackkit/pkg/throttle"
	"github.com/dmitrymomot/trackkit/pkg/transmit"
	"github.com/dmitrymomot/trackkit/pkg/visitor"
	"github.com/dmitrymomot/trackkit/pkg/vitals"
)

// namespace prefixes every storage key the tracker writes.
const namespace = "tk"

// Tracker is the session/heartbeat engine for one visitor runtime. The
// hosting application feeds signals in — Page on mount and route changes,
// Activity on genuine interaction, SetVisible on visibility changes — and
// the tracker decides what to emit and when to check again.
//
// Outside a production environment the tracker is inert: every method is a
// cheap no-op. A bot verdict on the first Page disables it permanently.
// No method ever returns an error or panics into the host; failures are
// logged and swallowed.
type Tracker struct {
	mu     sync.Mutex
	config Config
	props  Props
	log    *slog.Logger

	enabled     bool
	initialized bool
	closed      bool
	path        string

	sessionID    string
	sessionStart time.Time
	visitorID    string
	isNewVisitor bool
	username     string

	sessions  *session.Manager
	visitors  *visitor.Resolver
	detector  *botdetect.Detector
	tx        *transmit.Transmitter
	scheduler *heartbeat.Scheduler
	activity  *throttle.Throttle

	// option holders, consumed during construction
	durable     storage.Store
	scoped      storage.Store
	httpClient  *http.Client
	hbIntervals []time.Duration
}

// New creates a tracker. Construction never fails: a non-production
// environment or missing site id yields a disabled tracker whose methods
// no-op, and an invalid endpoint is reported once by the transmitter on
// first use.
func New(cfg Config, opts ...Option) *Tracker {
	cfg = cfg.withDefaults()

	t := &Tracker{
		config: cfg,
		log:    logger.Discard(),
	}
	for _, opt := range opts {
		opt(t)
	}

	// Events carry the derived slug, never the raw identity hint.
	if t.props.Username != "" {
		t.username = visitor.Slugify(t.props.Username)
	}

	if environment.Parse(cfg.Environment) != environment.Production {
		return t
	}
	if cfg.SiteID == "" {
		t.log.Warn("tracking disabled", logger.Error(ErrMissingSiteID))
		return t
	}
	t.enabled = true

	if t.scoped == nil {
		t.scoped = storage.NewMemoryStore()
	}
	if t.durable == nil {
		t.durable = storage.NewMemoryStore()
	}
	scoped := storage.Namespaced(t.scoped, namespace)
	durable := storage.Namespaced(t.durable, namespace)

	t.sessions = session.New(scoped,
		session.WithTimeout(cfg.SessionTimeout),
		session.WithLogger(t.log),
	)
	t.visitors = visitor.New(durable, scoped, visitor.WithLogger(t.log))
	t.detector = botdetect.New()

	txOpts := []transmit.Option{transmit.WithLogger(t.log)}
	if t.httpClient != nil {
		txOpts = append(txOpts, transmit.WithHTTPClient(t.httpClient))
	}
	t.tx = transmit.New(transmit.Config{
		Endpoint:     cfg.Endpoint,
		SendTimeout:  cfg.SendTimeout,
		CloseTimeout: transmit.DefaultConfig().CloseTimeout,
		SDKVersion:   Version,
	}, txOpts...)

	hbOpts := []heartbeat.Option{
		heartbeat.WithSoftIdleTimeout(cfg.SoftIdleTimeout),
		heartbeat.WithHardTimeout(cfg.SessionTimeout),
		heartbeat.WithLogger(t.log),
	}
	if len(t.hbIntervals) > 0 {
		hbOpts = append(hbOpts, heartbeat.WithIntervals(t.hbIntervals...))
	}
	t.scheduler = heartbeat.New(t.sessionIdle, t.emitHeartbeat, hbOpts...)

	t.activity = throttle.New(cfg.ActivityThrottle, t.onActivity)

	return t
}

// Page handles mount and route changes. The first call resolves the
// session and visitor, emits session_start when the session is fresh plus
// the initial pageview (with referrer), and starts the heartbeat loop — or
// detects a bot, reports it once, and shuts the tracker down. Repeating
// the same path is a no-op; a changed path counts as activity and emits a
// pageview for the new path.
func (t *Tracker) Page(ctx context.Context, path string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.enabled || t.closed {
		return
	}

	if !t.initialized {
		t.initialized = true
		t.path = path

		if res := t.detector.Detect(t.props.UserAgent); res.Bot {
			t.enabled = false
			t.log.InfoContext(ctx, "bot detected, tracking disabled",
				slog.String("bot_name", res.Name),
				slog.String("reason", res.Reason),
			)
			t.send(ctx, transmit.CategoryBot, BotEvent{
				SiteID:     t.config.SiteID,
				Path:       path,
				UserAgent:  t.props.UserAgent,
				BotName:    res.Name,
				Reason:     res.Reason,
				IP:         t.props.IP,
				SDKVersion: Version,
			})
			return
		}

		s, isNew := t.sessions.Resolve(ctx)
		t.sessionID, t.sessionStart = s.ID, s.StartedAt
		t.visitorID, t.isNewVisitor = t.visitors.Resolve(ctx, s.ID, t.identity())

		if isNew && t.sessions.MarkStarted(ctx, s.ID) {
			t.send(ctx, transmit.CategoryEvent, t.eventLocked(EventSessionStart, ""))
		}
		t.send(ctx, transmit.CategoryEvent, t.eventLocked(EventPageview, t.props.Referrer))
		t.scheduler.Schedule()
		return
	}

	if path == t.path {
		// Re-invocation with the same path must not double-emit.
		return
	}

	t.path = path
	t.recordActivityLocked(ctx, false)
	t.send(ctx, transmit.CategoryEvent, t.eventLocked(EventPageview, ""))
}

// Activity reports genuine user interaction: click, keydown, touchstart,
// scroll. Calls are throttled with leading plus trailing semantics, so
// bursts collapse without losing the last interaction before idle.
func (t *Tracker) Activity() {
	t.mu.Lock()
	active := t.enabled && !t.closed && t.initialized
	th := t.activity
	t.mu.Unlock()

	if active {
		th.Call()
	}
}

// onActivity is the throttled activity handler.
func (t *Tracker) onActivity() {
	ctx := context.Background()

	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.enabled || t.closed || !t.initialized {
		return
	}
	t.recordActivityLocked(ctx, true)
}

// recordActivityLocked renews the session when the old one has timed out,
// moves the activity clock, and snaps the heartbeat cadence back to its
// minimum. A freshly minted session emits session_start and, unless the
// caller emits its own pageview, a pageview for the current path.
func (t *Tracker) recordActivityLocked(ctx context.Context, emitPageview bool) {
	s, isNew := t.sessions.Resolve(ctx)
	if isNew {
		t.sessionID, t.sessionStart = s.ID, s.StartedAt
		t.visitorID, t.isNewVisitor = t.visitors.Resolve(ctx, s.ID, t.identity())
		if t.sessions.MarkStarted(ctx, s.ID) {
			t.send(ctx, transmit.CategoryEvent, t.eventLocked(EventSessionStart, ""))
			if emitPageview {
				t.send(ctx, transmit.CategoryEvent, t.eventLocked(EventPageview, ""))
			}
		}
	}
	t.sessions.Touch(ctx)
	t.scheduler.Poke()
}

// SetVisible reports tab visibility. Hiding cancels the pending heartbeat
// immediately; becoming visible restarts the loop but is deliberately not
// user activity — only real interaction moves the session clock, so a
// merely-watched tab cannot extend a session forever.
func (t *Tracker) SetVisible(visible bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.enabled || t.closed || !t.initialized {
		return
	}
	if visible {
		t.scheduler.Resume()
	} else {
		t.scheduler.Pause()
	}
}

// Vitals forwards one Web Vitals measurement. The metric is rated against
// the published thresholds when the caller did not rate it, stamped with
// the current page and identifiers, and delivered on the vitals route.
func (t *Tracker) Vitals(ctx context.Context, m vitals.Metric) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.enabled || t.closed {
		return
	}
	if m.Path == "" {
		m.Path = t.path
	}
	if m.Rating == "" {
		m.Rating = vitals.Rate(m.Name, m.Value)
	}
	t.send(ctx, transmit.CategoryVitals, VitalsEvent{
		SiteID:         t.config.SiteID,
		Path:           m.Path,
		VisitorID:      t.visitorID,
		SessionID:      t.sessionID,
		Name:           m.Name,
		Value:          m.Value,
		Rating:         string(m.Rating),
		NavigationType: m.NavigationType,
		SDKVersion:     Version,
	})
}

// Close releases the heartbeat timer and the throttle, and gives in-flight
// deliveries a short grace period. The tracker is unusable afterwards;
// remounting means constructing a new one.
func (t *Tracker) Close() {
	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true
	activity, scheduler, tx := t.activity, t.scheduler, t.tx
	t.mu.Unlock()

	// Collaborators take their own locks; release ours first so a
	// concurrently firing timer cannot deadlock against Close.
	if activity != nil {
		activity.Close()
	}
	if scheduler != nil {
		scheduler.Close()
	}
	if tx != nil {
		tx.Close()
	}
}

// Enabled reports whether the tracker is live: production environment,
// valid site, no bot verdict, not closed.
func (t *Tracker) Enabled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.enabled && !t.closed
}

// sessionIdle feeds the heartbeat scheduler. It reads persisted state
// directly so heartbeats observe only genuine activity.
func (t *Tracker) sessionIdle() time.Duration {
	return t.sessions.IdleFor(context.Background())
}

// emitHeartbeat is the scheduler's emission callback.
func (t *Tracker) emitHeartbeat() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.enabled || t.closed || !t.initialized {
		return
	}
	t.send(context.Background(), transmit.CategoryEvent, t.eventLocked(EventHeartbeat, ""))
}

func (t *Tracker) identity() visitor.Identity {
	return visitor.Identity{
		Username:   t.props.Username,
		IP:         t.props.IP,
		Components: t.props.fingerprintComponents(),
	}
}

// eventLocked assembles a fully-populated event record for the current
// page and identifiers.
func (t *Tracker) eventLocked(eventType, referrer string) Event {
	return Event{
		SiteID:           t.config.SiteID,
		Path:             t.path,
		VisitorID:        t.visitorID,
		SessionID:        t.sessionID,
		EventType:        eventType,
		IsNewVisitor:     t.isNewVisitor,
		Referrer:         referrer,
		ScreenResolution: t.props.ScreenResolution,
		ViewportSize:     t.props.ViewportSize,
		ConnectionType:   t.props.ConnectionType,
		Timezone:         t.props.ClientTimezone,
		SessionStartTime: t.sessionStart,
		IP:               t.props.IP,
		Country:          t.props.Country,
		City:             t.props.City,
		Region:           t.props.Region,
		Continent:        t.props.Continent,
		Latitude:         t.props.Latitude,
		Longitude:        t.props.Longitude,
		PostalCode:       t.props.PostalCode,
		Host:             t.props.Host,
		Protocol:         t.props.Protocol,
		DeploymentURL:    t.props.DeploymentURL,
		EdgeRegion:       t.props.EdgeRegion,
		Username:         t.username,
		SDKVersion:       Version,
	}
}

// send delivers fire-and-forget: the engine never waits on the network,
// and cancellation of the triggering request must not cancel delivery.
func (t *Tracker) send(ctx context.Context, category transmit.Category, payload any) {
	go t.tx.Send(context.WithoutCancel(ctx), category, payload)
}
