package edge

import (
	"net"
	"net/http"
	"net/url"
	"strings"

	"github.com/dmitrymomot/trackkit"
)

// ClientIP returns the client address from the request. Priority order
// follows the proxy chains the SDK is deployed behind:
//  1. CF-Connecting-IP (Cloudflare)
//  2. X-Forwarded-For (standard proxy header, first valid entry)
//  3. X-Real-IP (nginx)
//  4. RemoteAddr (direct connection)
func ClientIP(r *http.Request) string {
	if ip := parseIP(r.Header.Get("CF-Connecting-IP")); ip != "" {
		return ip
	}

	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		for part := range strings.SplitSeq(forwarded, ",") {
			if ip := parseIP(part); ip != "" {
				return ip
			}
		}
	}

	if ip := parseIP(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

// parseIP validates and normalizes an IP address string. Invalid input
// returns an empty string.
func parseIP(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	ip := net.ParseIP(s)
	if ip == nil {
		return ""
	}
	return ip.String()
}

// geoHeader reads a Vercel geo header with a Cloudflare fallback. Vercel
// URL-encodes non-ASCII values ("S%C3%A3o%20Paulo"), so decode when
// possible.
func geoHeader(r *http.Request, vercel, cloudflare string) string {
	v := r.Header.Get(vercel)
	if v == "" && cloudflare != "" {
		v = r.Header.Get(cloudflare)
	}
	if decoded, err := url.QueryUnescape(v); err == nil {
		return decoded
	}
	return v
}

// FromRequest builds tracker props from an inbound request: client IP,
// the x-vercel-ip-* geo family (with cf-* fallbacks), deployment context,
// and the raw user agent. Fields the edge did not supply stay empty; the
// host fills client-side context (screen, viewport, username) itself.
func FromRequest(r *http.Request) trackkit.Props {
	proto := r.Header.Get("X-Forwarded-Proto")
	if proto == "" {
		proto = "http"
		if r.TLS != nil {
			proto = "https"
		}
	}

	return trackkit.Props{
		IP:            ClientIP(r),
		Country:       geoHeader(r, "x-vercel-ip-country", "cf-ipcountry"),
		City:          geoHeader(r, "x-vercel-ip-city", ""),
		Region:        geoHeader(r, "x-vercel-ip-country-region", ""),
		Continent:     geoHeader(r, "x-vercel-ip-continent", ""),
		Latitude:      geoHeader(r, "x-vercel-ip-latitude", ""),
		Longitude:     geoHeader(r, "x-vercel-ip-longitude", ""),
		Timezone:      geoHeader(r, "x-vercel-ip-timezone", "cf-timezone"),
		PostalCode:    geoHeader(r, "x-vercel-ip-postal-code", ""),
		Host:          r.Host,
		Protocol:      proto,
		DeploymentURL: r.Header.Get("x-vercel-deployment-url"),
		EdgeRegion:    r.Header.Get("x-vercel-id"),
		UserAgent:     r.UserAgent(),
		Referrer:      r.Referer(),
		Locale:        r.Header.Get("Accept-Language"),
	}
}
