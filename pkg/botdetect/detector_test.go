package botdetect_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/trackkit/pkg/botdetect"
)

const (
	chromeUA  = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/126.0.0.0 Safari/537.36"
	safariUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_5 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.5 Mobile/15E148 Safari/604.1"
	firefoxUA = "Mozilla/5.0 (X11; Linux x86_64; rv:127.0) Gecko/20100101 Firefox/127.0"
)

func TestDetector_KnownSignatures(t *testing.T) {
	t.Parallel()

	detector := botdetect.New()

	tests := []struct {
		ua   string
		name string
	}{
		{"Mozilla/5.0 (compatible; Googlebot/2.1; +http://www.google.com/bot.html)", "Googlebot"},
		{"Mozilla/5.0 (compatible; bingbot/2.0; +http://www.bing.com/bingbot.htm)", "Bingbot"},
		{"facebookexternalhit/1.1 (+http://www.facebook.com/externalhit_uatext.php)", "Facebook"},
		{"Twitterbot/1.0", "Twitterbot"},
		{"Slackbot-LinkExpanding 1.0 (+https://api.slack.com/robots)", "Slackbot"},
		{"Mozilla/5.0 (compatible; SemrushBot/7~bl; +http://www.semrush.com/bot.html)", "Semrushbot"},
		{"Mozilla/5.0 AppleWebKit/537.36 (compatible; GPTBot/1.0; +https://openai.com/gptbot)", "GPTBot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res := detector.Detect(tt.ua)
			assert.True(t, res.Bot)
			assert.Equal(t, tt.name, res.Name)
			assert.Equal(t, botdetect.ReasonSignature, res.Reason)
		})
	}
}

func TestDetector_PatternsAndClients(t *testing.T) {
	t.Parallel()

	detector := botdetect.New()

	t.Run("generic suffix derives the name", func(t *testing.T) {
		t.Parallel()

		res := detector.Detect("Mozilla/5.0 (compatible; examplebot/1.2)")
		assert.True(t, res.Bot)
		assert.Equal(t, "Examplebot", res.Name)
		assert.Equal(t, botdetect.ReasonPattern, res.Reason)
	})

	t.Run("crawler suffix", func(t *testing.T) {
		t.Parallel()

		res := detector.Detect("Mozilla/5.0 (compatible; acme-crawler/0.9)")
		assert.True(t, res.Bot)
		assert.Equal(t, botdetect.ReasonPattern, res.Reason)
	})

	t.Run("automation clients", func(t *testing.T) {
		t.Parallel()

		for _, ua := range []string{"curl/8.4.0", "python-requests/2.31.0", "Go-http-client/2.0"} {
			res := detector.Detect(ua)
			assert.True(t, res.Bot, ua)
			assert.Equal(t, botdetect.ReasonClient, res.Reason, ua)
			assert.NotEmpty(t, res.Name, ua)
		}
	})

	t.Run("headless browsers", func(t *testing.T) {
		t.Parallel()

		res := detector.Detect("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) HeadlessChrome/126.0.0.0 Safari/537.36")
		assert.True(t, res.Bot)
		assert.Equal(t, botdetect.ReasonHeadless, res.Reason)
	})
}

func TestDetector_Suspicious(t *testing.T) {
	t.Parallel()

	detector := botdetect.New()

	t.Run("empty user agent", func(t *testing.T) {
		t.Parallel()

		res := detector.Detect("")
		assert.True(t, res.Bot)
		assert.Equal(t, botdetect.ReasonSuspicious, res.Reason)
	})

	t.Run("very short user agent", func(t *testing.T) {
		t.Parallel()

		res := detector.Detect("abc")
		assert.True(t, res.Bot)
		assert.Equal(t, botdetect.ReasonSuspicious, res.Reason)
	})

	t.Run("no browser marker", func(t *testing.T) {
		t.Parallel()

		res := detector.Detect("SomeRandomAgent/1.0 (unknown platform)")
		assert.True(t, res.Bot)
		assert.Equal(t, botdetect.ReasonSuspicious, res.Reason)
	})
}

func TestDetector_RealBrowsers(t *testing.T) {
	t.Parallel()

	detector := botdetect.New()

	for name, ua := range map[string]string{
		"chrome":  chromeUA,
		"safari":  safariUA,
		"firefox": firefoxUA,
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			res := detector.Detect(ua)
			assert.False(t, res.Bot)
			assert.Empty(t, res.Reason)
		})
	}
}
