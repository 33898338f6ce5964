package linkcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindCode(t *testing.T) {
	assert.Equal(t, "OK", ErrorNone.Code())
	assert.Equal(t, "CLT", ErrorClient.Code())
	assert.Equal(t, "SSL", ErrorSSL.Code())
	assert.Equal(t, "CNT", ErrorConnection.Code())
	assert.Equal(t, "TMO", ErrorTimeout.Code())
	assert.Equal(t, "TMR", ErrorTooManyRedirects.Code())
	assert.Equal(t, "UKN", ErrorUnknown.Code())
}

func TestProbeResultString(t *testing.T) {
	ok := ProbeResult{URL: "https://a.com", Kind: ErrorNone}
	assert.False(t, ok.Failed())
	assert.Equal(t, "OK: https://a.com", ok.String())

	client := ProbeResult{URL: "https://a.com", Kind: ErrorClient, Detail: "404"}
	assert.True(t, client.Failed())
	assert.Equal(t, "ERR:CLT: 404 : https://a.com", client.String())

	// Timeouts carry no useful detail.
	timeout := ProbeResult{URL: "https://a.com", Kind: ErrorTimeout, Detail: "ignored"}
	assert.Equal(t, "ERR:TMO: https://a.com", timeout.String())
}

func TestHasBotProtection(t *testing.T) {
	const challenge = "<html>Checking your browser before accessing example.com</html>"

	tests := []struct {
		name   string
		status int
		server string
		body   string
		want   bool
	}{
		{"403 challenge page", 403, "cloudflare", challenge, true},
		{"503 challenge page", 503, "cloudflare", "Cloudflare Ray ID: abc123", true},
		{"matching status but wrong server", 403, "nginx", challenge, false},
		{"matching server but plain body", 503, "cloudflare", "<html>service down</html>", false},
		{"challenge markers on a 404", 404, "cloudflare", challenge, false},
		{"200 is never a challenge", 200, "cloudflare", challenge, false},
		{"script token marker", 403, "cloudflare", `window._cf_chl_opt = {}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasBotProtection(tt.status, tt.server, tt.body))
		})
	}
}
