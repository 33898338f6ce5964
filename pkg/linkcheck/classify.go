package linkcheck

import (
	"fmt"
	"strings"
)

// ErrorKind classifies the outcome of one link probe.
type ErrorKind int

const (
	// ErrorNone means the probe succeeded (or its failure was suppressed
	// by the bot-protection allowance).
	ErrorNone ErrorKind = iota

	// ErrorClient is an HTTP status of 400 or above.
	ErrorClient

	// ErrorSSL is a TLS certificate or handshake failure.
	ErrorSSL

	// ErrorConnection is a failure to reach the host at all.
	ErrorConnection

	// ErrorTimeout is a connect or overall deadline expiry.
	ErrorTimeout

	// ErrorTooManyRedirects means the redirect cap was exceeded.
	ErrorTooManyRedirects

	// ErrorUnknown is any other failure.
	ErrorUnknown
)

// Code returns the short wire code used in failure output.
func (k ErrorKind) Code() string {
	switch k {
	case ErrorClient:
		return "CLT"
	case ErrorSSL:
		return "SSL"
	case ErrorConnection:
		return "CNT"
	case ErrorTimeout:
		return "TMO"
	case ErrorTooManyRedirects:
		return "TMR"
	case ErrorUnknown:
		return "UKN"
	default:
		return "OK"
	}
}

// String returns the kind name for logs.
func (k ErrorKind) String() string {
	switch k {
	case ErrorNone:
		return "none"
	case ErrorClient:
		return "client-error"
	case ErrorSSL:
		return "ssl-error"
	case ErrorConnection:
		return "connection-error"
	case ErrorTimeout:
		return "timeout"
	case ErrorTooManyRedirects:
		return "too-many-redirects"
	default:
		return "unknown"
	}
}

// ProbeResult is the classified outcome of probing one link.
type ProbeResult struct {
	// URL is the link that was probed.
	URL string

	// Kind classifies the outcome.
	Kind ErrorKind

	// Detail carries the status code or underlying error text.
	Detail string
}

// Failed reports whether the probe found the link unhealthy.
func (r ProbeResult) Failed() bool {
	return r.Kind != ErrorNone
}

// String renders the failure in `ERR:XXX: detail : url` form. Timeouts have
// no useful detail, so only the link is shown.
func (r ProbeResult) String() string {
	if r.Kind == ErrorNone {
		return "OK: " + r.URL
	}
	if r.Kind == ErrorTimeout {
		return fmt.Sprintf("ERR:%s: %s", r.Kind.Code(), r.URL)
	}
	return fmt.Sprintf("ERR:%s: %s : %s", r.Kind.Code(), r.Detail, r.URL)
}

// challengeMarkers are the fragments a CDN challenge page is known to
// contain. Any one of them, together with a matching status and server
// header, identifies an anti-bot interstitial rather than a broken link.
var challengeMarkers = []string{
	"403 Forbidden",
	"cloudflare",
	"Cloudflare",
	"Security check",
	"Please Wait... | Cloudflare",
	"We are checking your browser...",
	"Please stand by, while we are checking your browser...",
	"Checking your browser before accessing",
	"This process is automatic.",
	"Your browser will redirect to your requested content shortly.",
	"Please allow up to 5 seconds",
	"DDoS protection by",
	"Ray ID:",
	"Cloudflare Ray ID:",
	"_cf_chl",
	"_cf_chl_opt",
	"__cf_chl_rt_tk",
	"cf-spinner-please-wait",
	"cf-spinner-redirecting",
}

// challengeServer is the Server header value of the known CDN whose
// challenge pages are suppressed.
const challengeServer = "cloudflare"

// hasBotProtection reports whether a response is a CDN anti-bot challenge
// served for a healthy site. Probing the catalog trips these routinely;
// suppressing them trades rare missed outages for avoiding mass false
// alarms.
func hasBotProtection(status int, server string, body string) bool {
	if status != 403 && status != 503 {
		return false
	}
	if server != challengeServer {
		return false
	}
	for _, marker := range challengeMarkers {
		if strings.Contains(body, marker) {
			return true
		}
	}
	return false
}
