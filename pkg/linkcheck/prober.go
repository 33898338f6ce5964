package linkcheck

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Probe defaults. The timeout covers the whole request, connect included.
const (
	DefaultTimeout      = 25 * time.Second
	DefaultMaxRedirects = 10
)

// defaultUserAgents is the pool a probe's User-Agent is drawn from. Plain
// library user agents get rejected outright by enough catalog hosts that
// spoofing a browser is the only way to measure liveness at all.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 6.2) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/28.0.1467.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_13_6) AppleWebKit/605.1.15 (KHTML, like Gecko)",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/80.0.3987.132 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/97.0.4692.71 Safari/537.36",
}

var errTooManyRedirects = errors.New("too many redirects")

// Doer sends one HTTP request and returns the response or a transport
// failure. *http.Client satisfies it; tests substitute deterministic fakes.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Prober. Zero values fall back to defaults.
type Options struct {
	// Timeout is the total per-probe budget.
	Timeout time.Duration

	// MaxRedirects caps the redirect chain before the probe is classified
	// as TooManyRedirects.
	MaxRedirects int

	// UserAgents overrides the default User-Agent pool.
	UserAgents []string

	// Client overrides the transport. When nil a standard client is built
	// from Timeout and MaxRedirects.
	Client Doer
}

// Prober issues one GET per link and classifies the outcome. Probing is
// strictly sequential: each probe fully completes before the next begins,
// and one link's failure never halts the rest.
type Prober struct {
	client     Doer
	userAgents []string
}

// NewProber builds a Prober from opts.
func NewProber(opts Options) *Prober {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.MaxRedirects <= 0 {
		opts.MaxRedirects = DefaultMaxRedirects
	}

	client := opts.Client
	if client == nil {
		client = &http.Client{
			Timeout: opts.Timeout,
			Transport: &http.Transport{
				TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
			},
			CheckRedirect: func(_ *http.Request, via []*http.Request) error {
				if len(via) >= opts.MaxRedirects {
					return fmt.Errorf("%w: %d", errTooManyRedirects, len(via))
				}
				return nil
			},
		}
	}

	userAgents := opts.UserAgents
	if len(userAgents) == 0 {
		userAgents = defaultUserAgents
	}

	return &Prober{client: client, userAgents: userAgents}
}

// Probe issues one GET against link and classifies the outcome. A
// bot-protection challenge on an otherwise failing status is downgraded to
// a healthy result.
func (p *Prober) Probe(ctx context.Context, link string) ProbeResult {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, link, http.NoBody)
	if err != nil {
		return ProbeResult{URL: link, Kind: ErrorUnknown, Detail: err.Error()}
	}
	req.Header.Set("User-Agent", p.userAgents[rand.IntN(len(p.userAgents))])
	req.Host = HostFromLink(link)

	resp, err := p.client.Do(req)
	if err != nil {
		return classifyFailure(link, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		if !hasBotProtection(resp.StatusCode, resp.Header.Get("Server"), string(body)) {
			return ProbeResult{URL: link, Kind: ErrorClient, Detail: strconv.Itoa(resp.StatusCode)}
		}
	}

	return ProbeResult{URL: link, Kind: ErrorNone}
}

// ProbeAll probes every link in order and returns the non-suppressed
// failures. The input sequence is probed as-is: no dedup, no filtering.
func (p *Prober) ProbeAll(ctx context.Context, links []string) []ProbeResult {
	var failures []ProbeResult
	for _, link := range links {
		if result := p.Probe(ctx, link); result.Failed() {
			failures = append(failures, result)
		}
	}
	return failures
}

// classifyFailure maps a transport error onto an ErrorKind. The redirect
// cap is checked first since it surfaces wrapped in a url.Error; TLS
// certificate failures next; then deadline expiry, which otherwise looks
// like a connection error.
func classifyFailure(link string, err error) ProbeResult {
	kind := ErrorUnknown
	switch {
	case errors.Is(err, errTooManyRedirects):
		kind = ErrorTooManyRedirects
	case isTLSError(err):
		kind = ErrorSSL
	case isTimeout(err):
		kind = ErrorTimeout
	case isConnectionError(err):
		kind = ErrorConnection
	}
	return ProbeResult{URL: link, Kind: kind, Detail: err.Error()}
}

func isTLSError(err error) bool {
	var (
		certInvalid  x509.CertificateInvalidError
		unknownAuth  x509.UnknownAuthorityError
		hostnameErr  x509.HostnameError
		recordHeader tls.RecordHeaderError
		certVerify   *tls.CertificateVerificationError
	)
	return errors.As(err, &certInvalid) ||
		errors.As(err, &unknownAuth) ||
		errors.As(err, &hostnameErr) ||
		errors.As(err, &recordHeader) ||
		errors.As(err, &certVerify)
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

func isConnectionError(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// HostFromLink derives the bare host for the probe's Host header: the
// scheme is cut, then everything after the first path separator. The query
// and fragment branches only apply when no path is present; the original
// catalog tooling behaved this way and the quirk is kept.
func HostFromLink(link string) string {
	host := link
	if _, rest, ok := strings.Cut(link, "://"); ok {
		host = rest
	}

	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	} else if i := strings.IndexByte(host, '?'); i >= 0 {
		host = host[:i]
	} else if i := strings.IndexByte(host, '#'); i >= 0 {
		host = host[:i]
	}

	return host
}
