package client

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
)

// Adapter implements the Client interface against a BillMate backend.
type Adapter struct {
	endpoint   string
	cookieURL  *url.URL
	httpClient *http.Client
	opts       *options
}

// New creates a new BillMate client with the provided options.
// Returns an error if required parameters are missing.
func New(endpoint string, opts ...Option) (*Adapter, error) {
	if endpoint == "" {
		return nil, &ValidationError{Field: "endpoint", Message: "cannot be empty"}
	}

	// Normalize endpoint: remove trailing slash to prevent double slashes
	// in URL concatenation
	endpoint = strings.TrimSuffix(endpoint, "/")
	if _, err := url.Parse(endpoint); err != nil {
		return nil, &ValidationError{Field: "endpoint", Message: "must be a valid URL"}
	}

	// Apply options
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	// Session cookies are scoped by the server to the API base path, so
	// the jar must be asked about that URL, not the bare endpoint.
	cookieURL, err := url.Parse(endpoint + o.basePath)
	if err != nil {
		return nil, &ValidationError{Field: "endpoint", Message: "must be a valid URL"}
	}

	httpClient := o.httpClient
	if httpClient == nil {
		// Clone default transport and increase connection pool limits.
		// Default MaxIdleConnsPerHost is 2, which causes excessive
		// TIME_WAIT connections under dashboard-style request bursts.
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.MaxIdleConns = 100
		transport.MaxIdleConnsPerHost = 100
		transport.MaxConnsPerHost = 100
		transport.ResponseHeaderTimeout = o.responseHeaderTimeout
		transport.IdleConnTimeout = o.idleConnTimeout

		// Session auth rides on cookies, so every request needs a jar.
		jar, err := cookiejar.New(nil)
		if err != nil {
			return nil, err
		}

		httpClient = &http.Client{
			Timeout:   o.timeout,
			Transport: transport,
			Jar:       jar,
		}
	}

	return &Adapter{
		endpoint:   endpoint,
		cookieURL:  cookieURL,
		httpClient: httpClient,
		opts:       o,
	}, nil
}

// SessionToken returns the current session token from the cookie jar, or
// an empty string when no session cookie is set. The token value is opaque
// to the client; the session store inspects it for expiry.
func (a *Adapter) SessionToken() string {
	if a.httpClient.Jar == nil {
		return ""
	}
	for _, c := range a.httpClient.Jar.Cookies(a.cookieURL) {
		if c.Name == sessionCookieName {
			return c.Value
		}
	}
	return ""
}
