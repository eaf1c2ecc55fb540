// Package debug provides HTTP round-trip logging for --debug runs.
package debug

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type contextKey struct{}

// WithDebug injects the debug flag into the context.
func WithDebug(ctx context.Context, debug bool) context.Context {
	return context.WithValue(ctx, contextKey{}, debug)
}

// IsDebug returns true if debug mode is enabled in the context.
func IsDebug(ctx context.Context) bool {
	if v, ok := ctx.Value(contextKey{}).(bool); ok {
		return v
	}
	return false
}

// Transport wraps an http.RoundTripper and logs each request and
// response, so --debug runs show what the update checker sends to the
// GitHub API.
type Transport struct {
	Base   http.RoundTripper
	Output io.Writer
}

// NewTransport creates a logging Transport over base. A nil base uses
// http.DefaultTransport; nil output defaults to os.Stderr.
func NewTransport(base http.RoundTripper, output io.Writer) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	if output == nil {
		output = os.Stderr
	}
	return &Transport{Base: base, Output: output}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	_, _ = fmt.Fprintf(t.Output, "\n--> %s %s\n", req.Method, req.URL)
	for key, values := range req.Header {
		_, _ = fmt.Fprintf(t.Output, "    %s: %s\n", key, redactHeader(key, values))
	}
	if req.Body != nil {
		body, err := io.ReadAll(req.Body)
		if err != nil {
			_, _ = fmt.Fprintf(t.Output, "    [ERROR reading request body: %v]\n", err)
		} else {
			req.Body = io.NopCloser(bytes.NewReader(body))
			if len(body) > 0 {
				_, _ = fmt.Fprintf(t.Output, "    Body: %s\n", truncate(string(body), 500))
			}
		}
	}

	resp, err := t.Base.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		_, _ = fmt.Fprintf(t.Output, "<-- ERROR: %v (%s)\n\n", err, duration)
		return resp, err
	}

	_, _ = fmt.Fprintf(t.Output, "<-- %d %s (%s)\n", resp.StatusCode, resp.Status, duration)

	if rl := resp.Header.Get("X-RateLimit-Remaining"); rl != "" {
		limit := resp.Header.Get("X-RateLimit-Limit")
		resetStr := ""
		// GitHub sends the reset time as a Unix timestamp.
		if reset := resp.Header.Get("X-RateLimit-Reset"); reset != "" {
			if ts, perr := strconv.ParseInt(reset, 10, 64); perr == nil {
				if remaining := time.Until(time.Unix(ts, 0)); remaining > 0 {
					resetStr = fmt.Sprintf(" (resets in %ds)", int(remaining.Seconds()))
				}
			}
		}
		_, _ = fmt.Fprintf(t.Output, "    Rate-Limit: %s/%s remaining%s\n", rl, limit, resetStr)
	}

	for key, values := range resp.Header {
		_, _ = fmt.Fprintf(t.Output, "    %s: %s\n", key, strings.Join(values, ", "))
	}

	if resp.Body != nil {
		body, rerr := io.ReadAll(resp.Body)
		if rerr != nil {
			_, _ = fmt.Fprintf(t.Output, "    [ERROR reading response body: %v]\n\n", rerr)
		} else {
			resp.Body = io.NopCloser(bytes.NewReader(body))
			if len(body) > 0 {
				_, _ = fmt.Fprintf(t.Output, "    Body: %s\n", truncate(string(body), 1000))
			}
		}
	}
	_, _ = fmt.Fprintln(t.Output)

	return resp, nil
}

// redactHeader masks credential headers, keeping only the last 4
// characters of a bearer token.
func redactHeader(key string, values []string) string {
	if !strings.EqualFold(key, "Authorization") {
		return strings.Join(values, ", ")
	}
	val := values[0]
	for _, scheme := range []string{"Bearer ", "token "} {
		if strings.HasPrefix(val, scheme) {
			token := val[len(scheme):]
			if len(token) > 10 {
				return scheme + "..." + token[len(token)-4:]
			}
		}
	}
	return val
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max] + "... [truncated]"
	}
	return s
}
