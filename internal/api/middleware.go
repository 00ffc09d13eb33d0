package api

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/lumenhq/lumen-cli/pkg/logger"
)

// Credentials supplies the bearer token for outbound requests and
// receives the invalidation signal when the server rejects it. The
// session store implements this.
type Credentials interface {
	// Token returns the current bearer token, or "" when there is none.
	Token() string
	// Invalidate clears the session after an authorization failure.
	// Must be idempotent; concurrent in-flight failures may all call it.
	Invalidate()
}

// RequestMiddleware transforms an outbound request before dispatch.
type RequestMiddleware func(*http.Request) error

// ResponseMiddleware observes a received response before it is decoded.
type ResponseMiddleware func(*http.Response) error

// defaultHeaders sets the headers every API request carries.
func defaultHeaders() RequestMiddleware {
	return func(req *http.Request) error {
		req.Header.Set("Accept", "application/json")
		return nil
	}
}

// bearerAuth attaches the current token when one is present. Requests
// without a token go out unauthenticated.
func bearerAuth(creds Credentials) RequestMiddleware {
	return func(req *http.Request) error {
		if token := creds.Token(); token != "" {
			req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
		}
		return nil
	}
}

// requestID tags each request so server logs can be correlated with a
// client run.
func requestID() RequestMiddleware {
	return func(req *http.Request) error {
		req.Header.Set("X-Request-Id", uuid.NewString())
		return nil
	}
}

// traceRequest logs outbound traffic at TRACE level.
func traceRequest() RequestMiddleware {
	return func(req *http.Request) error {
		logger.Tracef("-> %s %s", req.Method, req.URL.Path)
		return nil
	}
}

// invalidateOnUnauthorized clears the session whenever the server
// answers 401. The caller still receives the unauthorized error; no
// redirect happens here, the guard observes the cleared state on the
// next navigation.
func invalidateOnUnauthorized(creds Credentials) ResponseMiddleware {
	return func(resp *http.Response) error {
		if resp.StatusCode == http.StatusUnauthorized {
			logger.Debugf("Server rejected credentials, clearing session")
			creds.Invalidate()
		}
		return nil
	}
}

// traceResponse logs inbound traffic at TRACE level.
func traceResponse() ResponseMiddleware {
	return func(resp *http.Response) error {
		logger.Tracef("<- %d %s %s", resp.StatusCode, resp.Request.Method, resp.Request.URL.Path)
		return nil
	}
}
