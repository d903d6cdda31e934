package ratelimit

import (
	"bytes"
	"encoding/json"
	"io"
	"net"
	"net/http"
	"strings"
)

// maxPeekBytes bounds how much of a credential body is read to find the email.
const maxPeekBytes = 16 << 10

// ClientIP keys a request by its remote host. It expects chi's RealIP
// middleware to have normalized RemoteAddr.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}

// CredentialKey keys credential attempts by normalized email plus client IP.
// Bodies without an email fall back to the IP. The body is restored for the
// next handler.
func CredentialKey(r *http.Request) string {
	ip := ClientIP(r)
	if r.Body == nil || r.Body == http.NoBody {
		return "ip:" + ip
	}

	head, err := io.ReadAll(io.LimitReader(r.Body, maxPeekBytes))
	r.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(head), r.Body), r.Body}
	if err != nil {
		return "ip:" + ip
	}

	var body struct {
		Email string `json:"email"`
	}
	if json.Unmarshal(head, &body) != nil {
		return "ip:" + ip
	}
	email := strings.ToLower(strings.TrimSpace(body.Email))
	if email == "" {
		return "ip:" + ip
	}
	return "email:" + email + "|" + ip
}
