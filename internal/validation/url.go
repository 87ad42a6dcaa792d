package validation

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
)

var (
	ErrEmptyURL       = errors.New("URL cannot be empty")
	ErrURLTooLong     = errors.New("URL too long")
	ErrInvalidScheme  = errors.New("URL must use http or https protocol")
	ErrMissingHost    = errors.New("URL must have a valid hostname")
	ErrLocalhost      = errors.New("localhost URLs are not permitted")
	ErrPrivateAddress = errors.New("private IP addresses are not permitted")
)

// URLValidator checks URLs before they are requested or handed to a browser.
type URLValidator struct {
	// AllowLocalhost permits localhost and loopback hosts.
	AllowLocalhost bool
	// AllowPrivateIPs permits RFC 1918 and link-local addresses.
	AllowPrivateIPs bool
	// DefaultScheme is prepended when the input has no scheme.
	DefaultScheme string
	MaxLength     int
}

// NewEndpointValidator is used for the search endpoint, which usually runs
// on the local machine during development.
func NewEndpointValidator() *URLValidator {
	return &URLValidator{
		AllowLocalhost:  true,
		AllowPrivateIPs: true,
		DefaultScheme:   "http",
		MaxLength:       2048,
	}
}

// NewLinkValidator is used for result links before opening them.
func NewLinkValidator() *URLValidator {
	return &URLValidator{
		AllowLocalhost:  false,
		AllowPrivateIPs: false,
		DefaultScheme:   "https",
		MaxLength:       2048,
	}
}

// ValidateAndNormalize validates input and returns the normalized URL.
func (v *URLValidator) ValidateAndNormalize(input string) (string, error) {
	input = strings.TrimSpace(input)

	if input == "" {
		return "", ErrEmptyURL
	}
	if v.MaxLength > 0 && len(input) > v.MaxLength {
		return "", fmt.Errorf("%w (max %d characters)", ErrURLTooLong, v.MaxLength)
	}
	if strings.ContainsAny(input, "<>\"'` ") {
		return "", fmt.Errorf("URL contains invalid characters")
	}

	if !hasScheme(input) && v.DefaultScheme != "" {
		input = v.DefaultScheme + "://" + input
	}

	parsed, err := url.Parse(input)
	if err != nil {
		return "", fmt.Errorf("invalid URL format: %w", err)
	}

	scheme := strings.ToLower(parsed.Scheme)
	if scheme != "http" && scheme != "https" {
		return "", ErrInvalidScheme
	}
	parsed.Scheme = scheme

	if parsed.Hostname() == "" {
		return "", ErrMissingHost
	}

	if err := v.validateHost(parsed.Hostname()); err != nil {
		return "", err
	}

	return parsed.String(), nil
}

func (v *URLValidator) validateHost(hostname string) error {
	if !v.AllowLocalhost && isLocalhost(hostname) {
		return ErrLocalhost
	}

	if !v.AllowPrivateIPs {
		if ip := net.ParseIP(hostname); ip != nil && isPrivateIP(ip) {
			return ErrPrivateAddress
		}
	}

	return nil
}

// hasScheme treats "host:port" as schemeless and "mailto:x" as having one.
func hasScheme(input string) bool {
	if strings.Contains(input, "://") {
		return true
	}
	_, after, found := strings.Cut(input, ":")
	if !found {
		return false
	}
	return after == "" || after[0] < '0' || after[0] > '9'
}

func isLocalhost(hostname string) bool {
	hostname = strings.ToLower(hostname)
	return hostname == "localhost" ||
		hostname == "127.0.0.1" ||
		hostname == "::1" ||
		strings.HasSuffix(hostname, ".localhost")
}

func isPrivateIP(ip net.IP) bool {
	return ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast()
}
