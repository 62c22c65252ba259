package parser

import (
	"net"
	"net/url"
	"regexp"
	"strings"
)

var (
	schemeRe   = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)
	hostnameRe = regexp.MustCompile(`^([a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9]([a-zA-Z0-9\-]{0,61}[a-zA-Z0-9])?$`)
	shortcutRe = regexp.MustCompile(`^([a-zA-Z0-9]+):\s*(.*)$`)
)

// TLDs a bare word like "example.com" is assumed to be navigable under.
// Rarer TLDs still pass via the length check in validTLD.
var knownTLDs = map[string]bool{
	"com": true, "org": true, "net": true, "edu": true, "gov": true,
	"mil": true, "int": true, "co": true, "io": true, "ai": true,
	"ly": true, "me": true, "tv": true, "cc": true, "to": true,
	"app": true, "dev": true, "tech": true, "info": true, "biz": true,
	"name": true, "museum": true, "travel": true, "xyz": true,
	"fr": true, "de": true, "uk": true, "ca": true, "us": true,
	"au": true, "jp": true, "cn": true, "in": true, "ru": true, "br": true,
}

// Sanitize trims whitespace and strips control characters from address-bar
// input before classification.
func Sanitize(input string) string {
	input = strings.TrimSpace(input)
	return strings.Map(func(r rune) rune {
		if r < 32 || r == 127 {
			return -1
		}
		return r
	}, input)
}

// IsDirectURL reports whether input should be navigated to directly rather
// than handed to a search engine: an explicit scheme, a plausible hostname,
// an IP address, or a local target.
func IsDirectURL(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	if schemeRe.MatchString(input) {
		return wellFormed(input)
	}
	return isHostname(input) || net.ParseIP(input) != nil ||
		looksLikeHost(input) || isLocal(input)
}

// IsValidURL reports whether input is structurally a URL: either a
// well-formed scheme://host form or something a scheme can be prepended to.
func IsValidURL(input string) bool {
	if input == "" {
		return false
	}
	if schemeRe.MatchString(input) {
		return wellFormed(input)
	}
	return isHostname(input) || net.ParseIP(input) != nil
}

// NormalizeURL prepends a scheme when the input lacks one. Local targets
// get http, everything else https.
func NormalizeURL(input string) string {
	input = strings.TrimSpace(input)
	if input == "" || schemeRe.MatchString(input) {
		return input
	}
	if isLocal(input) {
		return "http://" + input
	}
	if isHostname(input) || net.ParseIP(input) != nil || looksLikeHost(input) {
		return "https://" + input
	}
	return input
}

// SplitShortcut splits "gh: cobra cli" into its key and query. Inputs that
// carry a URL scheme never match, so "https://x" is not the "https"
// shortcut.
func SplitShortcut(input string) (key, query string, ok bool) {
	input = strings.TrimSpace(input)
	if schemeRe.MatchString(input) {
		return "", "", false
	}
	m := shortcutRe.FindStringSubmatch(input)
	if m == nil {
		return "", "", false
	}
	return strings.ToLower(m[1]), strings.TrimSpace(m[2]), true
}

// isHostname accepts dotted names whose last label is a plausible TLD.
func isHostname(s string) bool {
	if !strings.Contains(s, ".") || !hostnameRe.MatchString(s) {
		return false
	}
	labels := strings.Split(s, ".")
	return validTLD(labels[len(labels)-1])
}

func validTLD(tld string) bool {
	tld = strings.ToLower(tld)
	return knownTLDs[tld] || (len(tld) >= 2 && len(tld) <= 6)
}

// looksLikeHost is the lenient check for inputs like "example.com/path":
// a dotted, space-free host part with sane label lengths.
func looksLikeHost(s string) bool {
	host := s
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	if !strings.Contains(host, ".") || strings.ContainsRune(host, ' ') || len(host) > 253 {
		return false
	}
	labels := strings.Split(host, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" || len(l) > 63 || !alnum(l[0]) || !alnum(l[len(l)-1]) {
			return false
		}
	}
	return true
}

// isLocal recognizes localhost, loopback addresses, and .local names, with
// or without a port.
func isLocal(s string) bool {
	host := strings.ToLower(strings.TrimSpace(s))
	host = strings.TrimPrefix(host, "http://")
	host = strings.TrimPrefix(host, "https://")
	if i := strings.IndexByte(host, '/'); i >= 0 {
		host = host[:i]
	}
	if i := strings.LastIndexByte(host, ':'); i >= 0 && allDigits(host[i+1:]) {
		host = host[:i]
	}
	return host == "localhost" || host == "127.0.0.1" || host == "::1" ||
		strings.HasSuffix(host, ".local")
}

func wellFormed(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ftp", "ftps", "file":
		return true
	}
	return false
}

func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func alnum(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
