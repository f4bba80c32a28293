package sanitizer

import (
	"errors"
	"net"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// BlankURL is returned by SanitizeURL for every rejected input.
const BlankURL = "about:blank"

// defaultPorts are dropped from normalised URLs.
var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// hostProfile mirrors browser host parsing: non-transitional IDNA mapping
// without STD3 or hyphen restrictions.
var hostProfile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.StrictDomainName(false),
	idna.CheckHyphens(false),
)

var errEmptyHost = errors.New("empty host")

// SanitizeURL returns the normalised form of an absolute http or https URL.
// Any other scheme, a missing host or a parse failure yields BlankURL.
//
// Normalisation lower-cases the scheme and host, converts internationalised
// hosts to punycode, drops the default port, turns an empty path into "/"
// and removes dot segments. Ports outside 0-65535 are rejected.
func SanitizeURL(raw string) string {
	u, err := url.Parse(strings.TrimFunc(raw, isControlOrSpace))
	if err != nil {
		return BlankURL
	}

	scheme := strings.ToLower(u.Scheme)
	defaultPort, ok := defaultPorts[scheme]
	if !ok || u.Opaque != "" {
		return BlankURL
	}

	host, err := normalizeHost(u.Hostname())
	if err != nil {
		return BlankURL
	}

	port := u.Port()
	if port != "" {
		if _, err := strconv.ParseUint(port, 10, 16); err != nil {
			return BlankURL
		}
	}
	switch {
	case port != "" && port != defaultPort:
		u.Host = net.JoinHostPort(host, port)
	case strings.Contains(host, ":"):
		u.Host = "[" + host + "]"
	default:
		u.Host = host
	}

	u.Scheme = scheme
	if u.Path == "" {
		u.Path = "/"
		u.RawPath = ""
	}

	// resolving the path against itself removes "." and ".." segments
	u = u.ResolveReference(&url.URL{
		Path:        u.Path,
		RawPath:     u.RawPath,
		RawQuery:    u.RawQuery,
		Fragment:    u.Fragment,
		RawFragment: u.RawFragment,
	})

	return u.String()
}

func normalizeHost(host string) (string, error) {
	if host == "" {
		return "", errEmptyHost
	}
	// IPv6 literal
	if strings.Contains(host, ":") {
		return strings.ToLower(host), nil
	}
	ascii, err := hostProfile.ToASCII(host)
	if err != nil {
		return "", err
	}
	if ascii == "" {
		return "", errEmptyHost
	}
	return strings.ToLower(ascii), nil
}

// isControlOrSpace matches the C0 control and space characters that URL
// parsers strip from both ends of the input.
func isControlOrSpace(r rune) bool {
	return r <= 0x20
}
