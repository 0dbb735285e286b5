package stalkermap

import "strconv"

// Scheme is the URL scheme of a Target.
type Scheme int

const (
	SchemeHTTP Scheme = iota
	SchemeHTTPS
)

func (s Scheme) String() string {
	if s == SchemeHTTPS {
		return "https"
	}
	return "http"
}

// TargetType classifies how Host was resolved by the caller's URL parser.
// The engine never resolves or parses — it only reads this field.
type TargetType int

const (
	TargetDNS TargetType = iota
	TargetIPv4
	TargetIPv6
)

// Target is the parsed form of a scan destination, produced by an
// external URL-parsing library (out of scope for this engine, spec.md
// §1/§6) and consumed as-is.
type Target struct {
	Scheme       Scheme
	Host         string
	Type         TargetType
	Port         uint16 // 0 means "use the scheme's default port (80)"
	Subdirectory string
}

// effectivePort returns Port, or 80 when Port is 0, matching spec.md
// §4.G step (b): addr = host + ":" + (port == 0 ? 80 : port).
func (t Target) effectivePort() uint16 {
	if t.Port == 0 {
		return 80
	}
	return t.Port
}

// Addr renders the host:port pair the engine dials.
func (t Target) Addr() string {
	return t.Host + ":" + strconv.Itoa(int(t.effectivePort()))
}
