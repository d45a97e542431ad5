// Package reqlog renders an inbound HTTP request as a block of log lines.
//
// Each request becomes a Record, which is logged line by line between a
// start and an end marker:
//
//	=== Request Received ===
//	Method: POST
//	URI: /foo?x=1
//	Path: /foo
//	Query String: x=1
//	Headers:
//	  X-Test: abc
//	Body:
//	  hi
//	=== End of Request Info ===
package reqlog

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"
)

const (
	StartMarker = "=== Request Received ==="
	EndMarker   = "=== End of Request Info ==="

	BinaryData = "<Binary Data>"
	EmptyBody  = "<Empty>"
)

// Header is one header value. A request header with multiple values becomes
// multiple Headers with the same Name.
type Header struct {
	Name  string
	Value string

	// Binary is set when Value is not visible ASCII text.
	Binary bool
}

func (h Header) String() string {
	if h.Binary {
		return "  " + h.Name + ": " + BinaryData
	}

	return "  " + h.Name + ": " + h.Value
}

// Record is everything about a request that gets logged.
type Record struct {
	Method   string
	URI      string
	Path     string
	Query    string
	HasQuery bool
	Headers  []Header
	Body     string
}

// FromRequest builds a Record out of r and the body that was read from it.
// Paths and queries are kept in their escaped on-the-wire form.
func FromRequest(r *http.Request, body []byte) Record {
	uri := r.RequestURI
	if uri == "" {
		uri = r.URL.RequestURI()
	}

	return Record{
		Method:   r.Method,
		URI:      uri,
		Path:     Path(r),
		Query:    r.URL.RawQuery,
		HasQuery: r.URL.RawQuery != "" || r.URL.ForceQuery,
		Headers:  headers(r),
		Body:     strings.ToValidUTF8(string(body), "\uFFFD"),
	}
}

// Path is the path component of r's target exactly as the client sent it.
// Absolute-form targets without a path ("GET http://example.com HTTP/1.1")
// have the path "/".
func Path(r *http.Request) string {
	if r.RequestURI == "*" {
		return "*"
	}

	if strings.HasPrefix(r.RequestURI, "/") {
		path, _, _ := strings.Cut(r.RequestURI, "?")
		return path
	}

	if p := r.URL.EscapedPath(); p != "" {
		return p
	}

	return "/"
}

// headers lists Host first, because net/http moves it out of the header map,
// then every other header sorted by name so the output is stable.
// Transfer-Encoding is also moved out of the map by net/http and is put back.
func headers(r *http.Request) []Header {
	var result []Header

	if r.Host != "" {
		result = append(result, newHeader("Host", r.Host))
	}

	hdr := r.Header
	if len(r.TransferEncoding) != 0 && len(hdr.Values("Transfer-Encoding")) == 0 {
		hdr = hdr.Clone()
		if hdr == nil {
			hdr = http.Header{}
		}
		hdr.Set("Transfer-Encoding", strings.Join(r.TransferEncoding, ", "))
	}

	names := make([]string, 0, len(hdr))
	for name := range hdr {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		for _, value := range hdr[name] {
			result = append(result, newHeader(name, value))
		}
	}

	return result
}

func newHeader(name, value string) Header {
	return Header{
		Name:   name,
		Value:  value,
		Binary: !isVisibleASCII(value),
	}
}

// isVisibleASCII reports whether every byte of s is printable ASCII or a
// horizontal tab.
func isVisibleASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '\t' {
			continue
		}
		if c < 0x20 || c > 0x7e {
			return false
		}
	}

	return true
}

// Lines returns the log lines for rec in the order Log emits them.
func (rec Record) Lines() []string {
	result := []string{
		StartMarker,
		"Method: " + rec.Method,
		"URI: " + rec.URI,
		"Path: " + rec.Path,
	}

	if rec.HasQuery {
		result = append(result, "Query String: "+rec.Query)
	}

	result = append(result, "Headers:")
	for _, h := range rec.Headers {
		result = append(result, h.String())
	}

	result = append(result, "Body:")
	if len(rec.Body) == 0 {
		result = append(result, "  "+EmptyBody)
	} else {
		result = append(result, "  "+rec.Body)
	}

	return append(result, EndMarker)
}

// Log writes rec to lg at INFO, one record per line. Failures of the
// underlying handler are not reported.
func Log(ctx context.Context, lg *slog.Logger, rec Record) {
	for _, line := range rec.Lines() {
		lg.InfoContext(ctx, line)
	}
}
