package pipeline

import "strings"

// Route is the handling path chosen for an uploaded file.
type Route int

const (
	RouteUnsupported Route = iota
	RoutePDF
	RouteImage
)

func (r Route) String() string {
	switch r {
	case RoutePDF:
		return "pdf"
	case RouteImage:
		return "image"
	}
	return "unsupported"
}

// Classify routes a file by its declared media type. Unsupported is a
// normal result, not an error: the caller surfaces it to the user and
// must not start extraction.
func Classify(mediaType string) Route {
	mt := strings.ToLower(strings.TrimSpace(mediaType))
	if i := strings.IndexByte(mt, ';'); i >= 0 {
		mt = strings.TrimSpace(mt[:i])
	}
	switch {
	case mt == "application/pdf":
		return RoutePDF
	case strings.HasPrefix(mt, "image/"):
		return RouteImage
	}
	return RouteUnsupported
}
