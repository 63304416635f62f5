package pipeline

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		mediaType string
		expected  Route
	}{
		{"application/pdf", RoutePDF},
		{"APPLICATION/PDF", RoutePDF},
		{"application/pdf; charset=binary", RoutePDF},
		{"image/png", RouteImage},
		{"image/jpeg", RouteImage},
		{"image/heic", RouteImage},
		{"text/plain", RouteUnsupported},
		{"application/msword", RouteUnsupported},
		{"", RouteUnsupported},
		{"image", RouteUnsupported},
	}
	for _, tt := range tests {
		if got := Classify(tt.mediaType); got != tt.expected {
			t.Errorf("Classify(%q) = %v, expected %v", tt.mediaType, got, tt.expected)
		}
	}
}

func TestClassifyIdempotent(t *testing.T) {
	for _, mt := range []string{"application/pdf", "image/png", "text/plain", ""} {
		first := Classify(mt)
		for i := 0; i < 3; i++ {
			if got := Classify(mt); got != first {
				t.Errorf("Classify(%q) changed between calls: %v then %v", mt, first, got)
			}
		}
	}
}

func TestRouteString(t *testing.T) {
	if RoutePDF.String() != "pdf" || RouteImage.String() != "image" || RouteUnsupported.String() != "unsupported" {
		t.Error("unexpected route names")
	}
}
