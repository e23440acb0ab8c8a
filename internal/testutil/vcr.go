// Package testutil replays recorded Assistant API exchanges in tests.
package testutil

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"gopkg.in/dnaeon/go-vcr.v2/cassette"
	"gopkg.in/dnaeon/go-vcr.v2/recorder"
)

// FixtureDir is where cassettes live, relative to the package under test.
var FixtureDir = filepath.Join("testdata", "fixtures")

// NewVCRRecorder opens the named cassette in replay mode, or in record mode
// when VCR_MODE=record. The recorder is stopped when the test ends.
func NewVCRRecorder(t *testing.T, cassetteName string) *recorder.Recorder {
	t.Helper()

	mode := recorder.ModeReplaying
	if os.Getenv("VCR_MODE") == "record" {
		mode = recorder.ModeRecording
	}

	r, err := recorder.NewAsMode(filepath.Join(FixtureDir, cassetteName), mode, nil)
	if err != nil {
		t.Fatalf("Failed to create VCR recorder: %v", err)
	}

	// Bodies are not matched; the version query and path identify the call.
	r.SetMatcher(MatchMethodAndURL)
	r.SkipRequestLatency = true

	t.Cleanup(func() {
		if err := r.Stop(); err != nil {
			t.Errorf("Failed to stop VCR recorder: %v", err)
		}
	})
	return r
}

// MatchMethodAndURL matches on method, path and query, so recordings made
// against one service instance replay against any host.
func MatchMethodAndURL(r *http.Request, i cassette.Request) bool {
	if r.Method != i.Method {
		return false
	}
	recorded, err := r.URL.Parse(i.URL)
	if err != nil {
		return false
	}
	return r.URL.EscapedPath() == recorded.EscapedPath() &&
		r.URL.Query().Encode() == recorded.Query().Encode()
}

// LoadCassette reads the named cassette without replaying it.
func LoadCassette(t *testing.T, cassetteName string) *cassette.Cassette {
	t.Helper()

	c, err := cassette.Load(filepath.Join(FixtureDir, cassetteName))
	if err != nil {
		t.Fatalf("Failed to load cassette %s: %v", cassetteName, err)
	}
	return c
}

// VCRHTTPClient returns an HTTP client configured to use the VCR recorder.
// Replayed calls are traced like live ones.
func VCRHTTPClient(r *recorder.Recorder) *http.Client {
	return &http.Client{
		Transport: otelhttp.NewTransport(r),
	}
}
