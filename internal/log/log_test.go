package log

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNewLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		verbose    bool
		quiet      bool
		wantTrace  bool
		wantInfo   bool
		wantNoWarn bool
	}{
		{name: "default", wantInfo: true},
		{name: "verbose", verbose: true, wantTrace: true, wantInfo: true},
		{name: "quiet", quiet: true, wantNoWarn: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			l := New(&buf, tt.verbose, tt.quiet)

			l.Trace("trace-marker")
			l.Info("info-marker")
			l.Warn("warn-marker")

			out := buf.String()
			if got := strings.Contains(out, "trace-marker"); got != tt.wantTrace {
				t.Errorf("trace logged = %v, want %v", got, tt.wantTrace)
			}
			if got := strings.Contains(out, "info-marker"); got != tt.wantInfo {
				t.Errorf("info logged = %v, want %v", got, tt.wantInfo)
			}
			if got := strings.Contains(out, "warn-marker"); got == tt.wantNoWarn {
				t.Errorf("warn logged = %v, want %v", got, !tt.wantNoWarn)
			}
		})
	}
}

func TestFieldsAppearInOutput(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, false, false)
	l.WithFields(Fields{"missing_tag": "tag-does-not-exist"}).Warn("ignoring tag")

	out := buf.String()
	if !strings.Contains(out, "tag-does-not-exist") {
		t.Errorf("expected field value in output, got %q", out)
	}
}

func TestFromContextFallback(t *testing.T) {
	t.Parallel()

	l := FromContext(context.Background())
	if l == nil {
		t.Fatal("FromContext returned nil")
	}
	// Must not panic and must not write anywhere visible.
	l.Warn("dropped")
}

func TestWithLoggerRoundTrip(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, false, false)
	ctx := WithLogger(context.Background(), l)

	FromContext(ctx).Info("via-context")
	if !strings.Contains(buf.String(), "via-context") {
		t.Error("logger from context did not write to the attached buffer")
	}
}
