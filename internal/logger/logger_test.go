package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	log := New(&Config{Level: "debug", Format: "json", Output: &buf, ServiceName: "gallery-test"})

	log.WithField(FieldObjectID, 42).Info("lens view built")

	var line map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &line); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if line["message"] != "lens view built" {
		t.Errorf("expected message field, got %v", line["message"])
	}
	if line["service"] != "gallery-test" {
		t.Errorf("expected service gallery-test, got %v", line["service"])
	}
	if line[FieldObjectID] != float64(42) {
		t.Errorf("expected object_id 42, got %v", line[FieldObjectID])
	}
	if _, ok := line["timestamp"]; !ok {
		t.Error("expected timestamp field")
	}
}

func TestContextFields(t *testing.T) {
	var buf bytes.Buffer
	base := New(&Config{Level: "info", Format: "text", Output: &buf, ServiceName: "gallery-test"})

	ctx := base.WithContext(context.Background())
	ctx = SetRequestID(ctx, "req-1")
	ctx = SetComponent(ctx, "registry")

	if got := GetRequestID(ctx); got != "req-1" {
		t.Errorf("expected request id req-1, got %q", got)
	}

	With(Fields{FieldCount: 3}).Info(ctx, "snapshot published")

	out := buf.String()
	for _, want := range []string{"request_id=req-1", "component=registry", "count=3", "snapshot published"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got %q", want, out)
		}
	}
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	if FromContext(context.Background()) != GetDefault() {
		t.Error("expected default logger for bare context")
	}
	if GetRequestID(context.Background()) != "" {
		t.Error("expected empty request id for bare context")
	}
}
