package observability

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestRecordErrorWritesStandardizedErrorResponse(t *testing.T) {
	counter, err := otel.Meter("test").Int64Counter("test.errors.total")
	if err != nil {
		t.Fatalf("creating counter: %v", err)
	}

	tests := []struct {
		opName string
		msg    string
		status int
	}{
		{opName: "press_keys", msg: "invalid request body", status: http.StatusBadRequest},
		{opName: "get", msg: "session not found", status: http.StatusNotFound},
		{opName: "create", msg: "too many sessions", status: http.StatusServiceUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.opName, func(t *testing.T) {
			ctx := ContextWithRequestID(context.Background(), "req-1")
			span := trace.SpanFromContext(ctx)
			core, logs := observer.New(zap.InfoLevel)

			w := httptest.NewRecorder()
			RecordError(ctx, span, zap.New(core), counter, tc.opName, tc.msg, errors.New("cause"), tc.status, w)

			resp := w.Result()
			if resp.StatusCode != tc.status {
				t.Fatalf("expected status %d, got %d", tc.status, resp.StatusCode)
			}
			if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
				t.Fatalf("expected Content-Type application/json, got %q", ct)
			}

			var body map[string]string
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatalf("decoding response body: %v", err)
			}
			if got := body["error"]; got != tc.msg {
				t.Fatalf("expected error %q, got %q", tc.msg, got)
			}
			if _, ok := body["request_id"]; ok {
				t.Fatal("did not expect request_id field in JSON body")
			}

			entries := logs.All()
			if len(entries) != 1 {
				t.Fatalf("expected 1 log entry, got %d", len(entries))
			}
			fields := entries[0].ContextMap()
			if fields["operation"] != tc.opName || fields["request_id"] != "req-1" {
				t.Fatalf("unexpected log fields %#v", fields)
			}
		})
	}
}
