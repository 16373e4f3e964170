package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"deskcalc/internal/handlers"
	"deskcalc/internal/keypad"
	"deskcalc/internal/observability"
)

// tracer is the session service's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("deskcalc/session")

// Handler serves the calculator sessions held by a Store.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// ---------------------------------------------------------------------------
// Session lifecycle
// ---------------------------------------------------------------------------

// Create handles POST /sessions
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger := startSpan(r, "session.create")
	defer span.End()

	s, err := h.store.Create()
	if errors.Is(err, ErrStoreFull) {
		observability.RecordError(ctx, span, logger, errorCounter, "create", "too many sessions", err, http.StatusServiceUnavailable, w)
		return
	}
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "create", "cannot create session", err, http.StatusInternalServerError, w)
		return
	}

	span.SetAttributes(attribute.String("session.id", s.ID))
	span.SetStatus(codes.Ok, "")
	logger.Info("session created",
		zap.String("session_id", s.ID),
		zap.Int("sessions", h.store.Len()),
	)

	handlers.WriteJSON(w, http.StatusCreated, s.Snapshot())
}

// Get handles GET /sessions/{id}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger := startSpan(r, "session.get")
	defer span.End()

	s, ok := h.lookup(ctx, span, logger, "get", w, r)
	if !ok {
		return
	}

	span.SetStatus(codes.Ok, "")
	handlers.WriteJSON(w, http.StatusOK, s.Snapshot())
}

// Delete handles DELETE /sessions/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger := startSpan(r, "session.delete")
	defer span.End()

	id := chi.URLParam(r, "id")
	span.SetAttributes(attribute.String("session.id", id))

	if !h.store.Delete(id) {
		observability.RecordError(ctx, span, logger, errorCounter, "delete", "session not found", fmt.Errorf("no session %q", id), http.StatusNotFound, w)
		return
	}

	span.SetStatus(codes.Ok, "")
	logger.Info("session deleted", zap.String("session_id", id))
	w.WriteHeader(http.StatusNoContent)
}

// ---------------------------------------------------------------------------
// Key presses
// ---------------------------------------------------------------------------

// PressKeys handles POST /sessions/{id}/keys. Every key in the body is
// dispatched under its own child span.
func (h *Handler) PressKeys(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger := startSpan(r, "session.keys")
	defer span.End()
	requestID := observability.RequestIDFromContext(ctx)

	s, ok := h.lookup(ctx, span, logger, "press_keys", w, r)
	if !ok {
		return
	}

	keys, ok := decodeKeys(ctx, span, logger, "press_keys", w, r)
	if !ok {
		return
	}

	snap, updates, elapsed := pressKeys(ctx, s, keys)

	requestHistogram.Record(ctx, elapsed, metric.WithAttributes(attribute.String("operation", "press_keys")))
	span.SetAttributes(attribute.String("session.display", snap.Display))
	span.SetStatus(codes.Ok, "")

	logger.Info("keys dispatched",
		zap.String("session_id", s.ID),
		zap.Int("keys", len(keys)),
		zap.String("display", snap.Display),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, KeysResponse{
		Snapshot:  snap,
		Updates:   updates,
		RequestID: requestID,
	})
}

// Evaluate handles POST /evaluate by running the keys on a throwaway session.
func (h *Handler) Evaluate(w http.ResponseWriter, r *http.Request) {
	ctx, span, logger := startSpan(r, "session.evaluate")
	defer span.End()
	requestID := observability.RequestIDFromContext(ctx)

	var req EvaluateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	keys, err := keypad.ParseKeys(req.Keys)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	opts := h.store.Options()
	if req.Precision != 0 {
		opts.Precision = req.Precision
	}
	span.SetAttributes(attribute.Int("calculator.precision", opts.Precision))

	s, err := New(uuid.NewString(), opts, logger)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "evaluate", "precision does not fit the display", err, http.StatusBadRequest, w)
		return
	}

	snap, updates, elapsed := pressKeys(ctx, s, keys)

	requestHistogram.Record(ctx, elapsed, metric.WithAttributes(attribute.String("operation", "evaluate")))
	span.SetStatus(codes.Ok, "")

	logger.Info("keys evaluated",
		zap.String("keys", req.Keys),
		zap.String("display", snap.Display),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	handlers.WriteJSON(w, http.StatusOK, EvaluateResponse{
		Display:   snap.Display,
		Error:     snap.Error,
		Updates:   updates,
		RequestID: requestID,
	})
}

// pressKeys dispatches keys on s, recording a child span and metrics for
// every key. It returns the final snapshot, the display updates and the
// elapsed time in milliseconds.
func pressKeys(ctx context.Context, s *Session, keys []keypad.KeyCode) (Snapshot, []string, float64) {
	updates := make([]string, 0, len(keys))
	start := time.Now()

	snap := s.PressKeys(keys, func(o KeyOutcome) {
		_, keySpan := tracer.Start(ctx, "session.key",
			trace.WithTimestamp(o.Started),
			trace.WithAttributes(
				attribute.String("key", o.Key.String()),
				attribute.Bool("key.dispatched", o.Dispatched),
			),
		)
		defer keySpan.End(trace.WithTimestamp(o.Started.Add(o.Duration)))

		keysCounter.Add(ctx, 1, metric.WithAttributes(
			attribute.String("key", o.Key.String()),
			attribute.Bool("dispatched", o.Dispatched),
		))
		if !o.Dispatched {
			return
		}
		updates = append(updates, o.Display)

		if o.Evaluated {
			recordEvaluation(ctx, keySpan, o)
		}
		keySpan.SetStatus(codes.Ok, "")
	})

	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms
	return snap, updates, elapsed
}

func recordEvaluation(ctx context.Context, span trace.Span, o KeyOutcome) {
	outcome := "ok"
	if o.Err != "" {
		outcome = "error"
	}
	attrs := metric.WithAttributes(
		attribute.String("operator", o.Operator),
		attribute.String("outcome", outcome),
	)
	evaluationsCounter.Add(ctx, 1, attrs)

	if o.Err != "" {
		errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("operation", "evaluate")))
		span.AddEvent("evaluation.failed", trace.WithAttributes(
			attribute.String("error", o.Err.String()),
		))
		return
	}

	span.AddEvent("evaluation.complete", trace.WithAttributes(
		attribute.String("result", o.Display),
	))
	if result, err := decimal.NewFromString(o.Display); err == nil {
		resultGauge.Record(ctx, result.InexactFloat64(), attrs)
	}
}

func startSpan(r *http.Request, name string) (context.Context, trace.Span, *zap.Logger) {
	ctx := r.Context()
	ctx, span := tracer.Start(ctx, name,
		trace.WithAttributes(
			attribute.String("request.id", observability.RequestIDFromContext(ctx)),
		),
	)
	return ctx, span, observability.LoggerWithTrace(ctx)
}

func (h *Handler) lookup(ctx context.Context, span trace.Span, logger *zap.Logger, opName string, w http.ResponseWriter, r *http.Request) (*Session, bool) {
	id := chi.URLParam(r, "id")
	span.SetAttributes(attribute.String("session.id", id))

	s, ok := h.store.Get(id)
	if !ok {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "session not found", fmt.Errorf("no session %q", id), http.StatusNotFound, w)
		return nil, false
	}
	return s, true
}

func decodeKeys(ctx context.Context, span trace.Span, logger *zap.Logger, opName string, w http.ResponseWriter, r *http.Request) ([]keypad.KeyCode, bool) {
	var req KeysRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, "invalid request body", err, http.StatusBadRequest, w)
		return nil, false
	}

	keys, err := keypad.ParseKeys(req.Keys)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, opName, err.Error(), err, http.StatusBadRequest, w)
		return nil, false
	}
	span.SetAttributes(attribute.Int("keys.count", len(keys)))
	return keys, true
}
