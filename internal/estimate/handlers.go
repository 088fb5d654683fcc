package estimate

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"paintbid/internal/observability"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// tracer is the estimate domain's dedicated OpenTelemetry tracer.
var tracer = otel.Tracer("estimate")

// EstimateBid handles POST /bids/estimate — computes the full bid figures
// and returns them as JSON, with an advisory note on week feasibility.
func EstimateBid(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "estimate.bid",
		trace.WithAttributes(
			attribute.String("estimate.operation", "bid"),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	req, err := decodeBidRequest(r)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "bid", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	span.SetAttributes(
		attribute.Int("bid.square_feet", req.SquareFeet),
		attribute.String("bid.scope", req.Scope),
		attribute.String("bid.prep_level", req.PrepLevel),
		attribute.Int("bid.crew_size", req.CrewSize),
	)

	start := time.Now()
	est, err := Compute(req)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0 // ms

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "bid", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	attrs := metric.WithAttributes(attribute.String("operation", "bid"))
	bidsCounter.Add(ctx, 1, attrs)
	bidsHistogram.Record(ctx, elapsed, attrs)
	totalCostGauge.Record(ctx, est.TotalCost, attrs)

	span.AddEvent("estimate.complete", trace.WithAttributes(
		attribute.Float64("total_hours", est.TotalHours),
		attribute.Float64("total_cost", est.TotalCost),
		attribute.Bool("fits_in_week", est.FitsInWeek),
		attribute.Float64("duration_ms", elapsed),
	))
	span.SetAttributes(attribute.Float64("bid.total_cost", est.TotalCost))
	span.SetStatus(codes.Ok, "")

	logger.Info("bid estimate completed",
		zap.Int("square_feet", est.SquareFeet),
		zap.String("scope", est.Scope),
		zap.String("prep_level", est.PrepLevel),
		zap.Int("crew_size", est.CrewSize),
		zap.Float64("total_hours", est.TotalHours),
		zap.Float64("total_cost", est.TotalCost),
		zap.Bool("fits_in_week", est.FitsInWeek),
		zap.String("request_id", requestID),
		zap.Float64("duration_ms", elapsed),
	)

	resp := EstimateResponse{
		Estimate:  est,
		Note:      Note(est),
		RequestID: requestID,
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(resp)
}

// BidDocument handles POST /bids/document — renders the one-page bid and
// serves it as a downloadable attachment. A bid that cannot be finished in
// one week is refused rather than put on paper.
func BidDocument(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := observability.LoggerWithTrace(ctx)
	requestID := observability.RequestIDFromContext(ctx)

	ctx, span := tracer.Start(ctx, "estimate.document",
		trace.WithAttributes(
			attribute.String("estimate.operation", "document"),
			attribute.String("request.id", requestID),
		),
	)
	defer span.End()

	req, err := decodeBidRequest(r)
	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "document", "invalid request body", err, http.StatusBadRequest, w)
		return
	}

	start := time.Now()
	est, err := Compute(req)
	elapsed := float64(time.Since(start).Microseconds()) / 1000.0

	if err != nil {
		observability.RecordError(ctx, span, logger, errorCounter, "document", err.Error(), err, http.StatusBadRequest, w)
		return
	}

	if !est.FitsInWeek {
		err := fmt.Errorf("%.1f hours per painter exceeds the one-week limit of %.0f", est.HoursPerPainter, MaxWeekHours)
		observability.RecordError(ctx, span, logger, errorCounter, "document", Note(est), err, http.StatusUnprocessableEntity, w)
		return
	}

	doc := RenderDocument(est, time.Now())

	attrs := metric.WithAttributes(attribute.String("operation", "document"))
	bidsCounter.Add(ctx, 1, attrs)
	bidsHistogram.Record(ctx, elapsed, attrs)
	totalCostGauge.Record(ctx, est.TotalCost, attrs)

	span.AddEvent("document.rendered", trace.WithAttributes(
		attribute.Int("document.bytes", len(doc)),
		attribute.Float64("total_cost", est.TotalCost),
	))
	span.SetStatus(codes.Ok, "")

	logger.Info("bid document generated",
		zap.Int("square_feet", est.SquareFeet),
		zap.String("scope", est.Scope),
		zap.Float64("total_cost", est.TotalCost),
		zap.Int("bytes", len(doc)),
		zap.String("request_id", requestID),
	)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", DocumentFilename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(doc))
}

// decodeBidRequest reads a bid request from either a JSON body or an
// HTML form submission, so the form page can post straight to the API.
func decodeBidRequest(r *http.Request) (BidRequest, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "application/x-www-form-urlencoded") || strings.HasPrefix(ct, "multipart/form-data") {
		return decodeBidForm(r)
	}

	var req BidRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return BidRequest{}, err
	}
	return req, nil
}

func decodeBidForm(r *http.Request) (BidRequest, error) {
	if err := r.ParseForm(); err != nil {
		return BidRequest{}, fmt.Errorf("parse form: %w", err)
	}

	sqft, err := formInt(r, "square_feet")
	if err != nil {
		return BidRequest{}, err
	}
	crew, err := formInt(r, "crew_size")
	if err != nil {
		return BidRequest{}, err
	}

	return BidRequest{
		SquareFeet: sqft,
		Scope:      r.PostFormValue("scope"),
		PrepLevel:  r.PostFormValue("prep_level"),
		CrewSize:   crew,
	}, nil
}

func formInt(r *http.Request, field string) (int, error) {
	raw := r.PostFormValue(field)
	if raw == "" {
		return 0, errors.New(field + " is required")
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a whole number: %w", field, err)
	}
	return v, nil
}
