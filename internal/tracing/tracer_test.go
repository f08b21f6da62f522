// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"testing"

	"github.com/hubsign/landing-service/internal/logging"
)

func TestNewTracerDisabled(t *testing.T) {
	tracer := NewTracer(NewConfig(false, "", "", logging.NewNoopLogger()))

	ctx, span := tracer.Start(context.Background(), "tracing.Test")
	defer span.End()

	if ctx == nil {
		t.Fatal("expected context")
	}
	if span.SpanContext().IsValid() {
		t.Error("expected noop span when tracing is disabled")
	}
}

func TestNewNoopTracer(t *testing.T) {
	_, span := NewNoopTracer().Start(context.Background(), "tracing.Test")
	defer span.End()

	if span.IsRecording() {
		t.Error("noop span must not record")
	}
}
