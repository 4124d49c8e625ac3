package telemetry

import (
	"context"
	"testing"
)

func TestSetupDisabled(t *testing.T) {
	t.Setenv(EnvEndpoint, "")

	if Enabled() {
		t.Fatal("Enabled() should be false without an endpoint")
	}

	shutdown, err := Setup(context.Background())
	if err != nil {
		t.Fatalf("Setup() failed: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Errorf("shutdown() failed: %v", err)
	}
}

func TestTracersUsable(t *testing.T) {
	ctx := context.Background()

	_, span := Tracer("test").Start(ctx, "op")
	span.AddEvent("event")
	span.End()

	_, span = NoopTracer().Start(ctx, "noop")
	if span.IsRecording() {
		t.Error("noop tracer should not record")
	}
	span.End()
}
