package net_test

import (
	"context"
	"testing"

	pnet "snapbridge/internal/platform/net"
)

func TestWithRequest_And_Getters(t *testing.T) {
	base := context.Background()

	t.Run("sets request id", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "req-123")
		if got := pnet.RequestID(ctx); got != "req-123" {
			t.Fatalf("RequestID got %q want %q", got, "req-123")
		}
	})

	t.Run("empty request id leaves ctx untouched", func(t *testing.T) {
		ctx := pnet.WithRequest(base, "")
		if ctx != base {
			t.Fatal("expected the same context back")
		}
		if got := pnet.RequestID(ctx); got != "" {
			t.Fatalf("RequestID got %q want empty", got)
		}
	})
}

func TestHostAndCommandIDs(t *testing.T) {
	ctx := pnet.WithHost(context.Background(), "mobile-app")
	ctx = pnet.WithCommandID(ctx, "cmd-1")

	if got := pnet.HostID(ctx); got != "mobile-app" {
		t.Fatalf("HostID got %q", got)
	}
	if got := pnet.CommandID(ctx); got != "cmd-1" {
		t.Fatalf("CommandID got %q", got)
	}

	bare := context.Background()
	if pnet.WithHost(bare, "") != bare || pnet.WithCommandID(bare, "") != bare {
		t.Fatal("empty ids should not wrap the context")
	}
	if pnet.HostID(bare) != "" || pnet.CommandID(bare) != "" {
		t.Fatal("expected empty ids on a bare context")
	}
}
