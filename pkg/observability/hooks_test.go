package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Routing hooks
	r := NoopRoutingHooks{}
	r.OnRouteStart(ctx, "pass-1", 10)
	r.OnRouteComplete(ctx, "pass-1", 9, 1, time.Second, nil)
	r.OnEdgeDropped(ctx, "pass-1", "e4")

	// Render hooks
	rn := NoopRenderHooks{}
	rn.OnRenderStart(ctx, []string{"svg"})
	rn.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "route")
	c.OnCacheMiss(ctx, "artifact")
	c.OnCacheSet(ctx, "artifact", 1024)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()
	defer Reset()

	// Verify defaults are noop
	if _, ok := Routing().(NoopRoutingHooks); !ok {
		t.Error("Routing() should return NoopRoutingHooks by default")
	}
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}

	// Set custom hooks
	customRouting := &testRoutingHooks{}
	SetRoutingHooks(customRouting)
	if Routing() != customRouting {
		t.Error("SetRoutingHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	// Nil registration is ignored
	SetRoutingHooks(nil)
	if Routing() != customRouting {
		t.Error("SetRoutingHooks(nil) should keep the previous hooks")
	}

	// Reset restores noop defaults
	Reset()
	if _, ok := Routing().(NoopRoutingHooks); !ok {
		t.Error("Reset should restore NoopRoutingHooks")
	}
}

func TestHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testRoutingHooks{}
	SetRoutingHooks(h)

	ctx := context.Background()
	Routing().OnRouteStart(ctx, "pass-1", 3)
	Routing().OnEdgeDropped(ctx, "pass-1", "e2")
	Routing().OnRouteComplete(ctx, "pass-1", 2, 1, time.Millisecond, nil)

	if h.starts != 1 || h.drops != 1 || h.completes != 1 {
		t.Errorf("hooks saw starts=%d drops=%d completes=%d, want 1 each", h.starts, h.drops, h.completes)
	}
}

// testRoutingHooks counts received events.
type testRoutingHooks struct {
	starts, drops, completes int
}

func (h *testRoutingHooks) OnRouteStart(context.Context, string, int) { h.starts++ }
func (h *testRoutingHooks) OnRouteComplete(context.Context, string, int, int, time.Duration, error) {
	h.completes++
}
func (h *testRoutingHooks) OnEdgeDropped(context.Context, string, string) { h.drops++ }

// testCacheHooks counts received events.
type testCacheHooks struct {
	hits, misses, sets int
}

func (h *testCacheHooks) OnCacheHit(context.Context, string)      { h.hits++ }
func (h *testCacheHooks) OnCacheMiss(context.Context, string)     { h.misses++ }
func (h *testCacheHooks) OnCacheSet(context.Context, string, int) { h.sets++ }
