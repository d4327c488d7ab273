package observability

import (
	"context"
	"fmt"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	// Pipeline hooks
	p := NoopPipelineHooks{}
	p.OnGenerateStart(ctx, "10x15 end=3 side=3")
	p.OnGenerateComplete(ctx, "10x15 end=3 side=3", 30, time.Second, nil)
	p.OnEdit(ctx, "toggle_gate side1[2]", true)
	p.OnBOM(ctx, 9, 106, time.Millisecond)
	p.OnRenderStart(ctx, []string{"svg"})
	p.OnRenderComplete(ctx, []string{"svg"}, time.Second, nil)

	// Cache hooks
	c := NoopCacheHooks{}
	c.OnCacheHit(ctx, "court")
	c.OnCacheMiss(ctx, "bom")
	c.OnCacheSet(ctx, "artifact", 1024)

	// HTTP hooks
	h := NoopHTTPHooks{}
	h.OnRequest(ctx, "req-1", "POST", "/v1/courts")
	h.OnResponse(ctx, "req-1", "POST", "/v1/courts", 200, time.Second)
	h.OnError(ctx, "req-1", "POST", "/v1/courts", nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	// Reset to known state
	Reset()

	// Verify defaults are noop
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Pipeline() should return NoopPipelineHooks by default")
	}
	if _, ok := Cache().(NoopCacheHooks); !ok {
		t.Error("Cache() should return NoopCacheHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	// Set custom hooks
	customPipeline := &testPipelineHooks{}
	SetPipelineHooks(customPipeline)
	if Pipeline() != customPipeline {
		t.Error("SetPipelineHooks should set custom hooks")
	}

	customCache := &testCacheHooks{}
	SetCacheHooks(customCache)
	if Cache() != customCache {
		t.Error("SetCacheHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	// Reset and verify
	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset() should restore NoopPipelineHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testPipelineHooks{}
	SetPipelineHooks(custom)

	// Setting nil should be ignored
	SetPipelineHooks(nil)

	if Pipeline() != custom {
		t.Error("SetPipelineHooks(nil) should be ignored")
	}

	Reset()
}

func TestRegisteredHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	rec := &recordingPipelineHooks{}
	SetPipelineHooks(rec)

	ctx := context.Background()
	Pipeline().OnEdit(ctx, "toggle_gate side1[2]", true)
	Pipeline().OnEdit(ctx, "set_section_height end1[2]=4m", false)

	want := []string{"toggle_gate side1[2] true", "set_section_height end1[2]=4m false"}
	if len(rec.edits) != len(want) {
		t.Fatalf("edits = %v, want %v", rec.edits, want)
	}
	for i := range want {
		if rec.edits[i] != want[i] {
			t.Errorf("edits[%d] = %q, want %q", i, rec.edits[i], want[i])
		}
	}
}

// Test implementations
type recordingPipelineHooks struct {
	NoopPipelineHooks
	edits []string
}

func (r *recordingPipelineHooks) OnEdit(_ context.Context, op string, applied bool) {
	r.edits = append(r.edits, fmt.Sprintf("%s %t", op, applied))
}

type testPipelineHooks struct{ NoopPipelineHooks }
type testCacheHooks struct{ NoopCacheHooks }
type testHTTPHooks struct{ NoopHTTPHooks }
