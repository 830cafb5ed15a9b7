package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	e := NoopEngineHooks{}
	e.OnSuggest(ctx, "chart", 5, time.Millisecond)
	e.OnPredict(ctx, true, 0.8, time.Millisecond)
	e.OnTransform(ctx, "pixel", false)

	h := NoopHTTPHooks{}
	h.OnResponse(ctx, "POST", "/v1/suggestions", 200, time.Millisecond)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Error("Engine() should return NoopEngineHooks by default")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("HTTP() should return NoopHTTPHooks by default")
	}

	customEngine := &testEngineHooks{}
	SetEngineHooks(customEngine)
	if Engine() != customEngine {
		t.Error("SetEngineHooks should set custom hooks")
	}

	customHTTP := &testHTTPHooks{}
	SetHTTPHooks(customHTTP)
	if HTTP() != customHTTP {
		t.Error("SetHTTPHooks should set custom hooks")
	}

	Reset()
	if _, ok := Engine().(NoopEngineHooks); !ok {
		t.Error("Reset() should restore NoopEngineHooks")
	}
	if _, ok := HTTP().(NoopHTTPHooks); !ok {
		t.Error("Reset() should restore NoopHTTPHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testEngineHooks{}
	SetEngineHooks(custom)
	SetEngineHooks(nil)

	if Engine() != custom {
		t.Error("SetEngineHooks(nil) should be ignored")
	}
}

func TestCustomHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	custom := &testEngineHooks{}
	SetEngineHooks(custom)

	Engine().OnTransform(context.Background(), "grid", true)
	Engine().OnTransform(context.Background(), "pixel", false)

	if custom.transforms != 2 {
		t.Errorf("transforms = %d, want 2", custom.transforms)
	}
}

type testEngineHooks struct {
	NoopEngineHooks
	transforms int
}

func (h *testEngineHooks) OnTransform(context.Context, string, bool) { h.transforms++ }

type testHTTPHooks struct{ NoopHTTPHooks }
