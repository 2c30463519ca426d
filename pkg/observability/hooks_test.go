package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	a := NoopAnalysisHooks{}
	a.OnEnumerate(ctx, "src", 12)
	a.OnParseStart(ctx, "src/OrderService.java")
	a.OnParseComplete(ctx, "src/OrderService.java", time.Millisecond, nil)
	a.OnAssemble(ctx, 10, 14, time.Millisecond)
	a.OnLayerStart(ctx, 10)
	a.OnLayerComplete(ctx, time.Millisecond, nil)
	a.OnRenderStart(ctx, []string{"dot"})
	a.OnRenderComplete(ctx, []string{"dot"}, time.Second, nil)

	s := NoopSinkHooks{}
	s.OnPublish(ctx, "redis", 2048, time.Millisecond, nil)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Analysis().(NoopAnalysisHooks); !ok {
		t.Error("Analysis() should return NoopAnalysisHooks by default")
	}
	if _, ok := Sink().(NoopSinkHooks); !ok {
		t.Error("Sink() should return NoopSinkHooks by default")
	}

	customAnalysis := &testAnalysisHooks{}
	SetAnalysisHooks(customAnalysis)
	if Analysis() != customAnalysis {
		t.Error("SetAnalysisHooks should set custom hooks")
	}

	customSink := &testSinkHooks{}
	SetSinkHooks(customSink)
	if Sink() != customSink {
		t.Error("SetSinkHooks should set custom hooks")
	}

	Reset()
	if _, ok := Analysis().(NoopAnalysisHooks); !ok {
		t.Error("Reset() should restore NoopAnalysisHooks")
	}
	if _, ok := Sink().(NoopSinkHooks); !ok {
		t.Error("Reset() should restore NoopSinkHooks")
	}
}

func TestSetNilHooksIsIgnored(t *testing.T) {
	Reset()

	custom := &testAnalysisHooks{}
	SetAnalysisHooks(custom)
	SetAnalysisHooks(nil)

	if Analysis() != custom {
		t.Error("SetAnalysisHooks(nil) should be ignored")
	}

	Reset()
}

type testAnalysisHooks struct{ NoopAnalysisHooks }
type testSinkHooks struct{ NoopSinkHooks }
