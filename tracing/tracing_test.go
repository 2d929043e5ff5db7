package tracing

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useMockTracer(t *testing.T) *mocktracer.MockTracer {
	t.Helper()
	previous := opentracing.GlobalTracer()
	tracer := mocktracer.New()
	opentracing.SetGlobalTracer(tracer)
	t.Cleanup(func() { opentracing.SetGlobalTracer(previous) })
	return tracer
}

func TestInitTracer(t *testing.T) {
	previous := opentracing.GlobalTracer()
	t.Cleanup(func() { opentracing.SetGlobalTracer(previous) })
	t.Setenv("JAEGER_DISABLED", "true")
	l, _ := test.NewNullLogger()

	closer, err := InitTracer(l)("atlas-stats-test")

	require.NoError(t, err)
	require.NotNil(t, closer)
	assert.NoError(t, closer.Close())
}

type recordingCloser struct {
	closed bool
	err    error
}

func (c *recordingCloser) Close() error {
	c.closed = true
	return c.err
}

func TestTeardown(t *testing.T) {
	tests := []struct {
		name       string
		closer     *recordingCloser
		wantErrLog bool
	}{
		{name: "closes_tracer", closer: &recordingCloser{}, wantErrLog: false},
		{name: "logs_close_error", closer: &recordingCloser{err: errors.New("close error")}, wantErrLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, hook := test.NewNullLogger()

			Teardown(l)(tt.closer)()

			assert.True(t, tt.closer.closed)
			if tt.wantErrLog {
				require.NotNil(t, hook.LastEntry())
				assert.Equal(t, logrus.ErrorLevel, hook.LastEntry().Level)
			} else {
				assert.Empty(t, hook.AllEntries())
			}
		})
	}
}

func TestTeardown_NilCloser(t *testing.T) {
	l, _ := test.NewNullLogger()
	var closer io.Closer

	assert.NotPanics(t, Teardown(l)(closer))
}

func TestStartSpan(t *testing.T) {
	tracer := useMockTracer(t)
	l, hook := test.NewNullLogger()

	sl, span := StartSpan(l, "stats.test", opentracing.Tag{Key: "amount", Value: 5})
	sl.Info("inside span")
	span.Finish()

	require.Len(t, tracer.FinishedSpans(), 1)
	finished := tracer.FinishedSpans()[0]
	assert.Equal(t, "stats.test", finished.OperationName)
	assert.Equal(t, 5, finished.Tag("amount"))
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "stats.test", hook.LastEntry().Data["span.name"])
}

func TestStartSpanFromContext_ChildOfParent(t *testing.T) {
	tracer := useMockTracer(t)
	l, _ := test.NewNullLogger()

	parent := tracer.StartSpan("parent")
	ctx := opentracing.ContextWithSpan(context.Background(), parent)

	_, child, sctx := StartSpanFromContext(ctx, l, "child")
	child.Finish()
	parent.Finish()

	assert.Same(t, child, opentracing.SpanFromContext(sctx))
	spans := tracer.FinishedSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "child", spans[0].OperationName)
	assert.Equal(t, spans[1].SpanContext.SpanID, spans[0].ParentID)
}

func TestLogrusAdapter(t *testing.T) {
	l, hook := test.NewNullLogger()
	adapter := LogrusAdapter{logger: l}

	adapter.Error("reporter failed")
	adapter.Infof("initializing %s", "tracer")

	entries := hook.AllEntries()
	require.Len(t, entries, 2)
	assert.Equal(t, logrus.ErrorLevel, entries[0].Level)
	assert.Equal(t, "reporter failed", entries[0].Message)
	assert.Equal(t, logrus.InfoLevel, entries[1].Level)
	assert.Equal(t, "initializing tracer", entries[1].Message)
}
