package tracing

import (
	"context"
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"github.com/uber/jaeger-client-go"
	"github.com/uber/jaeger-client-go/config"
)

// InitTracer configures a jaeger tracer from the JAEGER_* environment and installs it as the global tracer
func InitTracer(l logrus.FieldLogger) func(serviceName string) (io.Closer, error) {
	return func(serviceName string) (io.Closer, error) {
		cfg, err := config.FromEnv()
		if err != nil {
			l.WithError(err).Warn("Unable to read tracer configuration from environment, using defaults.")
			cfg = &config.Configuration{}
		}
		cfg.ServiceName = serviceName
		if cfg.Sampler == nil || cfg.Sampler.Type == "" {
			cfg.Sampler = &config.SamplerConfig{
				Type:  jaeger.SamplerTypeConst,
				Param: 1,
			}
		}

		tracer, closer, err := cfg.NewTracer(config.Logger(LogrusAdapter{logger: l}))
		if err != nil {
			l.WithError(err).Error("Unable to create tracer.")
			return nil, err
		}
		opentracing.SetGlobalTracer(tracer)
		return closer, nil
	}
}

// Teardown returns a function closing the tracer
func Teardown(l logrus.FieldLogger) func(tracerCloser io.Closer) func() {
	return func(tracerCloser io.Closer) func() {
		return func() {
			if tracerCloser == nil {
				return
			}
			if err := tracerCloser.Close(); err != nil {
				l.WithError(err).Error("Unable to close tracer.")
			}
		}
	}
}

// StartSpan starts a root span and returns a logger annotated with it
func StartSpan(l logrus.FieldLogger, name string, opts ...opentracing.StartSpanOption) (logrus.FieldLogger, opentracing.Span) {
	span := opentracing.StartSpan(name, opts...)
	return annotate(l, name, span), span
}

// StartSpanFromContext starts a span as a child of any span carried by ctx
func StartSpanFromContext(ctx context.Context, l logrus.FieldLogger, name string, opts ...opentracing.StartSpanOption) (logrus.FieldLogger, opentracing.Span, context.Context) {
	span, sctx := opentracing.StartSpanFromContext(ctx, name, opts...)
	return annotate(l, name, span), span, sctx
}

func annotate(l logrus.FieldLogger, name string, span opentracing.Span) logrus.FieldLogger {
	sl := l.WithField("span.name", name)
	if sc, ok := span.Context().(jaeger.SpanContext); ok {
		sl = sl.WithFields(logrus.Fields{
			"trace.id": sc.TraceID().String(),
			"span.id":  sc.SpanID().String(),
		})
	}
	return sl
}

// LogrusAdapter routes jaeger client logs to logrus
type LogrusAdapter struct {
	logger logrus.FieldLogger
}

func (a LogrusAdapter) Error(msg string) {
	a.logger.Error(msg)
}

func (a LogrusAdapter) Infof(msg string, args ...interface{}) {
	a.logger.Infof(msg, args...)
}
