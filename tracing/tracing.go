package tracing

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"github.com/uber/jaeger-client-go"
	"github.com/uber/jaeger-client-go/config"
)

// InitTracer configures the global jaeger tracer from the JAEGER_* environment
func InitTracer(l logrus.FieldLogger) func(serviceName string) (io.Closer, error) {
	return func(serviceName string) (io.Closer, error) {
		cfg, err := config.FromEnv()
		if err != nil {
			return nil, err
		}
		cfg.ServiceName = serviceName
		cfg.Sampler = &config.SamplerConfig{
			Type:  jaeger.SamplerTypeConst,
			Param: 1,
		}

		tracer, closer, err := cfg.NewTracer(config.Logger(LogrusAdapter{logger: l}))
		if err != nil {
			return nil, err
		}
		opentracing.SetGlobalTracer(tracer)
		return closer, nil
	}
}

// Teardown closes the tracer on shutdown
func Teardown(l logrus.FieldLogger) func(tc io.Closer) func() {
	return func(tc io.Closer) func() {
		return func() {
			if err := tc.Close(); err != nil {
				l.WithError(err).Errorf("Unable to close tracer.")
			}
		}
	}
}

// StartSpan starts a span on the global tracer and returns a logger carrying its identifiers
func StartSpan(l logrus.FieldLogger, name string, opts ...opentracing.StartSpanOption) (logrus.FieldLogger, opentracing.Span) {
	span := opentracing.StartSpan(name, opts...)
	sl := l.WithField("span.name", name)
	if sc, ok := span.Context().(jaeger.SpanContext); ok {
		sl = sl.WithFields(logrus.Fields{
			"trace.id": sc.TraceID().String(),
			"span.id":  sc.SpanID().String(),
		})
	}
	return sl, span
}

// LogrusAdapter routes jaeger client logging through logrus
type LogrusAdapter struct {
	logger logrus.FieldLogger
}

func (a LogrusAdapter) Error(msg string) {
	a.logger.Error(msg)
}

func (a LogrusAdapter) Infof(msg string, args ...interface{}) {
	a.logger.Infof(msg, args...)
}
