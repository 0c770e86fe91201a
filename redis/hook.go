package redis

import (
	"context"
	"net"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/kbukum/rediskit/redis"

// otelHook emits a client span and a duration measurement per command.
// It is attached opt-in via WithTracing.
type otelHook struct {
	tracer   trace.Tracer
	duration metric.Float64Histogram
	addr     string
}

func newOtelHook(addr string) (*otelHook, error) {
	duration, err := otel.Meter(instrumentationName).Float64Histogram(
		"redis.command.duration",
		metric.WithUnit("ms"),
		metric.WithDescription("Redis command round-trip duration"),
	)
	if err != nil {
		return nil, err
	}
	return &otelHook{
		tracer:   otel.Tracer(instrumentationName),
		duration: duration,
		addr:     addr,
	}, nil
}

// instrument attaches the OpenTelemetry hook to a driver client.
func instrument(client *goredis.Client, addr string) error {
	hook, err := newOtelHook(addr)
	if err != nil {
		return err
	}
	client.AddHook(hook)
	return nil
}

func (h *otelHook) DialHook(next goredis.DialHook) goredis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		ctx, span := h.tracer.Start(ctx, "redis.dial",
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(attribute.String("net.peer.name", addr)),
		)
		defer span.End()

		conn, err := next(ctx, network, addr)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return conn, err
	}
}

func (h *otelHook) ProcessHook(next goredis.ProcessHook) goredis.ProcessHook {
	return func(ctx context.Context, cmd goredis.Cmder) error {
		start := time.Now()
		ctx, span := h.tracer.Start(ctx, "redis."+cmd.Name(),
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("db.system", "redis"),
				attribute.String("db.operation", cmd.Name()),
				attribute.String("net.peer.name", h.addr),
			),
		)
		defer span.End()

		err := next(ctx, cmd)

		h.duration.Record(ctx, float64(time.Since(start).Microseconds())/1000.0,
			metric.WithAttributes(attribute.String("db.operation", cmd.Name())),
		)

		// A nil reply is an absent key, not a failure.
		if err != nil && err != goredis.Nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return err
	}
}

func (h *otelHook) ProcessPipelineHook(next goredis.ProcessPipelineHook) goredis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []goredis.Cmder) error {
		ctx, span := h.tracer.Start(ctx, "redis.pipeline",
			trace.WithSpanKind(trace.SpanKindClient),
			trace.WithAttributes(
				attribute.String("db.system", "redis"),
				attribute.Int("db.redis.num_cmd", len(cmds)),
				attribute.String("net.peer.name", h.addr),
			),
		)
		defer span.End()

		err := next(ctx, cmds)
		if err != nil && err != goredis.Nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return err
	}
}
