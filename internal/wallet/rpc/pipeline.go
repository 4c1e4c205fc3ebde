package rpc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// PipelineConfig describes the endpoints of one network.
type PipelineConfig struct {
	Endpoints         []string
	CapabilityHeader  string
	CapabilityMethods []string
	Timeout           time.Duration
	RateLimit         int
	Metrics           Metrics
	HTTPClient        *http.Client
	RetryOptions      []RetryOption
}

// NewPipeline builds a capability router per endpoint and composes them.
func NewPipeline(cfg PipelineConfig, tracker ErrorTracker, logger *zap.Logger) (Transport, error) {
	if len(cfg.Endpoints) == 0 {
		return nil, errors.New("pipeline requires at least one endpoint")
	}
	header := cfg.CapabilityHeader
	if header == "" {
		header = DefaultCapabilityHeader
	}
	methods := cfg.CapabilityMethods
	if methods == nil {
		methods = DefaultCapabilityMethods
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}

	routers := make([]Transport, 0, len(cfg.Endpoints))
	for _, endpoint := range cfg.Endpoints {
		limiter := ratelimit.NewUnlimited()
		if cfg.RateLimit > 0 {
			limiter = ratelimit.New(cfg.RateLimit)
		}
		common := []HTTPOption{
			WithHTTPClient(httpClient),
			WithLimiter(limiter),
			WithMetrics(cfg.Metrics),
		}
		enabled, err := NewHTTPClient(endpoint, append(common, WithHeader(header, "true"))...)
		if err != nil {
			return nil, fmt.Errorf("build client for %s: %w", endpoint, err)
		}
		disabled, err := NewHTTPClient(endpoint, append(common, WithHeader(header, "false"))...)
		if err != nil {
			return nil, fmt.Errorf("build client for %s: %w", endpoint, err)
		}
		routers = append(routers, NewCapabilityRouter(enabled, disabled, methods))
	}
	return Compose(routers, tracker, logger, cfg.RetryOptions...)
}

// Compose nests the layers as Observed(Retrying(Failover(endpoints))).
func Compose(endpoints []Transport, tracker ErrorTracker, logger *zap.Logger, opts ...RetryOption) (Transport, error) {
	failover, err := NewFailover(endpoints, WithFailureHook(func(ctx context.Context, req *Request, err error) {
		trackError(ctx, tracker, logger, transportRecord(KindFailover, req, err))
	}))
	if err != nil {
		return nil, fmt.Errorf("build failover: %w", err)
	}
	retrying := NewRetrying(failover, logger.Named("retry"), opts...)
	return NewObserved(retrying, tracker, logger.Named("observed")), nil
}
