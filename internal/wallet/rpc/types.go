package rpc

import (
	"context"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
	ErrorTracker interface {
		Track(ctx context.Context, record ErrorRecord) error
	}
)
