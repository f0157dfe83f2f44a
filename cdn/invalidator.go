// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cdn

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Result is the outcome of one invalidation request.
type Result struct {
	Request  Request
	Output   []byte
	Err      error
	Duration time.Duration
}

func (r *Result) Success() bool {
	return r.Err == nil
}

// Invalidator issues invalidation requests through the cld executable.
type Invalidator struct {
	runner  Runner
	cldPath string
	timeout time.Duration
	log     *zap.Logger
}

func NewInvalidator(runner Runner, cldPath string, timeout time.Duration, log *zap.Logger) *Invalidator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Invalidator{
		runner:  runner,
		cldPath: cldPath,
		timeout: timeout,
		log:     log,
	}
}

// Invalidate runs one request to completion. A non-positive timeout leaves
// the request bounded only by ctx.
func (i *Invalidator) Invalidate(ctx context.Context, req Request) *Result {
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}
	start := time.Now()
	out, err := i.runner.Run(ctx, i.cldPath, req.Args()...)
	res := &Result{
		Request:  req,
		Output:   out,
		Err:      err,
		Duration: time.Since(start),
	}
	i.log.Debug("invalidation finished",
		zap.String("url", req.URL),
		zap.Duration("duration", res.Duration),
		zap.Error(err),
	)
	return res
}
