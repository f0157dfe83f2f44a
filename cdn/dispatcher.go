// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cdn

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Handler observes a request before it is issued (res == nil) and after it
// finishes. It may be called from several goroutines at once.
type Handler func(req Request, res *Result)

// Dispatch issues every request with at most limit running at a time and
// waits for all of them. limit <= 0 means no bound. Individual failures are
// reported through handle only; Dispatch returns the context error, if any.
func Dispatch(ctx context.Context, inv *Invalidator, reqs []Request, limit int, handle Handler) error {
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for _, req := range reqs {
		req := req
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if handle != nil {
				handle(req, nil)
			}
			res := inv.Invalidate(gctx, req)
			if handle != nil {
				handle(req, res)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
