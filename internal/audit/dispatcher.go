// Copyright (c) 2026 The cinelog authors

// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to
// deal in the Software without restriction, including without limitation the
// rights to use, copy, modify, merge, publish, distribute, sublicense, and/or
// sell copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:

// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.

// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING
// FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER
// DEALINGS IN THE SOFTWARE.

package audit

import (
	"context"
	"log/slog"
	"time"
)

// writeTimeout bounds a single detached audit write.
const writeTimeout = 10 * time.Second

// StoreProvider returns a persistence handle scoped to one detached write.
// It is invoked at dispatch time, never at request time, so the write can
// outlive the request's own resources.
type StoreProvider func() (Store, error)

// Dispatcher persists audit entries off the request's critical path.
// Writes are fire-and-forget: failures are logged and never surface to
// the request that produced the entry.
type Dispatcher struct {
	logger   *slog.Logger
	provider StoreProvider
}

// NewDispatcher creates a Dispatcher backed by the given provider.
func NewDispatcher(
	logger *slog.Logger,
	provider StoreProvider,
) *Dispatcher {
	return &Dispatcher{
		logger:   logger,
		provider: provider,
	}
}

// Dispatch launches a detached write of the entry. The write uses a
// background context: cancellation of the originating request does not
// abort a write already started.
func (d *Dispatcher) Dispatch(
	entry Entry,
) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		defer cancel()

		store, err := d.provider()
		if err != nil {
			d.logger.Error(
				"failed to acquire audit store",
				slog.String("error", err.Error()),
				slog.String("entry_id", entry.ID),
			)
			return
		}

		if err := store.Write(ctx, entry); err != nil {
			d.logger.Error(
				"failed to write audit entry",
				slog.String("error", err.Error()),
				slog.String("entry_id", entry.ID),
			)
		}
	}()
}
