// Package network runs provider lookups off the UI goroutine. A single
// Worker drains the dispatch queue one request at a time and writes each
// outcome back into the shared state.
package network

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/gravitrone/osintui/internal/api"
	"github.com/gravitrone/osintui/internal/app"
	"github.com/gravitrone/osintui/internal/logging"
)

// Receiver is the consumer half of the dispatch queue.
type Receiver interface {
	Receive() (app.Request, bool)
}

// Worker serves lookup requests.
type Worker struct {
	state   *app.State
	queue   Receiver
	clients Clients
}

// NewWorker creates a worker that reads from queue and writes into state.
func NewWorker(state *app.State, queue Receiver, clients Clients) *Worker {
	return &Worker{state: state, queue: queue, clients: clients}
}

// Run serves requests until the queue is closed or ctx is done. A request
// already in progress always finishes first.
func (w *Worker) Run(ctx context.Context) {
	logging.Debug("worker started")
	defer logging.Debug("worker stopped")

	for ctx.Err() == nil {
		req, ok := w.queue.Receive()
		if !ok {
			return
		}
		w.Handle(ctx, req)
	}
}

// Handle performs one lookup and records the outcome. The network call runs
// without the state lock; the lock is taken once to apply the result.
func (w *Worker) Handle(ctx context.Context, req app.Request) {
	start := time.Now()
	apply, err := w.fetch(ctx, req)

	fields := []zap.Field{
		zap.Stringer("provider", req.Provider),
		zap.String("ip", req.IP),
		zap.Duration("elapsed", time.Since(start)),
	}

	w.state.Update(func(st *app.State) {
		defer st.Resolved()

		switch {
		case err == nil:
			apply(st)
			logging.Debug("lookup found", fields...)
		case errors.Is(err, api.ErrNotFound):
			st.SetStatus(req.Provider, app.StatusNotFound)
			logging.Debug("lookup not found", fields...)
		default:
			st.Fail(err.Error())
			logging.Warn("lookup failed", append(fields, zap.Error(err))...)
		}
	})
}

// fetch runs the provider call and returns a closure that stores the
// payload. It must not touch the state.
func (w *Worker) fetch(ctx context.Context, req app.Request) (func(*app.State), error) {
	switch req.Provider {
	case app.ProviderCensys:
		if w.clients.Censys == nil {
			return nil, errNotConfigured(req.Provider)
		}
		host, err := w.clients.Censys.Host(ctx, req.IP)
		if err != nil {
			return nil, err
		}
		return func(st *app.State) { st.Censys.SetHost(host) }, nil

	case app.ProviderShodan:
		if w.clients.Shodan == nil {
			return nil, errNotConfigured(req.Provider)
		}
		host, err := w.clients.Shodan.Host(ctx, req.IP)
		if err != nil {
			return nil, err
		}
		return func(st *app.State) { st.Shodan.SetHost(host) }, nil

	case app.ProviderVirusTotal:
		if w.clients.VirusTotal == nil {
			return nil, errNotConfigured(req.Provider)
		}
		report, comments, err := VirusTotalReport(ctx, w.clients.VirusTotal, req.IP)
		if err != nil {
			return nil, err
		}
		return func(st *app.State) { st.VirusTotal.SetReport(report, comments) }, nil
	}
	return nil, fmt.Errorf("unknown provider %d", int(req.Provider))
}

func errNotConfigured(p app.Provider) error {
	return fmt.Errorf("%s: no API credentials configured", p.Title())
}
