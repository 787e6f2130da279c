// Package app holds the shared dashboard state: the navigation stack, the
// per-provider results, the search box, and the dispatch queue that feeds
// the network worker.
//
// A single mutex guards State. The UI goroutine takes it to apply a key
// press and to render; the worker takes it only to write results, never
// across a network call.
package app

import (
	"sync"

	"go.uber.org/zap"

	"github.com/gravitrone/osintui/internal/editor"
	"github.com/gravitrone/osintui/internal/logging"
)

// State is the application state shared by the UI and the worker.
// Callers must hold the lock (Lock/Unlock or Update) for every field access.
type State struct {
	mu sync.Mutex

	Nav        *Stack
	Input      *editor.Editor
	Censys     CensysState
	Shodan     ShodanState
	VirusTotal VirusTotalState

	// InputError is set when the last submit was not a valid IP.
	InputError bool
	// APIError is the message shown on the Error route.
	APIError string
	// LastQuery is the normalized value of the last submit.
	LastQuery  string
	HomeScroll int

	enabled  map[Provider]bool
	inFlight int
	queue    Sender
}

// NewState creates the initial state. enabled lists the providers that have
// credentials; queue receives dispatched lookups and may be nil.
func NewState(queue Sender, enabled ...Provider) *State {
	s := &State{
		Nav:     NewStack(),
		Input:   editor.New(),
		enabled: make(map[Provider]bool, len(enabled)),
		queue:   queue,
	}
	for _, p := range enabled {
		s.enabled[p] = true
	}
	return s
}

// Lock acquires the state lock.
func (s *State) Lock() { s.mu.Lock() }

// Unlock releases the state lock.
func (s *State) Unlock() { s.mu.Unlock() }

// Update runs fn with the lock held.
func (s *State) Update(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

// Enabled reports whether p has credentials configured.
func (s *State) Enabled(p Provider) bool {
	return s.enabled[p]
}

// Status returns the lookup status of p.
func (s *State) Status(p Provider) Status {
	switch p {
	case ProviderCensys:
		return s.Censys.Status
	case ProviderShodan:
		return s.Shodan.Status
	case ProviderVirusTotal:
		return s.VirusTotal.Status
	}
	return StatusNotQueried
}

// SetStatus overwrites the lookup status of p.
func (s *State) SetStatus(p Provider, status Status) {
	switch p {
	case ProviderCensys:
		s.Censys.Status = status
	case ProviderShodan:
		s.Shodan.Status = status
	case ProviderVirusTotal:
		s.VirusTotal.Status = status
	}
}

// Loading reports whether any dispatched lookup is still unresolved.
func (s *State) Loading() bool {
	return s.inFlight > 0
}

// InFlight returns the number of unresolved lookups.
func (s *State) InFlight() int {
	return s.inFlight
}

// Dispatch enqueues req and marks it in flight. A failed send is undone
// locally and only logged.
func (s *State) Dispatch(req Request) {
	s.inFlight++
	if s.queue == nil {
		s.inFlight--
		logging.Warn("dispatch dropped: no worker", zap.Stringer("provider", req.Provider))
		return
	}
	if err := s.queue.Send(req); err != nil {
		s.inFlight--
		logging.Warn("dispatch failed",
			zap.Stringer("provider", req.Provider),
			zap.String("ip", req.IP),
			zap.Error(err),
		)
		return
	}
	logging.Debug("lookup dispatched", zap.Stringer("provider", req.Provider), zap.String("ip", req.IP))
}

// Resolved marks one dispatched lookup as finished.
func (s *State) Resolved() {
	if s.inFlight > 0 {
		s.inFlight--
	}
}

// Fail pushes the Error route with msg.
func (s *State) Fail(msg string) {
	s.APIError = msg
	s.Nav.Push(RouteError, BlockError)
}
