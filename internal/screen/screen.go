package screen

import (
	"context"
	"errors"
	"log"
	"sync"
	"windvane/internal/display"
	"windvane/internal/locator"
	"windvane/internal/models"
)

// Locator is the device side of the screen
type Locator interface {
	AcquireFix(ctx context.Context) (locator.Fix, error)
	SubscribeHeading(ctx context.Context, fn func(heading float64)) error
}

// Fetcher makes the single forecast request
type Fetcher interface {
	Fetch(ctx context.Context, lon, lat string) models.Outcome
}

// Screen is one wind screen instance. It fetches the forecast at most once;
// a new instance is needed to try again.
type Screen struct {
	locator Locator
	fetcher Fetcher

	mu        sync.RWMutex
	fix       *locator.Fix
	heading   float64
	outcome   models.Outcome
	listeners []func(display.View)
}

func New(loc Locator, fetcher Fetcher) *Screen {
	return &Screen{
		locator: loc,
		fetcher: fetcher,
		outcome: models.LoadingOutcome(),
	}
}

// OnChange registers fn to be called with the new view after every state change
func (s *Screen) OnChange(fn func(display.View)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Run drives the screen until ctx is cancelled. If permission is denied the
// screen stays in its loading state and no forecast is requested.
func (s *Screen) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	defer wg.Wait()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := s.locator.SubscribeHeading(ctx, s.setHeading); err != nil {
			log.Printf("Heading updates stopped: %v", err)
		}
	}()

	fix, err := s.locator.AcquireFix(ctx)
	if errors.Is(err, locator.ErrPermissionDenied) {
		log.Printf("Permission to access location was denied")
		<-ctx.Done()
		return err
	}
	if err != nil {
		log.Printf("Failed to get location: %v", err)
		<-ctx.Done()
		return err
	}

	s.mu.Lock()
	s.fix = &fix
	s.mu.Unlock()

	s.setOutcome(s.fetcher.Fetch(ctx, fix.Lon(), fix.Lat()))

	<-ctx.Done()
	return nil
}

// Snapshot returns the current view
func (s *Screen) Snapshot() display.View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return display.Derive(s.outcome, s.heading)
}

// Outcome returns the state of the forecast request
func (s *Screen) Outcome() models.Outcome {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.outcome
}

// Fix returns the location fix, if one was obtained
func (s *Screen) Fix() (locator.Fix, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.fix == nil {
		return locator.Fix{}, false
	}
	return *s.fix, true
}

func (s *Screen) setHeading(heading float64) {
	s.mu.Lock()
	s.heading = heading
	s.mu.Unlock()
	s.notify()
}

func (s *Screen) setOutcome(outcome models.Outcome) {
	s.mu.Lock()
	s.outcome = outcome
	s.mu.Unlock()
	s.notify()
}

func (s *Screen) notify() {
	s.mu.RLock()
	view := display.Derive(s.outcome, s.heading)
	listeners := append([]func(display.View){}, s.listeners...)
	s.mu.RUnlock()

	for _, fn := range listeners {
		fn(view)
	}
}
