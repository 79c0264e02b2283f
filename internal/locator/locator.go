package locator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"windvane/internal/metrics"
)

// ErrPermissionDenied is returned by AcquireFix when foreground location access is not granted
var ErrPermissionDenied = errors.New("permission to access location was denied")

type PermissionStatus string

const (
	Granted      PermissionStatus = "granted"
	Denied       PermissionStatus = "denied"
	Undetermined PermissionStatus = "undetermined"
)

// Fix is a single device position
type Fix struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Lon returns the longitude with six decimals
func (f Fix) Lon() string {
	return strconv.FormatFloat(f.Longitude, 'f', 6, 64)
}

// Lat returns the latitude with six decimals
func (f Fix) Lat() string {
	return strconv.FormatFloat(f.Latitude, 'f', 6, 64)
}

type PermissionRequester interface {
	RequestForegroundPermission(ctx context.Context) (PermissionStatus, error)
}

type PositionReader interface {
	CurrentPosition(ctx context.Context) (Fix, error)
}

// HeadingWatcher delivers magnetic headings in degrees until ctx is done
type HeadingWatcher interface {
	WatchHeading(ctx context.Context, fn func(heading float64)) error
	Source() string
}

// Provider combines the platform location and compass services
type Provider struct {
	permissions PermissionRequester
	positions   PositionReader
	headings    HeadingWatcher
}

func NewProvider(permissions PermissionRequester, positions PositionReader, headings HeadingWatcher) *Provider {
	return &Provider{
		permissions: permissions,
		positions:   positions,
		headings:    headings,
	}
}

// AcquireFix asks for foreground permission and reads one position
func (p *Provider) AcquireFix(ctx context.Context) (Fix, error) {
	fix, err := p.acquireFix(ctx)
	metrics.RecordFix(err)
	return fix, err
}

func (p *Provider) acquireFix(ctx context.Context) (Fix, error) {
	status, err := p.permissions.RequestForegroundPermission(ctx)
	if err != nil {
		return Fix{}, fmt.Errorf("failed to request location permission: %w", err)
	}
	if status != Granted {
		return Fix{}, ErrPermissionDenied
	}

	fix, err := p.positions.CurrentPosition(ctx)
	if err != nil {
		return Fix{}, fmt.Errorf("failed to read current position: %w", err)
	}

	log.Printf("Got location %s,%s", fix.Lon(), fix.Lat())
	return fix, nil
}

// SubscribeHeading blocks delivering heading readings to fn until ctx is cancelled
func (p *Provider) SubscribeHeading(ctx context.Context, fn func(heading float64)) error {
	source := p.headings.Source()
	err := p.headings.WatchHeading(ctx, func(heading float64) {
		metrics.RecordHeading(source, heading)
		fn(heading)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("heading subscription on %s ended: %w", source, err)
	}
	return nil
}
