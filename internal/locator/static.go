package locator

import (
	"context"
	"windvane/internal/config"
)

// Static is a device whose permission, position and heading come from configuration
type Static struct {
	Permission PermissionStatus
	Position   Fix
	Heading    float64
}

func NewStatic(device config.Device) *Static {
	return &Static{
		Permission: PermissionStatus(device.Permission),
		Position: Fix{
			Longitude: device.Longitude,
			Latitude:  device.Latitude,
		},
		Heading: device.Heading,
	}
}

func (s *Static) RequestForegroundPermission(ctx context.Context) (PermissionStatus, error) {
	if err := ctx.Err(); err != nil {
		return Undetermined, err
	}
	return s.Permission, nil
}

func (s *Static) CurrentPosition(ctx context.Context) (Fix, error) {
	if err := ctx.Err(); err != nil {
		return Fix{}, err
	}
	return s.Position, nil
}

// WatchHeading reports the fixed heading once and waits for teardown
func (s *Static) WatchHeading(ctx context.Context, fn func(heading float64)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fn(s.Heading)
	<-ctx.Done()
	return ctx.Err()
}

func (s *Static) Source() string {
	return "static"
}
