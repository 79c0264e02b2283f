package locator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	HeadingField   = "mag_heading"
	LongitudeField = "lon"
	LatitudeField  = "lat"

	headingBlock = 2 * time.Second
)

// StreamClient is the part of *redis.Client the device streams use
type StreamClient interface {
	XRead(ctx context.Context, a *redis.XReadArgs) *redis.XStreamSliceCmd
	XRevRangeN(ctx context.Context, stream, start, stop string, count int64) *redis.XMessageSliceCmd
}

// RedisPosition reads the latest entry of a position stream written by a device daemon
type RedisPosition struct {
	client StreamClient
	stream string
}

func NewRedisPosition(client StreamClient, stream string) *RedisPosition {
	return &RedisPosition{client: client, stream: stream}
}

func (r *RedisPosition) CurrentPosition(ctx context.Context) (Fix, error) {
	msgs, err := r.client.XRevRangeN(ctx, r.stream, "+", "-", 1).Result()
	if err != nil {
		return Fix{}, fmt.Errorf("failed to read position stream %s: %w", r.stream, err)
	}
	if len(msgs) == 0 {
		return Fix{}, fmt.Errorf("position stream %s is empty", r.stream)
	}
	return ParsePosition(msgs[0].Values)
}

// RedisHeading follows a heading stream, delivering only entries added after it starts
type RedisHeading struct {
	client StreamClient
	stream string
}

func NewRedisHeading(client StreamClient, stream string) *RedisHeading {
	return &RedisHeading{client: client, stream: stream}
}

func (r *RedisHeading) Source() string {
	return "redis"
}

func (r *RedisHeading) WatchHeading(ctx context.Context, fn func(heading float64)) error {
	lastID := "$"

	for {
		streams, err := r.client.XRead(ctx, &redis.XReadArgs{
			Streams: []string{r.stream, lastID},
			Count:   10,
			Block:   headingBlock,
		}).Result()

		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err != nil && !errors.Is(err, redis.Nil) {
			return fmt.Errorf("failed to read heading stream %s: %w", r.stream, err)
		}

		for _, stream := range streams {
			for _, msg := range stream.Messages {
				lastID = msg.ID

				heading, err := ParseHeading(msg.Values)
				if err != nil {
					log.Printf("Skipping heading entry %s: %v", msg.ID, err)
					continue
				}
				fn(heading)
			}
		}
	}
}

// ParseHeading reads the magnetic heading from a stream entry
func ParseHeading(values map[string]interface{}) (float64, error) {
	return parseFloatField(values, HeadingField)
}

// ParsePosition reads a position from a stream entry
func ParsePosition(values map[string]interface{}) (Fix, error) {
	lon, err := parseFloatField(values, LongitudeField)
	if err != nil {
		return Fix{}, err
	}
	lat, err := parseFloatField(values, LatitudeField)
	if err != nil {
		return Fix{}, err
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return Fix{}, fmt.Errorf("position %v,%v out of range", lon, lat)
	}
	return Fix{Longitude: lon, Latitude: lat}, nil
}

func parseFloatField(values map[string]interface{}, field string) (float64, error) {
	raw, ok := values[field]
	if !ok {
		return 0, fmt.Errorf("missing field %s", field)
	}

	s, ok := raw.(string)
	if !ok {
		return 0, fmt.Errorf("field %s has type %T, want string", field, raw)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("field %s: %w", field, err)
	}
	return v, nil
}
