package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"windvane/internal/config"
	"windvane/internal/locator"

	"github.com/go-redis/redis/v8"
)

type streamWriter interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

func main() {
	configPath := flag.String("config", "./config.yaml", "path to the config file")
	lon := flag.Float64("lon", 0, "longitude to publish before the headings")
	lat := flag.Float64("lat", 0, "latitude to publish before the headings")
	withPosition := flag.Bool("position", false, "publish -lon/-lat as the device position first")
	flag.Parse()

	config.LoadEnv()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	redisCfg := cfg.GetRedisConfig()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})
	defer redisClient.Close()

	ctx := context.Background()

	if *withPosition {
		fix := locator.Fix{Longitude: *lon, Latitude: *lat}
		if err := publishPosition(ctx, redisClient, redisCfg.PositionStream, fix); err != nil {
			log.Fatalf("Failed to publish position: %v", err)
		}
		log.Printf("Published position %s,%s to %s", fix.Lon(), fix.Lat(), redisCfg.PositionStream)
	}

	count, err := publishHeadings(ctx, redisClient, redisCfg.HeadingStream, os.Stdin)
	if err != nil {
		log.Fatalf("Failed to publish headings: %v", err)
	}
	log.Printf("Published %d headings to %s. Exiting", count, redisCfg.HeadingStream)
}

func publishPosition(ctx context.Context, w streamWriter, stream string, fix locator.Fix) error {
	return w.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]interface{}{
			locator.LongitudeField: fix.Lon(),
			locator.LatitudeField:  fix.Lat(),
		},
	}).Err()
}

// publishHeadings sends one stream entry per valid line of r
func publishHeadings(ctx context.Context, w streamWriter, stream string, r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	count := 0

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		heading, err := parseHeadingLine(line)
		if err != nil {
			log.Printf("Skipping %q: %v", line, err)
			continue
		}

		err = w.XAdd(ctx, &redis.XAddArgs{
			Stream: stream,
			Values: map[string]interface{}{locator.HeadingField: strconv.FormatFloat(heading, 'f', -1, 64)},
		}).Err()
		if err != nil {
			return count, fmt.Errorf("failed to publish heading %v: %w", heading, err)
		}
		count++
	}

	return count, scanner.Err()
}

func parseHeadingLine(line string) (float64, error) {
	heading, err := strconv.ParseFloat(line, 64)
	if err != nil {
		return 0, err
	}
	if heading < 0 || heading >= 360 {
		return 0, fmt.Errorf("heading %v out of range [0, 360)", heading)
	}
	return heading, nil
}
