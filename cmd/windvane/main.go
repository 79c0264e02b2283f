package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"windvane/internal/api"
	"windvane/internal/config"
	"windvane/internal/display"
	"windvane/internal/locator"
	"windvane/internal/screen"
	"windvane/internal/server"

	"github.com/go-redis/redis/v8"
)

func main() {
	configPath := flag.String("config", "./config.yaml", "path to the config file")
	flag.Parse()

	config.LoadEnv()
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	provider, closeDevice := newProvider(cfg)
	defer closeDevice()

	client := api.NewSMHIClient(cfg.Forecast.BaseURL, cfg.Forecast.Timeout)
	windScreen := screen.New(provider, client)

	terminal := display.NewTerminal(os.Stdout, display.NewLabels(cfg.Display.Language), cfg.Display.RedrawRate)
	windScreen.OnChange(terminal.Draw)
	terminal.Draw(windScreen.Snapshot())

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if cfg.Server.Addr != "" {
		httpServer := server.NewServer(windScreen)
		go func() {
			log.Printf("Starting server on %s", cfg.Server.Addr)
			if err := httpServer.Start(ctx, cfg.Server.Addr); err != nil {
				log.Printf("HTTP server stopped: %v", err)
			}
		}()
	}

	err = windScreen.Run(ctx)
	if err != nil && !errors.Is(err, locator.ErrPermissionDenied) {
		log.Printf("Wind screen stopped: %v", err)
	}

	log.Println("Shutting down wind screen...")
}

// newProvider wires the device source named in the config
func newProvider(cfg *config.Config) (*locator.Provider, func()) {
	static := locator.NewStatic(cfg.Device)

	if cfg.Device.Source != "redis" {
		return locator.NewProvider(static, static, static), func() {}
	}

	redisCfg := cfg.GetRedisConfig()
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisCfg.Addr,
		Password: redisCfg.Password,
		DB:       redisCfg.DB,
	})

	log.Printf("Reading device position from %s and heading from %s at %s",
		redisCfg.PositionStream, redisCfg.HeadingStream, redisCfg.Addr)

	provider := locator.NewProvider(
		static,
		locator.NewRedisPosition(redisClient, redisCfg.PositionStream),
		locator.NewRedisHeading(redisClient, redisCfg.HeadingStream),
	)
	return provider, func() { redisClient.Close() }
}
