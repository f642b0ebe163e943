// Copyright 2025 tsuru authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net"
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"sigs.k8s.io/controller-runtime/pkg/metrics"

	"github.com/tsuru/sort-dispatch-bench/internal/report"
	"github.com/tsuru/sort-dispatch-bench/internal/repository"
)

type Options struct {
	Benchmark  string
	TopSlowest int
	// WSInterval is the delay between snapshots pushed to websocket clients.
	WSInterval time.Duration
	Logger     *slog.Logger
}

func NewApp(repo *repository.ResultRepository, opts Options) (*fiber.App, error) {
	engine, err := report.NewViewEngine()
	if err != nil {
		return nil, err
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	interval := opts.WSInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}

	app := fiber.New(fiber.Config{
		Views:                 engine,
		UnescapePath:          true,
		DisableStartupMessage: true,
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.Render("report", report.New(opts.Benchmark, repo.Snapshot(), opts.TopSlowest))
	})

	app.Get("/phases", func(c *fiber.Ctx) error {
		return c.JSON(repo.ListPhases())
	})

	app.Get("/phases/:name", func(c *fiber.Ctx) error {
		data, ok := repo.GetPhase(c.Params("name"))
		if !ok {
			return c.Status(fiber.StatusNotFound).SendString("Phase not found")
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Send(data)
	})

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})))

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		log.Debug("Websocket client connected", "remote", c.RemoteAddr().String())
		for {
			data, err := json.Marshal(repo.Snapshot())
			if err != nil {
				log.Error("Error marshaling JSON", "error", err)
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
				log.Debug("Websocket client gone", "error", err)
				return
			}
			time.Sleep(interval)
		}
	}))

	return app, nil
}

// Serve runs app on listener until ctx is done.
func Serve(ctx context.Context, app *fiber.App, listener net.Listener) error {
	errChan := make(chan error, 1)
	go func() {
		errChan <- app.Listener(listener)
	}()
	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
		return app.Shutdown()
	}
}
