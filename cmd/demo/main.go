package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/miroslava-go/miroslava"
	"github.com/miroslava-go/miroslava/core/config"
	"github.com/miroslava-go/miroslava/core/handler"
	"github.com/miroslava-go/miroslava/core/logger"
	"github.com/miroslava-go/miroslava/core/response"
	"github.com/miroslava-go/miroslava/core/router"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg miroslava.Config
	config.MustLoad(&cfg)

	log := logger.New(logger.WithDevelopment("demo"))

	app := miroslava.New("demo",
		miroslava.WithConfig(cfg),
		miroslava.WithLogger(log),
	)

	app.Get("/", func(ctx *handler.Context) any {
		return "<h1>Hello from miroslava!</h1>"
	})

	// Two patterns stacked on one endpoint via alias registration.
	app.MustRoute("/hello", hello)
	app.MustRoute("/hi", nil, router.WithEndpoint("/hello"))

	app.Get("/wish", wish, router.WithDefaults(map[string]any{"to": "World"}))
	app.MustRoute("/wish/<to>", nil, router.WithEndpoint("/wish"))

	app.Get("/brew/<drink>", func(ctx *handler.Context) any {
		if ctx.ParamString("drink") == "coffee" {
			response.Abort(418, "I'm a teapot, I cannot brew coffee.")
		}
		return fmt.Sprintf("Brewing a cup of %s.", ctx.ParamString("drink"))
	})

	app.Get("/item/<int:id>", func(ctx *handler.Context) any {
		return response.Tuple{map[string]any{"id": ctx.ParamInt("id"), "in_stock": true}, 200}
	})

	app.Post("/echo", func(ctx *handler.Context) any {
		req, err := ctx.Request()
		if err != nil {
			return response.Tuple{"no request bound", 500}
		}
		if v := req.JSON(); v != nil {
			return v
		}
		return string(req.Body)
	})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return app.Run(ctx, "") })

	if err := g.Wait(); err != nil {
		log.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func hello(ctx *handler.Context) any {
	return "Hello there!"
}

func wish(ctx *handler.Context) any {
	return fmt.Sprintf("Best wishes, %s!", ctx.ParamString("to"))
}
