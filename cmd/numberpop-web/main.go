//go:build js && wasm

// numberpop-web runs numberpop on a page with a <canvas id="canvas"> element.
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o numberpop.wasm ./cmd/numberpop-web
package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/vovakirdan/numberpop/internal/game"
	"github.com/vovakirdan/numberpop/internal/logging"
	"github.com/vovakirdan/numberpop/internal/loop"
	"github.com/vovakirdan/numberpop/internal/platform/web"
)

func main() {
	logger, err := logging.New(os.Stderr, "info", "numberpop-web")
	if err != nil {
		panic(err)
	}

	canvas, err := web.LookupCanvas("canvas")
	if err != nil {
		logger.Fatal("cannot find canvas", "err", err)
	}
	ctx, err := canvas.Context2D()
	if err != nil {
		logger.Fatal("cannot get canvas context", "err", err)
	}

	cfg := game.DefaultConfig()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g, err := game.New(cfg, ctx, canvas.ClientWidth(), canvas.ClientHeight(), rng)
	if err != nil {
		logger.Fatal("cannot create game", "err", err)
	}

	l := loop.New(cfg, web.NewHost(canvas), canvas, logger)
	if err := l.Start(g); err != nil {
		logger.Fatal("cannot start game loop", "err", err)
	}

	// Callbacks run on the JS event loop; keep the module alive.
	select {}
}
