package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"witchlair/pkg/engine/clock"
	"witchlair/pkg/engine/input"
	"witchlair/pkg/game/config"
	"witchlair/pkg/game/content"
	"witchlair/pkg/game/controller"
	"witchlair/pkg/game/renderer/tui"
	"witchlair/pkg/game/session"
	"witchlair/pkg/game/text"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "witchlair:", err)
		os.Exit(1)
	}
}

func run() error {
	variantFlag := flag.String("variant", "", "Edition to play ("+strings.Join(content.Names(), ", ")+"); overrides WITCHLAIR_VARIANT")
	envFile := flag.String("env", ".env", "Optional dotenv file to read settings from")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		return err
	}
	if *variantFlag != "" {
		cfg.Variant = *variantFlag
	}

	logger, closer, err := cfg.Logger()
	if err != nil {
		return err
	}
	defer closer.Close()

	variant, err := content.Lookup(cfg.Variant)
	if err != nil {
		return err
	}

	catalog := text.English()
	r := tui.New(os.Stdout, catalog)
	r.Init()

	sess, err := session.New(session.Config{
		Variant:      variant,
		Clock:        clock.NewReal(),
		Catalog:      catalog,
		Logger:       logger,
		HintDuration: cfg.HintDuration,
	})
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	defer sess.Close()

	pump := controller.NewPump(r)
	sess.Subscribe(pump)
	ctrl := controller.New(sess, r, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, quit := context.WithCancel(ctx)
	defer quit()

	r.RenderFrame(sess.Snapshot())

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return pump.Run(ctx)
	})
	g.Go(func() error {
		defer quit()
		return readCommands(ctx, ctrl, logger)
	})

	return g.Wait()
}

// readCommands feeds stdin into the controller until the player quits or input ends
func readCommands(ctx context.Context, ctrl *controller.Controller, logger *slog.Logger) error {
	lines, errs := input.Lines(ctx, os.Stdin)
	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-errs:
					return err
				default:
					logger.Info("input closed")
					return nil
				}
			}
			if ctrl.HandleLine(line) {
				return nil
			}
		}
	}
}
