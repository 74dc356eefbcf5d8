package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/hherman1/aspectratio/demo"
	"github.com/hherman1/aspectratio/headless"
	"github.com/hherman1/aspectratio/resources"
	"github.com/hherman1/aspectratio/window"
)

func main() {
	if err := run(); err != nil {
		log.Fatalln(err)
	}
}

func run() error {
	var (
		wcfg         window.Config
		hcfg         demo.HeadlessConfig
		headlessMode bool
	)
	flag.IntVar(&wcfg.Width, "width", 800, "Window width in pixels.")
	flag.IntVar(&wcfg.Height, "height", 480, "Window height in pixels.")
	flag.StringVar(&wcfg.Title, "title", "Aspect Ratio", "Window title.")
	flag.IntVar(&wcfg.TPS, "tps", 60, "Input polling rate.")
	flag.BoolVar(&headlessMode, "headless", false, "Run without a window, logging draws instead.")
	flag.Uint64Var(&hcfg.Frames, "frames", 300, "Stop after N frames in headless mode (0 = run until interrupted).")
	flag.Uint64Var(&hcfg.AdvanceEvery, "advance-every", 60, "Release space every N frames in headless mode (0 = never).")
	flag.Parse()

	src, err := resources.ShaderSource(resources.QuadShader)
	if err != nil {
		return fmt.Errorf("load quad shader: %w", err)
	}
	logger := log.Default()

	if !headlessMode {
		return window.RunWindow(wcfg, src, logger)
	}

	hcfg.Width, hcfg.Height, hcfg.Hz = wcfg.Width, wcfg.Height, wcfg.TPS
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	a := demo.NewApp(headless.NewRenderer(logger), src, logger)
	if err := demo.RunHeadless(ctx, a, hcfg); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("run headless: %w", err)
	}
	return nil
}
