package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"runtime/pprof"
	"syscall"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"
)

const progName = "koch"

var (
	silent  = flag.Bool("q", false, "silent mode, do not log anything")
	verbose = flag.Bool("v", false, "verbose mode, log rendering statistics")
	fast    = flag.Bool("f", false, "choose fast over best algorithms for scaling to a resized window")
)

var (
	enableProfiler = flag.Bool("profile", false, "run with the profiler enabled")
	cpuprofile     = flag.String("cpuprofile", "cpu.prof", "write cpu profile to `file`")
	memprofile     = flag.String("memprofile", "mem.prof", "write memory profile to `file`")
)

func usage() {
	fmt.Fprintf(os.Stderr, `usage: %s [-q|-v|-f]

%s draws the Koch snowflake at increasing depths.

Flags:
`, progName, progName)
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	log.SetPrefix("")
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if *silent {
		log.SetOutput(io.Discard)
	}
	if *verbose {
		gg.SetLogger(slog.Default())
	}

	if *enableProfiler {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			log.Fatal("could not create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal("could not start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}

	if err := run(); err != nil {
		// log.Fatal skips the deferred profile writers
		pprof.StopCPUProfile()
		log.Fatalf("%s: %v", progName, err)
	}

	if *enableProfiler {
		f, err := os.Create(*memprofile)
		if err != nil {
			log.Fatal("could not create memory profile: ", err)
		}
		defer f.Close()
		runtime.GC()
		if err := pprof.WriteHeapProfile(f); err != nil {
			log.Fatal("could not write memory profile: ", err)
		}
	}
}

// run animates the snowflake until the process is interrupted.
func run() error {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		return err
	}

	var scaler xdraw.Scaler = xdraw.CatmullRom
	if *fast {
		scaler = xdraw.BiLinear
	}

	win, err := openWindow(cfg.Title, cfg.Size, scaler)
	if err != nil {
		return err
	}
	defer win.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := NewAnimator(cfg, win)
	a.verbose = *verbose
	if err := a.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
