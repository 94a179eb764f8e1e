package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"time"

	"github.com/gogpu/gg"
)

// Config holds the fixed parameters of the animation.
type Config struct {
	Title        string
	Size         int     // canvas width and height
	MinDepth     int     // first depth drawn
	MaxDepth     int     // last depth drawn, inclusive
	Stroke       gg.RGBA // line color
	Background   gg.RGBA
	LineWidth    float64
	Pause        time.Duration // between frames
	HoldInterval time.Duration // between re-presentations of the last frame
}

// DefaultConfig returns the 1000x1000, depth 0 to 9 animation.
func DefaultConfig() Config {
	return Config{
		Title:        "Koch snowflake",
		Size:         1000,
		MinDepth:     0,
		MaxDepth:     9,
		Stroke:       gg.Hex("008000"),
		Background:   gg.Black,
		LineWidth:    1,
		Pause:        time.Second,
		HoldInterval: 250 * time.Millisecond,
	}
}

var errInvalidConfig = errors.New("invalid config")

// Validate reports whether the config can be animated.
func (c Config) Validate() error {
	switch {
	case c.Size < 1:
		return fmt.Errorf("%w: size %d", errInvalidConfig, c.Size)
	case c.MinDepth < 0 || c.MaxDepth < c.MinDepth:
		return fmt.Errorf("%w: depths %d..%d", errInvalidConfig, c.MinDepth, c.MaxDepth)
	case c.LineWidth <= 0:
		return fmt.Errorf("%w: line width %v", errInvalidConfig, c.LineWidth)
	case c.Pause < 0 || c.HoldInterval < 0:
		return fmt.Errorf("%w: negative duration", errInvalidConfig)
	}
	return nil
}

// Surface is where the frames are shown.
type Surface interface {
	// Present shows frame, replacing the previous one. The frame is not modified afterwards.
	Present(frame *image.RGBA) error
	// Wait blocks for d, keeping the surface responsive, or until ctx is done.
	Wait(ctx context.Context, d time.Duration) error
}

type animState int

const (
	animating animState = iota
	holding
)

// Animator draws the snowflake at increasing depths and then holds the last frame.
type Animator struct {
	cfg     Config
	surface Surface
	verbose bool

	state animState
	depth int
	last  *image.RGBA
}

// NewAnimator returns an animator positioned at the first depth of cfg.
func NewAnimator(cfg Config, surface Surface) *Animator {
	return &Animator{
		cfg:     cfg,
		surface: surface,
		state:   animating,
		depth:   cfg.MinDepth,
	}
}

// RenderFrame draws the snowflake of depth on a fresh canvas and returns its
// pixels along with the number of segments drawn.
func (a *Animator) RenderFrame(depth int) (*image.RGBA, int, error) {
	c := NewCanvas(a.cfg.Size, a.cfg.Background)
	defer c.Close()

	pa, pb, pc := Triangle(a.cfg.Size)
	n, err := c.StrokeSegments(Snowflake(pa, pb, pc, depth), a.cfg.Stroke, a.cfg.LineWidth)
	if err != nil {
		return nil, 0, fmt.Errorf("render depth %d: %w", depth, err)
	}
	img, err := c.Pixels()
	if err != nil {
		return nil, 0, fmt.Errorf("render depth %d: %w", depth, err)
	}
	return img, n, nil
}

// Step advances the animation by one frame. While animating it renders and
// presents the current depth and pauses; while holding it re-presents the last frame.
func (a *Animator) Step(ctx context.Context) error {
	switch a.state {
	case animating:
		start := time.Now()
		frame, n, err := a.RenderFrame(a.depth)
		if err != nil {
			return err
		}
		if a.verbose {
			log.Printf("depth %d: %d segments in %v", a.depth, n, time.Since(start))
		}
		if err := a.surface.Present(frame); err != nil {
			return fmt.Errorf("present depth %d: %w", a.depth, err)
		}
		a.last = frame
		log.Printf("done with depth %d", a.depth)

		if a.depth < a.cfg.MaxDepth {
			a.depth++
		} else {
			a.state = holding
		}
		return a.surface.Wait(ctx, a.cfg.Pause)
	case holding:
		if err := a.surface.Present(a.last); err != nil {
			return fmt.Errorf("present: %w", err)
		}
		return a.surface.Wait(ctx, a.cfg.HoldInterval)
	}
	return nil
}

// Run animates until an error occurs or ctx is done. It returns ctx.Err()
// once the context is done.
func (a *Animator) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := a.Step(ctx); err != nil {
			return err
		}
	}
}
