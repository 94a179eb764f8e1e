package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"time"

	draw9 "9fans.net/go/draw"
	xdraw "golang.org/x/image/draw"
)

const black = draw9.Color(uint32(0x000000FF))

var (
	errInvalidFrame  = errors.New("invalid frame")
	errSurfaceClosed = errors.New("surface closed")
)

// window is a Surface on a devdraw window.
type window struct {
	display *draw9.Display
	errch   chan error
	mctl    *draw9.Mousectl
	bgColor *draw9.Image
	scaler  xdraw.Scaler

	frame  *image.RGBA  // last presented frame
	img    *draw9.Image // frame as loaded on the server, fitted to the window
	closed bool
}

// openWindow connects to devdraw and opens a size x size window.
func openWindow(title string, size int, scaler xdraw.Scaler) (*window, error) {
	errch := make(chan error)
	disp, err := draw9.Init(errch, "", title, fmt.Sprintf("%dx%d", size, size))
	if err != nil {
		return nil, fmt.Errorf("display: cannot connect: %w", err)
	}

	return &window{
		display: disp,
		errch:   errch,
		mctl:    disp.InitMouse(),
		bgColor: disp.AllocImageMix(black, black),
		scaler:  scaler,
	}, nil
}

func (w *window) Present(frame *image.RGBA) error {
	if w.closed {
		return errSurfaceClosed
	}
	if err := checkFrame(frame); err != nil {
		return err
	}

	if frame != w.frame || w.img == nil {
		if err := w.load(frame); err != nil {
			return fmt.Errorf("present: %w", err)
		}
		w.frame = frame
	}
	return w.paint()
}

// load uploads frame to the server, scaled to fit the window.
func (w *window) load(frame *image.RGBA) error {
	dr := bestFit(w.display.Image.Bounds(), frame.Bounds())
	src := frame
	if dr.Size() != frame.Bounds().Size() {
		src = image.NewRGBA(dr)
		w.scaler.Scale(src, dr, frame, frame.Bounds(), xdraw.Src, nil)
	}

	t, err := w.display.ReadImage(toPlan9Bitmap(src))
	if err != nil {
		return err
	}
	w.freeImage()
	w.img = t
	return nil
}

func (w *window) paint() error {
	screen := w.display.Image
	screen.Draw(screen.Bounds(), w.bgColor, nil, image.Point{})
	screen.Draw(center(screen.Bounds(), w.img.Bounds()), w.img, nil, image.Point{})
	if err := w.display.Flush(); err != nil {
		return fmt.Errorf("display: flush: %w", err)
	}
	return nil
}

func (w *window) freeImage() {
	if w.img == nil {
		return
	}
	if err := w.img.Free(); err != nil {
		log.Printf("display: failed to free frame: %v", err)
	}
	w.img = nil
}

// Wait services the window for d. A resized window is repainted with the
// last frame fitted to the new size.
func (w *window) Wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
			return nil
		case err := <-w.errch:
			return fmt.Errorf("display: %w", err)
		case w.mctl.Mouse = <-w.mctl.C:
		case <-w.mctl.Resize:
			if err := w.display.Attach(draw9.RefNone); err != nil {
				return fmt.Errorf("display: failed to attach: %w", err)
			}
			w.freeImage()
			if w.frame != nil {
				if err := w.Present(w.frame); err != nil {
					return err
				}
			}
		}
	}
}

// Close releases the server images and the display connection.
func (w *window) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true
	w.freeImage()
	return w.display.Close()
}

// checkFrame reports whether frame is a non empty, contiguous RGBA buffer.
func checkFrame(frame *image.RGBA) error {
	if frame == nil {
		return fmt.Errorf("%w: nil", errInvalidFrame)
	}
	b := frame.Bounds()
	if b.Empty() {
		return fmt.Errorf("%w: empty", errInvalidFrame)
	}
	if frame.Stride != 4*b.Dx() || len(frame.Pix) != frame.Stride*b.Dy() {
		return fmt.Errorf("%w: %d bytes for %v", errInvalidFrame, len(frame.Pix), b.Size())
	}
	return nil
}

// toPlan9Bitmap encodes img as an uncompressed plan9 image with origin
// at zero. Pixels are written little-endian, so r8g8b8a8 is stored as a, b, g, r.
func toPlan9Bitmap(img *image.RGBA) *bytes.Buffer {
	size := img.Bounds().Size()
	b := bytes.NewBuffer(make([]byte, 0, 60+len(img.Pix)))
	fmt.Fprintf(b, "%11s %11d %11d %11d %11d ", "r8g8b8a8", 0, 0, size.X, size.Y)
	for px := img.Pix; len(px) >= 4; px = px[4:] {
		b.Write([]byte{px[3], px[2], px[1], px[0]})
	}
	return b
}
