// Package app runs the editor frame loop: it feeds window events into the
// input tracker, dispatches them to the layer stack, and advances input
// once per frame.
package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"venom-editor/input"
	"venom-editor/layer"
)

// Window is the windowing collaborator. Events raised during PollEvents are
// delivered synchronously to the sink installed with SetEventSink.
type Window interface {
	PollEvents()
	ShouldClose() bool
	SwapBuffers()
	CursorPosition() input.Point
	WindowSize() input.Point
	FramebufferSize() input.Point
	SetEventSink(func(layer.Event))
}

// Application owns the input tracker and layer stack for one window.
// Layers receive what they need through their constructors.
type Application struct {
	Input  *input.State
	Layers *layer.Stack

	window Window
	log    *slog.Logger
	now    func() time.Time
	last   time.Time
	frames uint64
}

type Option func(*Application)

func WithLogger(l *slog.Logger) Option {
	return func(a *Application) { a.log = l }
}

// WithClock replaces time.Now for frame timing.
func WithClock(now func() time.Time) Option {
	return func(a *Application) { a.now = now }
}

// New wires w to a fresh input tracker and an empty layer stack.
func New(w Window, opts ...Option) *Application {
	a := &Application{
		Input:  input.New(),
		Layers: &layer.Stack{},
		window: w,
		log:    slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	w.SetEventSink(a.HandleEvent)
	return a
}

// Frames returns how many frames have completed.
func (a *Application) Frames() uint64 { return a.frames }

// HandleEvent updates input state for ev and forwards it to every layer.
func (a *Application) HandleEvent(ev layer.Event) {
	var err error
	switch e := ev.(type) {
	case layer.KeyPressEvent:
		err = a.Input.UpdateDown(e.Key)
	case layer.KeyReleaseEvent:
		err = a.Input.UpdateUp(e.Key)
	case layer.MousePressEvent:
		err = a.Input.UpdateMouseButtonDown(e.Button)
	case layer.MouseReleaseEvent:
		err = a.Input.UpdateMouseButtonUp(e.Button)
	}
	if err != nil {
		if !errors.Is(err, input.ErrInvalidIdentifier) {
			a.log.Error("input update failed", "event", ev, "error", err)
		} else {
			a.log.Debug("untracked input id", "error", err)
		}
	}
	a.Layers.Dispatch(ev)
}

// Frame runs one tick. Layers see this frame's edges during OnUpdate and
// OnGUIRender; Input.Update runs last so each edge lives for one frame.
// In the frame a key is pressed layers see KeyDown true and KeyHeld false;
// KeyHeld turns true from the next frame on.
func (a *Application) Frame(dt float32) error {
	a.window.PollEvents()
	if err := a.Input.UpdateMouseMove(a.window.CursorPosition()); err != nil {
		return err
	}
	a.Layers.Update(dt)
	a.Layers.RenderGUI()
	a.window.SwapBuffers()
	if err := a.Input.Update(); err != nil {
		return err
	}
	a.frames++
	return nil
}

// Run loops until the window asks to close or ctx is done.
func (a *Application) Run(ctx context.Context) error {
	a.HandleEvent(layer.ViewportEvent{
		WindowSize:      a.window.WindowSize(),
		FramebufferSize: a.window.FramebufferSize(),
	})
	a.last = a.now()
	a.log.Info("frame loop started", "layers", a.Layers.LayerCount(), "overlays", a.Layers.OverlayCount())

	for !a.window.ShouldClose() {
		if err := ctx.Err(); err != nil {
			a.log.Info("frame loop cancelled", "frames", a.frames)
			return err
		}
		now := a.now()
		dt := float32(now.Sub(a.last).Seconds())
		a.last = now
		if err := a.Frame(dt); err != nil {
			return err
		}
	}
	a.log.Info("window closed", "frames", a.frames)
	return nil
}
