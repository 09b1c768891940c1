package camera

import (
	"log/slog"

	"github.com/go-gl/mathgl/mgl32"

	"venom-editor/config"
	"venom-editor/input"
	"venom-editor/layer"
)

// ControllerLayer flies the camera while the right mouse button is held
// over the viewport. Mouse motion yaws about world Y and pitches about the
// camera's X axis; the bound keys translate in camera space.
type ControllerLayer struct {
	layer.Base

	Camera      *Camera
	MoveSpeed   float32 // units per frame
	Sensitivity float32 // radians per pixel
	Keys        config.Bindings

	// Hovered reports whether the cursor is over the 3D viewport. Nil means
	// always.
	Hovered func() bool

	in  *input.State
	log *slog.Logger
}

func NewControllerLayer(cam *Camera, in *input.State, cfg config.CameraConfig, keys config.Bindings, log *slog.Logger) *ControllerLayer {
	if log == nil {
		log = slog.Default()
	}
	if cfg.FOV > 0 {
		cam.FOV = cfg.FOV
	}
	return &ControllerLayer{
		Base:        layer.NewBase("CameraController"),
		Camera:      cam,
		MoveSpeed:   cfg.MoveSpeed,
		Sensitivity: cfg.Sensitivity,
		Keys:        keys,
		in:          in,
		log:         log.With("layer", "camera"),
	}
}

func (c *ControllerLayer) OnAttach() {
	c.log.Debug("camera attached", "position", c.Camera.Position, "fov", c.Camera.FOV)
}

func (c *ControllerLayer) OnEvent(ev layer.Event) {
	if e, ok := ev.(layer.ViewportEvent); ok {
		c.Camera.SetAspect(e.FramebufferSize.X, e.FramebufferSize.Y)
	}
}

func (c *ControllerLayer) OnUpdate(float32) {
	if !c.in.MouseButton(input.MouseRight) || (c.Hovered != nil && !c.Hovered()) {
		return
	}

	delta := c.in.MouseDelta()
	if !delta.IsZero() {
		c.Camera.RotateWorldY(-c.Sensitivity*float32(delta.X), c.Camera.Position)
		c.Camera.RotateLocalX(-c.Sensitivity * float32(delta.Y))
	}

	speed := c.MoveSpeed
	if c.in.Key(c.Keys.Boost) {
		speed *= 2
	}
	var move mgl32.Vec3
	for _, b := range []struct {
		key input.Key
		dir mgl32.Vec3
	}{
		{c.Keys.Forward, Forward},
		{c.Keys.Back, Forward.Mul(-1)},
		{c.Keys.Left, Right.Mul(-1)},
		{c.Keys.Right, Right},
		{c.Keys.Up, Up},
		{c.Keys.Down, Up.Mul(-1)},
	} {
		if c.in.Key(b.key) {
			move = move.Add(b.dir.Mul(speed))
		}
	}
	if move != (mgl32.Vec3{}) {
		c.Camera.TranslateLocal(move)
	}
}
