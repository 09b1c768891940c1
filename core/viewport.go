package core

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"

	"venom-editor/layer"
)

// ViewportLayer keeps the GL viewport in sync with the framebuffer and
// clears it at the start of every GUI pass. Push it as the first regular
// layer so the clear precedes anything later layers draw.
type ViewportLayer struct {
	layer.Base
	Clear [4]float32

	width, height int32
}

func NewViewportLayer(clear [4]float32) *ViewportLayer {
	return &ViewportLayer{Base: layer.NewBase("Viewport"), Clear: clear}
}

func (v *ViewportLayer) OnAttach() {
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.MULTISAMPLE)
}

func (v *ViewportLayer) OnEvent(ev layer.Event) {
	if e, ok := ev.(layer.ViewportEvent); ok {
		v.width = int32(e.FramebufferSize.X)
		v.height = int32(e.FramebufferSize.Y)
		gl.Viewport(0, 0, v.width, v.height)
	}
}

func (v *ViewportLayer) OnGUIRender() {
	gl.ClearColor(v.Clear[0], v.Clear[1], v.Clear[2], v.Clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}
