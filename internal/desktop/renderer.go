package desktop

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"jungle/internal/game"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Per-vertex pos(2) + uv(2).
const vertStride = 4 * 4

// Texture is an uploaded RGBA image. It satisfies game.Image.
type Texture struct {
	id   uint32
	w, h int
}

func (t *Texture) Size() (int, int) { return t.w, t.h }

// Renderer draws in logical screen pixels; the viewport maps them onto the
// framebuffer. Every draw call is issued immediately.
type Renderer struct {
	spriteProg    uint32
	spUResolution int32
	spUTex        int32

	solidProg     uint32
	soUResolution int32
	soUColor      int32

	vao uint32
	vbo uint32

	verts    []float32
	textures []*Texture
	text     *textCache
}

func NewRenderer() (*Renderer, error) {
	spriteProg, err := linkProgram(quadVertSrc, spriteFragSrc)
	if err != nil {
		return nil, fmt.Errorf("sprite program: %w", err)
	}
	solidProg, err := linkProgram(quadVertSrc, solidFragSrc)
	if err != nil {
		gl.DeleteProgram(spriteProg)
		return nil, fmt.Errorf("solid program: %w", err)
	}

	text, err := newTextCache()
	if err != nil {
		gl.DeleteProgram(spriteProg)
		gl.DeleteProgram(solidProg)
		return nil, fmt.Errorf("fonts: %w", err)
	}

	r := &Renderer{
		spriteProg: spriteProg,
		solidProg:  solidProg,
		text:       text,
	}

	gl.UseProgram(spriteProg)
	r.spUResolution = gl.GetUniformLocation(spriteProg, gl.Str("uResolution\x00"))
	r.spUTex = gl.GetUniformLocation(spriteProg, gl.Str("uTex\x00"))
	gl.Uniform2f(r.spUResolution, float32(game.ScreenWidth), float32(game.ScreenHeight))
	gl.Uniform1i(r.spUTex, 0)

	gl.UseProgram(solidProg)
	r.soUResolution = gl.GetUniformLocation(solidProg, gl.Str("uResolution\x00"))
	r.soUColor = gl.GetUniformLocation(solidProg, gl.Str("uColor\x00"))
	gl.Uniform2f(r.soUResolution, float32(game.ScreenWidth), float32(game.ScreenHeight))

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.vbo)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 64*vertStride, nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, vertStride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, vertStride, glOffset(2*4))

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0, 0, 0, 1)

	return r, nil
}

func (r *Renderer) Destroy() {
	r.text.clear()
	for _, t := range r.textures {
		gl.DeleteTextures(1, &t.id)
	}
	r.textures = nil
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.spriteProg)
	gl.DeleteProgram(r.solidProg)
}

// NewTexture uploads img and keeps it alive until Destroy.
func (r *Renderer) NewTexture(img *image.NRGBA) *Texture {
	t := uploadTexture(img)
	r.textures = append(r.textures, t)
	return t
}

func uploadTexture(img *image.NRGBA) *Texture {
	b := img.Bounds()
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	return &Texture{id: tex, w: b.Dx(), h: b.Dy()}
}

// BeginFrame clears the framebuffer for the next frame.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (r *Renderer) DrawImage(img game.Image, x, y int) {
	t, ok := img.(*Texture)
	if !ok || t == nil {
		return
	}
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+t.w), float32(y+t.h)

	// Two triangles: TL, TR, BL then TR, BR, BL.
	r.verts = append(r.verts[:0],
		x0, y0, 0, 0,
		x1, y0, 1, 0,
		x0, y1, 0, 1,
		x1, y0, 1, 0,
		x1, y1, 1, 1,
		x0, y1, 0, 1,
	)

	gl.UseProgram(r.spriteProg)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.id)
	r.flush(gl.TRIANGLES)
}

func (r *Renderer) DrawRect(x, y, w, h int, col game.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)
	r.verts = append(r.verts[:0],
		x0, y0, 0, 0,
		x1, y0, 0, 0,
		x0, y1, 0, 0,
		x1, y0, 0, 0,
		x1, y1, 0, 0,
		x0, y1, 0, 0,
	)
	r.useSolid(col)
	r.flush(gl.TRIANGLES)
}

// DrawFilledPolygon fans out from points[0], so the outline must be
// star-shaped around its first vertex.
func (r *Renderer) DrawFilledPolygon(points []game.Point, col game.RGBA) {
	if len(points) < 3 {
		return
	}
	r.verts = r.verts[:0]
	for _, p := range points {
		r.verts = append(r.verts, float32(p.X), float32(p.Y), 0, 0)
	}
	r.useSolid(col)
	r.flush(gl.TRIANGLE_FAN)
}

func (r *Renderer) RenderText(text string, face game.Face, col game.RGBA) game.Image {
	if t := r.text.get(text, face, col); t != nil {
		return t
	}
	return nil
}

func (r *Renderer) useSolid(col game.RGBA) {
	gl.UseProgram(r.solidProg)
	gl.Uniform4f(r.soUColor,
		float32(col.R)/255.0,
		float32(col.G)/255.0,
		float32(col.B)/255.0,
		float32(col.A)/255.0,
	)
}

func (r *Renderer) flush(mode uint32) {
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.verts)*4, gl.Ptr(r.verts), gl.STREAM_DRAW)
	gl.DrawArrays(mode, 0, int32(len(r.verts)/4))
}

// EndFrame releases text textures that have gone unused.
func (r *Renderer) EndFrame() {
	r.text.sweep()
}
