// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"errors"

	"github.com/go-gl/gl/v3.2-core/gl"
	glm "github.com/go-gl/mathgl/mgl32"
	log "github.com/sirupsen/logrus"

	"github.com/devblok/prism/asset"
	"github.com/devblok/prism/model"
)

// Clear colors of the two passes. The composite clear shows only
// where the fullscreen quad did not cover, so it is a loud magenta.
var (
	sceneClear     = [4]float32{0.0, 0.2, 0.4, 1.0}
	compositeClear = [4]float32{1.0, 0.0, 1.0, 1.0}
)

// Renderer owns the GPU resources of the forward pipeline and the
// submission queues of the frame being built. Create one with New
// and free it with Destroy. Every method must run on the thread the
// GL context is current on.
type Renderer struct {
	ctx    *Context
	loader *asset.Loader
	info   DriverInfo

	projection glm.Mat4
	view       Transform

	vao       uint32
	target    renderTarget
	scene     sceneProgram
	composite compositeProgram
	cube      *Mesh
	quad      *Mesh

	commands CommandQueue
	lights   LightQueue
}

// DriverInfo identifies the GL implementation behind the context.
type DriverInfo struct {
	Vendor      string
	Renderer    string
	Version     string
	GLSLVersion string
	Extensions  []string
}

// New creates a renderer on the calling thread's GL context, which
// must already be current and stay current for every later call.
// Errors cover environment problems: a missing GL binding, unreadable
// shader overrides, a broken asset archive. Defects in the shader
// sources themselves panic instead.
func New(cfg Configuration) (*Renderer, error) {
	cfg = cfg.withDefaults()
	if cfg.ScreenWidth == 0 || cfg.ScreenHeight == 0 {
		return nil, errors.New("gfx.New(): screen dimensions must not be zero")
	}

	if err := gl.Init(); err != nil {
		return nil, errors.New("gl.Init(): " + err.Error())
	}

	loader, err := asset.NewLoader(cfg.AssetDirectory, cfg.AssetArchive)
	if err != nil {
		return nil, err
	}

	sceneVert, err := loadShaderSource(cfg.ShaderDirectory, "scene.vert")
	if err != nil {
		return nil, err
	}
	sceneFrag, err := loadShaderSource(cfg.ShaderDirectory, "scene.frag")
	if err != nil {
		return nil, err
	}
	compositeVert, err := loadShaderSource(cfg.ShaderDirectory, "composite.vert")
	if err != nil {
		return nil, err
	}
	compositeFrag, err := loadShaderSource(cfg.ShaderDirectory, "composite.frag")
	if err != nil {
		return nil, err
	}

	renderer := &Renderer{
		ctx:        newContext(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight)),
		loader:     loader,
		info:       queryDriverInfo(),
		projection: cfg.projection(),
		view:       IdentityTransform(),
	}
	log.Infof("gfx: %s on %s (%s)", renderer.info.Version, renderer.info.Renderer, renderer.info.Vendor)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.FrontFace(gl.CW)
	gl.ClearColor(sceneClear[0], sceneClear[1], sceneClear[2], sceneClear[3])
	gl.ClearDepth(1.0)
	renderer.ctx.Viewport()

	// The core profile refuses attribute pointers without a bound
	// vertex array.
	gl.GenVertexArrays(1, &renderer.vao)
	gl.BindVertexArray(renderer.vao)

	renderer.target = newRenderTarget(renderer.ctx, int32(cfg.ScreenWidth), int32(cfg.ScreenHeight))
	renderer.scene = newSceneProgram(sceneVert, sceneFrag)
	renderer.composite = newCompositeProgram(compositeVert, compositeFrag)
	renderer.cube = NewMesh(cubeVertices, cubeIndices, PosNormTexLayout())
	renderer.quad = NewMesh(quadVertices, quadIndices, PosNormTexLayout())

	renderer.ctx.CheckError("gfx.New")
	log.Infof("gfx: renderer created, %dx%d", cfg.ScreenWidth, cfg.ScreenHeight)
	return renderer, nil
}

func queryDriverInfo() DriverInfo {
	info := DriverInfo{
		Vendor:      gl.GoStr(gl.GetString(gl.VENDOR)),
		Renderer:    gl.GoStr(gl.GetString(gl.RENDERER)),
		Version:     gl.GoStr(gl.GetString(gl.VERSION)),
		GLSLVersion: gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)),
	}
	var count int32
	gl.GetIntegerv(gl.NUM_EXTENSIONS, &count)
	info.Extensions = make([]string, 0, count)
	for i := int32(0); i < count; i++ {
		info.Extensions = append(info.Extensions, gl.GoStr(gl.GetStringi(gl.EXTENSIONS, uint32(i))))
	}
	return info
}

// DriverInfo reports the GL implementation the renderer runs on.
func (r *Renderer) DriverInfo() DriverInfo {
	return r.info
}

// Submit queues one draw for the next Render. The mesh and texture
// are borrowed until the flush, the caller keeps ownership. A frame
// that submits more than MaxRenderCommands draws panics.
func (r *Renderer) Submit(mesh *Mesh, diffuse *Texture, transform Transform) {
	err := r.commands.Push(RenderCommand{
		Transform: transform,
		Mesh:      mesh,
		Diffuse:   diffuse,
	})
	if err != nil {
		log.Panicf("gfx: Submit: %s, max %d", err.Error(), MaxRenderCommands)
	}
}

// SubmitLight queues a directional light for the next Render. A
// frame that submits more than MaxLights lights panics.
func (r *Renderer) SubmitLight(light DirectionalLight) {
	if err := r.lights.Push(light); err != nil {
		log.Panicf("gfx: SubmitLight: %s, max %d", err.Error(), MaxLights)
	}
}

// SetView sets the camera transform. It stays in effect until the
// next SetView, Render does not reset it.
func (r *Renderer) SetView(view Transform) {
	r.view = view
}

// ViewMatrix returns the matrix the scene pass uses, the inverse of
// the transform given to SetView.
func (r *Renderer) ViewMatrix() glm.Mat4 {
	return r.view.Matrix().Inv()
}

// Projection returns the matrix built from the configured frustum.
func (r *Renderer) Projection() glm.Mat4 {
	return r.projection
}

// CubeMesh returns the built-in unit cube. The renderer owns it,
// callers must not release it.
func (r *Renderer) CubeMesh() *Mesh {
	return r.cube
}

// QuadMesh returns the built-in fullscreen quad. The renderer owns
// it, callers must not release it.
func (r *Renderer) QuadMesh() *Mesh {
	return r.quad
}

// Render flushes the queued frame in two passes: the scene into the
// offscreen target, then the composite onto the framebuffer bound by
// the caller, which is current again when Render returns. Both
// queues are empty afterwards.
func (r *Renderer) Render() {
	saved := r.ctx.BoundFramebuffer()
	r.scenePass()
	r.compositePass(saved)
	r.resetQueues()
}

func (r *Renderer) scenePass() {
	r.ctx.BindFramebuffer(r.target.fbo)
	r.ctx.Clear(sceneClear)

	r.scene.use()
	view := r.ViewMatrix()
	gl.UniformMatrix4fv(r.scene.projection, 1, false, &r.projection[0])
	gl.UniformMatrix4fv(r.scene.view, 1, false, &view[0])

	gl.Uniform1i(r.scene.lightCount, int32(r.lights.Len()))
	if r.lights.Len() > 0 {
		directions := r.lights.directions()
		gl.Uniform3fv(r.scene.lights, int32(r.lights.Len()), &directions[0])
	}

	gl.ActiveTexture(gl.TEXTURE0)
	gl.Uniform1i(r.scene.diffuse, 0)

	for i := 0; i < r.commands.Len(); i++ {
		cmd := r.commands.At(i)
		world := cmd.Transform.Matrix()
		gl.UniformMatrix4fv(r.scene.world, 1, false, &world[0])
		gl.BindTexture(gl.TEXTURE_2D, cmd.Diffuse.id)
		cmd.Mesh.draw()
	}

	r.ctx.CheckError("gfx.Render: scene pass")
}

func (r *Renderer) compositePass(target uint32) {
	r.ctx.BindFramebuffer(target)
	r.ctx.Clear(compositeClear)

	r.composite.use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.target.color)
	gl.Uniform1i(r.composite.diffuse, 0)
	r.quad.draw()
	gl.BindTexture(gl.TEXTURE_2D, 0)

	r.ctx.CheckError("gfx.Render: composite pass")
}

// resetQueues ends the frame. Submissions always target the next
// flush, never a partially drawn one.
func (r *Renderer) resetQueues() {
	r.commands.Reset()
	r.lights.Reset()
}

// LoadTexture reads an image by name through the asset loader and
// uploads it. The caller owns the returned texture.
func (r *Renderer) LoadTexture(name string) (*Texture, error) {
	img, err := r.loader.Image(name)
	if err != nil {
		return nil, errors.New("gfx.LoadTexture(): " + err.Error())
	}
	bounds := img.Bounds()
	return NewTexture(asset.Pixels(img), bounds.Dx(), bounds.Dy()), nil
}

// LoadMesh reads a COLLADA model by name through the asset loader
// and uploads it. The caller owns the returned mesh.
func (r *Renderer) LoadMesh(name string) (*Mesh, error) {
	contents, err := r.loader.Bytes(name)
	if err != nil {
		return nil, errors.New("gfx.LoadMesh(): " + err.Error())
	}
	data, err := model.ImportCollada(contents)
	if err != nil {
		return nil, errors.New("gfx.LoadMesh(): " + err.Error())
	}
	return NewMesh(data.Interleave(), data.Indices, PosNormTexLayout()), nil
}

// Destroy releases everything the renderer created, GPU resources in
// reverse creation order, then the asset loader. The renderer must
// not be used afterwards.
func (r *Renderer) Destroy() {
	r.quad.Release()
	r.cube.Release()
	r.composite.release()
	r.scene.release()
	r.target.release()
	gl.DeleteVertexArrays(1, &r.vao)
	if err := r.loader.Close(); err != nil {
		log.Warnf("gfx: Destroy: %s", err.Error())
	}
	log.Info("gfx: renderer destroyed")
}
