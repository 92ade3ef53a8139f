package main

import (
	"math"
	"runtime"
	"strconv"

	glm "github.com/go-gl/mathgl/mgl32"
	"github.com/gobuffalo/envy"
	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/devblok/prism/core"
	"github.com/devblok/prism/gfx"
)

func init() {
	runtime.LockOSThread()
}

// Essential globals
var (
	renderer  *gfx.Renderer
	sdlWindow *sdl.Window
	glContext sdl.GLContext

	cubeMesh *gfx.Mesh
	diffuse  *gfx.Texture
	angle    float32
)

const orbitCubes = 6

var configuration = core.Configuration{
	Time: core.TimeConfiguration{
		FramesPerSecond: 60,
	},
	Renderer: gfx.Configuration{
		ScreenWidth:  800,
		ScreenHeight: 600,
	},
}

// applyEnvironment folds PRISM_* variables into the configuration.
func applyEnvironment() {
	configuration.Renderer.AssetDirectory = envy.Get("PRISM_ASSET_DIR", "assets")
	configuration.Renderer.AssetArchive = envy.Get("PRISM_ASSET_ARCHIVE", "")
	configuration.Renderer.ShaderDirectory = envy.Get("PRISM_SHADER_DIR", "")
	if fps, err := strconv.Atoi(envy.Get("PRISM_FPS", "")); err == nil && fps > 0 {
		configuration.Time.FramesPerSecond = fps
	}
}

func newWindow() *sdl.Window {
	window, err := sdl.CreateWindow("Prism",
		sdl.WINDOWPOS_UNDEFINED,
		sdl.WINDOWPOS_UNDEFINED,
		int32(configuration.Renderer.ScreenWidth),
		int32(configuration.Renderer.ScreenHeight),
		sdl.WINDOW_OPENGL)
	if err != nil {
		panic(err)
	}
	return window
}

func setGLAttributes() {
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3); err != nil {
		panic(err)
	}
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2); err != nil {
		panic(err)
	}
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE); err != nil {
		panic(err)
	}
	if err := sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG); err != nil {
		panic(err)
	}
}

// checkerTexture prefers a checker.png asset and falls back to a
// generated checkerboard, so the demo runs without any assets.
func checkerTexture() *gfx.Texture {
	if texture, err := renderer.LoadTexture("checker.png"); err == nil {
		return texture
	}

	const size, cell = 64, 8
	pix := make([]uint8, 0, size*size*4)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				pix = append(pix, 230, 230, 230, 255)
			} else {
				pix = append(pix, 60, 60, 60, 255)
			}
		}
	}
	return gfx.NewTexture(pix, size, size)
}

func drawFrame() {
	angle += 0.01

	renderer.SubmitLight(gfx.DirectionalLight{
		Direction: glm.Vec3{-1, -1, -1}.Normalize(),
	})

	center := gfx.IdentityTransform()
	center.Rotation = glm.QuatRotate(angle, glm.Vec3{0, 1, 0})
	renderer.Submit(cubeMesh, diffuse, center)

	for i := 0; i < orbitCubes; i++ {
		offset := angle + float32(i)*2*math.Pi/orbitCubes
		transform := gfx.IdentityTransform()
		transform.Position = glm.Vec3{
			3 * float32(math.Cos(float64(offset))),
			0,
			3 * float32(math.Sin(float64(offset))),
		}
		transform.Rotation = glm.QuatRotate(2*offset, glm.Vec3{0, 1, 0})
		transform.Scale = 0.5
		renderer.Submit(cubeMesh, diffuse, transform)
	}

	renderer.Render()
	sdlWindow.GLSwap()
}

func main() {
	applyEnvironment()

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		panic(err)
	}
	defer sdl.Quit()

	setGLAttributes()
	sdlWindow = newWindow()
	defer sdlWindow.Destroy()

	var err error
	glContext, err = sdlWindow.GLCreateContext()
	if err != nil {
		panic(err)
	}
	defer sdl.GLDeleteContext(glContext)
	if err := sdlWindow.GLMakeCurrent(glContext); err != nil {
		panic(err)
	}
	if err := sdl.GLSetSwapInterval(1); err != nil {
		log.Warnf("GLSetSwapInterval(1): %s", err.Error())
	}

	renderer, err = gfx.New(configuration.Renderer)
	if err != nil {
		panic(err)
	}

	var loadedMesh *gfx.Mesh
	if mesh, err := renderer.LoadMesh("cube.dae"); err == nil {
		loadedMesh = mesh
		cubeMesh = mesh
	} else {
		cubeMesh = renderer.CubeMesh()
	}
	diffuse = checkerTexture()

	camera := gfx.IdentityTransform()
	camera.Position = glm.Vec3{0, 2.5, 6}
	camera.Rotation = glm.QuatRotate(glm.DegToRad(-20), glm.Vec3{1, 0, 0})
	renderer.SetView(camera)

	clock := core.NewTime(configuration.Time)
	exitC := make(chan struct{}, 2)

EventLoop:
	for {
		select {
		case <-exitC:
			log.Info("event loop exited")
			break EventLoop
		case <-clock.EventTicker().C:
			for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
				switch et := event.(type) {
				case *sdl.KeyboardEvent:
					if et.Keysym.Sym == sdl.K_ESCAPE {
						exitC <- struct{}{}
						continue EventLoop
					}
				case *sdl.QuitEvent:
					exitC <- struct{}{}
					continue EventLoop
				}
			}
		case <-clock.FpsTicker().C:
			drawFrame()
		}
	}

	clock.Stop()
	if loadedMesh != nil {
		loadedMesh.Release()
	}
	diffuse.Release()
	renderer.Destroy()
}
