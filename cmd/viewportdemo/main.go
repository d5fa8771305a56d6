// Command viewportdemo opens multiple windows and drives them all from a
// single render loop, presenting a colored triangle into each one.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"runtime"

	"github.com/cogentcore/webgpu/wgpuglfw"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gogpu/viewport"

	_ "github.com/gogpu/viewport/backend/gogpu"
	_ "github.com/gogpu/viewport/backend/wgpu"
)

const triangleWGSL = `
@vertex
fn vs_main(@builtin(vertex_index) i: u32) -> @builtin(position) vec4<f32> {
    var pos = array<vec2<f32>, 3>(
        vec2<f32>(0.0, 0.6),
        vec2<f32>(-0.6, -0.6),
        vec2<f32>(0.6, -0.6),
    );
    return vec4<f32>(pos[i], 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(0.9, 0.4, 0.1, 1.0);
}
`

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

// demoWindow adapts a glfw window to the viewport.Window contract.
type demoWindow struct {
	id  viewport.WindowID
	win *glfw.Window
}

func (w *demoWindow) ID() viewport.WindowID { return w.id }

func (w *demoWindow) Size() (int, int) { return w.win.GetFramebufferSize() }

func (w *demoWindow) NativeSurface() any { return wgpuglfw.GetSurfaceDescriptor(w.win) }

func main() {
	var (
		count       = flag.Int("windows", 2, "number of windows")
		width       = flag.Int("width", 640, "window width")
		height      = flag.Int("height", 480, "window height")
		backendName = flag.String("backend", "", "backend to use (default: best available)")
		verbose     = flag.Bool("v", false, "enable logging")
	)
	flag.Parse()

	if *verbose {
		viewport.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))
	}

	if err := glfw.Init(); err != nil {
		log.Fatalf("glfw init: %v", err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)

	var opts []viewport.ContextOption
	if *backendName != "" {
		opts = append(opts, viewport.WithBackend(*backendName))
	}
	ctx, err := viewport.NewContext(opts...)
	if err != nil {
		log.Fatalf("create context: %v", err)
	}
	defer ctx.Close()
	log.Printf("backend: %s, adapter: %s", ctx.Backend(), ctx.Info().Name)

	pipeline, err := ctx.BuildPipeline(&viewport.PipelineDescriptor{
		Label:        "triangle",
		VertexWGSL:   triangleWGSL,
		FragmentWGSL: triangleWGSL,
	})
	if err != nil {
		log.Fatalf("build pipeline: %v", err)
	}
	defer pipeline.Release()

	renderer, err := viewport.NewFrameRenderer(ctx,
		viewport.WithPipeline(pipeline),
		viewport.WithClearColor(viewport.Color{R: 0.1, G: 0.1, B: 0.15, A: 1}),
	)
	if err != nil {
		log.Fatalf("create renderer: %v", err)
	}
	defer renderer.Close()

	windows := make([]*demoWindow, 0, *count)
	for i := 0; i < *count; i++ {
		win, err := glfw.CreateWindow(*width, *height,
			fmt.Sprintf("viewport %d", i+1), nil, nil)
		if err != nil {
			log.Fatalf("create window %d: %v", i+1, err)
		}
		w := &demoWindow{id: viewport.WindowID(i + 1), win: win}
		if _, err := renderer.OnWindowOpened(w); err != nil {
			log.Fatalf("register window %d: %v", i+1, err)
		}
		win.SetFramebufferSizeCallback(func(_ *glfw.Window, fbw, fbh int) {
			if err := renderer.OnWindowResized(w.id, fbw, fbh); err != nil {
				log.Printf("resize window %d: %v", w.id, err)
			}
		})
		windows = append(windows, w)
	}

	for len(windows) > 0 {
		glfw.PollEvents()

		live := windows[:0]
		for _, w := range windows {
			if w.win.ShouldClose() {
				if err := renderer.OnWindowClosed(w.id); err != nil {
					log.Printf("close window %d: %v", w.id, err)
				}
				w.win.Destroy()
				continue
			}
			live = append(live, w)
		}
		windows = live
		if len(windows) == 0 {
			break
		}

		for _, o := range renderer.RenderTick() {
			if o.State == viewport.FrameFailed {
				log.Printf("window %d: %v", o.Window, o.Err)
			}
		}
	}
}
