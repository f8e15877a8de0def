package app

import (
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Nazar-Okruzhko/Hot-Dog-The-3D-Viewer/engine/input"
	"github.com/Nazar-Okruzhko/Hot-Dog-The-3D-Viewer/engine/render3d"
	"github.com/Nazar-Okruzhko/Hot-Dog-The-3D-Viewer/engine/ui"
)

// Reference window size the UI layout is designed against; widgets rescale
// proportionally when the window is resized.
const (
	DesignWidth  = 1200
	DesignHeight = 800
	MinWidth     = 800
	MinHeight    = 600
)

var (
	backgroundColor = color.RGBA{220, 221, 223, 255}
	gridColor       = color.RGBA{200, 200, 200, 255}
)

// Viewer is the application: it owns the mesh, camera and pipeline, routes
// input into camera/mode mutations between frames, and presents the
// pipeline's polygon list. One Update+Draw pair is one frame: input settle,
// state update, pipeline recompute, present.
type Viewer struct {
	camera   *render3d.Camera
	pipeline *render3d.Pipeline
	in       *input.State
	viewport render3d.Viewport

	showGrid  bool
	showAxes  bool
	debug     bool
	sphereRes int

	dragging bool
	panning  bool

	loadedFile   string
	lastMeshPath string

	// UI
	tabView        *ui.TabView
	lightDial      *ui.LightDial
	shadingButtons []*ui.Button
	textureButtons []*ui.Button
	gridButton     *ui.Button
	axesButton     *ui.Button
	perfButton     *ui.Button
	modelButtons   []*ui.Button

	whiteImg *ebiten.Image
}

// Option configures a Viewer.
type Option func(*Viewer)

// WithSphereResolution overrides the sphere builder tessellation.
func WithSphereResolution(res int) Option {
	return func(v *Viewer) { v.sphereRes = res }
}

// WithDebugOverlay enables the FPS/TPS readout.
func WithDebugOverlay() Option {
	return func(v *Viewer) { v.debug = true }
}

// WithMeshFile loads the given mesh description at startup, keeping the
// default cube when the file fails to parse.
func WithMeshFile(path string) Option {
	return func(v *Viewer) {
		m, err := render3d.LoadOBJFile(path)
		if err != nil {
			log.Printf("load %s: %v", path, err)
			return
		}
		v.pipeline.SetMesh(m)
		v.camera.AutoFrame(m)
		v.loadedFile = filepath.Base(path)
		v.lastMeshPath = path
		for _, b := range v.modelButtons {
			b.Active = false
		}
	}
}

// New builds the viewer with the default cube mesh framed in view.
func New(opts ...Option) *Viewer {
	mesh := render3d.NewCubeMesh()
	camera := render3d.NewCamera()
	v := &Viewer{
		camera:    camera,
		pipeline:  render3d.NewPipeline(mesh, camera),
		in:        input.NewState(),
		viewport:  render3d.Viewport{W: DesignWidth, H: DesignHeight},
		showGrid:  true,
		showAxes:  true,
		sphereRes: 20,
	}
	camera.AutoFrame(mesh)

	v.tabView = ui.NewTabView(DesignWidth-300, 10, 290, DesignHeight-20,
		[]string{"Env & Light", "Stats & Shading"})
	v.lightDial = ui.NewLightDial(DesignWidth-150, 150, 80)

	v.shadingButtons = []*ui.Button{
		ui.NewButton(DesignWidth-280, 100, 240, 40, "Solid Shading"),
		ui.NewButton(DesignWidth-280, 150, 240, 40, "Wireframe View"),
		ui.NewButton(DesignWidth-280, 200, 240, 40, "Texture View"),
	}
	v.shadingButtons[0].Active = true

	v.textureButtons = []*ui.Button{
		ui.NewButton(DesignWidth-280, 260, 115, 40, "Color Map"),
		ui.NewButton(DesignWidth-155, 260, 115, 40, "Normal Map"),
		ui.NewButton(DesignWidth-280, 310, 115, 40, "Specular Map"),
		ui.NewButton(DesignWidth-155, 310, 115, 40, "Metallic Map"),
		ui.NewButton(DesignWidth-280, 360, 115, 40, "Roughness Map"),
		ui.NewButton(DesignWidth-155, 360, 115, 40, "Glossiness Map"),
	}
	v.textureButtons[0].Active = true
	for _, b := range v.textureButtons {
		b.Enabled = false
	}

	v.gridButton = ui.NewButton(DesignWidth-280, 410, 115, 40, "Show Grid")
	v.gridButton.Active = v.showGrid
	v.axesButton = ui.NewButton(DesignWidth-155, 410, 115, 40, "Show Axes")
	v.axesButton.Active = v.showAxes
	v.perfButton = ui.NewButton(DesignWidth-280, 460, 240, 40, "Performance Mode")

	v.modelButtons = []*ui.Button{
		ui.NewButton(20, DesignHeight-170, 160, 40, "Cube Model"),
		ui.NewButton(20, DesignHeight-120, 160, 40, "Sphere Model"),
		ui.NewButton(20, DesignHeight-70, 160, 40, "Reload OBJ"),
	}
	v.modelButtons[0].Active = true

	v.whiteImg = ebiten.NewImage(3, 3)
	v.whiteImg.Fill(color.White)

	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Update runs one input/state tick. All camera and mesh mutation happens
// here, never during Draw's pipeline pass.
func (v *Viewer) Update() error {
	v.in.Update()

	v.handleDroppedFiles()

	mx, my := v.in.MouseX, v.in.MouseY
	for _, b := range v.allButtons() {
		b.UpdateHover(mx, my)
	}

	uiConsumed := false
	if v.in.LeftJustPressed {
		uiConsumed = v.handleUIClick(mx, my)
	}
	if v.tabView.Active == 0 && v.lightDial.Handle(mx, my, v.in.LeftJustPressed, v.in.LeftPressed) {
		uiConsumed = true
	}

	// Camera gestures start only on presses the UI did not claim.
	if v.in.LeftJustPressed && !uiConsumed && !v.overUI(mx, my) {
		v.dragging = true
	}
	if v.in.RightJustPressed && !v.overUI(mx, my) {
		v.panning = true
	}
	if v.in.LeftJustReleased {
		v.dragging = false
	}
	if v.in.RightJustReleased {
		v.panning = false
	}

	if v.dragging {
		v.camera.Rotate(
			float64(v.in.MouseDX)*input.RotateSensitivity,
			float64(v.in.MouseDY)*input.RotateSensitivity,
		)
	}
	if v.panning {
		v.camera.Pan(
			float64(-v.in.MouseDX)*input.PanSensitivity,
			float64(v.in.MouseDY)*input.PanSensitivity,
		)
	}
	if v.in.ScrollY != 0 {
		v.camera.Zoom(v.in.ScrollY * input.ZoomSensitivity)
	}

	v.pipeline.LightAngle = v.lightDial.Angle
	return nil
}

// handleUIClick routes a left press through the widget tree. Returns true if
// a widget consumed it.
func (v *Viewer) handleUIClick(mx, my int) bool {
	if v.tabView.Click(mx, my) {
		return true
	}

	if v.tabView.Active == 1 && v.clickSettings(mx, my) {
		return true
	}

	for i, b := range v.modelButtons {
		if b.Click(mx, my) {
			v.selectRadio(v.modelButtons, i)
			switch i {
			case 0:
				v.setMesh(render3d.NewCubeMesh(), "")
			case 1:
				v.setMesh(render3d.NewSphereMesh(v.sphereRes, nil), "")
			case 2:
				v.reloadMeshFile()
			}
			return true
		}
	}
	return false
}

// clickSettings handles the widgets on the settings tab.
func (v *Viewer) clickSettings(mx, my int) bool {
	for i, b := range v.shadingButtons {
		if b.Click(mx, my) {
			v.selectRadio(v.shadingButtons, i)
			v.pipeline.Shading = render3d.ShadingMode(i)
			textureView := v.pipeline.Shading == render3d.ShadingTexture
			for _, tb := range v.textureButtons {
				tb.Enabled = textureView
			}
			return true
		}
	}
	for i, b := range v.textureButtons {
		if b.Click(mx, my) {
			v.selectRadio(v.textureButtons, i)
			v.pipeline.ColorMap = render3d.ColorMode(i)
			return true
		}
	}

	if v.gridButton.Click(mx, my) {
		v.showGrid = v.gridButton.Active
		return true
	}
	if v.axesButton.Click(mx, my) {
		v.showAxes = v.axesButton.Active
		return true
	}
	if v.perfButton.Click(mx, my) {
		v.pipeline.PerformanceMode = v.perfButton.Active
		return true
	}
	return false
}

func (v *Viewer) selectRadio(group []*ui.Button, active int) {
	for j, b := range group {
		b.Active = j == active
	}
}

// setMesh atomically swaps the viewed mesh and reframes the camera.
func (v *Viewer) setMesh(m *render3d.Mesh, loadedFrom string) {
	v.pipeline.SetMesh(m)
	v.camera.AutoFrame(m)
	v.loadedFile = loadedFrom
}

// reloadMeshFile re-imports the last mesh path. A failed import leaves the
// current mesh untouched.
func (v *Viewer) reloadMeshFile() {
	if v.lastMeshPath == "" {
		log.Printf("no mesh file loaded yet; drop an .obj file onto the window or pass -mesh")
		return
	}
	m, err := render3d.LoadOBJFile(v.lastMeshPath)
	if err != nil {
		log.Printf("reload %s: %v", v.lastMeshPath, err)
		return
	}
	v.setMesh(m, filepath.Base(v.lastMeshPath))
}

// handleDroppedFiles imports the first .obj file dropped onto the window this
// frame. Import failure keeps the current mesh and only logs.
func (v *Viewer) handleDroppedFiles() {
	files := ebiten.DroppedFiles()
	if files == nil {
		return
	}
	entries, err := fs.ReadDir(files, ".")
	if err != nil {
		return
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.EqualFold(filepath.Ext(name), ".obj") {
			continue
		}
		f, err := files.Open(name)
		if err != nil {
			log.Printf("open dropped file %s: %v", name, err)
			continue
		}
		m, perr := render3d.ParseOBJ(f)
		f.Close()
		if perr != nil {
			log.Printf("load dropped file %s: %v", name, perr)
			continue
		}
		v.setMesh(m, name)
		for _, b := range v.modelButtons {
			b.Active = false
		}
		return
	}
}

// overUI reports whether the cursor sits on any interactive widget, so a
// press there never starts a camera drag.
func (v *Viewer) overUI(mx, my int) bool {
	if v.tabView.Contains(mx, my) || v.lightDial.Contains(mx, my) {
		return true
	}
	for _, b := range v.allButtons() {
		if b.Contains(mx, my) {
			return true
		}
	}
	return false
}

func (v *Viewer) allButtons() []*ui.Button {
	all := make([]*ui.Button, 0, len(v.shadingButtons)+len(v.textureButtons)+len(v.modelButtons)+3)
	all = append(all, v.shadingButtons...)
	all = append(all, v.textureButtons...)
	all = append(all, v.gridButton, v.axesButton, v.perfButton)
	all = append(all, v.modelButtons...)
	return all
}

// Draw presents one frame: background, grid, axes, the pipeline's ordered
// polygons, then the UI overlay.
func (v *Viewer) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	if v.showGrid {
		for _, s := range render3d.GridSegments(v.camera, v.viewport) {
			vector.StrokeLine(screen, float32(s.X1), float32(s.Y1), float32(s.X2), float32(s.Y2), 1, gridColor, false)
		}
	}
	if v.showAxes {
		for _, a := range render3d.AxisSegments(v.camera, v.viewport) {
			clr := color.RGBA{a.Color.R, a.Color.G, a.Color.B, 255}
			vector.StrokeLine(screen, float32(a.X1), float32(a.Y1), float32(a.X2), float32(a.Y2), 3, clr, false)
			ui.DrawLabel(screen, a.Label, int(a.X2)+5, int(a.Y2), clr)
		}
	}

	v.drawPolygons(screen, v.pipeline.BuildFrame(v.viewport))
	v.drawUI(screen)

	if v.loadedFile != "" {
		ui.DrawLabel(screen, "Loaded: "+v.loadedFile, 20, 20, ui.TextColor)
	}
	if v.debug {
		info := fmt.Sprintf("FPS: %.1f  TPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		ebitenutil.DebugPrintAt(screen, info, 10, v.viewport.H-20)
	}
}

// drawPolygons draws the ordered polygon list. Fills are batched into
// DrawTriangles calls; a polygon with an outline flushes the batch first so
// strokes land on top of their own fill but under every nearer face.
func (v *Viewer) drawPolygons(screen *ebiten.Image, polys []render3d.Polygon) {
	vertices := make([]ebiten.Vertex, 0, len(polys)*3)
	indices := make([]uint16, 0, len(polys)*3)
	flush := func() {
		if len(vertices) > 0 {
			screen.DrawTriangles(vertices, indices, v.whiteImg, nil)
			vertices = vertices[:0]
			indices = indices[:0]
		}
	}

	for _, poly := range polys {
		base := uint16(len(vertices))
		for _, pt := range poly.Points {
			vertices = append(vertices, ebiten.Vertex{
				DstX:   float32(pt.X),
				DstY:   float32(pt.Y),
				SrcX:   1,
				SrcY:   1,
				ColorR: float32(poly.Fill.R) / 255,
				ColorG: float32(poly.Fill.G) / 255,
				ColorB: float32(poly.Fill.B) / 255,
				ColorA: 1,
			})
		}
		indices = append(indices, base, base+1, base+2)

		if poly.Outlined {
			flush()
			clr := color.RGBA{poly.Outline.R, poly.Outline.G, poly.Outline.B, 255}
			for i := range poly.Points {
				p1 := poly.Points[i]
				p2 := poly.Points[(i+1)%len(poly.Points)]
				vector.StrokeLine(screen, float32(p1.X), float32(p1.Y), float32(p2.X), float32(p2.Y), 1, clr, false)
			}
		}
		if len(vertices) >= 65000 {
			flush()
		}
	}
	flush()
}

func (v *Viewer) drawUI(screen *ebiten.Image) {
	v.tabView.Draw(screen)

	if v.tabView.Active == 0 {
		v.lightDial.Draw(screen)
	} else {
		for _, b := range v.shadingButtons {
			b.Draw(screen)
		}
		if v.pipeline.Shading == render3d.ShadingTexture {
			tb := v.textureButtons[0]
			ui.DrawPanel(screen, tb.X-10, tb.Y-10, 270, 160, ui.ButtonBG)
		}
		for _, b := range v.textureButtons {
			b.Draw(screen)
		}
		v.gridButton.Draw(screen)
		v.axesButton.Draw(screen)
		v.perfButton.Draw(screen)
		v.drawStats(screen)
	}

	for _, b := range v.modelButtons {
		b.Draw(screen)
	}
}

func (v *Viewer) drawStats(screen *ebiten.Image) {
	x, y := v.gridButton.X, v.perfButton.Y+v.perfButton.H+10
	ui.DrawPanel(screen, x, y, 240, 150, ui.ButtonBG)
	ui.DrawLabel(screen, "Model Statistics", x+10, y+10, ui.TextColor)

	stats := v.pipeline.Mesh.Stats()
	ui.DrawLabel(screen, fmt.Sprintf("Vertices: %d", stats.Vertices), x+20, y+50, ui.TextColor)
	ui.DrawLabel(screen, fmt.Sprintf("Triangles: %d", stats.Triangles), x+20, y+80, ui.TextColor)
	ui.DrawLabel(screen, fmt.Sprintf("Edges: %d", stats.Edges), x+20, y+110, ui.TextColor)
}

// Layout adopts the outside window size, clamped to the minimum, and
// propagates it to the viewport and the widget layout.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := outsideWidth, outsideHeight
	if w < MinWidth {
		w = MinWidth
	}
	if h < MinHeight {
		h = MinHeight
	}
	if w != v.viewport.W || h != v.viewport.H {
		v.viewport = render3d.Viewport{W: w, H: h}
		v.camera.Moved = true // cached projections are screen-relative

		wr := float64(w) / DesignWidth
		hr := float64(h) / DesignHeight
		v.tabView.Rescale(wr, hr)
		v.lightDial.Rescale(wr, hr)
		for _, b := range v.allButtons() {
			b.Rescale(wr, hr)
		}
	}
	return w, h
}
