package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Theme colors.
var (
	PanelBG        = color.RGBA{230, 230, 230, 255}
	ButtonBG       = color.RGBA{220, 220, 220, 255}
	ButtonHover    = color.RGBA{200, 200, 200, 255}
	ButtonActive   = color.RGBA{180, 180, 180, 255}
	ButtonDisabled = color.RGBA{240, 240, 240, 255}
	BorderColor    = color.RGBA{180, 180, 180, 255}
	TextColor      = color.RGBA{40, 40, 40, 255}
	TextDisabled   = color.RGBA{180, 180, 180, 255}
	LightAccent    = color.RGBA{30, 150, 240, 255}
	LightKnob      = color.RGBA{255, 220, 100, 255}
)

var face font.Face = basicfont.Face7x13

const labelPadding = 20

// DrawLabel draws s with its top-left corner at (x, y).
func DrawLabel(dst *ebiten.Image, s string, x, y int, clr color.Color) {
	text.Draw(dst, s, face, x, y+face.Metrics().Ascent.Ceil(), clr)
}

// LabelWidth measures s in the UI font.
func LabelWidth(s string) int {
	return text.BoundString(face, s).Dx()
}

// DrawPanel draws a bordered panel rectangle.
func DrawPanel(dst *ebiten.Image, x, y, w, h int, fill color.Color) {
	vector.DrawFilledRect(dst, float32(x), float32(y), float32(w), float32(h), fill, false)
	vector.StrokeRect(dst, float32(x), float32(y), float32(w), float32(h), 1, BorderColor, false)
}

// Button is a clickable toggle. Layout positions are stored twice: the design
// rect at the reference window size and the current rect after Rescale.
type Button struct {
	X, Y, W, H int
	Label      string
	Active     bool
	Hover      bool
	Enabled    bool

	baseX, baseY, baseW, baseH int
}

// NewButton creates an enabled button, widening it if the label overflows.
func NewButton(x, y, w, h int, label string) *Button {
	if lw := LabelWidth(label) + labelPadding; lw > w {
		w = lw
	}
	return &Button{
		X: x, Y: y, W: w, H: h,
		Label:   label,
		Enabled: true,
		baseX:   x, baseY: y, baseW: w, baseH: h,
	}
}

// Rescale repositions the button for the current window size ratios.
func (b *Button) Rescale(wr, hr float64) {
	b.X = int(float64(b.baseX) * wr)
	b.Y = int(float64(b.baseY) * hr)
	b.W = int(float64(b.baseW) * wr)
	b.H = int(float64(b.baseH) * hr)
}

func (b *Button) Contains(mx, my int) bool {
	return mx >= b.X && mx < b.X+b.W && my >= b.Y && my < b.Y+b.H
}

func (b *Button) UpdateHover(mx, my int) {
	b.Hover = b.Enabled && b.Contains(mx, my)
}

// Click toggles the button if the press lands on it. Call on the
// just-pressed edge only.
func (b *Button) Click(mx, my int) bool {
	if !b.Enabled || !b.Contains(mx, my) {
		return false
	}
	b.Active = !b.Active
	return true
}

func (b *Button) Draw(dst *ebiten.Image) {
	fill := ButtonBG
	label := TextColor
	switch {
	case !b.Enabled:
		fill = ButtonDisabled
		label = TextDisabled
	case b.Active:
		fill = ButtonActive
	case b.Hover:
		fill = ButtonHover
	}
	DrawPanel(dst, b.X, b.Y, b.W, b.H, fill)

	lw := LabelWidth(b.Label)
	lx := b.X + (b.W-lw)/2
	ly := b.Y + (b.H-face.Metrics().Height.Ceil())/2
	DrawLabel(dst, b.Label, lx, ly, label)
}

// TabView is a row of tab headers above a content panel.
type TabView struct {
	X, Y, W, H int
	Tabs       []string
	Active     int

	baseX, baseY, baseW, baseH int
}

const tabHeaderH = 30

func NewTabView(x, y, w, h int, tabs []string) *TabView {
	return &TabView{
		X: x, Y: y, W: w, H: h,
		Tabs:  tabs,
		baseX: x, baseY: y, baseW: w, baseH: h,
	}
}

func (tv *TabView) Rescale(wr, hr float64) {
	tv.X = int(float64(tv.baseX) * wr)
	tv.Y = int(float64(tv.baseY) * hr)
	tv.W = int(float64(tv.baseW) * wr)
	tv.H = int(float64(tv.baseH) * hr)
}

func (tv *TabView) Contains(mx, my int) bool {
	return mx >= tv.X && mx < tv.X+tv.W && my >= tv.Y && my < tv.Y+tv.H
}

// Click switches the active tab when a header is pressed.
func (tv *TabView) Click(mx, my int) bool {
	if len(tv.Tabs) == 0 || my < tv.Y || my >= tv.Y+tabHeaderH {
		return false
	}
	tabW := tv.W / len(tv.Tabs)
	for i := range tv.Tabs {
		x := tv.X + i*tabW
		if mx >= x && mx < x+tabW {
			tv.Active = i
			return true
		}
	}
	return false
}

func (tv *TabView) Draw(dst *ebiten.Image) {
	tabW := tv.W / len(tv.Tabs)
	for i, tab := range tv.Tabs {
		x := tv.X + i*tabW
		fill := ButtonBG
		if i == tv.Active {
			fill = PanelBG
		}
		DrawPanel(dst, x, tv.Y, tabW, tabHeaderH, fill)
		lw := LabelWidth(tab)
		DrawLabel(dst, tab, x+(tabW-lw)/2, tv.Y+(tabHeaderH-face.Metrics().Height.Ceil())/2, TextColor)
	}
	DrawPanel(dst, tv.X, tv.Y+tabHeaderH, tv.W, tv.H-tabHeaderH, PanelBG)
}

// LightDial is a circular control: dragging inside the circle points the
// light direction at the cursor.
type LightDial struct {
	CX, CY, R int
	Angle     float64

	baseCX, baseCY int
	dragging       bool
}

func NewLightDial(cx, cy, r int) *LightDial {
	return &LightDial{CX: cx, CY: cy, R: r, baseCX: cx, baseCY: cy}
}

func (d *LightDial) Rescale(wr, hr float64) {
	d.CX = int(float64(d.baseCX) * wr)
	d.CY = int(float64(d.baseCY) * hr)
}

func (d *LightDial) Contains(mx, my int) bool {
	dx := float64(mx - d.CX)
	dy := float64(my - d.CY)
	return math.Sqrt(dx*dx+dy*dy) <= float64(d.R)
}

// Handle processes one frame of mouse state. Returns true while the dial is
// being interacted with.
func (d *LightDial) Handle(mx, my int, justPressed, pressed bool) bool {
	if justPressed && d.Contains(mx, my) {
		d.dragging = true
	}
	if !pressed {
		d.dragging = false
		return false
	}
	if d.dragging {
		// Screen Y grows downward; invert for a conventional angle.
		d.Angle = math.Atan2(float64(d.CY-my), float64(mx-d.CX))
		return true
	}
	return false
}

func (d *LightDial) Draw(dst *ebiten.Image) {
	vector.DrawFilledCircle(dst, float32(d.CX), float32(d.CY), float32(d.R), ButtonBG, false)
	vector.StrokeCircle(dst, float32(d.CX), float32(d.CY), float32(d.R), 2, BorderColor, false)

	lx := float32(d.CX) + float32(math.Cos(d.Angle)*float64(d.R-10))
	ly := float32(d.CY) - float32(math.Sin(d.Angle)*float64(d.R-10))
	vector.StrokeLine(dst, float32(d.CX), float32(d.CY), lx, ly, 2, LightAccent, false)
	vector.DrawFilledCircle(dst, lx, ly, 8, LightKnob, false)
}
