package skybird

import (
	"fmt"
	"math"

	"github.com/vovakirdan/skybird/internal/core"
)

// Visual characters for rendering
const (
	BirdChar      = '●'
	BeakChar      = '▸'
	PipeChar      = '█'
	PipeCapTop    = '▀'
	PipeCapBottom = '▄'
	GroundChar    = '▔'
	HillChar      = '░'
	StarChar      = '·'
	ChargeChar    = '▮'
)

// Viewport maps canvas coordinates onto screen cells.
// Row 0 holds the HUD and the last row is the ground; the canvas fills the rows between.
type Viewport struct {
	scaleX float64 // Cells per canvas unit, horizontal
	scaleY float64 // Cells per canvas unit, vertical
	top    int     // First playfield row
	cols   int
	rows   int
}

// NewViewport fits a canvas onto a screen.
func NewViewport(canvasW, canvasH, screenW, screenH int) Viewport {
	cols := max(screenW, 1)
	rows := max(screenH-2, 1)
	return Viewport{
		scaleX: float64(cols) / float64(max(canvasW, 1)),
		scaleY: float64(rows) / float64(max(canvasH, 1)),
		top:    1,
		cols:   cols,
		rows:   rows,
	}
}

// Col returns the screen column of canvas x.
func (v Viewport) Col(x float64) int {
	return int(math.Floor(x * v.scaleX))
}

// Row returns the screen row of canvas y.
func (v Viewport) Row(y float64) int {
	return v.top + int(math.Floor(y*v.scaleY))
}

// Span returns how many cells a horizontal canvas length covers, at least one.
func (v Viewport) Span(w float64) int {
	return max(int(math.Round(w*v.scaleX)), 1)
}

// GroundRow returns the row the ground line is drawn on.
func (v Viewport) GroundRow() int {
	return v.top + v.rows
}

// Draw renders the playfield and the HUD for the current frame.
func (s *Session) Draw(dst *core.Screen) {
	v := NewViewport(s.cfg.Canvas.Width, s.cfg.Canvas.Height, dst.Width(), dst.Height())

	s.drawBackground(dst, v)

	for _, p := range s.pipes.Pipes() {
		s.drawPipe(dst, v, p)
	}
	for _, c := range s.coins.Items() {
		c.Draw(dst, v)
	}
	for _, p := range s.powerUps.Items() {
		p.Draw(dst, v)
	}
	for _, h := range s.hazards.Items() {
		h.Draw(dst, v)
	}

	s.drawBird(dst, v)
	s.drawHUD(dst)
}

// hill ridge as canvas points, x offsets from the left and heights above the ground
var ridge = [][2]float64{{0, 0}, {100, 150}, {300, 50}, {500, 200}, {700, 100}, {800, 0}}

func (s *Session) drawBackground(dst *core.Screen, v Viewport) {
	w := float64(s.cfg.Canvas.Width)
	h := float64(s.cfg.Canvas.Height)
	night := s.env.Night
	off := s.env.Offset

	if night {
		for i := range 30 {
			x := math.Mod(float64(i*50)+off/2, w)
			y := math.Mod(float64(i*40), math.Max(h-200, 1))
			dst.SetColored(v.Col(x), v.Row(y), StarChar, core.ColorBrightWhite)
		}
	} else {
		clouds := [][3]float64{{100, 100, 1}, {300, 150, 0.7}, {200, 50, 0.5}, {400, 80, 1}, {500, 120, 0.3}}
		for _, c := range clouds {
			x := wrap(c[0]-off*c[2], w)
			dst.DrawTextColored(v.Col(x), v.Row(c[1]), "(__)", core.ColorWhite)
		}
	}

	// Parallax hills scroll at a third of the background speed.
	hillColor := core.ColorGreen
	if night {
		hillColor = hillColor.Dim()
	}
	scale := w / 800
	ground := v.GroundRow()
	for col := 0; col < dst.Width(); col++ {
		x := wrap((float64(col)+0.5)/v.scaleX+off/3, w)
		top := v.Row(h - ridgeHeight(x/scale))
		for row := top; row < ground; row++ {
			dst.SetColored(col, row, HillChar, hillColor)
		}
	}

	groundColor := core.ColorGreen
	if night {
		groundColor = core.ColorGray
	}
	for col := 0; col < dst.Width(); col++ {
		dst.SetColored(col, ground, GroundChar, groundColor)
	}
}

// ridgeHeight interpolates the hill outline at x in [0, 800].
func ridgeHeight(x float64) float64 {
	for i := 1; i < len(ridge); i++ {
		a, b := ridge[i-1], ridge[i]
		if x <= b[0] {
			t := (x - a[0]) / (b[0] - a[0])
			return a[1] + t*(b[1]-a[1])
		}
	}
	return 0
}

// wrap maps x into [0, w).
func wrap(x, w float64) float64 {
	x = math.Mod(x, w)
	if x < 0 {
		x += w
	}
	return x
}

func (s *Session) drawPipe(dst *core.Screen, v Viewport, p Pipe) {
	left := v.Col(p.X)
	width := v.Span(float64(s.pipes.Width()))
	gapTop := v.Row(float64(p.GapTop))
	gapBottom := v.Row(float64(p.GapTop + s.pipes.Gap()))
	ground := v.GroundRow()

	body, capColor := core.ColorGreen, core.ColorBrightGreen
	if s.env.Night {
		body, capColor = body.Dim(), capColor.Dim()
	}
	for x := left; x < left+width; x++ {
		for y := v.top; y < gapTop; y++ {
			dst.SetColored(x, y, PipeChar, body)
		}
		if gapTop > v.top {
			dst.SetColored(x, gapTop-1, PipeCapTop, capColor)
		}
		for y := gapBottom; y < ground; y++ {
			dst.SetColored(x, y, PipeChar, body)
		}
		if gapBottom < ground {
			dst.SetColored(x, gapBottom, PipeCapBottom, capColor)
		}
	}
}

func (s *Session) drawBird(dst *core.Screen, v Viewport) {
	b := s.bird
	if !b.Visible() {
		return
	}

	col, row := v.Col(b.X), v.Row(b.Y)
	color := core.ColorBrightYellow
	switch {
	case b.Invincible:
		color = core.ColorBrightCyan
	case b.Charging():
		color = core.ColorOrange
	}
	dst.SetColored(col, row, BirdChar, color)
	dst.SetColored(col+1, row, BeakChar, core.ColorOrange)

	if b.Charging() {
		const barCells = 5
		filled := int(math.Ceil(b.ChargeRatio() * barCells))
		for i := range filled {
			dst.SetColored(col-2+i, row-1, ChargeChar, core.ColorBrightWhite)
		}
	}
}

func (s *Session) drawHUD(dst *core.Screen) {
	for x := 0; x < dst.Width(); x++ {
		dst.Set(x, 0, ' ')
	}

	hud := fmt.Sprintf(" Score: %d ", s.score)
	if s.cfg.Coins.Enabled {
		hud += fmt.Sprintf(" Coins: %d ", s.coinScore)
	}
	dst.DrawTextColored(1, 0, hud, core.ColorBrightWhite)

	var right string
	if s.Invincible() {
		right = fmt.Sprintf("INVINCIBLE %d ", s.invincibleLeft)
	}
	if s.cfg.World.DayNight {
		if s.env.Night {
			right += "☾ night "
		} else {
			right += "☀ day "
		}
	}
	if right != "" {
		dst.DrawTextColored(dst.Width()-len([]rune(right))-1, 0, right, core.ColorCyan)
	}
}
