package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridmotion/collision"
	"github.com/lixenwraith/gridmotion/component"
	"github.com/lixenwraith/gridmotion/engine"
)

var (
	styleWall   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleFloor  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	stylePlayer = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleDrone  = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleHit    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleShadow = tcell.StyleDefault.Foreground(tcell.ColorDimGray)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
)

// projector maps world pixels to terminal cells for the current camera view
type projector struct {
	left, top  float64
	colW, rowH float64
	cols, rows int
}

func (sb *Sandbox) projector() projector {
	cols, rows := sb.screen.Size()
	rows = max(rows-1, 1)
	left, top, w, h := sb.cam.View()
	return projector{
		left: left,
		top:  top,
		colW: w / float64(cols),
		rowH: h / float64(rows),
		cols: cols,
		rows: rows,
	}
}

func (p projector) toScreen(x, y float64) (int, int, bool) {
	sx := int(math.Floor((x - p.left) / p.colW))
	sy := int(math.Floor((y - p.top) / p.rowH))
	return sx, sy, sx >= 0 && sx < p.cols && sy >= 0 && sy < p.rows
}

func (p projector) visible(r component.RenderBoundsComponent) bool {
	view := component.RenderBoundsComponent{
		X:      p.left,
		Y:      p.top,
		Width:  p.colW * float64(p.cols),
		Height: p.rowH * float64(p.rows),
	}
	return view.Intersects(r)
}

func (sb *Sandbox) draw() {
	sb.screen.Clear()
	p := sb.projector()
	gs := float64(sb.level.GridSize())

	// Tiles, sampled at each cell center
	for sy := 0; sy < p.rows; sy++ {
		wy := p.top + (float64(sy)+0.5)*p.rowH
		ty := int(math.Floor(wy / gs))
		for sx := 0; sx < p.cols; sx++ {
			wx := p.left + (float64(sx)+0.5)*p.colW
			tx := int(math.Floor(wx / gs))
			if sb.level.HasCollision(tx, ty) {
				sb.screen.SetContent(sx, sy, '█', nil, styleWall)
			} else if (tx+ty)%2 == 0 {
				sb.screen.SetContent(sx, sy, '·', nil, styleFloor)
			}
		}
	}

	for _, d := range sb.drones {
		style := styleDrone
		if sb.touching(d) {
			style = styleHit
		}
		sb.drawEntity(p, d, '◆', style)
	}
	sb.drawEntity(p, sb.player, '@', stylePlayer)

	sb.drawStatus(p)
	sb.screen.Show()
}

// drawEntity plots the lifted center plus a ground shadow when airborne
func (sb *Sandbox) drawEntity(p projector, e engine.Entity, ch rune, style tcell.Style) {
	b := sb.body(e)
	if b == nil {
		return
	}
	if rb, ok := sb.world.RenderBounds.Get(e); ok && !p.visible(*rb) {
		return
	}
	x := b.PixelX() + (0.5-b.AnchorX)*b.Width
	y := b.PixelY() + (0.5-b.AnchorY)*b.Height

	if b.ZR > 0 {
		groundY := y + b.ZR*b.CellSize
		if sx, sy, ok := p.toScreen(x, groundY); ok {
			sb.screen.SetContent(sx, sy, '_', nil, styleShadow)
		}
	}
	if sx, sy, ok := p.toScreen(x, y); ok {
		sb.screen.SetContent(sx, sy, ch, nil, style)
	}
}

func (sb *Sandbox) touching(d engine.Entity) bool {
	return sb.world.Overlaps.Get(sb.player, d)&(collision.OverlapInner|collision.OverlapRect) != 0
}

func (sb *Sandbox) drawStatus(p projector) {
	b := sb.body(sb.player)
	k, _ := sb.world.Kinetics.Get(sb.player)
	if b == nil || k == nil {
		return
	}
	xDir, _ := sb.world.Events.Get(sb.player, component.AxisX)
	yDir, _ := sb.world.Events.Get(sb.player, component.AxisY)
	status := fmt.Sprintf(" cell %d,%d  ratio %.2f,%.2f  vel %+.2f,%+.2f  lift %.2f  hit %+d,%+d  zoom %.2f  tick %d   arrows/wasd move  space jump  e shake  +/- zoom  q quit",
		b.CX, b.CY, b.XR, b.YR, k.VelX, k.VelY, b.ZR, xDir, yDir, sb.cam.Zoom(), sb.world.Time.Tick)

	row := p.rows
	for x := 0; x < p.cols; x++ {
		sb.screen.SetContent(x, row, ' ', nil, styleStatus)
	}
	for i, r := range []rune(status) {
		if i >= p.cols {
			break
		}
		sb.screen.SetContent(i, row, r, nil, styleStatus)
	}
}
