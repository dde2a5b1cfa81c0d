// seehuhn.de/go/ink - freehand ink capture and math markup
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/ink"
	"seehuhn.de/go/ink/client"
	"seehuhn.de/go/ink/markup"
)

// mousePointer is the pointer id used for the mouse. Touch input has no
// pointer id.
const mousePointer = 1

var paper = color.White

// game is the ebiten.Game hosting the ink surface. All ink calls happen
// on the ebiten update goroutine.
type game struct {
	ctx context.Context
	cfg Config

	surface  *ink.Surface
	renderer *ink.Renderer
	tracker  *ink.Tracker
	service  *client.Client

	reloads chan Config
	done    chan func()
	busy    bool

	question *client.Question

	// last layout, in logical pixels
	outW, outH int
	scale      float64

	view  *ebiten.Image
	rgba  *image.RGBA
	dirty bool

	mouseDown bool
	cursor    image.Point
	touching  bool
	touchIDs  []ebiten.TouchID
}

func newGame(ctx context.Context, cfg Config) *game {
	s := ink.NewSurface()
	r := ink.NewRenderer(s)
	g := &game{
		ctx:      ctx,
		surface:  s,
		renderer: r,
		tracker:  ink.NewTracker(s, r, nil),
		reloads:  make(chan Config, 1),
		done:     make(chan func(), 1),
	}
	g.apply(cfg)
	return g
}

// apply makes cfg the current configuration. The window size is only
// used at startup.
func (g *game) apply(cfg Config) {
	g.cfg = cfg
	g.tracker.SetTool(cfg.Pen.Tool)
	g.tracker.SetStrokeSize(cfg.Pen.Size)
	g.service = client.New(
		client.WithBaseURL(cfg.Service.URL),
		client.WithLogger(ink.Logger()),
	)
	g.updateTitle()
}

func (g *game) updateTitle() {
	ebiten.SetWindowTitle(fmt.Sprintf("%s: %s %g", g.cfg.Window.Title,
		g.tracker.Tool(), g.tracker.StrokeSize()))
}

func (g *game) run() error {
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(g)
}

// Update implements ebiten.Game.Update.
func (g *game) Update() error {
	select {
	case <-g.ctx.Done():
		return ebiten.Termination
	case cfg := <-g.reloads:
		g.apply(cfg)
	case f := <-g.done:
		g.busy = false
		f()
	default:
	}

	g.handleKeys()
	g.handleMouse()
	g.handleTouch()
	return nil
}

func (g *game) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.tracker.SetTool(ink.Pen)
		g.updateTitle()
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		g.tracker.SetTool(ink.Eraser)
		g.updateTitle()
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		g.tracker.SetStrokeSize(g.tracker.StrokeSize() + 1)
		g.updateTitle()
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		g.tracker.SetStrokeSize(g.tracker.StrokeSize() - 1)
		g.updateTitle()
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.renderer.Clear()
		g.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		g.save()
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.recognize()
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		g.newQuestion()
	case inpututil.IsKeyJustPressed(ebiten.KeyK):
		g.check()
	}
}

// client converts a screen position into client coordinates.
func (g *game) client(x, y int) vec.Vec2 {
	k := g.surface.Scale()
	return vec.Vec2{X: float64(x) / k, Y: float64(y) / k}
}

func (g *game) handleMouse() {
	x, y := ebiten.CursorPosition()
	pos := g.client(x, y)
	e := &ink.PointerEvent{PointerID: mousePointer, ClientX: pos.X, ClientY: pos.Y}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.mouseDown = true
		g.tracker.PointerDown(e)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.mouseDown = false
		g.tracker.PointerEnd(e)
	case g.mouseDown && image.Pt(x, y) != g.cursor:
		g.tracker.PointerMove(e)
		g.dirty = true
	}
	g.cursor = image.Pt(x, y)
}

func (g *game) handleTouch() {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	if len(g.touchIDs) == 0 {
		if g.touching {
			g.touching = false
			g.tracker.PointerEnd(&ink.PointerEvent{})
		}
		return
	}

	touches := make([]vec.Vec2, len(g.touchIDs))
	for i, id := range g.touchIDs {
		touches[i] = g.client(ebiten.TouchPosition(id))
	}
	e := &ink.PointerEvent{Touches: touches}
	if !g.touching {
		g.touching = true
		g.tracker.PointerDown(e)
		return
	}
	g.tracker.PointerMove(e)
	g.dirty = true
}

// save writes the current bitmap to a new PNG file in the export
// directory.
func (g *game) save() {
	img, err := g.surface.Export()
	if err != nil {
		ink.Logger().Error("export failed", "error", err)
		return
	}
	name := filepath.Join(g.cfg.ExportDir, time.Now().Format("ink-20060102-150405.png"))
	if err := os.WriteFile(name, img.PNG, 0o644); err != nil {
		ink.Logger().Error("export failed", "error", err)
		return
	}
	ink.Logger().Info("image saved", "file", name, "bytes", len(img.PNG))
}

// call runs f in the background. At most one request is in flight; its
// completion runs on the update goroutine.
func (g *game) call(name string, f func(ctx context.Context) (func(), error)) {
	if g.busy {
		ink.Logger().Info("request in progress", "request", name)
		return
	}
	g.busy = true
	timeout := g.cfg.Service.Timeout
	go func() {
		ctx, cancel := context.WithTimeout(g.ctx, timeout)
		defer cancel()

		next, err := f(ctx)
		if err != nil {
			ink.Logger().Error("request failed", "request", name, "error", err)
			next = func() {}
		}
		g.done <- next
	}()
}

func (g *game) exportText() (string, bool) {
	img, err := g.surface.Export()
	if err != nil {
		ink.Logger().Error("export failed", "error", err)
		return "", false
	}
	return img.Text, true
}

func (g *game) recognize() {
	data, ok := g.exportText()
	if !ok {
		return
	}
	svc := g.service
	g.call("ocr", func(ctx context.Context) (func(), error) {
		res, err := svc.OCR(ctx, data)
		if err != nil {
			return nil, err
		}
		return func() {
			fmt.Println("recognized:", res.Text)
		}, nil
	})
}

func (g *game) newQuestion() {
	svc := g.service
	subject, level := g.cfg.Service.Subject, g.cfg.Service.Level
	g.call("question", func(ctx context.Context) (func(), error) {
		q, err := svc.Question(ctx, subject, level)
		if err != nil {
			return nil, err
		}
		return func() {
			g.question = q
			g.renderer.Clear()
			g.dirty = true
			fmt.Println(displayQuestion(q.Latex))
		}, nil
	})
}

func (g *game) check() {
	if g.question == nil {
		ink.Logger().Info("no question to check, press N first")
		return
	}
	data, ok := g.exportText()
	if !ok {
		return
	}
	svc, q := g.service, g.question
	subject, level := g.cfg.Service.Subject, g.cfg.Service.Level
	g.call("check", func(ctx context.Context) (func(), error) {
		fb, err := svc.Check(ctx, data, q, subject, level)
		if err != nil {
			return nil, err
		}
		return func() {
			fmt.Println(displayFeedback(fb.Text))
		}, nil
	})
}

// displayQuestion formats a question for the terminal. Questions without
// text commands are pure formulas and are shown as they are.
func displayQuestion(latex string) string {
	if !markup.IsTextMode(latex) {
		return latex
	}
	return markup.PlainText(latex)
}

// displayFeedback formats feedback text with inline formulas for the
// terminal.
func displayFeedback(text string) string {
	var b strings.Builder
	for _, seg := range markup.SplitInline(text) {
		if seg.Math {
			b.WriteString(markup.PlainText(seg.Text))
		} else {
			b.WriteString(seg.Text)
		}
	}
	return b.String()
}

// Draw implements ebiten.Game.Draw.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(paper)

	bm := g.surface.Bitmap()
	b := bm.Bounds()
	if b.Empty() {
		return
	}
	if g.view == nil || g.view.Bounds() != b {
		g.view = ebiten.NewImage(b.Dx(), b.Dy())
		g.rgba = image.NewRGBA(b)
		g.dirty = true
	}
	if g.dirty {
		// ebiten expects premultiplied alpha
		draw.Copy(g.rgba, image.Point{}, bm, b, draw.Src, nil)
		g.view.WritePixels(g.rgba.Pix)
		g.dirty = false
	}
	screen.DrawImage(g.view, nil)
}

// Layout implements ebiten.Game.Layout. The screen has one pixel per
// backing-store pixel; the surface is reconfigured whenever the window
// size or the device scale changes.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	scale := ebiten.Monitor().DeviceScaleFactor()
	if outsideWidth != g.outW || outsideHeight != g.outH || scale != g.scale {
		container := rect.Rect{URx: float64(outsideWidth), URy: float64(outsideHeight)}
		if _, ok := g.surface.Configure(container, scale); ok {
			g.outW, g.outH, g.scale = outsideWidth, outsideHeight, scale
			g.dirty = true
		}
	}
	st := g.surface.State()
	return max(st.BackingWidth, 1), max(st.BackingHeight, 1)
}
