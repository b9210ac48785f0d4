package main

import (
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"labyrinth"
	"labyrinth/internal/board"
)

var (
	backgroundColor = color.White
	wallColor       = color.Black
	routeColor      = color.RGBA{0x00, 0xc0, 0x00, 0xff}
	missColor       = color.RGBA{0xff, 0x00, 0x00, 0xff}
	graphColor      = color.NRGBA{0x80, 0x80, 0xff, 0x60}
	originColor     = color.RGBA{0x00, 0x60, 0xff, 0xff}
	targetColor     = color.RGBA{0xff, 0x80, 0x00, 0xff}
)

const helpText = "L: origin  R: destination  M: clear\nCtrl+L twice: wall  Ctrl+S: save  G: graph  H: help"

type game struct {
	board    *board.Board
	title    string
	showHelp bool
}

func newGame(b *board.Board) *game {
	return &game{
		board:    b,
		title:    b.Title(),
		showHelp: true,
	}
}

func cursor() labyrinth.Point {
	x, y := ebiten.CursorPosition()
	return labyrinth.Point{X: float64(x), Y: float64(y)}
}

func ctrlPressed() bool {
	return ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
}

func (g *game) Update() error {
	ctrl := ctrlPressed()

	switch {
	case ctrl && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.board.WallClick(cursor())
	case ctrl:
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.board.SetOrigin(cursor())
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		g.board.SetDestination(cursor())
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonMiddle):
		g.board.Clear()
	}

	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		if err := g.board.Save(labyrinth.DefaultWallsFile); err != nil {
			log.Printf("⚠️  Failed to save walls: %v\n", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.board.ToggleGraph()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}

	if title := g.board.Title(); title != g.title {
		g.title = title
		ebiten.SetWindowTitle(title)
	}
	return nil
}

func strokeSegment(dst *ebiten.Image, s labyrinth.Segment, width float32, clr color.Color) {
	vector.StrokeLine(dst, float32(s.P1.X), float32(s.P1.Y), float32(s.P2.X), float32(s.P2.Y), width, clr, true)
}

func marker(dst *ebiten.Image, p *labyrinth.Point, clr color.Color) {
	if p != nil {
		vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), 4, clr, true)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	for _, s := range g.board.Graph() {
		strokeSegment(screen, s, 1, graphColor)
	}
	for _, wall := range g.board.Walls() {
		strokeSegment(screen, wall, 1, wallColor)
	}
	for _, route := range g.board.Routes() {
		for _, leg := range route {
			strokeSegment(screen, leg, 2, routeColor)
		}
	}
	for _, miss := range g.board.Misses() {
		strokeSegment(screen, miss, 1, missColor)
	}

	marker(screen, g.board.Origin(), originColor)
	marker(screen, g.board.Destination(), targetColor)
	if start := g.board.WallStart(); start != nil {
		strokeSegment(screen, labyrinth.Segment{P1: *start, P2: cursor()}, 1, wallColor)
	}

	if g.showHelp {
		ebitenutil.DebugPrint(screen, helpText)
	}
}

// Layout keeps one logical pixel per window pixel so wall coordinates are
// mouse coordinates.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
