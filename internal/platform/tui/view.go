package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-timber/internal/core"
	"github.com/vovakirdan/tui-timber/internal/games/timber"
)

// Playfield geometry in cells.
const (
	MinViewW = 40
	MinViewH = 22

	hudRows    = 3 // score, life bar, gap
	trunkWidth = 6
	branchLen  = 8
	lifeBarW   = 30
	buttonW    = 14
	buttonH    = 3
	panelW     = 30
	panelH     = 11
	jackGap    = 2 // columns between the lumberjack and the trunk
	jackWidth  = 3
	jackHeight = 3
	deathFlash = 0.5 // fraction of the death animation spent flashing
	chopReach  = 0.5 // fraction of the chop animation with the axe in the trunk
)

// defaultSide is where the lumberjack stands before the first chop.
const defaultSide = timber.SideLeft

// DrawOptions carries the presentation state that is not part of the session.
type DrawOptions struct {
	Anim     AnimationKind
	Progress float64 // animation progress in [0, 1]
	Debug    bool
	FPS      float64
	Delta    float64 // last frame delta in seconds
}

// layout is the placement of the playfield on a screen of a given size.
type layout struct {
	w, h    int
	trunkX  int // leftmost trunk column
	groundY int // ground row; the trunk stands on it
	segH    int // rows per trunk segment
}

func layoutFor(w, h int) layout {
	groundY := h - 1
	return layout{
		w:       w,
		h:       h,
		trunkX:  (w - trunkWidth) / 2,
		groundY: groundY,
		segH:    max((groundY-hudRows)/timber.TrunkHeight, 1),
	}
}

// ButtonRect returns the play/replay button area on a w×h screen.
// Clicks inside it dismiss the menu or replay after a game over.
func ButtonRect(w, h int) core.Rect {
	return core.NewRect((w-buttonW)/2, h/2+1, buttonW, buttonH)
}

func panelRect(w, h int) core.Rect {
	return core.NewRect((w-panelW)/2, h/2-6, panelW, panelH)
}

// TooSmall reports whether a w×h screen cannot hold the playfield.
func TooSmall(w, h int) bool {
	return w < MinViewW || h < MinViewH
}

// Draw renders a session snapshot into dst.
func Draw(dst *core.Screen, snap timber.Snapshot, opts DrawOptions) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()
	if TooSmall(w, h) {
		drawTooSmall(dst)
		return
	}

	l := layoutFor(w, h)
	drawGround(dst, l)
	for i, kind := range snap.Trunk {
		drawSegment(dst, l, i, kind)
	}
	drawJack(dst, l, snap, opts)

	switch snap.State {
	case timber.StateMenu:
		drawMenu(dst, snap)
	case timber.StatePlaying:
		drawHUD(dst, snap)
	case timber.StateGameOver:
		drawHUD(dst, snap)
		drawGameOver(dst, snap)
	}

	if opts.Debug {
		drawDebug(dst, snap, opts)
	}
}

func drawTooSmall(dst *core.Screen) {
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Terminal too small", core.ColorDanger)
	dst.DrawTextCentered(y+1, fmt.Sprintf("need %dx%d", MinViewW, MinViewH+1), core.ColorDim)
}

func drawGround(dst *core.Screen, l layout) {
	dst.DrawHLine(0, l.groundY, l.w, '▀', core.ColorStump)
	dst.DrawHLine(l.trunkX-1, l.groundY, trunkWidth+2, '▆', core.ColorStump)
}

// drawSegment draws trunk slot i, counted upwards from the chop point.
func drawSegment(dst *core.Screen, l layout, i int, kind timber.HazardKind) {
	bottom := l.groundY - 1 - i*l.segH
	top := bottom - l.segH + 1

	fill, color := '█', core.ColorBark
	if kind == timber.PlainB {
		fill, color = '▓', core.ColorBarkDark
	}
	dst.DrawRect(core.NewRect(l.trunkX, top, trunkWidth, l.segH), fill, color)

	mid := top + l.segH/2
	switch kind {
	case timber.BranchLeft:
		x := l.trunkX - branchLen
		dst.DrawHLine(x, mid, branchLen, '═', core.ColorBark)
		dst.DrawTextColored(x-1, mid-1, "♣♣♣", core.ColorLeaf)
		dst.SetColored(x-1, mid, '♣', core.ColorLeaf)
	case timber.BranchRight:
		x := l.trunkX + trunkWidth
		dst.DrawHLine(x, mid, branchLen, '═', core.ColorBark)
		dst.DrawTextColored(x+branchLen-2, mid-1, "♣♣♣", core.ColorLeaf)
		dst.SetColored(x+branchLen, mid, '♣', core.ColorLeaf)
	}
}

// jackX returns the leftmost column of the lumberjack standing on side.
func jackX(l layout, side timber.Side) int {
	if side == timber.SideRight {
		return l.trunkX + trunkWidth + jackGap
	}
	return l.trunkX - jackGap - jackWidth
}

func drawJack(dst *core.Screen, l layout, snap timber.Snapshot, opts DrawOptions) {
	side := snap.Direction
	if side == timber.SideUnset {
		side = defaultSide
	}
	x := jackX(l, side)
	y := l.groundY - jackHeight

	if opts.Anim == AnimDead {
		if opts.Progress < deathFlash {
			dst.DrawTextColored(x, y, " x ", core.ColorDanger)
			dst.DrawTextColored(x, y+1, "/|\\", core.ColorDanger)
			dst.DrawTextColored(x, y+2, "/ \\", core.ColorDanger)
			return
		}
		dst.DrawTextColored(x, y, "┌┴┐", core.ColorDim)
		dst.DrawTextColored(x, y+1, "RIP", core.ColorDanger)
		dst.DrawTextColored(x, y+2, "└─┘", core.ColorDim)
		return
	}

	dst.DrawTextColored(x, y, " o ", core.ColorJack)
	dst.DrawTextColored(x, y+1, "/|\\", core.ColorJack)
	dst.DrawTextColored(x, y+2, "/ \\", core.ColorJack)

	// Axe: raised while idle, in the trunk for the first part of a chop.
	toward, away := x+jackWidth, x-1
	if side == timber.SideRight {
		toward, away = x-1, x+jackWidth
	}
	if opts.Anim == AnimChop && opts.Progress < chopReach {
		dst.SetColored(toward, y+1, '═', core.ColorAxe)
		return
	}
	dst.SetColored(away, y, '¬', core.ColorAxe)
}

func drawHUD(dst *core.Screen, snap timber.Snapshot) {
	dst.DrawTextCentered(0, fmt.Sprintf("SCORE %d", snap.Score), core.ColorTitle)

	filled := int(math.Round(snap.LifeFraction * lifeBarW))
	filled = core.Clamp(filled, 0, lifeBarW)
	x := (dst.Width() - lifeBarW - 2) / 2
	dst.SetColored(x, 1, '[', core.ColorDim)
	dst.DrawTextColored(x+1, 1, strings.Repeat("█", filled), lifeColor(snap.LifeFraction))
	dst.DrawTextColored(x+1+filled, 1, strings.Repeat("░", lifeBarW-filled), core.ColorDim)
	dst.SetColored(x+1+lifeBarW, 1, ']', core.ColorDim)
}

func lifeColor(fraction float64) core.Color {
	switch {
	case fraction > 0.5:
		return core.ColorLifeHigh
	case fraction < 0.25:
		return core.ColorLifeLow
	default:
		return core.ColorLifeMid
	}
}

func drawPanel(dst *core.Screen) core.Rect {
	r := panelRect(dst.Width(), dst.Height())
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorTitle)
	return r
}

func drawButton(dst *core.Screen, label string) {
	r := ButtonRect(dst.Width(), dst.Height())
	dst.DrawBox(r, core.ColorLeaf)
	x := r.X + (r.W-len([]rune(label)))/2
	dst.DrawTextColored(x, r.Y+1, label, core.ColorTitle)
}

func drawMenu(dst *core.Screen, snap timber.Snapshot) {
	p := drawPanel(dst)
	dst.DrawTextCentered(p.Y+1, "T I M B E R", core.ColorTitle)
	dst.DrawTextCentered(p.Y+3, "chop, dodge the branches", core.ColorDim)
	if snap.MaxScore > 0 {
		dst.DrawTextCentered(p.Y+4, fmt.Sprintf("best %d", snap.MaxScore), core.ColorDim)
	}
	dst.DrawTextCentered(p.Y+5, "press any key", core.ColorDim)
	drawButton(dst, "PLAY")
}

func drawGameOver(dst *core.Screen, snap timber.Snapshot) {
	p := drawPanel(dst)
	dst.DrawTextCentered(p.Y+1, "GAME OVER", core.ColorDanger)
	dst.DrawTextCentered(p.Y+3, fmt.Sprintf("score %d", snap.Score), core.ColorTitle)
	dst.DrawTextCentered(p.Y+4, fmt.Sprintf("best  %d", snap.MaxScore), core.ColorTitle)
	dst.DrawTextCentered(p.Y+5, "space to replay", core.ColorDim)
	drawButton(dst, "REPLAY")
}

func drawDebug(dst *core.Screen, snap timber.Snapshot, opts DrawOptions) {
	trunk := make([]string, len(snap.Trunk))
	for i, k := range snap.Trunk {
		trunk[i] = k.String()
	}
	lines := []string{
		fmt.Sprintf("state=%s phase=%s dir=%s", snap.State, snap.Phase, snap.Direction),
		fmt.Sprintf("life=%.2fs started=%t", snap.Remaining, snap.Started),
		fmt.Sprintf("anim=%s %.0f%%", opts.Anim, opts.Progress*100),
		fmt.Sprintf("fps=%.0f dt=%.4f", opts.FPS, opts.Delta),
		"trunk=" + strings.Join(trunk, ","),
	}
	for i, line := range lines {
		dst.DrawTextColored(0, hudRows+i, line, core.ColorDim)
	}
}
