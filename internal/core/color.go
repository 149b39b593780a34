package core

// Color is a semantic foreground color for a screen cell.
// The terminal renderer maps each value to an ANSI 256-color style.
type Color uint8

const (
	ColorDefault  Color = iota
	ColorBark           // plain trunk segment
	ColorBarkDark       // alternate plain trunk segment
	ColorLeaf           // branch foliage
	ColorStump          // stump and ground
	ColorJack           // lumberjack body
	ColorAxe            // axe head
	ColorLifeHigh       // life bar above half
	ColorLifeLow        // life bar below a quarter
	ColorLifeMid        // life bar otherwise
	ColorTitle          // menu and game-over headings
	ColorDim            // hints and debug overlay
	ColorDanger         // death marker
)
