package base

import (
	"fmt"
	"strings"
)

// board dimensions
const (
	Rows     int = 8
	Cols     int = 8
	NumTiles int = Rows * Cols

	DefaultTileSize float64 = 75
)

type PieceKind uint8

const (
	NoPiece PieceKind = iota
	WKing
	WQueen
	WRook
	WBishop
	WKnight
	WPawn
	BKing
	BQueen
	BRook
	BBishop
	BKnight
	BPawn
)

// AllPieceKinds lists the placeable kinds, white first, in palette order.
var AllPieceKinds = []PieceKind{
	WKing, WQueen, WRook, WBishop, WKnight, WPawn,
	BKing, BQueen, BRook, BBishop, BKnight, BPawn,
}

type Color uint8

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	default:
		return "none"
	}
}

type Role uint8

const (
	NoRole Role = iota
	King
	Queen
	Rook
	Bishop
	Knight
	Pawn
)

func (r Role) String() string {
	switch r {
	case King:
		return "king"
	case Queen:
		return "queen"
	case Rook:
		return "rook"
	case Bishop:
		return "bishop"
	case Knight:
		return "knight"
	case Pawn:
		return "pawn"
	default:
		return "none"
	}
}

func (p PieceKind) IsValid() bool {
	return p >= WKing && p <= BPawn
}

func (p PieceKind) Color() Color {
	switch {
	case p >= WKing && p <= WPawn:
		return White
	case p >= BKing && p <= BPawn:
		return Black
	default:
		return NoColor
	}
}

func (p PieceKind) Role() Role {
	switch p {
	case WKing, BKing:
		return King
	case WQueen, BQueen:
		return Queen
	case WRook, BRook:
		return Rook
	case WBishop, BBishop:
		return Bishop
	case WKnight, BKnight:
		return Knight
	case WPawn, BPawn:
		return Pawn
	default:
		return NoRole
	}
}

// String returns the sprite name of the kind, e.g. "w_king".
func (p PieceKind) String() string {
	var prefix string
	switch p.Color() {
	case White:
		prefix = "w_"
	case Black:
		prefix = "b_"
	default:
		return "none"
	}
	return prefix + p.Role().String()
}

// ParsePieceKind accepts the sprite names produced by PieceKind.String,
// ignoring case and surrounding blanks.
func ParsePieceKind(name string) (PieceKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range AllPieceKinds {
		if k.String() == name {
			return k, nil
		}
	}
	return NoPiece, fmt.Errorf("unknown piece kind %q", name)
}

func SwapColorPiece(p PieceKind) PieceKind {
	switch p.Color() {
	case White:
		return p + (BKing - WKing)
	case Black:
		return p - (BKing - WKing)
	default:
		return NoPiece
	}
}

// PieceSize is the sprite edge of a kind drawn on a tile of the given edge.
// Pawns and rooks are drawn smaller than the other kinds.
func PieceSize(p PieceKind, tileSize float64) float64 {
	var s float64
	switch p.Role() {
	case Pawn, Rook:
		s = tileSize - 20
	default:
		s = tileSize - 10
	}
	if s < tileSize/2 {
		s = tileSize / 2
	}
	return s
}

type TileShade uint8

const (
	Light TileShade = iota
	Dark
)

func (s TileShade) String() string {
	switch s {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return "none"
	}
}

func ShadeAt(row, col int) TileShade {
	if (row+col)%2 == 0 {
		return Light
	}
	return Dark
}

func ConvIndexToRowCol(i int) (row, col int) {
	return i / Cols, i % Cols
}

func ConvRowColToIndex(row, col int) int {
	return row*Cols + col
}

func IsValidIndex(i int) bool {
	return i >= 0 && i < NumTiles
}

// StartPosition maps tile index to kind; row 0 is rank 8 (black side).
var StartPosition = map[int]PieceKind{
	0: BRook, 1: BKnight, 2: BBishop, 3: BQueen, 4: BKing, 5: BBishop, 6: BKnight, 7: BRook,
	8: BPawn, 9: BPawn, 10: BPawn, 11: BPawn, 12: BPawn, 13: BPawn, 14: BPawn, 15: BPawn,
	48: WPawn, 49: WPawn, 50: WPawn, 51: WPawn, 52: WPawn, 53: WPawn, 54: WPawn, 55: WPawn,
	56: WRook, 57: WKnight, 58: WBishop, 59: WQueen, 60: WKing, 61: WBishop, 62: WKnight, 63: WRook,
}

// AlgebraicFromIndex names a tile the way the board labels it: row 0 is rank 8.
func AlgebraicFromIndex(index int) (string, error) {
	if !IsValidIndex(index) {
		return "", fmt.Errorf("invalid tile index %d", index)
	}
	row, col := ConvIndexToRowCol(index)
	return string([]rune{rune(col + 'a'), rune(Rows - row + '0')}), nil
}

func IndexFromAlgebraic(pos string) (int, error) {
	if len(pos) != 2 || pos[0] < 'a' || pos[0] > 'h' || pos[1] < '1' || pos[1] > '8' {
		return -1, fmt.Errorf("invalid position %q", pos)
	}
	return ConvRowColToIndex(Rows-int(pos[1]-'0'), int(pos[0]-'a')), nil
}

func ConvertRuneFromPiece(p PieceKind) rune {
	switch p {
	case WPawn:
		return 'P'
	case WKnight:
		return 'N'
	case WBishop:
		return 'B'
	case WRook:
		return 'R'
	case WQueen:
		return 'Q'
	case WKing:
		return 'K'
	case BPawn:
		return 'p'
	case BKnight:
		return 'n'
	case BBishop:
		return 'b'
	case BRook:
		return 'r'
	case BQueen:
		return 'q'
	case BKing:
		return 'k'
	default:
		return '.'
	}
}

func ConvertPieceFromRune(r rune) PieceKind {
	switch r {
	case 'P':
		return WPawn
	case 'R':
		return WRook
	case 'N':
		return WKnight
	case 'B':
		return WBishop
	case 'Q':
		return WQueen
	case 'K':
		return WKing
	case 'p':
		return BPawn
	case 'r':
		return BRook
	case 'n':
		return BKnight
	case 'b':
		return BBishop
	case 'q':
		return BQueen
	case 'k':
		return BKing
	default:
		return NoPiece
	}
}
