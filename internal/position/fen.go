package position

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hailam/chesscore/internal/bitboard"
)

// StartFEN is the FEN string for the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFenError reports a malformed FEN token or a position that fails
// the post-construction legality check.
type ParseFenError struct {
	msg string
}

func (e *ParseFenError) Error() string { return "position: invalid FEN: " + e.msg }

func fenErrorf(format string, args ...any) error {
	return &ParseFenError{msg: fmt.Sprintf(format, args...)}
}

// ParseFEN parses standard Forsyth-Edwards Notation into a Position,
// rejecting any FEN whose side not-to-move's king is left in check.
func ParseFEN(fen string) (Position, error) {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return Position{}, fenErrorf("need at least 4 whitespace-separated fields, got %d", len(fields))
	}

	var white, black PieceSet
	if err := parsePlacement(fields[0], &white, &black); err != nil {
		return Position{}, err
	}

	var sideToMove bitboard.Color
	switch fields[1] {
	case "w":
		sideToMove = bitboard.White
	case "b":
		sideToMove = bitboard.Black
	default:
		return Position{}, fenErrorf("invalid side to move %q", fields[1])
	}

	rights, err := parseCastlingRights(fields[2])
	if err != nil {
		return Position{}, err
	}

	var ep bb
	if fields[3] != "-" {
		s, err := bitboard.ParseSquare(fields[3])
		if err != nil {
			return Position{}, fenErrorf("invalid en-passant square %q", fields[3])
		}
		ep = bitboard.SquareBB(s)
	}

	halfmove := 0
	if len(fields) > 4 {
		n, err := strconv.Atoi(fields[4])
		if err != nil {
			return Position{}, fenErrorf("invalid halfmove clock %q", fields[4])
		}
		halfmove = n
	}

	fullmove := 1
	if len(fields) > 5 {
		n, err := strconv.Atoi(fields[5])
		if err != nil {
			return Position{}, fenErrorf("invalid fullmove number %q", fields[5])
		}
		fullmove = n
	}

	var p Position
	p.sideToMove = sideToMove
	p.castlingRights = rights
	p.enPassant = ep
	p.halfmoveClock = halfmove
	p.fullmoveClock = fullmove
	if sideToMove == bitboard.White {
		p.us, p.them = white, black
	} else {
		p.us, p.them = black, white
	}
	p.refreshDerived()
	p.key = p.computeKey()

	// Legality check: if the side to move is already attacking the
	// opponent's king, the side that just moved left their own king in
	// check, which is illegal.
	if p.AttackedByUs()&p.them.King != 0 {
		return Position{}, fenErrorf("illegal position: side not to move is in check")
	}

	return p, nil
}

func parsePlacement(placement string, white, black *PieceSet) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fenErrorf("piece placement needs 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		rank := 7 - i
		file := 0
		for _, c := range rankStr {
			if file > 7 {
				return fenErrorf("too many squares in rank %d", rank+1)
			}
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				continue
			}
			pt, color, ok := pieceFromChar(byte(c))
			if !ok {
				return fenErrorf("invalid piece character %q", c)
			}
			s := bitboard.NewSquare(file, rank)
			if color == bitboard.White {
				white.addPiece(pt, s)
			} else {
				black.addPiece(pt, s)
			}
			file++
		}
		if file != 8 {
			return fenErrorf("rank %d has %d squares, want 8", rank+1, file)
		}
	}
	return nil
}

func pieceFromChar(c byte) (pt PieceType, color bitboard.Color, ok bool) {
	color = bitboard.White
	lc := c
	if c >= 'a' && c <= 'z' {
		color = bitboard.Black
		lc = c - 'a' + 'A'
	}
	switch lc {
	case 'P':
		return Pawn, color, true
	case 'N':
		return Knight, color, true
	case 'B':
		return Bishop, color, true
	case 'R':
		return Rook, color, true
	case 'Q':
		return Queen, color, true
	case 'K':
		return King, color, true
	default:
		return All, color, false
	}
}

func pieceToChar(pt PieceType, color bitboard.Color) byte {
	var c byte
	switch pt {
	case Pawn:
		c = 'P'
	case Knight:
		c = 'N'
	case Bishop:
		c = 'B'
	case Rook:
		c = 'R'
	case Queen:
		c = 'Q'
	case King:
		c = 'K'
	}
	if color == bitboard.Black {
		c = c - 'A' + 'a'
	}
	return c
}

func parseCastlingRights(s string) (bb, error) {
	if s == "-" {
		return 0, nil
	}
	var rights bb
	for _, c := range s {
		switch c {
		case 'K':
			rights |= bitboard.SquareBB(bitboard.H1)
		case 'Q':
			rights |= bitboard.SquareBB(bitboard.A1)
		case 'k':
			rights |= bitboard.SquareBB(bitboard.H8)
		case 'q':
			rights |= bitboard.SquareBB(bitboard.A8)
		default:
			return 0, fenErrorf("invalid castling character %q", c)
		}
	}
	return rights, nil
}

func castlingRightsString(rights bb) string {
	if rights == 0 {
		return "-"
	}
	var sb strings.Builder
	if rights.IsSet(bitboard.H1) {
		sb.WriteByte('K')
	}
	if rights.IsSet(bitboard.A1) {
		sb.WriteByte('Q')
	}
	if rights.IsSet(bitboard.H8) {
		sb.WriteByte('k')
	}
	if rights.IsSet(bitboard.A8) {
		sb.WriteByte('q')
	}
	return sb.String()
}

// ToFEN renders the position as standard Forsyth-Edwards Notation.
func (p *Position) ToFEN() string {
	white, black := p.whiteBlack()
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			s := bitboard.NewSquare(file, rank)
			b := bitboard.SquareBB(s)
			var pt PieceType
			var color bitboard.Color
			found := true
			switch {
			case white.All&b != 0:
				pt, color = white.KindAt(s), bitboard.White
			case black.All&b != 0:
				pt, color = black.KindAt(s), bitboard.Black
			default:
				found = false
			}
			if !found {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteByte(pieceToChar(pt, color))
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.sideToMove == bitboard.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	sb.WriteString(castlingRightsString(p.castlingRights))

	sb.WriteByte(' ')
	if p.enPassant == 0 {
		sb.WriteByte('-')
	} else {
		sb.WriteString(p.enPassant.LSB().String())
	}

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.halfmoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(p.fullmoveClock))

	return sb.String()
}
