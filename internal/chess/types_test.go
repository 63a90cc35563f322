package chess

import (
	"testing"

	"github.com/lgbarn/boardgame-go/internal/game"
	"github.com/lgbarn/boardgame-go/internal/geom"
)

func TestPieceZeroValueIsEmpty(t *testing.T) {
	var p Piece
	if !p.Empty() {
		t.Error("Piece{}.Empty() = false, want true")
	}
	if p.BelongsTo(game.White) {
		t.Error("Piece{}.BelongsTo(White) = true, want false")
	}
	if got := p.Letter(); got != '.' {
		t.Errorf("Piece{}.Letter() = %q, want '.'", got)
	}
}

func TestPieceLetters(t *testing.T) {
	tests := []struct {
		piece Piece
		want  byte
	}{
		{W(Pawn), 'P'},
		{W(Knight), 'N'},
		{B(Bishop), 'b'},
		{B(Rook), 'r'},
		{W(Queen), 'Q'},
		{B(King), 'k'},
	}

	for _, tt := range tests {
		t.Run(tt.piece.String(), func(t *testing.T) {
			if got := tt.piece.Letter(); got != tt.want {
				t.Errorf("Letter() = %q, want %q", got, tt.want)
			}
			kind, ok := KindFromLetter(tt.want)
			if !ok || kind != tt.piece.Kind {
				t.Errorf("KindFromLetter(%q) = %v, %v; want %v", tt.want, kind, ok, tt.piece.Kind)
			}
		})
	}
}

func TestPieceMovedIsCopy(t *testing.T) {
	p := W(King)
	q := p.Moved()
	if p.HasMoved {
		t.Error("Moved() modified the receiver")
	}
	if !q.HasMoved || q.Kind != King || !q.BelongsTo(game.White) {
		t.Errorf("Moved() = %+v", q)
	}
}

func TestKindString(t *testing.T) {
	if got := Kind(42).String(); got != "Unknown" {
		t.Errorf("Kind(42).String() = %q", got)
	}
	if got := B(Queen).String(); got != "black queen" {
		t.Errorf("B(Queen).String() = %q", got)
	}
	if _, ok := KindFromLetter('x'); ok {
		t.Error("KindFromLetter('x') ok = true")
	}
}

func TestMove(t *testing.T) {
	m := NewMove(geom.Pt(4, 1), geom.Pt(4, 3))
	if m.String() != "e2e4" {
		t.Errorf("String() = %q, want e2e4", m.String())
	}
	if m.IsCastle() {
		t.Error("NewMove().IsCastle() = true")
	}

	c := NewCastle(geom.Pt(4, 0), geom.Pt(6, 0))
	if !c.IsCastle() || c.Kind.String() != "Castling" {
		t.Errorf("NewCastle() = %+v", c)
	}
	if c == NewMove(geom.Pt(4, 0), geom.Pt(6, 0)) {
		t.Error("castle equals plain move with same squares")
	}
	if Promotion.String() != "Promotion" {
		t.Errorf("Promotion.String() = %q", Promotion.String())
	}
}
