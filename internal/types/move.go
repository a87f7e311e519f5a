//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package types

import (
	"fmt"
	"strings"
)

// Move is a compact encoding of a chess move plus an optional sort value
// used by the move generator/orderer. Layout, low bits first:
//
//	bits 0-6   from square (0-119, fits in 7 bits)
//	bits 7-13  to square
//	bits 14-16 move type
//	bits 17-18 promotion piece type, offset so Knight=0..Queen=3
//	bits 19-31 unused
//	bits 32-63 sort value, shifted so it can be negative
type Move uint64

// MoveNone is the zero value: an invalid move used as a sentinel.
const MoveNone Move = 0

const (
	fromShift     = 0
	toShift       = 7
	typeShift     = 14
	promTypeShift = 17
	valueShift    = 32

	squareBits Move = 0x7F // 7 bits, enough for 0..119
	typeBits   Move = 0x7 // 3 bits
	promBits   Move = 0x3 // 2 bits

	moveMask Move = (1 << valueShift) - 1
)

// CreateMove encodes a move without a sort value.
func CreateMove(from, to Square, mt MoveType, promType PieceType) Move {
	if promType < Knight {
		promType = Knight
	}
	return Move(from)<<fromShift |
		Move(to)<<toShift |
		Move(mt)<<typeShift |
		Move(promType-Knight)<<promTypeShift
}

// CreateMoveValue encodes a move together with a sort value used for
// move-ordering; the value occupies the high 32 bits.
func CreateMoveValue(from, to Square, mt MoveType, promType PieceType, value int32) Move {
	base := CreateMove(from, to, mt, promType)
	return base | (Move(uint32(value)) << valueShift)
}

// From returns the origin square.
func (m Move) From() Square {
	return Square((m >> fromShift) & squareBits)
}

// To returns the destination square.
func (m Move) To() Square {
	return Square((m >> toShift) & squareBits)
}

// MoveType returns the move's discriminator.
func (m Move) MoveType() MoveType {
	return MoveType((m >> typeShift) & typeBits)
}

// PromotionType returns the promotion piece type; only meaningful when
// MoveType() == Promotion.
func (m Move) PromotionType() PieceType {
	return PieceType((m>>promTypeShift)&promBits) + Knight
}

// MoveOf strips the sort value, leaving only the move identity bits.
func (m Move) MoveOf() Move {
	return m & moveMask
}

// Value returns the encoded sort value.
func (m Move) Value() int32 {
	return int32(uint32(m >> valueShift))
}

// SetValue returns m with its sort value replaced by v.
func (m Move) SetValue(v int32) Move {
	if m == MoveNone {
		return m
	}
	return m.MoveOf() | (Move(uint32(v)) << valueShift)
}

// IsValid reports whether m has well-formed squares, move type and
// (when applicable) promotion type. MoveNone is never valid.
func (m Move) IsValid() bool {
	return m != MoveNone &&
		m.From().IsValid() &&
		m.To().IsValid() &&
		m.MoveType().IsValid() &&
		m.PromotionType().IsValid()
}

// StringUci renders the move in long-algebraic UCI form:
// "<from><to>" with a trailing lowercase promotion letter when relevant,
// or "0000" for the null move.
func (m Move) StringUci() string {
	if m == MoveNone {
		return "0000"
	}
	var b strings.Builder
	b.WriteString(m.From().String())
	b.WriteString(m.To().String())
	if m.MoveType() == Promotion {
		b.WriteString(strings.ToLower(m.PromotionType().Char()))
	}
	return b.String()
}

// String returns a debug representation including move type and value.
func (m Move) String() string {
	if m == MoveNone {
		return "Move{none}"
	}
	return fmt.Sprintf("Move{%s type=%s value=%d}", m.StringUci(), m.MoveType(), m.Value())
}
