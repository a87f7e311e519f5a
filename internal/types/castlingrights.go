//
// FrankyGo - UCI chess engine in GO for learning purposes
//
// MIT License
//
// Copyright (c) 2018-2020 Frank Kopp
//

package types

import "strings"

// CastlingRights encodes the four castling availability bits.
//  CastlingNone     CastlingRights = 0    // 0000
//  CastlingWhiteOO  CastlingRights = 1    // 0001
//  CastlingWhiteOOO                = 2    // 0010
//  CastlingBlackOO                 = 4    // 0100
//  CastlingBlackOOO                = 8    // 1000
type CastlingRights uint8

const (
	CastlingNone    CastlingRights = 0
	CastlingWhiteOO CastlingRights = 1
	CastlingWhiteOOO               = CastlingWhiteOO << 1
	CastlingWhite                  = CastlingWhiteOO | CastlingWhiteOOO
	CastlingBlackOO                = CastlingWhiteOO << 2
	CastlingBlackOOO                = CastlingBlackOO << 1
	CastlingBlack                   = CastlingBlackOO | CastlingBlackOOO
	CastlingAny                     = CastlingWhite | CastlingBlack
)

// Has reports whether all bits of rhs are set in cr.
func (cr CastlingRights) Has(rhs CastlingRights) bool {
	return cr&rhs == rhs
}

// Remove clears the given right(s) from cr.
func (cr *CastlingRights) Remove(rhs CastlingRights) {
	*cr &^= rhs
}

// Add sets the given right(s) on cr.
func (cr *CastlingRights) Add(rhs CastlingRights) {
	*cr |= rhs
}

// String renders cr in FEN castling-availability form, e.g. "KQkq" or "-".
func (cr CastlingRights) String() string {
	if cr == CastlingNone {
		return "-"
	}
	var b strings.Builder
	if cr.Has(CastlingWhiteOO) {
		b.WriteString("K")
	}
	if cr.Has(CastlingWhiteOOO) {
		b.WriteString("Q")
	}
	if cr.Has(CastlingBlackOO) {
		b.WriteString("k")
	}
	if cr.Has(CastlingBlackOOO) {
		b.WriteString("q")
	}
	return b.String()
}
