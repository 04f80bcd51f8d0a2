package core

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	// IdentityToken is the readable token of the empty product.
	IdentityToken = "I"

	// MaxIndex is the largest mode index a product accepts. CurrentNumberModes of any
	// product therefore fits in an int32 and never overflows.
	MaxIndex = math.MaxInt32 - 1
)

// ValidIndex reports whether index is in [0, MaxIndex].
func ValidIndex(index int) bool { return index >= 0 && index <= MaxIndex }

// SplitToken splits a readable product token such as "0X1iY3Z" or "0CCA2A" into
// (index, tag) pairs. Indices must be strictly ascending and at most MaxIndex.
// "" and "I" yield no pairs.
// Tags are returned verbatim; mapping them to symbols is up to the product kind.
func SplitToken(token string) ([]IndexedSymbol, error) {
	if token == "" || token == IdentityToken {
		return nil, nil
	}
	var out []IndexedSymbol
	rest := token
	last := -1
	for rest != "" {
		d := strings.IndexFunc(rest, func(r rune) bool { return r < '0' || r > '9' })
		if d <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedToken, token)
		}
		index, err := strconv.Atoi(rest[:d])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrMalformedToken, token, err)
		}
		if !ValidIndex(index) {
			return nil, fmt.Errorf("%w: %q: index %d exceeds %d", ErrMalformedToken, token, index, MaxIndex)
		}
		rest = rest[d:]
		t := strings.IndexFunc(rest, func(r rune) bool { return r >= '0' && r <= '9' })
		if t < 0 {
			t = len(rest)
		}
		if index <= last {
			return nil, fmt.Errorf("%w: %q: index %d out of order", ErrMalformedToken, token, index)
		}
		out = append(out, IndexedSymbol{Index: index, Tag: rest[:t]})
		last = index
		rest = rest[t:]
	}

	return out, nil
}

// JoinToken is the inverse of SplitToken; no pairs yield IdentityToken.
func JoinToken(symbols []IndexedSymbol) string {
	if len(symbols) == 0 {
		return IdentityToken
	}
	var b strings.Builder
	for _, s := range symbols {
		b.WriteString(strconv.Itoa(s.Index))
		b.WriteString(s.Tag)
	}

	return b.String()
}
