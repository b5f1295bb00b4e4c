package format_v6

import (
	"fmt"
	"unicode/utf8"

	saveerrors "github.com/danielrab/save-monger/pkg/save/errors"
)

// Decoder reads one value of T from the cursor, advancing it.
type Decoder[T any] func(c *Cursor) (T, error)

// Pair holds two values decoded back to back.
type Pair[A, B any] struct {
	First  A
	Second B
}

// PairOf combines two decoders into one that reads first then second.
func PairOf[A, B any](first Decoder[A], second Decoder[B]) Decoder[Pair[A, B]] {
	return func(c *Cursor) (Pair[A, B], error) {
		a, err := first(c)
		if err != nil {
			return Pair[A, B]{}, err
		}
		b, err := second(c)
		if err != nil {
			return Pair[A, B]{}, err
		}
		return Pair[A, B]{First: a, Second: b}, nil
	}
}

// ReadShortSeq reads a u16 element count followed by that many elements.
func ReadShortSeq[T any](c *Cursor, elem Decoder[T]) ([]T, error) {
	n, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	return readCounted(c, uint64(n), elem)
}

// ReadLongSeq reads a u64 element count followed by that many elements.
func ReadLongSeq[T any](c *Cursor, elem Decoder[T]) ([]T, error) {
	n, err := c.ReadU64()
	if err != nil {
		return nil, err
	}
	return readCounted(c, n, elem)
}

// maxPrealloc caps the capacity reserved from an untrusted count.
const maxPrealloc = 1024

func readCounted[T any](c *Cursor, n uint64, elem Decoder[T]) ([]T, error) {
	// Every element occupies at least one byte, so a count larger than
	// what is left can only be corrupt. Past maxPrealloc the slice grows
	// by append as elements actually decode.
	hint := n
	if rem := uint64(c.Remaining()); hint > rem {
		hint = rem
	}
	if hint > maxPrealloc {
		hint = maxPrealloc
	}
	out := make([]T, 0, hint)
	for i := uint64(0); i < n; i++ {
		v, err := elem(c)
		if err != nil {
			return nil, fmt.Errorf("item %d of %d: %w", i, n, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// ReadShortBytes reads a u16-prefixed byte sequence into a fresh slice.
func ReadShortBytes(c *Cursor) ([]byte, error) {
	n, err := c.ReadU16()
	if err != nil {
		return nil, err
	}
	b, err := c.Read(int(n))
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out, nil
}

// ReadString reads a u16-prefixed UTF-8 string.
func ReadString(c *Cursor) (string, error) {
	start := c.Offset()
	n, err := c.ReadU16()
	if err != nil {
		return "", err
	}
	b, err := c.Read(int(n))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: %d-byte string at offset %d", saveerrors.ErrInvalidUTF8, n, start)
	}
	return string(b), nil
}

// Decoders for primitives, usable as sequence elements.
var (
	decodeU64    Decoder[uint64] = (*Cursor).ReadU64
	decodeString Decoder[string] = ReadString
)
