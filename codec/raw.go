package codec

import (
	"errors"
	"strconv"
	"unicode/utf8"
)

var ErrInvalidUTF8 = errors.New("codec: invalid UTF-8")

// Bytes is an identity codec for []byte values.
type Bytes struct{}

func (Bytes) Encode(b []byte) ([]byte, error) { return b, nil }
func (Bytes) Decode(b []byte) ([]byte, error) { return b, nil }

// String reads and writes UTF-8 text. Decode rejects byte sequences that are not
// valid UTF-8 instead of silently replacing them.
type String struct{}

func (String) Encode(s string) ([]byte, error) { return []byte(s), nil }
func (String) Decode(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}

// Int reads and writes base-10 integers, the form Cache.Store uses for Go integers.
type Int struct{}

func (Int) Encode(n int64) ([]byte, error) { return strconv.AppendInt(nil, n, 10), nil }
func (Int) Decode(b []byte) (int64, error) { return strconv.ParseInt(string(b), 10, 64) }

// Float reads and writes decimal floating point numbers. Decode also accepts
// integers and exponent notation ("7", "1e3").
type Float struct{}

func (Float) Encode(f float64) ([]byte, error) { return strconv.AppendFloat(nil, f, 'f', -1, 64), nil }
func (Float) Decode(b []byte) (float64, error) { return strconv.ParseFloat(string(b), 64) }
