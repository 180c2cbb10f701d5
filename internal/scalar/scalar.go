// Package scalar converts the value kinds accepted by Cache.Store into the bytes
// written to the store, and renders values for call history entries.
//
// The byte rules match how go-redis encodes command arguments, so a value written
// through the cache reads back the same as if it had been passed to SET directly.
package scalar

import (
	"encoding"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrUnsupported = errors.New("kvcache: unsupported value type")

// Encode returns the stored representation of v.
//   - string, []byte: as-is
//   - integers: base 10
//   - floats: 'f' format, shortest precision that reads back exactly as a float64;
//     float32 is widened first, so float32(0.1) is written as 0.10000000149011612
//   - bool: "1" / "0"
//   - encoding.BinaryMarshaler: MarshalBinary
func Encode(v any) ([]byte, error) {
	switch x := v.(type) {
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	case int:
		return strconv.AppendInt(nil, int64(x), 10), nil
	case int8:
		return strconv.AppendInt(nil, int64(x), 10), nil
	case int16:
		return strconv.AppendInt(nil, int64(x), 10), nil
	case int32:
		return strconv.AppendInt(nil, int64(x), 10), nil
	case int64:
		return strconv.AppendInt(nil, x, 10), nil
	case uint:
		return strconv.AppendUint(nil, uint64(x), 10), nil
	case uint8:
		return strconv.AppendUint(nil, uint64(x), 10), nil
	case uint16:
		return strconv.AppendUint(nil, uint64(x), 10), nil
	case uint32:
		return strconv.AppendUint(nil, uint64(x), 10), nil
	case uint64:
		return strconv.AppendUint(nil, x, 10), nil
	case float32:
		return strconv.AppendFloat(nil, float64(x), 'f', -1, 64), nil
	case float64:
		return strconv.AppendFloat(nil, x, 'f', -1, 64), nil
	case bool:
		if x {
			return []byte("1"), nil
		}
		return []byte("0"), nil
	case encoding.BinaryMarshaler:
		return x.MarshalBinary()
	case nil:
		return nil, fmt.Errorf("%w: <nil>", ErrUnsupported)
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupported, v)
	}
}

// Format renders a single value for a history entry.
// Strings are written verbatim; everything else uses its stored form when it has one.
func Format(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case []byte:
		return string(x)
	case error:
		return x.Error()
	}
	if b, err := Encode(v); err == nil {
		return string(b)
	}
	return fmt.Sprint(v)
}

// FormatArgs renders an argument list as a parenthesized, comma separated tuple.
// Strings are quoted so ("1") and (1) stay distinguishable.
func FormatArgs(args ...any) string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		switch x := a.(type) {
		case string:
			sb.WriteString(strconv.Quote(x))
		case []byte:
			sb.WriteString("[]byte(")
			sb.WriteString(strconv.Quote(string(x)))
			sb.WriteByte(')')
		case nil:
			sb.WriteString("nil")
		default:
			if b, err := Encode(x); err == nil {
				sb.Write(b)
			} else {
				fmt.Fprintf(&sb, "%v", x)
			}
		}
	}
	sb.WriteByte(')')
	return sb.String()
}
