package codec

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type user struct {
	ID   string `json:"id" msgpack:"id" cbor:"id"`
	Name string `json:"name" msgpack:"name" cbor:"name"`
	Age  int    `json:"age" msgpack:"age" cbor:"age"`
}

func roundTrip[V comparable](t *testing.T, c Codec[V], v V) {
	t.Helper()
	b, err := c.Encode(v)
	if err != nil {
		t.Fatalf("%T Encode: %v", c, err)
	}
	got, err := c.Decode(b)
	if err != nil {
		t.Fatalf("%T Decode: %v", c, err)
	}
	if got != v {
		t.Fatalf("%T round trip: got %v want %v", c, got, v)
	}
}

func TestStructuredCodecs(t *testing.T) {
	u := user{ID: "1", Name: "Ada", Age: 36}
	roundTrip[user](t, JSON[user]{}, u)
	roundTrip[user](t, Msgpack[user]{}, u)
	roundTrip[user](t, MustCBOR[user](false), u)
	roundTrip[user](t, MustCBOR[user](true), u)
}

func TestCBORDeterministicIsStable(t *testing.T) {
	c := MustCBOR[map[string]int](true)
	m := map[string]int{"b": 2, "a": 1, "c": 3}
	first, err := c.Encode(m)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, _ := c.Encode(m)
		if !bytes.Equal(first, again) {
			t.Fatalf("deterministic encoding changed between calls")
		}
	}
}

func TestScalarCodecs(t *testing.T) {
	roundTrip[string](t, String{}, "héllo")
	roundTrip[int64](t, Int{}, math.MinInt64)
	roundTrip[int64](t, Int{}, 0)
	roundTrip[float64](t, Float{}, 3.14)
	roundTrip[float64](t, Float{}, -0.5)
}

func TestStringRejectsInvalidUTF8(t *testing.T) {
	if _, err := (String{}).Decode([]byte{0xff, 0xfe}); !errors.Is(err, ErrInvalidUTF8) {
		t.Fatalf("err=%v, want ErrInvalidUTF8", err)
	}
}

func TestIntDecodeErrors(t *testing.T) {
	for _, in := range []string{"", "abc", "1.5", "99999999999999999999"} {
		if _, err := (Int{}).Decode([]byte(in)); err == nil {
			t.Fatalf("Int.Decode(%q) should fail", in)
		}
	}
}

func TestFloatDecodeAcceptsIntegers(t *testing.T) {
	f, err := (Float{}).Decode([]byte("7"))
	if err != nil || f != 7 {
		t.Fatalf("Float.Decode(7) = %v, %v", f, err)
	}
}

func TestBytesIsIdentity(t *testing.T) {
	in := []byte{0, 1, 2}
	out, err := (Bytes{}).Decode(in)
	if err != nil || !bytes.Equal(in, out) {
		t.Fatalf("Bytes.Decode = %v, %v", out, err)
	}
}

func TestProtobuf(t *testing.T) {
	c := NewProtobuf(func() *wrapperspb.StringValue { return &wrapperspb.StringValue{} })
	b, err := c.Encode(wrapperspb.String("hello"))
	if err != nil {
		t.Fatal(err)
	}
	got, err := c.Decode(b)
	if err != nil {
		t.Fatal(err)
	}
	if !proto.Equal(got, wrapperspb.String("hello")) {
		t.Fatalf("protobuf round trip: got %v", got)
	}
}

func TestLimit(t *testing.T) {
	c := Limit[string]{Inner: String{}, MaxDecode: 4}
	if _, err := c.Decode([]byte(strings.Repeat("x", 5))); err == nil {
		t.Fatalf("expected oversize error")
	}
	if s, err := c.Decode([]byte("abcd")); err != nil || s != "abcd" {
		t.Fatalf("Decode at limit = %q, %v", s, err)
	}

	off := Limit[string]{Inner: String{}}
	if _, err := off.Decode([]byte(strings.Repeat("x", 1<<16))); err != nil {
		t.Fatalf("MaxDecode=0 should disable limit: %v", err)
	}
}
