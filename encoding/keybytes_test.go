package encoding

import (
	"bytes"
	"errors"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/sharedcode/dstruct"
)

type point struct {
	X, Y int
	Tag  string
}

type withPointer struct {
	P *int
}

func TestUUIDMarshalling(t *testing.T) {
	id := dstruct.NewUUID()
	ba, err := KeyBytes(id)
	if err != nil {
		t.Fatal(err)
	}
	id2, _ := uuid.FromBytes(ba)
	if id != dstruct.UUID(id2) {
		t.Fail()
	}
}

func TestSupports(t *testing.T) {
	tests := []struct {
		typ  reflect.Type
		want bool
	}{
		{reflect.TypeFor[int](), true},
		{reflect.TypeFor[string](), true},
		{reflect.TypeFor[complex128](), true},
		{reflect.TypeFor[[4]uint16](), true},
		{reflect.TypeFor[point](), true},
		{reflect.TypeFor[time.Time](), true},
		{reflect.TypeFor[dstruct.UUID](), true},
		{reflect.TypeFor[*int](), false},
		{reflect.TypeFor[any](), false},
		{reflect.TypeFor[chan int](), false},
		{reflect.TypeFor[withPointer](), false},
	}
	for _, tt := range tests {
		if got := Supports(tt.typ); got != tt.want {
			t.Errorf("Supports(%v) = %v, expected %v", tt.typ, got, tt.want)
		}
	}
}

func TestEqualKeysHaveEqualBytes(t *testing.T) {
	pairs := [][2]any{
		{point{1, 2, "a"}, point{1, 2, "a"}},
		{0.0, math.Copysign(0, -1)},
		{[2]string{"ab", "c"}, [2]string{"ab", "c"}},
		{time.Unix(100, 5), time.Unix(100, 5)},
	}
	for _, p := range pairs {
		a, err := KeyBytes(p[0])
		if err != nil {
			t.Fatal(err)
		}
		b, err := KeyBytes(p[1])
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(a, b) {
			t.Errorf("%v and %v produced different bytes", p[0], p[1])
		}
	}
}

func TestCompositeKeysCaptureStructure(t *testing.T) {
	a, _ := KeyBytes([2]string{"ab", "c"})
	b, _ := KeyBytes([2]string{"a", "bc"})
	if bytes.Equal(a, b) {
		t.Error("string boundaries are not part of the canonical bytes")
	}
	c, _ := KeyBytes(point{1, 2, ""})
	d, _ := KeyBytes(point{2, 1, ""})
	if bytes.Equal(c, d) {
		t.Error("field order is not part of the canonical bytes")
	}
}

func TestUnsupportedKey(t *testing.T) {
	x := 1
	_, err := KeyBytes(withPointer{P: &x})
	if !errors.Is(err, dstruct.ErrUnhashableKey) {
		t.Errorf("expected ErrUnhashableKey, got %v", err)
	}
	if _, err := KeyBytes(nil); !errors.Is(err, dstruct.ErrUnhashableKey) {
		t.Errorf("expected ErrUnhashableKey for nil, got %v", err)
	}
}

func TestMarshalPassThrough(t *testing.T) {
	raw := []byte("raw")
	b, err := Marshal(DefaultMarshaler, raw)
	if err != nil || !bytes.Equal(b, raw) {
		t.Errorf("expected pass-through, got %q (%v)", b, err)
	}
	b, err = Marshal(DefaultMarshaler, point{1, 2, "p"})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"X":1,"Y":2,"Tag":"p"}` {
		t.Errorf("unexpected JSON %s", b)
	}
	var p point
	if err := DefaultMarshaler.Unmarshal(b, &p); err != nil || p != (point{1, 2, "p"}) {
		t.Errorf("unexpected round trip %v (%v)", p, err)
	}
}
