package nalenc

import (
	"testing"

	"github.com/go-quicktest/qt"
)

func TestCoerceAcceptedShapes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   any
		want []byte
	}{
		{"string", "hello", []byte("hello")},
		{"text-input", TextInput("hello"), []byte("hello")},
		{"bytes", []byte{1, 2, 3}, []byte{1, 2, 3}},
		{"bytes-input", BytesInput{1, 2, 3}, []byte{1, 2, 3}},
		{"ints", []int{0, 127, 255}, []byte{0, 127, 255}},
		{"ints-input", IntsInput{65, 66, 67}, []byte("ABC")},
		{"uint16s", []uint16{10, 20, 30}, []byte{10, 20, 30}},
		{"empty string", "", []byte{}},
		{"empty ints", []int{}, []byte{}},
		{"reflected int32 array", [3]int32{1, 2, 3}, []byte{1, 2, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := coerce(tc.in)
			qt.Assert(t, qt.IsNil(err))
			qt.Assert(t, qt.DeepEquals(got, tc.want))
		})
	}
}

func TestCoerceRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   any
	}{
		{"int out of range", []int{0, 256}},
		{"negative int", []int{-1}},
		{"non-integer element", []float64{1.5}},
		{"unsupported type", 42},
		{"nil", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := coerce(tc.in)
			qt.Assert(t, qt.ErrorIs(err, ErrInvalidInput))
		})
	}
}

func TestCoerceKeyLength(t *testing.T) {
	t.Parallel()

	_, err := coerceKey(make([]byte, 511))
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidKeyLength))

	_, err = coerceKey(make([]byte, 513))
	qt.Assert(t, qt.ErrorIs(err, ErrInvalidKeyLength))

	k, err := coerceKey(make([]byte, 512))
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.Equals(len(k), keySize))
}
