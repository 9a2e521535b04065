package gf2

import (
	"errors"
	"strconv"
	"testing"
)

func TestIdentity(t *testing.T) {
	tests := []struct {
		n           int
		expectedErr error
	}{
		{1, nil},
		{5, nil},
		{12, nil},
		{0, ErrInvalidDimension},
		{-3, ErrInvalidDimension},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := Identity(test.n)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected %v but found %v", test.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error found :%v", err)
			}

			ones := 0
			for r := 0; r < test.n; r++ {
				for c := 0; c < test.n; c++ {
					v := actual.At(r, c)
					if v == 1 {
						ones++
					}
					expected := 0
					if r == c {
						expected = 1
					}
					if v != expected {
						t.Fatalf("expected %v at (%v,%v) but found %v", expected, r, c, v)
					}
				}
			}
			if ones != test.n {
				t.Fatalf("expected %v ones but found %v", test.n, ones)
			}
		})
	}
}

func TestNewNonBinary(t *testing.T) {
	_, err := New(2, 2, 1, 0, 2, 1)
	if !errors.Is(err, ErrNonBinaryEntry) {
		t.Fatalf("expected %v but found %v", ErrNonBinaryEntry, err)
	}
}

func TestTransposeInvolution(t *testing.T) {
	tests := []struct {
		rows, cols int
		values     []int
	}{
		{2, 3, []int{1, 0, 1, 0, 1, 1}},
		{3, 3, []int{1, 1, 0, 0, 1, 0, 1, 0, 1}},
		{1, 4, []int{1, 0, 0, 1}},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			m, err := New(test.rows, test.cols, test.values...)
			if err != nil {
				t.Fatalf("expected no error found :%v", err)
			}

			mt := m.T()
			tr, tc := mt.Dims()
			if tr != test.cols || tc != test.rows {
				t.Fatalf("expected %vx%v but found %vx%v", test.cols, test.rows, tr, tc)
			}
			for r := 0; r < test.rows; r++ {
				for c := 0; c < test.cols; c++ {
					if m.At(r, c) != mt.At(c, r) {
						t.Fatalf("expected (%v,%v) == transpose (%v,%v)", r, c, c, r)
					}
				}
			}

			if !m.Equals(mt.T()) {
				t.Fatalf("expected transpose involution to reproduce \n%v\n but found \n%v\n", m, mt.T())
			}
		})
	}
}

func TestHStack(t *testing.T) {
	a, _ := New(2, 2, 1, 0, 0, 1)
	b, _ := New(2, 1, 1, 1)
	c, _ := New(2, 3, 0, 1, 0, 1, 0, 1)

	actual, err := HStack(a, b)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	rows, cols := actual.Dims()
	if rows != 2 || cols != 3 {
		t.Fatalf("expected 2x3 but found %vx%v", rows, cols)
	}
	expected, _ := New(2, 3, 1, 0, 1, 0, 1, 1)
	if !actual.Equals(expected) {
		t.Fatalf("expected \n%v\n but found \n%v\n", expected, actual)
	}

	//associative in the concatenation sense
	ab, _ := HStack(a, b)
	abc1, _ := HStack(ab, c)
	bc, _ := HStack(b, c)
	abc2, _ := HStack(a, bc)
	if !abc1.Equals(abc2) {
		t.Fatalf("expected \n%v\n but found \n%v\n", abc1, abc2)
	}
}

func TestHStackDimensionMismatch(t *testing.T) {
	a, _ := New(2, 2)
	b, _ := New(3, 2)
	_, err := HStack(a, b)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected %v but found %v", ErrDimensionMismatch, err)
	}
}

func TestDot(t *testing.T) {
	tests := []struct {
		a, b     []int
		expected int
	}{
		{[]int{1, 1, 1}, []int{1, 1, 0}, 0},
		{[]int{1, 1, 1}, []int{1, 0, 0}, 1},
		{[]int{0, 0, 0}, []int{1, 1, 1}, 0},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			a, _ := New(1, len(test.a), test.a...)
			b, _ := New(1, len(test.b), test.b...)
			actual, err := Dot(a.Row(0), b.Row(0))
			if err != nil {
				t.Fatalf("expected no error found :%v", err)
			}
			if actual != test.expected {
				t.Fatalf("expected %v but found %v", test.expected, actual)
			}
		})
	}
}

func TestDotDimensionMismatch(t *testing.T) {
	a, _ := New(1, 3, 1, 0, 1)
	b, _ := New(1, 2, 1, 1)
	_, err := Dot(a.Row(0), b.Row(0))
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected %v but found %v", ErrDimensionMismatch, err)
	}
}

func TestMul(t *testing.T) {
	a, _ := New(2, 3, 1, 0, 1, 1, 1, 0)
	b, _ := New(3, 2, 1, 1, 0, 1, 1, 0)

	actual, err := Mul(a, b)
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	//entry (0,0) is 1*1+0*0+1*1 == 2 == 0 mod 2
	expected, _ := New(2, 2, 0, 1, 1, 0)
	if !actual.Equals(expected) {
		t.Fatalf("expected \n%v\n but found \n%v\n", expected, actual)
	}
}

func TestMulDimensionMismatch(t *testing.T) {
	a, _ := New(2, 3)
	b, _ := New(2, 3)
	_, err := Mul(a, b)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("expected %v but found %v", ErrDimensionMismatch, err)
	}
}

func TestFromBits(t *testing.T) {
	tests := []struct {
		rows, cols  int
		bits        []uint32
		expectedErr error
	}{
		{2, 3, []uint32{0b101, 0b011}, nil},
		{1, 11, []uint32{0b10001110101}, nil},
		{2, 3, []uint32{0b101}, ErrDimensionMismatch},
		{1, 3, []uint32{0b1101}, ErrNonBinaryEntry},
		{0, 3, []uint32{}, ErrInvalidDimension},
	}
	for i, test := range tests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			actual, err := FromBits(test.rows, test.cols, test.bits)
			if test.expectedErr != nil {
				if !errors.Is(err, test.expectedErr) {
					t.Fatalf("expected %v but found %v", test.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error found :%v", err)
			}
			if actual.Width() != test.cols {
				t.Fatalf("expected width %v but found %v", test.cols, actual.Width())
			}
			for r, expected := range test.bits {
				if actual.RowBits(r) != expected {
					t.Fatalf("expected 0b%0*b but found 0b%0*b", test.cols, expected, test.cols, actual.RowBits(r))
				}
			}
		})
	}
}

func TestBitsRoundTrip(t *testing.T) {
	m, err := FromBits(3, 5, []uint32{0b10110, 0b00001, 0b11111})
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	actual, err := FromBits(3, 5, m.Bits())
	if err != nil {
		t.Fatalf("expected no error found :%v", err)
	}
	if !m.Equals(actual) {
		t.Fatalf("expected \n%v\n but found \n%v\n", m, actual)
	}
}
