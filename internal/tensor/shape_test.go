package tensor

import "testing"

func TestShapeNumElements(t *testing.T) {
	tests := []struct {
		shape Shape
		want  int
	}{
		{Shape{}, 1},
		{Shape{5}, 5},
		{Shape{2, 3}, 6},
		{Shape{2, 3, 4}, 24},
		{Shape{1, 1, 1}, 1},
	}

	for _, tt := range tests {
		if got := tt.shape.NumElements(); got != tt.want {
			t.Errorf("%v.NumElements() = %d, want %d", tt.shape, got, tt.want)
		}
	}
}

func TestShapeValidate(t *testing.T) {
	if err := (Shape{2, 3, 4}).Validate(); err != nil {
		t.Errorf("valid shape rejected: %v", err)
	}
	if err := (Shape{2, 0, 4}).Validate(); err == nil {
		t.Error("zero dimension accepted")
	}
	if err := (Shape{2, -1}).Validate(); err == nil {
		t.Error("negative dimension accepted")
	}
}

func TestShapeEqual(t *testing.T) {
	tests := []struct {
		a, b Shape
		want bool
	}{
		{Shape{2, 3}, Shape{2, 3}, true},
		{Shape{2, 3}, Shape{3, 2}, false},
		{Shape{2, 3}, Shape{2, 3, 1}, false},
		{Shape{}, Shape{}, true},
	}

	for _, tt := range tests {
		if got := tt.a.Equal(tt.b); got != tt.want {
			t.Errorf("%v.Equal(%v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestShapeClone(t *testing.T) {
	s := Shape{2, 3, 4}
	c := s.Clone()
	c[0] = 99
	if s[0] != 2 {
		t.Error("Clone did not copy the underlying slice")
	}
}

func TestComputeStrides64(t *testing.T) {
	tests := []struct {
		shape Shape
		want  []int64
	}{
		{Shape{2, 3, 4}, []int64{12, 4, 1}},
		{Shape{9, 4}, []int64{4, 1}},
		{Shape{7}, []int64{1}},
		{Shape{}, []int64{}},
	}

	for _, tt := range tests {
		got := tt.shape.ComputeStrides64()
		if len(got) != len(tt.want) {
			t.Errorf("%v.ComputeStrides64() = %v, want %v", tt.shape, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("%v.ComputeStrides64() = %v, want %v", tt.shape, got, tt.want)
				break
			}
		}
	}
}

func TestDataTypeSize(t *testing.T) {
	tests := []struct {
		dtype DataType
		size  int
	}{
		{Int32, 4},
		{Int64, 8},
	}

	for _, tt := range tests {
		if got := tt.dtype.Size(); got != tt.size {
			t.Errorf("%s.Size() = %d, want %d", tt.dtype, got, tt.size)
		}
	}
}

func TestDataTypeOf(t *testing.T) {
	if dt := DataTypeOf[int32](); dt != Int32 {
		t.Errorf("DataTypeOf[int32]() = %v, want Int32", dt)
	}
	if dt := DataTypeOf[int64](); dt != Int64 {
		t.Errorf("DataTypeOf[int64]() = %v, want Int64", dt)
	}
}
