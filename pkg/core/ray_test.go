package core

import (
	"math"
	"testing"
)

func TestNewRay_NormalizesDirection(t *testing.T) {
	ray := NewRay(NewVec3(1, 2, 3), NewVec3(0, 0, 10))

	if ray.Direction != NewVec3(0, 0, 1) {
		t.Errorf("Expected unit direction (0,0,1), got %v", ray.Direction)
	}

	ray.SetDirection(NewVec3(3, 4, 0))
	if math.Abs(ray.Direction.Length()-1) > 1e-12 {
		t.Errorf("Expected unit direction after SetDirection, got length %f", ray.Direction.Length())
	}

	ray.SetOrigin(NewVec3(0, 0, 0))
	if ray.Origin != NewVec3(0, 0, 0) {
		t.Errorf("Expected origin to be updated, got %v", ray.Origin)
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 1, 1), NewVec3(0, 2, 0))
	point := ray.At(3)
	expected := NewVec3(1, 4, 1)

	if point.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, point)
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name     string
		v, n     Vec3
		expected Vec3
	}{
		{"45 degrees off a floor", NewVec3(1, -1, 0), NewVec3(0, 1, 0), NewVec3(1, 1, 0)},
		{"head-on", NewVec3(0, 0, 1), NewVec3(0, 0, -1), NewVec3(0, 0, -1)},
		{"grazing", NewVec3(1, 0, 0), NewVec3(0, 1, 0), NewVec3(1, 0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Reflect(tt.v, tt.n)
			if result.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}
