package transform

import (
	"math"
	"testing"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/matrix"
)

func TestBuilder_ScaleThenTranslate(t *testing.T) {
	m := New().Scale(2, 2, 2).Translate(1, 0, 0).Build()

	got := m.MultiplyPoint(core.NewPoint(0, 0, 0))
	if !got.ApproxEqual(core.NewPoint(1, 0, 0), core.EpsilonLoose) {
		t.Errorf("Expected (1,0,0), got %v", got)
	}
}

func TestBuilder_ChainedOrder(t *testing.T) {
	p := core.NewPoint(1, 0, 1)

	m := New().RotateX(math.Pi/2).Scale(5, 5, 5).Translate(10, 5, 7).Build()
	if got := m.MultiplyPoint(p); !got.ApproxEqual(core.NewPoint(15, 0, 7), core.EpsilonLoose) {
		t.Errorf("Expected (15,0,7), got %v", got)
	}

	// The same result step by step
	p2 := matrix.RotationX(math.Pi / 2).MultiplyPoint(p)
	p3 := matrix.Scaling(5, 5, 5).MultiplyPoint(p2)
	p4 := matrix.Translation(10, 5, 7).MultiplyPoint(p3)
	if got := m.MultiplyPoint(p); !got.ApproxEqual(p4, core.EpsilonLoose) {
		t.Errorf("Chained %v differs from sequential %v", got, p4)
	}
}

func TestBuilder_ShearAndView(t *testing.T) {
	m := New().Shear(1, 0, 0, 0, 0, 0).Build()
	if got := m.MultiplyPoint(core.NewPoint(2, 3, 4)); !got.ApproxEqual(core.NewPoint(5, 3, 4), core.EpsilonTight) {
		t.Errorf("Expected (5,3,4), got %v", got)
	}

	view := New().ViewOrientation(core.NewPoint(0, 0, 8), core.NewPoint(0, 0, 0), core.NewVector(0, 1, 0)).Build()
	if !view.ApproxEqual(matrix.Translation(0, 0, -8), core.EpsilonLoose) {
		t.Errorf("Expected translation(0,0,-8), got %v", view)
	}
}

type recorder struct {
	m matrix.Matrix4
}

func (r *recorder) SetTransform(m matrix.Matrix4) error {
	r.m = m
	return nil
}

func TestBuilder_Apply(t *testing.T) {
	target := &recorder{}
	if err := New().Translate(1, 2, 3).Apply(target); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !target.m.ApproxEqual(matrix.Translation(1, 2, 3), core.EpsilonTight) {
		t.Errorf("Expected translation to be committed, got %v", target.m)
	}
}

func TestParseAxis(t *testing.T) {
	tests := []struct {
		input   string
		want    Axis
		wantErr bool
	}{
		{"x", X, false},
		{"Y", Y, false},
		{" z ", Z, false},
		{"w", X, true},
	}
	for _, tt := range tests {
		got, err := ParseAxis(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAxis(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseAxis(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
