package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-9

func assertVec(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-6, "want %v, got %v", want, got)
	}
}

func TestRotateAboutUp(t *testing.T) {
	tests := []struct {
		name    string
		in      mgl64.Vec3
		degrees float64
		want    mgl64.Vec3
	}{
		{"zero", mgl64.Vec3{1, 0, 0}, 0, mgl64.Vec3{1, 0, 0}},
		{"quarter", mgl64.Vec3{1, 0, 0}, 90, mgl64.Vec3{0, 1, 0}},
		{"negative quarter", mgl64.Vec3{1, 0, 0}, -90, mgl64.Vec3{0, -1, 0}},
		{"half keeps z", mgl64.Vec3{2, 0, 5}, 180, mgl64.Vec3{-2, 0, 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertVec(t, tt.want, RotateAboutUp(tt.in, tt.degrees))
		})
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := NewTransform(mgl64.Vec3{100, -40, 0}, 0.7)
	world := mgl64.Vec3{-12, 300, 0}

	local := tr.InverseTransformPosition(world)
	assertVec(t, world, tr.TransformPosition(local))
	assert.InDelta(t, world.Sub(tr.Location).Len(), local.Len(), 1e-6)
}

func TestForwardMatchesLocalX(t *testing.T) {
	tr := NewTransform(mgl64.Vec3{10, 20, 0}, math.Pi/3)
	ahead := tr.Location.Add(tr.Forward().Mul(50))

	assertVec(t, mgl64.Vec3{50, 0, 0}, tr.InverseTransformPosition(ahead))
}

func TestZeroTransformIsIdentity(t *testing.T) {
	var tr Transform
	p := mgl64.Vec3{3, 4, 5}
	assertVec(t, p, tr.InverseTransformPosition(p))
	assertVec(t, mgl64.Vec3{1, 0, 0}, tr.Forward())
}

func TestStepYaw(t *testing.T) {
	assert.InDelta(t, 0.5, StepYaw(0, 0.5, 1), eps)
	assert.InDelta(t, 0.1, StepYaw(0, 1, 0.1), eps)
	// shortest arc crosses ±π
	assert.InDelta(t, -math.Pi+0.1-0.05, StepYaw(math.Pi-0.05, -math.Pi+0.1, 0.1), 1e-9)
	assert.InDelta(t, -0.2, StepYaw(0, -2, 0.2), eps)
}

func TestCameraRoundTrip(t *testing.T) {
	cam := NewCamera(800, 600)
	cam.Follow(mgl64.Vec3{1000, 500, 0})

	x, y := cam.WorldToScreen(mgl64.Vec3{1000, 500, 0})
	assert.InDelta(t, 400, x, eps)
	assert.InDelta(t, 300, y, eps)

	assertVec(t, mgl64.Vec3{610, 250, 0}, cam.ScreenToWorld(10, 50))
}
