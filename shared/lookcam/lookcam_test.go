package lookcam

import (
	"math"
	"math/rand"
	"testing"

	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/go-gl/mathgl/mgl64"
)

var testLimits = Limits{MinPitch: -40, MaxPitch: 70}

func TestLookKeepsPitchClamped(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	var v ViewState
	for i := 0; i < 5000; i++ {
		delta := mgl64.Vec2{rng.NormFloat64() * 200, rng.NormFloat64() * 200}
		v.Look(delta, rng.Float64()*3, rng.Intn(2) == 0, testLimits)
		if v.Pitch < testLimits.MinPitch || v.Pitch > testLimits.MaxPitch {
			t.Fatalf("step %d: pitch %g outside limits", i, v.Pitch)
		}
	}
}

func TestLookDirection(t *testing.T) {
	tests := []struct {
		name      string
		delta     mgl64.Vec2
		invert    bool
		wantYaw   float64
		wantPitch float64
	}{
		{"right", mgl64.Vec2{10, 0}, false, 20, 0},
		{"pointer up looks up", mgl64.Vec2{0, 5}, false, 0, -10},
		{"inverted", mgl64.Vec2{0, 5}, true, 0, 10},
		{"clamped", mgl64.Vec2{0, -100}, false, 0, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v ViewState
			v.Look(tt.delta, 2, tt.invert, testLimits)
			if v.Yaw != tt.wantYaw || v.Pitch != tt.wantPitch {
				t.Errorf("view = %+v, want yaw %g pitch %g", v, tt.wantYaw, tt.wantPitch)
			}
		})
	}
}

func TestSeed(t *testing.T) {
	tests := []struct {
		name      string
		rotation  mgl64.Quat
		wantYaw   float64
		wantPitch float64
	}{
		{"identity", mgl64.QuatIdent(), 0, 0},
		{"turned", gamemath.Euler(10, 135), 135, 10},
		{"wraps yaw", gamemath.Euler(0, 270), -90, 0},
		{"clamps pitch", gamemath.Euler(85, 0), 0, 70},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := Seed(tt.rotation, testLimits)
			if math.Abs(v.Yaw-tt.wantYaw) > 1e-6 || math.Abs(v.Pitch-tt.wantPitch) > 1e-6 {
				t.Errorf("seed = %+v, want yaw %g pitch %g", v, tt.wantYaw, tt.wantPitch)
			}
		})
	}
}

func TestRigRotationIsEuler(t *testing.T) {
	r := NewRig(RigConfig{Sensitivity: 1, MinPitch: -80, MaxPitch: 80}, ViewState{})
	pose := r.Update(mgl64.Vec2{30, -20})

	want := gamemath.Euler(20, 30)
	if !quatNear(pose.Rotation, want, 1e-9) {
		t.Errorf("rotation = %v, want %v", pose.Rotation, want)
	}
	if got := gamemath.YawOf(pose.Rotation); math.Abs(got-30) > 1e-6 {
		t.Errorf("yaw = %g", got)
	}

	r.SetPosition(mgl64.Vec3{1, 2, 3})
	if r.Pose().Position != (mgl64.Vec3{1, 2, 3}) || r.Pose().Rotation != pose.Rotation {
		t.Error("SetPosition changed the rotation or lost the position")
	}
	if !vecNear(r.Forward(), gamemath.ForwardOf(want), 1e-9) {
		t.Errorf("forward = %v", r.Forward())
	}
}

func TestOrbitSitsBehindTarget(t *testing.T) {
	cfg := OrbitConfig{Distance: 4, HeightOffset: 1.5, Sensitivity: 1, MinPitch: -40, MaxPitch: 70, SmoothTime: 0.1}
	o := NewOrbit(cfg, ViewState{Yaw: 0, Pitch: 0})
	target := mgl64.Vec3{2, 0, 5}

	pose := o.Update(mgl64.Vec2{}, target, 1.0/60)
	want := mgl64.Vec3{2, 1.5, 1}
	if !vecNear(pose.Position, want, 1e-9) {
		t.Errorf("position = %v, want %v", pose.Position, want)
	}
	if !vecNear(pose.Forward(), gamemath.Forward, 1e-9) {
		t.Errorf("forward = %v, want +Z", pose.Forward())
	}
}

func TestOrbitKeepsDistanceAndLooksAtPivot(t *testing.T) {
	cfg := OrbitConfig{Distance: 5, HeightOffset: 1, Sensitivity: 0.5, MinPitch: -40, MaxPitch: 70, SmoothTime: 0.05}
	o := NewOrbit(cfg, ViewState{Yaw: 30, Pitch: 20})
	target := mgl64.Vec3{-3, 0, 4}
	pivot := target.Add(mgl64.Vec3{0, 1, 0})

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		pose := o.Update(mgl64.Vec2{rng.Float64()*20 - 10, rng.Float64()*20 - 10}, target, 1.0/60)
		if d := pose.Position.Sub(pivot).Len(); math.Abs(d-5) > 1e-9 {
			t.Fatalf("frame %d: distance %g", i, d)
		}
		toPivot := pivot.Sub(pose.Position).Normalize()
		if !vecNear(pose.Forward(), toPivot, 1e-9) {
			t.Fatalf("frame %d: forward %v not toward pivot %v", i, pose.Forward(), toPivot)
		}
		if o.View.Pitch < cfg.MinPitch || o.View.Pitch > cfg.MaxPitch {
			t.Fatalf("frame %d: pitch %g", i, o.View.Pitch)
		}
	}
}

func TestOrbitSmoothingLagsThenSettles(t *testing.T) {
	cfg := OrbitConfig{Distance: 4, Sensitivity: 1, MinPitch: -40, MaxPitch: 70, SmoothTime: 0.2}
	o := NewOrbit(cfg, ViewState{})

	o.Update(mgl64.Vec2{90, 0}, mgl64.Vec3{}, 1.0/60)
	if _, yaw := o.Smoothed(); yaw <= 0 || yaw >= 90 {
		t.Fatalf("first frame yaw = %g, want between 0 and 90", yaw)
	}
	for i := 0; i < 180; i++ {
		o.Update(mgl64.Vec2{}, mgl64.Vec3{}, 1.0/60)
	}
	if _, yaw := o.Smoothed(); math.Abs(yaw-90) > 1e-3 {
		t.Errorf("settled yaw = %g, want 90", yaw)
	}
}

func TestOrbitReset(t *testing.T) {
	cfg := OrbitConfig{Distance: 4, Sensitivity: 1, MinPitch: -40, MaxPitch: 70, SmoothTime: 0.2}
	o := NewOrbit(cfg, ViewState{})
	o.Update(mgl64.Vec2{90, 0}, mgl64.Vec3{}, 1.0/60)

	o.Reset(ViewState{Yaw: -45, Pitch: 100})
	pitch, yaw := o.Smoothed()
	if yaw != -45 || pitch != 70 {
		t.Errorf("smoothed = (%g, %g), want (70, -45)", pitch, yaw)
	}
	if got := gamemath.YawOf(o.Pose().Rotation); math.Abs(got+45) > 1e-6 {
		t.Errorf("pose yaw = %g, want -45", got)
	}
	o.Update(mgl64.Vec2{}, mgl64.Vec3{}, 1.0/60)
	if _, yaw := o.Smoothed(); math.Abs(yaw+45) > 1e-9 {
		t.Errorf("reset left smoothing in flight: yaw %g", yaw)
	}
}

func vecNear(a, b mgl64.Vec3, eps float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > eps {
			return false
		}
	}
	return true
}

// quatNear treats q and -q as the same rotation.
func quatNear(a, b mgl64.Quat, eps float64) bool {
	if a.Dot(b) < 0 {
		b = b.Scale(-1)
	}
	return math.Abs(a.W-b.W) <= eps && vecNear(a.V, b.V, eps)
}
