package locomotion

import (
	"math"
	"testing"

	"github.com/automoto/thirdperson/shared/gamemath"
	"github.com/automoto/thirdperson/shared/motion"
	"github.com/automoto/thirdperson/shared/physics"
	"github.com/go-gl/mathgl/mgl64"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

const frame = 1.0 / 60

type fakeMover struct {
	pos      mgl64.Vec3
	floorY   float64
	hint     bool
	ceilingY float64
	moves    []mgl64.Vec3
}

func (m *fakeMover) Move(d mgl64.Vec3) physics.Touched {
	m.moves = append(m.moves, d)
	var t physics.Touched
	next := m.pos.Add(d)
	if next.Y() <= m.floorY && d.Y() < 0 {
		next[1] = m.floorY
		t.Below = true
	}
	if m.ceilingY != 0 && next.Y()+2 >= m.ceilingY && d.Y() > 0 {
		next[1] = m.ceilingY - 2
		t.Above = true
	}
	if d.Y() != 0 {
		m.hint = t.Below
	}
	m.pos = next
	return t
}

func (m *fakeMover) Bounds() physics.Bounds {
	return physics.BoundsOf(m.pos.Sub(mgl64.Vec3{0.5, 0, 0.5}), m.pos.Add(mgl64.Vec3{0.5, 2, 0.5}))
}

func (m *fakeMover) GroundedHint() bool { return m.hint }

type fixedProbe bool

func (p fixedProbe) Grounded(physics.Bounds) bool { return bool(p) }

type switchProbe struct{ on bool }

func (p *switchProbe) Grounded(physics.Bounds) bool { return p.on }

type fixedView struct{ forward, right mgl64.Vec3 }

func (v fixedView) Forward() mgl64.Vec3 { return v.forward }
func (v fixedView) Right() mgl64.Vec3   { return v.right }

type recordingAnimator struct {
	floats map[string]float64
	bools  map[string]bool
	calls  []string
}

func newRecordingAnimator() *recordingAnimator {
	return &recordingAnimator{floats: map[string]float64{}, bools: map[string]bool{}}
}

func (a *recordingAnimator) SetFloat(name string, v, _, _ float64) { a.floats[name] = v }
func (a *recordingAnimator) SetBool(name string, v bool)           { a.bools[name] = v }
func (a *recordingAnimator) ResetTrigger(name string)              { a.calls = append(a.calls, "reset:"+name) }
func (a *recordingAnimator) SetTrigger(name string)                { a.calls = append(a.calls, "set:"+name) }

func testConfig() Config {
	return Config{
		WalkSpeed:     5,
		RunSpeed:      9,
		TurnRate:      10,
		SpeedParam:    "Speed",
		GroundedParam: "Grounded",
		JumpTrigger:   "Jump",
		Motion: motion.Config{
			Gravity:        -24,
			JumpHeight:     1.6,
			StickVelocity:  -2,
			LiftoffLockout: 0.1,
		},
	}
}

func planarTravel(moves []mgl64.Vec3) mgl64.Vec3 {
	var sum mgl64.Vec3
	for _, m := range moves {
		sum = sum.Add(mgl64.Vec3{m.X(), 0, m.Z()})
	}
	return sum
}

func TestSpeeds(t *testing.T) {
	tests := []struct {
		name   string
		axis   mgl64.Vec2
		sprint bool
		want   float64
	}{
		{"walk", mgl64.Vec2{0, 1}, false, 5},
		{"sprint", mgl64.Vec2{0, 1}, true, 9},
		{"diagonal clamped", mgl64.Vec2{1, 1}, false, 5},
		{"idle", mgl64.Vec2{}, true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &fakeMover{}
			c := New(testConfig(), m, fixedProbe(true), nil)
			for i := 0; i < 60; i++ {
				c.Update(FrameInput{Axis: tt.axis, Sprint: tt.sprint}, frame)
			}
			if got := planarTravel(m.moves).Len(); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("travel = %g, want %g", got, tt.want)
			}
		})
	}
}

func TestNilViewMovesInWorldSpace(t *testing.T) {
	m := &fakeMover{}
	c := New(testConfig(), m, fixedProbe(true), nil)
	r := c.Update(FrameInput{Axis: mgl64.Vec2{1, 0}}, frame)
	if !vecNear(r.Direction, gamemath.Right, 1e-9) {
		t.Errorf("direction = %v, want +X", r.Direction)
	}
}

func TestViewRelativeMovementIgnoresPitch(t *testing.T) {
	m := &fakeMover{}
	c := New(testConfig(), m, fixedProbe(true), nil)
	q := gamemath.Euler(45, 90)
	c.View = fixedView{forward: gamemath.ForwardOf(q), right: gamemath.RightOf(q)}

	r := c.Update(FrameInput{Axis: mgl64.Vec2{0, 1}}, frame)
	if !vecNear(r.Direction, mgl64.Vec3{1, 0, 0}, 1e-9) {
		t.Errorf("direction = %v, want +X", r.Direction)
	}
	if r.Displacement.X() <= 0 || math.Abs(r.Displacement.Z()) > 1e-9 {
		t.Errorf("displacement = %v", r.Displacement)
	}
}

func TestFacingTurnsTowardMovement(t *testing.T) {
	m := &fakeMover{}
	c := New(testConfig(), m, fixedProbe(true), nil)
	for i := 0; i < 120; i++ {
		c.Update(FrameInput{Axis: mgl64.Vec2{-1, 0}}, frame)
	}
	if yaw := gamemath.YawOf(c.Facing()); math.Abs(yaw+90) > 0.5 {
		t.Errorf("yaw = %g, want -90", yaw)
	}

	before := c.Facing()
	c.Update(FrameInput{}, frame)
	if c.Facing() != before {
		t.Error("facing changed without input")
	}
}

func TestJumpPublishesTriggerInOrder(t *testing.T) {
	m := &fakeMover{}
	anim := newRecordingAnimator()
	c := New(testConfig(), m, fixedProbe(true), nil)
	c.Animator = anim

	c.Update(FrameInput{}, frame)
	r := c.Update(FrameInput{JumpPressed: true, JumpHeld: true}, frame)
	if !r.Events.Has(motion.JumpAccepted | motion.Liftoff) {
		t.Fatalf("events = %b", r.Events)
	}
	want := []string{"reset:Jump", "set:Jump"}
	if len(anim.calls) != 2 || anim.calls[0] != want[0] || anim.calls[1] != want[1] {
		t.Errorf("calls = %v, want %v", anim.calls, want)
	}
	if !anim.bools["Grounded"] {
		t.Error("grounded not published")
	}
	if r.Displacement.Y() <= 0 {
		t.Errorf("liftoff frame moved %v", r.Displacement)
	}
}

func TestAnimSpeedBlend(t *testing.T) {
	m := &fakeMover{}
	anim := newRecordingAnimator()
	c := New(testConfig(), m, fixedProbe(true), nil)
	c.Animator = anim

	c.Update(FrameInput{Axis: mgl64.Vec2{0, 1}}, frame)
	if anim.floats["Speed"] != 0.5 {
		t.Errorf("walk speed param = %g, want 0.5", anim.floats["Speed"])
	}
	c.Update(FrameInput{Axis: mgl64.Vec2{0, 1}, Sprint: true}, frame)
	if anim.floats["Speed"] != 1 {
		t.Errorf("run speed param = %g, want 1", anim.floats["Speed"])
	}
}

func TestGroundModes(t *testing.T) {
	tests := []struct {
		mode        GroundMode
		probe, hint bool
		want        bool
	}{
		{GroundEither, true, false, true},
		{GroundEither, false, true, true},
		{GroundEither, false, false, false},
		{GroundProbeOnly, false, true, false},
		{GroundProbeOnly, true, false, true},
		{GroundMoverOnly, true, false, false},
		{GroundMoverOnly, false, true, true},
	}
	for _, tt := range tests {
		cfg := testConfig()
		cfg.GroundMode = tt.mode
		c := New(cfg, &fakeMover{}, fixedProbe(tt.probe), nil)
		c.mover.(*fakeMover).hint = tt.hint
		if got := c.grounded(); got != tt.want {
			t.Errorf("%v probe=%v hint=%v: grounded = %v, want %v", tt.mode, tt.probe, tt.hint, got, tt.want)
		}
	}
}

func TestNilProbeUsesMover(t *testing.T) {
	m := &fakeMover{hint: true}
	c := New(testConfig(), m, nil, nil)
	if !c.grounded() {
		t.Error("nil probe ignored mover hint")
	}
}

func TestNilMoverDisablesController(t *testing.T) {
	c := New(testConfig(), nil, nil, nil)
	if c.Enabled() {
		t.Fatal("enabled without a mover")
	}
	if r := c.Update(FrameInput{Axis: mgl64.Vec2{0, 1}, JumpPressed: true}, frame); r != (Report{}) {
		t.Errorf("report = %+v", r)
	}
}

func TestCeilingCancelsRise(t *testing.T) {
	m := &fakeMover{ceilingY: 2.1}
	c := New(testConfig(), m, fixedProbe(true), nil)
	c.Update(FrameInput{}, frame)
	c.Update(FrameInput{JumpPressed: true, JumpHeld: true}, frame)
	if got := c.Motion().VelocityY; got != 0 {
		t.Errorf("VelocityY after bump = %g, want 0", got)
	}
}

func TestWalksOnPhysicsWorld(t *testing.T) {
	w := physics.NewWorld(mgl64.Vec2{-20, -20}, mgl64.Vec2{20, 20}, 2)
	w.AddBox(mgl64.Vec3{-20, -1, -20}, mgl64.Vec3{20, 0, 20}, physics.LayerGround, false, nil)
	body := physics.NewBody(w, mgl64.Vec3{0, 0, 0}, 0.4, 1.8)
	probe := SphereProbe{Query: w, Offset: 0.1, Radius: 0.2, Mask: physics.LayerGround}

	c := New(testConfig(), body, probe, nil)
	for i := 0; i < 60; i++ {
		r := c.Update(FrameInput{Axis: mgl64.Vec2{0, 1}, Sprint: true}, frame)
		if !r.Grounded {
			t.Fatalf("frame %d: not grounded", i)
		}
	}
	if math.Abs(body.Position.Z()-9) > 1e-6 {
		t.Errorf("z = %g, want 9", body.Position.Z())
	}
	if body.Position.Y() != 0 {
		t.Errorf("y = %g, want 0", body.Position.Y())
	}
}

func TestStandsStillAtFractionalOffsets(t *testing.T) {
	for _, z := range []float64{0, 0.45, 0.5, 1.2, 1.3} {
		w := physics.NewWorld(mgl64.Vec2{-20, -20}, mgl64.Vec2{20, 20}, 2)
		w.AddBox(mgl64.Vec3{-20, -1, -20}, mgl64.Vec3{20, 0, 20}, physics.LayerGround, false, nil)
		body := physics.NewBody(w, mgl64.Vec3{0, 0, z}, 0.4, 1.8)
		probe := SphereProbe{Query: w, Offset: 0.1, Radius: 0.2, Mask: physics.LayerGround}

		c := New(testConfig(), body, probe, nil)
		for i := 0; i < 30; i++ {
			c.Update(FrameInput{}, frame)
		}
		if !probe.Grounded(body.Bounds()) {
			t.Errorf("z=%g: probe not grounded", z)
		}
		if body.Position.Y() != 0 {
			t.Errorf("z=%g: y = %g, want 0", z, body.Position.Y())
		}
	}
}

func TestGroundDisagreementLoggedOnChange(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	probe := &switchProbe{}
	c := New(testConfig(), &fakeMover{hint: true}, probe, zap.New(core))

	steps := []struct {
		probe  bool
		frames int
	}{
		{false, 5},
		{true, 3},
		{false, 4},
	}
	for _, s := range steps {
		probe.on = s.probe
		for i := 0; i < s.frames; i++ {
			c.Update(FrameInput{}, frame)
		}
	}
	if n := logs.FilterMessage("locomotion: ground probe disagrees with mover").Len(); n != 2 {
		t.Errorf("disagreement logged %d times, want 2", n)
	}
}

func TestParseGroundMode(t *testing.T) {
	for _, s := range []string{"", "either", "probe", "mover"} {
		if _, ok := ParseGroundMode(s); !ok {
			t.Errorf("ParseGroundMode(%q) rejected", s)
		}
	}
	if _, ok := ParseGroundMode("magnet"); ok {
		t.Error("unknown mode accepted")
	}
	if GroundProbeOnly.String() != "probe" {
		t.Errorf("String = %q", GroundProbeOnly.String())
	}
}

func TestResetClearsMotion(t *testing.T) {
	cfg := testConfig()
	cfg.Motion.JumpDelay = 0.5
	c := New(cfg, &fakeMover{}, fixedProbe(true), nil)
	c.Update(FrameInput{}, frame)
	c.Update(FrameInput{JumpPressed: true, JumpHeld: true}, frame)
	if !c.Motion().JumpQueued {
		t.Fatal("jump not queued")
	}

	c.Reset(gamemath.Euler(0, 90))
	s := c.Motion()
	if s.JumpQueued || s.VelocityY != 0 || !s.JumpArmed {
		t.Errorf("motion after reset = %+v", s)
	}
	if yaw := gamemath.YawOf(c.Facing()); math.Abs(yaw-90) > 1e-6 {
		t.Errorf("yaw = %g, want 90", yaw)
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
