package interact

import (
	"testing"

	"github.com/automoto/thirdperson/shared/physics"
	"github.com/go-gl/mathgl/mgl64"
)

type fakeNode struct {
	name     string
	tags     []string
	parent   *fakeNode
	actuator Actuator
}

func (n *fakeNode) Name() string { return n.name }

func (n *fakeNode) HasTag(tag string) bool {
	for _, t := range n.tags {
		if t == tag {
			return true
		}
	}
	return false
}

func (n *fakeNode) Parent() (Node, bool) {
	if n.parent == nil {
		return nil, false
	}
	return n.parent, true
}

func (n *fakeNode) Actuator() (Actuator, bool) {
	return n.actuator, n.actuator != nil
}

type countingActuator struct{ calls int }

func (a *countingActuator) Interact() bool {
	a.calls++
	return true
}

type fakeCaster struct {
	hit       Hit
	ok        bool
	sphere    int
	ray       int
	lastRange float64
}

func (c *fakeCaster) SphereCast(_, _ mgl64.Vec3, _, maxDistance float64, _ physics.Layer, _ physics.Triggers) (Hit, bool) {
	c.sphere++
	c.lastRange = maxDistance
	return c.hit, c.ok
}

func (c *fakeCaster) Raycast(_, _ mgl64.Vec3, maxDistance float64, _ physics.Layer, _ physics.Triggers) (Hit, bool) {
	c.ray++
	c.lastRange = maxDistance
	return c.hit, c.ok
}

type recordingIndicator struct {
	calls []bool
}

func (i *recordingIndicator) SetVisible(v bool) { i.calls = append(i.calls, v) }

func testConfig() Config {
	return Config{
		Reach:            3.5,
		AimMaxDistance:   100,
		UseSphereCast:    true,
		SphereRadius:     0.25,
		Mask:             physics.AllLayers,
		InteractableTag:  "Interactable",
		MaxAncestorDepth: 4,
	}
}

// doorTree is a door actuator with a tagged root and an untagged panel.
func doorTree() (*fakeNode, *fakeNode, *countingActuator) {
	act := &countingActuator{}
	root := &fakeNode{name: "door", tags: []string{"Interactable"}, actuator: act}
	panel := &fakeNode{name: "panel", parent: root}
	return root, panel, act
}

var forward = Ray{Origin: mgl64.Vec3{0, 1.6, 0}, Direction: mgl64.Vec3{0, 0, 1}}

func TestTargetsReachableActuator(t *testing.T) {
	root, panel, act := doorTree()
	caster := &fakeCaster{hit: Hit{Point: mgl64.Vec3{0, 1, 2}, Surface: panel}, ok: true}
	p := New(testConfig(), caster, nil, nil)

	got := p.Update(forward, mgl64.Vec3{0, 1, 0}, false)
	if !got.Targeting() || got.Owner != Node(root) {
		t.Fatalf("target = %+v", got)
	}
	if got.Distance != 2 || !got.Tagged || !got.InReach {
		t.Errorf("distance=%g tagged=%v inReach=%v", got.Distance, got.Tagged, got.InReach)
	}
	if act.calls != 0 || got.Interacted {
		t.Error("interacted without a press")
	}
	if caster.sphere != 1 || caster.ray != 0 || caster.lastRange != 100 {
		t.Errorf("casts sphere=%d ray=%d range=%g", caster.sphere, caster.ray, caster.lastRange)
	}
}

func TestReachUsesPlayerNotView(t *testing.T) {
	_, panel, act := doorTree()
	caster := &fakeCaster{hit: Hit{Point: mgl64.Vec3{0, 1, 5}, Distance: 1, Surface: panel}, ok: true}
	p := New(testConfig(), caster, nil, nil)

	got := p.Update(forward, mgl64.Vec3{0, 1, 0}, true)
	if got.Targeting() || got.InReach {
		t.Fatalf("target at distance %g should be out of reach", got.Distance)
	}
	if !got.HasHit || !got.Tagged {
		t.Errorf("hasHit=%v tagged=%v", got.HasHit, got.Tagged)
	}
	if act.calls != 0 {
		t.Error("out of reach actuator was triggered")
	}
}

func TestUntaggedSurfaceIsIgnored(t *testing.T) {
	act := &countingActuator{}
	wall := &fakeNode{name: "wall", actuator: act}
	caster := &fakeCaster{hit: Hit{Point: mgl64.Vec3{0, 1, 1}, Surface: wall}, ok: true}
	p := New(testConfig(), caster, nil, nil)

	if got := p.Update(forward, mgl64.Vec3{}, true); got.Targeting() || got.Tagged {
		t.Errorf("untagged surface targeted: %+v", got)
	}
	if act.calls != 0 {
		t.Error("untagged actuator triggered")
	}
}

func TestRaycastMode(t *testing.T) {
	cfg := testConfig()
	cfg.UseSphereCast = false
	caster := &fakeCaster{}
	p := New(cfg, caster, nil, nil)
	p.Update(forward, mgl64.Vec3{}, false)
	if caster.ray != 1 || caster.sphere != 0 {
		t.Errorf("casts sphere=%d ray=%d", caster.sphere, caster.ray)
	}
}

func TestInteractPressTriggersOnce(t *testing.T) {
	_, panel, act := doorTree()
	caster := &fakeCaster{hit: Hit{Point: mgl64.Vec3{0, 1, 1}, Surface: panel}, ok: true}
	p := New(testConfig(), caster, nil, nil)

	got := p.Update(forward, mgl64.Vec3{0, 1, 0}, true)
	if act.calls != 1 || !got.Interacted {
		t.Fatalf("calls = %d interacted = %v", act.calls, got.Interacted)
	}
	p.Update(forward, mgl64.Vec3{0, 1, 0}, false)
	if act.calls != 1 {
		t.Errorf("calls = %d after a frame without a press", act.calls)
	}
	if p.Current().Interacted {
		t.Error("Interacted carried into the next frame")
	}
}

func TestIndicatorTogglesOnChange(t *testing.T) {
	_, panel, _ := doorTree()
	caster := &fakeCaster{hit: Hit{Point: mgl64.Vec3{0, 1, 1}, Surface: panel}, ok: true}
	ind := &recordingIndicator{}
	p := New(testConfig(), caster, ind, nil)

	p.Update(forward, mgl64.Vec3{}, false)
	p.Update(forward, mgl64.Vec3{}, false)
	caster.ok = false
	p.Update(forward, mgl64.Vec3{}, false)
	p.Update(forward, mgl64.Vec3{}, false)
	caster.ok = true
	p.Update(forward, mgl64.Vec3{}, false)

	want := []bool{false, true, false, true}
	if len(ind.calls) != len(want) {
		t.Fatalf("indicator calls = %v, want %v", ind.calls, want)
	}
	for i := range want {
		if ind.calls[i] != want[i] {
			t.Fatalf("indicator calls = %v, want %v", ind.calls, want)
		}
	}
}

func TestNilCasterDisablesProbe(t *testing.T) {
	ind := &recordingIndicator{}
	p := New(testConfig(), nil, ind, nil)
	if got := p.Update(forward, mgl64.Vec3{}, true); got.HasHit || got.Targeting() {
		t.Errorf("disabled probe produced %+v", got)
	}
	if len(ind.calls) != 1 || ind.calls[0] {
		t.Errorf("indicator calls = %v, want [false]", ind.calls)
	}
}

func TestTagged(t *testing.T) {
	grand := &fakeNode{name: "building", tags: []string{"Interactable"}}
	mid := &fakeNode{name: "frame", parent: grand}
	leaf := &fakeNode{name: "handle", parent: mid}
	self := &fakeNode{name: "button", tags: []string{"Interactable"}}

	tests := []struct {
		name string
		node Node
		want bool
	}{
		{"own tag", self, true},
		{"parent tag", mid, true},
		{"grandparent only", leaf, false},
		{"nil node", nil, false},
	}
	for _, tt := range tests {
		if got := Tagged(tt.node, "Interactable"); got != tt.want {
			t.Errorf("%s: Tagged = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestFindActuatorDepth(t *testing.T) {
	act := &countingActuator{}
	n := &fakeNode{name: "root", actuator: act}
	for i := 0; i < 3; i++ {
		n = &fakeNode{name: "child", parent: n}
	}

	tests := []struct {
		depth int
		found bool
	}{
		{3, true},
		{2, false},
		{0, true}, // falls back to DefaultMaxDepth
	}
	for _, tt := range tests {
		a, owner, ok := FindActuator(n, tt.depth)
		if ok != tt.found {
			t.Errorf("depth %d: found = %v, want %v", tt.depth, ok, tt.found)
			continue
		}
		if ok && (a != Actuator(act) || owner.Name() != "root") {
			t.Errorf("depth %d: got %v on %s", tt.depth, a, owner.Name())
		}
	}
}
