package leveldata

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/go-gl/mathgl/mgl64"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="8" tilewidth="32" tileheight="32" infinite="0">
 <properties>
  <property name="unitsPerPixel" type="float" value="0.0625"/>
 </properties>
 <objectgroup id="1" name="solids">
  <object id="1" name="floor" x="0" y="0" width="320" height="256">
   <properties>
    <property name="base" type="float" value="-1"/>
   </properties>
  </object>
  <object id="2" name="wall" x="32" y="64" width="16" height="128">
   <properties>
    <property name="height" type="float" value="3"/>
    <property name="layer" value="default"/>
   </properties>
  </object>
  <object id="3" name="pad" x="160" y="160" width="32" height="32">
   <properties>
    <property name="trigger" type="bool" value="true"/>
    <property name="layer" value="interactable"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="2" name="doors">
  <object id="4" name="door-z" x="96" y="96" width="64" height="16">
   <properties>
    <property name="openAngle" type="float" value="-100"/>
    <property name="speed" type="float" value="150"/>
    <property name="easing" value="inOutSine"/>
   </properties>
  </object>
  <object id="5" name="door-a" x="200" y="32" width="16" height="64">
   <properties>
    <property name="angle" type="float" value="90"/>
    <property name="openAngle" type="float" value="90"/>
    <property name="height" type="float" value="2.5"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="3" name="spawn">
  <object id="6" name="player" x="64" y="32">
   <properties>
    <property name="yaw" type="float" value="45"/>
   </properties>
   <point/>
  </object>
 </objectgroup>
</map>
`

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"levels/arena.tmx": {Data: []byte(testMap)}}

	lvl, err := Load(fsys, "levels/arena.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if lvl.Name != "arena" || lvl.UnitsPerPixel != 0.0625 {
		t.Errorf("name=%q unitsPerPixel=%g", lvl.Name, lvl.UnitsPerPixel)
	}
	if want := (mgl64.Vec3{20, 0, 16}); lvl.Max != want {
		t.Errorf("max = %v, want %v", lvl.Max, want)
	}

	if len(lvl.Solids) != 3 {
		t.Fatalf("solids = %d, want 3", len(lvl.Solids))
	}
	tests := []struct {
		got, want Solid
	}{
		{lvl.Solids[0], Solid{Name: "floor", Min: mgl64.Vec3{0, -1, 0}, Max: mgl64.Vec3{20, 0, 16}, Layer: "ground"}},
		{lvl.Solids[1], Solid{Name: "wall", Min: mgl64.Vec3{2, 0, 4}, Max: mgl64.Vec3{3, 3, 12}, Layer: "default"}},
		{lvl.Solids[2], Solid{Name: "pad", Min: mgl64.Vec3{10, 0, 10}, Max: mgl64.Vec3{12, 1, 12}, Layer: "interactable", Trigger: true}},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("solid = %+v, want %+v", tt.got, tt.want)
		}
	}

	if len(lvl.Doors) != 2 {
		t.Fatalf("doors = %d, want 2", len(lvl.Doors))
	}
	a, z := lvl.Doors[0], lvl.Doors[1]
	if a.Name != "door-a" || z.Name != "door-z" {
		t.Errorf("door order = %s, %s", a.Name, z.Name)
	}
	if a.Angle != 90 || a.OpenAngle != 90 || a.Max.Y() != 2.5 {
		t.Errorf("door-a = %+v", a)
	}
	if z.OpenAngle != -100 || z.Speed != 150 || z.Easing != "inOutSine" || z.Max.Y() != defaultDoorHeight {
		t.Errorf("door-z = %+v", z)
	}

	if want := (Spawn{Position: mgl64.Vec3{4, 0, 2}, Yaw: 45}); lvl.Spawn != want {
		t.Errorf("spawn = %+v, want %+v", lvl.Spawn, want)
	}
}

func TestLoadDefaultsUnitsPerPixel(t *testing.T) {
	m := strings.Replace(testMap, `value="0.0625"`, `value="0"`, 1)
	lvl, err := Load(fstest.MapFS{"a.tmx": {Data: []byte(m)}}, "a.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lvl.UnitsPerPixel != DefaultUnitsPerPixel {
		t.Errorf("unitsPerPixel = %g, want %g", lvl.UnitsPerPixel, DefaultUnitsPerPixel)
	}
}

func TestLoadRequiresSpawn(t *testing.T) {
	m := strings.Replace(testMap, `name="spawn"`, `name="decor"`, 1)
	_, err := Load(fstest.MapFS{"nospawn.tmx": {Data: []byte(m)}}, "nospawn.tmx")
	if err == nil || !strings.Contains(err.Error(), "spawn") {
		t.Errorf("err = %v, want missing spawn", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "levels/missing.tmx"); err == nil {
		t.Error("expected an error")
	}
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx":    {Data: []byte(testMap)},
		"levels/a.tmx":    {Data: []byte(testMap)},
		"levels/notes.md": {Data: []byte("ignored")},
	}
	levels, names, err := LoadAll(fsys, "levels")
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(names) != 2 || names[0] != "a" || names[1] != "b" {
		t.Errorf("names = %v", names)
	}
	if levels["b"] == nil || levels["b"].Name != "b" {
		t.Errorf("levels = %v", levels)
	}

	if _, _, err := LoadAll(fstest.MapFS{}, "levels"); err == nil {
		t.Error("empty dir should fail")
	}
}
