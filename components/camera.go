package components

import (
	cfg "github.com/automoto/thirdperson/config"
	"github.com/automoto/thirdperson/shared/lookcam"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
)

// CameraView is what the controller and interaction probe read from a camera.
type CameraView interface {
	Forward() mgl64.Vec3
	Right() mgl64.Vec3
	Pose() lookcam.Pose
}

type CameraData struct {
	Style   string // cfg.CameraOrbit or cfg.CameraRig
	Orbit   *lookcam.Orbit
	Rig     *lookcam.Rig
	Target  *donburi.Entry // followed player
	Enabled bool
}

// View returns the active camera, or nil when none is built.
func (c *CameraData) View() CameraView {
	if c.Style == cfg.CameraRig && c.Rig != nil {
		return c.Rig
	}
	if c.Orbit != nil {
		return c.Orbit
	}
	if c.Rig != nil {
		return c.Rig
	}
	return nil
}

var Camera = donburi.NewComponentType[CameraData]()
