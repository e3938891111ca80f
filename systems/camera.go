package systems

import (
	"math"

	"github.com/automoto/laststand/components"
	"github.com/automoto/laststand/config"
	"github.com/automoto/laststand/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	// Process screen shake
	updateScreenShake(cameraEntry, camera)
	defer syncView(camera)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	body := components.Body.Get(playerEntry)

	// Only update look-ahead while moving - freeze the offset when idle
	vel := mgl64.Vec2{body.Vel.X(), body.Vel.Z()}
	if vel.Len() > config.Camera.LookAheadSpeedLimit {
		target := vel.Normalize().Mul(config.Camera.LookAheadDistance)
		camera.LookAhead.X += (target.X() - camera.LookAhead.X) * config.Camera.LookAheadSmoothing
		camera.LookAhead.Y += (target.Y() - camera.LookAhead.Y) * config.Camera.LookAheadSmoothing
	}

	targetX := body.Pos.X() + camera.LookAhead.X
	targetY := body.Pos.Z() + camera.LookAhead.Y

	// Keep the arena filling the screen where it is large enough to
	halfW := float64(config.C.Width) / 2 / config.Camera.PixelsPerUnit
	halfH := float64(config.C.Height) / 2 / config.Camera.PixelsPerUnit
	targetX = clampAxis(targetX, halfW, config.Arena.Width)
	targetY = clampAxis(targetY, halfH, config.Arena.Depth)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// clampAxis keeps a view of half-extent half inside [0, size], centring
// it when the arena is narrower than the view.
func clampAxis(v, half, size float64) float64 {
	if size <= 2*half {
		return size / 2
	}
	return math.Max(half, math.Min(size-half, v))
}

func syncView(camera *components.CameraData) {
	if camera.View == nil {
		return
	}
	camera.View.Center = mgl64.Vec2{
		camera.Position.X + camera.Shake.X,
		camera.Position.Y + camera.Shake.Y,
	}
}

// updateScreenShake sets this frame's shake offset and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	camera.Shake.X, camera.Shake.Y = 0, 0
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	camera.Shake.X = math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Shake.Y = math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	// Remove component when shake is complete
	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(e *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok || duration <= 0 {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity >= shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}

	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.SetValue(cameraEntry, components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
