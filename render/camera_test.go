package render

import "testing"

func TestCameraProjectCentersPointOnForwardAxis(t *testing.T) {
	cam := Camera{
		Position:       Vec3{X: 0, Y: 0, Z: 0},
		Front:          Vec3{X: 0, Y: 0, Z: -1},
		ZNear:          0.1,
		WindowWidthPx:  1000,
		WindowHeightPx: 800,
	}
	x, y, ok := cam.Project(Vec3{X: 0, Y: 0, Z: -10})
	if !ok {
		t.Fatal("expected a point in front of the camera to project")
	}
	if abs32(x-500) > 0.01 || abs32(y-400) > 0.01 {
		t.Fatalf("expected a point straight ahead to land at screen center, got (%v, %v)", x, y)
	}
}

func TestCameraProjectRejectsPointBehindCamera(t *testing.T) {
	cam := Camera{
		Position:      Vec3{X: 0, Y: 0, Z: 0},
		Front:         Vec3{X: 0, Y: 0, Z: -1},
		ZNear:         0.1,
		WindowWidthPx: 1000,
	}
	if _, _, ok := cam.Project(Vec3{X: 0, Y: 0, Z: 10}); ok {
		t.Fatal("expected a point behind the camera to be rejected")
	}
}

func TestCameraProjectOffsetsToTheRight(t *testing.T) {
	cam := Camera{
		Position:       Vec3{X: 0, Y: 0, Z: 0},
		Front:          Vec3{X: 0, Y: 0, Z: -1},
		ZNear:          0.1,
		WindowWidthPx:  1000,
		WindowHeightPx: 800,
	}
	x, _, ok := cam.Project(Vec3{X: 5, Y: 0, Z: -10})
	if !ok {
		t.Fatal("expected point to project")
	}
	if x <= 500 {
		t.Fatalf("expected a point offset to world +X to land right of center, got x=%v", x)
	}
}

func TestCameraProjectDegenerateFrontRejectsEverything(t *testing.T) {
	cam := Camera{WindowWidthPx: 1000}
	if _, _, ok := cam.Project(Vec3{X: 1, Y: 1, Z: 1}); ok {
		t.Fatal("expected a zero-length front vector to reject all points")
	}
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
