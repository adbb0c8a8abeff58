package swarm

import (
	"math"
	"testing"

	"github.com/lixenwraith/blob-morph/core"
	"github.com/lixenwraith/blob-morph/vmath"
)

func testPhysics(params Params) *Physics {
	return New(params, vmath.NewFastRand(99))
}

func TestSurfaceTensionAveragedNotSummed(t *testing.T) {
	params := DefaultParams()

	// One neighbor at distance 10
	single := []core.Point{
		{X: 0, Y: 0, Mass: 1},
		{X: 10, Y: 0, Mass: 1},
	}
	testPhysics(params).ApplySurfaceTension(single, 1.0/60)

	// Four coincident neighbors at the same distance: identical
	// contributions, so the mean must equal the single-neighbor pull
	crowd := []core.Point{
		{X: 0, Y: 0, Mass: 1},
		{X: 10, Y: 0, Mass: 1},
		{X: 10, Y: 0, Mass: 1},
		{X: 10, Y: 0, Mass: 1},
		{X: 10, Y: 0, Mass: 1},
	}
	testPhysics(params).ApplySurfaceTension(crowd, 1.0/60)

	if math.Abs(single[0].VX-crowd[0].VX) > 1e-9 {
		t.Errorf("Expected averaged tension %v to match single-neighbor pull %v", crowd[0].VX, single[0].VX)
	}
	if single[0].VX <= 0 {
		t.Errorf("Expected attraction toward the neighbor, got VX = %v", single[0].VX)
	}
}

func TestSurfaceTensionCutoff(t *testing.T) {
	params := DefaultParams()
	points := []core.Point{
		{X: 0, Y: 0, Mass: 1},
		{X: params.TensionRadius + 1, Y: 0, Mass: 1},
	}
	testPhysics(params).ApplySurfaceTension(points, 1.0/60)

	if points[0].VX != 0 || points[0].VY != 0 {
		t.Errorf("Expected no pull beyond TensionRadius, got (%v, %v)", points[0].VX, points[0].VY)
	}
}

func TestCohesionRadiusGate(t *testing.T) {
	params := DefaultParams()
	params.CohesionRadius = 400

	// Center of mass sits at (500, 0): both points out of range
	far := []core.Point{
		{X: 0, Y: 0, Mass: 1},
		{X: 1000, Y: 0, Mass: 1},
	}
	testPhysics(params).ApplyCohesion(far, 1.0/60)
	if far[0].VX != 0 || far[1].VX != 0 {
		t.Errorf("Expected no cohesion outside the radius, got %v and %v", far[0].VX, far[1].VX)
	}

	// Center of mass at (300, 0): both inside, pulled toward it
	near := []core.Point{
		{X: 0, Y: 0, Mass: 1},
		{X: 600, Y: 0, Mass: 1},
	}
	testPhysics(params).ApplyCohesion(near, 1.0/60)
	if near[0].VX <= 0 {
		t.Errorf("Expected left point pulled right, got VX = %v", near[0].VX)
	}
	if near[1].VX >= 0 {
		t.Errorf("Expected right point pulled left, got VX = %v", near[1].VX)
	}
}

func TestElasticityReflects(t *testing.T) {
	params := DefaultParams()
	params.Damping = 0.985
	params.Elasticity = 0.8
	bounds := core.Bounds{MinX: 0, MinY: 0, MaxX: 400, MaxY: 400}

	points := []core.Point{{X: 500, Y: 200, VX: 100, Mass: 1}}
	testPhysics(params).ApplyElasticity(points, bounds)

	if points[0].X != 400 {
		t.Errorf("Expected position clamped to 400, got %v", points[0].X)
	}
	want := -100 * 0.985 * 0.8
	if math.Abs(points[0].VX-want) > 1e-9 {
		t.Errorf("Expected reflected velocity %v, got %v", want, points[0].VX)
	}
}

func TestElasticityLeavesInwardVelocity(t *testing.T) {
	params := DefaultParams()
	bounds := core.Bounds{MinX: 0, MinY: 0, MaxX: 400, MaxY: 400}

	points := []core.Point{{X: 500, Y: 200, VX: -50, Mass: 1}}
	testPhysics(params).ApplyElasticity(points, bounds)

	if points[0].X != 400 {
		t.Errorf("Expected position clamped to 400, got %v", points[0].X)
	}
	if points[0].VX >= 0 {
		t.Errorf("Expected inward velocity preserved (damped only), got %v", points[0].VX)
	}
}

func TestUpdateAdvancesPositions(t *testing.T) {
	params := DefaultParams()
	bounds := core.Bounds{MinX: 0, MinY: 0, MaxX: 400, MaxY: 400}

	points := []core.Point{{X: 10, Y: 10, VX: 60, Mass: 1}}
	testPhysics(params).Update(points, 1.0, bounds)

	want := 10 + 60*params.Damping
	if math.Abs(points[0].X-want) > 1e-9 {
		t.Errorf("Expected X = %v after one tick, got %v", want, points[0].X)
	}
}

func TestUpdateCapsSpeed(t *testing.T) {
	params := DefaultParams()
	params.MaxSpeed = 100
	bounds := core.Bounds{MinX: -10000, MinY: -10000, MaxX: 10000, MaxY: 10000}

	points := []core.Point{{X: 0, Y: 0, VX: 3000, VY: 4000, Mass: 1}}
	testPhysics(params).Update(points, 1.0/60, bounds)

	if speed := math.Hypot(points[0].VX, points[0].VY); speed > 100+1e-9 {
		t.Errorf("Expected speed capped at 100, got %v", speed)
	}
	// Direction survives the cap: 3:4 ratio
	if math.Abs(points[0].VX/points[0].VY-0.75) > 1e-9 {
		t.Errorf("Expected the cap to preserve direction, got (%v, %v)", points[0].VX, points[0].VY)
	}
}

func TestUpdateIgnoresNonPositiveDt(t *testing.T) {
	params := DefaultParams()
	bounds := core.Bounds{MaxX: 400, MaxY: 400}
	points := []core.Point{{X: 10, Y: 10, VX: 60, Mass: 1}}

	testPhysics(params).Update(points, 0, bounds)
	if points[0].X != 10 || points[0].VX != 60 {
		t.Errorf("Expected zero dt to be a no-op, got X = %v, VX = %v", points[0].X, points[0].VX)
	}
}

func TestExplosionKickIsRadial(t *testing.T) {
	params := DefaultParams()
	points := []core.Point{
		{X: 201, Y: 200, Mass: 1},
		{X: 200, Y: 190, Mass: 1},
		{X: 180, Y: 220, Mass: 1},
	}
	testPhysics(params).ApplyExplosion(points, 200, 200, 350)

	kick := 350 * params.MitosisFactor * 0.5
	for i, p := range points {
		dot := p.VX*(p.X-200) + p.VY*(p.Y-200)
		if dot <= 0 {
			t.Errorf("Point %d kicked inward: velocity (%v, %v)", i, p.VX, p.VY)
		}
		if speed := math.Hypot(p.VX, p.VY); math.Abs(speed-kick) > 1e-9 {
			t.Errorf("Point %d speed = %v, want %v", i, speed, kick)
		}
	}
}

func TestExplosionAtEpicenter(t *testing.T) {
	params := DefaultParams()
	points := []core.Point{{X: 200, Y: 200, Mass: 1}}
	testPhysics(params).ApplyExplosion(points, 200, 200, 350)

	if points[0].VX == 0 && points[0].VY == 0 {
		t.Error("Expected a point on the epicenter to be thrown in some direction")
	}
}

func TestRecombinationPull(t *testing.T) {
	params := DefaultParams()
	points := []core.Point{{X: 0, Y: 0, Mass: 1}}
	targets := []core.Sample{{X: 100, Y: -40}}

	testPhysics(params).ApplyRecombination(points, targets)

	if math.Abs(points[0].VX-5) > 1e-9 {
		t.Errorf("Expected VX = 5 (0.05 of the 100px gap), got %v", points[0].VX)
	}
	if math.Abs(points[0].VY+2) > 1e-9 {
		t.Errorf("Expected VY = -2, got %v", points[0].VY)
	}
}

func TestCenterOfMass(t *testing.T) {
	points := []core.Point{
		{X: 0, Y: 0, Mass: 1},
		{X: 4, Y: 0, Mass: 3},
	}
	cx, cy, ok := CenterOfMass(points)
	if !ok {
		t.Fatal("Expected ok for a non-empty arena")
	}
	if math.Abs(cx-3) > 1e-9 || cy != 0 {
		t.Errorf("CenterOfMass = (%v, %v), want (3, 0)", cx, cy)
	}

	if _, _, ok := CenterOfMass(nil); ok {
		t.Error("Expected ok=false for an empty arena")
	}
}

func TestDispersion(t *testing.T) {
	points := []core.Point{
		{X: 1, Y: 1}, {X: -1, Y: 1}, {X: -1, Y: -1}, {X: 1, Y: -1},
	}
	got := Dispersion(points, []int{0, 1, 2, 3})
	want := math.Sqrt2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Dispersion = %v, want %v", got, want)
	}

	if d := Dispersion(points, nil); d != 0 {
		t.Errorf("Expected zero dispersion for no points, got %v", d)
	}
}
