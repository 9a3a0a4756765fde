package tracer

import (
	"math"
	"testing"

	"github.com/lumenray/core/scene"
	"github.com/lumenray/core/scene/compiler"
	"github.com/lumenray/core/types"
)

func singleTriangleScene() *scene.Scene {
	sc := scene.NewScene()
	matIdx := sc.AddMaterial(scene.NewMaterial(types.Vec4{1, 1, 1, 1}))
	tri := scene.NewTriangle([3]types.Vec3{
		{-1, 0, 0},
		{1, 0, 0},
		{0, 1, 0},
	})
	if _, err := sc.AddTriangle(tri, scene.TriangleExt{MaterialIndex: matIdx}); err != nil {
		panic(err)
	}
	return sc
}

func TestTraceSingleTriangleHit(t *testing.T) {
	sc := singleTriangleScene()
	nodes, err := compiler.Compile(sc)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	ray := types.NewRay(types.Vec3{0, 0.25, -1}, types.Vec3{0, 0, 1})
	Trace(&ray, nodes, sc.Triangles)

	if ray.Hit.PrimitiveIndex != 0 {
		t.Fatalf("expected primitive index 0, got %d", ray.Hit.PrimitiveIndex)
	}
	if math.Abs(float64(ray.Hit.Depth-1.0)) > 1e-3 {
		t.Fatalf("expected depth ~= 1.0, got %f", ray.Hit.Depth)
	}
}

func TestTraceMissReturnsInfiniteDepth(t *testing.T) {
	sc := singleTriangleScene()
	nodes, err := compiler.Compile(sc)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	dir := types.Vec3{1, 1, 1}
	ray := types.NewRay(types.Vec3{1000, 1000, 1000}, dir)
	Trace(&ray, nodes, sc.Triangles)

	if ray.Hit.Depth < types.InfHit {
		t.Fatalf("expected a miss (depth == InfHit), got depth %f", ray.Hit.Depth)
	}
	if ray.Hit.PrimitiveIndex != -1 {
		t.Fatalf("expected primitive index -1 on a miss, got %d", ray.Hit.PrimitiveIndex)
	}
}

func TestTraceNearerPrimitiveOccludesFarther(t *testing.T) {
	sc := scene.NewScene()
	matIdx := sc.AddMaterial(scene.NewMaterial(types.Vec4{1, 1, 1, 1}))

	near := scene.NewTriangle([3]types.Vec3{{-1, -1, 1}, {1, -1, 1}, {0, 1, 1}})
	far := scene.NewTriangle([3]types.Vec3{{-1, -1, -1}, {1, -1, -1}, {0, 1, -1}})

	if _, err := sc.AddTriangle(near, scene.TriangleExt{MaterialIndex: matIdx}); err != nil {
		t.Fatal(err)
	}
	if _, err := sc.AddTriangle(far, scene.TriangleExt{MaterialIndex: matIdx}); err != nil {
		t.Fatal(err)
	}

	nodes, err := compiler.Compile(sc)
	if err != nil {
		t.Fatalf("compile failed: %v", err)
	}

	ray := types.NewRay(types.Vec3{0, 0, 3}, types.Vec3{0, 0, -1})
	Trace(&ray, nodes, sc.Triangles)

	if ray.Hit.Depth >= types.InfHit {
		t.Fatalf("expected a hit")
	}

	hitTriangle := sc.Triangles[ray.Hit.PrimitiveIndex]
	if hitTriangle.Positions[0][2] != near.Positions[0][2] {
		t.Fatalf("expected the nearer triangle to occlude the farther one")
	}
}

func TestSlabAABBHandlesZeroDirectionComponent(t *testing.T) {
	box := types.AABB{Min: types.Vec4{-1, -1, -1, 0}, Max: types.Vec4{1, 1, 1, 0}}
	ray := types.NewRay(types.Vec3{0, 0, -5}, types.Vec3{0, 0, 1})
	// direction has zero X and Y components; InvDir picks up signed infinities.
	ray.Hit.Depth = types.InfHit

	tmin, hit := slabAABB(ray, box)
	if !hit {
		t.Fatalf("expected ray with zero-valued direction components to still hit the box")
	}
	if math.IsNaN(float64(tmin)) {
		t.Fatalf("slab test must never produce NaN")
	}
}

func TestSlabAABBGrazeIsConsistent(t *testing.T) {
	box := types.AABB{Min: types.Vec4{-1, -1, -1, 0}, Max: types.Vec4{1, 1, 1, 0}}
	ray := types.NewRay(types.Vec3{-1, 1, -5}, types.Vec3{0, 0, 1})
	ray.Hit.Depth = types.InfHit

	_, hit1 := slabAABB(ray, box)
	_, hit2 := slabAABB(ray, box)
	if hit1 != hit2 {
		t.Fatalf("grazing ray/AABB test must be deterministic across calls")
	}
}
