package renderer

import (
	"testing"

	"github.com/lumenray/core/scene"
	"github.com/lumenray/core/types"
)

func newTestScene() *scene.Scene {
	return scene.BuiltinTriangle()
}

func TestDrawRequiresSceneAndSize(t *testing.T) {
	r := New(Options{})
	if err := r.Draw(); err != ErrSceneNotDefined {
		t.Fatalf("expected ErrSceneNotDefined before any scene is loaded, got %v", err)
	}

	if err := r.LoadScene(newTestScene()); err != nil {
		t.Fatalf("unexpected LoadScene error: %v", err)
	}
	if err := r.Draw(); err != ErrResizeZero {
		t.Fatalf("expected ErrResizeZero before a resize, got %v", err)
	}
}

func TestDrawMissProducesBackgroundColor(t *testing.T) {
	sc := scene.NewScene()
	sc.AddMaterial(scene.NewMaterial(types.Vec4{1, 0, 0, 1}))
	sc.Camera = scene.NewCamera(types.IdentTRS(), 0.5)

	tri := scene.NewTriangle([3]types.Vec3{{100, 100, -10}, {101, 100, -10}, {100, 101, -10}})
	if _, err := sc.AddTriangle(tri, scene.TriangleExt{MaterialIndex: 0}); err != nil {
		t.Fatal(err)
	}

	r := New(Options{NumWorkers: 2})
	if err := r.Resize(8, 8); err != nil {
		t.Fatal(err)
	}
	if err := r.LoadScene(sc); err != nil {
		t.Fatal(err)
	}
	if err := r.Draw(); err != nil {
		t.Fatal(err)
	}

	for _, p := range r.Framebuffer().Pixels {
		if p != PackRGBA8(sc.BgColor) {
			t.Fatalf("expected every pixel to be the background color on a total miss, got %#08x", p)
		}
		if p != 0x000000FF {
			t.Fatalf("expected a miss to pack to opaque black (0x000000FF) per spec §4.F, got %#08x", p)
		}
	}
}

func TestDrawResizeProducesMatchingBuffer(t *testing.T) {
	sc := newTestScene()

	r := New(Options{})
	if err := r.Resize(64, 64); err != nil {
		t.Fatal(err)
	}
	if err := r.LoadScene(sc); err != nil {
		t.Fatal(err)
	}
	if err := r.Draw(); err != nil {
		t.Fatal(err)
	}

	if err := r.Resize(128, 96); err != nil {
		t.Fatal(err)
	}
	if err := r.Draw(); err != nil {
		t.Fatal(err)
	}
	if len(r.Framebuffer().Pixels) != 128*96 {
		t.Fatalf("expected a 128x96 framebuffer after resize, got %d pixels", len(r.Framebuffer().Pixels))
	}

	fresh := New(Options{})
	if err := fresh.Resize(128, 96); err != nil {
		t.Fatal(err)
	}
	if err := fresh.LoadScene(newTestScene()); err != nil {
		t.Fatal(err)
	}
	if err := fresh.Draw(); err != nil {
		t.Fatal(err)
	}

	for i := range r.Framebuffer().Pixels {
		if r.Framebuffer().Pixels[i] != fresh.Framebuffer().Pixels[i] {
			t.Fatalf("pixel %d differs between resized and freshly initialized renderers: %#08x vs %#08x",
				i, r.Framebuffer().Pixels[i], fresh.Framebuffer().Pixels[i])
		}
	}
}

func TestDrawIsDeterministicAcrossWorkerCounts(t *testing.T) {
	var reference []uint32

	for _, workers := range []int{1, 2, 4, 8} {
		r := New(Options{NumWorkers: workers})
		if err := r.Resize(48, 32); err != nil {
			t.Fatal(err)
		}
		if err := r.LoadScene(newTestScene()); err != nil {
			t.Fatal(err)
		}
		if err := r.Draw(); err != nil {
			t.Fatal(err)
		}

		pixels := append([]uint32(nil), r.Framebuffer().Pixels...)
		if reference == nil {
			reference = pixels
			continue
		}
		for i := range pixels {
			if pixels[i] != reference[i] {
				t.Fatalf("worker count %d produced pixel %d = %#08x, want %#08x (from 1 worker)",
					workers, i, pixels[i], reference[i])
			}
		}
	}
}

func TestDrawIsPureAcrossRepeatedCalls(t *testing.T) {
	r := New(Options{})
	if err := r.Resize(32, 32); err != nil {
		t.Fatal(err)
	}
	if err := r.LoadScene(newTestScene()); err != nil {
		t.Fatal(err)
	}

	if err := r.Draw(); err != nil {
		t.Fatal(err)
	}
	first := append([]uint32(nil), r.Framebuffer().Pixels...)

	if err := r.Draw(); err != nil {
		t.Fatal(err)
	}
	second := r.Framebuffer().Pixels

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("repeated Draw calls without mutation must be pure; pixel %d changed from %#08x to %#08x",
				i, first[i], second[i])
		}
	}
}

func TestSceneSwapAndReloadIsIdempotent(t *testing.T) {
	sceneA := scene.BuiltinTriangle()
	sceneB := scene.BuiltinCheckerboard()

	r := New(Options{})
	if err := r.Resize(40, 40); err != nil {
		t.Fatal(err)
	}

	if err := r.LoadScene(sceneA); err != nil {
		t.Fatal(err)
	}
	if err := r.Draw(); err != nil {
		t.Fatal(err)
	}
	first := append([]uint32(nil), r.Framebuffer().Pixels...)

	if err := r.LoadScene(sceneB); err != nil {
		t.Fatal(err)
	}
	if err := r.Draw(); err != nil {
		t.Fatal(err)
	}

	if err := r.LoadScene(sceneA); err != nil {
		t.Fatal(err)
	}
	if err := r.Draw(); err != nil {
		t.Fatal(err)
	}
	third := r.Framebuffer().Pixels

	for i := range first {
		if first[i] != third[i] {
			t.Fatalf("reloading scene A must reproduce its original buffer; pixel %d differs", i)
		}
	}
}
