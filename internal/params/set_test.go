package params

import (
	"testing"
)

func TestSetWithReturnsNewInstance(t *testing.T) {
	base := NewSet()
	withCodec := base.With(VideoCodec, String("libx264"))

	if base.Has(VideoCodec) {
		t.Error("With() mutated the original set")
	}
	if !withCodec.Has(VideoCodec) {
		t.Error("With() did not record the parameter on the new set")
	}

	// Overwriting must not leak into the intermediate instance either
	overwritten := withCodec.With(VideoCodec, String("libvpx-vp9"))
	if got := stringValue(t, withCodec, VideoCodec); got != "libx264" {
		t.Errorf("overwriting With() mutated the intermediate set: got %q", got)
	}
	if got := stringValue(t, overwritten, VideoCodec); got != "libvpx-vp9" {
		t.Errorf("With() did not overwrite the value: got %q", got)
	}
}

func TestSetGetAndHas(t *testing.T) {
	set := NewSet().
		With(CRF, Int(23)).
		With(Overwrite, Bool(true))

	if set.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", set.Len())
	}

	v, ok := set.Get(CRF)
	if !ok {
		t.Fatal("Get(CRF) reported not present")
	}
	if n, _ := v.IntVal(); n != 23 {
		t.Errorf("Get(CRF) = %d, want 23", n)
	}

	if _, ok := set.Get(Preset); ok {
		t.Error("Get() reported an unset parameter as present")
	}
	if set.Has(Preset) {
		t.Error("Has() reported an unset parameter as present")
	}
}

func TestFromMapRejectsUnknownNames(t *testing.T) {
	_, err := FromMap(map[Name]Value{
		Name("bogus_param"): String("x"),
	})
	if err == nil {
		t.Fatal("FromMap() accepted an unknown parameter name")
	}
	if !IsCode(err, ErrCodeInvalidArgument) {
		t.Errorf("FromMap() error code = %v, want %s", err, ErrCodeInvalidArgument)
	}
}

func TestNamesFollowCanonicalOrder(t *testing.T) {
	// Insert in reverse of the canonical order
	set := NewSet().
		With(Overwrite, Bool(true)).
		With(VideoCodec, String("libx264")).
		With(SeekStart, String("00:00:10"))

	got := set.Names()
	want := []Name{SeekStart, VideoCodec, Overwrite}
	if len(got) != len(want) {
		t.Fatalf("Names() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	set := NewSet().With(Preset, String("fast"))

	snap := set.Snapshot()
	snap[Preset] = String("slow")
	snap[CRF] = Int(30)

	if got := stringValue(t, set, Preset); got != "fast" {
		t.Errorf("mutating the snapshot changed the set: got %q", got)
	}
	if set.Has(CRF) {
		t.Error("adding to the snapshot changed the set")
	}
}

func stringValue(t *testing.T, set Set, name Name) string {
	t.Helper()
	v, ok := set.Get(name)
	if !ok {
		t.Fatalf("parameter %s not present", name)
	}
	s, ok := v.StringVal()
	if !ok {
		t.Fatalf("parameter %s is not a string", name)
	}
	return s
}
