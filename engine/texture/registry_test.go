package texture

import (
	"fmt"
	"testing"
)

// fakeUploader records uploads, binds, and releases without touching the GPU.
type fakeUploader struct {
	nextHandle uint32
	uploads    int
	binds      [][2]uint32 // (unit, handle) pairs in bind order
	released   []uint32
	failNext   bool
}

func (f *fakeUploader) Upload(pixels []byte, width, height, channels int) (uint32, error) {
	if f.failNext {
		f.failNext = false
		return 0, fmt.Errorf("upload rejected")
	}
	f.uploads++
	f.nextHandle++
	return f.nextHandle, nil
}

func (f *fakeUploader) Bind(unit int, handle uint32) {
	f.binds = append(f.binds, [2]uint32{uint32(unit), handle})
}

func (f *fakeUploader) Release(handles []uint32) {
	f.released = append(f.released, handles...)
}

func pixels(w, h, channels int) []byte {
	return make([]byte, w*h*channels)
}

func newTestRegistry() (Registry, *fakeUploader) {
	up := &fakeUploader{}
	return NewRegistry(WithUploader(up)), up
}

func TestRegisterDecodedAssignsSlotsInOrder(t *testing.T) {
	r, _ := newTestRegistry()

	tags := []string{"Wood", "Metal", "White"}
	for _, tag := range tags {
		if err := r.RegisterDecoded(tag, pixels(2, 2, 4), 2, 2, 4); err != nil {
			t.Fatalf("RegisterDecoded(%q) error: %v", tag, err)
		}
	}

	for want, tag := range tags {
		got := r.Slot(tag)
		if got != want {
			t.Errorf("Slot(%q) = %d, want %d", tag, got, want)
		}
		if got < 0 || got >= MaxSlots {
			t.Errorf("Slot(%q) = %d, outside [0, %d)", tag, got, MaxSlots)
		}
		if _, ok := r.Handle(tag); !ok {
			t.Errorf("Handle(%q) reported no match", tag)
		}
	}
	if r.Len() != len(tags) {
		t.Errorf("Len() = %d, want %d", r.Len(), len(tags))
	}
}

func TestLookupMissReturnsSentinel(t *testing.T) {
	r, _ := newTestRegistry()

	// Empty registry and populated registry must behave identically.
	if got := r.Slot("Glass"); got != SlotNotFound {
		t.Errorf("Slot() on empty registry = %d, want %d", got, SlotNotFound)
	}
	if _, ok := r.Handle("Glass"); ok {
		t.Error("Handle() on empty registry reported a match")
	}

	if err := r.RegisterDecoded("Wood", pixels(1, 1, 3), 1, 1, 3); err != nil {
		t.Fatalf("RegisterDecoded() error: %v", err)
	}
	if got := r.Slot("Glass"); got != SlotNotFound {
		t.Errorf("Slot() on populated registry = %d, want %d", got, SlotNotFound)
	}
}

func TestUnsupportedChannelCountRejected(t *testing.T) {
	r, up := newTestRegistry()

	for _, channels := range []int{1, 2, 5} {
		err := r.RegisterDecoded("Gray", pixels(2, 2, channels), 2, 2, channels)
		if err == nil {
			t.Fatalf("RegisterDecoded() accepted %d-channel data", channels)
		}
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d after rejected registrations, want 0", r.Len())
	}
	if up.uploads != 0 {
		t.Errorf("uploader saw %d uploads for rejected data, want 0", up.uploads)
	}
}

func TestDuplicateTagRejected(t *testing.T) {
	r, _ := newTestRegistry()
	if err := r.RegisterDecoded("Wood", pixels(1, 1, 3), 1, 1, 3); err != nil {
		t.Fatalf("RegisterDecoded() error: %v", err)
	}
	if err := r.RegisterDecoded("Wood", pixels(1, 1, 3), 1, 1, 3); err == nil {
		t.Fatal("RegisterDecoded() accepted a duplicate tag")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d after rejected duplicate, want 1", r.Len())
	}
}

func TestCapacityEnforced(t *testing.T) {
	r, _ := newTestRegistry()
	for i := 0; i < MaxSlots; i++ {
		tag := fmt.Sprintf("tex-%02d", i)
		if err := r.RegisterDecoded(tag, pixels(1, 1, 4), 1, 1, 4); err != nil {
			t.Fatalf("RegisterDecoded(%q) error: %v", tag, err)
		}
	}
	if err := r.RegisterDecoded("one-too-many", pixels(1, 1, 4), 1, 1, 4); err == nil {
		t.Fatal("RegisterDecoded() accepted a 17th texture")
	}
	if r.Len() != MaxSlots {
		t.Errorf("Len() = %d, want %d", r.Len(), MaxSlots)
	}
}

func TestUploadFailureRegistersNothing(t *testing.T) {
	r, up := newTestRegistry()
	up.failNext = true
	if err := r.RegisterDecoded("Wood", pixels(1, 1, 4), 1, 1, 4); err == nil {
		t.Fatal("RegisterDecoded() succeeded despite upload failure")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d after failed upload, want 0", r.Len())
	}
	// The slot must still go to the next successful registration.
	if err := r.RegisterDecoded("Wood", pixels(1, 1, 4), 1, 1, 4); err != nil {
		t.Fatalf("RegisterDecoded() error: %v", err)
	}
	if got := r.Slot("Wood"); got != 0 {
		t.Errorf("Slot(\"Wood\") = %d, want 0", got)
	}
}

func TestBindAllBindsUnitsInSlotOrder(t *testing.T) {
	r, up := newTestRegistry()
	if err := r.RegisterDecoded("Wood", pixels(1, 1, 4), 1, 1, 4); err != nil {
		t.Fatalf("RegisterDecoded() error: %v", err)
	}
	if err := r.RegisterDecoded("Metal", pixels(1, 1, 4), 1, 1, 4); err != nil {
		t.Fatalf("RegisterDecoded() error: %v", err)
	}

	woodHandle, _ := r.Handle("Wood")
	metalHandle, _ := r.Handle("Metal")

	r.BindAll()

	want := [][2]uint32{{0, woodHandle}, {1, metalHandle}}
	if len(up.binds) != len(want) {
		t.Fatalf("BindAll() issued %d binds, want %d", len(up.binds), len(want))
	}
	for i := range want {
		if up.binds[i] != want[i] {
			t.Errorf("bind %d = unit %d handle %d, want unit %d handle %d",
				i, up.binds[i][0], up.binds[i][1], want[i][0], want[i][1])
		}
	}
}

func TestReleaseAllClearsRegistry(t *testing.T) {
	r, up := newTestRegistry()
	if err := r.RegisterDecoded("Wood", pixels(1, 1, 4), 1, 1, 4); err != nil {
		t.Fatalf("RegisterDecoded() error: %v", err)
	}
	handle, _ := r.Handle("Wood")

	r.ReleaseAll()

	if r.Len() != 0 {
		t.Errorf("Len() = %d after ReleaseAll, want 0", r.Len())
	}
	if got := r.Slot("Wood"); got != SlotNotFound {
		t.Errorf("Slot() after ReleaseAll = %d, want %d", got, SlotNotFound)
	}
	if len(up.released) != 1 || up.released[0] != handle {
		t.Errorf("released handles = %v, want [%d]", up.released, handle)
	}

	// Releasing an already empty registry is a no-op.
	r.ReleaseAll()
	if len(up.released) != 1 {
		t.Errorf("ReleaseAll() on empty registry released handles: %v", up.released)
	}
}

func TestRegisterMissingFileFails(t *testing.T) {
	r, up := newTestRegistry()
	if err := r.Register("testdata/does-not-exist.png", "Wood"); err == nil {
		t.Fatal("Register() of a missing file succeeded")
	}
	if r.Len() != 0 || up.uploads != 0 {
		t.Errorf("registry changed after failed Register: len=%d uploads=%d", r.Len(), up.uploads)
	}
}
