package material

import "testing"

func TestFindOnEmptyRegistry(t *testing.T) {
	r := NewRegistry()
	if _, ok := r.Find("Wood"); ok {
		t.Error("Find() on empty registry reported a match")
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d, want 0", r.Len())
	}
}

func TestDefineAndFind(t *testing.T) {
	r := NewRegistry()

	defs := []Material{
		NewMaterial(
			WithTag("Paper"),
			WithAmbientColor(0.8, 0.8, 0.8),
			WithAmbientStrength(0.2),
			WithDiffuseColor(0.9, 0.9, 0.9),
			WithSpecularColor(0.05, 0.05, 0.05),
			WithShininess(10),
		),
		NewMaterial(
			WithTag("Wood"),
			WithAmbientColor(0.2, 0.1, 0.1),
			WithAmbientStrength(0.3),
			WithDiffuseColor(0.6, 0.4, 0.2),
			WithSpecularColor(0.1, 0.1, 0.1),
			WithShininess(25),
		),
	}
	for _, m := range defs {
		if err := r.Define(m); err != nil {
			t.Fatalf("Define(%q) error: %v", m.Tag(), err)
		}
	}

	wood, ok := r.Find("Wood")
	if !ok {
		t.Fatal("Find(\"Wood\") reported no match")
	}
	if wood.Shininess() != 25 {
		t.Errorf("Wood shininess = %v, want 25", wood.Shininess())
	}
	if wood.DiffuseColor() != [3]float32{0.6, 0.4, 0.2} {
		t.Errorf("Wood diffuse = %v, want [0.6 0.4 0.2]", wood.DiffuseColor())
	}

	if _, ok := r.Find("Glass"); ok {
		t.Error("Find(\"Glass\") reported a match for an undefined tag")
	}
}

func TestDefineDuplicateRejected(t *testing.T) {
	r := NewRegistry()
	if err := r.Define(NewMaterial(WithTag("Metal"), WithShininess(80))); err != nil {
		t.Fatalf("Define() error: %v", err)
	}
	if err := r.Define(NewMaterial(WithTag("Metal"), WithShininess(1))); err == nil {
		t.Fatal("Define() accepted a duplicate tag")
	}

	// The original record must be untouched.
	m, ok := r.Find("Metal")
	if !ok {
		t.Fatal("Find(\"Metal\") reported no match after rejected duplicate")
	}
	if m.Shininess() != 80 {
		t.Errorf("Find(\"Metal\") after rejected duplicate = %v shininess, want 80", m.Shininess())
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestDefineRejectsEmptyTag(t *testing.T) {
	r := NewRegistry()
	if err := r.Define(NewMaterial()); err == nil {
		t.Fatal("Define() accepted a material with no tag")
	}
	if err := r.Define(nil); err == nil {
		t.Fatal("Define() accepted a nil material")
	}
}

func TestTagsPreserveDefinitionOrder(t *testing.T) {
	r := NewRegistry()
	for _, tag := range []string{"Paper", "Wood", "Plastic", "Metal"} {
		if err := r.Define(NewMaterial(WithTag(tag))); err != nil {
			t.Fatalf("Define(%q) error: %v", tag, err)
		}
	}
	got := r.Tags()
	want := []string{"Paper", "Wood", "Plastic", "Metal"}
	if len(got) != len(want) {
		t.Fatalf("Tags() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Tags() = %v, want %v", got, want)
		}
	}
}

func TestDefaultMaterialIsNeutral(t *testing.T) {
	d := Default()
	if d.AmbientColor() != [3]float32{1, 1, 1} || d.AmbientStrength() != 1 {
		t.Errorf("Default() ambient = %v/%v, want white at full strength", d.AmbientColor(), d.AmbientStrength())
	}
	if d.SpecularColor() != [3]float32{0, 0, 0} {
		t.Errorf("Default() specular = %v, want black", d.SpecularColor())
	}
}
