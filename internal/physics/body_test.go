package physics

import "testing"

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"same", a, true},
		{"inside", Rect{X: 1, Y: 1, W: 2, H: 2}, true},
		{"partial", Rect{X: 8, Y: 8, W: 10, H: 10}, true},
		{"touching edge", Rect{X: 10, Y: 0, W: 10, H: 10}, false},
		{"apart", Rect{X: 30, Y: 0, W: 10, H: 10}, false},
		{"empty", Rect{X: 0, Y: 0, W: 0, H: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("reverse Overlaps = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestContactsHonoursMasks(t *testing.T) {
	bird := Body{ID: 0, Rect: Rect{W: 10, H: 10}, Category: CategoryBird}
	bodies := []Body{
		{ID: 1, Rect: Rect{W: 10, H: 10}, Category: CategoryTiki, ContactMask: CategoryBird},
		{ID: 2, Rect: Rect{W: 10, H: 10}, Category: CategoryGround},
		{ID: 3, Rect: Rect{X: 100, W: 10, H: 10}, Category: CategoryTiki, ContactMask: CategoryBird},
	}

	hits := Contacts(bird, bodies)
	if len(hits) != 1 || hits[0].ID != 1 {
		t.Fatalf("hits = %+v, want only body 1", hits)
	}

	bird.ContactMask = CategoryGround | CategoryTiki
	hits = Contacts(bird, bodies)
	if len(hits) != 2 {
		t.Fatalf("hits = %+v, want bodies 1 and 2", hits)
	}
}

func TestInset(t *testing.T) {
	r := Rect{X: 5, Y: 5, W: 10, H: 8}.Inset(2, 1)
	if r.W != 6 || r.H != 6 || r.X != 5 || r.Y != 5 {
		t.Fatalf("Inset = %+v", r)
	}
}
