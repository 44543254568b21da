package content

import (
	"errors"
	"reflect"
	"testing"
)

func testPage() CityPage {
	return CityPage{
		ID:     "pune",
		Name:   "Pune",
		Layout: []string{"hero", "trust", "faq"},
		Testimonials: []Testimonial{
			{Text: "one", Author: "A", Rating: 5},
			{Text: "two", Author: "B", Rating: 4},
		},
	}
}

func TestMoveSection(t *testing.T) {
	tests := []struct {
		name  string
		index int
		dir   Direction
		want  []string
		moved bool
	}{
		{"up from middle", 1, Up, []string{"trust", "hero", "faq"}, true},
		{"down from middle", 1, Down, []string{"hero", "faq", "trust"}, true},
		{"up from top", 0, Up, []string{"hero", "trust", "faq"}, false},
		{"down from bottom", 2, Down, []string{"hero", "trust", "faq"}, false},
		{"out of range", 7, Up, []string{"hero", "trust", "faq"}, false},
		{"negative", -1, Down, []string{"hero", "trust", "faq"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := testPage()
			got, moved := MoveSection(p, tt.index, tt.dir)
			if moved != tt.moved {
				t.Errorf("moved = %v, want %v", moved, tt.moved)
			}
			if !reflect.DeepEqual(got.Layout, tt.want) {
				t.Errorf("layout = %v, want %v", got.Layout, tt.want)
			}
			if !reflect.DeepEqual(p.Layout, []string{"hero", "trust", "faq"}) {
				t.Errorf("input layout mutated: %v", p.Layout)
			}
		})
	}
}

func TestToggleSection(t *testing.T) {
	p := testPage()

	hidden := ToggleSection(p, "trust")
	if hidden.Visible("trust") {
		t.Errorf("trust should be hidden: %v", hidden.Layout)
	}
	if !reflect.DeepEqual(hidden.Layout, []string{"hero", "faq"}) {
		t.Errorf("layout = %v", hidden.Layout)
	}

	shown := ToggleSection(hidden, "trust")
	if !reflect.DeepEqual(shown.Layout, []string{"hero", "faq", "trust"}) {
		t.Errorf("re-shown section should be appended at the end: %v", shown.Layout)
	}

	dup := p
	dup.Layout = []string{"faq", "hero", "faq"}
	if got := ToggleSection(dup, "faq"); !reflect.DeepEqual(got.Layout, []string{"hero"}) {
		t.Errorf("all occurrences should be removed: %v", got.Layout)
	}
	if !p.Visible("trust") {
		t.Error("input page mutated")
	}
}

func TestSetHeroField(t *testing.T) {
	p := testPage()
	got, err := SetHeroField(p, "pillText", "Booking now")
	if err != nil {
		t.Fatalf("SetHeroField failed: %v", err)
	}
	if got.Hero.PillText != "Booking now" {
		t.Errorf("PillText = %q", got.Hero.PillText)
	}
	if _, err := SetHeroField(p, "color", "red"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown field err = %v, want ErrInvalidArgument", err)
	}
}

func TestTestimonialEdits(t *testing.T) {
	p := testPage()

	added := AddTestimonial(p)
	if len(added.Testimonials) != 3 {
		t.Fatalf("len = %d, want 3", len(added.Testimonials))
	}
	want := Testimonial{Text: "New Testimonial", Author: "Anonymous", Rating: 5, Location: "Pune"}
	if added.Testimonials[0] != want {
		t.Errorf("new testimonial = %+v, want %+v", added.Testimonials[0], want)
	}

	removed, err := RemoveTestimonial(added, 1)
	if err != nil {
		t.Fatalf("RemoveTestimonial failed: %v", err)
	}
	if len(removed.Testimonials) != 2 || removed.Testimonials[1].Text != "two" {
		t.Errorf("after remove: %+v", removed.Testimonials)
	}
	if added.Testimonials[1].Text != "one" {
		t.Error("RemoveTestimonial mutated its input")
	}

	updated, err := UpdateTestimonial(p, 0, Testimonial{Text: "edited", Author: "Z", Rating: 3})
	if err != nil {
		t.Fatalf("UpdateTestimonial failed: %v", err)
	}
	if updated.Testimonials[0].Text != "edited" || p.Testimonials[0].Text != "one" {
		t.Error("UpdateTestimonial should edit a copy")
	}

	if _, err := RemoveTestimonial(p, 5); !errors.Is(err, ErrNotFound) {
		t.Errorf("out of range remove err = %v, want ErrNotFound", err)
	}
	if _, err := UpdateTestimonial(p, -1, Testimonial{}); !errors.Is(err, ErrNotFound) {
		t.Errorf("out of range update err = %v, want ErrNotFound", err)
	}
}

func TestSetGlobalField(t *testing.T) {
	g := DefaultGlobal()
	got, err := SetGlobalField(g, "robotsTxt", "User-agent: *\nDisallow: /admin")
	if err != nil {
		t.Fatalf("SetGlobalField failed: %v", err)
	}
	if got.RobotsTxt != "User-agent: *\nDisallow: /admin" {
		t.Errorf("RobotsTxt = %q", got.RobotsTxt)
	}
	if g.RobotsTxt == got.RobotsTxt {
		t.Error("input config mutated")
	}
	if _, err := SetGlobalField(g, "bookings", "x"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}
