package seqcmd

import (
	"testing"

	"github.com/vipcxj/steprange/internal/steprange"
)

func TestRender_Formats(t *testing.T) {
	r := steprange.Must(steprange.New(10, 0, -3))
	empty := steprange.Until(0)

	tests := []struct {
		name    string
		seq     steprange.Range[int]
		formats []string
		want    string
	}{
		{"default", r, nil, "10\n7\n4\n1"},
		{"newline", r, []string{"newline"}, "10\n7\n4\n1"},
		{"comma", r, []string{"comma"}, "10,7,4,1"},
		{"space", r, []string{"space"}, "10 7 4 1"},
		{"comma_wins", r, []string{"space", "newline", "comma"}, "10,7,4,1"},
		{"newline_over_space", r, []string{"space", "newline"}, "10\n7\n4\n1"},
		{"env_style_list", r, []string{"space,newline"}, "10\n7\n4\n1"},
		{"json", r, []string{"json"}, "[10,7,4,1]"},
		{"yaml", r, []string{"yaml"}, "- 10\n- 7\n- 4\n- 1"},
		{"empty_plain", empty, []string{"comma"}, ""},
		{"empty_json", empty, []string{"json"}, "[]"},
		{"empty_yaml", empty, []string{"yaml"}, "[]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Render[int](tc.seq, tc.formats)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Render(%v, %v) = %q, want %q", tc.seq, tc.formats, got, tc.want)
			}
		})
	}
}

func TestRender_Floats(t *testing.T) {
	r := steprange.Must(steprange.New(0.0, 2.0, 0.5))
	got, err := Render[float64](r, []string{"space"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "0 0.5 1 1.5"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	got, err = Render[float64](r, []string{"json"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := "[0,0.5,1,1.5]"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestNormalizeFormats_Errors(t *testing.T) {
	errCases := [][]string{
		{"xml"},
		{"json", "comma"},
		{"comma", "yaml"},
		{"json,space"},
	}
	for _, formats := range errCases {
		if _, err := NormalizeFormats(formats); err == nil {
			t.Fatalf("NormalizeFormats(%v) expected error, got nil", formats)
		}
	}
}
