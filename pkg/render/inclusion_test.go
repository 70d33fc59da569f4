package render_test

import (
	"testing"

	"github.com/goliatone/go-subfiles/pkg/render"
)

func TestInclusionBlock(t *testing.T) {
	got := render.InclusionBlock("subfiles", []string{"b", "a", "v1.2"})
	want := "\\subfile{subfiles/b}\n\\subfile{subfiles/a}\n\\subfile{subfiles/v1.2}\n"
	if got != want {
		t.Fatalf("block mismatch\nwant: %q\n got: %q", want, got)
	}
}

func TestInclusionBlock_ForwardSlashOnly(t *testing.T) {
	got := render.InclusionBlock("parts/ch/", []string{"x"})
	if got != "\\subfile{parts/ch/x}\n" {
		t.Fatalf("unexpected block %q", got)
	}
}

func TestInclusionBlock_Empty(t *testing.T) {
	if got := render.InclusionBlock("subfiles", nil); got != "" {
		t.Fatalf("expected empty block, got %q", got)
	}
}

func TestSubstitute(t *testing.T) {
	cases := []struct {
		name, tmpl, token, replacement, want string
	}{
		{name: "single", tmpl: "a [T] b", token: "[T]", replacement: "x", want: "a x b"},
		{name: "first only", tmpl: "[T][T]", token: "[T]", replacement: "x", want: "x[T]"},
		{name: "absent", tmpl: "a b", token: "[T]", replacement: "x", want: "a b"},
		{name: "empty token", tmpl: "a b", token: "", replacement: "x", want: "a b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := render.Substitute(tc.tmpl, tc.token, tc.replacement); got != tc.want {
				t.Fatalf("want %q got %q", tc.want, got)
			}
		})
	}
}
