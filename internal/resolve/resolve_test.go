package resolve

import (
	"path/filepath"
	"testing"
)

func load(t *testing.T) *Resolver {
	t.Helper()

	r, err := Load(filepath.Join("testdata", "consts"), "consts")
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestResolver_Constant(t *testing.T) {
	r := load(t)

	tests := []struct {
		name  string
		want  string
		found bool
	}{
		{
			"PLAIN",
			"0",
			true,
		},
		{
			"FRAMED",
			"1",
			true,
		},
		{
			"NEG",
			"-1",
			true,
		},
		{
			"missing",
			"",
			false,
		},
		{
			"Greeting", // not an integer
			"",
			false,
		},
		{
			"NotAConstant",
			"",
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Constant(tt.name)
			if tt.found != (err == nil) {
				t.Fatalf("Constant(%q) error = %v, want found=%v", tt.name, err, tt.found)
			}
			if got != tt.want {
				t.Errorf("Constant(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestLoad_WrongPackageName(t *testing.T) {
	if _, err := Load(filepath.Join("testdata", "consts"), "nosuchpackage"); err == nil {
		t.Error("Load() succeeded, want error for mismatched package name")
	}
}
