// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

var shaderNames = []string{"scene.vert", "scene.frag", "composite.vert", "composite.frag"}

func TestBuiltinShaderSources(t *testing.T) {
	for _, name := range shaderNames {
		src, err := loadShaderSource("", name)
		if err != nil {
			t.Fatalf("%s: %s", name, err.Error())
		}
		if !strings.HasPrefix(src, "#version 150") {
			t.Errorf("%s: does not target GLSL 150", name)
		}
	}
}

func TestShaderSourceOverride(t *testing.T) {
	dir, err := ioutil.TempDir("", "shaders")
	if err != nil {
		t.Fatal(err.Error())
	}
	defer os.RemoveAll(dir)

	want := "#version 150\nvoid main() {}\n"
	if err := ioutil.WriteFile(filepath.Join(dir, "scene.vert"), []byte(want), 0644); err != nil {
		t.Fatal(err.Error())
	}

	got, err := loadShaderSource(dir, "scene.vert")
	if err != nil {
		t.Fatal(err.Error())
	}
	if got != want {
		t.Fatalf("expected the override source, got %q", got)
	}

	// A configured override directory is authoritative, missing
	// files do not fall back to the built-ins.
	if _, err := loadShaderSource(dir, "composite.vert"); err == nil {
		t.Fatal("expected an error for a shader missing from the override directory")
	}
}
