// Copyright (c) 2019 devblok
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package gfx

import (
	glm "github.com/go-gl/mathgl/mgl32"
)

// Default projection parameters, applied by New when the
// corresponding Configuration fields are left zero.
const (
	DefaultFieldOfView float32 = 90.0
	DefaultNearPlane   float32 = 0.1
	DefaultFarPlane    float32 = 1000.0
)

// Configuration contains the renderer settings
type Configuration struct {

	// ScreenWidth and ScreenHeight size the offscreen scene target.
	// They should match the drawable size of the window the result
	// is composited to.
	ScreenWidth  uint32
	ScreenHeight uint32

	// FieldOfView is the vertical field of view in degrees.
	FieldOfView float32

	// NearPlane and FarPlane bound the projection frustum.
	NearPlane float32
	FarPlane  float32

	// ShaderDirectory overrides the built-in shader sources with
	// files read from the given directory. Empty uses the sources
	// compiled into the binary.
	ShaderDirectory string

	// AssetDirectory is checked first when loading meshes and
	// textures by name. Empty skips the directory lookup.
	AssetDirectory string

	// AssetArchive is a kar archive consulted when a name is not
	// present in AssetDirectory. Empty disables the fallback.
	AssetArchive string
}

// withDefaults fills the zero-valued projection settings.
func (cfg Configuration) withDefaults() Configuration {
	if cfg.FieldOfView == 0 {
		cfg.FieldOfView = DefaultFieldOfView
	}
	if cfg.NearPlane == 0 {
		cfg.NearPlane = DefaultNearPlane
	}
	if cfg.FarPlane == 0 {
		cfg.FarPlane = DefaultFarPlane
	}
	return cfg
}

// projection builds the perspective matrix for the configured
// frustum and screen aspect ratio.
func (cfg Configuration) projection() glm.Mat4 {
	aspect := float32(cfg.ScreenWidth) / float32(cfg.ScreenHeight)
	return glm.Perspective(glm.DegToRad(cfg.FieldOfView), aspect, cfg.NearPlane, cfg.FarPlane)
}
