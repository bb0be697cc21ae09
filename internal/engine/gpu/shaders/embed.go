// Package shaders embeds the GLSL sources for the scene and skybox programs.
package shaders

import _ "embed"

// SceneVertexShader transforms mesh vertices and writes the clip distance.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader shades with the sun, the spot light, the material
// maps and optional rainbow colouring.
//
//go:embed scene.frag
var SceneFragmentShader string

// SkyboxVertexShader projects the unit cube around the camera.
//
//go:embed skybox.vert
var SkyboxVertexShader string

// SkyboxFragmentShader samples the cube map.
//
//go:embed skybox.frag
var SkyboxFragmentShader string
