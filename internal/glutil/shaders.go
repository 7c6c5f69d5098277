package glutil

// SceneVertexShader transforms by the two matrices of a scene graph draw
// and passes the world space normal on.
var SceneVertexShader = `
#version 430 core

layout(location = 0) in vec3 position;
layout(location = 1) in vec4 color;
layout(location = 2) in vec3 normal;

layout(location = 3) uniform mat4 mvp;   // view-projection * model
layout(location = 4) uniform mat4 model; // model alone

out vec4 fragmentColor;
out vec3 fragmentNormal;

void main() {
	fragmentColor = color;
	fragmentNormal = normalize(mat3(model) * normal);
	gl_Position = mvp * vec4(position, 1);
}
`

// SceneFragmentShader lights with one fixed directional light.
var SceneFragmentShader = `
#version 430 core

in vec4 fragmentColor;
in vec3 fragmentNormal;

out vec4 outputColor;

const vec3 lightDirection = normalize(vec3(0.8, -0.5, 0.6));

void main() {
	float diffuse = max(0, dot(normalize(fragmentNormal), -lightDirection));
	outputColor = vec4(fragmentColor.rgb * (0.25 + 0.75 * diffuse), fragmentColor.a);
}
`

// FlatVertexShader ignores normals.
var FlatVertexShader = `
#version 430 core

layout(location = 0) in vec3 position;
layout(location = 1) in vec4 color;

layout(location = 3) uniform mat4 mvp;

out vec4 fragmentColor;

void main() {
	fragmentColor = color;
	gl_Position = mvp * vec4(position, 1);
}
`

// FlatFragmentShader outputs the interpolated vertex color.
var FlatFragmentShader = `
#version 430 core

in vec4 fragmentColor;

out vec4 outputColor;

void main() {
	outputColor = fragmentColor;
}
`
