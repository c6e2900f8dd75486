package renderer

// Ocean particles: size-attenuated, round, additive, fogged.
const oceanVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;

uniform mat4 uView;
uniform mat4 uProj;
uniform float uSize;
uniform float uScale;

out float vDepth;

void main() {
	vec4 mvPos = uView * vec4(aPos, 1.0);
	gl_Position = uProj * mvPos;
	gl_PointSize = uSize * (uScale / -mvPos.z);
	vDepth = -mvPos.z;
}
`

const oceanFragmentShader = `
#version 410 core

in float vDepth;

uniform vec3 uColor;
uniform float uOpacity;
uniform vec3 uFogColor;
uniform float uFogNear;
uniform float uFogFar;

out vec4 FragColor;

void main() {
	vec2 c = gl_PointCoord - vec2(0.5);
	if (dot(c, c) > 0.25) {
		discard;
	}
	float fog = clamp((vDepth - uFogNear) / (uFogFar - uFogNear), 0.0, 1.0);
	// Additive blending: fading toward the fog colour means fading out.
	FragColor = vec4(mix(uColor, uFogColor, fog), uOpacity * (1.0 - fog));
}
`

// Meshes: ambient + hemisphere + two directional lights + one point light.
const meshVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aNormal;

uniform mat4 uModel;
uniform mat3 uNormalMat;
uniform mat4 uView;
uniform mat4 uProj;

out vec3 vWorldPos;
out vec3 vNormal;
out float vDepth;

void main() {
	vec4 world = uModel * vec4(aPos, 1.0);
	vec4 mvPos = uView * world;
	gl_Position = uProj * mvPos;
	vWorldPos = world.xyz;
	vNormal = normalize(uNormalMat * aNormal);
	vDepth = -mvPos.z;
}
`

const meshFragmentShader = `
#version 410 core

in vec3 vWorldPos;
in vec3 vNormal;
in float vDepth;

uniform vec3 uCameraPos;
uniform vec3 uBaseColor;
uniform float uRoughness;
uniform float uMetalness;

uniform vec3 uAmbient;
uniform vec3 uHemiSky;
uniform vec3 uHemiGround;
uniform vec3 uKeyDir;
uniform vec3 uKeyColor;
uniform vec3 uFillDir;
uniform vec3 uFillColor;
uniform vec3 uAccentPos;
uniform vec3 uAccentColor;
uniform float uAccentRange;

uniform vec3 uFogColor;
uniform float uFogNear;
uniform float uFogFar;

out vec4 FragColor;

vec3 directional(vec3 n, vec3 v, vec3 l, vec3 color, float shininess) {
	float diff = max(dot(n, l), 0.0);
	vec3 h = normalize(l + v);
	float spec = pow(max(dot(n, h), 0.0), shininess) * uMetalness;
	return color * (diff * (1.0 - 0.5 * uMetalness) + spec);
}

void main() {
	vec3 n = normalize(vNormal);
	if (!gl_FrontFacing) {
		n = -n;
	}
	vec3 v = normalize(uCameraPos - vWorldPos);
	float shininess = mix(128.0, 4.0, uRoughness);

	vec3 light = uAmbient * 0.3;
	light += mix(uHemiGround, uHemiSky, 0.5 * n.y + 0.5) * 0.4;
	light += directional(n, v, normalize(uKeyDir), uKeyColor, shininess);
	light += directional(n, v, normalize(uFillDir), uFillColor, shininess);

	vec3 toAccent = uAccentPos - vWorldPos;
	float d = length(toAccent);
	float falloff = uAccentRange > 0.0 ? pow(clamp(1.0 - d / uAccentRange, 0.0, 1.0), 2.0) : 1.0;
	light += directional(n, v, toAccent / max(d, 1e-4), uAccentColor, shininess) * falloff;

	vec3 color = uBaseColor * light;
	// ACES filmic approximation
	color *= 1.2;
	color = clamp((color * (2.51 * color + 0.03)) / (color * (2.43 * color + 0.59) + 0.14), 0.0, 1.0);

	float fog = clamp((vDepth - uFogNear) / (uFogFar - uFogNear), 0.0, 1.0);
	FragColor = vec4(mix(color, uFogColor, fog), 1.0);
}
`
