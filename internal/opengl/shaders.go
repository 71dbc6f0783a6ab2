package opengl

// ── Garden shaders ───────────────────────────────────────────────────────────

const vertexShader = `#version 330 core
layout (location = 0) in vec3 inPosition;
layout (location = 1) in vec3 inNormal;
layout (location = 2) in vec2 inTexCoord;

out vec3 fragmentPosition;
out vec3 fragmentNormal;
out vec2 fragmentTexCoord;

uniform mat4 model;
uniform mat4 view;
uniform mat4 projection;

void main() {
	vec4 world = model * vec4(inPosition, 1.0);
	fragmentPosition = world.xyz;
	fragmentNormal = mat3(transpose(inverse(model))) * inNormal;
	fragmentTexCoord = inTexCoord;
	gl_Position = projection * view * world;
}
` + "\x00"

const fragmentShader = `#version 330 core
#define NUM_POINT_LIGHTS 3

struct Material {
	vec3 ambientColor;
	float ambientStrength;
	vec3 diffuseColor;
	vec3 specularColor;
	float shininess;
};

struct DirectionalLight {
	vec3 direction;
	vec3 ambient;
	vec3 diffuse;
	vec3 specular;
	bool bActive;
};

struct PointLight {
	vec3 position;
	vec3 ambient;
	vec3 diffuse;
	vec3 specular;
	bool bActive;
};

in vec3 fragmentPosition;
in vec3 fragmentNormal;
in vec2 fragmentTexCoord;

out vec4 outFragmentColor;

uniform bool bUseTexture;
uniform bool bUseLighting;
uniform vec4 objectColor;
uniform sampler2D objectTexture;
uniform vec2 UVscale;
uniform vec3 viewPosition;
uniform Material material;
uniform DirectionalLight directionalLight;
uniform PointLight pointLights[NUM_POINT_LIGHTS];

vec3 phong(vec3 lightDir, vec3 ambient, vec3 diffuse, vec3 specular, vec3 normal, vec3 viewDir) {
	vec3 a = ambient * material.ambientColor * material.ambientStrength;
	float d = max(dot(normal, lightDir), 0.0);
	vec3 reflectDir = reflect(-lightDir, normal);
	float s = pow(max(dot(viewDir, reflectDir), 0.0), material.shininess);
	return a + diffuse * d * material.diffuseColor + specular * s * material.specularColor;
}

void main() {
	vec4 base = objectColor;
	if (bUseTexture) {
		base = texture(objectTexture, fragmentTexCoord * UVscale);
	}
	if (!bUseLighting) {
		outFragmentColor = base;
		return;
	}

	vec3 normal = normalize(fragmentNormal);
	vec3 viewDir = normalize(viewPosition - fragmentPosition);
	vec3 light = vec3(0.0);

	if (directionalLight.bActive) {
		light += phong(normalize(-directionalLight.direction),
			directionalLight.ambient, directionalLight.diffuse, directionalLight.specular,
			normal, viewDir);
	}
	for (int i = 0; i < NUM_POINT_LIGHTS; i++) {
		if (!pointLights[i].bActive) {
			continue;
		}
		vec3 toLight = pointLights[i].position - fragmentPosition;
		float dist = length(toLight);
		float attenuation = 1.0 / (1.0 + 0.09 * dist + 0.032 * dist * dist);
		light += attenuation * phong(normalize(toLight),
			pointLights[i].ambient, pointLights[i].diffuse, pointLights[i].specular,
			normal, viewDir);
	}

	outFragmentColor = vec4(light * base.rgb, base.a);
}
` + "\x00"
