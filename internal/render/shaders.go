package render

// Lighting shader. Attribute and matrix names follow raylib's defaults so DrawMesh
// fills mvp, matModel and matNormal and binds the material's albedo to texture0.
const (
	sceneVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matModel;
uniform mat4 matNormal;
out vec3 fragPosition;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
  fragPosition = vec3(matModel * vec4(vertexPosition, 1.0));
  fragTexCoord = vertexTexCoord;
  fragNormal = normalize(vec3(matNormal * vec4(vertexNormal, 0.0)));
  gl_Position = mvp * vec4(vertexPosition, 1.0);
}
`
	sceneFS = `#version 330
#define MAX_LIGHTS 4
struct Material {
  vec3 ambientColor;
  float ambientStrength;
  vec3 diffuseColor;
  vec3 specularColor;
  float shininess;
};
struct LightSource {
  vec3 position;
  vec3 ambientColor;
  vec3 diffuseColor;
  vec3 specularColor;
  float focalStrength;
  float specularIntensity;
};
in vec3 fragPosition;
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 objectColor;
uniform int bUseTexture;
uniform int bUseLighting;
uniform vec2 UVscale;
uniform vec3 viewPosition;
uniform int lightCount;
uniform Material material;
uniform LightSource lightSources[MAX_LIGHTS];
out vec4 finalColor;

vec3 lightContribution(LightSource light, vec3 n, vec3 viewDir) {
  vec3 toLight = normalize(light.position - fragPosition);
  vec3 ambient = light.ambientColor * material.ambientColor * material.ambientStrength;
  vec3 diffuse = max(dot(n, toLight), 0.0) * light.diffuseColor * material.diffuseColor;
  vec3 reflected = reflect(-toLight, n);
  float highlight = pow(max(dot(viewDir, reflected), 0.0), max(light.focalStrength, 1.0));
  vec3 specular = light.specularIntensity * highlight * light.specularColor * material.specularColor * material.shininess;
  return ambient + diffuse + specular;
}

void main() {
  vec4 base = objectColor;
  if (bUseTexture == 1) {
    base = texture(texture0, fragTexCoord * UVscale);
  }
  if (bUseLighting == 0) {
    finalColor = base;
    return;
  }
  vec3 n = normalize(fragNormal);
  vec3 viewDir = normalize(viewPosition - fragPosition);
  vec3 lit = vec3(0.0);
  for (int i = 0; i < MAX_LIGHTS; i++) {
    if (i >= lightCount) {
      break;
    }
    lit += lightContribution(lightSources[i], n, viewDir);
  }
  finalColor = vec4(lit * base.rgb, base.a);
}
`
)
