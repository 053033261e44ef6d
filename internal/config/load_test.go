package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testClouds = `
clouds:
  test-cloud:
    auth:
      auth_url: https://keystone.example.com:5000/v3
      username: admin
      project_name: admin
      user_domain_name: Default
      project_domain_name: Default
    region_name: RegionOne
    interface: public
    identity_api_version: 3
  legacy:
    auth:
      auth_url: https://keystone.example.com:5000/v2.0
      username: admin
      password: secret
    identity_api_version: "2"
`

const testSecure = `
clouds:
  test-cloud:
    auth:
      password: s3cr3t
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvConfigFile, "")
	t.Setenv(EnvSecureFile, "")
}

func TestLoadCloudFrom_MergesSecureFile(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "clouds.yaml", testClouds)
	writeFile(t, dir, "secure.yaml", testSecure)

	cloud, err := LoadCloudFrom([]string{dir}, "test-cloud")
	require.NoError(t, err)

	assert.Equal(t, "test-cloud", cloud.Name)
	assert.Equal(t, "https://keystone.example.com:5000/v3", cloud.Auth.AuthURL)
	assert.Equal(t, "admin", cloud.Auth.Username)
	assert.Equal(t, "s3cr3t", cloud.Auth.Password)
	assert.Equal(t, "RegionOne", cloud.RegionName)
	assert.Equal(t, "3", cloud.IdentityAPIVersion)
}

func TestLoadCloudFrom_SearchOrder(t *testing.T) {
	isolateEnv(t)
	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, second, "clouds.yaml", testClouds)
	writeFile(t, second, "secure.yaml", testSecure)

	cloud, err := LoadCloudFrom([]string{first, second}, "test-cloud")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", cloud.Auth.Password)
}

func TestLoadCloudFrom_YMLExtension(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "clouds.yml", testClouds)

	cloud, err := LoadCloudFrom([]string{dir}, "legacy")
	require.NoError(t, err)
	assert.Equal(t, "2", cloud.IdentityAPIVersion)
}

func TestLoadCloudFrom_EnvOverride(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "custom.yaml", testClouds)
	t.Setenv(EnvConfigFile, path)

	cloud, err := LoadCloudFrom([]string{t.TempDir()}, "legacy")
	require.NoError(t, err)
	assert.Equal(t, "secret", cloud.Auth.Password)
}

func TestLoadCloudFrom_NoFile(t *testing.T) {
	isolateEnv(t)

	_, err := LoadCloudFrom([]string{t.TempDir()}, "test-cloud")
	require.ErrorIs(t, err, ErrNoCloudsFile)
}

func TestLoadCloudFrom_UnknownProfile(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "clouds.yaml", testClouds)

	_, err := LoadCloudFrom([]string{dir}, "missing")
	require.ErrorIs(t, err, ErrCloudNotFound)
}

func TestLoadCloudFrom_MissingPasswordFailsValidation(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "clouds.yaml", testClouds)

	_, err := LoadCloudFrom([]string{dir}, "test-cloud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password")
}

func TestLoadCloudFrom_InvalidYAML(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "clouds.yaml", "clouds: [unclosed")

	_, err := LoadCloudFrom([]string{dir}, "test-cloud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal yaml")
}

func TestLoadCloudFrom_DefaultsIdentityVersion(t *testing.T) {
	isolateEnv(t)
	dir := t.TempDir()
	writeFile(t, dir, "clouds.yaml", `
clouds:
  bare:
    auth:
      auth_url: https://keystone.example.com/v3
      token: abc
`)

	cloud, err := LoadCloudFrom([]string{dir}, "bare")
	require.NoError(t, err)
	assert.Equal(t, DefaultIdentityAPIVersion, cloud.IdentityAPIVersion)
	assert.Equal(t, "public", cloud.EndpointInterface())
	assert.False(t, cloud.InsecureSkipVerify())
}

func TestSearchPaths(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")

	paths := SearchPaths()
	assert.Equal(t, []string{".", "/tmp/xdg/openstack", "/etc/openstack"}, paths)
}
