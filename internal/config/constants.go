package config

const (
	// EnvConfigFile overrides the clouds.yaml search.
	EnvConfigFile = "OS_CLIENT_CONFIG_FILE"
	// EnvSecureFile overrides the secure.yaml search.
	EnvSecureFile = "OS_CLIENT_SECURE_FILE"
	// EnvCloud names the default cloud profile.
	EnvCloud = "OS_CLOUD"

	// DefaultIdentityAPIVersion is assumed when a profile does not set one.
	DefaultIdentityAPIVersion = "3"

	systemConfigDir = "/etc/openstack"
)

var (
	cloudsFileNames = []string{"clouds.yaml", "clouds.yml"}
	secureFileNames = []string{"secure.yaml", "secure.yml"}
)
