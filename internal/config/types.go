package config

// Cloud is a single named profile from clouds.yaml.
type Cloud struct {
	// Name is the key the profile was found under (not part of the file body).
	Name string `mapstructure:"-"`

	Auth               Auth   `mapstructure:"auth"`
	AuthType           string `mapstructure:"auth_type"`
	RegionName         string `mapstructure:"region_name"`
	Interface          string `mapstructure:"interface"`
	IdentityAPIVersion string `mapstructure:"identity_api_version"`

	// Verify disables TLS verification when explicitly set to false.
	Verify     *bool  `mapstructure:"verify"`
	CACertFile string `mapstructure:"cacert"`
}

// Auth holds the credentials section of a cloud profile.
type Auth struct {
	AuthURL string `mapstructure:"auth_url"`
	Token   string `mapstructure:"token"`

	Username string `mapstructure:"username"`
	UserID   string `mapstructure:"user_id"`
	Password string `mapstructure:"password"`

	ProjectName string `mapstructure:"project_name"`
	ProjectID   string `mapstructure:"project_id"`

	UserDomainName    string `mapstructure:"user_domain_name"`
	UserDomainID      string `mapstructure:"user_domain_id"`
	ProjectDomainName string `mapstructure:"project_domain_name"`
	ProjectDomainID   string `mapstructure:"project_domain_id"`
	DomainName        string `mapstructure:"domain_name"`
	DomainID          string `mapstructure:"domain_id"`

	ApplicationCredentialID     string `mapstructure:"application_credential_id"`
	ApplicationCredentialName   string `mapstructure:"application_credential_name"`
	ApplicationCredentialSecret string `mapstructure:"application_credential_secret"`
}

// InsecureSkipVerify reports whether TLS verification was turned off.
func (c *Cloud) InsecureSkipVerify() bool {
	return c.Verify != nil && !*c.Verify
}

// EndpointInterface returns the catalog interface to use, "public" by default.
func (c *Cloud) EndpointInterface() string {
	if c.Interface == "" {
		return "public"
	}
	return c.Interface
}
