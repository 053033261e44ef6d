package config

import (
	"os"
	"strconv"
)

// FromEnv builds a profile from the OS_* variables used by openrc files.
// It returns nil when OS_AUTH_URL is not set.
func FromEnv() (*Cloud, error) {
	authURL := os.Getenv("OS_AUTH_URL")
	if authURL == "" {
		return nil, nil
	}

	cloud := &Cloud{
		Name: "envvars",
		Auth: Auth{
			AuthURL:                     authURL,
			Token:                       os.Getenv("OS_TOKEN"),
			Username:                    os.Getenv("OS_USERNAME"),
			UserID:                      os.Getenv("OS_USER_ID"),
			Password:                    os.Getenv("OS_PASSWORD"),
			ProjectName:                 firstEnv("OS_PROJECT_NAME", "OS_TENANT_NAME"),
			ProjectID:                   firstEnv("OS_PROJECT_ID", "OS_TENANT_ID"),
			UserDomainName:              os.Getenv("OS_USER_DOMAIN_NAME"),
			UserDomainID:                os.Getenv("OS_USER_DOMAIN_ID"),
			ProjectDomainName:           os.Getenv("OS_PROJECT_DOMAIN_NAME"),
			ProjectDomainID:             os.Getenv("OS_PROJECT_DOMAIN_ID"),
			DomainName:                  os.Getenv("OS_DOMAIN_NAME"),
			DomainID:                    os.Getenv("OS_DOMAIN_ID"),
			ApplicationCredentialID:     os.Getenv("OS_APPLICATION_CREDENTIAL_ID"),
			ApplicationCredentialName:   os.Getenv("OS_APPLICATION_CREDENTIAL_NAME"),
			ApplicationCredentialSecret: os.Getenv("OS_APPLICATION_CREDENTIAL_SECRET"),
		},
		RegionName:         os.Getenv("OS_REGION_NAME"),
		Interface:          os.Getenv("OS_INTERFACE"),
		IdentityAPIVersion: os.Getenv("OS_IDENTITY_API_VERSION"),
		CACertFile:         os.Getenv("OS_CACERT"),
	}

	if v := os.Getenv("OS_INSECURE"); v != "" {
		insecure, err := strconv.ParseBool(v)
		if err == nil {
			verify := !insecure
			cloud.Verify = &verify
		}
	}

	applyDefaults(cloud)
	if err := cloud.Validate(); err != nil {
		return nil, err
	}
	return cloud, nil
}

func firstEnv(keys ...string) string {
	for _, key := range keys {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}
