package openstack

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/gophercloud/gophercloud/v2"
	gopenstack "github.com/gophercloud/gophercloud/v2/openstack"

	"github.com/imamik/osadmin/internal/config"
)

// Sessions holds the authenticated service clients for one cloud profile.
type Sessions struct {
	Provider *gophercloud.ProviderClient
	Identity *gophercloud.ServiceClient
	Network  *gophercloud.ServiceClient
}

// Connect authenticates against the profile's Keystone endpoint and opens the
// identity and network service clients. Profiles that do not use Identity v3
// are rejected before any request is made. Failed authentication is not retried.
func Connect(ctx context.Context, cloud *config.Cloud) (*Sessions, error) {
	if err := CheckIdentityVersion(cloud.IdentityAPIVersion); err != nil {
		return nil, err
	}

	provider, err := gopenstack.NewClient(cloud.Auth.AuthURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create provider client: %w", err)
	}

	if cloud.InsecureSkipVerify() || cloud.CACertFile != "" {
		tlsConfig, err := tlsConfigFor(cloud)
		if err != nil {
			return nil, err
		}
		provider.HTTPClient = http.Client{
			Transport: &http.Transport{TLSClientConfig: tlsConfig},
		}
	}

	if err := gopenstack.Authenticate(ctx, provider, authOptions(cloud)); err != nil {
		return nil, fmt.Errorf("failed to authenticate with cloud %q: %w", cloud.Name, err)
	}

	eo := gophercloud.EndpointOpts{
		Region:       cloud.RegionName,
		Availability: gophercloud.Availability(cloud.EndpointInterface()),
	}

	identity, err := gopenstack.NewIdentityV3(provider, eo)
	if err != nil {
		return nil, fmt.Errorf("failed to create identity client: %w", err)
	}

	network, err := gopenstack.NewNetworkV2(provider, eo)
	if err != nil {
		return nil, fmt.Errorf("failed to create network client: %w", err)
	}

	return &Sessions{
		Provider: provider,
		Identity: identity,
		Network:  network,
	}, nil
}

// CheckIdentityVersion accepts "3", "3.x" and "v3".
func CheckIdentityVersion(version string) error {
	major, _, _ := strings.Cut(strings.TrimPrefix(strings.TrimSpace(version), "v"), ".")
	if major != "3" {
		return fmt.Errorf("%w (profile requests %q)", ErrUnsupportedIdentityVersion, version)
	}
	return nil
}

func authOptions(cloud *config.Cloud) gophercloud.AuthOptions {
	a := cloud.Auth

	// Keystone rejects a domain given both by name and by id.
	userDomainName := a.UserDomainName
	switch {
	case a.UserDomainID != "":
		userDomainName = ""
	case userDomainName == "":
		userDomainName = a.DomainName
	}

	opts := gophercloud.AuthOptions{
		IdentityEndpoint:            a.AuthURL,
		Username:                    a.Username,
		UserID:                      a.UserID,
		Password:                    a.Password,
		DomainName:                  userDomainName,
		DomainID:                    a.UserDomainID,
		TokenID:                     a.Token,
		ApplicationCredentialID:     a.ApplicationCredentialID,
		ApplicationCredentialName:   a.ApplicationCredentialName,
		ApplicationCredentialSecret: a.ApplicationCredentialSecret,
		AllowReauth:                 a.Token == "",
	}

	switch {
	case a.ProjectID != "":
		opts.Scope = &gophercloud.AuthScope{ProjectID: a.ProjectID}
	case a.ProjectName != "":
		scope := &gophercloud.AuthScope{ProjectName: a.ProjectName}
		switch {
		case a.ProjectDomainID != "":
			scope.DomainID = a.ProjectDomainID
		case a.ProjectDomainName != "":
			scope.DomainName = a.ProjectDomainName
		case a.UserDomainID != "":
			scope.DomainID = a.UserDomainID
		default:
			scope.DomainName = userDomainName
		}
		opts.Scope = scope
	case a.DomainID != "":
		opts.Scope = &gophercloud.AuthScope{DomainID: a.DomainID}
	case a.DomainName != "":
		opts.Scope = &gophercloud.AuthScope{DomainName: a.DomainName}
	}

	if a.UserID != "" {
		opts.DomainName, opts.DomainID = "", ""
	}
	// Application credentials carry their own scope.
	if a.ApplicationCredentialSecret != "" {
		opts.Scope = nil
	}

	return opts
}

func tlsConfigFor(cloud *config.Cloud) (*tls.Config, error) {
	// #nosec G402
	tlsConfig := &tls.Config{InsecureSkipVerify: cloud.InsecureSkipVerify()}
	if cloud.CACertFile == "" {
		return tlsConfig, nil
	}

	// #nosec G304
	pem, err := os.ReadFile(cloud.CACertFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read cacert: %w", err)
	}
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pem) {
		return nil, fmt.Errorf("no certificates found in %s", cloud.CACertFile)
	}
	tlsConfig.RootCAs = pool
	return tlsConfig, nil
}
