package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"

	"go.uber.org/multierr"
)

// validInterfaces are the catalog interfaces a profile may select.
var validInterfaces = map[string]bool{
	"public":   true,
	"internal": true,
	"admin":    true,
}

// Validate checks the profile for missing or malformed settings. All problems
// are reported together.
func (c *Cloud) Validate() error {
	var err error

	if c.Auth.AuthURL == "" {
		err = multierr.Append(err, errors.New("auth.auth_url is required"))
	} else if u, perr := url.Parse(c.Auth.AuthURL); perr != nil || u.Scheme == "" || u.Host == "" {
		err = multierr.Append(err, fmt.Errorf("auth.auth_url %q is not an absolute URL", c.Auth.AuthURL))
	}

	if !c.hasCredentials() {
		err = multierr.Append(err, errors.New("auth requires a password, a token or an application credential"))
	}

	if c.Interface != "" && !validInterfaces[c.Interface] {
		err = multierr.Append(err, fmt.Errorf("interface %q must be one of public, internal, admin", c.Interface))
	}

	if c.CACertFile != "" {
		if _, serr := os.Stat(c.CACertFile); serr != nil {
			err = multierr.Append(err, fmt.Errorf("cacert: %w", serr))
		}
	}

	return err
}

func (c *Cloud) hasCredentials() bool {
	a := c.Auth
	switch {
	case a.Token != "":
		return true
	case a.ApplicationCredentialSecret != "" && (a.ApplicationCredentialID != "" || a.ApplicationCredentialName != ""):
		return true
	case a.Password != "" && (a.Username != "" || a.UserID != ""):
		return true
	}
	return false
}
