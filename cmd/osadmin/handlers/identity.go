package handlers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/imamik/osadmin/internal/ui/prompt"
)

// Factory function variables for prompting - can be replaced in tests.
var (
	isInteractive  = prompt.IsInteractive
	promptPassword = prompt.Password
)

// ProjectOptions holds the create-project flags.
type ProjectOptions struct {
	Description string
	Properties  []string
	Enabled     bool
}

// UserOptions holds the create-user flags.
type UserOptions struct {
	Email    string
	Password string
	Enabled  bool
}

// CheckProject reports whether a project name is free.
func CheckProject(ctx context.Context, g Globals, name string) error {
	return withSession(ctx, g, func(ctx context.Context, s *session) error {
		return checked(s, s.ops.CheckProjectnameAvailability(ctx, name), "project", name)
	})
}

// CheckUser reports whether a user name is free.
func CheckUser(ctx context.Context, g Globals, name string) error {
	return withSession(ctx, g, func(ctx context.Context, s *session) error {
		return checked(s, s.ops.CheckUsernameAvailability(ctx, name), "user", name)
	})
}

func checked(s *session, available bool, kind, name string) error {
	if !available {
		s.out.Failure("%s name %q is not available", kind, name)
		return fmt.Errorf("%w: %s %q", ErrUnavailable, kind, name)
	}
	s.out.Success("%s name %q is available", kind, name)
	return nil
}

// CreateProject creates a project and applies its properties.
func CreateProject(ctx context.Context, g Globals, name string, opts ProjectOptions) error {
	properties, err := ParseProperties(opts.Properties)
	if err != nil {
		return err
	}
	return withSession(ctx, g, func(ctx context.Context, s *session) error {
		ok := s.ops.CreateProject(ctx, opts.Description, name, properties, opts.Enabled)
		return s.report(ok,
			fmt.Sprintf("project %q created", name),
			fmt.Sprintf("project %q not created", name))
	})
}

// SetProjectEnabled enables or disables a project.
func SetProjectEnabled(ctx context.Context, g Globals, name string, enabled bool) error {
	return withSession(ctx, g, func(ctx context.Context, s *session) error {
		ok := s.ops.UpdateProjectStatus(ctx, name, enabled)
		return s.report(ok,
			fmt.Sprintf("project %q %s", name, statusWord(enabled)),
			fmt.Sprintf("project %q status not updated", name))
	})
}

// CreateUser creates a user, prompting for the password when none was given.
func CreateUser(ctx context.Context, g Globals, name string, opts UserOptions) error {
	password, err := resolvePassword(ctx, name, opts.Password)
	if err != nil {
		return err
	}
	return withSession(ctx, g, func(ctx context.Context, s *session) error {
		ok := s.ops.CreateUser(ctx, opts.Email, name, password, opts.Enabled)
		return s.report(ok,
			fmt.Sprintf("user %q created", name),
			fmt.Sprintf("user %q not created", name))
	})
}

// SetUserEnabled enables or disables a user.
func SetUserEnabled(ctx context.Context, g Globals, name string, enabled bool) error {
	return withSession(ctx, g, func(ctx context.Context, s *session) error {
		ok := s.ops.UpdateUserStatus(ctx, name, enabled)
		return s.report(ok,
			fmt.Sprintf("user %q %s", name, statusWord(enabled)),
			fmt.Sprintf("user %q status not updated", name))
	})
}

// SetUserPassword changes a user's password.
func SetUserPassword(ctx context.Context, g Globals, name, password string) error {
	password, err := resolvePassword(ctx, name, password)
	if err != nil {
		return err
	}
	return withSession(ctx, g, func(ctx context.Context, s *session) error {
		ok := s.ops.UpdateUserPassword(ctx, name, password)
		return s.report(ok,
			fmt.Sprintf("password of user %q updated", name),
			fmt.Sprintf("password of user %q not updated", name))
	})
}

// Pair grants role to user on project.
func Pair(ctx context.Context, g Globals, userName, projectName, roleName string) error {
	return withSession(ctx, g, func(ctx context.Context, s *session) error {
		ok := s.ops.PairUserWithProject(ctx, userName, projectName, roleName)
		return s.report(ok,
			fmt.Sprintf("user %q paired with project %q as %s", userName, projectName, roleName),
			fmt.Sprintf("user %q not paired with project %q", userName, projectName))
	})
}

func resolvePassword(ctx context.Context, user, given string) (string, error) {
	if given != "" {
		return given, nil
	}
	if !isInteractive() {
		return "", fmt.Errorf("no password given for %q and no terminal to prompt on: use --password", user)
	}
	return promptPassword(ctx, user)
}

func statusWord(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}

// ParseProperties turns key=value pairs into project properties. Values that
// parse as integers or booleans keep that type.
func ParseProperties(pairs []string) (map[string]any, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	props := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid property %q: expected key=value", pair)
		}
		if _, dup := props[key]; dup {
			return nil, fmt.Errorf("property %q given more than once", key)
		}
		props[key] = typedValue(value)
	}
	return props, nil
}

func typedValue(v string) any {
	if i, err := strconv.Atoi(v); err == nil {
		return i
	}
	if b, err := strconv.ParseBool(v); err == nil {
		return b
	}
	return v
}
