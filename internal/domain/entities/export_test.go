package entities

// ResolveAccessToken exports resolveAccessToken for testing.
func (s *Settings) ResolveAccessToken() error {
	return s.resolveAccessToken()
}

// Validate exports validate for testing.
var Validate = validate //nolint:gochecknoglobals // test export
