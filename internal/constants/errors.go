package constants

import "errors"

// CLI configuration errors.
var (
	ErrNoBaseURLConfigured = errors.New("no base URL configured, use 'geocore login --base-url' or set GEOCORE_BASE_URL")
	ErrNotLoggedIn         = errors.New("not logged in, use 'geocore login' first")
	ErrIDRequired          = errors.New("--id flag is required")
	ErrUnknownOutputFormat = errors.New("unknown output format")
)
