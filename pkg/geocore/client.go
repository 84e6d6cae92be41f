package geocore

import (
	"context"
	"net/http"
	"time"
)

// SessionClient manages the session shared by every request of a client.
type SessionClient interface {
	// Setup sets the base URL and project id. Empty arguments keep the
	// current value.
	Setup(baseURL, projectID string)
	// Login authenticates against the project and stores the returned token.
	Login(ctx context.Context, id, password string) (string, error)
	// Logout clears the stored token. It does not call the service.
	Logout()
	// Authenticated returns the stored token and whether one is set.
	Authenticated() (string, bool)
	BaseURL() string
	ProjectID() string
}

// ResourceClients provides access to the resource clients.
type ResourceClients interface {
	Objects() ObjectsClient
	Users() UsersClient
	Groups() GroupsClient
	Authorities() AuthoritiesClient
	Places() PlacesClient
	Items() ItemsClient
	Tags() TagsClient
	Events() EventsClient
	References() ReferencesClient
}

// Client is a Geocore service client.
type Client interface {
	SessionClient
	ResourceClients
	Requester
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a geocore.Client.
type Config struct {
	// BaseURL of the service, e.g. "https://api.geocore.jp/api".
	// geoclient.New trims a trailing slash and adds "https://" if no scheme
	// is present.
	BaseURL string
	// ProjectID is sent with Login.
	ProjectID string
	// AccessToken, if set, is used as the session token without a Login.
	AccessToken string

	// HTTPTimeout bounds every request. Zero uses the default.
	HTTPTimeout time.Duration
	// Debug enables request and response logging when a Logger is provided.
	Debug bool
	// Logger receives transport logs.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// Interceptors run around every request.
	Interceptors *InterceptorChain
	// HTTPClient replaces the underlying *http.Client.
	HTTPClient *http.Client
}
