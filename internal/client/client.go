package client

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/mapmotion/geocore-go/internal/auth"
	internalhttp "github.com/mapmotion/geocore-go/internal/http"
	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// Client implements the geocore.Client interface.
type Client struct {
	session    *auth.Session
	httpClient *internalhttp.Client
	requester  *requester
	logger     geocore.Logger

	// Resource clients
	objects     geocore.ObjectsClient
	users       geocore.UsersClient
	groups      geocore.GroupsClient
	authorities geocore.AuthoritiesClient
	places      geocore.PlacesClient
	items       geocore.ItemsClient
	tags        geocore.TagsClient
	events      geocore.EventsClient
	references  geocore.ReferencesClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *geocore.Config) []internalhttp.Option {
	var httpOpts []internalhttp.Option

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, internalhttp.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.Logger != nil {
		httpOpts = append(httpOpts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, internalhttp.WithInterceptors(config.Interceptors))
	}

	return httpOpts
}

// New creates a new Geocore client. The base URL may be left empty and set
// later with Setup; calls fail with geocore.ErrBaseURLRequired until then.
func New(config *geocore.Config) (*Client, error) {
	if config == nil {
		return nil, geocore.ErrConfigRequired
	}

	session := auth.NewSession(config.BaseURL, config.ProjectID, config.AccessToken)
	httpClient := internalhttp.NewClient(session, createHTTPClientOptions(config)...)

	logger := config.Logger
	if logger == nil {
		logger = geocore.NopLogger{}
	}

	client := &Client{
		session:    session,
		httpClient: httpClient,
		requester:  newRequester(httpClient),
		logger:     logger,
	}

	client.initializeResourceClients()

	return client, nil
}

func (c *Client) initializeResourceClients() {
	c.objects = NewObjectsClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.groups = NewGroupsClient(c.httpClient)
	c.authorities = NewAuthoritiesClient(c.httpClient)
	c.places = NewPlacesClient(c.httpClient)
	c.items = NewItemsClient(c.httpClient)
	c.tags = NewTagsClient(c.httpClient)
	c.events = NewEventsClient(c.httpClient)
	c.references = NewReferencesClient(c.httpClient)
}

// Setup implements geocore.SessionClient.Setup.
func (c *Client) Setup(baseURL, projectID string) {
	c.session.Setup(baseURL, projectID)
}

// Login implements geocore.SessionClient.Login. On failure the stored token
// is left untouched and the error is returned as is.
func (c *Client) Login(ctx context.Context, id, password string) (string, error) {
	path := auth.LoginPath(id, password, c.session.ProjectID())

	result, err := c.requester.Do(ctx, http.MethodPost, path, nil)
	if err != nil {
		c.logger.Warn("Login failed", map[string]interface{}{"id": id, "error": err.Error()})

		return "", err
	}

	token, err := auth.ParseLoginResult(result)
	if err != nil {
		return "", err
	}

	c.session.SetToken(token)
	c.logger.Info("Logged in", map[string]interface{}{"id": id, "project_id": c.session.ProjectID()})

	return token, nil
}

// Logout implements geocore.SessionClient.Logout.
func (c *Client) Logout() {
	c.session.Clear()
}

// Authenticated implements geocore.SessionClient.Authenticated.
func (c *Client) Authenticated() (string, bool) {
	return c.session.Authenticated()
}

// BaseURL implements geocore.SessionClient.BaseURL.
func (c *Client) BaseURL() string {
	return c.session.BaseURL()
}

// ProjectID implements geocore.SessionClient.ProjectID.
func (c *Client) ProjectID() string {
	return c.session.ProjectID()
}

// Do implements geocore.Requester for callers composing their own paths.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	return c.requester.Do(ctx, method, path, body)
}

// Resource client accessors

// Objects implements geocore.Client.Objects.
func (c *Client) Objects() geocore.ObjectsClient {
	return c.objects
}

// Users implements geocore.Client.Users.
func (c *Client) Users() geocore.UsersClient {
	return c.users
}

// Groups implements geocore.Client.Groups.
func (c *Client) Groups() geocore.GroupsClient {
	return c.groups
}

// Authorities implements geocore.Client.Authorities.
func (c *Client) Authorities() geocore.AuthoritiesClient {
	return c.authorities
}

// Places implements geocore.Client.Places.
func (c *Client) Places() geocore.PlacesClient {
	return c.places
}

// Items implements geocore.Client.Items.
func (c *Client) Items() geocore.ItemsClient {
	return c.items
}

// Tags implements geocore.Client.Tags.
func (c *Client) Tags() geocore.TagsClient {
	return c.tags
}

// Events implements geocore.Client.Events.
func (c *Client) Events() geocore.EventsClient {
	return c.events
}

// References implements geocore.Client.References.
func (c *Client) References() geocore.ReferencesClient {
	return c.references
}
