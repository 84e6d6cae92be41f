package auth

import (
	"encoding/json"
	"sync"

	"github.com/mapmotion/geocore-go/internal/constants"
	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// Session holds the base URL, project id and access token shared by every
// request of one client. Each request reads the token at send time.
type Session struct {
	mutex     sync.RWMutex
	baseURL   string
	projectID string
	token     string
}

// NewSession creates a session.
func NewSession(baseURL, projectID, token string) *Session {
	return &Session{
		baseURL:   baseURL,
		projectID: projectID,
		token:     token,
	}
}

// Setup replaces the base URL and project id. Empty arguments keep the
// current value.
func (s *Session) Setup(baseURL, projectID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if baseURL != "" {
		s.baseURL = baseURL
	}

	if projectID != "" {
		s.projectID = projectID
	}
}

// BaseURL returns the base URL.
func (s *Session) BaseURL() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.baseURL
}

// ProjectID returns the project id.
func (s *Session) ProjectID() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.projectID
}

// Token returns the access token, or "".
func (s *Session) Token() string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.token
}

// SetToken stores the access token.
func (s *Session) SetToken(token string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.token = token
}

// Clear removes the access token.
func (s *Session) Clear() {
	s.SetToken("")
}

// Authenticated returns the token and whether one is set.
func (s *Session) Authenticated() (string, bool) {
	token := s.Token()

	return token, token != ""
}

// LoginPath returns the authentication path carrying the credentials and
// project id as query parameters.
func LoginPath(id, password, projectID string) string {
	params := geocore.NewQueryOptions().
		Set(constants.ParamID, id).
		Set(constants.ParamPassword, password).
		Set(constants.ParamProjectID, projectID)

	return constants.APIPathAuth + geocore.BuildQueryString(params)
}

// loginResult is the result of a successful authentication.
type loginResult struct {
	Token string `json:"token"`
}

// ParseLoginResult extracts the token from an authentication result.
func ParseLoginResult(result json.RawMessage) (string, error) {
	var login loginResult

	err := json.Unmarshal(result, &login)
	if err != nil || login.Token == "" {
		return "", &geocore.MalformedEnvelopeError{Status: constants.EnvelopeStatusSuccess, Body: result}
	}

	return login.Token, nil
}
