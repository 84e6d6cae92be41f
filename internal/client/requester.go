package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/mapmotion/geocore-go/internal/constants"
	internalhttp "github.com/mapmotion/geocore-go/internal/http"
	"github.com/mapmotion/geocore-go/pkg/geocore"
)

// requester issues calls through the transport and unwraps the response
// envelope. It implements geocore.Requester.
type requester struct {
	httpClient *internalhttp.Client
}

func newRequester(httpClient *internalhttp.Client) *requester {
	return &requester{httpClient: httpClient}
}

// Do performs one call and returns the envelope result.
func (r *requester) Do(ctx context.Context, method, path string, body interface{}) (json.RawMessage, error) {
	resp, err := r.httpClient.Do(ctx, &internalhttp.Request{
		Method: method,
		Path:   path,
		Body:   body,
	})
	if err != nil {
		return nil, err
	}

	return geocore.UnwrapEnvelope(resp.StatusCode, resp.Body)
}

// upload posts a single file as multipart form data.
func (r *requester) upload(ctx context.Context, path string, upload *geocore.Upload) (json.RawMessage, error) {
	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)

	field := upload.Field
	if field == "" {
		field = constants.UploadFieldName
	}

	part, err := writer.CreateFormFile(field, upload.Filename)
	if err != nil {
		return nil, fmt.Errorf("creating form file: %w", err)
	}

	_, err = part.Write(upload.Content)
	if err != nil {
		return nil, fmt.Errorf("writing file to form: %w", err)
	}

	err = writer.Close()
	if err != nil {
		return nil, fmt.Errorf("closing multipart writer: %w", err)
	}

	resp, err := r.httpClient.PostRaw(ctx, path, buf.Bytes(), writer.FormDataContentType())
	if err != nil {
		return nil, err
	}

	return geocore.UnwrapEnvelope(resp.StatusCode, resp.Body)
}

func (r *requester) entity(ctx context.Context, method, path string, body interface{}, action string) (geocore.Entity, error) {
	result, err := r.Do(ctx, method, path, body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	return geocore.Entity(result), nil
}

func (r *requester) entities(ctx context.Context, path, action string) ([]geocore.Entity, error) {
	result, err := r.Do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", action, err)
	}

	var entities []geocore.Entity

	err = json.Unmarshal(result, &entities)
	if err != nil {
		return nil, fmt.Errorf("parsing %s response: %w", action, err)
	}

	return entities, nil
}

func (r *requester) items(ctx context.Context, path, action string) ([]*geocore.Item, error) {
	entities, err := r.entities(ctx, path, action)
	if err != nil {
		return nil, err
	}

	items := make([]*geocore.Item, 0, len(entities))
	for _, entity := range entities {
		items = append(items, geocore.NewItem(entity, r))
	}

	return items, nil
}

func requireID(name, value string) error {
	if value == "" {
		return &geocore.MissingParameterError{Name: name}
	}

	return nil
}

// withNames appends ?{param}=a,b to path when names is non-empty.
func withNames(path, param string, names []string) string {
	if len(names) == 0 {
		return path
	}

	return path + geocore.BuildQueryString(geocore.NewQueryOptions().Set(param, names))
}
