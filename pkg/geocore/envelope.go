package geocore

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mapmotion/geocore-go/internal/constants"
)

// Envelope is the uniform wrapper the service puts around every response.
type Envelope struct {
	Status  string          `json:"status"`
	Result  json.RawMessage `json:"result,omitempty"`
	Code    interface{}     `json:"code,omitempty"`
	Message interface{}     `json:"message,omitempty"`
}

// UnwrapEnvelope interprets a completed HTTP exchange. It returns the
// envelope result for a successful call, or exactly one of *HTTPError,
// *ServiceError and *MalformedEnvelopeError.
func UnwrapEnvelope(statusCode int, body []byte) (json.RawMessage, error) {
	if statusCode < 200 || statusCode > 299 {
		return nil, &HTTPError{StatusCode: statusCode, Body: body}
	}

	var envelope Envelope

	err := json.Unmarshal(body, &envelope)
	if err != nil {
		return nil, &MalformedEnvelopeError{Body: body}
	}

	switch envelope.Status {
	case constants.EnvelopeStatusSuccess:
		if len(envelope.Result) == 0 {
			return nil, &MalformedEnvelopeError{Status: envelope.Status, Body: body}
		}

		return envelope.Result, nil
	case constants.EnvelopeStatusError:
		return nil, &ServiceError{Code: envelope.Code, Message: messageString(envelope.Message)}
	default:
		return nil, &MalformedEnvelopeError{Status: envelope.Status, Body: body}
	}
}

func messageString(message interface{}) string {
	switch m := message.(type) {
	case nil:
		return ""
	case string:
		return m
	default:
		return fmt.Sprint(m)
	}
}

// decodeResult unmarshals an envelope result, treating a JSON null as the
// zero value.
func decodeResult(result json.RawMessage, v interface{}) error {
	if len(bytes.TrimSpace(result)) == 0 {
		return nil
	}

	err := json.Unmarshal(result, v)
	if err != nil {
		return fmt.Errorf("parsing result: %w", err)
	}

	return nil
}
