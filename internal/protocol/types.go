// Package protocol implements the top-level request/response envelope of
// spec.md §6.2: a JSON wire format with a `type` discriminator on both the
// input and output sides.
package protocol

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/tidwall/gjson"
)

var validate = validator.New()

// RequestType is one of the two challenge kinds a Request names.
type RequestType string

const (
	RequestTypeN   RequestType = "n"
	RequestTypeSig RequestType = "sig"
)

// Request names one challenge kind and the batch of challenge strings to
// solve with it.
type Request struct {
	Type       RequestType `json:"type" validate:"required,oneof=n sig"`
	Challenges []string    `json:"challenges" validate:"required,min=1,dive,required"`
}

// PlayerInput carries raw player source to preprocess before running
// requests against it.
type PlayerInput struct {
	Player              string    `json:"player" validate:"required"`
	Requests            []Request `json:"requests" validate:"required,min=1,dive"`
	OutputPreprocessed  bool      `json:"output_preprocessed"`
}

// PreprocessedInput carries an already-emitted program, skipping
// preprocessing entirely.
type PreprocessedInput struct {
	PreprocessedPlayer string    `json:"preprocessed_player" validate:"required"`
	Requests           []Request `json:"requests" validate:"required,min=1,dive"`
}

// Input is the decoded form of either Input variant. Exactly one of Player
// or Preprocessed is non-nil.
type Input struct {
	Player       *PlayerInput
	Preprocessed *PreprocessedInput
}

// DecodeInput sniffs the `type` discriminator with gjson before attempting
// a strict encoding/json unmarshal, so a malformed or unrecognized envelope
// produces a descriptive error instead of a raw unmarshal failure.
func DecodeInput(data []byte) (*Input, error) {
	typ := gjson.GetBytes(data, "type").String()

	switch typ {
	case "player":
		var p PlayerInput
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("protocol: decoding player input: %w", err)
		}
		if err := validate.Struct(&p); err != nil {
			return nil, fmt.Errorf("protocol: validating player input: %w", err)
		}
		return &Input{Player: &p}, nil

	case "preprocessed":
		var p PreprocessedInput
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, fmt.Errorf("protocol: decoding preprocessed input: %w", err)
		}
		if err := validate.Struct(&p); err != nil {
			return nil, fmt.Errorf("protocol: validating preprocessed input: %w", err)
		}
		return &Input{Preprocessed: &p}, nil

	default:
		return nil, fmt.Errorf("protocol: unknown input type %q", typ)
	}
}

// Response is one element of Output.Responses: either a map of challenge to
// answer, or an error string, tagged on the wire by "type".
type Response struct {
	data map[string]string
	err  string
}

// NewResultResponse builds a successful per-request response.
func NewResultResponse(data map[string]string) Response {
	return Response{data: data}
}

// NewErrorResponse builds a failed per-request response.
func NewErrorResponse(err string) Response {
	return Response{err: err}
}

func (r Response) MarshalJSON() ([]byte, error) {
	if r.err != "" {
		return json.Marshal(struct {
			Type  string `json:"type"`
			Error string `json:"error"`
		}{Type: "error", Error: r.err})
	}
	return json.Marshal(struct {
		Type string            `json:"type"`
		Data map[string]string `json:"data"`
	}{Type: "result", Data: r.data})
}

// Output is the top-level response envelope, tagged "result"/"error" on the
// wire.
type Output struct {
	preprocessedPlayer *string
	responses          []Response
	err                string
}

// NewResultOutput builds a successful top-level output. preprocessedPlayer
// is included on the wire only when non-nil, matching spec.md §6.2's "the
// top-level response additionally carries the emitted program if and only
// if output_preprocessed was true".
func NewResultOutput(preprocessedPlayer *string, responses []Response) Output {
	return Output{preprocessedPlayer: preprocessedPlayer, responses: responses}
}

// NewErrorOutput builds a failed top-level output.
func NewErrorOutput(err string) Output {
	return Output{err: err}
}

func (o Output) MarshalJSON() ([]byte, error) {
	if o.err != "" {
		return json.Marshal(struct {
			Type  string `json:"type"`
			Error string `json:"error"`
		}{Type: "error", Error: o.err})
	}
	return json.Marshal(struct {
		Type                string     `json:"type"`
		PreprocessedPlayer  *string    `json:"preprocessed_player,omitempty"`
		Responses           []Response `json:"responses"`
	}{Type: "result", PreprocessedPlayer: o.preprocessedPlayer, Responses: o.responses})
}
