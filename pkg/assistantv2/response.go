package assistantv2

import (
	"encoding/json"
)

// MessageResponse is the result of a stateful message.
type MessageResponse struct {
	Output       MessageOutput   `json:"output"`
	Context      *MessageContext `json:"context,omitempty"`
	UserID       string          `json:"user_id"`
	MaskedOutput *MessageOutput  `json:"masked_output,omitempty"`
	MaskedInput  *MessageInput   `json:"masked_input,omitempty"`
}

// UnmarshalJSON prefixes decode errors of the outputs with their field.
func (r *MessageResponse) UnmarshalJSON(data []byte) error {
	type plain MessageResponse
	aux := struct {
		*plain
		Output       json.RawMessage `json:"output"`
		MaskedOutput json.RawMessage `json:"masked_output,omitempty"`
	}{plain: (*plain)(r)}

	var p partial
	if err := p.keep(json.Unmarshal(data, &aux)); err != nil {
		return err
	}
	if err := p.keep(decodeField("output", aux.Output, &r.Output)); err != nil {
		return err
	}
	if err := p.keep(decodeField("masked_output", aux.MaskedOutput, &r.MaskedOutput)); err != nil {
		return err
	}
	return p.err
}

// StatefulMessageResponse is the name the API reference uses for the
// response of a stateful message.
type StatefulMessageResponse = MessageResponse

// StatelessMessageResponse is the result of a stateless message. The context
// it returns must be sent back with the next turn.
type StatelessMessageResponse struct {
	Output       MessageOutput           `json:"output"`
	Context      StatelessMessageContext `json:"context"`
	MaskedOutput *MessageOutput          `json:"masked_output,omitempty"`
	MaskedInput  *MessageInput           `json:"masked_input,omitempty"`
	UserID       string                  `json:"user_id,omitempty"`
}

// UnmarshalJSON prefixes decode errors of the outputs with their field.
func (r *StatelessMessageResponse) UnmarshalJSON(data []byte) error {
	type plain StatelessMessageResponse
	aux := struct {
		*plain
		Output       json.RawMessage `json:"output"`
		MaskedOutput json.RawMessage `json:"masked_output,omitempty"`
	}{plain: (*plain)(r)}

	var p partial
	if err := p.keep(json.Unmarshal(data, &aux)); err != nil {
		return err
	}
	if err := p.keep(decodeField("output", aux.Output, &r.Output)); err != nil {
		return err
	}
	if err := p.keep(decodeField("masked_output", aux.MaskedOutput, &r.MaskedOutput)); err != nil {
		return err
	}
	return p.err
}

// MessageRequest is the request half of a log entry.
type MessageRequest struct {
	Input   *MessageInput   `json:"input,omitempty"`
	Context *MessageContext `json:"context,omitempty"`
	UserID  string          `json:"user_id,omitempty"`
}

// SessionResponse is the result of creating a session.
type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// Log is one logged message exchange.
type Log struct {
	LogID             string          `json:"log_id"`
	Request           MessageRequest  `json:"request"`
	Response          MessageResponse `json:"response"`
	AssistantID       string          `json:"assistant_id"`
	SessionID         string          `json:"session_id"`
	SkillID           string          `json:"skill_id"`
	Snapshot          string          `json:"snapshot"`
	RequestTimestamp  string          `json:"request_timestamp"`
	ResponseTimestamp string          `json:"response_timestamp"`
	Language          string          `json:"language"`
	CustomerID        string          `json:"customer_id,omitempty"`
}

// UnmarshalJSON prefixes decode errors of the response with its field.
func (l *Log) UnmarshalJSON(data []byte) error {
	type plain Log
	aux := struct {
		*plain
		Response json.RawMessage `json:"response"`
	}{plain: (*plain)(l)}

	var p partial
	if err := p.keep(json.Unmarshal(data, &aux)); err != nil {
		return err
	}
	if err := p.keep(decodeField("response", aux.Response, &l.Response)); err != nil {
		return err
	}
	return p.err
}

// LogCollection is one page of logs.
type LogCollection struct {
	Logs       []Log         `json:"logs"`
	Pagination LogPagination `json:"pagination"`
}

// UnmarshalJSON decodes logs one by one so errors carry the log index.
func (c *LogCollection) UnmarshalJSON(data []byte) error {
	type plain LogCollection
	aux := struct {
		*plain
		Logs json.RawMessage `json:"logs"`
	}{plain: (*plain)(c)}

	var p partial
	if err := p.keep(json.Unmarshal(data, &aux)); err != nil {
		return err
	}
	if err := p.keep(decodeElems("logs", aux.Logs, &c.Logs)); err != nil {
		return err
	}
	return p.err
}

// LogPagination links to the next page of logs.
type LogPagination struct {
	NextURL    string `json:"next_url,omitempty"`
	Matched    *int64 `json:"matched,omitempty"`
	NextCursor string `json:"next_cursor,omitempty"`
}
