package assistantv2

import (
	"encoding/json"
)

// MessageOutput is the assistant output of one turn.
type MessageOutput struct {
	Generic     []RuntimeResponseGeneric   `json:"generic,omitempty"`
	Intents     []RuntimeIntent            `json:"intents,omitempty"`
	Entities    []RuntimeEntity            `json:"entities,omitempty"`
	Actions     []DialogNodeAction         `json:"actions,omitempty"`
	Debug       *MessageOutputDebug        `json:"debug,omitempty"`
	UserDefined map[string]any             `json:"user_defined,omitempty"`
	Spelling    *MessageOutputSpelling     `json:"spelling,omitempty"`
	LLMMetadata []MessageOutputLLMMetadata `json:"llm_metadata,omitempty"`
}

// UnmarshalJSON decodes generic items through their response_type.
func (o *MessageOutput) UnmarshalJSON(data []byte) error {
	type plain MessageOutput
	aux := struct {
		*plain
		Generic json.RawMessage `json:"generic,omitempty"`
		Debug   json.RawMessage `json:"debug,omitempty"`
	}{plain: (*plain)(o)}

	var p partial
	if err := p.keep(json.Unmarshal(data, &aux)); err != nil {
		return err
	}
	if err := decodeMembers(runtimeResponseGenerics, "generic", aux.Generic, &o.Generic); err != nil {
		return err
	}
	if err := p.keep(decodeField("debug", aux.Debug, &o.Debug)); err != nil {
		return err
	}
	return p.err
}

// ResponseTypes lists the response_type of every generic item, in order.
func (o *MessageOutput) ResponseTypes() []string {
	types := make([]string, 0, len(o.Generic))
	for _, g := range o.Generic {
		types = append(types, g.Base().ResponseType)
	}
	return types
}

// Text joins the text of all text items with newlines.
func (o *MessageOutput) Text() string {
	var out []byte
	for _, g := range o.Generic {
		t, ok := g.(*RuntimeResponseGenericText)
		if !ok {
			continue
		}
		if len(out) > 0 {
			out = append(out, '\n')
		}
		out = append(out, t.Text...)
	}
	return string(out)
}

// MessageOutputSpelling reports spelling correction applied to the input.
type MessageOutputSpelling struct {
	Text          string `json:"text,omitempty"`
	OriginalText  string `json:"original_text,omitempty"`
	SuggestedText string `json:"suggested_text,omitempty"`
}

// MessageOutputLLMMetadata describes a call to a large language model made
// during the turn.
type MessageOutputLLMMetadata struct {
	Task    string `json:"task,omitempty"`
	ModelID string `json:"model_id,omitempty"`
}

// Dialog node action types.
const (
	ActionTypeClient        = "client"
	ActionTypeServer        = "server"
	ActionTypeWebAction     = "web-action"
	ActionTypeCloudFunction = "cloud-function"
	ActionTypeWebhook       = "webhook"
)

// DialogNodeAction is a programmatic call requested by a dialog node.
type DialogNodeAction struct {
	Name           string         `json:"name"`
	Type           string         `json:"type,omitempty"`
	Parameters     map[string]any `json:"parameters,omitempty"`
	ResultVariable string         `json:"result_variable"`
	Credentials    string         `json:"credentials,omitempty"`
}

// DialogNodeOutputOptionsElement is one choice of an option response.
type DialogNodeOutputOptionsElement struct {
	Label string                              `json:"label"`
	Value DialogNodeOutputOptionsElementValue `json:"value"`
}

// DialogNodeOutputOptionsElementValue is the input sent when the option is
// selected.
type DialogNodeOutputOptionsElementValue struct {
	Input *MessageInput `json:"input,omitempty"`
}

// DialogSuggestion is one of the choices offered on disambiguation.
type DialogSuggestion struct {
	Label  string                `json:"label"`
	Value  DialogSuggestionValue `json:"value"`
	Output map[string]any        `json:"output,omitempty"`
}

// DialogSuggestionValue is the input sent when the suggestion is selected.
type DialogSuggestionValue struct {
	Input *MessageInput `json:"input,omitempty"`
}

// AgentAvailabilityMessage is shown depending on human agent availability.
type AgentAvailabilityMessage struct {
	Message string `json:"message,omitempty"`
}

// DialogNodeOutputConnectToAgentTransferInfo routes a transfer to a human
// agent, keyed by integration.
type DialogNodeOutputConnectToAgentTransferInfo struct {
	Target map[string]map[string]any `json:"target,omitempty"`
}

// ChannelTransferInfo describes where a conversation is transferred to.
type ChannelTransferInfo struct {
	Target ChannelTransferTarget `json:"target"`
}

type ChannelTransferTarget struct {
	Chat *ChannelTransferTargetChat `json:"chat,omitempty"`
}

type ChannelTransferTargetChat struct {
	URL string `json:"url,omitempty"`
}

// SearchResult is one result of a search skill.
type SearchResult struct {
	ID             string                 `json:"id"`
	ResultMetadata SearchResultMetadata   `json:"result_metadata"`
	Body           string                 `json:"body,omitempty"`
	Title          string                 `json:"title,omitempty"`
	URL            string                 `json:"url,omitempty"`
	Highlight      *SearchResultHighlight `json:"highlight,omitempty"`
	Answers        []SearchResultAnswer   `json:"answers,omitempty"`
}

type SearchResultMetadata struct {
	Confidence *float64 `json:"confidence,omitempty"`
	Score      *float64 `json:"score,omitempty"`
}

// SearchResultHighlight holds highlighted passages per field. Fields other
// than body, title and url land in Extra.
type SearchResultHighlight struct {
	Body  []string            `json:"body,omitempty"`
	Title []string            `json:"title,omitempty"`
	URL   []string            `json:"url,omitempty"`
	Extra map[string][]string `json:"-"`
}

// UnmarshalJSON keeps highlights of fields outside the fixed set.
func (h *SearchResultHighlight) UnmarshalJSON(data []byte) error {
	type plain SearchResultHighlight
	if err := json.Unmarshal(data, (*plain)(h)); err != nil {
		return err
	}

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	for key, raw := range all {
		switch key {
		case "body", "title", "url":
			continue
		}
		var passages []string
		if err := json.Unmarshal(raw, &passages); err != nil {
			continue
		}
		if h.Extra == nil {
			h.Extra = make(map[string][]string)
		}
		h.Extra[key] = passages
	}
	return nil
}

// MarshalJSON writes Extra back next to the fixed fields.
func (h SearchResultHighlight) MarshalJSON() ([]byte, error) {
	out := make(map[string][]string, len(h.Extra)+3)
	for key, passages := range h.Extra {
		out[key] = passages
	}
	if h.Body != nil {
		out["body"] = h.Body
	}
	if h.Title != nil {
		out["title"] = h.Title
	}
	if h.URL != nil {
		out["url"] = h.URL
	}
	return json.Marshal(out)
}

// SearchResultAnswer is an answer extracted from a search result.
type SearchResultAnswer struct {
	Text       string   `json:"text"`
	Confidence *float64 `json:"confidence"`
}
