package assistantv2

import (
	"encoding/json"

	"github.com/tjfontaine/watson-assistant/pkg/tagged"
)

// Marker keys of the stream event families.
const (
	StreamPartialItem   = "partial_item"
	StreamCompleteItem  = "complete_item"
	StreamFinalResponse = "final_response"
)

// MessageStreamResponse is one event of a stateful message stream: a
// *MessageStreamPartialItem, *MessageStreamCompleteItem or
// *MessageStreamFinalResponse. An event with none of those keys decodes as
// *MessageStreamResponseBase.
type MessageStreamResponse interface {
	Base() *MessageStreamResponseBase
}

// MessageStreamResponseBase is the shape of a stream event of unknown kind.
// It is shared by the stateful and stateless stream families.
type MessageStreamResponseBase struct {
	tagged.Extra
}

// Base returns the common fields.
func (b *MessageStreamResponseBase) Base() *MessageStreamResponseBase { return b }

// MessageStreamMetadata ties partial items to the complete item they build.
type MessageStreamMetadata struct {
	ID string `json:"id"`
}

// PartialItem is a fragment of an output item that is still being
// generated.
type PartialItem struct {
	ResponseType      string                 `json:"response_type,omitempty"`
	Text              string                 `json:"text,omitempty"`
	StreamingMetadata *MessageStreamMetadata `json:"streaming_metadata,omitempty"`
}

// CompleteItem is a finished output item together with the stream metadata
// of the partial items it replaces.
type CompleteItem struct {
	Item              RuntimeResponseGeneric
	StreamingMetadata *MessageStreamMetadata
}

// UnmarshalJSON decodes Item through its response_type.
func (c *CompleteItem) UnmarshalJSON(data []byte) error {
	var meta struct {
		StreamingMetadata *MessageStreamMetadata `json:"streaming_metadata"`
	}
	var p partial
	if err := p.keep(json.Unmarshal(data, &meta)); err != nil {
		return err
	}

	item, err := runtimeResponseGenerics.Decode(data)
	if err != nil {
		return err
	}
	c.Item = item
	c.StreamingMetadata = meta.StreamingMetadata
	return p.err
}

// MarshalJSON flattens the item and its stream metadata into one object.
func (c CompleteItem) MarshalJSON() ([]byte, error) {
	fields := make(map[string]json.RawMessage)
	if c.Item != nil {
		item, err := json.Marshal(c.Item)
		if err != nil {
			return nil, err
		}
		if err := json.Unmarshal(item, &fields); err != nil {
			return nil, err
		}
	}
	if c.StreamingMetadata != nil {
		meta, err := json.Marshal(c.StreamingMetadata)
		if err != nil {
			return nil, err
		}
		fields["streaming_metadata"] = meta
	}
	return json.Marshal(fields)
}

type MessageStreamPartialItem struct {
	MessageStreamResponseBase
	PartialItem *PartialItem `json:"partial_item"`
}

type MessageStreamCompleteItem struct {
	MessageStreamResponseBase
	CompleteItem *CompleteItem `json:"complete_item"`
}

// UnmarshalJSON prefixes decode errors of the item with complete_item.
func (e *MessageStreamCompleteItem) UnmarshalJSON(data []byte) error {
	return unmarshalMarker(data, StreamCompleteItem, &e.CompleteItem)
}

type MessageStreamFinalResponse struct {
	MessageStreamResponseBase
	FinalResponse *MessageResponse `json:"final_response"`
}

// UnmarshalJSON prefixes decode errors of the response with final_response.
func (e *MessageStreamFinalResponse) UnmarshalJSON(data []byte) error {
	return unmarshalMarker(data, StreamFinalResponse, &e.FinalResponse)
}

// StatelessMessageStreamResponse is one event of a stateless message
// stream. It differs from MessageStreamResponse only in the final response,
// which carries a stateless context.
type StatelessMessageStreamResponse interface {
	Base() *MessageStreamResponseBase
}

type StatelessMessageStreamFinalResponse struct {
	MessageStreamResponseBase
	FinalResponse *StatelessMessageResponse `json:"final_response"`
}

// UnmarshalJSON prefixes decode errors of the response with final_response.
func (e *StatelessMessageStreamFinalResponse) UnmarshalJSON(data []byte) error {
	return unmarshalMarker(data, StreamFinalResponse, &e.FinalResponse)
}

// unmarshalMarker decodes the member under key into dst.
func unmarshalMarker(data []byte, key string, dst any) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	return decodeField(key, obj[key], dst)
}

var messageStreamResponses = tagged.ByKey[MessageStreamResponse](
	"MessageStreamResponse",
	func() MessageStreamResponse { return &MessageStreamResponseBase{} },
).
	Variant(StreamPartialItem, func() MessageStreamResponse { return &MessageStreamPartialItem{} }).
	Variant(StreamCompleteItem, func() MessageStreamResponse { return &MessageStreamCompleteItem{} }).
	Variant(StreamFinalResponse, func() MessageStreamResponse { return &MessageStreamFinalResponse{} })

var statelessMessageStreamResponses = tagged.ByKey[StatelessMessageStreamResponse](
	"StatelessMessageStreamResponse",
	func() StatelessMessageStreamResponse { return &MessageStreamResponseBase{} },
).
	Variant(StreamPartialItem, func() StatelessMessageStreamResponse { return &MessageStreamPartialItem{} }).
	Variant(StreamCompleteItem, func() StatelessMessageStreamResponse { return &MessageStreamCompleteItem{} }).
	Variant(StreamFinalResponse, func() StatelessMessageStreamResponse { return &StatelessMessageStreamFinalResponse{} })

// MessageStreamResponses returns the decoder family of stateful stream
// events.
func MessageStreamResponses() *tagged.Family[MessageStreamResponse] {
	return messageStreamResponses
}

// StatelessMessageStreamResponses returns the decoder family of stateless
// stream events.
func StatelessMessageStreamResponses() *tagged.Family[StatelessMessageStreamResponse] {
	return statelessMessageStreamResponses
}
