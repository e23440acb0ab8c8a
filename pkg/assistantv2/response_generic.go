package assistantv2

import (
	"github.com/tjfontaine/watson-assistant/pkg/tagged"
)

// Response types of RuntimeResponseGeneric.
const (
	ResponseTypeText                 = "text"
	ResponseTypePause                = "pause"
	ResponseTypeImage                = "image"
	ResponseTypeOption               = "option"
	ResponseTypeConnectToAgent       = "connect_to_agent"
	ResponseTypeSuggestion           = "suggestion"
	ResponseTypeChannelTransfer      = "channel_transfer"
	ResponseTypeSearch               = "search"
	ResponseTypeUserDefined          = "user_defined"
	ResponseTypeVideo                = "video"
	ResponseTypeAudio                = "audio"
	ResponseTypeIframe               = "iframe"
	ResponseTypeDate                 = "date"
	ResponseTypeEndSession           = "end_session"
	ResponseTypeConversationalSearch = "conversational_search"
)

// RuntimeResponseGeneric is one output item of a message response. Use a type
// switch to reach the variant; an item whose response_type is unknown to this
// client decodes as *RuntimeResponseGenericBase.
type RuntimeResponseGeneric interface {
	Base() *RuntimeResponseGenericBase
}

// RuntimeResponseGenericBase holds the fields common to every response type.
type RuntimeResponseGenericBase struct {
	tagged.Extra

	ResponseType string                   `json:"response_type"`
	Channels     []ResponseGenericChannel `json:"channels,omitempty"`
}

// Base returns the common fields.
func (b *RuntimeResponseGenericBase) Base() *RuntimeResponseGenericBase { return b }

// ResponseGenericChannel restricts an output item to one integration channel.
type ResponseGenericChannel struct {
	Channel string `json:"channel,omitempty"`
}

type RuntimeResponseGenericText struct {
	RuntimeResponseGenericBase
	Text string `json:"text"`
}

type RuntimeResponseGenericPause struct {
	RuntimeResponseGenericBase
	Time   *int64 `json:"time"` // milliseconds
	Typing *bool  `json:"typing,omitempty"`
}

type RuntimeResponseGenericImage struct {
	RuntimeResponseGenericBase
	Source      string `json:"source"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	AltText     string `json:"alt_text,omitempty"`
}

// Option list presentation.
const (
	PreferenceDropdown = "dropdown"
	PreferenceButton   = "button"
)

type RuntimeResponseGenericOption struct {
	RuntimeResponseGenericBase
	Title       string                           `json:"title"`
	Description string                           `json:"description,omitempty"`
	Preference  string                           `json:"preference,omitempty"`
	Options     []DialogNodeOutputOptionsElement `json:"options"`
}

type RuntimeResponseGenericConnectToAgent struct {
	RuntimeResponseGenericBase
	MessageToHumanAgent string                                      `json:"message_to_human_agent,omitempty"`
	AgentAvailable      *AgentAvailabilityMessage                   `json:"agent_available,omitempty"`
	AgentUnavailable    *AgentAvailabilityMessage                   `json:"agent_unavailable,omitempty"`
	TransferInfo        *DialogNodeOutputConnectToAgentTransferInfo `json:"transfer_info,omitempty"`
	Topic               string                                      `json:"topic,omitempty"`
}

type RuntimeResponseGenericSuggestion struct {
	RuntimeResponseGenericBase
	Title       string             `json:"title"`
	Suggestions []DialogSuggestion `json:"suggestions"`
}

type RuntimeResponseGenericChannelTransfer struct {
	RuntimeResponseGenericBase
	MessageToUser string               `json:"message_to_user"`
	TransferInfo  *ChannelTransferInfo `json:"transfer_info"`
}

type RuntimeResponseGenericSearch struct {
	RuntimeResponseGenericBase
	Header            string         `json:"header"`
	PrimaryResults    []SearchResult `json:"primary_results"`
	AdditionalResults []SearchResult `json:"additional_results"`
}

type RuntimeResponseGenericUserDefined struct {
	RuntimeResponseGenericBase
	UserDefined map[string]any `json:"user_defined"`
}

// RuntimeResponseGenericMedia is shared by the video and audio response
// types.
type RuntimeResponseGenericMedia struct {
	RuntimeResponseGenericBase
	Source         string         `json:"source"`
	Title          string         `json:"title,omitempty"`
	Description    string         `json:"description,omitempty"`
	ChannelOptions map[string]any `json:"channel_options,omitempty"`
	AltText        string         `json:"alt_text,omitempty"`
}

type RuntimeResponseGenericVideo struct {
	RuntimeResponseGenericMedia
}

type RuntimeResponseGenericAudio struct {
	RuntimeResponseGenericMedia
}

type RuntimeResponseGenericIframe struct {
	RuntimeResponseGenericBase
	Source      string `json:"source"`
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
}

type RuntimeResponseGenericDate struct {
	RuntimeResponseGenericBase
}

type RuntimeResponseGenericEndSession struct {
	RuntimeResponseGenericBase
	ChannelOptions map[string]any `json:"channel_options,omitempty"`
}

type RuntimeResponseGenericConversationalSearch struct {
	RuntimeResponseGenericBase
	Text                 string                           `json:"text"`
	CitationsTitle       string                           `json:"citations_title"`
	Citations            []ResponseGenericCitation        `json:"citations"`
	ConfidenceScores     *ResponseGenericConfidenceScores `json:"confidence_scores"`
	ResponseLengthOption string                           `json:"response_length_option"`
	SearchResults        []SearchResults                  `json:"search_results"`
	Disclaimer           string                           `json:"disclaimer"`
}

// ResponseGenericCitation is a passage cited by a generated answer.
type ResponseGenericCitation struct {
	Title             string                              `json:"title"`
	Text              string                              `json:"text"`
	Body              string                              `json:"body"`
	SearchResultIndex *int64                              `json:"search_result_index,omitempty"`
	Ranges            []ResponseGenericCitationRangesItem `json:"ranges"`
}

type ResponseGenericCitationRangesItem struct {
	Start *int64 `json:"start,omitempty"`
	End   *int64 `json:"end,omitempty"`
}

// ResponseGenericConfidenceScores are the scores of a generated answer.
type ResponseGenericConfidenceScores struct {
	Threshold      *float64 `json:"threshold,omitempty"`
	PreGen         *float64 `json:"pre_gen,omitempty"`
	PostGen        *float64 `json:"post_gen,omitempty"`
	Extractiveness *float64 `json:"extractiveness,omitempty"`
}

// SearchResults is a raw search result that fed a generated answer.
type SearchResults struct {
	ResultMetadata *SearchResultsResultMetadata `json:"result_metadata"`
	ID             string                       `json:"id"`
	Title          string                       `json:"title"`
	Body           string                       `json:"body"`
}

type SearchResultsResultMetadata struct {
	DocumentRetrievalSource string   `json:"document_retrieval_source,omitempty"`
	Score                   *float64 `json:"score,omitempty"`
}

var runtimeResponseGenerics = tagged.New[RuntimeResponseGeneric](
	"RuntimeResponseGeneric", "response_type",
	func() RuntimeResponseGeneric { return &RuntimeResponseGenericBase{} },
).
	Require("response_type", tagged.KindString).
	Variant(ResponseTypeText, func() RuntimeResponseGeneric { return &RuntimeResponseGenericText{} }).
	Variant(ResponseTypePause, func() RuntimeResponseGeneric { return &RuntimeResponseGenericPause{} }).
	Variant(ResponseTypeImage, func() RuntimeResponseGeneric { return &RuntimeResponseGenericImage{} }).
	Variant(ResponseTypeOption, func() RuntimeResponseGeneric { return &RuntimeResponseGenericOption{} }).
	Variant(ResponseTypeConnectToAgent, func() RuntimeResponseGeneric { return &RuntimeResponseGenericConnectToAgent{} }).
	Variant(ResponseTypeSuggestion, func() RuntimeResponseGeneric { return &RuntimeResponseGenericSuggestion{} }).
	Variant(ResponseTypeChannelTransfer, func() RuntimeResponseGeneric { return &RuntimeResponseGenericChannelTransfer{} }).
	Variant(ResponseTypeSearch, func() RuntimeResponseGeneric { return &RuntimeResponseGenericSearch{} }).
	Variant(ResponseTypeUserDefined, func() RuntimeResponseGeneric { return &RuntimeResponseGenericUserDefined{} }).
	Variant(ResponseTypeVideo, func() RuntimeResponseGeneric { return &RuntimeResponseGenericVideo{} }).
	Variant(ResponseTypeAudio, func() RuntimeResponseGeneric { return &RuntimeResponseGenericAudio{} }).
	Variant(ResponseTypeIframe, func() RuntimeResponseGeneric { return &RuntimeResponseGenericIframe{} }).
	Variant(ResponseTypeDate, func() RuntimeResponseGeneric { return &RuntimeResponseGenericDate{} }).
	Variant(ResponseTypeEndSession, func() RuntimeResponseGeneric { return &RuntimeResponseGenericEndSession{} }).
	Variant(ResponseTypeConversationalSearch, func() RuntimeResponseGeneric { return &RuntimeResponseGenericConversationalSearch{} })

// RuntimeResponseGenerics returns the decoder family of message output items.
func RuntimeResponseGenerics() *tagged.Family[RuntimeResponseGeneric] {
	return runtimeResponseGenerics
}

// NewTextResponse returns a text output item.
func NewTextResponse(text string) *RuntimeResponseGenericText {
	return &RuntimeResponseGenericText{
		RuntimeResponseGenericBase: RuntimeResponseGenericBase{ResponseType: ResponseTypeText},
		Text:                       text,
	}
}

// NewPauseResponse returns a pause output item of ms milliseconds.
func NewPauseResponse(ms int64, typing bool) *RuntimeResponseGenericPause {
	return &RuntimeResponseGenericPause{
		RuntimeResponseGenericBase: RuntimeResponseGenericBase{ResponseType: ResponseTypePause},
		Time:                       &ms,
		Typing:                     &typing,
	}
}
