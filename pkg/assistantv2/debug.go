package assistantv2

import (
	"encoding/json"

	"github.com/tjfontaine/watson-assistant/pkg/tagged"
)

// MessageOutputDebug is returned when the message asked for debug output.
type MessageOutputDebug struct {
	NodesVisited       []DialogNodeVisited           `json:"nodes_visited,omitempty"`
	LogMessages        []DialogLogMessage            `json:"log_messages,omitempty"`
	BranchExited       *bool                         `json:"branch_exited,omitempty"`
	BranchExitedReason string                        `json:"branch_exited_reason,omitempty"` // "completed" or "fallback"
	TurnEvents         []MessageOutputDebugTurnEvent `json:"turn_events,omitempty"`
}

// UnmarshalJSON decodes log message sources and turn events through their
// families.
func (d *MessageOutputDebug) UnmarshalJSON(data []byte) error {
	type plain MessageOutputDebug
	aux := struct {
		*plain
		LogMessages json.RawMessage `json:"log_messages,omitempty"`
		TurnEvents  json.RawMessage `json:"turn_events,omitempty"`
	}{plain: (*plain)(d)}

	var p partial
	if err := p.keep(json.Unmarshal(data, &aux)); err != nil {
		return err
	}
	if err := p.keep(decodeElems("log_messages", aux.LogMessages, &d.LogMessages)); err != nil {
		return err
	}
	if err := decodeMembers(turnEvents, "turn_events", aux.TurnEvents, &d.TurnEvents); err != nil {
		return err
	}
	return p.err
}

// DialogNodeVisited is a dialog node that was processed during the turn.
type DialogNodeVisited struct {
	DialogNode string `json:"dialog_node,omitempty"`
	Title      string `json:"title,omitempty"`
	Conditions string `json:"conditions,omitempty"`
}

// Log message levels.
const (
	LogLevelInfo  = "info"
	LogLevelError = "error"
	LogLevelWarn  = "warn"
)

// DialogLogMessage is a message logged while processing the turn.
type DialogLogMessage struct {
	Level   string           `json:"level"`
	Message string           `json:"message"`
	Code    string           `json:"code"`
	Source  LogMessageSource `json:"source,omitempty"`
}

// UnmarshalJSON decodes Source through its type.
func (m *DialogLogMessage) UnmarshalJSON(data []byte) error {
	type plain DialogLogMessage
	aux := struct {
		*plain
		Source json.RawMessage `json:"source,omitempty"`
	}{plain: (*plain)(m)}

	var p partial
	if err := p.keep(json.Unmarshal(data, &aux)); err != nil {
		return err
	}
	if err := decodeMember(logMessageSources, "source", aux.Source, &m.Source); err != nil {
		return err
	}
	return p.err
}

// Log message source types.
const (
	LogSourceDialogNode = "dialog_node"
	LogSourceAction     = "action"
	LogSourceStep       = "step"
	LogSourceHandler    = "handler"
)

// LogMessageSource names the dialog node, action, step or handler that
// produced a log message.
type LogMessageSource interface {
	Base() *LogMessageSourceBase
}

// LogMessageSourceBase is the shape of a source of unknown type.
type LogMessageSourceBase struct {
	tagged.Extra

	Type string `json:"type"`
}

// Base returns the common fields.
func (b *LogMessageSourceBase) Base() *LogMessageSourceBase { return b }

type LogMessageSourceDialogNode struct {
	LogMessageSourceBase
	DialogNode string `json:"dialog_node"`
}

type LogMessageSourceAction struct {
	LogMessageSourceBase
	Action string `json:"action"`
}

type LogMessageSourceStep struct {
	LogMessageSourceBase
	Action string `json:"action"`
	Step   string `json:"step"`
}

type LogMessageSourceHandler struct {
	LogMessageSourceBase
	Action  string `json:"action"`
	Step    string `json:"step,omitempty"`
	Handler string `json:"handler"`
}

var logMessageSources = tagged.New[LogMessageSource](
	"LogMessageSource", "type",
	func() LogMessageSource { return &LogMessageSourceBase{} },
).
	Require("type", tagged.KindString).
	Variant(LogSourceDialogNode, func() LogMessageSource { return &LogMessageSourceDialogNode{} }).
	Variant(LogSourceAction, func() LogMessageSource { return &LogMessageSourceAction{} }).
	Variant(LogSourceStep, func() LogMessageSource { return &LogMessageSourceStep{} }).
	Variant(LogSourceHandler, func() LogMessageSource { return &LogMessageSourceHandler{} })

// LogMessageSources returns the decoder family of log message sources.
func LogMessageSources() *tagged.Family[LogMessageSource] { return logMessageSources }

// NewLogMessageSourceHandler returns a handler source.
func NewLogMessageSourceHandler(action, step, handler string) *LogMessageSourceHandler {
	return &LogMessageSourceHandler{
		LogMessageSourceBase: LogMessageSourceBase{Type: LogSourceHandler},
		Action:               action,
		Step:                 step,
		Handler:              handler,
	}
}

// Turn event names.
const (
	EventActionVisited           = "action_visited"
	EventActionFinished          = "action_finished"
	EventStepVisited             = "step_visited"
	EventStepAnswered            = "step_answered"
	EventHandlerVisited          = "handler_visited"
	EventCallout                 = "callout"
	EventSearch                  = "search"
	EventNodeVisited             = "node_visited"
	EventConversationalSearchEnd = "conversational_search_end"
	EventManualRoute             = "manual_route"
	EventTopicSwitchDenied       = "topic_switch_denied"
	EventActionRoutingDenied     = "action_routing_denied"
	EventSuggestionOffered       = "suggestion_offered"
	EventGenerativeAICalled      = "generative_ai_called"
	EventClientActions           = "client_actions"
)

// MessageOutputDebugTurnEvent is one step of the processing trace of a turn.
type MessageOutputDebugTurnEvent interface {
	Base() *TurnEventBase
}

// TurnEventBase is the shape of a turn event of unknown kind.
type TurnEventBase struct {
	tagged.Extra

	Event string `json:"event"`
}

// Base returns the common fields.
func (b *TurnEventBase) Base() *TurnEventBase { return b }

// TurnEventActionSource is the action an event happened in.
type TurnEventActionSource struct {
	Type        string `json:"type,omitempty"`
	Action      string `json:"action,omitempty"`
	ActionTitle string `json:"action_title,omitempty"`
	Condition   string `json:"condition,omitempty"`
}

// TurnEventStepSource is the action step an event happened in.
type TurnEventStepSource struct {
	Type        string `json:"type,omitempty"`
	Action      string `json:"action,omitempty"`
	ActionTitle string `json:"action_title,omitempty"`
	Step        string `json:"step,omitempty"`
	IsAIGuided  *bool  `json:"is_ai_guided,omitempty"`
}

// TurnEventNodeSource is the dialog node an event happened in.
type TurnEventNodeSource struct {
	Type       string `json:"type,omitempty"`
	DialogNode string `json:"dialog_node,omitempty"`
	Title      string `json:"title,omitempty"`
	Condition  string `json:"condition,omitempty"`
}

type TurnEventActionVisited struct {
	TurnEventBase
	Source          *TurnEventActionSource `json:"source,omitempty"`
	ActionStartTime string                 `json:"action_start_time,omitempty"`
	ConditionType   string                 `json:"condition_type,omitempty"`
	Reason          string                 `json:"reason,omitempty"`
	ResultVariable  string                 `json:"result_variable,omitempty"`
}

type TurnEventActionFinished struct {
	TurnEventBase
	Source          *TurnEventActionSource `json:"source,omitempty"`
	ActionStartTime string                 `json:"action_start_time,omitempty"`
	ConditionType   string                 `json:"condition_type,omitempty"`
	Reason          string                 `json:"reason,omitempty"`
	ActionVariables map[string]any         `json:"action_variables,omitempty"`
}

type TurnEventStepVisited struct {
	TurnEventBase
	Source          *TurnEventStepSource `json:"source,omitempty"`
	ConditionType   string               `json:"condition_type,omitempty"`
	ActionStartTime string               `json:"action_start_time,omitempty"`
	HasQuestion     *bool                `json:"has_question,omitempty"`
}

type TurnEventStepAnswered struct {
	TurnEventBase
	Source          *TurnEventStepSource `json:"source,omitempty"`
	ConditionType   string               `json:"condition_type,omitempty"`
	ActionStartTime string               `json:"action_start_time,omitempty"`
	Prompted        *bool                `json:"prompted,omitempty"`
}

type TurnEventHandlerVisited struct {
	TurnEventBase
	Source          *TurnEventActionSource `json:"source,omitempty"`
	ActionStartTime string                 `json:"action_start_time,omitempty"`
}

type TurnEventCallout struct {
	TurnEventBase
	Source  *TurnEventActionSource   `json:"source,omitempty"`
	Callout *TurnEventCalloutCallout `json:"callout,omitempty"`
	Error   *TurnEventError          `json:"error,omitempty"`
}

// TurnEventCalloutCallout describes an outgoing call made by an action.
type TurnEventCalloutCallout struct {
	Type           string         `json:"type,omitempty"` // "integration_interaction", "client" or "webhook"
	Internal       map[string]any `json:"internal,omitempty"`
	ResultVariable string         `json:"result_variable,omitempty"`
	Request        map[string]any `json:"request,omitempty"`
	Response       map[string]any `json:"response,omitempty"`
}

// TurnEventError is the error reported by a callout or search event.
type TurnEventError struct {
	Message string `json:"message,omitempty"`
}

type TurnEventSearch struct {
	TurnEventBase
	Source *TurnEventActionSource `json:"source,omitempty"`
	Error  *TurnEventError        `json:"error,omitempty"`
}

type TurnEventNodeVisited struct {
	TurnEventBase
	Source *TurnEventNodeSource `json:"source,omitempty"`
	Reason string               `json:"reason,omitempty"`
}

type TurnEventConversationalSearchEnd struct {
	TurnEventBase
	Source        *TurnEventActionSource `json:"source,omitempty"`
	ConditionType string                 `json:"condition_type,omitempty"`
}

type TurnEventManualRoute struct {
	TurnEventBase
	Source          *TurnEventStepSource `json:"source,omitempty"`
	ConditionType   string               `json:"condition_type,omitempty"`
	ActionStartTime string               `json:"action_start_time,omitempty"`
	RouteName       string               `json:"route_name,omitempty"`
}

type TurnEventTopicSwitchDenied struct {
	TurnEventBase
	Source        *TurnEventActionSource `json:"source,omitempty"`
	ConditionType string                 `json:"condition_type,omitempty"`
	Reason        string                 `json:"reason,omitempty"`
}

type TurnEventActionRoutingDenied struct {
	TurnEventBase
	Source        *TurnEventActionSource `json:"source,omitempty"`
	ConditionType string                 `json:"condition_type,omitempty"`
	Reason        string                 `json:"reason,omitempty"`
}

type TurnEventSuggestionOffered struct {
	TurnEventBase
	Source *TurnEventActionSource `json:"source,omitempty"`
}

type TurnEventGenerativeAICalled struct {
	TurnEventBase
	Source                map[string]any `json:"source,omitempty"`
	GenerativeAIStartTime string         `json:"generative_ai_start_time,omitempty"`
	GenerativeAI          map[string]any `json:"generative_ai,omitempty"`
	Metrics               map[string]any `json:"metrics,omitempty"`
}

type TurnEventClientActions struct {
	TurnEventBase
	Source        *TurnEventStepSource `json:"source,omitempty"`
	ClientActions []ClientAction       `json:"client_actions,omitempty"`
}

// ClientAction is an action the client application is asked to run.
type ClientAction struct {
	Name           string         `json:"name,omitempty"`
	ResultVariable string         `json:"result_variable,omitempty"`
	Type           string         `json:"type,omitempty"`
	SkillVariable  string         `json:"skill_variable,omitempty"`
	Parameters     map[string]any `json:"parameters,omitempty"`
}

func newTurnEvent[V any, P interface {
	*V
	MessageOutputDebugTurnEvent
}]() MessageOutputDebugTurnEvent {
	return P(new(V))
}

var turnEvents = tagged.New[MessageOutputDebugTurnEvent](
	"MessageOutputDebugTurnEvent", "event",
	func() MessageOutputDebugTurnEvent { return &TurnEventBase{} },
).
	Require("event", tagged.KindString).
	Variant(EventActionVisited, newTurnEvent[TurnEventActionVisited]).
	Variant(EventActionFinished, newTurnEvent[TurnEventActionFinished]).
	Variant(EventStepVisited, newTurnEvent[TurnEventStepVisited]).
	Variant(EventStepAnswered, newTurnEvent[TurnEventStepAnswered]).
	Variant(EventHandlerVisited, newTurnEvent[TurnEventHandlerVisited]).
	Variant(EventCallout, newTurnEvent[TurnEventCallout]).
	Variant(EventSearch, newTurnEvent[TurnEventSearch]).
	Variant(EventNodeVisited, newTurnEvent[TurnEventNodeVisited]).
	Variant(EventConversationalSearchEnd, newTurnEvent[TurnEventConversationalSearchEnd]).
	Variant(EventManualRoute, newTurnEvent[TurnEventManualRoute]).
	Variant(EventTopicSwitchDenied, newTurnEvent[TurnEventTopicSwitchDenied]).
	Variant(EventActionRoutingDenied, newTurnEvent[TurnEventActionRoutingDenied]).
	Variant(EventSuggestionOffered, newTurnEvent[TurnEventSuggestionOffered]).
	Variant(EventGenerativeAICalled, newTurnEvent[TurnEventGenerativeAICalled]).
	Variant(EventClientActions, newTurnEvent[TurnEventClientActions])

// TurnEvents returns the decoder family of debug turn events.
func TurnEvents() *tagged.Family[MessageOutputDebugTurnEvent] { return turnEvents }
