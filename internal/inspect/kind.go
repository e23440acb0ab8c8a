package inspect

import (
	"bytes"
	"encoding/json"
)

// Kind selects how a payload is decoded.
type Kind string

const (
	KindAuto             Kind = "auto"
	KindMessage          Kind = "message"
	KindStatelessMessage Kind = "stateless-message"
	KindStream           Kind = "stream"
	KindStatelessStream  Kind = "stateless-stream"
	KindLogs             Kind = "logs"
	KindSkill            Kind = "skill"
	KindEnvironment      Kind = "environment"
	KindProvider         Kind = "provider"
)

// Kinds lists every accepted kind.
func Kinds() []Kind {
	return []Kind{
		KindAuto, KindMessage, KindStatelessMessage, KindStream, KindStatelessStream,
		KindLogs, KindSkill, KindEnvironment, KindProvider,
	}
}

// Format selects how reports are rendered.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists every accepted format.
func Formats() []Format {
	return []Format{FormatTable, FormatJSON, FormatYAML}
}

// Detect guesses the kind of a payload from its top-level keys. Bodies that
// are not a single JSON object are taken to be event streams. It returns
// KindAuto when nothing matches.
func Detect(data []byte) Kind {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] != '[' {
			return KindStream
		}
		return KindAuto
	}

	has := func(keys ...string) bool {
		for _, k := range keys {
			if _, ok := top[k]; ok {
				return true
			}
		}
		return false
	}

	switch {
	case has("partial_item", "complete_item", "final_response"):
		return KindStream
	case has("logs"):
		return KindLogs
	case has("output"):
		return KindMessage
	case has("provider_id", "conversational_skill_providers"):
		return KindProvider
	case has("skill_id", "search_settings", "workspace"):
		return KindSkill
	case has("environment_id", "skill_references", "environments"):
		return KindEnvironment
	}
	return KindAuto
}
