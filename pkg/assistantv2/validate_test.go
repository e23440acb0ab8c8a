package assistantv2

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

func TestBuild_AssistantSkill(t *testing.T) {
	skill, err := Build(AssistantSkill{SkillID: "dialog_skill_123", Type: SkillTypeDialog})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if skill.SkillID != "dialog_skill_123" {
		t.Errorf("SkillID = %q, want %q", skill.SkillID, "dialog_skill_123")
	}
	if skill.Type != "dialog" {
		t.Errorf("Type = %q, want %q", skill.Type, "dialog")
	}

	_, err = Build(AssistantSkill{Type: SkillTypeDialog})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("Build error = %v, want *ValidationError", err)
	}
	if ve.Model != "AssistantSkill" || ve.Field != "skill_id" || ve.Reason != ReasonEmpty {
		t.Errorf("ValidationError = %+v, want AssistantSkill/skill_id/empty", ve)
	}
	if got, want := ve.Error(), "AssistantSkill: skill_id is empty"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	tests := []struct {
		name   string
		v      Validator
		model  string
		field  string
		reason ValidationReason
	}{
		{
			name:   "attachment without url",
			v:      &MessageInputAttachment{MediaType: "image/png"},
			model:  "MessageInputAttachment",
			field:  "url",
			reason: ReasonEmpty,
		},
		{
			name:   "provider private without authentication",
			v:      &ProviderPrivate{},
			model:  "ProviderPrivate",
			field:  "authentication",
			reason: ReasonMissing,
		},
		{
			name:   "intent without name",
			v:      &RuntimeIntent{Confidence: Ptr(0.9)},
			model:  "RuntimeIntent",
			field:  "intent",
			reason: ReasonEmpty,
		},
		{
			name:   "entity without value",
			v:      &RuntimeEntity{Entity: "city"},
			model:  "RuntimeEntity",
			field:  "value",
			reason: ReasonEmpty,
		},
		{
			name:   "entity with bad capture group",
			v:      &RuntimeEntity{Entity: "city", Value: "Paris", Groups: []CaptureGroup{{}}},
			model:  "CaptureGroup",
			field:  "group",
			reason: ReasonEmpty,
		},
		{
			name:   "input with bad attachment",
			v:      &MessageInput{Text: "hi", Attachments: []MessageInputAttachment{{}}},
			model:  "MessageInputAttachment",
			field:  "url",
			reason: ReasonEmpty,
		},
		{
			name:   "skill import without type",
			v:      &SkillImport{Language: "en"},
			model:  "SkillImport",
			field:  "type",
			reason: ReasonEmpty,
		},
		{
			name:   "search settings without messages",
			v:      &SearchSettings{Discovery: &SearchSettingsDiscovery{}},
			model:  "SearchSettings",
			field:  "messages",
			reason: ReasonMissing,
		},
		{
			name: "search settings with incomplete discovery",
			v: &SearchSettings{
				Discovery:     &SearchSettingsDiscovery{InstanceID: "i", ProjectID: "p", URL: "https://d"},
				Messages:      &SearchSettingsMessages{Success: "ok", Error: "err", NoResult: "none"},
				SchemaMapping: &SearchSettingsSchemaMapping{URL: "u", Body: "b", Title: "t"},
			},
			model:  "SearchSettingsDiscovery",
			field:  "authentication",
			reason: ReasonMissing,
		},
		{
			name:   "conversational search without enabled",
			v:      &SearchSettingsConversationalSearch{},
			model:  "SearchSettingsConversationalSearch",
			field:  "enabled",
			reason: ReasonMissing,
		},
		{
			name:   "elastic search without index",
			v:      &SearchSettingsElasticSearch{URL: "https://es", Port: "9200"},
			model:  "SearchSettingsElasticSearch",
			field:  "index",
			reason: ReasonEmpty,
		},
		{
			name:   "environment skill without id",
			v:      &EnvironmentSkill{Type: SkillTypeAction},
			model:  "EnvironmentSkill",
			field:  "skill_id",
			reason: ReasonEmpty,
		},
		{
			name:   "delete session with empty session id",
			v:      &DeleteSessionOptions{AssistantID: "a1"},
			model:  "DeleteSessionOptions",
			field:  "session_id",
			reason: ReasonEmpty,
		},
		{
			name:   "delete user data without customer",
			v:      &DeleteUserDataOptions{},
			model:  "DeleteUserDataOptions",
			field:  "customer_id",
			reason: ReasonEmpty,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.v.Validate()
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if ve.Model != tt.model {
				t.Errorf("Model = %q, want %q", ve.Model, tt.model)
			}
			if ve.Field != tt.field {
				t.Errorf("Field = %q, want %q", ve.Field, tt.field)
			}
			if ve.Reason != tt.reason {
				t.Errorf("Reason = %q, want %q", ve.Reason, tt.reason)
			}
		})
	}
}

func TestValidate_Accepts(t *testing.T) {
	tests := []struct {
		name string
		v    Validator
	}{
		{"attachment", &MessageInputAttachment{URL: "https://example.com/a.png"}},
		{"provider private", &ProviderPrivate{Authentication: NewBearerAuthentication("tok")}},
		{"conversational search disabled", &SearchSettingsConversationalSearch{Enabled: Ptr(false)}},
		{"skill without search settings", &Skill{Name: "s"}},
		{"input without parts", &MessageInput{Text: "hello"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.v.Validate(); err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestBuild_ReturnsIndependentCopy(t *testing.T) {
	in := Skill{Name: "s", Workspace: map[string]any{"intents": []any{"greet"}}}
	out, err := Build(in)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	out.Workspace["intents"] = "changed"
	if _, ok := in.Workspace["intents"].([]any); !ok {
		t.Errorf("input workspace was modified through the built copy: %v", in.Workspace)
	}
}

func TestRebuild(t *testing.T) {
	existing := &Skill{
		Name:           "orders",
		SkillID:        "sk1",
		Type:           SkillTypeAction,
		Workspace:      map[string]any{"language": "en"},
		DialogSettings: map[string]any{"source_assistant": "a1"},
	}

	t.Run("no overrides", func(t *testing.T) {
		got, err := Rebuild(existing)
		if err != nil {
			t.Fatalf("Rebuild returned error: %v", err)
		}
		if !reflect.DeepEqual(got, existing) {
			t.Errorf("Rebuild() = %+v, want %+v", got, existing)
		}
		if got == existing {
			t.Error("Rebuild returned the existing pointer")
		}
	})

	t.Run("overrides leave existing untouched", func(t *testing.T) {
		got, err := Rebuild(existing, func(s *Skill) {
			s.Name = "returns"
			s.Workspace["language"] = "fr"
		})
		if err != nil {
			t.Fatalf("Rebuild returned error: %v", err)
		}
		if got.Name != "returns" {
			t.Errorf("Name = %q, want %q", got.Name, "returns")
		}
		if existing.Name != "orders" {
			t.Errorf("existing Name = %q, want %q", existing.Name, "orders")
		}
		if existing.Workspace["language"] != "en" {
			t.Errorf("existing workspace language = %v, want en", existing.Workspace["language"])
		}
	})

	t.Run("override fails validation", func(t *testing.T) {
		skill := &AssistantSkill{SkillID: "dialog_skill_123", Type: SkillTypeDialog}
		_, err := Rebuild(skill, func(s *AssistantSkill) { s.SkillID = "" })
		var ve *ValidationError
		if !errors.As(err, &ve) || ve.Field != "skill_id" {
			t.Errorf("Rebuild error = %v, want skill_id validation error", err)
		}
		if skill.SkillID != "dialog_skill_123" {
			t.Errorf("existing SkillID = %q, want unchanged", skill.SkillID)
		}
	})
}

func TestRebuild_KeepsUnknownMemberPayload(t *testing.T) {
	var existing ProviderPrivate
	if err := json.Unmarshal([]byte(`{"authentication": {"future": {"a": 1}}}`), &existing); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if _, ok := existing.Authentication.(*ProviderPrivateAuthenticationBase); !ok {
		t.Fatalf("Authentication = %T, want *ProviderPrivateAuthenticationBase", existing.Authentication)
	}

	got, err := Rebuild(&existing)
	if err != nil {
		t.Fatalf("Rebuild returned error: %v", err)
	}
	if !reflect.DeepEqual(got, &existing) {
		t.Errorf("Rebuild() = %+v, want %+v", got, &existing)
	}

	raw := got.Authentication.Base().RawJSON()
	if string(raw) != `{"future": {"a": 1}}` {
		t.Errorf("RawJSON() = %s, want the unknown payload", raw)
	}
	if len(raw) > 0 {
		raw[0] = 'X'
	}
	if before := existing.Authentication.Base().RawJSON(); string(before) != `{"future": {"a": 1}}` {
		t.Errorf("existing RawJSON() = %s, want it unchanged by edits to the copy", before)
	}
}

func TestMessageContext_Setters(t *testing.T) {
	var ctx MessageContext
	ctx.SetSkillVariable("account", "123")
	ctx.SetActionVariable("step_1", true)
	ctx.SetUserDefined("name", "Ana")
	ctx.GlobalSystem().Timezone = "Europe/Paris"

	if got := ctx.Skills.ActionsSkill.SkillVariables["account"]; got != "123" {
		t.Errorf("skill variable = %v, want 123", got)
	}
	if got := ctx.Skills.ActionsSkill.ActionVariables["step_1"]; got != true {
		t.Errorf("action variable = %v, want true", got)
	}
	if got := ctx.Skills.MainSkill.UserDefined["name"]; got != "Ana" {
		t.Errorf("user defined = %v, want Ana", got)
	}
	if got := ctx.Global.System.Timezone; got != "Europe/Paris" {
		t.Errorf("timezone = %q, want Europe/Paris", got)
	}
}
