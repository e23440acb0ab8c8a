package assistantv2

import (
	"encoding/json"
	"errors"
	"net/http"
	"reflect"
	"testing"
)

const testVersion = "2024-08-25"

func TestNewRequest(t *testing.T) {
	tests := []struct {
		name   string
		op     Operation
		method string
		path   string
		query  map[string]string
	}{
		{
			name:   "create assistant",
			op:     &CreateAssistantOptions{Name: "support"},
			method: http.MethodPost,
			path:   "/v2/assistants",
		},
		{
			name:   "list assistants",
			op:     &ListAssistantsOptions{ListOptions{PageLimit: Ptr(int64(10)), IncludeCount: Ptr(true), Sort: "name"}},
			method: http.MethodGet,
			path:   "/v2/assistants",
			query:  map[string]string{"page_limit": "10", "include_count": "true", "sort": "name"},
		},
		{
			name:   "delete session",
			op:     &DeleteSessionOptions{AssistantID: "a1", SessionID: "s1"},
			method: http.MethodDelete,
			path:   "/v2/assistants/a1/sessions/s1",
		},
		{
			name:   "message",
			op:     &MessageOptions{AssistantID: "a1", SessionID: "s 1", Input: &MessageInput{Text: "hi"}},
			method: http.MethodPost,
			path:   "/v2/assistants/a1/sessions/s%201/message",
		},
		{
			name:   "stateless message",
			op:     &MessageStatelessOptions{AssistantID: "a1"},
			method: http.MethodPost,
			path:   "/v2/assistants/a1/message",
		},
		{
			name:   "message stream",
			op:     &MessageStreamOptions{AssistantID: "a1", EnvironmentID: "e1", SessionID: "s1"},
			method: http.MethodPost,
			path:   "/v2/assistants/a1/environments/e1/sessions/s1/message_stream",
		},
		{
			name:   "stateless message stream",
			op:     &MessageStreamStatelessOptions{AssistantID: "a1", EnvironmentID: "e1"},
			method: http.MethodPost,
			path:   "/v2/assistants/a1/environments/e1/message_stream",
		},
		{
			name:   "bulk classify",
			op:     &BulkClassifyOptions{SkillID: "sk1", Input: []BulkClassifyUtterance{{Text: "hello"}}},
			method: http.MethodPost,
			path:   "/v2/skills/sk1/workspace/bulk_classify",
		},
		{
			name:   "list logs",
			op:     &ListLogsOptions{AssistantID: "a1", Filter: "request.input.text::hi", PageLimit: Ptr(int64(5))},
			method: http.MethodGet,
			path:   "/v2/assistants/a1/logs",
			query:  map[string]string{"filter": "request.input.text::hi", "page_limit": "5"},
		},
		{
			name:   "delete user data",
			op:     &DeleteUserDataOptions{CustomerID: "c1"},
			method: http.MethodDelete,
			path:   "/v2/user_data",
			query:  map[string]string{"customer_id": "c1"},
		},
		{
			name:   "get environment",
			op:     &GetEnvironmentOptions{AssistantID: "a1", EnvironmentID: "e1", IncludeAudit: Ptr(true)},
			method: http.MethodGet,
			path:   "/v2/assistants/a1/environments/e1",
			query:  map[string]string{"include_audit": "true"},
		},
		{
			name:   "deploy release",
			op:     &DeployReleaseOptions{AssistantID: "a1", Release: "3", EnvironmentID: "e1"},
			method: http.MethodPost,
			path:   "/v2/assistants/a1/releases/3/deploy",
		},
		{
			name:   "import skills status",
			op:     &ImportSkillsStatusOptions{AssistantID: "a1"},
			method: http.MethodGet,
			path:   "/v2/assistants/a1/skills_import/status",
		},
		{
			name:   "update provider",
			op:     &UpdateProviderOptions{ProviderID: "p/1", Specification: &ProviderSpecification{Servers: []ProviderSpecificationServersItem{{URL: "https://x"}}}, Private: &ProviderPrivate{Authentication: NewBearerAuthentication("t")}},
			method: http.MethodPost,
			path:   "/v2/providers/p%2F1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := NewRequest(testVersion, tt.op)
			if err != nil {
				t.Fatalf("NewRequest returned error: %v", err)
			}
			if req.Method != tt.method {
				t.Errorf("Method = %q, want %q", req.Method, tt.method)
			}
			if req.Path != tt.path {
				t.Errorf("Path = %q, want %q", req.Path, tt.path)
			}
			if got := req.Query.Get("version"); got != testVersion {
				t.Errorf("version = %q, want %q", got, testVersion)
			}
			for key, want := range tt.query {
				if got := req.Query.Get(key); got != want {
					t.Errorf("query %s = %q, want %q", key, got, want)
				}
			}
			if len(req.Query) != len(tt.query)+1 {
				t.Errorf("query = %v, want %d parameters", req.Query, len(tt.query)+1)
			}
		})
	}
}

func TestNewRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		version string
		op      Operation
		model   string
		field   string
		reason  ValidationReason
	}{
		{"missing version", "", &CreateAssistantOptions{}, "Request", "version", ReasonEmpty},
		{"empty assistant id", testVersion, &DeleteAssistantOptions{}, "DeleteAssistantOptions", "assistant_id", ReasonEmpty},
		{"empty environment id", testVersion, &MessageStreamOptions{AssistantID: "a1", SessionID: "s1"}, "MessageStreamOptions", "environment_id", ReasonEmpty},
		{"bulk classify without input", testVersion, &BulkClassifyOptions{SkillID: "sk1"}, "BulkClassifyOptions", "input", ReasonMissing},
		{"deploy without environment", testVersion, &DeployReleaseOptions{AssistantID: "a1", Release: "1"}, "DeployReleaseOptions", "environment_id", ReasonEmpty},
		{"import without skills", testVersion, &ImportSkillsOptions{AssistantID: "a1", AssistantState: &SkillsAssistantState{}}, "ImportSkillsOptions", "assistant_skills", ReasonMissing},
		{"import bad skill", testVersion, &ImportSkillsOptions{AssistantID: "a1", AssistantSkills: []SkillImport{{Language: "en"}}, AssistantState: &SkillsAssistantState{}}, "SkillImport", "type", ReasonEmpty},
		{"create provider without id", testVersion, &CreateProviderOptions{}, "CreateProviderOptions", "provider_id", ReasonEmpty},
		{"create provider without authentication", testVersion, &CreateProviderOptions{ProviderID: "p1", Specification: &ProviderSpecification{Servers: []ProviderSpecificationServersItem{{}}}, Private: &ProviderPrivate{}}, "ProviderPrivate", "authentication", ReasonMissing},
		{"message with bad intent", testVersion, &MessageOptions{AssistantID: "a1", SessionID: "s1", Input: &MessageInput{Intents: []RuntimeIntent{{}}}}, "RuntimeIntent", "intent", ReasonEmpty},
		{"update skill with bad search settings", testVersion, &UpdateSkillOptions{AssistantID: "a1", SkillID: "sk1", SearchSettings: &SearchSettings{}}, "SearchSettings", "discovery", ReasonMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRequest(tt.version, tt.op)
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("NewRequest error = %v, want *ValidationError", err)
			}
			if ve.Model != tt.model || ve.Field != tt.field || ve.Reason != tt.reason {
				t.Errorf("ValidationError = %+v, want %s/%s/%s", ve, tt.model, tt.field, tt.reason)
			}
		})
	}
}

func TestEncodeBody(t *testing.T) {
	tests := []struct {
		name string
		op   Operation
		want map[string]any
	}{
		{
			name: "message",
			op: &MessageOptions{
				AssistantID: "a1",
				SessionID:   "s1",
				Input:       &MessageInput{Text: "hi", Options: &MessageInputOptions{ReturnContext: Ptr(true)}},
				UserID:      "u1",
			},
			want: map[string]any{
				"input":   map[string]any{"text": "hi", "options": map[string]any{"return_context": true}},
				"user_id": "u1",
			},
		},
		{
			name: "update environment",
			op: &UpdateEnvironmentOptions{
				AssistantID:     "a1",
				EnvironmentID:   "e1",
				SessionTimeout:  Ptr(int64(60)),
				SkillReferences: []EnvironmentSkill{{SkillID: "sk1", Type: SkillTypeAction}},
			},
			want: map[string]any{
				"session_timeout":  float64(60),
				"skill_references": []any{map[string]any{"skill_id": "sk1", "type": "action"}},
			},
		},
		{
			name: "deploy release",
			op:   &DeployReleaseOptions{AssistantID: "a1", Release: "2", EnvironmentID: "e1", IncludeAudit: Ptr(true)},
			want: map[string]any{"environment_id": "e1"},
		},
		{
			name: "create session",
			op:   &CreateSessionOptions{AssistantID: "a1"},
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := EncodeBody(tt.op)
			if err != nil {
				t.Fatalf("EncodeBody returned error: %v", err)
			}
			var got map[string]any
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("body is not an object: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("body = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEncodeBody_NoBody(t *testing.T) {
	data, err := EncodeBody(&GetSkillOptions{AssistantID: "a1", SkillID: "sk1"})
	if err != nil {
		t.Fatalf("EncodeBody returned error: %v", err)
	}
	if data != nil {
		t.Errorf("EncodeBody() = %s, want nil", data)
	}
}

func TestRequest_URL(t *testing.T) {
	req, err := NewRequest(testVersion, &GetReleaseOptions{AssistantID: "a1", Release: "4"})
	if err != nil {
		t.Fatalf("NewRequest returned error: %v", err)
	}

	tests := []struct {
		serviceURL string
		want       string
	}{
		{"https://api.us-south.assistant.watson.cloud.ibm.com", "https://api.us-south.assistant.watson.cloud.ibm.com/v2/assistants/a1/releases/4?version=2024-08-25"},
		{"https://host/instances/i1/", "https://host/instances/i1/v2/assistants/a1/releases/4?version=2024-08-25"},
	}
	for _, tt := range tests {
		got, err := req.URL(tt.serviceURL)
		if err != nil {
			t.Fatalf("URL(%q) returned error: %v", tt.serviceURL, err)
		}
		if got != tt.want {
			t.Errorf("URL(%q) = %q, want %q", tt.serviceURL, got, tt.want)
		}
	}
}
