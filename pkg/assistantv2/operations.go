package assistantv2

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Operation is the options type of one API operation. It validates its
// required parameters and describes the HTTP request the transport has to
// send; it performs no I/O itself.
type Operation interface {
	Validator

	// Request describes the request. It may be called on options that have
	// not been validated; use NewRequest for a checked request.
	Request() *Request
}

// Request is the transport-neutral description of an API call.
type Request struct {
	Method string
	Path   string
	Query  url.Values

	// Body is marshaled to JSON when non-nil.
	Body any
}

// NewRequest validates op and returns its request with the API version date
// (e.g. "2024-08-25") in the query.
func NewRequest(version string, op Operation) (*Request, error) {
	if err := validate("Request", nonEmpty("version", version)); err != nil {
		return nil, err
	}
	if err := op.Validate(); err != nil {
		return nil, err
	}

	req := op.Request()
	if req.Query == nil {
		req.Query = url.Values{}
	}
	req.Query.Set("version", version)
	return req, nil
}

// URL appends the request path and query to the service URL. Path is
// already escaped.
func (r *Request) URL(serviceURL string) (string, error) {
	if _, err := url.Parse(serviceURL); err != nil {
		return "", fmt.Errorf("parse service url: %w", err)
	}
	u := strings.TrimSuffix(serviceURL, "/") + r.Path
	if q := r.Query.Encode(); q != "" {
		u += "?" + q
	}
	return u, nil
}

// EncodeBody validates op and marshals its body. It returns nil for
// operations without a body.
func EncodeBody(op Operation) ([]byte, error) {
	if err := op.Validate(); err != nil {
		return nil, err
	}
	req := op.Request()
	if req.Body == nil {
		return nil, nil
	}
	data, err := json.Marshal(req.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	return data, nil
}

// path joins escaped segments below /v2.
func path(segments ...string) string {
	p := "/v2"
	for _, s := range segments {
		p += "/" + url.PathEscape(s)
	}
	return p
}

type query url.Values

func (q query) str(key, v string) {
	if v != "" {
		url.Values(q).Set(key, v)
	}
}

func (q query) boolean(key string, v *bool) {
	if v != nil {
		url.Values(q).Set(key, strconv.FormatBool(*v))
	}
}

func (q query) integer(key string, v *int64) {
	if v != nil {
		url.Values(q).Set(key, strconv.FormatInt(*v, 10))
	}
}

// ListOptions are the paging parameters shared by list operations.
type ListOptions struct {
	PageLimit    *int64
	IncludeCount *bool
	Sort         string
	Cursor       string
	IncludeAudit *bool
}

func (o ListOptions) query() url.Values {
	q := query{}
	q.integer("page_limit", o.PageLimit)
	q.boolean("include_count", o.IncludeCount)
	q.str("sort", o.Sort)
	q.str("cursor", o.Cursor)
	q.boolean("include_audit", o.IncludeAudit)
	return url.Values(q)
}

func auditQuery(includeAudit *bool) url.Values {
	q := query{}
	q.boolean("include_audit", includeAudit)
	return url.Values(q)
}

// CreateAssistantOptions creates an assistant.
type CreateAssistantOptions struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
}

func (o *CreateAssistantOptions) Validate() error { return nil }

func (o *CreateAssistantOptions) Request() *Request {
	return &Request{Method: http.MethodPost, Path: path("assistants"), Body: o}
}

// ListAssistantsOptions lists assistants.
type ListAssistantsOptions struct {
	ListOptions
}

func (o *ListAssistantsOptions) Validate() error { return nil }

func (o *ListAssistantsOptions) Request() *Request {
	return &Request{Method: http.MethodGet, Path: path("assistants"), Query: o.query()}
}

// DeleteAssistantOptions deletes an assistant.
type DeleteAssistantOptions struct {
	AssistantID string
}

func (o *DeleteAssistantOptions) Validate() error {
	return validate("DeleteAssistantOptions", nonEmpty("assistant_id", o.AssistantID))
}

func (o *DeleteAssistantOptions) Request() *Request {
	return &Request{Method: http.MethodDelete, Path: path("assistants", o.AssistantID)}
}

// CreateSessionOptions starts a session.
type CreateSessionOptions struct {
	AssistantID string
	Analytics   *RequestAnalytics
}

func (o *CreateSessionOptions) Validate() error {
	return validate("CreateSessionOptions", nonEmpty("assistant_id", o.AssistantID))
}

func (o *CreateSessionOptions) Request() *Request {
	body := struct {
		Analytics *RequestAnalytics `json:"analytics,omitempty"`
	}{o.Analytics}
	return &Request{Method: http.MethodPost, Path: path("assistants", o.AssistantID, "sessions"), Body: body}
}

// DeleteSessionOptions ends a session.
type DeleteSessionOptions struct {
	AssistantID string
	SessionID   string
}

func (o *DeleteSessionOptions) Validate() error {
	return validate("DeleteSessionOptions",
		nonEmpty("assistant_id", o.AssistantID),
		nonEmpty("session_id", o.SessionID),
	)
}

func (o *DeleteSessionOptions) Request() *Request {
	return &Request{Method: http.MethodDelete, Path: path("assistants", o.AssistantID, "sessions", o.SessionID)}
}

type messageBody struct {
	Input   any    `json:"input,omitempty"`
	Context any    `json:"context,omitempty"`
	UserID  string `json:"user_id,omitempty"`
}

// MessageOptions sends user input to a session.
type MessageOptions struct {
	AssistantID string
	SessionID   string
	Input       *MessageInput
	Context     *MessageContext
	UserID      string
}

func (o *MessageOptions) Validate() error {
	err := validate("MessageOptions",
		nonEmpty("assistant_id", o.AssistantID),
		nonEmpty("session_id", o.SessionID),
	)
	if err != nil || o.Input == nil {
		return err
	}
	return o.Input.Validate()
}

func (o *MessageOptions) Request() *Request {
	return &Request{
		Method: http.MethodPost,
		Path:   path("assistants", o.AssistantID, "sessions", o.SessionID, "message"),
		Body:   messageBody{Input: nilIfNil(o.Input), Context: nilIfNil(o.Context), UserID: o.UserID},
	}
}

// MessageStatelessOptions sends user input without a session.
type MessageStatelessOptions struct {
	AssistantID string
	Input       *MessageInputStateless
	Context     *StatelessMessageContext
	UserID      string
}

func (o *MessageStatelessOptions) Validate() error {
	if err := validate("MessageStatelessOptions", nonEmpty("assistant_id", o.AssistantID)); err != nil {
		return err
	}
	if o.Input == nil {
		return nil
	}
	return o.Input.Validate()
}

func (o *MessageStatelessOptions) Request() *Request {
	return &Request{
		Method: http.MethodPost,
		Path:   path("assistants", o.AssistantID, "message"),
		Body:   messageBody{Input: nilIfNil(o.Input), Context: nilIfNil(o.Context), UserID: o.UserID},
	}
}

// MessageStreamOptions sends user input to a session and streams the
// response.
type MessageStreamOptions struct {
	AssistantID   string
	EnvironmentID string
	SessionID     string
	Input         *MessageInput
	Context       *MessageContext
	UserID        string
}

func (o *MessageStreamOptions) Validate() error {
	err := validate("MessageStreamOptions",
		nonEmpty("assistant_id", o.AssistantID),
		nonEmpty("environment_id", o.EnvironmentID),
		nonEmpty("session_id", o.SessionID),
	)
	if err != nil || o.Input == nil {
		return err
	}
	return o.Input.Validate()
}

func (o *MessageStreamOptions) Request() *Request {
	return &Request{
		Method: http.MethodPost,
		Path:   path("assistants", o.AssistantID, "environments", o.EnvironmentID, "sessions", o.SessionID, "message_stream"),
		Body:   messageBody{Input: nilIfNil(o.Input), Context: nilIfNil(o.Context), UserID: o.UserID},
	}
}

// MessageStreamStatelessOptions sends user input without a session and
// streams the response.
type MessageStreamStatelessOptions struct {
	AssistantID   string
	EnvironmentID string
	Input         *MessageInput
	Context       *MessageContext
	UserID        string
}

func (o *MessageStreamStatelessOptions) Validate() error {
	err := validate("MessageStreamStatelessOptions",
		nonEmpty("assistant_id", o.AssistantID),
		nonEmpty("environment_id", o.EnvironmentID),
	)
	if err != nil || o.Input == nil {
		return err
	}
	return o.Input.Validate()
}

func (o *MessageStreamStatelessOptions) Request() *Request {
	return &Request{
		Method: http.MethodPost,
		Path:   path("assistants", o.AssistantID, "environments", o.EnvironmentID, "message_stream"),
		Body:   messageBody{Input: nilIfNil(o.Input), Context: nilIfNil(o.Context), UserID: o.UserID},
	}
}

// nilIfNil turns a typed nil pointer into an untyped nil so omitempty drops
// it.
func nilIfNil[T any](v *T) any {
	if v == nil {
		return nil
	}
	return v
}

// BulkClassifyOptions classifies a batch of utterances against a skill.
type BulkClassifyOptions struct {
	SkillID string
	Input   []BulkClassifyUtterance
}

func (o *BulkClassifyOptions) Validate() error {
	err := validate("BulkClassifyOptions",
		nonEmpty("skill_id", o.SkillID),
		present("input", o.Input),
	)
	if err != nil {
		return err
	}
	for i := range o.Input {
		if err := o.Input[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (o *BulkClassifyOptions) Request() *Request {
	body := struct {
		Input []BulkClassifyUtterance `json:"input"`
	}{o.Input}
	return &Request{Method: http.MethodPost, Path: path("skills", o.SkillID, "workspace", "bulk_classify"), Body: body}
}

// ListLogsOptions lists the message logs of an assistant.
type ListLogsOptions struct {
	AssistantID string
	Sort        string
	Filter      string
	PageLimit   *int64
	Cursor      string
}

func (o *ListLogsOptions) Validate() error {
	return validate("ListLogsOptions", nonEmpty("assistant_id", o.AssistantID))
}

func (o *ListLogsOptions) Request() *Request {
	q := query{}
	q.str("sort", o.Sort)
	q.str("filter", o.Filter)
	q.integer("page_limit", o.PageLimit)
	q.str("cursor", o.Cursor)
	return &Request{Method: http.MethodGet, Path: path("assistants", o.AssistantID, "logs"), Query: url.Values(q)}
}

// DeleteUserDataOptions deletes all data tagged with a customer ID.
type DeleteUserDataOptions struct {
	CustomerID string
}

func (o *DeleteUserDataOptions) Validate() error {
	return validate("DeleteUserDataOptions", nonEmpty("customer_id", o.CustomerID))
}

func (o *DeleteUserDataOptions) Request() *Request {
	return &Request{
		Method: http.MethodDelete,
		Path:   path("user_data"),
		Query:  url.Values{"customer_id": {o.CustomerID}},
	}
}

// ListEnvironmentsOptions lists the environments of an assistant.
type ListEnvironmentsOptions struct {
	AssistantID string
	ListOptions
}

func (o *ListEnvironmentsOptions) Validate() error {
	return validate("ListEnvironmentsOptions", nonEmpty("assistant_id", o.AssistantID))
}

func (o *ListEnvironmentsOptions) Request() *Request {
	return &Request{Method: http.MethodGet, Path: path("assistants", o.AssistantID, "environments"), Query: o.query()}
}

// GetEnvironmentOptions gets one environment.
type GetEnvironmentOptions struct {
	AssistantID   string
	EnvironmentID string
	IncludeAudit  *bool
}

func (o *GetEnvironmentOptions) Validate() error {
	return validate("GetEnvironmentOptions",
		nonEmpty("assistant_id", o.AssistantID),
		nonEmpty("environment_id", o.EnvironmentID),
	)
}

func (o *GetEnvironmentOptions) Request() *Request {
	return &Request{
		Method: http.MethodGet,
		Path:   path("assistants", o.AssistantID, "environments", o.EnvironmentID),
		Query:  auditQuery(o.IncludeAudit),
	}
}

// UpdateEnvironmentOptions changes an environment. Only the fields that are
// set are sent.
type UpdateEnvironmentOptions struct {
	AssistantID     string                    `json:"-"`
	EnvironmentID   string                    `json:"-"`
	Name            string                    `json:"name,omitempty"`
	Description     string                    `json:"description,omitempty"`
	Orchestration   *EnvironmentOrchestration `json:"orchestration,omitempty"`
	SessionTimeout  *int64                    `json:"session_timeout,omitempty"`
	SkillReferences []EnvironmentSkill        `json:"skill_references,omitempty"`
}

func (o *UpdateEnvironmentOptions) Validate() error {
	err := validate("UpdateEnvironmentOptions",
		nonEmpty("assistant_id", o.AssistantID),
		nonEmpty("environment_id", o.EnvironmentID),
	)
	if err != nil {
		return err
	}
	for i := range o.SkillReferences {
		if err := o.SkillReferences[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (o *UpdateEnvironmentOptions) Request() *Request {
	return &Request{
		Method: http.MethodPost,
		Path:   path("assistants", o.AssistantID, "environments", o.EnvironmentID),
		Body:   o,
	}
}

// CreateReleaseOptions snapshots the draft skills into a new release.
type CreateReleaseOptions struct {
	AssistantID string `json:"-"`
	Description string `json:"description,omitempty"`
}

func (o *CreateReleaseOptions) Validate() error {
	return validate("CreateReleaseOptions", nonEmpty("assistant_id", o.AssistantID))
}

func (o *CreateReleaseOptions) Request() *Request {
	return &Request{Method: http.MethodPost, Path: path("assistants", o.AssistantID, "releases"), Body: o}
}

// ListReleasesOptions lists the releases of an assistant.
type ListReleasesOptions struct {
	AssistantID string
	ListOptions
}

func (o *ListReleasesOptions) Validate() error {
	return validate("ListReleasesOptions", nonEmpty("assistant_id", o.AssistantID))
}

func (o *ListReleasesOptions) Request() *Request {
	return &Request{Method: http.MethodGet, Path: path("assistants", o.AssistantID, "releases"), Query: o.query()}
}

// GetReleaseOptions gets one release.
type GetReleaseOptions struct {
	AssistantID  string
	Release      string
	IncludeAudit *bool
}

func (o *GetReleaseOptions) Validate() error {
	return validate("GetReleaseOptions",
		nonEmpty("assistant_id", o.AssistantID),
		nonEmpty("release", o.Release),
	)
}

func (o *GetReleaseOptions) Request() *Request {
	return &Request{
		Method: http.MethodGet,
		Path:   path("assistants", o.AssistantID, "releases", o.Release),
		Query:  auditQuery(o.IncludeAudit),
	}
}

// DeleteReleaseOptions deletes a release.
type DeleteReleaseOptions struct {
	AssistantID string
	Release     string
}

func (o *DeleteReleaseOptions) Validate() error {
	return validate("DeleteReleaseOptions",
		nonEmpty("assistant_id", o.AssistantID),
		nonEmpty("release", o.Release),
	)
}

func (o *DeleteReleaseOptions) Request() *Request {
	return &Request{Method: http.MethodDelete, Path: path("assistants", o.AssistantID, "releases", o.Release)}
}

// DeployReleaseOptions deploys a release to an environment.
type DeployReleaseOptions struct {
	AssistantID   string `json:"-"`
	Release       string `json:"-"`
	EnvironmentID string `json:"environment_id"`
	IncludeAudit  *bool  `json:"-"`
}

func (o *DeployReleaseOptions) Validate() error {
	return validate("DeployReleaseOptions",
		nonEmpty("assistant_id", o.AssistantID),
		nonEmpty("release", o.Release),
		present("environment_id", o.EnvironmentID),
	)
}

func (o *DeployReleaseOptions) Request() *Request {
	return &Request{
		Method: http.MethodPost,
		Path:   path("assistants", o.AssistantID, "releases", o.Release, "deploy"),
		Query:  auditQuery(o.IncludeAudit),
		Body:   o,
	}
}

// GetSkillOptions gets one skill.
type GetSkillOptions struct {
	AssistantID string
	SkillID     string
}

func (o *GetSkillOptions) Validate() error {
	return validate("GetSkillOptions",
		nonEmpty("assistant_id", o.AssistantID),
		nonEmpty("skill_id", o.SkillID),
	)
}

func (o *GetSkillOptions) Request() *Request {
	return &Request{Method: http.MethodGet, Path: path("assistants", o.AssistantID, "skills", o.SkillID)}
}

// UpdateSkillOptions changes a skill. Only the fields that are set are sent.
type UpdateSkillOptions struct {
	AssistantID    string          `json:"-"`
	SkillID        string          `json:"-"`
	Name           string          `json:"name,omitempty"`
	Description    string          `json:"description,omitempty"`
	Workspace      map[string]any  `json:"workspace,omitempty"`
	DialogSettings map[string]any  `json:"dialog_settings,omitempty"`
	SearchSettings *SearchSettings `json:"search_settings,omitempty"`
}

func (o *UpdateSkillOptions) Validate() error {
	err := validate("UpdateSkillOptions",
		nonEmpty("assistant_id", o.AssistantID),
		nonEmpty("skill_id", o.SkillID),
	)
	if err != nil || o.SearchSettings == nil {
		return err
	}
	return o.SearchSettings.Validate()
}

func (o *UpdateSkillOptions) Request() *Request {
	return &Request{Method: http.MethodPost, Path: path("assistants", o.AssistantID, "skills", o.SkillID), Body: o}
}

// ExportSkillsOptions exports the skills of an assistant.
type ExportSkillsOptions struct {
	AssistantID  string
	IncludeAudit *bool
}

func (o *ExportSkillsOptions) Validate() error {
	return validate("ExportSkillsOptions", nonEmpty("assistant_id", o.AssistantID))
}

func (o *ExportSkillsOptions) Request() *Request {
	return &Request{
		Method: http.MethodGet,
		Path:   path("assistants", o.AssistantID, "skills_export"),
		Query:  auditQuery(o.IncludeAudit),
	}
}

// ImportSkillsOptions replaces the skills of an assistant asynchronously.
type ImportSkillsOptions struct {
	AssistantID     string                `json:"-"`
	AssistantSkills []SkillImport         `json:"assistant_skills"`
	AssistantState  *SkillsAssistantState `json:"assistant_state"`
	IncludeAudit    *bool                 `json:"-"`
}

func (o *ImportSkillsOptions) Validate() error {
	err := validate("ImportSkillsOptions",
		nonEmpty("assistant_id", o.AssistantID),
		present("assistant_skills", o.AssistantSkills),
		present("assistant_state", o.AssistantState),
	)
	if err != nil {
		return err
	}
	for i := range o.AssistantSkills {
		if err := o.AssistantSkills[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (o *ImportSkillsOptions) Request() *Request {
	return &Request{
		Method: http.MethodPost,
		Path:   path("assistants", o.AssistantID, "skills_import"),
		Query:  auditQuery(o.IncludeAudit),
		Body:   o,
	}
}

// ImportSkillsStatusOptions polls the status of a skills import.
type ImportSkillsStatusOptions struct {
	AssistantID string
}

func (o *ImportSkillsStatusOptions) Validate() error {
	return validate("ImportSkillsStatusOptions", nonEmpty("assistant_id", o.AssistantID))
}

func (o *ImportSkillsStatusOptions) Request() *Request {
	return &Request{Method: http.MethodGet, Path: path("assistants", o.AssistantID, "skills_import", "status")}
}

// CreateProviderOptions registers a conversational skill provider.
type CreateProviderOptions struct {
	ProviderID    string                 `json:"provider_id"`
	Specification *ProviderSpecification `json:"specification"`
	Private       *ProviderPrivate       `json:"private"`
}

func (o *CreateProviderOptions) Validate() error {
	err := validate("CreateProviderOptions",
		present("provider_id", o.ProviderID),
		present("specification", o.Specification),
		present("private", o.Private),
	)
	if err != nil {
		return err
	}
	if err := o.Specification.Validate(); err != nil {
		return err
	}
	return o.Private.Validate()
}

func (o *CreateProviderOptions) Request() *Request {
	return &Request{Method: http.MethodPost, Path: path("providers"), Body: o}
}

// ListProvidersOptions lists conversational skill providers.
type ListProvidersOptions struct {
	ListOptions
}

func (o *ListProvidersOptions) Validate() error { return nil }

func (o *ListProvidersOptions) Request() *Request {
	return &Request{Method: http.MethodGet, Path: path("providers"), Query: o.query()}
}

// UpdateProviderOptions replaces the configuration of a provider.
type UpdateProviderOptions struct {
	ProviderID    string                 `json:"-"`
	Specification *ProviderSpecification `json:"specification"`
	Private       *ProviderPrivate       `json:"private"`
}

func (o *UpdateProviderOptions) Validate() error {
	err := validate("UpdateProviderOptions",
		nonEmpty("provider_id", o.ProviderID),
		present("specification", o.Specification),
		present("private", o.Private),
	)
	if err != nil {
		return err
	}
	if err := o.Specification.Validate(); err != nil {
		return err
	}
	return o.Private.Validate()
}

func (o *UpdateProviderOptions) Request() *Request {
	return &Request{Method: http.MethodPost, Path: path("providers", o.ProviderID), Body: o}
}
