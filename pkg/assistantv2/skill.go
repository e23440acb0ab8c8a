package assistantv2

// Skill types.
const (
	SkillTypeAction = "action"
	SkillTypeDialog = "dialog"
	SkillTypeSearch = "search"
)

// Skill statuses.
const (
	SkillStatusAvailable   = "Available"
	SkillStatusFailed      = "Failed"
	SkillStatusNonExistent = "Non Existent"
	SkillStatusProcessing  = "Processing"
	SkillStatusTraining    = "Training"
	SkillStatusUnavailable = "Unavailable"
)

// Skill is an action, dialog or search skill of an assistant.
type Skill struct {
	Name                string               `json:"name,omitempty"`
	Description         string               `json:"description,omitempty"`
	Workspace           map[string]any       `json:"workspace,omitempty"`
	SkillID             string               `json:"skill_id,omitempty"`
	Status              string               `json:"status,omitempty"`
	StatusErrors        []StatusError        `json:"status_errors,omitempty"`
	StatusDescription   string               `json:"status_description,omitempty"`
	DialogSettings      map[string]any       `json:"dialog_settings,omitempty"`
	AssistantID         string               `json:"assistant_id,omitempty"`
	WorkspaceID         string               `json:"workspace_id,omitempty"`
	EnvironmentID       string               `json:"environment_id,omitempty"`
	Valid               *bool                `json:"valid,omitempty"`
	NextSnapshotVersion string               `json:"next_snapshot_version,omitempty"`
	SearchSettings      *SearchSettings      `json:"search_settings,omitempty"`
	Warnings            []SearchSkillWarning `json:"warnings,omitempty"`
	Language            string               `json:"language,omitempty"`
	Type                string               `json:"type,omitempty"`
}

// Validate checks the search settings when present.
func (s *Skill) Validate() error {
	if s.SearchSettings != nil {
		return s.SearchSettings.Validate()
	}
	return nil
}

// SkillImport is a skill as accepted by the import operation. Only action and
// dialog skills can be imported.
type SkillImport struct {
	Name                string               `json:"name,omitempty"`
	Description         string               `json:"description,omitempty"`
	Workspace           map[string]any       `json:"workspace,omitempty"`
	SkillID             string               `json:"skill_id,omitempty"`
	Status              string               `json:"status,omitempty"`
	StatusErrors        []StatusError        `json:"status_errors,omitempty"`
	StatusDescription   string               `json:"status_description,omitempty"`
	DialogSettings      map[string]any       `json:"dialog_settings,omitempty"`
	AssistantID         string               `json:"assistant_id,omitempty"`
	WorkspaceID         string               `json:"workspace_id,omitempty"`
	EnvironmentID       string               `json:"environment_id,omitempty"`
	Valid               *bool                `json:"valid,omitempty"`
	NextSnapshotVersion string               `json:"next_snapshot_version,omitempty"`
	SearchSettings      *SearchSettings      `json:"search_settings,omitempty"`
	Warnings            []SearchSkillWarning `json:"warnings,omitempty"`
	Language            string               `json:"language"`
	Type                string               `json:"type"`
}

// Validate requires Language and Type.
func (s *SkillImport) Validate() error {
	if err := validate("SkillImport", present("language", s.Language), present("type", s.Type)); err != nil {
		return err
	}
	if s.SearchSettings != nil {
		return s.SearchSettings.Validate()
	}
	return nil
}

// SkillsExport is the result of exporting the skills of an assistant.
type SkillsExport struct {
	AssistantSkills []Skill              `json:"assistant_skills"`
	AssistantState  SkillsAssistantState `json:"assistant_state"`
}

// SkillsAssistantState is the assistant state exported with the skills.
type SkillsAssistantState struct {
	ActionDisabled *bool `json:"action_disabled,omitempty"`
	DialogDisabled *bool `json:"dialog_disabled,omitempty"`
}

// Import statuses.
const (
	ImportStatusCompleted  = "Completed"
	ImportStatusFailed     = "Failed"
	ImportStatusProcessing = "Processing"
)

// SkillsAsyncRequestStatus reports the progress of a skills import.
type SkillsAsyncRequestStatus struct {
	AssistantID       string        `json:"assistant_id,omitempty"`
	Status            string        `json:"status,omitempty"`
	StatusDescription string        `json:"status_description,omitempty"`
	StatusErrors      []StatusError `json:"status_errors,omitempty"`
}

// StatusError is one reason a skill or import is not available.
type StatusError struct {
	Message string `json:"message,omitempty"`
}

// SearchSkillWarning is a problem found with the search skill configuration.
type SearchSkillWarning struct {
	Code    string `json:"code,omitempty"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message,omitempty"`
}

// AssistantSkill links a skill to an assistant.
type AssistantSkill struct {
	SkillID string `json:"skill_id"`
	Type    string `json:"type,omitempty"`
}

// Validate requires SkillID.
func (s *AssistantSkill) Validate() error {
	return validate("AssistantSkill", present("skill_id", s.SkillID))
}

// SearchSettings configures a search skill.
type SearchSettings struct {
	Discovery            *SearchSettingsDiscovery            `json:"discovery"`
	Messages             *SearchSettingsMessages             `json:"messages"`
	SchemaMapping        *SearchSettingsSchemaMapping        `json:"schema_mapping"`
	ElasticSearch        *SearchSettingsElasticSearch        `json:"elastic_search,omitempty"`
	ConversationalSearch *SearchSettingsConversationalSearch `json:"conversational_search,omitempty"`
	ServerSideSearch     *SearchSettingsServerSideSearch     `json:"server_side_search,omitempty"`
	ClientSideSearch     *SearchSettingsClientSideSearch     `json:"client_side_search,omitempty"`
}

// Validate requires Discovery, Messages and SchemaMapping and checks every
// nested setting that is present.
func (s *SearchSettings) Validate() error {
	err := validate("SearchSettings",
		present("discovery", s.Discovery),
		present("messages", s.Messages),
		present("schema_mapping", s.SchemaMapping),
	)
	if err != nil {
		return err
	}

	nested := []Validator{s.Discovery, s.Messages, s.SchemaMapping}
	if s.ElasticSearch != nil {
		nested = append(nested, s.ElasticSearch)
	}
	if s.ConversationalSearch != nil {
		nested = append(nested, s.ConversationalSearch)
	}
	if s.ServerSideSearch != nil {
		nested = append(nested, s.ServerSideSearch)
	}
	for _, v := range nested {
		if err := v.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// SearchSettingsDiscovery connects a search skill to a Discovery project.
type SearchSettingsDiscovery struct {
	InstanceID          string                                 `json:"instance_id"`
	ProjectID           string                                 `json:"project_id"`
	URL                 string                                 `json:"url"`
	MaxPrimaryResults   *int64                                 `json:"max_primary_results,omitempty"`
	MaxTotalResults     *int64                                 `json:"max_total_results,omitempty"`
	ConfidenceThreshold *float64                               `json:"confidence_threshold,omitempty"`
	Highlight           *bool                                  `json:"highlight,omitempty"`
	FindAnswers         *bool                                  `json:"find_answers,omitempty"`
	Authentication      *SearchSettingsDiscoveryAuthentication `json:"authentication"`
}

// Validate requires InstanceID, ProjectID, URL and Authentication.
func (d *SearchSettingsDiscovery) Validate() error {
	return validate("SearchSettingsDiscovery",
		present("instance_id", d.InstanceID),
		present("project_id", d.ProjectID),
		present("url", d.URL),
		present("authentication", d.Authentication),
	)
}

type SearchSettingsDiscoveryAuthentication struct {
	Basic  string `json:"basic,omitempty"`
	Bearer string `json:"bearer,omitempty"`
}

// SearchSettingsMessages are the texts shown with search results.
type SearchSettingsMessages struct {
	Success  string `json:"success"`
	Error    string `json:"error"`
	NoResult string `json:"no_result"`
}

// Validate requires Success, Error and NoResult.
func (m *SearchSettingsMessages) Validate() error {
	return validate("SearchSettingsMessages",
		present("success", m.Success),
		present("error", m.Error),
		present("no_result", m.NoResult),
	)
}

// SearchSettingsSchemaMapping maps document fields to result fields.
type SearchSettingsSchemaMapping struct {
	URL   string `json:"url"`
	Body  string `json:"body"`
	Title string `json:"title"`
}

// Validate requires URL, Body and Title.
func (m *SearchSettingsSchemaMapping) Validate() error {
	return validate("SearchSettingsSchemaMapping",
		present("url", m.URL),
		present("body", m.Body),
		present("title", m.Title),
	)
}

// SearchSettingsElasticSearch connects a search skill to Elasticsearch.
type SearchSettingsElasticSearch struct {
	URL          string         `json:"url"`
	Port         string         `json:"port"`
	Username     string         `json:"username,omitempty"`
	Password     string         `json:"password,omitempty"`
	Index        string         `json:"index"`
	Filter       []any          `json:"filter,omitempty"`
	QueryBody    map[string]any `json:"query_body,omitempty"`
	ManagedIndex string         `json:"managed_index,omitempty"`
	Apikey       string         `json:"apikey,omitempty"`
}

// Validate requires URL, Port and Index.
func (e *SearchSettingsElasticSearch) Validate() error {
	return validate("SearchSettingsElasticSearch",
		present("url", e.URL),
		present("port", e.Port),
		present("index", e.Index),
	)
}

// SearchSettingsConversationalSearch configures generated answers.
type SearchSettingsConversationalSearch struct {
	Enabled          *bool                                               `json:"enabled"`
	ResponseLength   *SearchSettingsConversationalSearchResponseLength   `json:"response_length,omitempty"`
	SearchConfidence *SearchSettingsConversationalSearchSearchConfidence `json:"search_confidence,omitempty"`
}

// Validate requires Enabled.
func (c *SearchSettingsConversationalSearch) Validate() error {
	return validate("SearchSettingsConversationalSearch", present("enabled", c.Enabled))
}

type SearchSettingsConversationalSearchResponseLength struct {
	Option string `json:"option,omitempty"` // "concise", "moderate" or "verbose"
}

type SearchSettingsConversationalSearchSearchConfidence struct {
	Threshold string `json:"threshold,omitempty"` // "rarely", "less_often", "more_often" or "most_often"
}

// Server side search authentication types.
const (
	SearchAuthTypeBasic  = "basic"
	SearchAuthTypeApikey = "apikey"
	SearchAuthTypeNone   = "none"
)

// SearchSettingsServerSideSearch connects a search skill to a custom search
// server.
type SearchSettingsServerSideSearch struct {
	URL      string         `json:"url"`
	Port     string         `json:"port,omitempty"`
	Username string         `json:"username,omitempty"`
	Password string         `json:"password,omitempty"`
	Filter   string         `json:"filter,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
	Apikey   string         `json:"apikey,omitempty"`
	NoAuth   *bool          `json:"no_auth,omitempty"`
	AuthType string         `json:"auth_type,omitempty"`
}

// Validate requires URL.
func (s *SearchSettingsServerSideSearch) Validate() error {
	return validate("SearchSettingsServerSideSearch", present("url", s.URL))
}

// SearchSettingsClientSideSearch hands search to the client application.
type SearchSettingsClientSideSearch struct {
	Filter   string         `json:"filter,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
