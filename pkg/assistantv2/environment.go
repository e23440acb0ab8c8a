package assistantv2

// Environment is a deployment target of an assistant, such as draft or
// live.
type Environment struct {
	Name                  string                       `json:"name,omitempty"`
	Description           string                       `json:"description,omitempty"`
	AssistantID           string                       `json:"assistant_id,omitempty"`
	EnvironmentID         string                       `json:"environment_id,omitempty"`
	Environment           string                       `json:"environment,omitempty"`
	ReleaseReference      *EnvironmentReleaseReference `json:"release_reference,omitempty"`
	Orchestration         *EnvironmentOrchestration    `json:"orchestration,omitempty"`
	SessionTimeout        *int64                       `json:"session_timeout,omitempty"` // minutes
	IntegrationReferences []IntegrationReference       `json:"integration_references,omitempty"`
	SkillReferences       []EnvironmentSkill           `json:"skill_references,omitempty"`
	Created               string                       `json:"created,omitempty"`
	Updated               string                       `json:"updated,omitempty"`
}

// EnvironmentReleaseReference names the release deployed to an environment.
type EnvironmentReleaseReference struct {
	Release string `json:"release,omitempty"`
}

// EnvironmentOrchestration controls how skills of an environment interact.
type EnvironmentOrchestration struct {
	SearchSkillFallback *bool `json:"search_skill_fallback,omitempty"`
}

// IntegrationReference is an integration attached to an environment.
type IntegrationReference struct {
	IntegrationID string `json:"integration_id,omitempty"`
	Type          string `json:"type,omitempty"`
}

// EnvironmentSkill is a skill referenced by an environment.
type EnvironmentSkill struct {
	SkillID        string `json:"skill_id"`
	Type           string `json:"type,omitempty"`
	Disabled       *bool  `json:"disabled,omitempty"`
	Snapshot       string `json:"snapshot,omitempty"`
	SkillReference string `json:"skill_reference,omitempty"`
}

// Validate requires SkillID.
func (s *EnvironmentSkill) Validate() error {
	return validate("EnvironmentSkill", present("skill_id", s.SkillID))
}

// Environment kinds.
const (
	EnvironmentDraft   = "draft"
	EnvironmentLive    = "live"
	EnvironmentStaging = "staging"
)

// EnvironmentReference points at an environment from an assistant or a
// release.
type EnvironmentReference struct {
	Name          string `json:"name,omitempty"`
	EnvironmentID string `json:"environment_id,omitempty"`
	Environment   string `json:"environment,omitempty"`
}

// EnvironmentCollection is one page of environments.
type EnvironmentCollection struct {
	Environments []Environment `json:"environments"`
	Pagination   Pagination    `json:"pagination"`
}

// Pagination links to the neighboring pages of a collection.
type Pagination struct {
	RefreshURL    string `json:"refresh_url"`
	NextURL       string `json:"next_url,omitempty"`
	Total         *int64 `json:"total,omitempty"`
	Matched       *int64 `json:"matched,omitempty"`
	RefreshCursor string `json:"refresh_cursor,omitempty"`
	NextCursor    string `json:"next_cursor,omitempty"`
}

// Release statuses.
const (
	ReleaseStatusAvailable  = "Available"
	ReleaseStatusFailed     = "Failed"
	ReleaseStatusProcessing = "Processing"
)

// Release is a versioned snapshot of the skills of an assistant.
type Release struct {
	Release               string                 `json:"release,omitempty"`
	Description           string                 `json:"description,omitempty"`
	EnvironmentReferences []EnvironmentReference `json:"environment_references,omitempty"`
	Content               *ReleaseContent        `json:"content,omitempty"`
	Status                string                 `json:"status,omitempty"`
	Created               string                 `json:"created,omitempty"`
	Updated               string                 `json:"updated,omitempty"`
}

// ReleaseContent lists the skills captured by a release.
type ReleaseContent struct {
	Skills []ReleaseSkill `json:"skills,omitempty"`
}

// ReleaseSkill is a skill snapshot captured by a release.
type ReleaseSkill struct {
	SkillID  string `json:"skill_id"`
	Type     string `json:"type,omitempty"`
	Snapshot string `json:"snapshot,omitempty"`
}

// ReleaseCollection is one page of releases.
type ReleaseCollection struct {
	Releases   []Release  `json:"releases"`
	Pagination Pagination `json:"pagination"`
}
