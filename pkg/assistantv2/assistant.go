package assistantv2

// AssistantData describes an assistant.
type AssistantData struct {
	AssistantID           string                 `json:"assistant_id,omitempty"`
	Name                  string                 `json:"name,omitempty"`
	Description           string                 `json:"description,omitempty"`
	Language              string                 `json:"language,omitempty"`
	AssistantSkills       []AssistantSkill       `json:"assistant_skills,omitempty"`
	AssistantEnvironments []EnvironmentReference `json:"assistant_environments,omitempty"`
}

// AssistantCollection is one page of assistants.
type AssistantCollection struct {
	Assistants []AssistantData `json:"assistants"`
	Pagination Pagination      `json:"pagination"`
}

// BulkClassifyUtterance is one input classified by a bulk classify request.
type BulkClassifyUtterance struct {
	Text string `json:"text"`
}

// Validate requires Text.
func (u *BulkClassifyUtterance) Validate() error {
	return validate("BulkClassifyUtterance", present("text", u.Text))
}

// BulkClassifyOutput is the classification of one utterance.
type BulkClassifyOutput struct {
	Input    *BulkClassifyUtterance `json:"input,omitempty"`
	Entities []RuntimeEntity        `json:"entities,omitempty"`
	Intents  []RuntimeIntent        `json:"intents,omitempty"`
}

// BulkClassifyResponse is the result of a bulk classify request.
type BulkClassifyResponse struct {
	Output []BulkClassifyOutput `json:"output,omitempty"`
}
