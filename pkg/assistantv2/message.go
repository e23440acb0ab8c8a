package assistantv2

// Message input types.
const (
	MessageTypeText   = "text"
	MessageTypeSearch = "search"
)

// MessageInput is the user input of a stateful message.
type MessageInput struct {
	// MessageType is "text" (default) or "search".
	MessageType  string                   `json:"message_type,omitempty"`
	Text         string                   `json:"text,omitempty"`
	Intents      []RuntimeIntent          `json:"intents,omitempty"`
	Entities     []RuntimeEntity          `json:"entities,omitempty"`
	SuggestionID string                   `json:"suggestion_id,omitempty"`
	Attachments  []MessageInputAttachment `json:"attachments,omitempty"`
	Analytics    *RequestAnalytics        `json:"analytics,omitempty"`
	Options      *MessageInputOptions     `json:"options,omitempty"`
}

// Validate checks the nested intents, entities and attachments.
func (m *MessageInput) Validate() error {
	return validateInputParts(m.Intents, m.Entities, m.Attachments)
}

// MessageInputStateless is the user input of a stateless message. It differs
// from MessageInput only in its options.
type MessageInputStateless struct {
	MessageType  string                        `json:"message_type,omitempty"`
	Text         string                        `json:"text,omitempty"`
	Intents      []RuntimeIntent               `json:"intents,omitempty"`
	Entities     []RuntimeEntity               `json:"entities,omitempty"`
	SuggestionID string                        `json:"suggestion_id,omitempty"`
	Attachments  []MessageInputAttachment      `json:"attachments,omitempty"`
	Analytics    *RequestAnalytics             `json:"analytics,omitempty"`
	Options      *MessageInputOptionsStateless `json:"options,omitempty"`
}

// Validate checks the nested intents, entities and attachments.
func (m *MessageInputStateless) Validate() error {
	return validateInputParts(m.Intents, m.Entities, m.Attachments)
}

func validateInputParts(intents []RuntimeIntent, entities []RuntimeEntity, attachments []MessageInputAttachment) error {
	for i := range intents {
		if err := intents[i].Validate(); err != nil {
			return err
		}
	}
	for i := range entities {
		if err := entities[i].Validate(); err != nil {
			return err
		}
	}
	for i := range attachments {
		if err := attachments[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// MessageInputOptions controls how a stateful message is processed.
type MessageInputOptions struct {
	Restart          *bool                        `json:"restart,omitempty"`
	AlternateIntents *bool                        `json:"alternate_intents,omitempty"`
	AsyncCallout     *bool                        `json:"async_callout,omitempty"`
	Spelling         *MessageInputOptionsSpelling `json:"spelling,omitempty"`
	Debug            *bool                        `json:"debug,omitempty"`
	ReturnContext    *bool                        `json:"return_context,omitempty"`
	Export           *bool                        `json:"export,omitempty"`
}

// MessageInputOptionsStateless controls how a stateless message is processed.
type MessageInputOptionsStateless struct {
	Restart          *bool                        `json:"restart,omitempty"`
	AlternateIntents *bool                        `json:"alternate_intents,omitempty"`
	AsyncCallout     *bool                        `json:"async_callout,omitempty"`
	Spelling         *MessageInputOptionsSpelling `json:"spelling,omitempty"`
	Debug            *bool                        `json:"debug,omitempty"`
}

// MessageInputOptionsSpelling configures spelling correction.
type MessageInputOptionsSpelling struct {
	Suggestions *bool `json:"suggestions,omitempty"`
	AutoCorrect *bool `json:"auto_correct,omitempty"`
}

// MessageInputAttachment is a file sent along with the input.
type MessageInputAttachment struct {
	URL       string `json:"url"`
	MediaType string `json:"media_type,omitempty"`
}

// Validate requires URL.
func (a *MessageInputAttachment) Validate() error {
	return validate("MessageInputAttachment", present("url", a.URL))
}

// RequestAnalytics carries client details used for analytics.
type RequestAnalytics struct {
	Browser string `json:"browser,omitempty"`
	Device  string `json:"device,omitempty"`
	PageURL string `json:"pageUrl,omitempty"`
}

// RuntimeIntent is an intent recognized in the user input.
type RuntimeIntent struct {
	Intent     string   `json:"intent"`
	Confidence *float64 `json:"confidence,omitempty"`
	Skill      string   `json:"skill,omitempty"`
}

// Validate requires Intent.
func (r *RuntimeIntent) Validate() error {
	return validate("RuntimeIntent", present("intent", r.Intent))
}

// RuntimeEntity is an entity value recognized in the user input.
type RuntimeEntity struct {
	Entity         string                       `json:"entity"`
	Location       []int64                      `json:"location,omitempty"`
	Value          string                       `json:"value"`
	Confidence     *float64                     `json:"confidence,omitempty"`
	Groups         []CaptureGroup               `json:"groups,omitempty"`
	Interpretation *RuntimeEntityInterpretation `json:"interpretation,omitempty"`
	Alternatives   []RuntimeEntityAlternative   `json:"alternatives,omitempty"`
	Role           *RuntimeEntityRole           `json:"role,omitempty"`
	Skill          string                       `json:"skill,omitempty"`
}

// Validate requires Entity and Value.
func (r *RuntimeEntity) Validate() error {
	if err := validate("RuntimeEntity", present("entity", r.Entity), present("value", r.Value)); err != nil {
		return err
	}
	for i := range r.Groups {
		if err := r.Groups[i].Validate(); err != nil {
			return err
		}
	}
	return nil
}

// CaptureGroup is a pattern capture group matched by an entity.
type CaptureGroup struct {
	Group    string  `json:"group"`
	Location []int64 `json:"location,omitempty"`
}

// Validate requires Group.
func (c *CaptureGroup) Validate() error {
	return validate("CaptureGroup", present("group", c.Group))
}

// Interpretation granularities for date and time entities.
const (
	GranularityDay       = "day"
	GranularityFortnight = "fortnight"
	GranularityHour      = "hour"
	GranularityInstant   = "instant"
	GranularityMinute    = "minute"
	GranularityMonth     = "month"
	GranularityQuarter   = "quarter"
	GranularitySecond    = "second"
	GranularityWeek      = "week"
	GranularityWeekend   = "weekend"
	GranularityYear      = "year"
)

// RuntimeEntityInterpretation is the system entity interpretation of a
// recognized value, such as a parsed date.
type RuntimeEntityInterpretation struct {
	CalendarType      string   `json:"calendar_type,omitempty"`
	DatetimeLink      string   `json:"datetime_link,omitempty"`
	Festival          string   `json:"festival,omitempty"`
	Granularity       string   `json:"granularity,omitempty"`
	RangeLink         string   `json:"range_link,omitempty"`
	RangeModifier     string   `json:"range_modifier,omitempty"`
	RelativeDay       *float64 `json:"relative_day,omitempty"`
	RelativeMonth     *float64 `json:"relative_month,omitempty"`
	RelativeWeek      *float64 `json:"relative_week,omitempty"`
	RelativeWeekend   *float64 `json:"relative_weekend,omitempty"`
	RelativeYear      *float64 `json:"relative_year,omitempty"`
	SpecificDay       *float64 `json:"specific_day,omitempty"`
	SpecificDayOfWeek string   `json:"specific_day_of_week,omitempty"`
	SpecificMonth     *float64 `json:"specific_month,omitempty"`
	SpecificQuarter   *float64 `json:"specific_quarter,omitempty"`
	SpecificYear      *float64 `json:"specific_year,omitempty"`
	NumericValue      *float64 `json:"numeric_value,omitempty"`
	Subtype           string   `json:"subtype,omitempty"`
	PartOfDay         string   `json:"part_of_day,omitempty"`
	RelativeHour      *float64 `json:"relative_hour,omitempty"`
	RelativeMinute    *float64 `json:"relative_minute,omitempty"`
	RelativeSecond    *float64 `json:"relative_second,omitempty"`
	SpecificHour      *float64 `json:"specific_hour,omitempty"`
	SpecificMinute    *float64 `json:"specific_minute,omitempty"`
	SpecificSecond    *float64 `json:"specific_second,omitempty"`
	Timezone          string   `json:"timezone,omitempty"`
}

// RuntimeEntityAlternative is another possible value of an entity.
type RuntimeEntityAlternative struct {
	Value      string   `json:"value,omitempty"`
	Confidence *float64 `json:"confidence,omitempty"`
}

// RuntimeEntityRole is the role of an entity in a range, e.g. date_from.
type RuntimeEntityRole struct {
	Type string `json:"type,omitempty"`
}
