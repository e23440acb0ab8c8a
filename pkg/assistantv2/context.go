package assistantv2

// MessageContext is the conversation state of a stateful session. It is a
// plain mutable record: callers typically take it from a response, adjust a
// few variables and send it back with the next message.
type MessageContext struct {
	Global       *MessageContextGlobal `json:"global,omitempty"`
	Skills       *MessageContextSkills `json:"skills,omitempty"`
	Integrations map[string]any        `json:"integrations,omitempty"`
}

// MessageContextGlobal is session-wide context shared by all skills.
type MessageContextGlobal struct {
	System *MessageContextGlobalSystem `json:"system,omitempty"`

	// SessionID is set by the service on responses.
	SessionID string `json:"session_id,omitempty"`
}

// Supported values for MessageContextGlobalSystem.Locale.
const (
	LocaleEnUS = "en-us"
	LocaleEnCA = "en-ca"
	LocaleEnGB = "en-gb"
	LocaleArAR = "ar-ar"
	LocaleCsCZ = "cs-cz"
	LocaleDeDE = "de-de"
	LocaleEsES = "es-es"
	LocaleFrFR = "fr-fr"
	LocaleItIT = "it-it"
	LocaleJaJP = "ja-jp"
	LocaleKoKR = "ko-kr"
	LocaleNlNL = "nl-nl"
	LocalePtBR = "pt-br"
	LocaleZhCN = "zh-cn"
	LocaleZhTW = "zh-tw"
)

// MessageContextGlobalSystem holds built-in global context variables.
type MessageContextGlobalSystem struct {
	Timezone         string `json:"timezone,omitempty"`
	UserID           string `json:"user_id,omitempty"`
	TurnCount        *int64 `json:"turn_count,omitempty"`
	Locale           string `json:"locale,omitempty"`
	ReferenceTime    string `json:"reference_time,omitempty"`
	SessionStartTime string `json:"session_start_time,omitempty"`
	State            string `json:"state,omitempty"`
	SkipUserInput    *bool  `json:"skip_user_input,omitempty"`
}

// MessageContextSkills holds per-skill context, keyed by skill role.
type MessageContextSkills struct {
	MainSkill    *MessageContextDialogSkill `json:"main skill,omitempty"`
	ActionsSkill *MessageContextActionSkill `json:"actions skill,omitempty"`
}

// MessageContextDialogSkill is the context of a dialog skill.
type MessageContextDialogSkill struct {
	UserDefined map[string]any             `json:"user_defined,omitempty"`
	System      *MessageContextSkillSystem `json:"system,omitempty"`
}

// MessageContextActionSkill is the context of an actions skill.
type MessageContextActionSkill struct {
	UserDefined     map[string]any             `json:"user_defined,omitempty"`
	System          *MessageContextSkillSystem `json:"system,omitempty"`
	ActionVariables map[string]any             `json:"action_variables,omitempty"`
	SkillVariables  map[string]any             `json:"skill_variables,omitempty"`
}

// MessageContextSkillSystem is the system context of a skill. State is an
// opaque token owned by the service.
type MessageContextSkillSystem struct {
	State string `json:"state,omitempty"`
}

// SetSkillVariable sets a skill variable on the actions skill, creating the
// intermediate records as needed.
func (c *MessageContext) SetSkillVariable(name string, value any) {
	skill := c.actionsSkill()
	if skill.SkillVariables == nil {
		skill.SkillVariables = make(map[string]any)
	}
	skill.SkillVariables[name] = value
}

// SetActionVariable sets an action variable on the actions skill.
func (c *MessageContext) SetActionVariable(name string, value any) {
	skill := c.actionsSkill()
	if skill.ActionVariables == nil {
		skill.ActionVariables = make(map[string]any)
	}
	skill.ActionVariables[name] = value
}

// SetUserDefined sets a user-defined variable on the dialog (main) skill.
func (c *MessageContext) SetUserDefined(name string, value any) {
	if c.Skills == nil {
		c.Skills = &MessageContextSkills{}
	}
	if c.Skills.MainSkill == nil {
		c.Skills.MainSkill = &MessageContextDialogSkill{}
	}
	if c.Skills.MainSkill.UserDefined == nil {
		c.Skills.MainSkill.UserDefined = make(map[string]any)
	}
	c.Skills.MainSkill.UserDefined[name] = value
}

// GlobalSystem returns the global system context, creating it if needed.
func (c *MessageContext) GlobalSystem() *MessageContextGlobalSystem {
	if c.Global == nil {
		c.Global = &MessageContextGlobal{}
	}
	if c.Global.System == nil {
		c.Global.System = &MessageContextGlobalSystem{}
	}
	return c.Global.System
}

func (c *MessageContext) actionsSkill() *MessageContextActionSkill {
	if c.Skills == nil {
		c.Skills = &MessageContextSkills{}
	}
	if c.Skills.ActionsSkill == nil {
		c.Skills.ActionsSkill = &MessageContextActionSkill{}
	}
	return c.Skills.ActionsSkill
}

// StatelessMessageContext is the conversation state of a stateless message.
// The application owns it and must send it back with every turn.
type StatelessMessageContext struct {
	Global       *StatelessMessageContextGlobal `json:"global,omitempty"`
	Skills       *StatelessMessageContextSkills `json:"skills,omitempty"`
	Integrations map[string]any                 `json:"integrations,omitempty"`
}

// StatelessMessageContextGlobal is session-wide context of a stateless
// conversation.
type StatelessMessageContextGlobal struct {
	System    *MessageContextGlobalSystem `json:"system,omitempty"`
	SessionID string                      `json:"session_id,omitempty"`
}

// StatelessMessageContextSkills holds per-skill stateless context.
type StatelessMessageContextSkills struct {
	MainSkill    *MessageContextDialogSkill                 `json:"main skill,omitempty"`
	ActionsSkill *StatelessMessageContextSkillsActionsSkill `json:"actions skill,omitempty"`
}

// StatelessMessageContextSkillsActionsSkill is the stateless context of an
// actions skill. Private variables are only returned when the request
// enabled them.
type StatelessMessageContextSkillsActionsSkill struct {
	UserDefined            map[string]any             `json:"user_defined,omitempty"`
	System                 *MessageContextSkillSystem `json:"system,omitempty"`
	ActionVariables        map[string]any             `json:"action_variables,omitempty"`
	SkillVariables         map[string]any             `json:"skill_variables,omitempty"`
	PrivateActionVariables map[string]any             `json:"private_action_variables,omitempty"`
	PrivateSkillVariables  map[string]any             `json:"private_skill_variables,omitempty"`
}
