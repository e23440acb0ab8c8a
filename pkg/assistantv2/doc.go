// Package assistantv2 holds the request and response models of the Watson
// Assistant v2 REST API.
//
// Models are plain structs with JSON tags. Optional scalars are pointers so
// that absent and zero stay distinguishable; use Ptr to set them.
//
// # Building requests
//
// Types with required fields implement Validator. Build validates a value
// and returns an independent copy; Rebuild seeds a new value from an
// existing one:
//
//	skill, err := assistantv2.Build(assistantv2.AssistantSkill{
//		SkillID: "dialog_skill_123",
//		Type:    assistantv2.SkillTypeDialog,
//	})
//
// Every operation has an options type implementing Operation. NewRequest
// turns one into the method, path, query and body a transport has to send.
// The package performs no I/O.
//
// # Decoding responses
//
// Discriminated members (response generics, log message sources, turn
// events, stream chunks, provider authentication) decode through tagged
// families:
//
//	generic          response_type
//	log source       type
//	turn event       event
//	stream chunk     partial_item | complete_item | final_response (key)
//	private auth     token | password | flows (key)
//	security scheme  authentication_method
//
// An unknown tag decodes to the family's base type and keeps the raw payload
// (see tagged.Extra). Decode failures inside a response carry the field path,
// e.g. "output.generic[1].response_type".
package assistantv2
