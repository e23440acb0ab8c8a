package assistantv2

import (
	"encoding/json"

	"github.com/tjfontaine/watson-assistant/pkg/tagged"
)

// ProviderAuthenticationTypeAndValue is a credential value. Type is "value"
// for literal values.
type ProviderAuthenticationTypeAndValue struct {
	Type  string `json:"type,omitempty"`
	Value string `json:"value,omitempty"`
}

// ProviderPrivate holds the private credentials a conversational skill
// provider is called with.
type ProviderPrivate struct {
	Authentication ProviderPrivateAuthentication `json:"authentication"`
}

// Validate requires Authentication. Decoding accepts a payload without it.
func (p *ProviderPrivate) Validate() error {
	return validate("ProviderPrivate", present("authentication", p.Authentication))
}

// UnmarshalJSON decodes Authentication through its marker key.
func (p *ProviderPrivate) UnmarshalJSON(data []byte) error {
	type plain ProviderPrivate
	aux := struct {
		*plain
		Authentication json.RawMessage `json:"authentication"`
	}{plain: (*plain)(p)}

	var pe partial
	if err := pe.keep(json.Unmarshal(data, &aux)); err != nil {
		return err
	}
	if err := decodeMember(providerPrivateAuthentications, "authentication", aux.Authentication, &p.Authentication); err != nil {
		return err
	}
	return pe.err
}

// Private authentication marker keys.
const (
	PrivateAuthenticationToken    = "token"
	PrivateAuthenticationPassword = "password"
	PrivateAuthenticationFlows    = "flows"
)

// ProviderPrivateAuthentication is one of *ProviderPrivateAuthenticationBearer,
// *ProviderPrivateAuthenticationBasic or *ProviderPrivateAuthenticationOAuth2.
type ProviderPrivateAuthentication interface {
	Base() *ProviderPrivateAuthenticationBase
}

// ProviderPrivateAuthenticationBase is the shape of private authentication
// of unknown kind.
type ProviderPrivateAuthenticationBase struct {
	tagged.Extra
}

// Base returns the common fields.
func (b *ProviderPrivateAuthenticationBase) Base() *ProviderPrivateAuthenticationBase { return b }

type ProviderPrivateAuthenticationBearer struct {
	ProviderPrivateAuthenticationBase
	Token *ProviderAuthenticationTypeAndValue `json:"token"`
}

type ProviderPrivateAuthenticationBasic struct {
	ProviderPrivateAuthenticationBase
	Password *ProviderAuthenticationTypeAndValue `json:"password"`
}

type ProviderPrivateAuthenticationOAuth2 struct {
	ProviderPrivateAuthenticationBase
	Flows ProviderPrivateAuthenticationOAuth2Flows `json:"flows"`
}

// UnmarshalJSON decodes Flows through its marker key.
func (a *ProviderPrivateAuthenticationOAuth2) UnmarshalJSON(data []byte) error {
	var aux struct {
		Flows json.RawMessage `json:"flows"`
	}
	var p partial
	if err := p.keep(json.Unmarshal(data, &aux)); err != nil {
		return err
	}
	if err := decodeMember(providerPrivateOAuth2Flows, "flows", aux.Flows, &a.Flows); err != nil {
		return err
	}
	return p.err
}

// OAuth2 flow marker keys, shared by the public and private flow families.
const (
	OAuth2FlowPassword          = "password"
	OAuth2FlowClientCredentials = "client_credentials"
	OAuth2FlowAuthorizationCode = "authorization_code"
)

// ProviderPrivateAuthenticationOAuth2Flows holds the private settings of the
// OAuth2 flow used with the provider.
type ProviderPrivateAuthenticationOAuth2Flows interface {
	Base() *ProviderPrivateAuthenticationOAuth2FlowsBase
}

// ProviderPrivateAuthenticationOAuth2FlowsBase is the shape of a private
// flow of unknown kind.
type ProviderPrivateAuthenticationOAuth2FlowsBase struct {
	tagged.Extra
}

// Base returns the common fields.
func (b *ProviderPrivateAuthenticationOAuth2FlowsBase) Base() *ProviderPrivateAuthenticationOAuth2FlowsBase {
	return b
}

// ProviderPrivateOAuth2Credentials are the client credentials and stored
// tokens every private flow carries.
type ProviderPrivateOAuth2Credentials struct {
	ClientID     string `json:"client_id,omitempty"`
	ClientSecret string `json:"client_secret,omitempty"`
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type ProviderPrivateOAuth2PasswordFlow struct {
	ProviderPrivateOAuth2Credentials
	Password *ProviderAuthenticationTypeAndValue `json:"password,omitempty"`
}

type ProviderPrivateOAuth2ClientCredentialsFlow struct {
	ProviderPrivateOAuth2Credentials
}

type ProviderPrivateOAuth2AuthorizationCodeFlow struct {
	ProviderPrivateOAuth2Credentials
	AuthorizationCode string `json:"authorization_code,omitempty"`
}

type ProviderPrivateAuthenticationOAuth2Password struct {
	ProviderPrivateAuthenticationOAuth2FlowsBase
	Password *ProviderPrivateOAuth2PasswordFlow `json:"password"`
}

type ProviderPrivateAuthenticationOAuth2ClientCredentials struct {
	ProviderPrivateAuthenticationOAuth2FlowsBase
	ClientCredentials *ProviderPrivateOAuth2ClientCredentialsFlow `json:"client_credentials"`
}

type ProviderPrivateAuthenticationOAuth2AuthorizationCode struct {
	ProviderPrivateAuthenticationOAuth2FlowsBase
	AuthorizationCode *ProviderPrivateOAuth2AuthorizationCodeFlow `json:"authorization_code"`
}

var providerPrivateAuthentications = tagged.ByKey[ProviderPrivateAuthentication](
	"ProviderPrivateAuthentication",
	func() ProviderPrivateAuthentication { return &ProviderPrivateAuthenticationBase{} },
).
	Variant(PrivateAuthenticationToken, func() ProviderPrivateAuthentication { return &ProviderPrivateAuthenticationBearer{} }).
	Variant(PrivateAuthenticationPassword, func() ProviderPrivateAuthentication { return &ProviderPrivateAuthenticationBasic{} }).
	Variant(PrivateAuthenticationFlows, func() ProviderPrivateAuthentication { return &ProviderPrivateAuthenticationOAuth2{} })

var providerPrivateOAuth2Flows = tagged.ByKey[ProviderPrivateAuthenticationOAuth2Flows](
	"ProviderPrivateAuthenticationOAuth2Flows",
	func() ProviderPrivateAuthenticationOAuth2Flows { return &ProviderPrivateAuthenticationOAuth2FlowsBase{} },
).
	Variant(OAuth2FlowPassword, func() ProviderPrivateAuthenticationOAuth2Flows {
		return &ProviderPrivateAuthenticationOAuth2Password{}
	}).
	Variant(OAuth2FlowClientCredentials, func() ProviderPrivateAuthenticationOAuth2Flows {
		return &ProviderPrivateAuthenticationOAuth2ClientCredentials{}
	}).
	Variant(OAuth2FlowAuthorizationCode, func() ProviderPrivateAuthenticationOAuth2Flows {
		return &ProviderPrivateAuthenticationOAuth2AuthorizationCode{}
	})

// ProviderPrivateAuthentications returns the decoder family of private
// provider authentication.
func ProviderPrivateAuthentications() *tagged.Family[ProviderPrivateAuthentication] {
	return providerPrivateAuthentications
}

// NewBearerAuthentication returns private bearer authentication with a
// literal token.
func NewBearerAuthentication(token string) *ProviderPrivateAuthenticationBearer {
	return &ProviderPrivateAuthenticationBearer{
		Token: &ProviderAuthenticationTypeAndValue{Type: "value", Value: token},
	}
}

// NewBasicAuthentication returns private basic authentication with a literal
// password. The username is part of the public specification.
func NewBasicAuthentication(password string) *ProviderPrivateAuthenticationBasic {
	return &ProviderPrivateAuthenticationBasic{
		Password: &ProviderAuthenticationTypeAndValue{Type: "value", Value: password},
	}
}

// ProviderSpecification is the OpenAPI-style description of a conversational
// skill provider.
type ProviderSpecification struct {
	Servers    []ProviderSpecificationServersItem `json:"servers"`
	Components *ProviderSpecificationComponents   `json:"components,omitempty"`
}

// Validate requires Servers.
func (s *ProviderSpecification) Validate() error {
	return validate("ProviderSpecification", present("servers", s.Servers))
}

// UnmarshalJSON prefixes decode errors of the components with their field.
func (s *ProviderSpecification) UnmarshalJSON(data []byte) error {
	type plain ProviderSpecification
	aux := struct {
		*plain
		Components json.RawMessage `json:"components,omitempty"`
	}{plain: (*plain)(s)}

	var p partial
	if err := p.keep(json.Unmarshal(data, &aux)); err != nil {
		return err
	}
	if err := p.keep(decodeField("components", aux.Components, &s.Components)); err != nil {
		return err
	}
	return p.err
}

type ProviderSpecificationServersItem struct {
	URL string `json:"url,omitempty"`
}

type ProviderSpecificationComponents struct {
	SecuritySchemes ProviderSecurityScheme `json:"securitySchemes,omitempty"`
}

// UnmarshalJSON decodes SecuritySchemes through authentication_method.
func (c *ProviderSpecificationComponents) UnmarshalJSON(data []byte) error {
	var aux struct {
		SecuritySchemes json.RawMessage `json:"securitySchemes"`
	}
	var p partial
	if err := p.keep(json.Unmarshal(data, &aux)); err != nil {
		return err
	}
	if err := decodeMember(providerSecuritySchemes, "securitySchemes", aux.SecuritySchemes, &c.SecuritySchemes); err != nil {
		return err
	}
	return p.err
}

// Authentication methods of ProviderSecurityScheme.
const (
	AuthenticationMethodBasic  = "basic"
	AuthenticationMethodBearer = "bearer"
	AuthenticationMethodAPIKey = "api_key"
	AuthenticationMethodOAuth2 = "oauth2"
	AuthenticationMethodNone   = "none"
)

// ProviderSecurityScheme is the public part of the provider authentication.
type ProviderSecurityScheme interface {
	Base() *ProviderSecuritySchemeBase
}

// ProviderSecuritySchemeBase is the shape of a scheme of unknown method.
type ProviderSecuritySchemeBase struct {
	tagged.Extra

	AuthenticationMethod string `json:"authentication_method"`
}

// Base returns the common fields.
func (b *ProviderSecuritySchemeBase) Base() *ProviderSecuritySchemeBase { return b }

type ProviderSecuritySchemeBasic struct {
	ProviderSecuritySchemeBase
	Basic *ProviderSecuritySchemeBasicSettings `json:"basic,omitempty"`
}

type ProviderSecuritySchemeBasicSettings struct {
	Username *ProviderAuthenticationTypeAndValue `json:"username,omitempty"`
}

type ProviderSecuritySchemeBearer struct {
	ProviderSecuritySchemeBase
}

type ProviderSecuritySchemeAPIKey struct {
	ProviderSecuritySchemeBase
}

type ProviderSecuritySchemeNone struct {
	ProviderSecuritySchemeBase
}

type ProviderSecuritySchemeOAuth2 struct {
	ProviderSecuritySchemeBase
	OAuth2 *ProviderAuthenticationOAuth2 `json:"oauth2,omitempty"`
}

// UnmarshalJSON prefixes decode errors of the OAuth2 settings with oauth2.
func (s *ProviderSecuritySchemeOAuth2) UnmarshalJSON(data []byte) error {
	type plain ProviderSecuritySchemeOAuth2
	aux := struct {
		*plain
		OAuth2 json.RawMessage `json:"oauth2,omitempty"`
	}{plain: (*plain)(s)}

	var p partial
	if err := p.keep(json.Unmarshal(data, &aux)); err != nil {
		return err
	}
	if err := p.keep(decodeField("oauth2", aux.OAuth2, &s.OAuth2)); err != nil {
		return err
	}
	return p.err
}

// ProviderAuthenticationOAuth2 is the public OAuth2 configuration.
type ProviderAuthenticationOAuth2 struct {
	PreferredFlow string                            `json:"preferred_flow,omitempty"`
	Flows         ProviderAuthenticationOAuth2Flows `json:"flows,omitempty"`
}

// UnmarshalJSON decodes Flows through its marker key.
func (o *ProviderAuthenticationOAuth2) UnmarshalJSON(data []byte) error {
	type plain ProviderAuthenticationOAuth2
	aux := struct {
		*plain
		Flows json.RawMessage `json:"flows,omitempty"`
	}{plain: (*plain)(o)}

	var p partial
	if err := p.keep(json.Unmarshal(data, &aux)); err != nil {
		return err
	}
	if err := decodeMember(providerOAuth2Flows, "flows", aux.Flows, &o.Flows); err != nil {
		return err
	}
	return p.err
}

// ProviderAuthenticationOAuth2Flows holds the public settings of the OAuth2
// flow used with the provider.
type ProviderAuthenticationOAuth2Flows interface {
	Base() *ProviderAuthenticationOAuth2FlowsBase
}

// ProviderAuthenticationOAuth2FlowsBase is the shape of a public flow of
// unknown kind.
type ProviderAuthenticationOAuth2FlowsBase struct {
	tagged.Extra
}

// Base returns the common fields.
func (b *ProviderAuthenticationOAuth2FlowsBase) Base() *ProviderAuthenticationOAuth2FlowsBase {
	return b
}

// Client authentication styles of the token endpoint.
const (
	ClientAuthTypeBody            = "Body"
	ClientAuthTypeBasicAuthHeader = "BasicAuthHeader"
)

// ProviderOAuth2Endpoint is the token endpoint configuration every public
// flow carries.
type ProviderOAuth2Endpoint struct {
	TokenURL       string `json:"token_url,omitempty"`
	RefreshURL     string `json:"refresh_url,omitempty"`
	ClientAuthType string `json:"client_auth_type,omitempty"`
	ContentType    string `json:"content_type,omitempty"`
	HeaderPrefix   string `json:"header_prefix,omitempty"`
}

type ProviderOAuth2PasswordFlow struct {
	ProviderOAuth2Endpoint
	Username *ProviderAuthenticationTypeAndValue `json:"username,omitempty"`
}

type ProviderOAuth2ClientCredentialsFlow struct {
	ProviderOAuth2Endpoint
}

type ProviderOAuth2AuthorizationCodeFlow struct {
	ProviderOAuth2Endpoint
	AuthorizationURL string `json:"authorization_url,omitempty"`
	RedirectURI      string `json:"redirect_uri,omitempty"`
}

type ProviderAuthenticationOAuth2Password struct {
	ProviderAuthenticationOAuth2FlowsBase
	Password *ProviderOAuth2PasswordFlow `json:"password"`
}

type ProviderAuthenticationOAuth2ClientCredentials struct {
	ProviderAuthenticationOAuth2FlowsBase
	ClientCredentials *ProviderOAuth2ClientCredentialsFlow `json:"client_credentials"`
}

type ProviderAuthenticationOAuth2AuthorizationCode struct {
	ProviderAuthenticationOAuth2FlowsBase
	AuthorizationCode *ProviderOAuth2AuthorizationCodeFlow `json:"authorization_code"`
}

var providerSecuritySchemes = tagged.New[ProviderSecurityScheme](
	"ProviderSecurityScheme", "authentication_method",
	func() ProviderSecurityScheme { return &ProviderSecuritySchemeBase{} },
).
	Require("authentication_method", tagged.KindString).
	Variant(AuthenticationMethodBasic, func() ProviderSecurityScheme { return &ProviderSecuritySchemeBasic{} }).
	Variant(AuthenticationMethodBearer, func() ProviderSecurityScheme { return &ProviderSecuritySchemeBearer{} }).
	Variant(AuthenticationMethodAPIKey, func() ProviderSecurityScheme { return &ProviderSecuritySchemeAPIKey{} }).
	Variant(AuthenticationMethodOAuth2, func() ProviderSecurityScheme { return &ProviderSecuritySchemeOAuth2{} }).
	Variant(AuthenticationMethodNone, func() ProviderSecurityScheme { return &ProviderSecuritySchemeNone{} })

var providerOAuth2Flows = tagged.ByKey[ProviderAuthenticationOAuth2Flows](
	"ProviderAuthenticationOAuth2Flows",
	func() ProviderAuthenticationOAuth2Flows { return &ProviderAuthenticationOAuth2FlowsBase{} },
).
	Variant(OAuth2FlowPassword, func() ProviderAuthenticationOAuth2Flows {
		return &ProviderAuthenticationOAuth2Password{}
	}).
	Variant(OAuth2FlowClientCredentials, func() ProviderAuthenticationOAuth2Flows {
		return &ProviderAuthenticationOAuth2ClientCredentials{}
	}).
	Variant(OAuth2FlowAuthorizationCode, func() ProviderAuthenticationOAuth2Flows {
		return &ProviderAuthenticationOAuth2AuthorizationCode{}
	})

// ProviderSecuritySchemes returns the decoder family of public provider
// security schemes.
func ProviderSecuritySchemes() *tagged.Family[ProviderSecurityScheme] {
	return providerSecuritySchemes
}

// ProviderResponse describes a registered conversational skill provider.
type ProviderResponse struct {
	ProviderID    string                 `json:"provider_id,omitempty"`
	Specification *ProviderSpecification `json:"specification,omitempty"`
}

// UnmarshalJSON prefixes decode errors of the specification with its field.
func (r *ProviderResponse) UnmarshalJSON(data []byte) error {
	type plain ProviderResponse
	aux := struct {
		*plain
		Specification json.RawMessage `json:"specification,omitempty"`
	}{plain: (*plain)(r)}

	var p partial
	if err := p.keep(json.Unmarshal(data, &aux)); err != nil {
		return err
	}
	if err := p.keep(decodeField("specification", aux.Specification, &r.Specification)); err != nil {
		return err
	}
	return p.err
}

// ProviderCollection is one page of conversational skill providers.
type ProviderCollection struct {
	ConversationalSkillProviders []ProviderResponse `json:"conversational_skill_providers"`
	Pagination                   Pagination         `json:"pagination"`
}

// UnmarshalJSON decodes providers one by one so errors carry their index.
func (c *ProviderCollection) UnmarshalJSON(data []byte) error {
	type plain ProviderCollection
	aux := struct {
		*plain
		ConversationalSkillProviders json.RawMessage `json:"conversational_skill_providers"`
	}{plain: (*plain)(c)}

	var p partial
	if err := p.keep(json.Unmarshal(data, &aux)); err != nil {
		return err
	}
	if err := p.keep(decodeElems("conversational_skill_providers", aux.ConversationalSkillProviders, &c.ConversationalSkillProviders)); err != nil {
		return err
	}
	return p.err
}
