package assistantv2

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"golang.org/x/oauth2"

	"github.com/tjfontaine/watson-assistant/pkg/tagged"
)

const providerResponseJSON = `{
  "provider_id": "p1",
  "specification": {
    "servers": [{"url": "https://skills.example.com"}],
    "components": {
      "securitySchemes": {
        "authentication_method": "oauth2",
        "oauth2": {
          "preferred_flow": "client_credentials",
          "flows": {
            "client_credentials": {
              "token_url": "https://auth.example.com/token",
              "client_auth_type": "BasicAuthHeader"
            }
          }
        }
      }
    }
  }
}`

func TestProviderResponse_Decode(t *testing.T) {
	var resp ProviderResponse
	if err := json.Unmarshal([]byte(providerResponseJSON), &resp); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}

	if resp.ProviderID != "p1" {
		t.Errorf("ProviderID = %q, want p1", resp.ProviderID)
	}
	if len(resp.Specification.Servers) != 1 || resp.Specification.Servers[0].URL != "https://skills.example.com" {
		t.Errorf("Servers = %+v", resp.Specification.Servers)
	}

	scheme, ok := resp.Specification.Components.SecuritySchemes.(*ProviderSecuritySchemeOAuth2)
	if !ok {
		t.Fatalf("SecuritySchemes = %T, want *ProviderSecuritySchemeOAuth2", resp.Specification.Components.SecuritySchemes)
	}
	if scheme.Base().AuthenticationMethod != AuthenticationMethodOAuth2 {
		t.Errorf("AuthenticationMethod = %q, want oauth2", scheme.Base().AuthenticationMethod)
	}
	if scheme.OAuth2.PreferredFlow != OAuth2FlowClientCredentials {
		t.Errorf("PreferredFlow = %q, want client_credentials", scheme.OAuth2.PreferredFlow)
	}
	flow, ok := scheme.OAuth2.Flows.(*ProviderAuthenticationOAuth2ClientCredentials)
	if !ok {
		t.Fatalf("Flows = %T, want *ProviderAuthenticationOAuth2ClientCredentials", scheme.OAuth2.Flows)
	}
	if flow.ClientCredentials.TokenURL != "https://auth.example.com/token" {
		t.Errorf("TokenURL = %q", flow.ClientCredentials.TokenURL)
	}
}

func TestProviderResponse_DecodeErrorPath(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		field string
	}{
		{
			name:  "authentication method",
			data:  `{"specification": {"servers": [], "components": {"securitySchemes": {"authentication_method": 3}}}}`,
			field: "specification.components.securitySchemes.authentication_method",
		},
		{
			name:  "oauth2 flows",
			data:  `{"specification": {"components": {"securitySchemes": {"authentication_method": "oauth2", "oauth2": {"flows": "password"}}}}}`,
			field: "specification.components.securitySchemes.oauth2.flows",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var resp ProviderResponse
			err := json.Unmarshal([]byte(tt.data), &resp)
			var de *tagged.DecodeError
			if !errors.As(err, &de) {
				t.Fatalf("Unmarshal error = %v, want *tagged.DecodeError", err)
			}
			if de.Field != tt.field {
				t.Errorf("Field = %q, want %q", de.Field, tt.field)
			}
		})
	}
}

func TestProviderSecuritySchemes_Variants(t *testing.T) {
	tests := []struct {
		method string
		want   string
	}{
		{"basic", "*assistantv2.ProviderSecuritySchemeBasic"},
		{"bearer", "*assistantv2.ProviderSecuritySchemeBearer"},
		{"api_key", "*assistantv2.ProviderSecuritySchemeAPIKey"},
		{"oauth2", "*assistantv2.ProviderSecuritySchemeOAuth2"},
		{"none", "*assistantv2.ProviderSecuritySchemeNone"},
		{"saml", "*assistantv2.ProviderSecuritySchemeBase"},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			got, err := ProviderSecuritySchemes().Decode([]byte(`{"authentication_method": "` + tt.method + `"}`))
			if err != nil {
				t.Fatalf("Decode returned error: %v", err)
			}
			if typeName(got) != tt.want {
				t.Errorf("Decode() = %s, want %s", typeName(got), tt.want)
			}
		})
	}
}

func typeName(v any) string { return fmt.Sprintf("%T", v) }

func TestProviderPrivate_Decode(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		check func(t *testing.T, auth ProviderPrivateAuthentication)
	}{
		{
			name: "bearer",
			data: `{"authentication": {"token": {"type": "value", "value": "tok"}}}`,
			check: func(t *testing.T, auth ProviderPrivateAuthentication) {
				bearer, ok := auth.(*ProviderPrivateAuthenticationBearer)
				if !ok || bearer.Token.Value != "tok" {
					t.Errorf("authentication = %#v, want bearer tok", auth)
				}
			},
		},
		{
			name: "basic",
			data: `{"authentication": {"password": {"type": "value", "value": "pw"}}}`,
			check: func(t *testing.T, auth ProviderPrivateAuthentication) {
				basic, ok := auth.(*ProviderPrivateAuthenticationBasic)
				if !ok || basic.Password.Value != "pw" {
					t.Errorf("authentication = %#v, want basic pw", auth)
				}
			},
		},
		{
			name: "oauth2 authorization code",
			data: `{"authentication": {"flows": {"authorization_code": {"client_id": "cid", "authorization_code": "code"}}}}`,
			check: func(t *testing.T, auth ProviderPrivateAuthentication) {
				oa, ok := auth.(*ProviderPrivateAuthenticationOAuth2)
				if !ok {
					t.Fatalf("authentication = %T, want *ProviderPrivateAuthenticationOAuth2", auth)
				}
				flow, ok := oa.Flows.(*ProviderPrivateAuthenticationOAuth2AuthorizationCode)
				if !ok {
					t.Fatalf("Flows = %T, want authorization code", oa.Flows)
				}
				if flow.AuthorizationCode.ClientID != "cid" || flow.AuthorizationCode.AuthorizationCode != "code" {
					t.Errorf("flow = %+v", flow.AuthorizationCode)
				}
			},
		},
		{
			name: "unknown method",
			data: `{"authentication": {"mtls": {"cert": "c"}}}`,
			check: func(t *testing.T, auth ProviderPrivateAuthentication) {
				base, ok := auth.(*ProviderPrivateAuthenticationBase)
				if !ok || base.RawJSON() == nil {
					t.Errorf("authentication = %#v, want base with raw payload", auth)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p ProviderPrivate
			if err := json.Unmarshal([]byte(tt.data), &p); err != nil {
				t.Fatalf("Unmarshal returned error: %v", err)
			}
			tt.check(t, p.Authentication)
			if err := p.Validate(); err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
		})
	}
}

func TestProviderPrivate_MissingAuthentication(t *testing.T) {
	var p ProviderPrivate
	if err := json.Unmarshal([]byte(`{}`), &p); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if p.Authentication != nil {
		t.Errorf("Authentication = %#v, want nil", p.Authentication)
	}

	var ve *ValidationError
	if err := p.Validate(); !errors.As(err, &ve) || ve.Field != "authentication" {
		t.Errorf("Validate() = %v, want authentication missing", err)
	}
}

func TestProviderPrivate_EncodeDecode(t *testing.T) {
	in := ProviderPrivate{Authentication: NewBearerAuthentication("secret")}
	data, err := json.Marshal(in)
	if err != nil {
		t.Fatalf("Marshal returned error: %v", err)
	}
	if got, want := string(data), `{"authentication":{"token":{"type":"value","value":"secret"}}}`; got != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}

	var out ProviderPrivate
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if bearer, ok := out.Authentication.(*ProviderPrivateAuthenticationBearer); !ok || bearer.Token.Value != "secret" {
		t.Errorf("decoded authentication = %#v", out.Authentication)
	}
}

func TestClientCredentialsConfig(t *testing.T) {
	public := &ProviderOAuth2ClientCredentialsFlow{
		ProviderOAuth2Endpoint: ProviderOAuth2Endpoint{
			TokenURL:       "https://auth.example.com/token",
			ClientAuthType: ClientAuthTypeBasicAuthHeader,
		},
	}
	private := &ProviderPrivateOAuth2ClientCredentialsFlow{
		ProviderPrivateOAuth2Credentials: ProviderPrivateOAuth2Credentials{ClientID: "cid", ClientSecret: "sec"},
	}

	cfg := ClientCredentialsConfig(public, private)
	if cfg.ClientID != "cid" || cfg.ClientSecret != "sec" {
		t.Errorf("client = %q/%q, want cid/sec", cfg.ClientID, cfg.ClientSecret)
	}
	if cfg.TokenURL != "https://auth.example.com/token" {
		t.Errorf("TokenURL = %q", cfg.TokenURL)
	}
	if cfg.AuthStyle != oauth2.AuthStyleInHeader {
		t.Errorf("AuthStyle = %v, want AuthStyleInHeader", cfg.AuthStyle)
	}
}

func TestAuthStyle(t *testing.T) {
	tests := []struct {
		clientAuthType string
		want           oauth2.AuthStyle
	}{
		{ClientAuthTypeBody, oauth2.AuthStyleInParams},
		{ClientAuthTypeBasicAuthHeader, oauth2.AuthStyleInHeader},
		{"", oauth2.AuthStyleAutoDetect},
		{"Other", oauth2.AuthStyleAutoDetect},
	}

	for _, tt := range tests {
		if got := authStyle(tt.clientAuthType); got != tt.want {
			t.Errorf("authStyle(%q) = %v, want %v", tt.clientAuthType, got, tt.want)
		}
	}
}

func TestAuthorizationCodeConfig(t *testing.T) {
	public := &ProviderOAuth2AuthorizationCodeFlow{
		ProviderOAuth2Endpoint: ProviderOAuth2Endpoint{TokenURL: "https://auth/token", ClientAuthType: ClientAuthTypeBody},
		AuthorizationURL:       "https://auth/authorize",
		RedirectURI:            "https://app/callback",
	}
	private := &ProviderPrivateOAuth2AuthorizationCodeFlow{
		ProviderPrivateOAuth2Credentials: ProviderPrivateOAuth2Credentials{ClientID: "cid"},
	}

	cfg := AuthorizationCodeConfig(public, private)
	if cfg.Endpoint.AuthURL != "https://auth/authorize" || cfg.Endpoint.TokenURL != "https://auth/token" {
		t.Errorf("Endpoint = %+v", cfg.Endpoint)
	}
	if cfg.Endpoint.AuthStyle != oauth2.AuthStyleInParams {
		t.Errorf("AuthStyle = %v, want AuthStyleInParams", cfg.Endpoint.AuthStyle)
	}
	if cfg.RedirectURL != "https://app/callback" {
		t.Errorf("RedirectURL = %q", cfg.RedirectURL)
	}
}

func TestPasswordConfig(t *testing.T) {
	public := &ProviderOAuth2PasswordFlow{
		ProviderOAuth2Endpoint: ProviderOAuth2Endpoint{TokenURL: "https://auth/token"},
		Username:               &ProviderAuthenticationTypeAndValue{Type: "value", Value: "bob"},
	}
	private := &ProviderPrivateOAuth2PasswordFlow{
		ProviderPrivateOAuth2Credentials: ProviderPrivateOAuth2Credentials{ClientID: "cid"},
		Password:                         &ProviderAuthenticationTypeAndValue{Type: "value", Value: "pw"},
	}

	cfg, username, password := PasswordConfig(public, private)
	if cfg.ClientID != "cid" || cfg.Endpoint.TokenURL != "https://auth/token" {
		t.Errorf("cfg = %+v", cfg)
	}
	if username != "bob" || password != "pw" {
		t.Errorf("credentials = %q/%q, want bob/pw", username, password)
	}
}

func TestProviderPrivateOAuth2Credentials_Token(t *testing.T) {
	creds := ProviderPrivateOAuth2Credentials{AccessToken: "at", RefreshToken: "rt"}
	tok, err := creds.TokenSource().Token()
	if err != nil {
		t.Fatalf("Token returned error: %v", err)
	}
	if tok.AccessToken != "at" || tok.RefreshToken != "rt" {
		t.Errorf("token = %+v, want at/rt", tok)
	}

	empty := ProviderPrivateOAuth2Credentials{ClientID: "cid"}
	if empty.Token() != nil || empty.TokenSource() != nil {
		t.Error("credentials without access token returned a token")
	}
}
