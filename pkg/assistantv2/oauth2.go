package assistantv2

import (
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
)

// authStyle maps client_auth_type to how client credentials reach the token
// endpoint.
func authStyle(clientAuthType string) oauth2.AuthStyle {
	switch clientAuthType {
	case ClientAuthTypeBody:
		return oauth2.AuthStyleInParams
	case ClientAuthTypeBasicAuthHeader:
		return oauth2.AuthStyleInHeader
	default:
		return oauth2.AuthStyleAutoDetect
	}
}

// ClientCredentialsConfig combines the public and private halves of a
// client credentials flow.
func ClientCredentialsConfig(public *ProviderOAuth2ClientCredentialsFlow, private *ProviderPrivateOAuth2ClientCredentialsFlow) *clientcredentials.Config {
	cfg := &clientcredentials.Config{
		ClientID:     private.ClientID,
		ClientSecret: private.ClientSecret,
	}
	if public != nil {
		cfg.TokenURL = public.TokenURL
		cfg.AuthStyle = authStyle(public.ClientAuthType)
	}
	return cfg
}

// AuthorizationCodeConfig combines the public and private halves of an
// authorization code flow.
func AuthorizationCodeConfig(public *ProviderOAuth2AuthorizationCodeFlow, private *ProviderPrivateOAuth2AuthorizationCodeFlow) *oauth2.Config {
	cfg := &oauth2.Config{
		ClientID:     private.ClientID,
		ClientSecret: private.ClientSecret,
	}
	if public != nil {
		cfg.Endpoint = oauth2.Endpoint{
			AuthURL:   public.AuthorizationURL,
			TokenURL:  public.TokenURL,
			AuthStyle: authStyle(public.ClientAuthType),
		}
		cfg.RedirectURL = public.RedirectURI
	}
	return cfg
}

// PasswordConfig combines the public and private halves of a password flow.
// The resource owner credentials are returned separately because
// oauth2.Config takes them per token request.
func PasswordConfig(public *ProviderOAuth2PasswordFlow, private *ProviderPrivateOAuth2PasswordFlow) (cfg *oauth2.Config, username, password string) {
	cfg = &oauth2.Config{
		ClientID:     private.ClientID,
		ClientSecret: private.ClientSecret,
	}
	if public != nil {
		cfg.Endpoint = oauth2.Endpoint{
			TokenURL:  public.TokenURL,
			AuthStyle: authStyle(public.ClientAuthType),
		}
		if public.Username != nil {
			username = public.Username.Value
		}
	}
	if private.Password != nil {
		password = private.Password.Value
	}
	return cfg, username, password
}

// Token returns the stored tokens, or nil when no access token is stored.
func (c *ProviderPrivateOAuth2Credentials) Token() *oauth2.Token {
	if c.AccessToken == "" {
		return nil
	}
	return &oauth2.Token{
		AccessToken:  c.AccessToken,
		RefreshToken: c.RefreshToken,
	}
}

// TokenSource returns a source that always yields the stored tokens, or nil
// when no access token is stored.
func (c *ProviderPrivateOAuth2Credentials) TokenSource() oauth2.TokenSource {
	tok := c.Token()
	if tok == nil {
		return nil
	}
	return oauth2.StaticTokenSource(tok)
}
