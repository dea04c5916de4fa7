package models

// Client is a relying application registered with the authorization server.
type Client struct {
	ClientID                     string   `json:"client_id"`
	ClientName                   string   `json:"client_name"`
	Enabled                      bool     `json:"enabled"`
	EnableLocalLogin             bool     `json:"enable_local_login"`
	IdentityProviderRestrictions []string `json:"identity_provider_restrictions,omitempty"`
	AllowedGrantTypes            []string `json:"allowed_grant_types"`
	RedirectURIs                 []string `json:"redirect_uris,omitempty"`
	PostLogoutRedirectURIs       []string `json:"post_logout_redirect_uris,omitempty"`
	AllowedScopes                []string `json:"allowed_scopes"`
	RequirePKCE                  bool     `json:"require_pkce"`
	AllowOfflineAccess           bool     `json:"allow_offline_access"`
}

// IdentityResource groups user claims requestable as an identity scope.
type IdentityResource struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name,omitempty"`
	UserClaims  []string `json:"user_claims,omitempty"`
}

// APIScope is a scope a client may request for API access.
type APIScope struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
}

// APIResource is a protected API and the scopes and claims it accepts.
type APIResource struct {
	Name        string   `json:"name"`
	DisplayName string   `json:"display_name,omitempty"`
	Scopes      []string `json:"scopes,omitempty"`
	UserClaims  []string `json:"user_claims,omitempty"`
}

// ReferenceData is the canonical authorization-server configuration owned by
// the deployed artifact.
type ReferenceData struct {
	Clients           []Client           `json:"clients"`
	IdentityResources []IdentityResource `json:"identity_resources"`
	APIScopes         []APIScope         `json:"api_scopes"`
	APIResources      []APIResource      `json:"api_resources"`
}
