package models

// IdentityProviderScheme is an authentication option the gateway can delegate to.
// Schemes with an empty DisplayName are registered but never offered in the UI.
type IdentityProviderScheme struct {
	Name        string
	DisplayName string
}

// PendingRequestContext is what the protocol engine knows about the
// authorization request behind a return reference. Empty strings mean absent.
type PendingRequestContext struct {
	IdP       string `json:"idp,omitempty"`
	ClientID  string `json:"client_id,omitempty"`
	LoginHint string `json:"login_hint,omitempty"`
}

// ExternalProvider is an external scheme offered on the login page.
type ExternalProvider struct {
	DisplayName          string `json:"displayName,omitempty"`
	AuthenticationScheme string `json:"authenticationScheme"`
}

// LoginDecision tells the login endpoint what to present.
type LoginDecision struct {
	AllowLocal        bool               `json:"enableLocalLogin"`
	AllowRemember     bool               `json:"allowRememberLogin"`
	ExternalProviders []ExternalProvider `json:"externalProviders"`
	ReturnRef         string             `json:"returnUrl"`
	EmailHint         string             `json:"email"`
}

// IsExternalOnly is true when the only way in is a single external provider.
// Callers redirect straight to it instead of rendering a credential form.
func (d *LoginDecision) IsExternalOnly() bool {
	return !d.AllowLocal && len(d.ExternalProviders) == 1
}

// ExternalLoginScheme returns the scheme to redirect to when IsExternalOnly.
func (d *LoginDecision) ExternalLoginScheme() string {
	if d.IsExternalOnly() {
		return d.ExternalProviders[0].AuthenticationScheme
	}
	return ""
}
