package refdata

import "github.com/dmitrijs2005/idgateway/internal/server/models"

// Default returns the built-in canonical set. Each call returns a fresh copy.
func Default() *models.ReferenceData {
	return &models.ReferenceData{
		Clients: []models.Client{
			{
				ClientID:               "webapp",
				ClientName:             "Web application",
				Enabled:                true,
				EnableLocalLogin:       true,
				AllowedGrantTypes:      []string{"authorization_code"},
				RedirectURIs:           []string{"http://localhost:3000/signin-oidc"},
				PostLogoutRedirectURIs: []string{"http://localhost:3000/"},
				AllowedScopes:          []string{"openid", "profile", "email", "roles", "api"},
				RequirePKCE:            true,
				AllowOfflineAccess:     true,
			},
			{
				ClientID:          "billing",
				ClientName:        "Billing service",
				Enabled:           true,
				AllowedGrantTypes: []string{"client_credentials"},
				AllowedScopes:     []string{"identity.membership"},
			},
		},
		IdentityResources: []models.IdentityResource{
			{Name: "openid", DisplayName: "Your user identifier", UserClaims: []string{models.ClaimSubject}},
			{Name: "profile", DisplayName: "User profile", UserClaims: []string{
				models.ClaimName, models.ClaimGivenName, models.ClaimFamilyName, models.ClaimWebSite,
			}},
			{Name: "email", DisplayName: "Your email address", UserClaims: []string{models.ClaimEmail}},
			{Name: "roles", DisplayName: "Your roles", UserClaims: []string{models.ClaimRole}},
		},
		APIScopes: []models.APIScope{
			{Name: "api", DisplayName: "Application API"},
			{Name: "identity.membership", DisplayName: "Membership updates"},
		},
		APIResources: []models.APIResource{
			{Name: "api", DisplayName: "Application API", Scopes: []string{"api"}, UserClaims: []string{models.ClaimRole}},
			{Name: "identity", DisplayName: "Identity internal API", Scopes: []string{"identity.membership"}},
		},
	}
}
