package common

// ServiceTokenHeaderName is the gRPC metadata key carrying the service token
// of internal callers (billing) on the membership RPC.
const ServiceTokenHeaderName = "authorization"

// SessionCookieName is the cookie holding the signed-in user's session token.
const SessionCookieName = "idp.session"

// LocalIdentityProvider is the scheme name that designates local (password)
// login in a pending authorization request.
const LocalIdentityProvider = "local"
