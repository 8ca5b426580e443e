package common

// AuthorizationHeaderName is the HTTP header carrying the access token on
// API requests.
const AuthorizationHeaderName = "Authorization"

// BearerPrefix precedes the token value in the Authorization header.
const BearerPrefix = "Bearer "

// Role values stored in the profiles table. Exactly two variants exist;
// authorization is a string comparison against the profile's role column.
const (
	RoleMember  = "member"
	RoleManager = "manager"
)
