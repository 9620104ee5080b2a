package common

// AuthorizationHeaderName is the HTTP header carrying the access token on
// requests to the wiki service. The value may be a raw token or prefixed
// with "Bearer ".
const AuthorizationHeaderName = "Authorization"

// UnknownAuthor is the sentinel backfilled into pages created before
// authorship tracking existed. It never matches any subject.
const UnknownAuthor = "unknown"
