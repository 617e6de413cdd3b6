// Package api is the HTTP gateway client for the Smart Fit API. Every
// outgoing request passes through the same pipeline: the current credential
// is read from the session store and attached as a bearer header, and any
// 401 response clears the credential and notifies the application so it can
// reset to the unauthenticated state, no matter which operation triggered
// it.
//
// Each endpoint is exposed as one named operation returning the decoded
// response body. Operations are single attempts; the only bound on request
// duration is the configured timeout.
package api
