package models

// Response is the uniform JSON envelope of every API endpoint: a success
// flag, a human-readable message on failure, and an optional payload.
type Response struct {
	Success  bool      `json:"success"`
	Message  string    `json:"message,omitempty"`
	Data     any       `json:"data,omitempty"`
	UserInfo *UserInfo `json:"userInfo,omitempty"`
}

// LoginRequest is the body of POST /api/login.
//
// Username and Password are pointers so that a missing field can be told
// apart from an empty string: absence is a malformed request (400), while
// an empty string proceeds to the credential checks and gets audited.
type LoginRequest struct {
	Username      *string `json:"username"`
	Password      *string `json:"password"`
	TwoFactorCode string  `json:"twoFactorCode"`
}

// CrashRecord is one entry of the crash.log document written whenever a
// request handler panics. The process stays up; restart-on-crash belongs
// to the external process supervisor.
type CrashRecord struct {
	Time  string `json:"time"`
	Error string `json:"error"`
	Stack string `json:"stack"`
}
