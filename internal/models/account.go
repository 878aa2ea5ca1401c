package models

// Account is one entry of the account map, keyed by email.
type Account struct {
	Credential string  `json:"credential"`
	Profile    Profile `json:"profile"`
}

// Session points at the signed-in account.
type Session struct {
	Token string `json:"token"`
	Email string `json:"email"`
}
