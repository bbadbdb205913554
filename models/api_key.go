package models

// APIKey is an id/secret pair issued to a Tollgate account and used to
// authenticate every request the client sends.
type APIKey struct {
	// ID is the public identifier of the key.
	ID string `json:"id"`

	// Secret is the confidential half of the key. It is never logged.
	Secret string `json:"secret"`
}

// IsZero reports whether either half of the key is missing.
func (k APIKey) IsZero() bool {
	return k.ID == "" || k.Secret == ""
}
