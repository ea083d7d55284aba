package domain

// Credential is the opaque bearer token plus the username it belongs to.
// It is either fully present or absent; a partial pair is treated as absent.
type Credential struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func (c Credential) Present() bool {
	return c.Token != "" && c.Username != ""
}
