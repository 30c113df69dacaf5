package types

// ErrorEnvelope is the body of every non-2xx response. Clients surface Error
// verbatim.
type ErrorEnvelope struct {
	Error string `json:"error"`
}

// OK acknowledges mutations that return no resource.
type OK struct {
	OK bool `json:"ok"`
}
