package interfaces

// ApplicationContext carries a request's parsed body and resolved identity
// from the router layer into controllers. It is constructed once per
// request and never shared across requests.
type ApplicationContext[T any] struct {
	Ctx      any
	Body     *T
	Identity *IdentityData
}

// IdentityData is the verified claims payload propagated by the auth gate
// through the "User" request header. A nil IdentityData means the request
// is anonymous.
type IdentityData struct {
	ID          string  `json:"id"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	Username    string  `json:"username"`
	Role        string  `json:"role"`
	WorkspaceID *string `json:"workspaceId,omitempty"`
	Workspace   *string `json:"workspace,omitempty"`
}
