package cmd

import (
	"github.com/aaearon/deskauth/internal/config"
	"github.com/aaearon/deskauth/internal/servicedesk"
)

// identityOutput is the structured representation of a logged-in user.
// Session cookies are never printed.
type identityOutput struct {
	GroupID uint64 `json:"groupId" yaml:"group_id"`
	Name    string `json:"name" yaml:"name"`
	Email   string `json:"email" yaml:"email"`
}

// loginOutput is the structured representation of a login run.
type loginOutput struct {
	Settings config.Summary `json:"settings" yaml:"settings"`
	Identity identityOutput `json:"identity" yaml:"identity"`
}

func newIdentityOutput(id *servicedesk.Identity) identityOutput {
	return identityOutput{
		GroupID: id.GroupID,
		Name:    id.Name,
		Email:   id.Email,
	}
}
