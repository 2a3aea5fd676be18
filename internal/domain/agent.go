package domain

import "strings"

// Appearance holds optional presentation data for an agent.
type Appearance struct {
	Avatar *string `json:"avatar,omitempty"`
}

// Agent represents the conversational agent being embedded.
// Agent records are owned by an external provider and consumed read-only.
type Agent struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Appearance  Appearance `json:"appearance"`
}

// IsSelected reports whether the agent can be used to generate artifacts.
func (a *Agent) IsSelected() bool {
	return a != nil && strings.TrimSpace(a.ID) != ""
}

// AvatarURL returns the avatar URL or an empty string when none is set.
func (a *Agent) AvatarURL() string {
	if a == nil || a.Appearance.Avatar == nil {
		return ""
	}
	return *a.Appearance.Avatar
}
