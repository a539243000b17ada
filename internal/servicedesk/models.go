package servicedesk

import (
	"encoding/json"
	"errors"
)

const (
	// NameFallback stands in for a missing first_name.
	NameFallback = "name not found"
	// EmailFallback stands in for a missing email_address.
	EmailFallback = "email not found"
)

// loginPayload is the body of POST /api/v1/login.
type loginPayload struct {
	UserName string `json:"user_name"`
	Password string `json:"password"`
}

// UserInfoEntry is one attribute of the user info list. Value stays raw
// until a specific key is read.
type UserInfoEntry struct {
	Key          string          `json:"key"`
	Value        json.RawMessage `json:"value"`
	ValueCaption *string         `json:"valueCaption"`
}

// UnmarshalJSON rejects entries without a "key"; every other field may be
// absent.
func (e *UserInfoEntry) UnmarshalJSON(data []byte) error {
	type entry UserInfoEntry
	var raw struct {
		entry
		Key *string `json:"key"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Key == nil {
		return errors.New(`user info entry without "key"`)
	}
	*e = UserInfoEntry(raw.entry)
	e.Key = *raw.Key
	return nil
}

type loginUser struct {
	Info []UserInfoEntry `json:"info"`
}

type loginResponse struct {
	User *loginUser `json:"user"`
}

// Identity is what a successful login yields.
type Identity struct {
	GroupID uint64
	Name    string
	Email   string
	// SessionID and GOCSession are the session cookies the service desk
	// issued, empty when it set none.
	SessionID  string
	GOCSession string
}

// userInfo maps info keys to their raw values. A repeated key keeps the
// last value.
type userInfo map[string]json.RawMessage

func newUserInfo(entries []UserInfoEntry) userInfo {
	info := make(userInfo, len(entries))
	for _, e := range entries {
		info[e.Key] = e.Value
	}
	return info
}

// groupID returns user_groups[0].id, or 0 if any step of that path does
// not have the expected shape.
func (u userInfo) groupID() uint64 {
	raw, ok := u["user_groups"]
	if !ok {
		return 0
	}
	var groups []json.RawMessage
	if err := json.Unmarshal(raw, &groups); err != nil || len(groups) == 0 {
		return 0
	}
	var first struct {
		ID json.RawMessage `json:"id"`
	}
	if err := json.Unmarshal(groups[0], &first); err != nil || first.ID == nil {
		return 0
	}
	var id uint64
	if err := json.Unmarshal(first.ID, &id); err != nil {
		return 0
	}
	return id
}

// str returns the string value of key, or fallback when the key is absent
// or not a JSON string.
func (u userInfo) str(key, fallback string) string {
	raw, ok := u[key]
	if !ok {
		return fallback
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fallback
	}
	s, ok := v.(string)
	if !ok {
		return fallback
	}
	return s
}
