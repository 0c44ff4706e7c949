package models

import "time"

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued access token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Role        Role   `json:"role"`
}

// IdentifierCheckResponse is returned by the check_identifier endpoints.
type IdentifierCheckResponse struct {
	Result  IdentifierCheckResult `json:"result"`
	Message string                `json:"message,omitempty"`
}

// DefaultValueRequest asks the server to coerce a raw default value for a
// field shape without storing anything.
type DefaultValueRequest struct {
	Datatype     FieldType  `json:"datatype"`
	ElementsType *FieldType `json:"elements_type,omitempty"`
	AdtEnumID    *string    `json:"adt_enum_id,omitempty"`
	Value        any        `json:"value"`
}

// DefaultValueResponse is the coerced default. HasDefault is false when the
// raw value was discarded. Placeholder is set for kinds without defaults.
// ResolvesTo is the moment a momentary default stands for right now.
type DefaultValueResponse struct {
	Value       any        `json:"value"`
	HasDefault  bool       `json:"has_default"`
	Placeholder string     `json:"placeholder,omitempty"`
	ResolvesTo  *time.Time `json:"resolves_to,omitempty"`
}

// TransitionRequest evaluates the transitions of one food screen.
type TransitionRequest struct {
	FoodEnumID     string   `json:"food_enum_id"`
	SelectedItemID string   `json:"selected_item_id"`
	Tags           []string `json:"tags"`
}

// TransitionResponse describes the fired transition.
// Fired is false when no transition matched.
type TransitionResponse struct {
	Fired           bool     `json:"fired"`
	TransitionIndex int      `json:"transition_index"`
	TargetEnum      *string  `json:"target_enum,omitempty"`
	Finished        bool     `json:"finished"`
	Tags            []string `json:"tags"`
}
