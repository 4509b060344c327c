package model

// GenerateRequest represents a password generation request.
// Pointer fields distinguish a missing value (nil -> default) from an explicit one.
type GenerateRequest struct {
	Length       *int  `json:"length"`
	Uppercase    *bool `json:"uppercase"`
	Lowercase    *bool `json:"lowercase"`
	Digits       *bool `json:"digits"`
	Symbols      *bool `json:"symbols"`
	AllowRepeats *bool `json:"allow_repeats"`
}

// GenerateResponse represents a password generation response.
type GenerateResponse struct {
	Password string   `json:"password"`
	Length   int      `json:"length"`
	PoolSize int      `json:"pool_size"`
	Classes  []string `json:"classes"`
}
