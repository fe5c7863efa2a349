package preference

// Keys in the preferences file.
const (
	KeyAPIKey    = "deepseek_api_key"
	KeyAIEnabled = "ai_enabled"
)

// Status is a redacted view of the stored preferences.
type Status struct {
	Enabled   bool
	HasKey    bool
	MaskedKey string
}
