package llm

// ProviderInfo describes a selectable provider.
type ProviderInfo struct {
	ID           string
	Name         string
	SignupURL    string
	Models       []string
	DefaultModel string
}

var Providers = []ProviderInfo{
	{
		ID:        ProviderGemini,
		Name:      "Google Gemini",
		SignupURL: "https://aistudio.google.com/app/apikey",
		Models: []string{
			"gemini-1.5-flash-latest",
			"gemini-1.5-pro-latest",
			"gemini-2.0-flash",
			"gemini-2.0-flash-lite",
			"gemini-2.5-flash-preview-04-17",
			"gemini-2.5-pro-preview-03-25",
		},
		DefaultModel: defaultGeminiModel,
	},
	{
		ID:           ProviderOpenAI,
		Name:         "OpenAI",
		SignupURL:    "https://platform.openai.com/api-keys",
		Models:       []string{"gpt-4o", "gpt-4o-mini", "gpt-4.1", "gpt-4.1-mini"},
		DefaultModel: defaultOpenAIModel,
	},
}

// GetProvider returns the catalogue entry for id, or nil.
func GetProvider(id string) *ProviderInfo {
	for _, p := range Providers {
		if p.ID == id {
			return &p
		}
	}
	return nil
}

// ProviderIDs lists the known provider identifiers.
func ProviderIDs() []string {
	ids := make([]string, len(Providers))
	for i, p := range Providers {
		ids[i] = p.ID
	}
	return ids
}
