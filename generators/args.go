package generators

type GeneratorArgs struct {
	BaseURL           string   `json:"base_url"`
	Model             string   `json:"model"`
	MaxGenerateTokens *int     `json:"max_generate_tokens"`
	Temperature       *float32 `json:"temperature"`
	Command           []string `json:"command"`
	Timeout           string   `json:"timeout"`
}
