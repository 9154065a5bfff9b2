package response_models

type PersonaResponse struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Tagline      string           `json:"tagline"`
	Description  string           `json:"description"`
	Introduction string           `json:"introduction,omitempty"`
	Conclusion   string           `json:"conclusion,omitempty"`
	Modules      []ModuleResponse `json:"modules,omitempty"`
}

type ModuleResponse struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Narrative         string   `json:"narrative,omitempty"`
	ApplicableSeasons []string `json:"applicable_seasons"`
}
