package generator

import "encoding/json"

// CompanyCharacter pairs one founder with their generated character.
type CompanyCharacter struct {
	FounderName       string `json:"founder_name"`
	CharacterName     string `json:"character_name"`
	CharacterImageURL string `json:"character_image_url"`
	Reasoning         string `json:"reasoning"`
}

// CompanyCharacterInfo is the subject-facing payload of one generation.
type CompanyCharacterInfo struct {
	CompanyName    string             `json:"company_name"`
	CompanyYCURL   string             `json:"company_yc_url"`
	CompanyLogoURL string             `json:"company_logo_url"`
	Characters     []CompanyCharacter `json:"characters"`
}

// GenerationResult is one completed generation. ID is server-issued and
// unique; Payload is the API response body verbatim, which is also what the
// result stash persists so stored and fetched results are byte-identical.
type GenerationResult struct {
	ID      string
	Payload json.RawMessage
}

// Info decodes the structured company characters out of the raw payload.
func (r GenerationResult) Info() (CompanyCharacterInfo, error) {
	var info CompanyCharacterInfo
	if err := json.Unmarshal(r.Payload, &info); err != nil {
		return CompanyCharacterInfo{}, err
	}
	return info, nil
}
