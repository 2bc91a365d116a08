package sitegen

import (
	"encoding/json"
	"strings"
)

// remoteEnvelope mirrors the JSON shape external text-generation services
// are instructed to return.
type remoteEnvelope struct {
	Company struct {
		Name        string `json:"name"`
		Industry    string `json:"industry"`
		Description string `json:"description"`
	} `json:"company"`
	Hero struct {
		Title       string `json:"title"`
		Subtitle    string `json:"subtitle"`
		Description string `json:"description"`
	} `json:"hero"`
	Services []struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		Features    []string `json:"features"`
	} `json:"services"`
	TeamMembers []struct {
		Name        string `json:"name"`
		Position    string `json:"position"`
		Description string `json:"description"`
	} `json:"teamMembers"`
	Contact struct {
		Phone   string `json:"phone"`
		Email   string `json:"email"`
		Address string `json:"address"`
	} `json:"contact"`
	Confidence float64 `json:"confidence"`
}

// ParseBundleResponse extracts the first balanced JSON object embedded in
// a model response and maps it onto a content bundle. The bundle is
// finalized (de-duplicated, capped, defaults filled) before returning.
// Returns EINTERNAL when no parseable object is present.
func ParseBundleResponse(response string) (*ContentBundle, error) {
	span := FirstBalancedObject(response)
	if span == "" {
		return nil, Errorf(EINTERNAL, "no JSON object in model response")
	}

	var env remoteEnvelope
	if err := json.Unmarshal([]byte(span), &env); err != nil {
		return nil, Errorf(EINTERNAL, "malformed JSON in model response: %v", err)
	}

	b := &ContentBundle{
		Company: Company{
			Name:        env.Company.Name,
			Industry:    env.Company.Industry,
			Description: env.Company.Description,
		},
		Hero: Hero{
			Title:    env.Hero.Title,
			Subtitle: env.Hero.Subtitle,
			Text:     env.Hero.Description,
		},
		Contact: Contact{
			Phone:   env.Contact.Phone,
			Email:   env.Contact.Email,
			Address: env.Contact.Address,
		},
		Confidence: env.Confidence,
	}
	for _, s := range env.Services {
		b.Services = append(b.Services, Service{
			Title:       s.Title,
			Description: s.Description,
			Features:    s.Features,
		})
	}
	for _, m := range env.TeamMembers {
		b.Team = append(b.Team, TeamMember{
			Name:        m.Name,
			Position:    m.Position,
			Description: m.Description,
		})
	}
	b.Finalize()
	return b, nil
}

// FirstBalancedObject returns the first balanced {...} span in s,
// ignoring braces inside JSON strings. Returns "" when no balanced
// object exists.
func FirstBalancedObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
