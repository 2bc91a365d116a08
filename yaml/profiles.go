// Package yaml loads section keyword profiles from YAML configuration
// files, so deployments can tune classification without rebuilding.
package yaml

import (
	"os"

	"github.com/jilee1212/sitegen"
	"gopkg.in/yaml.v3"
)

// profilesFile is the top-level YAML document shape.
type profilesFile struct {
	Profiles sitegen.Profiles `yaml:"profiles"`
}

// LoadProfiles reads an ordered profile list from a YAML file. Document
// order is preserved, which matters for filename-match tie breaking.
func LoadProfiles(path string) (sitegen.Profiles, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseProfiles(content)
}

// ParseProfiles parses and validates a YAML profile document.
func ParseProfiles(content []byte) (sitegen.Profiles, error) {
	var file profilesFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, sitegen.Errorf(sitegen.EINVALID, "malformed profile config: %v", err)
	}
	if len(file.Profiles) == 0 {
		return nil, sitegen.Errorf(sitegen.EINVALID, "profile config has no profiles")
	}
	for i := range file.Profiles {
		if file.Profiles[i].Kind == "" {
			file.Profiles[i].Kind = sitegen.KindText
		}
	}
	if err := file.Profiles.Validate(); err != nil {
		return nil, err
	}
	return file.Profiles, nil
}
