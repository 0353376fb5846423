package handrange

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Profile is a named, reusable range.
type Profile struct {
	Name  string `hcl:"name,label"`
	Range string `hcl:"range"`
}

// profileConfig is the HCL file layout: a sequence of profile blocks.
type profileConfig struct {
	Profiles []Profile `hcl:"profile,block"`
}

// DefaultProfiles returns the built-in profiles used when no config file exists.
func DefaultProfiles() []Profile {
	return []Profile{
		{Name: "tight", Range: "99+, AQo+, AJs+, KQs"},
		{Name: "medium", Range: "77+, ATo+, A8s+, KJo+, KTs+, QJs"},
		{Name: "loose", Range: "22+, A2+, K9o+, K6s+, Q9o+, Q8s+, J8o+, J7s+, T8s+, 98s, 87s"},
	}
}

// LoadProfiles loads named range profiles from an HCL file. A missing file
// yields the built-in defaults. Every profile's range must parse.
func LoadProfiles(filename string) ([]Profile, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultProfiles(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config profileConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	for _, p := range config.Profiles {
		if _, err := Measure(p.Range); err != nil {
			return nil, fmt.Errorf("profile %q: %w", p.Name, err)
		}
	}

	return config.Profiles, nil
}
