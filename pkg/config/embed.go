package config

import (
	"errors"

	_ "embed"
)

// defaults.yml ships inside the binary so a fresh install works with
// no config file present.
//
//go:embed embedded/defaults.yml
var defaultConfig []byte

// embeddedProvider feeds compiled-in bytes to koanf.
type embeddedProvider []byte

func (p embeddedProvider) ReadBytes() ([]byte, error) { return p, nil }

func (p embeddedProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("embedded provider has no map form")
}
