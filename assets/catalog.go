package assets

import _ "embed"

// Default catalogs compiled into the binary. They are used when no catalog
// file is configured.
var (
	//go:embed abilities.yaml
	Abilities []byte

	//go:embed creatures.json
	Creatures []byte
)
