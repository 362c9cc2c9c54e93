package assets

import _ "embed"

// ContentYAML is the static content table: items, recipes, loot and zones.
//
//go:embed content.yaml
var ContentYAML []byte
