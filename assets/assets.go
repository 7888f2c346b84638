package assets

import _ "embed"

// Scene is the default scene layout.
//
//go:embed scene.yaml
var Scene []byte
