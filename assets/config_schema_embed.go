// Where: assets/config_schema_embed.go
// What: Embed the config file JSON schema.
// Why: Validate .housekeeper.yaml without depending on files next to the binary.
package assets

import _ "embed"

//go:embed schema/config.schema.json
var ConfigSchema []byte
