package xconfig

import "github.com/invopop/jsonschema"

// Schema builds a JSON Schema document describing settings.json, the way
// the teacher reflects its own Config struct for documentation and editor
// tooling. Exposed through the "codexplus schema" command.
func Schema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		ExpandedStruct: true,
		DoNotReference: true,
	}
	return reflector.Reflect(&rawSettings{})
}
