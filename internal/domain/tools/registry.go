package tools

import "fmt"

// definitions lists the six tool configurations in catalog order.
var definitions = []*Definition{
	newIDPhotoDefinition(),
	newOutfitDefinition(),
	newBeautyDefinition(),
	newPosterDefinition(),
	newSocialStyleDefinition(),
	newComicDefinition(),
}

var definitionsByID = buildIndex()

func buildIndex() map[ToolID]*Definition {
	index := make(map[ToolID]*Definition, len(definitions))
	for _, def := range definitions {
		index[def.ID] = def
	}
	return index
}

// Get resolves a tool identifier to its definition.
func Get(id ToolID) (*Definition, error) {
	def, ok := definitionsByID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, id)
	}
	return def, nil
}

// All returns the catalog in declaration order. The slice is shared; do
// not mutate the definitions.
func All() []*Definition {
	return definitions
}
