package tools

import (
	"errors"
	"strconv"
	"strings"
)

// ErrMissingInput marks a required field or image slot that was absent at
// submit time.
var ErrMissingInput = errors.New("missing required input")

// ErrUnknownTool marks a tool identifier that is not in the catalog.
var ErrUnknownTool = errors.New("unknown tool")

// ErrUnknownSlot marks an upload aimed at a slot the tool does not have.
var ErrUnknownSlot = errors.New("unknown input slot")

type ToolID string

const (
	IDPhoto     ToolID = "idphoto"
	Outfit      ToolID = "outfit"
	Beauty      ToolID = "beauty"
	Poster      ToolID = "poster"
	SocialStyle ToolID = "style"
	Comic       ToolID = "comic"
)

// Slot names an image input position of a tool.
type Slot string

const (
	SlotPortrait   Slot = "portrait"
	SlotBackground Slot = "background"
	SlotBrooch     Slot = "brooch"
	SlotLogo       Slot = "logo"
	SlotDoodle     Slot = "doodle"
	SlotPhoto      Slot = "photo"
)

type SlotSpec struct {
	Name     Slot   `json:"name"`
	Required bool   `json:"required"`
	Label    string `json:"label"`
}

// RequestVariant selects how the workflow talks to the generation
// service for a tool.
type RequestVariant string

const (
	// VariantSingle issues one editing call.
	VariantSingle RequestVariant = "single"
	// VariantComposite issues an editing call, then a sequential second
	// call that overlays an optional accessory image onto the result.
	VariantComposite RequestVariant = "composite"
	// VariantPoster generates a batch of base images from text, then
	// overlays an optional logo onto each concurrently.
	VariantPoster RequestVariant = "poster"
)

type ParamKind string

const (
	ParamEnum ParamKind = "enum"
	ParamText ParamKind = "text"
	ParamInt  ParamKind = "int"
	ParamBool ParamKind = "bool"
)

// ParamSpec describes one parameter field for the tool catalog endpoint.
// Parsing and clamping are done by the definition's parser; this is
// metadata for clients rendering the form.
type ParamSpec struct {
	Name     string    `json:"name"`
	Kind     ParamKind `json:"kind"`
	Required bool      `json:"required,omitempty"`
	Default  string    `json:"default,omitempty"`
	Min      int       `json:"min,omitempty"`
	Max      int       `json:"max,omitempty"`
	Choices  []string  `json:"choices,omitempty"`
	Label    string    `json:"label,omitempty"`
}

// Parameters is a tool's typed parameter record. Each tool's template
// functions assert it back to the concrete type produced by that tool's
// parser.
type Parameters any

// FormValues reads submitted parameter fields. url.Values satisfies it.
type FormValues interface {
	Get(key string) string
}

// Definition is the per-tool configuration record driving the generic
// workflow: input slots, parameter schema, prompt templates, and the
// request shape.
type Definition struct {
	ID          ToolID
	Name        string
	Description string
	Slots       []SlotSpec
	Params      []ParamSpec
	Variant     RequestVariant

	// ParseParameters coerces form fields into the tool's typed record.
	// Numeric and enumerated fields normalize instead of failing; only a
	// missing required free-text field is an error.
	ParseParameters func(values FormValues) (Parameters, error)

	// BuildPrompt renders the instruction string. It must be pure: the
	// same parameters and slot presence always yield the same string.
	BuildPrompt func(params Parameters, present func(Slot) bool) string

	// BuildCompositePrompt renders the instruction for the secondary
	// overlay call. Nil for VariantSingle tools.
	BuildCompositePrompt func(params Parameters) string

	// ArtifactName names the downloadable result. option is the
	// zero-based result index, used by multi-image tools.
	ArtifactName func(params Parameters, option int) string
}

func (d *Definition) RequiredSlots() []Slot {
	var slots []Slot
	for _, spec := range d.Slots {
		if spec.Required {
			slots = append(slots, spec.Name)
		}
	}
	return slots
}

func (d *Definition) HasSlot(slot Slot) bool {
	for _, spec := range d.Slots {
		if spec.Name == slot {
			return true
		}
	}
	return false
}

// CompositeSlot returns the optional overlay slot for composite-capable
// variants, or "" for single-call tools.
func (d *Definition) CompositeSlot() Slot {
	switch d.Variant {
	case VariantComposite:
		return SlotBrooch
	case VariantPoster:
		return SlotLogo
	default:
		return ""
	}
}

// Form field coercion helpers. Absent or unparsable values fall back to
// the default; range enforcement happens in the parameter constructors,
// which clamp rather than reject.

func stringValue(values FormValues, key, defaultValue string) string {
	value := strings.TrimSpace(values.Get(key))
	if value == "" {
		return defaultValue
	}
	return value
}

func intValue(values FormValues, key string, defaultValue int) int {
	value := strings.TrimSpace(values.Get(key))
	if value == "" {
		return defaultValue
	}

	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intVal
}

func boolValue(values FormValues, key string, defaultValue bool) bool {
	value := strings.TrimSpace(values.Get(key))
	if value == "" {
		return defaultValue
	}
	return value == "true"
}
