package assets

// Template names the generator requires from any loader.
const (
	EquipmentTemplate = "equipment"
	IndexTemplate     = "index"
)

// DefaultStyleName is the name of the built-in CSS style.
const DefaultStyleName = "default"

// AssetLoader defines the contract for loading CSS styles and HTML templates.
// Implementations may load from embedded assets, the filesystem, etc.
type AssetLoader interface {
	// LoadStyle loads a CSS style by name (without .css extension).
	// Returns ErrStyleNotFound if the style doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads an HTML template by name (without .html extension).
	// Returns ErrTemplateNotFound if the template doesn't exist.
	// Returns ErrInvalidAssetName if the name contains invalid characters.
	LoadTemplate(name string) (string, error)
}
