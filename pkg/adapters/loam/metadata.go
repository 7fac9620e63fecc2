package loam

// SlideMetadata is the frontmatter of one slide document.
// The markdown body of the document becomes Slide.Body.
type SlideMetadata struct {
	ID       string   `json:"id" mapstructure:"id"`
	Kind     string   `json:"kind" mapstructure:"kind"`
	Title    string   `json:"title" mapstructure:"title"`
	Subtitle string   `json:"subtitle" mapstructure:"subtitle"`
	Bullets  []string `json:"bullets" mapstructure:"bullets"`
	ImageURL string   `json:"image_url" mapstructure:"image_url"`

	// Order positions the slide in the deck. Slides without it sort by ID after
	// every ordered slide.
	Order any `json:"order" mapstructure:"order"`

	// Code is either a bare string (language taken from Language) or a map
	// with language, code and description keys.
	Code     any    `json:"code" mapstructure:"code"`
	Language string `json:"language" mapstructure:"language"`

	// Suggestions are canned prompts for demo slides.
	Suggestions []string `json:"suggestions" mapstructure:"suggestions"`
}
