package catalog

// ToolKind says what payload a tool produces: formatted text or an image
// returned as a data URI.

type ToolKind string

const (
	ToolKindText  ToolKind = "text"
	ToolKindImage ToolKind = "image"
)

// ToolInput describes one labeled field the tool form collects. Label is the
// key the prompt builder uses, so renaming a label changes the prompt.
type ToolInput struct {
	Label    string   `json:"label"`
	Required bool     `json:"required"`
	Options  []string `json:"options,omitempty"`
}

// ToolConfig is one entry of the AI tool catalog. TaskDescriptor is the
// fixed instruction prepended to every run of the tool.
type ToolConfig struct {
	ID             string      `json:"id"`
	Category       string      `json:"category"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Kind           ToolKind    `json:"kind"`
	TaskDescriptor string      `json:"-"`
	Inputs         []ToolInput `json:"inputs"`
}

// Tools returns the published AI tool catalog.
func Tools() []ToolConfig {
	return []ToolConfig{
		{
			ID:             "research_summarizer",
			Category:       "research",
			Name:           "Research Summarizer",
			Description:    "Summarize complex research papers and scientific articles.",
			Kind:           ToolKindText,
			TaskDescriptor: "You are an expert academic researcher. Summarize the provided text or topic into a concise, structured abstract with key findings, methodology, and conclusion.",
			Inputs: []ToolInput{
				{Label: "Topic", Required: true},
				{Label: "Style", Options: []string{"Academic", "Simple", "Bullet Points"}},
			},
		},
		{
			ID:             "research_citation",
			Category:       "research",
			Name:           "Citation Generator",
			Description:    "Generate citations in APA, MLA, and other styles.",
			Kind:           ToolKindText,
			TaskDescriptor: "Generate a bibliographic citation for the provided source information in the requested format.",
			Inputs: []ToolInput{
				{Label: "Source", Required: true},
				{Label: "Format", Options: []string{"APA 7", "MLA 9", "Harvard", "Chicago"}},
			},
		},
		{
			ID:             "edu_lesson",
			Category:       "education",
			Name:           "Lesson Planner",
			Description:    "Create comprehensive lesson plans for teachers.",
			Kind:           ToolKindText,
			TaskDescriptor: "Create a comprehensive lesson plan for the specified topic and grade level. Include objectives, activities, and assessment methods.",
			Inputs: []ToolInput{
				{Label: "Topic", Required: true},
				{Label: "Level"},
			},
		},
		{
			ID:             "edu_quiz",
			Category:       "education",
			Name:           "Quiz Creator",
			Description:    "Generate various quiz questions for review.",
			Kind:           ToolKindText,
			TaskDescriptor: "Generate 5 multiple choice questions with answers and explanations for the given topic.",
			Inputs: []ToolInput{
				{Label: "Topic", Required: true},
				{Label: "Difficulty", Options: []string{"Easy", "Medium", "Hard"}},
			},
		},
		{
			ID:             "edu_exam",
			Category:       "education",
			Name:           "Smart Exam Generator",
			Description:    "Create comprehensive exams for any subject and level in seconds.",
			Kind:           ToolKindText,
			TaskDescriptor: "Generate 3 multiple-choice questions about the given topic at the requested difficulty level. Include the correct answer and a brief explanation for each question.",
			Inputs: []ToolInput{
				{Label: "Topic", Required: true},
				{Label: "Difficulty", Options: []string{"Easy", "Medium", "Hard"}},
			},
		},
		{
			ID:             "design_logo",
			Category:       "design",
			Name:           "Logo Concept Generator",
			Description:    "Generate visual concepts and ideas for logo design.",
			Kind:           ToolKindImage,
			TaskDescriptor: "A minimal, modern, vector-style logo design concept",
			Inputs: []ToolInput{
				{Label: "Description", Required: true},
				{Label: "Style", Options: []string{"Minimalist", "Vintage", "Futuristic", "3D"}},
			},
		},
		{
			ID:             "design_social",
			Category:       "design",
			Name:           "Social Media Creator",
			Description:    "Design engaging images for social media posts.",
			Kind:           ToolKindImage,
			TaskDescriptor: "A high-quality, engaging social media post background image",
			Inputs: []ToolInput{
				{Label: "Topic", Required: true},
				{Label: "Platform", Options: []string{"Instagram (Square)", "Twitter (Wide)", "Story (Vertical)"}},
			},
		},
		{
			ID:             "biz_writer",
			Category:       "business",
			Name:           "Smart Writer",
			Description:    "Generate professional articles, emails, and marketing copy instantly.",
			Kind:           ToolKindText,
			TaskDescriptor: "You are a professional business copywriter. Write content based on the request.",
			Inputs: []ToolInput{
				{Label: "Topic", Required: true},
				{Label: "Tone", Options: []string{"Formal", "Friendly", "Persuasive"}},
			},
		},
	}
}

func ToolByID(id string) (ToolConfig, bool) {
	for _, t := range Tools() {
		if t.ID == id {
			return t, true
		}
	}
	return ToolConfig{}, false
}

// HeroImagePrompt is the fixed prompt for the generated hero background.
const HeroImagePrompt = "Abstract Islamic geometric patterns combined with futuristic technology circuits, glowing blue and gold lines, dark deep blue background, 8k resolution, elegant, minimal, high tech"

// HeroImageFallbackURL is served when generation is unavailable.
const HeroImageFallbackURL = "https://images.unsplash.com/photo-1518770660439-4636190af475?q=80&w=2070&auto=format&fit=crop"
