package store

// Built-in templates are served when the store is unreachable or has no row
// for the requested id.

const (
	BlogPostID    = "blog-post"
	SocialMediaID = "social-media"
)

func builtinTemplates() []*Template {
	return []*Template{
		{
			ID:          BlogPostID,
			Name:        "Blog Post",
			Description: "Generate a blog post on any topic",
			Prompt:      "Write a blog post about {topic}. The target audience is {audience}. The tone should be {tone}. The blog post should be around {length} words.",
			FormFields:  FormFields{"topic", "audience", "tone", "length"},
		},
		{
			ID:          SocialMediaID,
			Name:        "Social Media Post",
			Description: "Create engaging social media content",
			Prompt:      "Create a {platform} post about {topic}. The goal is to {goal}. The tone should be {tone}.",
			FormFields:  FormFields{"platform", "topic", "goal", "tone"},
		},
	}
}

// Builtins returns fresh copies of the built-in templates.
func Builtins() []*Template { return builtinTemplates() }

func builtinByID(id string) (*Template, bool) {
	for _, t := range builtinTemplates() {
		if t.ID == id {
			return t, true
		}
	}
	return nil, false
}
