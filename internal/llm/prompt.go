package llm

import "strings"

// Reserved request keys. They select the template and the model and are
// never substituted into the prompt.
const (
	TemplateKey = "contentType"
	ModelKey    = "aiModel"
)

// Field is one user-supplied form value.
type Field struct {
	Key   string
	Value string
}

// Fields is the ordered set of values from a generation request. Order is
// the order each key first appeared in the request body; keys are unique.
type Fields []Field

// Set stores value under key. A key already present keeps its position and
// takes the new value, so the last occurrence in a body wins.
func (f *Fields) Set(key, value string) {
	for i := range *f {
		if (*f)[i].Key == key {
			(*f)[i].Value = value
			return
		}
	}
	*f = append(*f, Field{Key: key, Value: value})
}

// Get returns the value stored under key.
func (f Fields) Get(key string) (string, bool) {
	for _, field := range f {
		if field.Key == key {
			return field.Value, true
		}
	}
	return "", false
}

// Substitute replaces every literal {key} in prompt with the field's value,
// one field at a time in request order. Placeholders without a field and
// fields without a placeholder are left alone.
func Substitute(prompt string, fields Fields) string {
	for _, f := range fields {
		if f.Key == TemplateKey || f.Key == ModelKey {
			continue
		}
		placeholder := "{" + f.Key + "}"
		if strings.Contains(prompt, placeholder) {
			prompt = strings.ReplaceAll(prompt, placeholder, f.Value)
		}
	}
	return prompt
}
