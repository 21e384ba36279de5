package models

// ProductPrompts is the long-form product template family: a static follow-up
// block plus the main article template.
type ProductPrompts struct {
	StaticPrompt       string `json:"staticPrompt"`
	MainPromptTemplate string `json:"mainPromptTemplate"`
}

// CategoryPrompts is the category-page template family.
type CategoryPrompts struct {
	CategoryPrompt1 string `json:"categoryPrompt1"`
	CategoryPrompt2 string `json:"categoryPrompt2"`
}
