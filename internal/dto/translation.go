package dto

// TranslationQuery defines query parameters for resolving a UI text key.
type TranslationQuery struct {
	Key  string `form:"key" binding:"required,max=200"`
	Lang string `form:"lang,default=hi" binding:"max=8"`
}

// TranslationResponse carries the resolved text.
type TranslationResponse struct {
	Key  string `json:"key"`
	Lang string `json:"lang"`
	Text string `json:"text"`
}
