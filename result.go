package mdscrape

// Result is the outcome of one scrape as reported to callers. On success
// Title, Markdown, and URL are set; on failure only Message is.
type Result struct {
	Success  bool   `json:"success"`
	Title    string `json:"title,omitempty"`
	Markdown string `json:"markdown,omitempty"`
	URL      string `json:"url,omitempty"`
	Message  string `json:"message,omitempty"`
}

// NewResult converts the outcome of a scrape into a Result.
// Any error produces a failure result carrying the error's message.
func NewResult(article *Article, err error) *Result {
	if err != nil {
		return &Result{Success: false, Message: ErrorMessage(err)}
	}
	if article == nil {
		return &Result{Success: false, Message: ExtractionFailedMessage}
	}
	return &Result{
		Success:  true,
		Title:    article.Title,
		Markdown: article.Markdown,
		URL:      article.SourceURL,
	}
}
