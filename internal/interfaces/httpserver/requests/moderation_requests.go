package requests

// ModerateRequest is the payload for content moderation.
type ModerateRequest struct {
	Content     string `json:"content" binding:"required,min=1,max=10000"`
	ContentType string `json:"content_type" binding:"required"`
	ContentID   string `json:"content_id"`
	AuthorID    string `json:"author_id"`
}
