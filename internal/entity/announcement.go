package entity

type Announcement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Body        string `json:"body,omitempty"`
	Category    string `json:"category,omitempty"`
	Priority    string `json:"priority,omitempty"`
	PublishedAt string `json:"published_at,omitempty"`
}

type QuickAccessItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Link        string `json:"link,omitempty"`
	Category    string `json:"category,omitempty"`
}
