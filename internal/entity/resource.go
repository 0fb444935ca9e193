package entity

// ResourceType is one of the seven fixed content categories in the library.
type ResourceType string

const (
	TypeForms      ResourceType = "Forms"
	TypeProtocols  ResourceType = "Protocols"
	TypeTraining   ResourceType = "Training Materials"
	TypeHandouts   ResourceType = "Patient Handouts"
	TypeBilling    ResourceType = "Billing & Coding"
	TypeGuidelines ResourceType = "Clinical Guidelines"
	TypeAdditional ResourceType = "Additional Resources"
)

// ResourceTypes lists every known category in display order.
func ResourceTypes() []ResourceType {
	return []ResourceType{
		TypeForms,
		TypeProtocols,
		TypeTraining,
		TypeHandouts,
		TypeBilling,
		TypeGuidelines,
		TypeAdditional,
	}
}

// Valid reports whether t is one of the known categories.
func (t ResourceType) Valid() bool {
	for _, known := range ResourceTypes() {
		if t == known {
			return true
		}
	}
	return false
}

type ResourceItem struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	Program       string       `json:"program"`
	Type          ResourceType `json:"type"`
	Category      string       `json:"category,omitempty"`
	Tags          []string     `json:"tags,omitempty"`
	FileURL       string       `json:"file_url,omitempty"`
	SizeMB        float64      `json:"size_mb,omitempty"`
	LastUpdated   string       `json:"last_updated,omitempty"`
	DownloadCount int          `json:"download_count"`
	Bookmarked    bool         `json:"bookmarked"`
}
