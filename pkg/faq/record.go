package faq

// Record is one FAQ entry as served by the marketplace FAQ API.
// Records are immutable once fetched; the accessor owns their lifetime.
type Record struct {
	Question string   `json:"question"`
	Answer   string   `json:"answer"`
	Keywords []string `json:"keywords"`
	Tags     []string `json:"tags"`
	IsActive *bool    `json:"isActive,omitempty"`
}

func (r Record) active() bool {
	return r.IsActive == nil || *r.IsActive
}
