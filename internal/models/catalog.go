package models

// CatalogVariant selects one of the admin-authored assessment catalogs.
type CatalogVariant string

const (
	PrePreparedAssessments              CatalogVariant = "pre-prepared-assessments"
	PrePreparedInitialAssessments       CatalogVariant = "pre-prepared-initial-assessments"
	KBDevelopmentApplicationAssessments CatalogVariant = "kb-development-application-assessments"
)

// CatalogVariants lists every catalog.
var CatalogVariants = []CatalogVariant{
	PrePreparedAssessments,
	PrePreparedInitialAssessments,
	KBDevelopmentApplicationAssessments,
}

// ParseCatalogVariant validates a catalog path segment.
func ParseCatalogVariant(s string) (CatalogVariant, bool) {
	for _, v := range CatalogVariants {
		if string(v) == s {
			return v, true
		}
	}
	return "", false
}

// CatalogAssessment is an admin-authored, reusable assessment document.
type CatalogAssessment struct {
	ID        string         `json:"id"`
	Variant   CatalogVariant `json:"variant"`
	Section   string         `json:"section,omitempty"`
	Title     string         `json:"title"`
	Content   string         `json:"content,omitempty"`
	Date      string         `json:"date,omitempty"`
	Author    string         `json:"author,omitempty"`
	File      DocumentRef    `json:"file"`
	CreatedAt string         `json:"createdAt"`
}

// PurchasedAssessment is a catalog assessment copied by reference into a job.
type PurchasedAssessment struct {
	ID           string         `json:"id"`
	Variant      CatalogVariant `json:"variant,omitempty"`
	Section      string         `json:"section,omitempty"`
	Title        string         `json:"title"`
	Content      string         `json:"content,omitempty"`
	Date         string         `json:"date,omitempty"`
	Author       string         `json:"author,omitempty"`
	PurchaseDate string         `json:"purchaseDate"`
	File         DocumentRef    `json:"file"`
	Status       string         `json:"status"`
}
