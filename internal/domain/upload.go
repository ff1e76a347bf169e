package domain

import "time"

// PlanImageUpload describes where a trainer should PUT a plan cover image.
// The actual file resides in object storage under ObjectKey.
type PlanImageUpload struct {
	ObjectKey string    `json:"objectKey"`
	UploadURL string    `json:"uploadUrl"`
	ExpiresAt time.Time `json:"expiresAt"`
}
