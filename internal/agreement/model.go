package agreement

import "time"

// Agreement statuses. New applications start pending until an admin reviews them.
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// Agreement is a rental application, logically keyed by the applicant's email.
type Agreement struct {
	ID          string    `json:"_id"`
	UserName    string    `json:"userName"`
	UserEmail   string    `json:"userEmail"`
	ApartmentNo string    `json:"apartmentNo"`
	BlockName   string    `json:"blockName"`
	FloorNo     int       `json:"floorNo"`
	Rent        int64     `json:"rent"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}
