package apartment

import "time"

// Apartment is a rentable unit listing.
type Apartment struct {
	ID          string    `json:"_id"`
	ApartmentNo string    `json:"apartmentNo"`
	BlockName   string    `json:"blockName"`
	FloorNo     int       `json:"floorNo"`
	Rent        int64     `json:"rent"`
	Image       string    `json:"image"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Filter narrows a listing query to a rent range plus a page window.
type Filter struct {
	MinRent int64
	MaxRent int64
	Page    int
	Limit   int
}
