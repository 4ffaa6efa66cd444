package add_occupied_date

// AddOccupiedDateRequest HTTP request model
type AddOccupiedDateRequest struct {
	Date string `json:"date"` // "2025-12-25"
}
