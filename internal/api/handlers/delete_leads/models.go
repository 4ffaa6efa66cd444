package delete_leads

// DeleteLeadsRequest HTTP request model
type DeleteLeadsRequest struct {
	IDs []int64 `json:"ids"`
}

// DeleteLeadsResponse HTTP response model
// Deleted может быть меньше числа запрошенных ID: отсутствующие
// записи не считаются ошибкой
type DeleteLeadsResponse struct {
	Deleted int64 `json:"deleted"`
}
