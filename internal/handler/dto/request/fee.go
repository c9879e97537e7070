package request

type CreateFeeRequest struct {
	Type        string `json:"type" binding:"required"`
	Description string `json:"description" binding:"required"`
	Amount      string `json:"amount" binding:"required"`
	Frequency   string `json:"frequency" binding:"required"`
}

type UpdateFeeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
