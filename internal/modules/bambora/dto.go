package bambora

type FeeResponse struct {
	AdditionalFee string `json:"additional_fee" example:"3.50"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"invalid request"`
}
