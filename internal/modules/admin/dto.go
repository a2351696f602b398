package admin

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

type ConfigModel struct {
	MerchantID              string `json:"merchant_id"`
	HashKey                 string `json:"hash_key"`
	AdditionalFee           string `json:"additional_fee" example:"3.50"`
	AdditionalFeePercentage bool   `json:"additional_fee_percentage"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"invalid request"`
}
