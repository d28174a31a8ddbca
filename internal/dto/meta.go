package dto

type ConfigResponseDTO struct {
	SubscribeURL string `json:"subscribeUrl" example:"https://t.me/prizepanda"`
}
