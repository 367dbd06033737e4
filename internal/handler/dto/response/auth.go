package response

type LoginResponse struct {
	AccessToken string `json:"access_token"`
}

type MeResponse struct {
	Subject string `json:"subject"`
}
