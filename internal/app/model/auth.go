package model

type TokenRequest struct {
	CustomerID string `json:"customerId"`
}

type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn string `json:"expiresIn"`
}

type CustomerIDResponse struct {
	CustomerID string `json:"customerId"`
}
