package response

type OKResponse struct {
	OK bool `json:"ok"`
}

type CreatedResponse struct {
	OK bool   `json:"ok"`
	ID string `json:"id"`
}

func OK() OKResponse {
	return OKResponse{OK: true}
}

func Created(id string) CreatedResponse {
	return CreatedResponse{OK: true, ID: id}
}
