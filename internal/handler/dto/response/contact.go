package response

type ContactResponse struct {
	Message string `json:"message"`
}
