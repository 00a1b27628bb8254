package response

type Response struct {
	Success       bool        `json:"success"`
	StatusMessage string      `json:"status_message,omitempty"`
	Data          interface{} `json:"data,omitempty"`
}

func Ok(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

func Error(msg string) Response {
	return Response{
		Success:       false,
		StatusMessage: msg,
	}
}
