package models

type ApiResponse struct {
	Success   bool        `json:"success"`
	Message   string      `json:"message,omitempty"`
	Data      interface{} `json:"data,omitempty"`
	Error     string      `json:"error,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
	Page      int64       `json:"page,omitempty"`
	Limit     int64       `json:"limit,omitempty"`
	Total     *int64      `json:"total,omitempty"`
}

func SuccessResponse(data interface{}, message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Message: message,
	}
}

func MessageResponse(message string) ApiResponse {
	return ApiResponse{
		Success: true,
		Message: message,
	}
}

func ErrorResponse(err string) ApiResponse {
	return ApiResponse{
		Success: false,
		Error:   err,
	}
}

// PaginatedResponse derives the page number from a skip/limit window.
func PaginatedResponse(data interface{}, skip, limit, total int64) ApiResponse {
	return ApiResponse{
		Success: true,
		Data:    data,
		Page:    skip/limit + 1,
		Limit:   limit,
		Total:   &total,
	}
}
