package dto

// MPGRequest is the POST /get-mpg body.
type MPGRequest struct {
	Year  string `json:"year" validate:"required"`
	Make  string `json:"make" validate:"required"`
	Model string `json:"model" validate:"required"`
}

type MPGResponse struct {
	MPG float64 `json:"mpg"`
}

type YearsResponse struct {
	Years []int `json:"years"`
}

type MakesResponse struct {
	Makes []string `json:"makes"`
}

type ModelsResponse struct {
	Models []string `json:"models"`
}
