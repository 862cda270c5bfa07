package server

// ScreenshotRequest is the payload for POST /screenshot.
type ScreenshotRequest struct {
	URL            string `json:"url" example:"https://example.com"`
	Preset         string `json:"preset,omitempty" example:"phone"`
	Width          int    `json:"width,omitempty" example:"1280"`
	Height         int    `json:"height,omitempty" example:"720"`
	FullPage       bool   `json:"full_page,omitempty" example:"false"`
	Format         string `json:"format,omitempty" example:"base64"`
	OutputPath     string `json:"output_path,omitempty" example:"/tmp/captures/"`
	TimeoutSeconds int    `json:"timeout,omitempty" example:"30"`
}

// ScreenshotResponse is the JSON result of POST /screenshot.
type ScreenshotResponse struct {
	Success bool   `json:"success" example:"true"`
	Image   string `json:"image,omitempty" example:"iVBORw0KGgo..."`
	Path    string `json:"path,omitempty" example:"/tmp/captures/example.com_20250101_120000_ab12cd34.png"`
	Error   string `json:"error,omitempty"`
}

// HealthResponse reports service liveness.
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}

// ErrorResponse is a uniform error payload returned by the API.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"invalid url"`
}
