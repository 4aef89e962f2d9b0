package works

// ---------- requests

type CreateProjectRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	GithubLink   string   `json:"github_link"`
	LiveLink     string   `json:"live_link"`
	Image        *string  `json:"image"`
	ImageWidth   string   `json:"image_width"`
	ImageHeight  string   `json:"image_height"`
}

type UpdateProjectRequest struct {
	Title        *string   `json:"title"`
	Description  *string   `json:"description"`
	Technologies *[]string `json:"technologies"`
	GithubLink   *string   `json:"github_link"`
	LiveLink     *string   `json:"live_link"`
	Image        *string   `json:"image"`
	ImageWidth   *string   `json:"image_width"`
	ImageHeight  *string   `json:"image_height"`
}

type ReorderProjectsRequest struct {
	ProjectIDs []string `json:"project_ids" binding:"required"` // ordered list
}

type CreateCertificateRequest struct {
	Title       string  `json:"title" binding:"required"`
	Issuer      string  `json:"issuer"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Link        string  `json:"link"`
	Image       *string `json:"image"`
}

type UpdateCertificateRequest struct {
	Title       *string `json:"title"`
	Issuer      *string `json:"issuer"`
	Date        *string `json:"date"`
	Description *string `json:"description"`
	Link        *string `json:"link"`
	Image       *string `json:"image"`
}
