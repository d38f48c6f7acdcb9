package domain

type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

type Project struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tech        []string `json:"tech"`
}

type Experience struct {
	Period      string `json:"period"`
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description"`
}

type TechCategory struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Items       []string `json:"items"`
}

type Stat struct {
	Value int    `json:"value"`
	Label string `json:"label"`
}

type ContactChannel struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Href  string `json:"href"`
}

// Portfolio is everything the landing page renders
type Portfolio struct {
	Owner        string           `json:"owner"`
	Handle       string           `json:"handle"`
	Headline     string           `json:"headline"`
	Tagline      string           `json:"tagline"`
	About        []string         `json:"about"`
	Stats        []Stat           `json:"stats"`
	Skills       []Skill          `json:"skills"`
	Projects     []Project        `json:"projects"`
	Experience   []Experience     `json:"experience"`
	TechStack    []TechCategory   `json:"tech_stack"`
	ContactIntro string           `json:"contact_intro"`
	Channels     []ContactChannel `json:"channels"`
}

// PortfolioUsecase serves the landing page content
type PortfolioUsecase interface {
	GetPortfolio() *Portfolio
}
