package usecase

import "portfolio-backend/internal/domain"

type portfolioUsecase struct {
	portfolio *domain.Portfolio
}

func NewPortfolioUsecase() domain.PortfolioUsecase {
	return &portfolioUsecase{portfolio: defaultPortfolio()}
}

func (uc *portfolioUsecase) GetPortfolio() *domain.Portfolio {
	return uc.portfolio
}

func defaultPortfolio() *domain.Portfolio {
	return &domain.Portfolio{
		Owner:    "Suraj",
		Handle:   "iamsnyg",
		Headline: "Fresher Full Stack & Cloud Developer",
		Tagline:  "Building modern web applications and learning cloud infrastructure. Passionate about clean code, open source, and continuous learning.",
		About: []string{
			"I'm a passionate fresher developer eager to launch my career in full-stack development and cloud technologies. I have a solid foundation in modern web development with hands-on experience through internships and personal projects.",
			"I'm actively learning and growing my expertise in React, Node.js, and cloud platforms. I love solving problems, building cool applications, and continuously expanding my technical skillset.",
		},
		Stats: []domain.Stat{
			{Value: 8, Label: "Projects Built"},
			{Value: 4, Label: "Internships"},
		},
		Skills: []domain.Skill{
			{Name: "React", Level: 95},
			{Name: "Next.js", Level: 90},
			{Name: "Node.js", Level: 88},
			{Name: "Docker", Level: 85},
			{Name: "Kubernetes", Level: 82},
			{Name: "TypeScript", Level: 92},
			{Name: "AWS", Level: 80},
			{Name: "PostgreSQL", Level: 87},
		},
		Projects: []domain.Project{
			{
				ID:          1,
				Title:       "E-Commerce Platform",
				Description: "Built during internship: Full-stack e-commerce application with product listings, shopping cart, and payment integration using Stripe.",
				Tech:        []string{"React", "Node.js", "MongoDB"},
			},
			{
				ID:          2,
				Title:       "Task Management App",
				Description: "Learning project: Built a collaborative task management application with real-time updates, user authentication, and a clean UI.",
				Tech:        []string{"Next.js", "Firebase", "Tailwind CSS", "REST API"},
			},
			{
				ID:          3,
				Title:       "Real-Time Chat Application",
				Description: "Developed a chat application demonstrating WebSocket integration, user authentication, and real-time message delivery.",
				Tech:        []string{"Next.js", "Node.js", "PostgreSQL"},
			},
			{
				ID:          4,
				Title:       "Weather Dashboard",
				Description: "Academic project integrating OpenWeather API to display real-time weather data with responsive design and location search.",
				Tech:        []string{"React", "API Integration", "Tailwind CSS", "Geolocation"},
			},
		},
		Experience: []domain.Experience{
			{
				Period:      "2024 - Present",
				Company:     "Tech Startup XYZ",
				Position:    "Frontend Development Intern",
				Description: "Building responsive web interfaces with React. Learning modern web development practices and collaborating with senior developers.",
			},
			{
				Period:      "2024 Summer",
				Company:     "Cloud Solutions Ltd",
				Position:    "Backend Development Intern",
				Description: "Developed REST APIs with Node.js and worked with databases. Contributed to backend features and learned deployment practices.",
			},
			{
				Period:      "2023 - 2024",
				Company:     "Self-Directed Learning",
				Position:    "Developer in Training",
				Description: "Built personal projects to master full-stack development. Completed online courses and developed a strong foundation in web technologies.",
			},
		},
		TechStack: []domain.TechCategory{
			{Title: "Frontend", Description: "Building responsive and interactive UIs", Items: []string{"React", "Next.js", "TypeScript", "Tailwind CSS", "Redux"}},
			{Title: "Backend", Description: "Scalable server-side development", Items: []string{"Node.js", "Express", "MongoDB", "PostgreSQL", "Python", "REST APIs"}},
			{Title: "Cloud & DevOps", Description: "Infrastructure and deployment", Items: []string{"Docker", "Kubernetes", "AWS", "GitHub Actions", "Linux", "Terraform"}},
			{Title: "Databases", Description: "Data storage and management", Items: []string{"MongoDB", "PostgreSQL", "MySQL"}},
			{Title: "Tools", Description: "Development productivity tools", Items: []string{"Git", "VS Code", "Postman"}},
			{Title: "Other Skills", Description: "Additional technical expertise", Items: []string{"Testing", "CI/CD", "API Design"}},
		},
		ContactIntro: "I'm always interested in hearing about new projects and opportunities. Feel free to reach out through any of these channels.",
		Channels: []domain.ContactChannel{
			{Label: "Email", Value: "sunnygupta6497@gmail.com", Href: "mailto:sunnygupta6497@gmail.com"},
			{Label: "LinkedIn", Value: "www.linkedin.com/in/sunny-gupta-5691ab249", Href: "https://www.linkedin.com/in/sunny-gupta-5691ab249/"},
			{Label: "GitHub", Value: "iamsnyg", Href: "https://github.com/iamsnyg"},
		},
	}
}
