// Package content holds the static records rendered by the portfolio page.
// Every accessor returns a fresh copy; the tables themselves never change.
package content

// Status is the display label on a project card.
type Status string

const (
	StatusLive        Status = "Live"
	StatusDevelopment Status = "Development"
	StatusCompleted   Status = "Completed"
)

// BadgeClass returns the pill classes for a project status.
func (s Status) BadgeClass() string {
	switch s {
	case StatusLive:
		return "bg-green-100 text-green-700"
	case StatusDevelopment:
		return "bg-blue-100 text-blue-700"
	default:
		return "bg-purple-100 text-purple-700"
	}
}

// Icon names a glyph from the embedded icon set.
type Icon string

const (
	IconDatabase     Icon = "database"
	IconServer       Icon = "server"
	IconCloud        Icon = "cloud"
	IconShield       Icon = "shield"
	IconShoppingCart Icon = "shopping-cart"
	IconStethoscope  Icon = "stethoscope"
	IconGraduation   Icon = "graduation-cap"
	IconTerminal     Icon = "terminal"
	IconMail         Icon = "mail"
	IconGithub       Icon = "github"
	IconLinkedin     Icon = "linkedin"
	IconArrowRight   Icon = "arrow-right"
	IconStar         Icon = "star"
	IconMoon         Icon = "moon"
	IconSun          Icon = "sun"
)

// Service is one card in the "What I Do" section.
type Service struct {
	Icon        Icon
	Title       string
	Description string
}

// Project is one card in the projects section.
type Project struct {
	Title       string
	Description string
	Tech        []string
	Status      Status
	Icon        Icon
	Features    []string
}

// Skill is a named proficiency shown as a progress bar.
type Skill struct {
	Name  string
	Level int
}

// Width is the progress-bar width in percent, clamped to [0,100].
func (s Skill) Width() int {
	switch {
	case s.Level < 0:
		return 0
	case s.Level > 100:
		return 100
	}
	return s.Level
}

// NavItem is a visible navigation link targeting a section id.
type NavItem struct {
	Name string
	ID   string
}

// Section identifiers, in page order.
const (
	SectionHome      = "home"
	SectionAbout     = "about"
	SectionServices  = "services"
	SectionPortfolio = "portfolio"
	SectionContact   = "contact"
)

var sections = [...]string{
	SectionHome,
	SectionAbout,
	SectionServices,
	SectionPortfolio,
	SectionContact,
}

var navItems = [...]NavItem{
	{Name: "About me", ID: SectionAbout},
	{Name: "Services", ID: SectionServices},
	{Name: "Projects", ID: SectionPortfolio},
	{Name: "Contact", ID: SectionContact},
}

var services = [...]Service{
	{
		Icon:        IconDatabase,
		Title:       "Database Design",
		Description: "Designing efficient database schemas and optimizing queries for better performance.",
	},
	{
		Icon:        IconServer,
		Title:       "API Development",
		Description: "Building RESTful APIs with proper authentication and comprehensive documentation.",
	},
	{
		Icon:        IconCloud,
		Title:       "Cloud Deployment",
		Description: "Deploying applications on cloud platforms with scalable architecture.",
	},
	{
		Icon:        IconShield,
		Title:       "Security Implementation",
		Description: "Implementing secure authentication systems and data protection measures.",
	},
}

var projects = [...]Project{
	{
		Title:       "Hamro Dokan",
		Description: "A comprehensive e-commerce platform for local businesses with inventory management, order processing, and payment integration.",
		Tech:        []string{"Node.js", "Express", "MongoDB", "JWT"},
		Status:      StatusLive,
		Icon:        IconShoppingCart,
		Features:    []string{"User Authentication", "Product Management", "Order Tracking", "Payment Gateway"},
	},
	{
		Title:       "Mero Doctor",
		Description: "Healthcare management system connecting patients with doctors, featuring appointment booking and medical record management.",
		Tech:        []string{"Node.js", "Express", "PostgreSQL", "JWT"},
		Status:      StatusCompleted,
		Icon:        IconStethoscope,
		Features:    []string{"Appointment Booking", "Medical Records", "Doctor Profiles", "Patient Dashboard"},
	},
	{
		Title:       "Student Portal",
		Description: "University student management system with course enrollment, grade tracking, and academic calendar integration.",
		Tech:        []string{"Python", "Django", "Postgresql", "React"},
		Status:      StatusCompleted,
		Icon:        IconGraduation,
		Features:    []string{"Course Management", "Grade Tracking", "Academic Calendar", "Student Dashboard"},
	},
}

var skills = [...]Skill{
	{Name: "Node.js & Express", Level: 70},
	{Name: "Python & Django", Level: 60},
	{Name: "Database Design", Level: 55},
	{Name: "API Development", Level: 60},
	{Name: "Cloud Platforms", Level: 30},
}

// Sections returns the tracked section ids in page order.
func Sections() []string {
	return append([]string(nil), sections[:]...)
}

// NavItems returns the visible navigation links.
func NavItems() []NavItem {
	return append([]NavItem(nil), navItems[:]...)
}

// Services returns the service cards in display order.
func Services() []Service {
	return append([]Service(nil), services[:]...)
}

// Projects returns the project cards in display order. Nested slices are
// copied as well.
func Projects() []Project {
	out := make([]Project, len(projects))
	for i, p := range projects {
		p.Tech = append([]string(nil), p.Tech...)
		p.Features = append([]string(nil), p.Features...)
		out[i] = p
	}
	return out
}

// Skills returns the skill bars in display order.
func Skills() []Skill {
	return append([]Skill(nil), skills[:]...)
}
