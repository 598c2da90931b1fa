package content

// Stat is a headline number in the about section.
type Stat struct {
	Value string
	Label string
}

// FocusItem is a line in the hero "Current Focus" card.
type FocusItem struct {
	Icon  Icon
	Label string
}

// Contact holds the identifiers shown in the contact section. They are
// rendered as plain text, not links.
type Contact struct {
	Email    string
	GitHub   string
	LinkedIn string
}

// Profile is everything about the page owner that is not a card list.
type Profile struct {
	Brand    string
	Name     string
	Role     string
	Studying string
	Intro    string
	// Bio paragraphs are markdown.
	Bio       []string
	Stats     []Stat
	Focus     []FocusItem
	Image     string
	ImageAlt  string
	TechChips []string
	Badge     string
	Contact   Contact
	Footer    string
	Available string
}

// DefaultProfile returns the profile the site ships with.
func DefaultProfile() Profile {
	return Profile{
		Brand:    "Backend Dev",
		Name:     "Saugat Giri",
		Role:     "Backend Developer",
		Studying: "Electronic and Communication Engineering Student passionate about backend development and building scalable applications.",
		Intro: "I am a Electronic and Communication Engineering student with a passion for backend development. " +
			"Currently working on various projects while pursuing my degree, focusing on building " +
			"robust server-side applications and learning new technologies.",
		Bio: []string{
			"I'm a dedicated Electronic and Communication Engineering student with a strong passion for backend development. " +
				"While pursuing my degree, I actively work on real-world projects that solve practical problems " +
				"and help me apply theoretical knowledge in meaningful ways.",
			"My journey in backend development started with curiosity about how applications work behind " +
				"the scenes. Now, I focus on building scalable systems, designing efficient databases, and " +
				"creating APIs that power modern applications.",
		},
		Stats: []Stat{
			{Value: "10+", Label: "Projects Built"},
			{Value: "1+", Label: "Years Learning"},
		},
		Focus: []FocusItem{
			{Icon: IconDatabase, Label: "Database Design & Optimization"},
			{Icon: IconServer, Label: "RESTful API Development"},
			{Icon: IconCloud, Label: "Cloud Technologies"},
		},
		Image:     "/public/profile.png",
		ImageAlt:  "Backend Developer - Saugat Giri",
		TechChips: []string{"Node.js", "MongoDB", "Python"},
		Badge:     "BACKEND DEVELOPER • BACKEND DEVELOPER • ",
		Contact: Contact{
			Email:    "saugatgiri1070@gmail.com",
			GitHub:   "https://github.com/saugat1070",
			LinkedIn: "linkedin.com/in/saugat1070",
		},
		Footer:    "© 2025 Saugat Giri -  Backend Developer. Always Ready for great Ideas",
		Available: "Open to opportunities",
	}
}
