package content

var (
	HeroCode = "const developer = {\n  name: 'Eisa Chaudhary',\n  role: 'Full Stack Developer',\n  skills: ['React', 'TypeScript', 'Node.js', 'Python'],\n  passion: 'Building exceptional digital experiences',\n  focus: 'Creating intuitive, high-performance applications'\n};\n\nconsole.log('Hello World! Welcome to my portfolio.');"

	AboutMe = `I'm a passionate developer with 5+ years of experience in creating
web applications. My journey in tech started with a curiosity about
how things work on the web, which evolved into a career building
digital solutions that make a difference.`

	Journey = `With a background in computer science and a passion for
continuous learning, I've worked on projects ranging from small
business websites to complex enterprise applications. I believe
in writing **clean, maintainable code** and creating intuitive user
experiences.`

	Learning = `I'm constantly expanding my skill set and staying up-to-date with
the latest technologies. Currently exploring: *AI/ML integration*,
*Web3 technologies*, and *advanced animation techniques*.`
)

// Default returns the content shipped with the site.
func Default() *Portfolio {
	return &Portfolio{
		Profile: Profile{
			Name:        "Eisa Chaudhary",
			Brand:       "Eisa-Portfolio",
			Tagline:     "Building exceptional digital experiences.",
			ResumeURL:   "/resume.txt",
			Email:       "contact@example.com",
			GitHubURL:   "https://github.com",
			LinkedInURL: "https://linkedin.com",
			Avatar:      "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=500&q=80",
			JourneyImg:  "https://images.unsplash.com/photo-1498050108023-c5249f4df085?w=600&q=80",
			HeroCode:    HeroCode,
			About:       AboutMe,
			Journey:     Journey,
			FreeTime: []string{
				"exploring new technologies",
				"contributing to open-source",
				"enjoying outdoor activities",
			},
			Learning: Learning,
		},
		Nav: []NavItem{
			{Label: "About", Href: "#about"},
			{Label: "Experience", Href: "#experience"},
			{Label: "Skills", Href: "#skills"},
			{Label: "Projects", Href: "#projects"},
			{Label: "Contact", Href: "#contact"},
		},
		Features: []Feature{
			{
				Icon:        "code",
				Title:       "Web Development",
				Description: "Building responsive and performant web applications using modern frameworks and technologies.",
			},
			{
				Icon:        "laptop",
				Title:       "UI/UX Design",
				Description: "Creating intuitive and visually appealing user interfaces with a focus on user experience.",
			},
			{
				Icon:        "lightbulb",
				Title:       "Problem Solving",
				Description: "Analyzing complex problems and developing efficient solutions with clean, maintainable code.",
			},
			{
				Icon:        "users",
				Title:       "Collaboration",
				Description: "Working effectively in teams, communicating ideas clearly, and adapting to changing requirements.",
			},
		},
		Experiences: []Experience{
			{
				ID:       "exp1",
				Company:  "Communities in School - South Carolina",
				Position: "Full Stack Web Developer Intern",
				Period:   "May 2024 – Aug 2024",
				Description: []string{
					"Built a fully functional website using the MERN stack for dynamic content management.",
					"Designed and deployed a secure RESTful API and deployed the app using AWS Console (EC2, S3, Route53).",
					"Gained hands-on experience with manual server configuration and deployment processes.",
				},
				Technologies: []string{"MongoDB", "Express", "React", "Node.js", "AWS", "REST APIs"},
				Logo:         "https://api.dicebear.com/7.x/identicon/svg?seed=cis-intern",
			},
			{
				ID:       "exp2",
				Company:  "USCB IT Help Desk",
				Position: "Student Technician",
				Period:   "Feb 2024 – Present",
				Description: []string{
					"Resolved technical support tickets for faculty and staff across university departments.",
					"Configured phone systems and managed technical onboarding for new users.",
					"Contributed to network troubleshooting and improved IT workflow documentation.",
				},
				Technologies: []string{"Windows", "VoIP Systems", "Help Desk", "IT Support"},
				Logo:         "https://api.dicebear.com/7.x/identicon/svg?seed=uscb-helpdesk",
			},
			{
				ID:       "exp3",
				Company:  "Sahu Technologies",
				Position: "Web Design & Testing Intern",
				Period:   "Aug 2021 – Sep 2021",
				Description: []string{
					"Planned and completed a client-facing website within 6 weeks using HTML & CSS.",
					"Converted legacy documents to clean, standards-compliant HTML.",
					"Delivered high-quality output with timely client communication.",
				},
				Technologies: []string{"HTML", "CSS", "Client Coordination"},
				Logo:         "https://api.dicebear.com/7.x/identicon/svg?seed=sahu-tech",
			},
		},
		Skills: []SkillCategory{
			{
				ID:   "frontend",
				Name: "Frontend",
				Skills: []Skill{
					{Name: "React", Level: 95},
					{Name: "TypeScript", Level: 90},
					{Name: "HTML/CSS", Level: 95},
					{Name: "Tailwind CSS", Level: 90},
					{Name: "Next.js", Level: 85},
					{Name: "Vue.js", Level: 75},
				},
			},
			{
				ID:   "backend",
				Name: "Backend",
				Skills: []Skill{
					{Name: "Node.js", Level: 85},
					{Name: "Express", Level: 80},
					{Name: "Python", Level: 70},
					{Name: "Django", Level: 65},
					{Name: "GraphQL", Level: 75},
					{Name: "REST APIs", Level: 90},
				},
			},
			{
				ID:   "tools",
				Name: "Tools & Others",
				Skills: []Skill{
					{Name: "Git", Level: 90},
					{Name: "Docker", Level: 75},
					{Name: "CI/CD", Level: 80},
					{Name: "Jest", Level: 85},
					{Name: "Figma", Level: 70},
					{Name: "AWS", Level: 65},
				},
			},
		},
		Projects: []Project{
			{
				ID:              "project1",
				Title:           "E-commerce Platform",
				Description:     "A modern e-commerce platform with advanced filtering and payment integration.",
				LongDescription: "A comprehensive e-commerce solution built with React and Node.js. Features include product filtering, user authentication, shopping cart functionality, payment processing with Stripe, and an admin dashboard for inventory management. The application uses MongoDB for data storage and Redux for state management.",
				Image:           "https://images.unsplash.com/photo-1557821552-17105176677c?w=800&q=80",
				Technologies:    []string{"React", "Node.js", "MongoDB", "Express", "Redux", "Stripe"},
				LiveURL:         "https://example.com",
				GitHubURL:       "https://github.com",
				Featured:        true,
			},
			{
				ID:              "project2",
				Title:           "Task Management App",
				Description:     "A collaborative task management application with real-time updates.",
				LongDescription: "A productivity tool designed for teams to manage tasks efficiently. Built with Vue.js and Firebase, it offers real-time updates, task assignment, due date tracking, and progress monitoring. The app includes notification systems and integrates with popular calendar applications.",
				Image:           "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?w=800&q=80",
				Technologies:    []string{"Vue.js", "Firebase", "Vuex", "Tailwind CSS"},
				LiveURL:         "https://example.com",
				GitHubURL:       "https://github.com",
				Featured:        true,
			},
			{
				ID:              "project3",
				Title:           "Fitness Tracker",
				Description:     "A mobile-first web application for tracking workouts and nutrition.",
				LongDescription: "A comprehensive fitness solution that helps users track their workouts, nutrition, and progress over time. Built with React Native for cross-platform compatibility, it features custom workout creation, nutrition logging, progress charts, and social sharing capabilities.",
				Image:           "https://images.unsplash.com/photo-1517836357463-d25dfeac3438?w=800&q=80",
				Technologies:    []string{"React Native", "GraphQL", "Node.js", "MongoDB"},
				GitHubURL:       "https://github.com",
			},
			{
				ID:              "project4",
				Title:           "Weather Dashboard",
				Description:     "An interactive weather dashboard with location-based forecasts.",
				LongDescription: "A weather application that provides detailed forecasts based on user location. It integrates with multiple weather APIs to ensure accurate data and features interactive maps, hourly and weekly forecasts, severe weather alerts, and customizable units of measurement.",
				Image:           "https://images.unsplash.com/photo-1592210454359-9043f067919b?w=800&q=80",
				Technologies:    []string{"JavaScript", "HTML/CSS", "Weather API", "Leaflet.js"},
				LiveURL:         "https://example.com",
				GitHubURL:       "https://github.com",
			},
			{
				ID:              "project5",
				Title:           "Portfolio Website",
				Description:     "A personal portfolio website showcasing projects and skills.",
				LongDescription: "A server-rendered portfolio website built with Go, Gin and HTMX. Features include smooth scrolling, animated sections, a streamed typewriter hero, contact form integration, and optimized performance metrics.",
				Image:           "https://images.unsplash.com/photo-1517694712202-14dd9538aa97?w=800&q=80",
				Technologies:    []string{"Go", "Gin", "HTMX", "Tailwind CSS"},
				LiveURL:         "https://example.com",
				GitHubURL:       "https://github.com",
			},
			{
				ID:              "project6",
				Title:           "Recipe Finder",
				Description:     "A web application for discovering and saving recipes based on available ingredients.",
				LongDescription: "A culinary companion app that helps users find recipes based on ingredients they already have. Built with Angular and Firebase, it features ingredient-based search, recipe saving, nutritional information, and user reviews. The app also includes a meal planning feature and shopping list generation.",
				Image:           "https://images.unsplash.com/photo-1556911220-bff31c812dba?w=800&q=80",
				Technologies:    []string{"Angular", "Firebase", "RxJS", "Recipe API"},
				LiveURL:         "https://example.com",
			},
		},
	}
}
