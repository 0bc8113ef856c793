package experience

// Sample returns the demo profile the app starts with.
func Sample() *Profile {
	return New(Snapshot{
		Work: []Work{
			{
				ID:          1,
				Role:        "Senior Product Manager",
				Company:     "TechCorp International",
				Location:    "San Francisco, CA",
				Period:      "2020 - Present",
				Description: "Leading cross-functional teams to develop and execute product strategy for enterprise SaaS platform. Managed product roadmap resulting in 35% revenue growth and 25% improvement in user engagement metrics.",
				Achievements: []string{
					"Led redesign of core platform features, increasing user retention by 22%",
					"Implemented agile methodologies, reducing time-to-market by 40%",
					"Secured $2.5M in additional engineering resources through data-driven proposals",
				},
			},
			{
				ID:          2,
				Role:        "Product Manager",
				Company:     "InnovateSoft",
				Location:    "Boston, MA",
				Period:      "2017 - 2020",
				Description: "Managed full product lifecycle for analytics suite serving 200+ enterprise clients. Collaborated with engineering, design, and sales teams to drive product development and go-to-market strategy.",
				Achievements: []string{
					"Launched 3 major product features that generated $1.2M in incremental revenue",
					"Reduced customer churn by 15% through implementation of early warning system",
					"Established customer feedback program now used company-wide",
				},
			},
			{
				ID:          3,
				Role:        "Associate Product Manager",
				Company:     "DataViz Solutions",
				Location:    "New York, NY",
				Period:      "2015 - 2017",
				Description: "Supported senior product managers in feature development for data visualization platform. Conducted market research, user interviews, and competitive analysis to inform product decisions.",
				Achievements: []string{
					"Created user personas and journey maps now used across product teams",
					"Developed analytics dashboard used by C-suite for strategic planning",
					"Optimized onboarding flow, increasing activation rate by 28%",
				},
			},
		},
		Education: []Education{
			{
				ID:          1,
				Degree:      "MBA, Technology Management",
				Institution: "Stanford University",
				Location:    "Stanford, CA",
				Period:      "2015 - 2017",
				Description: "Focused on product management, technology strategy, and entrepreneurship. Graduated with honors (3.8 GPA).",
				Achievements: []string{
					"Led winning team in annual product innovation competition",
					"Published research paper on AI applications in product management",
					"Served as president of Product Management Club",
				},
			},
			{
				ID:          2,
				Degree:      "BS, Computer Science",
				Institution: "University of California, Berkeley",
				Location:    "Berkeley, CA",
				Period:      "2011 - 2015",
				Description: "Specialized in human-computer interaction and software engineering. Minor in Business Administration.",
				Achievements: []string{
					"Dean's List for 6 consecutive semesters",
					"Developed mobile app for campus navigation used by 5,000+ students",
					"Teaching assistant for intro to programming courses",
				},
			},
		},
		Skills: []SkillGroup{
			{Category: "Technical", Items: []string{"SQL", "Python", "Data Analysis", "A/B Testing", "API Design", "Product Analytics", "Tableau", "Figma"}},
			{Category: "Business", Items: []string{"Market Research", "Strategic Planning", "Competitive Analysis", "Revenue Modeling", "Pricing Strategy", "Go-to-Market Planning"}},
			{Category: "Leadership", Items: []string{"Cross-functional Team Leadership", "Stakeholder Management", "Agile/Scrum", "Mentoring", "Roadmap Development", "User Interviews"}},
		},
		Certifications: []Certification{
			{ID: 1, Name: "Certified Scrum Product Owner (CSPO)", Issuer: "Scrum Alliance", Date: "May 2022"},
			{ID: 2, Name: "Product Analytics Certification", Issuer: "Product School", Date: "January 2023"},
			{ID: 3, Name: "Strategic Leadership Program", Issuer: "Harvard Business School Online", Date: "September 2021"},
		},
	})
}
