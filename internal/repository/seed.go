package repository

import "github.com/certibot/certibot/internal/domain"

// certificationSeed is the static certification catalog loaded at startup.
var certificationSeed = []domain.Certification{
	{
		Name:        "AWS Certified Solutions Architect - Associate",
		Provider:    "Amazon Web Services",
		Category:    "cloud computing",
		Description: "Most popular cloud certification, excellent for beginners to intermediate level. Validates ability to design distributed applications and systems on AWS.",
		PrepTime:    "3-6 months prep",
		ExamFee:     "$150 exam fee",
		Difficulty:  domain.DifficultyIntermediate,
		Icon:        "fab fa-aws",
		IconColor:   "text-orange-600",
		Tags:        []string{"aws", "cloud", "architecture", "solutions", "associate"},
	},
	{
		Name:        "Microsoft Azure Fundamentals (AZ-900)",
		Provider:    "Microsoft",
		Category:    "cloud computing",
		Description: "Perfect entry point for Microsoft's cloud ecosystem. Covers basic cloud concepts and Azure services.",
		PrepTime:    "1-3 months prep",
		ExamFee:     "$99 exam fee",
		Difficulty:  domain.DifficultyBeginner,
		Icon:        "fab fa-microsoft",
		IconColor:   "text-blue-600",
		Tags:        []string{"azure", "cloud", "fundamentals", "microsoft", "beginner"},
	},
	{
		Name:        "Google Cloud Professional Cloud Architect",
		Provider:    "Google Cloud",
		Category:    "cloud computing",
		Description: "Growing in popularity, especially for data and ML workloads. Validates ability to design and manage Google Cloud solutions.",
		PrepTime:    "4-8 months prep",
		ExamFee:     "$200 exam fee",
		Difficulty:  domain.DifficultyAdvanced,
		Icon:        "fab fa-google",
		IconColor:   "text-blue-500",
		Tags:        []string{"gcp", "google cloud", "architecture", "professional", "data", "ml"},
	},
	{
		Name:        "CompTIA Security+",
		Provider:    "CompTIA",
		Category:    "cybersecurity",
		Description: "Industry standard entry-level cybersecurity certification. Perfect for beginners wanting to start in cybersecurity.",
		PrepTime:    "2-4 months prep",
		ExamFee:     "$370 exam fee",
		Difficulty:  domain.DifficultyBeginner,
		Icon:        "fas fa-shield-alt",
		IconColor:   "text-red-500",
		Tags:        []string{"comptia", "security", "cybersecurity", "entry-level", "foundation"},
	},
	{
		Name:        "Certified Ethical Hacker (CEH)",
		Provider:    "EC-Council",
		Category:    "cybersecurity",
		Description: "Learn to think like a hacker to better defend against attacks. Covers penetration testing and ethical hacking.",
		PrepTime:    "3-6 months prep",
		ExamFee:     "$1,199 exam fee",
		Difficulty:  domain.DifficultyIntermediate,
		Icon:        "fas fa-user-secret",
		IconColor:   "text-gray-600",
		Tags:        []string{"ethical hacking", "penetration testing", "ceh", "ec-council"},
	},
	{
		Name:        "CISSP (Certified Information Systems Security Professional)",
		Provider:    "ISC2",
		Category:    "cybersecurity",
		Description: "Advanced cybersecurity certification for experienced professionals. Requires 5 years of experience.",
		PrepTime:    "6-12 months prep",
		ExamFee:     "$749 exam fee",
		Difficulty:  domain.DifficultyAdvanced,
		Icon:        "fas fa-lock",
		IconColor:   "text-red-700",
		Tags:        []string{"cissp", "isc2", "advanced", "security professional", "management"},
	},
	{
		Name:        "Project Management Professional (PMP)",
		Provider:    "PMI",
		Category:    "project management",
		Description: "Gold standard for project management. Recognized globally and increases earning potential significantly.",
		PrepTime:    "3-6 months prep",
		ExamFee:     "$405-555 exam fee",
		Difficulty:  domain.DifficultyIntermediate,
		Icon:        "fas fa-tasks",
		IconColor:   "text-green-600",
		Tags:        []string{"pmp", "pmi", "project management", "professional", "leadership"},
	},
	{
		Name:        "Certified ScrumMaster (CSM)",
		Provider:    "Scrum Alliance",
		Category:    "project management",
		Description: "Learn agile project management with Scrum framework. Great for tech project managers.",
		PrepTime:    "1-2 months prep",
		ExamFee:     "$995-1,395 exam fee",
		Difficulty:  domain.DifficultyBeginner,
		Icon:        "fas fa-users",
		IconColor:   "text-blue-500",
		Tags:        []string{"scrum", "agile", "scrummaster", "project management", "tech"},
	},
	{
		Name:        "Certified Data Scientist",
		Provider:    "Data Science Council of America",
		Category:    "data science",
		Description: "Comprehensive data science certification covering statistics, machine learning, and data analysis.",
		PrepTime:    "6-12 months prep",
		ExamFee:     "$300 exam fee",
		Difficulty:  domain.DifficultyAdvanced,
		Icon:        "fas fa-chart-bar",
		IconColor:   "text-purple-500",
		Tags:        []string{"data science", "machine learning", "statistics", "analytics", "python"},
	},
	{
		Name:        "Tableau Desktop Specialist",
		Provider:    "Tableau",
		Category:    "data science",
		Description: "Entry-level certification for data visualization using Tableau. Perfect for business analysts.",
		PrepTime:    "2-3 months prep",
		ExamFee:     "$100 exam fee",
		Difficulty:  domain.DifficultyBeginner,
		Icon:        "fas fa-chart-line",
		IconColor:   "text-orange-500",
		Tags:        []string{"tableau", "data visualization", "business intelligence", "analytics"},
	},
	{
		Name:        "Microsoft Certified: Azure Data Scientist Associate",
		Provider:    "Microsoft",
		Category:    "data science",
		Description: "Focuses on machine learning and AI on Azure platform. Great for cloud-based data science.",
		PrepTime:    "4-6 months prep",
		ExamFee:     "$165 exam fee",
		Difficulty:  domain.DifficultyIntermediate,
		Icon:        "fab fa-microsoft",
		IconColor:   "text-blue-600",
		Tags:        []string{"azure", "data science", "machine learning", "ai", "microsoft", "cloud"},
	},
	{
		Name:        "Certified Kubernetes Administrator (CKA)",
		Provider:    "Cloud Native Computing Foundation",
		Category:    "devops",
		Description: "Validates skills in Kubernetes administration. Essential for modern container orchestration.",
		PrepTime:    "4-6 months prep",
		ExamFee:     "$395 exam fee",
		Difficulty:  domain.DifficultyIntermediate,
		Icon:        "fas fa-dharmachakra",
		IconColor:   "text-blue-400",
		Tags:        []string{"kubernetes", "containers", "devops", "orchestration", "cncf"},
	},
	{
		Name:        "Docker Certified Associate",
		Provider:    "Docker",
		Category:    "devops",
		Description: "Validates containerization skills with Docker. Foundation for modern application deployment.",
		PrepTime:    "2-4 months prep",
		ExamFee:     "$195 exam fee",
		Difficulty:  domain.DifficultyIntermediate,
		Icon:        "fab fa-docker",
		IconColor:   "text-blue-500",
		Tags:        []string{"docker", "containers", "devops", "deployment", "microservices"},
	},
	{
		Name:        "Salesforce Administrator",
		Provider:    "Salesforce",
		Category:    "business applications",
		Description: "Most in-demand CRM certification. Great for non-technical professionals entering tech.",
		PrepTime:    "2-3 months prep",
		ExamFee:     "$200 exam fee",
		Difficulty:  domain.DifficultyBeginner,
		Icon:        "fab fa-salesforce",
		IconColor:   "text-blue-400",
		Tags:        []string{"salesforce", "crm", "administrator", "business", "non-technical"},
	},
	{
		Name:        "Oracle Certified Professional Java Developer",
		Provider:    "Oracle",
		Category:    "software development",
		Description: "Validates Java programming skills. Essential for enterprise Java development.",
		PrepTime:    "4-8 months prep",
		ExamFee:     "$245 exam fee",
		Difficulty:  domain.DifficultyIntermediate,
		Icon:        "fab fa-java",
		IconColor:   "text-red-600",
		Tags:        []string{"java", "programming", "oracle", "development", "enterprise"},
	},
}
