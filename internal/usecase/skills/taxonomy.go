package skills

// Category groups related skill keywords.
type Category struct {
	Name     string
	Keywords []string
}

// taxonomy is the fixed skill dictionary, organized by category.
// Keywords are matched case-insensitively as whole tokens; entries with
// special characters ("c++", "ci/cd") are matched literally.
var taxonomy = []Category{
	{
		Name: "Programming Languages",
		Keywords: []string{
			"python", "java", "javascript", "typescript", "c++", "c#", "r", "go",
			"rust", "scala", "kotlin", "swift", "php", "ruby", "matlab",
		},
	},
	{
		Name: "Web Development",
		Keywords: []string{
			"html", "css", "react", "angular", "vue", "node", "django", "flask",
			"fastapi", "bootstrap", "tailwind", "jquery", "rest api", "graphql",
		},
	},
	{
		Name: "Data Science & ML",
		Keywords: []string{
			"machine learning", "deep learning", "nlp", "natural language processing",
			"tensorflow", "keras", "pytorch", "scikit-learn", "sklearn", "xgboost",
			"pandas", "numpy", "scipy", "data science", "computer vision", "bert",
			"transformer", "neural network", "reinforcement learning",
		},
	},
	{
		Name: "Databases",
		Keywords: []string{
			"sql", "mysql", "postgresql", "mongodb", "redis", "sqlite", "oracle",
			"cassandra", "elasticsearch", "nosql", "firebase",
		},
	},
	{
		Name: "Cloud & DevOps",
		Keywords: []string{
			"aws", "azure", "gcp", "docker", "kubernetes", "ci/cd", "jenkins",
			"terraform", "ansible", "linux", "git", "github", "gitlab", "devops",
		},
	},
	{
		Name: "Data Analytics & BI",
		Keywords: []string{
			"tableau", "power bi", "excel", "looker", "data visualization",
			"matplotlib", "seaborn", "plotly", "statistics", "data analysis",
		},
	},
	{
		Name: "Soft Skills",
		Keywords: []string{
			"communication", "leadership", "teamwork", "problem solving",
			"critical thinking", "project management", "agile", "scrum",
			"time management", "collaboration",
		},
	},
}

// Taxonomy returns the skill categories in declaration order.
// The returned slices are shared; callers must not mutate them.
func Taxonomy() []Category { return taxonomy }
