package taxonomy

// defaultTechSkills is the built-in technical skill reference list. Entries
// keep their conventional casing; lookups are case-insensitive.
var defaultTechSkills = []string{
	// Programming languages
	"Python", "JavaScript", "TypeScript", "Java", "C++", "C#", "Ruby", "Go",
	"Rust", "Swift", "Kotlin", "PHP", "SQL", "Scala", "Cobol", "Fortran",
	"Dart", "MATLAB", "Bash", "PowerShell",
	// Frontend
	"React", "Angular", "Vue", "Next.js", "Nuxt.js", "Svelte", "SolidJS",
	"Redux", "Tailwind", "Sass", "HTML5", "CSS3", "Bootstrap",
	// Backend and frameworks
	"Node.js", "Express", "Deno", "Bun", "Django", "Flask", "FastAPI",
	"Spring Boot", "Rails", "Laravel", "ASP.NET", "NestJS", "Phoenix",
	// Cloud and infrastructure
	"AWS", "Azure", "GCP", "Google Cloud", "DigitalOcean", "Heroku",
	"Netlify", "Vercel", "Lambda", "S3", "EC2",
	// DevOps and tools
	"Docker", "Kubernetes", "Terraform", "Ansible", "Pulumi", "Jenkins",
	"Git", "GitHub Actions", "GitLab CI", "CircleCI", "CI/CD", "DevOps",
	"SRE", "Helm", "ArgoCD", "Prometheus", "Grafana", "ELK Stack",
	"DataDog", "New Relic",
	// Databases and messaging
	"PostgreSQL", "MySQL", "MariaDB", "MongoDB", "Redis", "Cassandra",
	"Elasticsearch", "Kafka", "RabbitMQ", "Supabase", "Firebase", "Prisma",
	"DynamoDB", "Snowflake", "BigQuery", "SQLite",
	// AI and data science
	"TensorFlow", "PyTorch", "Scikit-learn", "Pandas", "NumPy", "SciPy",
	"Matplotlib", "OpenCV", "HuggingFace", "Transformers", "LLM",
	"LangChain", "OpenAI", "NLP",
	// APIs and architecture
	"REST", "GraphQL", "gRPC", "SOAP", "API", "Microservices", "Serverless",
	"WebSockets",
	// Process
	"Agile", "Scrum", "Kanban", "TDD", "BDD", "Jira", "Confluence",
}

// defaultToolNames is the fixed list of named tools consulted, in order,
// before any other categorization rule. All lowercase.
var defaultToolNames = []string{
	"docker", "kubernetes", "jenkins", "terraform", "ansible", "pulumi",
	"helm", "argocd", "prometheus", "grafana", "datadog", "new relic",
	"jira", "confluence", "git", "webpack", "babel", "postman", "figma",
	"tableau",
}

// defaultSoftSkills is the fixed list of soft-skill phrases. All lowercase.
var defaultSoftSkills = []string{
	"leadership", "teamwork", "communication", "problem solving",
	"critical thinking", "adaptability", "time management",
	"conflict resolution", "mentorship", "creativity", "empathy",
	"public speaking", "collaboration",
}

// defaultStopWords is the set of common English words dropped during resume
// tokenization.
var defaultStopWords = []string{
	"the", "a", "an", "and", "or", "but", "in", "on", "at", "to", "for",
	"of", "with", "by", "from", "as", "is", "was", "are", "were", "been",
	"be", "have", "has", "had", "do", "does", "did", "will", "would",
	"could", "should", "may", "might", "must", "that", "which", "who",
	"whom", "this", "these", "those", "it", "its", "their", "our", "your",
	"my", "we", "they", "you", "i", "he", "she", "can", "all", "each",
	"such", "what", "when", "where", "how", "why", "very", "just", "also",
	"more", "about", "up", "out", "if", "than", "so", "no", "not", "only",
	"own", "same", "into", "through", "during", "before", "after", "above",
	"below", "between",
}

// defaultPhrasePatterns are multi-word phrases searched for in lowercased JD
// text in addition to the technical skill list.
var defaultPhrasePatterns = []string{
	"machine learning", "deep learning", "computer vision",
	"data engineering", "data science", "full stack", "ci/cd",
	"distributed systems", "event-driven", "unit testing", "code review",
	"problem solving", "cross-functional",
}
