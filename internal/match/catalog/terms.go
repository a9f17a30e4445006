// internal/match/catalog/terms.go
package catalog

// Aliases maps common shorthand to its canonical skill token. Many-to-one;
// lookups happen after lowercasing and whitespace folding.
var Aliases = map[string]string{
	"js":                  "javascript",
	"ts":                  "typescript",
	"py":                  "python",
	"golang":              "go",
	"k8s":                 "kubernetes",
	"kube":                "kubernetes",
	"postgres":            "postgresql",
	"psql":                "postgresql",
	"mongo":               "mongodb",
	"node":                "nodejs",
	"node.js":             "nodejs",
	"react.js":            "react",
	"reactjs":             "react",
	"vue.js":              "vue",
	"vuejs":               "vue",
	"next.js":             "nextjs",
	"tf":                  "terraform",
	"gcp":                 "google cloud",
	"amazon web services": "aws",
	"ml":                  "machine learning",
	"dl":                  "deep learning",
	"ai":                  "machine learning",
	"nlp":                 "natural language processing",
	"cv":                  "computer vision",
	"ci":                  "ci pipelines",
	"cicd":                "ci pipelines",
	"ci/cd":               "ci pipelines",
	"rest":                "rest apis",
	"restful apis":        "rest apis",
	"api":                 "api design",
	"apis":                "api design",
	"db":                  "sql",
	"rdbms":               "sql",
	"html5":               "html",
	"css3":                "css",
	"scrum":               "agile delivery",
	"agile":               "agile delivery",
	"ux research":         "user research",
	"sem":                 "seo",
	"a/b":                 "a/b testing",
	"ab testing":          "a/b testing",
	"infosec":             "network security",
	"pentesting":          "vulnerability assessment",
	"fp&a":                "financial modeling",
	"ta":                  "talent acquisition",
	"people ops":          "people operations",
}

// Stopwords are dropped when tokenizing free text for adaptive profiles.
var Stopwords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "as": {}, "at": {}, "by": {}, "for": {},
	"from": {}, "in": {}, "of": {}, "on": {}, "or": {}, "the": {}, "to": {},
	"with": {}, "using": {}, "via": {}, "etc": {}, "other": {}, "various": {},
}

// GenericRoleWords carry no signal about what a role actually does and are
// excluded when mining role/industry text for adaptive blueprints.
var GenericRoleWords = map[string]struct{}{
	"engineer": {}, "developer": {}, "manager": {}, "specialist": {},
	"analyst": {}, "consultant": {}, "coordinator": {}, "associate": {},
	"assistant": {}, "professional": {}, "expert": {}, "intern": {},
	"senior": {}, "junior": {}, "lead": {}, "head": {}, "staff": {},
	"principal": {}, "chief": {}, "officer": {}, "director": {},
	"technology": {}, "tech": {}, "company": {}, "industry": {},
}

// SpecificityKeywords name concrete, high-signal technologies and skills.
// Hits against this set earn specificity bonuses in profile-quality and
// track-consistency scoring, and the set doubles as a whole-word source in
// skill extraction.
var SpecificityKeywords = []string{
	"kubernetes", "terraform", "docker", "ansible", "helm",
	"postgresql", "mongodb", "redis", "kafka", "elasticsearch", "snowflake",
	"react", "typescript", "nextjs", "graphql", "tailwind", "webpack",
	"python", "go", "rust", "kotlin", "swift", "elixir", "scala",
	"pytorch", "tensorflow", "scikit-learn", "spark", "airflow", "dbt",
	"aws", "azure", "google cloud", "prometheus", "grafana",
	"figma", "salesforce", "hubspot", "tableau", "power bi", "workday",
	"selenium", "playwright", "cypress", "burp suite", "jira",
}

// Seniority keyword bands for inferring the expected evidence level from a
// role title. Strict winner takes the band; mid is the tie-break default.
var (
	JuniorKeywords = []string{"junior", "jr", "intern", "graduate", "entry", "trainee", "apprentice"}
	MidKeywords    = []string{"mid", "intermediate", "ii", "experienced"}
	SeniorKeywords = []string{"senior", "sr", "staff", "principal", "lead", "head", "architect", "director", "vp"}
)
