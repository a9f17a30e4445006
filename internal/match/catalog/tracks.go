// internal/match/catalog/tracks.go
package catalog

// Tracks is the static reference table, in declaration order. Classification
// ties break toward the earlier entry, so the ordering here is load-bearing
// and must not be rearranged.
var Tracks = []Profile{
	{
		Track:    TrackBackend,
		Keywords: []string{"backend", "back-end", "server", "microservice", "api developer", "platform engineer", "distributed systems"},
		Blueprint: Blueprint{
			Core:     []string{"python", "sql", "api design", "rest apis", "postgresql", "docker", "git", "linux"},
			Adjacent: []string{"kubernetes", "redis", "kafka", "grpc", "message queues", "caching", "system design", "nosql"},
			Critical: []string{"python", "sql", "api design"},
			Projects: []string{
				"Build a rate-limited REST API with token auth and a PostgreSQL backend",
				"Design a job queue service with retry semantics and dead-letter handling",
				"Ship a containerized microservice with health checks and metrics",
			},
		},
	},
	{
		Track:    TrackFrontend,
		Keywords: []string{"frontend", "front-end", "react", "web developer", "javascript developer", "angular", "vue"},
		Blueprint: Blueprint{
			Core:     []string{"javascript", "typescript", "react", "html", "css", "responsive design", "git", "rest apis"},
			Adjacent: []string{"nextjs", "webpack", "accessibility", "testing library", "state management", "graphql", "tailwind", "vite"},
			Critical: []string{"javascript", "react", "css"},
			Projects: []string{
				"Build a dashboard with live data, skeleton loading and keyboard navigation",
				"Ship a component library with documented props and visual regression tests",
				"Rebuild a landing page to hit a 95+ Lighthouse performance score",
			},
		},
	},
	{
		Track:    TrackFullstack,
		Keywords: []string{"fullstack", "full-stack", "full stack", "web application developer", "mern", "mean stack"},
		Blueprint: Blueprint{
			Core:     []string{"javascript", "typescript", "react", "nodejs", "sql", "rest apis", "git", "docker"},
			Adjacent: []string{"graphql", "postgresql", "redis", "nextjs", "ci pipelines", "authentication", "websockets", "system design"},
			Critical: []string{"javascript", "nodejs", "sql"},
			Projects: []string{
				"Build an end-to-end booking app: React front, Node API, Postgres storage",
				"Add realtime collaboration to an existing CRUD app with websockets",
				"Ship a multi-tenant SaaS starter with auth, billing stubs and seed data",
			},
		},
	},
	{
		Track:    TrackMobile,
		Keywords: []string{"mobile", "ios", "android", "flutter", "react native", "app developer"},
		Blueprint: Blueprint{
			Core:     []string{"swift", "kotlin", "react native", "mobile ui", "rest apis", "git", "app store deployment", "push notifications"},
			Adjacent: []string{"flutter", "firebase", "offline storage", "deep linking", "in-app purchases", "crash reporting", "ci pipelines", "graphql"},
			Critical: []string{"swift", "kotlin", "rest apis"},
			Projects: []string{
				"Ship an offline-first notes app with background sync",
				"Build a camera-based feature with on-device processing",
				"Instrument an app with crash reporting and release health dashboards",
			},
		},
	},
	{
		Track:    TrackDevOps,
		Keywords: []string{"devops", "sre", "site reliability", "infrastructure", "platform operations", "cloud engineer", "systems administrator"},
		Blueprint: Blueprint{
			Core:     []string{"kubernetes", "docker", "terraform", "aws", "linux", "ci pipelines", "bash", "monitoring"},
			Adjacent: []string{"ansible", "prometheus", "grafana", "helm", "networking", "incident response", "gitops", "cost optimization"},
			Critical: []string{"kubernetes", "terraform", "linux"},
			Projects: []string{
				"Stand up a production-grade Kubernetes cluster with GitOps deploys",
				"Write Terraform modules for a three-tier app across two environments",
				"Build an alerting runbook: SLOs, burn-rate alerts, on-call escalation",
			},
		},
	},
	{
		Track:    TrackDataScience,
		Keywords: []string{"data scientist", "data science", "statistician", "quantitative analyst", "analytics"},
		Blueprint: Blueprint{
			Core:     []string{"python", "sql", "statistics", "pandas", "data visualization", "hypothesis testing", "jupyter", "machine learning"},
			Adjacent: []string{"scikit-learn", "tableau", "experiment design", "r", "feature engineering", "storytelling", "causal inference", "dbt"},
			Critical: []string{"python", "sql", "statistics"},
			Projects: []string{
				"Run an A/B test end-to-end: power analysis, guardrails, readout memo",
				"Build a churn model with calibrated probabilities and a business-facing report",
				"Publish an exploratory analysis notebook with reproducible pipelines",
			},
		},
	},
	{
		Track:    TrackDataEng,
		Keywords: []string{"data engineer", "data engineering", "etl", "data pipeline", "data warehouse", "data platform"},
		Blueprint: Blueprint{
			Core:     []string{"python", "sql", "spark", "airflow", "data modeling", "etl pipelines", "data warehousing", "git"},
			Adjacent: []string{"kafka", "dbt", "snowflake", "schema evolution", "data quality", "terraform", "streaming", "parquet"},
			Critical: []string{"sql", "etl pipelines", "data modeling"},
			Projects: []string{
				"Build an incremental ELT pipeline with late-arriving-data handling",
				"Design a star schema for clickstream events and document the contracts",
				"Add data-quality gates with quarantine tables and alerting",
			},
		},
	},
	{
		Track:    TrackML,
		Keywords: []string{"machine learning", "ml engineer", "deep learning", "nlp", "computer vision", "llm"},
		Blueprint: Blueprint{
			Core:     []string{"python", "machine learning", "pytorch", "model evaluation", "feature engineering", "sql", "mlops", "numpy"},
			Adjacent: []string{"tensorflow", "model serving", "vector databases", "prompt engineering", "distributed training", "experiment tracking", "onnx", "kubernetes"},
			Critical: []string{"python", "machine learning", "model evaluation"},
			Projects: []string{
				"Fine-tune a small language model and publish an evaluation harness",
				"Ship a model behind an API with canary rollout and drift monitoring",
				"Build a retrieval pipeline with embedding search and offline evals",
			},
		},
	},
	{
		Track:    TrackQA,
		Keywords: []string{"quality assurance", "test engineer", "qa engineer", "sdet", "test automation"},
		Blueprint: Blueprint{
			Core:     []string{"test automation", "selenium", "api testing", "test planning", "python", "regression testing", "bug triage", "git"},
			Adjacent: []string{"playwright", "performance testing", "cypress", "ci pipelines", "contract testing", "accessibility testing", "exploratory testing", "sql"},
			Critical: []string{"test automation", "api testing", "test planning"},
			Projects: []string{
				"Build a browser test suite that runs green in CI under ten minutes",
				"Write a risk-based test plan for a payment flow and automate the top paths",
				"Add contract tests between two services and wire them into the pipeline",
			},
		},
	},
	{
		Track:    TrackSecurity,
		Keywords: []string{"security", "penetration", "appsec", "infosec", "vulnerability", "soc analyst"},
		Blueprint: Blueprint{
			Core:     []string{"network security", "vulnerability assessment", "owasp", "threat modeling", "linux", "python", "incident response", "siem"},
			Adjacent: []string{"burp suite", "cloud security", "iam", "secure code review", "forensics", "compliance", "red teaming", "cryptography"},
			Critical: []string{"vulnerability assessment", "threat modeling", "incident response"},
			Projects: []string{
				"Run a threat model for a web app and land the top three mitigations",
				"Build a home lab attack/defend exercise and write the findings report",
				"Automate dependency and secret scanning across a small org's repos",
			},
		},
	},
	{
		Track:    TrackDesign,
		Keywords: []string{"designer", "ux", "ui design", "product design", "interaction design", "visual design"},
		Blueprint: Blueprint{
			Core:     []string{"figma", "user research", "wireframing", "prototyping", "design systems", "usability testing", "interaction design", "visual design"},
			Adjacent: []string{"accessibility", "information architecture", "motion design", "html", "css", "workshop facilitation", "journey mapping", "copywriting"},
			Critical: []string{"figma", "user research", "prototyping"},
			Projects: []string{
				"Redesign a signup flow, usability-test it with five users, ship the findings",
				"Build a small design system with tokens and documented components",
				"Publish a case study: problem, explorations, measured outcome",
			},
		},
	},
	{
		Track:    TrackProduct,
		Keywords: []string{"product manager", "product owner", "product management", "roadmap", "product strategy"},
		Blueprint: Blueprint{
			Core:     []string{"product strategy", "roadmapping", "user research", "stakeholder management", "analytics", "prioritization", "a/b testing", "agile delivery"},
			Adjacent: []string{"sql", "okrs", "pricing", "go-to-market", "customer interviews", "wireframing", "competitive analysis", "experiment design"},
			Critical: []string{"product strategy", "prioritization", "stakeholder management"},
			Projects: []string{
				"Write a one-page strategy and measurable quarterly bets for a product you use",
				"Run ten customer interviews and synthesize them into an opportunity tree",
				"Design and size an experiment that could change a core funnel metric",
			},
		},
	},
	{
		Track:    TrackMarketing,
		Keywords: []string{"marketing", "seo", "growth", "brand", "demand generation", "content strategist"},
		Blueprint: Blueprint{
			Core:     []string{"content marketing", "seo", "campaign management", "analytics", "copywriting", "email marketing", "social media", "paid acquisition"},
			Adjacent: []string{"marketing automation", "crm", "landing page optimization", "attribution", "webinars", "community", "pr", "hubspot"},
			Critical: []string{"content marketing", "seo", "analytics"},
			Projects: []string{
				"Plan and run a four-week content series and report its pipeline impact",
				"Rebuild a landing page and lift conversion with an A/B test",
				"Build an attribution view that reconciles ad spend with signups",
			},
		},
	},
	{
		Track:    TrackSales,
		Keywords: []string{"sales", "account executive", "business development", "quota", "pipeline", "revenue"},
		Blueprint: Blueprint{
			Core:     []string{"prospecting", "discovery calls", "negotiation", "crm", "pipeline management", "objection handling", "forecasting", "closing"},
			Adjacent: []string{"salesforce", "outbound sequencing", "demos", "territory planning", "partnerships", "pricing", "customer success handoff", "linkedin outreach"},
			Critical: []string{"prospecting", "negotiation", "pipeline management"},
			Projects: []string{
				"Build a 50-account territory plan with tiered outreach sequences",
				"Record and self-review three discovery calls against a talk-track rubric",
				"Design a forecast model with stage-weighted pipeline hygiene rules",
			},
		},
	},
	{
		Track:    TrackHR,
		Keywords: []string{"human resources", "recruiter", "talent acquisition", "people operations", "hrbp"},
		Blueprint: Blueprint{
			Core:     []string{"recruiting", "interviewing", "onboarding", "employee relations", "hris", "compensation", "performance management", "employment law"},
			Adjacent: []string{"employer branding", "sourcing", "dei programs", "people analytics", "learning and development", "workday", "offboarding", "engagement surveys"},
			Critical: []string{"recruiting", "interviewing", "employee relations"},
			Projects: []string{
				"Design a structured interview loop with scorecards for one role",
				"Build an onboarding checklist that gets new hires productive in week one",
				"Run an engagement survey and turn the results into three commitments",
			},
		},
	},
	{
		Track:    TrackFinance,
		Keywords: []string{"finance", "accounting", "financial analyst", "fp&a", "controller", "bookkeeping"},
		Blueprint: Blueprint{
			Core:     []string{"financial modeling", "excel", "forecasting", "budgeting", "variance analysis", "accounting", "reporting", "sql"},
			Adjacent: []string{"power bi", "erp systems", "cash flow management", "scenario planning", "ifrs", "tax", "cost accounting", "investor reporting"},
			Critical: []string{"financial modeling", "forecasting", "variance analysis"},
			Projects: []string{
				"Build a three-statement model with a driver-based revenue forecast",
				"Automate a monthly variance report straight from the GL export",
				"Run a scenario analysis for a pricing change and present the tradeoffs",
			},
		},
	},
}

// FallbackBlueprint seeds adaptive profiles for roles outside every curated
// track. Deliberately generic; the resolver personalizes around it.
var FallbackBlueprint = Blueprint{
	Core:     []string{"communication", "problem solving", "project delivery", "stakeholder management", "documentation", "data literacy", "time management", "collaboration"},
	Adjacent: []string{"presentation skills", "process improvement", "mentoring", "budget awareness", "vendor management", "reporting"},
	Critical: []string{"communication", "problem solving", "project delivery"},
}
