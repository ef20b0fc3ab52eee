package bot

import "regexp"

// WelcomeResponse is returned for empty or whitespace-only input.
// It is fixed: no random selection happens on this path.
const WelcomeResponse = "👋 Hi there! I'm **Chatterbox**, a demo assistant.\n\n" +
	"Ask me about:\n" +
	"• Deploying your app\n" +
	"• Generating code\n" +
	"• Docker and containers\n" +
	"• Mobile optimization\n\n" +
	"Type `help` to see everything I can do."

// DefaultRules returns the built-in intent table. Declaration order matters:
// the first intent whose any pattern matches wins.
func DefaultRules() []IntentRule {
	return []IntentRule{
		{
			Name: "greeting",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b(hi|hello|hey|howdy)\b`),
				regexp.MustCompile(`(?i)\bgood (morning|afternoon|evening)\b`),
			},
			Responses: []string{
				"Hello! 👋 Great to see you. What would you like to build today?",
				"Hey there! I'm ready to help — ask me about **deployment**, **code generation**, or type `help`.",
				"Hi! Welcome back. What can I do for you?",
			},
		},
		{
			Name: "help",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\bhelp\b`),
				regexp.MustCompile(`(?i)\bwhat can you do\b`),
				regexp.MustCompile(`(?i)\b(commands|usage)\b`),
			},
			Responses: []string{
				"Here's what I can help with:\n\n" +
					"• **Deployment** — \"deploy my app\"\n" +
					"• **Code generation** — \"generate a REST endpoint\"\n" +
					"• **Containers** — \"dockerize my service\"\n" +
					"• **Mobile** — \"optimize for mobile\"\n" +
					"• **Status** — \"are you online?\"",
				"I'm a pattern-matching demo bot. Try one of these:\n\n" +
					"```\ndeploy my app\ngenerate some code\nput it in a container\n```",
				"Ask me about **deploying**, **generating code**, **Docker**, **mobile optimization**, or my **AI capabilities**.",
			},
		},
		{
			Name: "deploy",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\bdeploy(ment|ing|ed)?\b`),
				regexp.MustCompile(`(?i)\b(ship|release|go live)\b`),
				regexp.MustCompile(`(?i)\b(railway|heroku|production)\b`),
			},
			Responses: []string{
				"🚀 Deployment is easy! A typical flow:\n\n" +
					"```bash\ndocker build -t myapp .\ndocker push registry/myapp\n```\n\n" +
					"Then point your platform (Railway, Heroku, ...) at the image. Docker images keep every environment identical.",
				"To **deploy**, you'll want a Docker image and a platform to run it:\n\n" +
					"• Build: `docker build -t myapp .`\n" +
					"• Push: `docker push`\n" +
					"• Release from your platform's dashboard\n\n" +
					"Docker makes rollbacks a one-click affair.",
				"Shipping to production? Containerize first — a `Dockerfile` plus a registry gets you repeatable **Docker** deploys on almost any host.",
			},
		},
		{
			Name: "code-generation",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b(generate|write|scaffold)\b.*\bcode\b`),
				regexp.MustCompile(`(?i)\bcode for\b`),
				regexp.MustCompile(`(?i)\b(boilerplate|snippet|template)\b`),
			},
			Responses: []string{
				"Sure — here's the kind of thing I'd scaffold:\n\n" +
					"```go\nfunc handler(w http.ResponseWriter, r *http.Request) {\n    fmt.Fprintln(w, \"hello\")\n}\n```\n\n" +
					"Tell me the endpoint shape and I'll adjust.",
				"I can sketch **boilerplate** for handlers, clients, and config loaders. What language and framework are you using?",
				"Code generation coming up! Describe the component — a REST handler, a worker loop, a CLI command — and I'll draft it.",
			},
		},
		{
			Name: "containerization",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b(docker|container|dockerfile|kubernetes|k8s)\b`),
				regexp.MustCompile(`(?i)\bcontaineri[sz]e\b`),
			},
			Responses: []string{
				"🐳 **Docker** time! A minimal Go Dockerfile:\n\n" +
					"```dockerfile\nFROM golang:alpine AS build\nWORKDIR /src\nCOPY . .\nRUN go build -o /app ./cmd/api\n\nFROM alpine\nCOPY --from=build /app /app\nENTRYPOINT [\"/app\"]\n```",
				"Containers keep dev and prod identical. Start with a multi-stage **Docker** build, then compose services with `docker compose up`.",
				"For **Docker**: one process per container, config via environment variables, and keep images small with multi-stage builds.",
			},
		},
		{
			Name: "mobile-optimization",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\bmobile\b`),
				regexp.MustCompile(`(?i)\b(responsive|viewport|touch)\b`),
			},
			Responses: []string{
				"📱 Mobile checklist:\n\n• Set the viewport meta tag\n• Use relative units, not fixed pixels\n• Keep tap targets ≥44px\n• Test on a real device, not just devtools",
				"For **responsive** layouts: flexbox/grid over floats, `max-width` images, and media queries as a progressive enhancement.",
				"Mobile performance matters most — compress images, lazy-load below the fold, and budget JavaScript aggressively.",
			},
		},
		{
			Name: "ai-capabilities",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b(are you|you are)\b.*\b(ai|bot|robot|human)\b`),
				regexp.MustCompile(`(?i)\b(machine learning|neural|llm)\b`),
				regexp.MustCompile(`(?i)\bhow do you work\b`),
			},
			Responses: []string{
				"I'm a **demo bot** — no neural networks here! I match your message against an ordered list of regular expressions and pick a canned reply. Honest work.",
				"No machine learning involved: I'm a pattern-matching chatbot. Every reply you see was written by a human ahead of time.",
				"How do I work? A linear scan over regex rules, first match wins, plus a keyword fallback when nothing matches. That's the whole trick.",
			},
		},
		{
			Name: "status-check",
			Patterns: []*regexp.Regexp{
				regexp.MustCompile(`(?i)\b(are you |you )?(online|alive|up|working|there)\?*$`),
				regexp.MustCompile(`(?i)\b(status|ping|health)\b`),
			},
			Responses: []string{
				"✅ All systems operational! Ready when you are.",
				"I'm up and listening. Fire away!",
				"**Status:** online. Latency: as fast as a regex scan.",
			},
		},
	}
}
