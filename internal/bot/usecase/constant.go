package usecase

// Fallback keyword buckets, tested against the lowercased input in priority
// order. The first bucket with any hit wins; "general" is the catch-all.
var (
	questionKeywords  = []string{"what", "how", "why", "when", "where", "who", "?"}
	technicalKeywords = []string{"api", "database", "server", "config", "setup"}
	actionKeywords    = []string{"create", "make", "build", "generate", "show", "explain"}
)

// Fallback reply templates. Unlike intent replies these are deterministic:
// one fixed template per bucket, echoing the original input verbatim.
const (
	fallbackQuestionTemplate = "🤔 Good question! You asked: \"%s\"\n\n" +
		"I'm a demo bot, so I can't truly answer that — but try one of my known topics:\n\n" +
		"• `deploy my app`\n• `generate some code`\n• `help`"

	fallbackTechnicalTemplate = "🔧 Sounds technical! You said: \"%s\"\n\n" +
		"I know a few tricks around infrastructure — try:\n\n" +
		"• `dockerize my service`\n• `deploy to production`\n• `help`"

	fallbackActionTemplate = "⚡ On it! You want: \"%s\"\n\n" +
		"I can walk through things like:\n\n" +
		"• `generate code for an endpoint`\n• `build a Docker image`\n• `help`"

	fallbackGeneralTemplate = "I'm not sure what to make of: \"%s\"\n\n" +
		"I'm a simple pattern-matching bot. Type `help` to see what I understand, " +
		"or try `deploy my app`."
)
