// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

// Package findings turns signal gaps into improvement findings. Each rule
// declares the contexts it applies to, the signals that make the concern
// relevant, and the signals whose presence means it is already handled.
package findings

import (
	"github.com/uplift-dev/uplift/internal/detectors"
	"github.com/uplift-dev/uplift/internal/signal"
)

// Rule describes one candidate finding. A rule fires at most once per run,
// and only when its gap is unambiguous: every Trigger signal present and no
// Satisfied signal present at all.
type Rule struct {
	// Category is the finding category, unique across all rules in a set.
	Category string

	// AppliesTo restricts the rule to context types. Nil means all.
	AppliesTo []signal.ContextType

	// Trigger lists signals that must all be present for the rule to be
	// relevant (e.g. payment processing before payment optimization).
	Trigger []string

	// Satisfied lists signals whose presence — even a single ambiguous
	// occurrence — suppresses the rule.
	Satisfied []string

	// Title and Description are text/template strings rendered against
	// templateData. A template failure skips the rule with a warning.
	Title       string
	Description string

	Impact     float64 // 0-10
	Effort     float64 // 0-10
	Confidence float64 // 0-1

	// RedactSnippets masks matched values in evidence snippets. Set on
	// rules whose evidence lines contain credentials.
	RedactSnippets bool
}

// defaultRules is the full rule set, in a fixed order that also fixes the
// generation order of findings.
var defaultRules = []Rule{
	{
		Category:    "security",
		Trigger:     []string{detectors.SigSQLInjectionRisk},
		Title:       "User input flows into SQL queries unsanitized",
		Description: "Request values are concatenated directly into SQL statements in {{.Files}} file(s), e.g. {{.Example}}. This is an injection vector; move to parameterized queries and add automated security scanning.",
		Impact:      10, Effort: 3, Confidence: 0.95,
	},
	{
		Category:       "secrets-management",
		Trigger:        []string{detectors.SigHardcodedSecret},
		Title:          "Credentials are hardcoded in source",
		Description:    "Found {{.Count}} hardcoded credential(s) across {{.Files}} file(s), e.g. {{.Example}}. Secrets in source leak through history and forks; move them to a secrets manager.",
		Impact:         9, Effort: 3, Confidence: 0.9,
		RedactSnippets: true,
	},
	{
		Category:    "input-validation",
		Trigger:     []string{detectors.SigUnvalidatedInput},
		Satisfied:   []string{detectors.SigInputValidation},
		Title:       "Request input is consumed without a validation layer",
		Description: "Handlers read raw request input in {{.Files}} file(s) and no validation library is in use. Malformed or hostile payloads reach business logic unchecked; add schema validation at the boundary.",
		Impact:      8, Effort: 4, Confidence: 0.8,
	},
	{
		Category:  "data-privacy",
		Trigger:   []string{detectors.SigPIIExposure},
		Title:     "Personally identifiable fields handled without visible safeguards",
		Description: "Fields like SSNs or birth dates appear in {{.Files}} file(s), e.g. {{.Example}}. Review storage encryption, access controls, and retention for these records.",
		Impact:    8, Effort: 5, Confidence: 0.7,
	},
	{
		Category:    "payment-optimization",
		AppliesTo:   []signal.ContextType{signal.ContextEcommerce, signal.ContextSaaS},
		Trigger:     []string{detectors.SigPayment},
		Title:       "Payment flow has no recovery or optimization tooling",
		Description: "The {{.Context.Type}} codebase processes payments in {{.Files}} file(s) but shows no failed-payment recovery, smart retries, or checkout optimization. Recovered payments land directly on revenue.",
		Impact:      9, Effort: 4, Confidence: 0.7,
	},
	{
		Category:    "authentication",
		Trigger:     []string{detectors.SigAPIEndpoint},
		Satisfied:   []string{detectors.SigAuth},
		Title:       "API endpoints without an authentication layer",
		Description: "{{.Count}} endpoint definition(s) were found and no authentication library or session handling is visible. If any endpoint mutates data, this is an open door.",
		Impact:      8, Effort: 5, Confidence: 0.7,
	},
	{
		Category:    "error-monitoring",
		Trigger:     []string{detectors.SigAPIEndpoint},
		Satisfied:   []string{detectors.SigErrorMonitoring},
		Title:       "No error monitoring configured",
		Description: "The service exposes endpoints but reports exceptions nowhere. Production failures stay invisible until users complain; wire an error monitoring service with alerting.",
		Impact:      7, Effort: 2, Confidence: 0.75,
	},
	{
		Category:    "structured-logging",
		Trigger:     []string{detectors.SigConsoleLogging},
		Satisfied:   []string{detectors.SigStructuredLogging},
		Title:       "Console logging is the only logging in place",
		Description: "{{.Count}} console/print call(s) across {{.Files}} file(s) and no structured logger. Plain prints cannot be searched, leveled, or shipped; adopt structured logging.",
		Impact:      5, Effort: 3, Confidence: 0.7,
	},
	{
		Category:    "testing",
		Trigger:     []string{detectors.SigAPIEndpoint},
		Satisfied:   []string{detectors.SigTests},
		Title:       "No automated tests found",
		Description: "The codebase defines endpoints but carries no recognizable test files. Every change ships unverified; start with tests around the request handlers.",
		Impact:      7, Effort: 6, Confidence: 0.65,
	},
	{
		Category:    "ci-cd",
		Trigger:     []string{detectors.SigTests},
		Satisfied:   []string{detectors.SigCI},
		Title:       "Tests exist but no CI pipeline runs them",
		Description: "Test files are present yet no CI configuration was found. Tests that only run on developer machines rot; add a pipeline that runs them on every push.",
		Impact:      6, Effort: 2, Confidence: 0.7,
	},
	{
		Category:    "rate-limiting",
		AppliesTo:   []signal.ContextType{signal.ContextAPIService, signal.ContextSaaS},
		Trigger:     []string{detectors.SigAPIEndpoint},
		Satisfied:   []string{detectors.SigRateLimiting},
		Title:       "Public endpoints without rate limiting",
		Description: "An {{.Context.Type}} with {{.Count}} endpoint definition(s) and no rate limiting is one bad actor away from an outage. Add throttling at the gateway or middleware layer.",
		Impact:      6, Effort: 3, Confidence: 0.6,
	},
	{
		Category:    "caching",
		AppliesTo:   []signal.ContextType{signal.ContextAPIService, signal.ContextEcommerce, signal.ContextSaaS},
		Trigger:     []string{detectors.SigDatabase},
		Satisfied:   []string{detectors.SigCache},
		Title:       "Database reads with no caching layer",
		Description: "Database access is spread across {{.Files}} file(s) with no cache in sight. Hot reads hit the database every time; a cache in front of the heaviest queries buys latency and headroom.",
		Impact:      6, Effort: 4, Confidence: 0.6,
	},
	{
		Category:    "search",
		AppliesTo:   []signal.ContextType{signal.ContextEcommerce, signal.ContextPublicSite},
		Trigger:     []string{detectors.SigProductCatalog},
		Satisfied:   []string{detectors.SigSearch},
		Title:       "Product catalog without search",
		Description: "A catalog is modeled in {{.Files}} file(s) but no search engine is integrated. Visitors who cannot find products cannot buy them; hosted search is a fast win here.",
		Impact:      7, Effort: 5, Confidence: 0.65,
	},
	{
		Category:    "personalization",
		AppliesTo:   []signal.ContextType{signal.ContextEcommerce},
		Trigger:     []string{detectors.SigProductCatalog},
		Satisfied:   []string{detectors.SigPersonalization},
		Title:       "No product recommendations or personalization",
		Description: "The storefront has a product catalog but shows every visitor the same thing. Recommendation and personalization tooling typically lifts average order value measurably.",
		Impact:      7, Effort: 6, Confidence: 0.6,
	},
	{
		Category:    "email-delivery",
		AppliesTo:   []signal.ContextType{signal.ContextEcommerce, signal.ContextSaaS},
		Trigger:     []string{detectors.SigOrder},
		Satisfied:   []string{detectors.SigEmailDelivery},
		Title:       "Order flow without transactional email",
		Description: "Orders are modeled in {{.Files}} file(s) but no transactional email provider is integrated. Confirmation and shipping mail is table stakes; add a delivery service.",
		Impact:      6, Effort: 2, Confidence: 0.6,
	},
	{
		Category:    "analytics",
		AppliesTo:   []signal.ContextType{signal.ContextEcommerce, signal.ContextSaaS, signal.ContextPublicSite},
		Trigger:     []string{detectors.SigFrontendFramework},
		Satisfied:   []string{detectors.SigAnalytics},
		Title:       "No product analytics instrumentation",
		Description: "A frontend is present with no analytics events. Without funnel data, product decisions are guesses; instrument the key flows.",
		Impact:      6, Effort: 2, Confidence: 0.6,
	},
}

// DefaultRules returns the full rule set.
func DefaultRules() []Rule { return defaultRules }

// BaselineRules returns the reduced rule set used by the fallback strategy:
// risk-driven rules only, applicable in any context.
func BaselineRules() []Rule {
	var out []Rule
	for _, r := range defaultRules {
		if len(r.AppliesTo) == 0 {
			out = append(out, r)
		}
	}
	return out
}
