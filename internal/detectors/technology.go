// Copyright 2026 The Uplift Authors
// SPDX-License-Identifier: MIT

package detectors

import (
	"regexp"

	"github.com/uplift-dev/uplift/internal/detector"
	"github.com/uplift-dev/uplift/internal/signal"
	"github.com/uplift-dev/uplift/internal/snapshot"
)

func init() {
	detector.Register(&TechnologyDetector{rules: technologyRules})
}

// technologyRules maps stack keywords to technology signals. Patterns are
// case-insensitive and tuned to match identifiers, imports, and config keys
// rather than prose.
var technologyRules = []patternRule{
	{name: SigPayment, category: signal.CategoryTechnology, strength: 1,
		re: regexp.MustCompile(`(?i)\b(stripe|paypal|braintree|adyen|square(?:up)?\.com|checkout[._-]?session|payment[._-]?intent)\b`)},
	{name: SigCart, category: signal.CategoryTechnology, strength: 1,
		re: regexp.MustCompile(`(?i)\b(cart|basket|add[_-]?to[_-]?cart|checkout)\b`)},
	{name: SigProductCatalog, category: signal.CategoryTechnology, strength: 1,
		re: regexp.MustCompile(`(?i)\b(product|sku|inventory|catalog)\b`)},
	{name: SigOrder, category: signal.CategoryTechnology, strength: 1,
		re: regexp.MustCompile(`(?i)\b(order[_-]?(id|item|status|total)|shipping[_-]?address|fulfillment)\b`)},
	{name: SigSubscription, category: signal.CategoryTechnology, strength: 1,
		re: regexp.MustCompile(`(?i)\b(subscription|billing[_-]?(plan|cycle|period)|price[_-]?tier|trial[_-]?end)\b`)},
	{name: SigMultiTenant, category: signal.CategoryTechnology, strength: 1,
		re: regexp.MustCompile(`(?i)\b(tenant[_-]?id|multi[_-]?tenant|organization[_-]?id|workspace[_-]?id)\b`)},
	{name: SigAPIEndpoint, category: signal.CategoryTechnology, strength: 1, exts: codeExts,
		re: regexp.MustCompile(`(app|router|r)\.(get|post|put|patch|delete)\s*\(|@(app\.route|(Get|Post|Put|Delete)Mapping)|http\.Handle(Func)?\s*\(|\burlpatterns\b`)},
	{name: SigAuth, category: signal.CategoryTechnology, strength: 1, exts: codeExts,
		re: regexp.MustCompile(`(?i)\b(jsonwebtoken|jwt\.|oauth2?|passport|bcrypt|argon2|devise|next-auth|session[_-]?(store|token)|signin|sign[_-]?in)\b`)},
	{name: SigDatabase, category: signal.CategoryTechnology, strength: 1,
		re: regexp.MustCompile(`(?i)\b(postgres(ql)?|mysql|mongodb|mongoose|sqlite|sqlalchemy|activerecord|database_url|gorm|prisma|typeorm|sequelize)\b`)},
	{name: SigCache, category: signal.CategoryTechnology, strength: 1,
		re: regexp.MustCompile(`(?i)\b(redis|memcached?|cache[_-]?(ttl|store|key))\b`)},
	{name: SigSearch, category: signal.CategoryTechnology, strength: 1,
		re: regexp.MustCompile(`(?i)\b(elasticsearch|opensearch|algolia|typesense|meilisearch|solr)\b`)},
	{name: SigEmailDelivery, category: signal.CategoryTechnology, strength: 1,
		re: regexp.MustCompile(`(?i)\b(sendgrid|mailgun|postmark|ses\.send|nodemailer|smtp[_-]?(host|server)|action_?mailer)\b`)},
	{name: SigAnalytics, category: signal.CategoryTechnology, strength: 1,
		re: regexp.MustCompile(`(?i)\b(google-analytics|gtag|mixpanel|amplitude|posthog|segment\.(io|com)|analytics\.track)\b`)},
	{name: SigErrorMonitoring, category: signal.CategoryTechnology, strength: 1,
		re: regexp.MustCompile(`(?i)\b(sentry|rollbar|bugsnag|honeybadger|datadog|newrelic|raygun)\b`)},
	{name: SigStructuredLogging, category: signal.CategoryTechnology, strength: 1, exts: codeExts,
		re: regexp.MustCompile(`(?i)\b(winston|pino|bunyan|zap\.|zerolog|logrus|slog\.|structlog|log4j|serilog)\b`)},
	{name: SigInputValidation, category: signal.CategoryTechnology, strength: 1, exts: codeExts,
		re: regexp.MustCompile(`(?i)\b(joi\.|zod|yup\.|express-validator|class-validator|pydantic|marshmallow|validates?[_-]?(presence|format|schema)|go-playground/validator)\b`)},
	{name: SigQueue, category: signal.CategoryTechnology, strength: 1,
		re: regexp.MustCompile(`(?i)\b(kafka|rabbitmq|amqp|sqs|celery|sidekiq|bullmq|nats)\b`)},
	{name: SigRateLimiting, category: signal.CategoryTechnology, strength: 1, exts: codeExts,
		re: regexp.MustCompile(`(?i)\b(rate[_-]?limit|ratelimit|throttle|token[_-]?bucket)\b`)},
	{name: SigPersonalization, category: signal.CategoryTechnology, strength: 1, exts: codeExts,
		re: regexp.MustCompile(`(?i)\b(recommendation|personaliz|recently[_-]?viewed|similar[_-]?(products|items))\b`)},
	{name: SigFrontendFramework, category: signal.CategoryTechnology, strength: 1,
		re: regexp.MustCompile(`(?i)(from ['"]react['"]|from ['"]vue['"]|@angular/core|from ['"]svelte['"]|"react"\s*:|"vue"\s*:)`)},
	{name: SigStaticSite, category: signal.CategoryTechnology, strength: 1,
		re: regexp.MustCompile(`(?i)\b(gatsby|jekyll|hugo|eleventy|astro\.config|next export)\b`)},
	{name: SigCMS, category: signal.CategoryTechnology, strength: 1,
		re: regexp.MustCompile(`(?i)\b(wordpress|wp-content|contentful|strapi|sanity\.io|ghost-admin)\b`)},
	{name: SigAdminUI, category: signal.CategoryTechnology, strength: 1, exts: codeExts,
		re: regexp.MustCompile(`(?i)\b(admin[_-]?(panel|dashboard|route|view)|backoffice|internal[_-]?(tool|dashboard))\b`)},
	{name: SigCronJobs, category: signal.CategoryTechnology, strength: 1, exts: codeExts,
		re: regexp.MustCompile(`(?i)\b(cron|scheduled?[_-]?(job|task)|@Scheduled|node-schedule|whenever)\b`)},
	{name: SigReporting, category: signal.CategoryTechnology, strength: 1, exts: codeExts,
		re: regexp.MustCompile(`(?i)\b(csv[_-]?(export|writer)|to_csv|xlsx|spreadsheet|generate[_-]?report)\b`)},
}

// TechnologyDetector emits stack signals: frameworks, storage, auth,
// payments, and supporting capabilities.
type TechnologyDetector struct {
	rules []patternRule
}

func (d *TechnologyDetector) Name() string { return "technology" }

func (d *TechnologyDetector) Detect(f snapshot.FileRecord) []signal.Signal {
	return scanLines(f, d.rules)
}

var _ detector.Detector = (*TechnologyDetector)(nil)
