// Package signal defines the core domain types for uplift.
package signal

// Category classifies which detector family produced a signal.
type Category string

const (
	// CategoryTechnology marks signals about frameworks, storage, auth,
	// payments, and other stack facts.
	CategoryTechnology Category = "technology"

	// CategoryRisk marks signals about PII exposure, hardcoded secrets,
	// unvalidated input, and similar hazards.
	CategoryRisk Category = "risk"
)

// Signal is a single weighted fact extracted from one file by one detector.
// Multiple signals with the same name accumulate by counting; they are never
// overwritten.
type Signal struct {
	Name     string   // Signal name: "payment", "sql-injection-risk", etc.
	Category Category // technology or risk.
	FilePath string   // Path within the snapshot where this was found.
	Line     int      // Line number (0 if not applicable).
	Strength float64  // Per-occurrence weight, usually 1.0.
	Snippet  string   // The matched line, trimmed. May be empty.
}

// Set aggregates signals by name for classification and rule evaluation.
type Set struct {
	signals []Signal
	counts  map[string]float64
	files   map[string][]Signal
}

// NewSet builds a Set from raw signals.
func NewSet(signals []Signal) *Set {
	s := &Set{
		signals: signals,
		counts:  make(map[string]float64),
		files:   make(map[string][]Signal),
	}
	for _, sig := range signals {
		strength := sig.Strength
		if strength == 0 {
			strength = 1.0
		}
		s.counts[sig.Name] += strength
		s.files[sig.Name] = append(s.files[sig.Name], sig)
	}
	return s
}

// Count returns the accumulated strength for a signal name.
func (s *Set) Count(name string) float64 {
	if s == nil {
		return 0
	}
	return s.counts[name]
}

// Has reports whether any signal with the given name was emitted.
func (s *Set) Has(name string) bool { return s.Count(name) > 0 }

// Occurrences returns the individual signals emitted under a name, in
// emission order.
func (s *Set) Occurrences(name string) []Signal {
	if s == nil {
		return nil
	}
	return s.files[name]
}

// All returns every signal in emission order.
func (s *Set) All() []Signal {
	if s == nil {
		return nil
	}
	return s.signals
}

// Len returns the total number of signals.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.signals)
}

// ContextType is the coarse business-context classification of a codebase.
type ContextType string

const (
	ContextEcommerce    ContextType = "e-commerce"
	ContextSaaS         ContextType = "saas"
	ContextAPIService   ContextType = "api-service"
	ContextPublicSite   ContextType = "public-site"
	ContextInternalTool ContextType = "internal-tool"

	// ContextUnspecified is the default when no context type accumulates
	// enough evidence to be chosen.
	ContextUnspecified ContextType = "unspecified application"
)

// Audience describes who the application serves.
type Audience string

const (
	AudienceConsumer Audience = "consumer"
	AudienceBusiness Audience = "business"
	AudienceInternal Audience = "internal"
	AudienceUnknown  Audience = "unknown"
)

// Scale estimates the size of the codebase.
type Scale string

const (
	ScaleSmall      Scale = "small"
	ScaleMedium     Scale = "medium"
	ScaleLarge      Scale = "large"
	ScaleEnterprise Scale = "enterprise"
)

// BusinessContext is the derived classification of a snapshot. It is
// recomputed on every run, never persisted.
type BusinessContext struct {
	Type     ContextType `json:"type"`
	Audience Audience    `json:"audience"`
	Scale    Scale       `json:"scale"`
}

// AffectedFile points at evidence for a finding.
type AffectedFile struct {
	Path    string `json:"path"`
	Line    int    `json:"line,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

// Provider is a catalog entry attached to a finding as a candidate solution.
type Provider struct {
	Name               string `json:"name"`
	Company            string `json:"company"`
	URL                string `json:"url"`
	Pricing            string `json:"pricing"`
	BusinessImpact     string `json:"business_impact"`
	ImplementationTime string `json:"implementation_time"`
	Complexity         int    `json:"complexity"`
	ROI                int    `json:"roi"`
}

// Finding is one ranked improvement recommendation. Findings are immutable
// once generated; the ranking score is derived, never stored.
type Finding struct {
	ID            string         `json:"id"`
	Category      string         `json:"category"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	AffectedFiles []AffectedFile `json:"affected_files,omitempty"`
	Impact        float64        `json:"impact"`     // 0-10, business value.
	Effort        float64        `json:"effort"`     // 0-10, implementation cost.
	Confidence    float64        `json:"confidence"` // 0-1.
	Providers     []Provider     `json:"providers,omitempty"`
}

// PriorScan is an optional coarse scan result supplied by an external
// scanner. Its fields are converted into seed signals before detection.
type PriorScan struct {
	Language  string   `json:"language,omitempty"`
	Framework string   `json:"framework,omitempty"`
	Endpoints []string `json:"endpoints,omitempty"`
	AuthFlows []string `json:"auth_flows,omitempty"`
}

// Metadata describes a completed analysis run.
type Metadata struct {
	Strategy        string `json:"strategy"`
	FilesScanned    int    `json:"files_scanned"`
	TotalLines      int    `json:"total_lines"`
	DependencyCount int    `json:"dependency_count"`
	SignalCount     int    `json:"signal_count"`
	Commit          string `json:"commit,omitempty"`
	CommitCount     int    `json:"commit_count,omitempty"`
	Branch          string `json:"branch,omitempty"`
}

// AnalysisResult is the terminal value of one analysis run. It is
// JSON-serializable for downstream rendering and storage layers.
type AnalysisResult struct {
	Context  BusinessContext `json:"context"`
	Findings []Finding       `json:"findings"`
	Metadata Metadata        `json:"metadata"`
}
