// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Extraction - these keys control where catalog pages are fetched from and how playlists are walked.
const (
	ExtractorBaseURL    = "extractor.base_url"
	PlaylistConcurrency = "playlist.concurrency"
)

// Network - these keys tune the shared HTTP client used by every fetch.
const (
	NetworkTimeout        = "network.timeout"
	NetworkUserAgent      = "network.user_agent"
	NetworkTLSFingerprint = "network.tls_fingerprint"
)

// Output - these keys shape what the extract command prints.
const (
	OutputPretty = "output.pretty"
)

// History - these keys configure the record of completed extractions.
const (
	HistorySave = "history.save"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern terminal presentation.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
