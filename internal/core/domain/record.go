// Package domain contains the core value types of the artifact cache.
package domain

import "encoding/json"

// FingerprintSeparator joins the components of a config fingerprint.
const FingerprintSeparator = "|"

// CacheRecord is the cached state of a single source file. The file's
// absolute path is the lookup key and is not stored inside the record.
//
// A record with no payload fields set is a baseline: it describes what a
// fresh, empty record for the file looks like right now and does not imply
// that any computation has happened.
type CacheRecord struct {
	// ToolVersion identifies the toolchain build that produced the record.
	ToolVersion string `json:"toolVersion"`
	// ConfigFingerprint summarizes all configuration inputs that affect
	// the file's computed results, joined with FingerprintSeparator.
	ConfigFingerprint string `json:"configFingerprint"`
	// SourceDir is the resolved project root the file belongs to.
	SourceDir string `json:"sourceDir"`
	// ModifiedAt is the source file's mtime in UnixNano as observed when
	// the baseline was built.
	ModifiedAt int64 `json:"modifiedAt"`

	// CompileResults maps a compile-mode key to its compiled output.
	// The payload is opaque to the cache.
	CompileResults map[string]json.RawMessage `json:"compileResults,omitempty"`
	// LintResult is present only after a lint pass has run.
	LintResult json.RawMessage `json:"lintResult,omitempty"`
	// DependencyAnalysis is the output of dependency extraction.
	DependencyAnalysis json.RawMessage `json:"dependencyAnalysis,omitempty"`
	// ModuleSignature describes the module's exported shape.
	ModuleSignature json.RawMessage `json:"moduleSignature,omitempty"`
}

// Compatible reports whether two records are interchangeable: one record's
// payload may substitute for the other's. Only the tool version, config
// fingerprint and modification time participate; payload contents never do.
func Compatible(a, b CacheRecord) bool {
	return a.ToolVersion == b.ToolVersion &&
		a.ConfigFingerprint == b.ConfigFingerprint &&
		a.ModifiedAt == b.ModifiedAt
}

// IsBaseline reports whether the record carries no computed payload.
func (r CacheRecord) IsBaseline() bool {
	return len(r.CompileResults) == 0 &&
		r.LintResult == nil &&
		r.DependencyAnalysis == nil &&
		r.ModuleSignature == nil
}

// Payload extracts the record's payload fields as a Partial.
func (r CacheRecord) Payload() Partial {
	return Partial{
		CompileResults:     r.CompileResults,
		LintResult:         r.LintResult,
		DependencyAnalysis: r.DependencyAnalysis,
		ModuleSignature:    r.ModuleSignature,
	}
}

// Partial is a partial payload update for a CacheRecord. A nil field means
// "leave the current value as-is"; a set field replaces the current value
// wholesale. Sub-objects are never merged in place.
type Partial struct {
	CompileResults     map[string]json.RawMessage
	LintResult         json.RawMessage
	DependencyAnalysis json.RawMessage
	ModuleSignature    json.RawMessage
}

// Apply returns a copy of r with the set fields of p overriding the
// corresponding payload fields. Records are value snapshots; r itself is
// never mutated.
func (r CacheRecord) Apply(p Partial) CacheRecord {
	next := r
	if p.CompileResults != nil {
		next.CompileResults = p.CompileResults
	}
	if p.LintResult != nil {
		next.LintResult = p.LintResult
	}
	if p.DependencyAnalysis != nil {
		next.DependencyAnalysis = p.DependencyAnalysis
	}
	if p.ModuleSignature != nil {
		next.ModuleSignature = p.ModuleSignature
	}
	return next
}
