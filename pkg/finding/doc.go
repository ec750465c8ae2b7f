// Package finding provides the shared vulnerability finding types
// used across the auditlens extraction, view, and output packages.
//
// A Finding is one severity-tagged record extracted from a free-form
// audit report. Findings are immutable once produced: the extractor
// builds a complete slice per pass and nothing downstream mutates it.
package finding
