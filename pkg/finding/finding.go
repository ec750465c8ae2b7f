package finding

import "fmt"

// Placeholder location metadata. The upstream report format carries no
// structured location data yet, so every extracted finding gets these
// fixed values until the engine emits real ones.
const (
	PlaceholderChain = "EVM"
	PlaceholderFile  = "contract.sol"
	PlaceholderLine  = 0
)

// Finding is a single vulnerability record extracted from an audit
// report. ID is unique within one extraction pass and deterministic:
// re-extracting identical text yields identical ids.
type Finding struct {
	ID          string   `json:"id"`
	Severity    Severity `json:"severity"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`

	// Fixed placeholders, see Placeholder* constants.
	Chain string `json:"chain"`
	File  string `json:"file"`
	Line  int    `json:"line"`
}

// MakeID builds the deterministic finding id from a severity and the
// zero-based ordinal of the match within that severity's group.
func MakeID(sev Severity, ordinal int) string {
	return fmt.Sprintf("%s-%d", sev.Key(), ordinal)
}

// New constructs a Finding with placeholder location metadata.
func New(sev Severity, ordinal int, title, description string) Finding {
	return Finding{
		ID:          MakeID(sev, ordinal),
		Severity:    sev,
		Title:       title,
		Description: description,
		Chain:       PlaceholderChain,
		File:        PlaceholderFile,
		Line:        PlaceholderLine,
	}
}
