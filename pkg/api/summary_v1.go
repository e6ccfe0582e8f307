// pkg/api/summary_v1.go
package api

// RecordStatsV1 is the stable JSON schema for one refined FASTA record.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordStatsV1 struct {
	Name             string `json:"name"`
	Length           int    `json:"length"`
	Genes            int    `json:"genes"`
	MaskedBefore     int    `json:"masked_before"`
	GeneUnmasked     int    `json:"gene_unmasked"`
	ShortRunUnmasked int    `json:"short_run_unmasked"`
	Hardmasked       int    `json:"hardmasked,omitempty"`
	MaskedAfter      int    `json:"masked_after"`
}

// RunSummaryV1 is the stable JSON schema written by maskprep --json.
type RunSummaryV1 struct {
	Version      string          `json:"version"`
	Genome       string          `json:"genome"`
	GeneFile     string          `json:"gene_file,omitempty"`
	GeneCount    int             `json:"gene_count"`
	MinRunLength int             `json:"min_run_length"`
	Hardmask     bool            `json:"hardmask"`
	Records      int             `json:"records"`
	Totals       RecordStatsV1   `json:"totals"`
	PerRecord    []RecordStatsV1 `json:"per_record"`
}
