// internal/output/api_conv.go
package output

import (
	"maskprep-core/softmask"
	"maskprep/pkg/api"
)

// ToAPIRecord converts per-record refinement stats into the public wire type.
func ToAPIRecord(name string, st softmask.Stats) api.RecordStatsV1 {
	return api.RecordStatsV1{
		Name:             name,
		Length:           st.Length,
		Genes:            st.Genes,
		MaskedBefore:     st.MaskedBefore,
		GeneUnmasked:     st.GeneUnmasked,
		ShortRunUnmasked: st.ShortRunUnmasked,
		Hardmasked:       st.Hardmasked,
		MaskedAfter:      st.MaskedAfter,
	}
}
