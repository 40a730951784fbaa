package transitworld

// Operator is the durable grouping above agencies: it carries curated
// metadata and collects the GTFS agencies matched to it across every source
// feed, so it survives feed replacements that would retire an Agency record.
type Operator struct {
	ID        uint64  `json:"id" validate:"required"`
	OnestopID string  `json:"onestop_id" validate:"required"`
	Name      *string `json:"name"`
	ShortName *string `json:"short_name"`
	Website   *string `json:"website"`
	// Tags holds curated key/value annotations, such as wheelchair
	// accessibility or US National Transit Database IDs.
	Tags map[string]string `json:"tags"`
	// Agencies is a reduced projection of the agencies matched to this
	// operator.
	Agencies []PartialAgency `json:"agencies" validate:"dive"`
}

func (Operator) QueryPath(None) string { return "operators" }
func (Operator) ByIDPath(None) string  { return "operators" }

// PartialOperator is the reduced operator projection embedded in agencies.
type PartialOperator struct {
	OnestopID string            `json:"onestop_id" validate:"required"`
	Name      string            `json:"name" validate:"required"`
	ShortName *string           `json:"short_name"`
	Website   *string           `json:"website"`
	Tags      map[string]string `json:"tags"`
}
