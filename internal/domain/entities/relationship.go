package entities

// Relationship represents a directed role edge from a person to the company
// they were listed under. Role is nil when the contact field carried no role;
// it is never the empty string in output. EffectiveDate is not present in the
// source filing and is always null.
type Relationship struct {
	SourceEntityID string  `json:"sourceEntityId"`
	TargetEntityID string  `json:"targetEntityId"`
	Role           *string `json:"role"`
	EffectiveDate  *string `json:"effectiveDate"`
}
