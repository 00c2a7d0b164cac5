package entities

// StatusMetadata is the presentation bundle of a status. The dispute core never reads it.
type StatusMetadata struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var statusMetadata = map[BidStatus]StatusMetadata{
	BidStatusEmAnalise:         {Label: "Em análise", Color: "gray"},
	BidStatusAguardandoDisputa: {Label: "Aguardando disputa", Color: "amber"},
	BidStatusEmDisputa:         {Label: "Em disputa", Color: "blue"},
	BidStatusDisputaConcluida:  {Label: "Disputa concluída", Color: "indigo"},
	BidStatusHomologada:        {Label: "Homologada", Color: "green"},
	BidStatusCancelada:         {Label: "Cancelada", Color: "red"},
}

// MetadataFor returns the label/color for s; unknown statuses get their raw value as label.
func MetadataFor(s BidStatus) StatusMetadata {
	if m, ok := statusMetadata[s]; ok {
		return m
	}
	return StatusMetadata{Label: string(s), Color: "gray"}
}
