package view

// Label tables for enumerated fields. Lookup falls back to the raw value so
// an unknown enum from the server still renders something.

type LabelTable map[string]string

func (t LabelTable) Label(raw string) string {
	if label, ok := t[raw]; ok {
		return label
	}
	return raw
}

var BankAccountTypeLabels = LabelTable{
	"checking": "Compte courant",
	"savings":  "Compte épargne",
	"escrow":   "Compte séquestre",
}

var ContractTypeLabels = LabelTable{
	"transport":   "Transport",
	"warehousing": "Entreposage",
	"maintenance": "Maintenance",
	"framework":   "Contrat-cadre",
}

var ContractStatusLabels = LabelTable{
	"draft":      "Brouillon",
	"active":     "Actif",
	"suspended":  "Suspendu",
	"expired":    "Expiré",
	"terminated": "Résilié",
}

var CostCalculationTypeLabels = LabelTable{
	"order":    "Commande",
	"shipment": "Expédition",
	"segment":  "Segment",
}

var CostCalculationStatusLabels = LabelTable{
	"draft":     "Brouillon",
	"validated": "Validé",
	"invoiced":  "Facturé",
}

var DriverStatusLabels = LabelTable{
	"active":    "Actif",
	"on_leave":  "En congé",
	"suspended": "Suspendu",
	"inactive":  "Inactif",
}

var EquipmentStatusLabels = LabelTable{
	"available":   "Disponible",
	"in_use":      "En service",
	"maintenance": "En maintenance",
	"retired":     "Retiré",
}

var ResourceTypeLabels = LabelTable{
	"vehicle": "Véhicule",
	"driver":  "Conducteur",
}

var AvailabilityStatusLabels = LabelTable{
	"available":   "Disponible",
	"unavailable": "Indisponible",
	"planned":     "Planifié",
}

var SiteTypeLabels = LabelTable{
	"warehouse":           "Entrepôt",
	"depot":               "Dépôt",
	"cross_dock":          "Cross-dock",
	"client_site":         "Site client",
	"distribution_center": "Centre de distribution",
}

var SurchargeTypeLabels = LabelTable{
	"fuel":     "Carburant",
	"toll":     "Péage",
	"handling": "Manutention",
	"security": "Sûreté",
	"customs":  "Douane",
}

var CalculationMethodLabels = LabelTable{
	"percentage":   "Pourcentage",
	"fixed_amount": "Montant fixe",
	"per_unit":     "Par unité",
}

var SurchargeAppliesToLabels = LabelTable{
	"order":    "Commande",
	"shipment": "Expédition",
	"invoice":  "Facture",
}

var VehicleStatusLabels = LabelTable{
	"available":    "Disponible",
	"in_transit":   "En transit",
	"maintenance":  "En maintenance",
	"out_of_order": "Hors service",
}

var ModeOfTransportLabels = LabelTable{
	"road": "Routier",
	"rail": "Ferroviaire",
	"sea":  "Maritime",
	"air":  "Aérien",
}
