package stub

// NewStore seeds every collection with the development datasets. The
// shapes follow the REST contract the real backend will implement.
func NewStore() *Store {
	return &Store{collections: map[string]*collection{
		"bank-accounts": {
			nextID:     43,
			searchKeys: []string{"account_name", "bank_name", "account_number"},
			filterKeys: []string{"account_type", "currency"},
			items: []record{
				{
					"id": int64(40), "account_name": "Compte Opérations", "bank_name": "Société Générale",
					"account_number": "FR7630003000501234567890143", "iban": "FR7630003000501234567890143",
					"swift_bic": "SOGEFRPP", "currency": "EUR", "account_type": "checking",
					"current_balance": 84210.37, "notes": "Compte de règlement transporteurs",
				},
				{
					"id": int64(41), "account_name": "Réserve Carburant", "bank_name": "Crédit Agricole",
					"account_number": "FR7618206000011234567890125", "currency": "EUR",
					"account_type": "savings", "current_balance": 12500.0,
				},
				{
					"id": int64(42), "account_name": "Compte Principal", "bank_name": "BNP",
					"account_number": "001", "currency": "EUR", "account_type": "checking",
					"current_balance": 1500.5,
				},
			},
		},
		"contracts": {
			nextID:     4,
			searchKeys: []string{"reference", "title", "partner_name"},
			filterKeys: []string{"type", "status"},
			items: []record{
				{
					"id": int64(1), "reference": "CTR-2026-001", "title": "Transport régional Île-de-France",
					"type": "transport", "start_date": "2026-01-01", "end_date": "2026-12-31",
					"status": "active", "partner_id": int64(12), "partner_name": "Transports Moreau",
					"value": 250000.0, "currency": "EUR",
				},
				{
					"id": int64(2), "reference": "CTR-2026-002", "title": "Entreposage Lyon Sud",
					"type": "warehousing", "start_date": "2026-03-01", "end_date": "2027-02-28",
					"status": "draft", "partner_id": int64(7), "partner_name": "Logistique Rhône",
					"value": 98000.0, "currency": "EUR", "notes": "En attente de signature",
				},
				{
					"id": int64(3), "reference": "CTR-2025-017", "title": "Maintenance flotte poids lourds",
					"type": "maintenance", "start_date": "2025-06-01", "end_date": "2026-05-31",
					"status": "expired", "partner_id": int64(4), "partner_name": "Garage Central",
					"value": 45000.0, "currency": "EUR",
				},
			},
		},
		"cost-calculations": {
			nextID:     4,
			searchKeys: []string{"name"},
			filterKeys: []string{"type", "status"},
			items: []record{
				{
					"id": int64(1), "name": "Commande Paris-Marseille", "type": "order",
					"total_cost": 1840.5, "currency": "EUR", "calculation_date": "2026-07-12",
					"status": "validated",
					"details": record{"base_cost": 1500.0, "surcharges_total": 225.5, "taxes_total": 115.0},
				},
				{
					"id": int64(2), "name": "Expédition groupage Nord", "type": "shipment",
					"total_cost": 642.0, "currency": "EUR", "calculation_date": "2026-07-20",
					"status": "draft",
				},
				{
					"id": int64(3), "name": "Segment Lille-Bruxelles", "type": "segment",
					"total_cost": 310.75, "currency": "EUR", "calculation_date": "2026-08-02",
					"status": "invoiced", "notes": "Facturé avec la commande 2026-0812",
				},
			},
		},
		"drivers": {
			nextID:     4,
			searchKeys: []string{"first_name", "last_name", "license_number"},
			filterKeys: []string{"status"},
			items: []record{
				{
					"id": int64(1), "first_name": "Julien", "last_name": "Berger",
					"license_number": "75123456789", "license_type": "CE",
					"license_expiry": "2027-04-18", "status": "active",
					"partner_id": int64(12), "partner_name": "Transports Moreau",
				},
				{
					"id": int64(2), "first_name": "Sophie", "last_name": "Lenoir",
					"license_number": "69987654321", "license_type": "C1",
					"license_expiry": "2026-11-02", "status": "on_leave",
					"partner_id": int64(7),
				},
				{
					"id": int64(3), "first_name": "Karim", "last_name": "Haddad",
					"license_number": "13456789012", "license_type": "CE",
					"license_expiry": "2028-01-25", "status": "active",
					"partner_id": int64(12), "partner_name": "Transports Moreau",
				},
			},
		},
		"equipments": {
			nextID:     4,
			searchKeys: []string{"identification", "type", "location"},
			filterKeys: []string{"type", "status"},
			items: []record{
				{
					"id": int64(1), "identification": "REM-0142", "type": "Remorque frigorifique",
					"status": "available", "location": "Dépôt Rungis",
					"lastMaintenanceDate": "2026-05-10", "nextMaintenanceDate": "2026-11-10",
					"characteristics": "33 palettes, -25°C",
					"financialInfo":   record{"purchaseDate": "2022-09-01", "purchasePrice": 68000.0, "currentValue": 41000.0},
					"createdAt":       "2022-09-01T09:00:00Z", "updatedAt": "2026-05-10T14:30:00Z",
				},
				{
					"id": int64(2), "identification": "CHR-0077", "type": "Chariot élévateur",
					"status": "maintenance", "location": "Entrepôt Lyon Sud",
					"lastMaintenanceDate": "2026-08-01",
					"createdAt":           "2023-02-15T08:00:00Z", "updatedAt": "2026-08-01T10:00:00Z",
				},
				{
					"id": int64(3), "identification": "CNT-0910", "type": "Conteneur 40 pieds",
					"status":    "in_use",
					"createdAt": "2024-06-20T11:00:00Z", "updatedAt": "2026-07-28T16:45:00Z",
				},
			},
		},
		"rates": {
			nextID:     3,
			searchKeys: []string{"rate_name", "rate_type"},
			filterKeys: []string{"rate_type", "mode_of_transport"},
			items: []record{
				{
					"id": int64(1), "rate_name": "Palette France métropolitaine", "rate_type": "per_pallet",
					"base_rate": 42.5, "currency": "EUR", "min_weight": 0.0, "max_weight": 800.0,
					"origin_country": "France", "destination_country": "France",
					"mode_of_transport": "road", "valid_from": "2026-01-01", "valid_to": "2026-12-31",
				},
				{
					"id": int64(2), "rate_name": "Groupage Benelux", "rate_type": "per_100kg",
					"base_rate": 18.9, "currency": "EUR", "min_distance": 150.0, "max_distance": 600.0,
					"origin_country": "France", "destination_country": "Belgique",
					"mode_of_transport": "road", "valid_from": "2026-01-01",
					"notes": "Hors surcharge carburant",
				},
			},
		},
		"availabilities": {
			nextID:     3,
			searchKeys: []string{"notes"},
			filterKeys: []string{"resource_type", "status"},
			items: []record{
				{
					"id": int64(1), "resource_type": "vehicle", "resource_id": int64(1),
					"start_time": "2026-09-01T06:00:00Z", "end_time": "2026-09-01T18:00:00Z",
					"status": "planned",
				},
				{
					"id": int64(2), "resource_type": "driver", "resource_id": int64(2),
					"start_time": "2026-09-03T00:00:00Z", "end_time": "2026-09-17T00:00:00Z",
					"status": "unavailable", "notes": "Congés annuels",
				},
			},
		},
		"sites": {
			nextID:     4,
			searchKeys: []string{"name", "city", "address"},
			filterKeys: []string{"type", "country"},
			items: []record{
				{
					"id": int64(1), "name": "Entrepôt Rungis", "type": "warehouse",
					"address": "3 rue de la Tour", "city": "Rungis", "country": "France",
					"partner_id": int64(12), "partner_name": "Transports Moreau",
				},
				{
					"id": int64(2), "name": "Dépôt Lyon Sud", "type": "depot",
					"address": "18 avenue Berthelot", "city": "Lyon", "country": "France",
					"partner_id": int64(7), "partner_name": "Logistique Rhône",
				},
				{
					"id": int64(3), "name": "Plateforme Anvers", "type": "cross_dock",
					"address": "Noorderlaan 95", "city": "Anvers", "country": "Belgique",
					"partner_id": int64(21), "partner_name": "BeNeLux Freight",
				},
			},
		},
		"surcharges": {
			nextID:     4,
			searchKeys: []string{"name"},
			filterKeys: []string{"type", "applies_to"},
			items: []record{
				{
					"id": int64(1), "name": "Surcharge carburant", "type": "fuel",
					"calculation_method": "percentage", "value": 15.0, "currency": "EUR",
					"applies_to": "shipment", "valid_from": "2026-01-01", "valid_to": "2026-12-31",
				},
				{
					"id": int64(2), "name": "Péage tunnel", "type": "toll",
					"calculation_method": "fixed_amount", "value": 10.0, "currency": "EUR",
					"applies_to": "order",
				},
				{
					"id": int64(3), "name": "Manutention palette", "type": "handling",
					"calculation_method": "per_unit", "value": 3.5, "currency": "EUR",
					"applies_to": "invoice", "notes": "Par palette manutentionnée",
				},
			},
		},
		"vehicles": {
			nextID:     4,
			searchKeys: []string{"registration_number", "brand", "model", "location"},
			filterKeys: []string{"type", "status"},
			items: []record{
				{
					"id": int64(1), "registration_number": "AB-123-CD", "type": "Tracteur routier",
					"brand": "Renault", "model": "T High", "year": int64(2023), "status": "available",
					"capacity_weight": 44000.0, "fuel_type": "Diesel", "emissions_class": "Euro 6",
					"partner": "Transports Moreau", "location": "Dépôt Rungis",
					"latitude": 48.7485, "longitude": 2.3524,
				},
				{
					"id": int64(2), "registration_number": "EF-456-GH", "type": "Porteur 19t",
					"brand": "Iveco", "model": "Eurocargo", "year": int64(2021), "status": "in_transit",
					"capacity_volume": 45.0, "capacity_weight": 19000.0, "fuel_type": "Diesel",
					"location": "A6 - aire de Mâcon",
				},
				{
					"id": int64(3), "registration_number": "IJ-789-KL", "type": "Utilitaire",
					"brand": "Renault", "model": "Master", "status": "maintenance",
					"health": "Embrayage à remplacer", "nextMaintenance": "2026-09-05",
					"alerts": []any{"Contrôle technique dans 30 jours"},
				},
			},
		},
	}}
}
