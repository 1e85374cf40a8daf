package catalog

import "ecolife/internal/models"

// Finding types an inspector may record, per equipment type
var nonConformitiesByType = map[models.EquipmentType][]string{
	models.EquipmentTypeConveyor: {
		"Lipsa curatare sau curatare insuficienta",
		"Lipsa gresare",
		"Zgomote suspecte",
		"Stare neconforma Tamburi",
		"Stare neconforma Role",
		"Stare neconforma covor de cauciuc",
		"Stare neconforma Razuri",
		"Stare neconforma fasie cauciuc etansare laterala covor cauciuc",
		"Stare neconforma Racleti",
		"Uzura inele cauciuc suport covor",
		"Dereglare pozitie covor pe tamburi",
		"Integritate dispozitive si sisteme de siguranta",
		"Neconformitati grup antrenare (motoreductor)",
	},
	models.EquipmentTypeOpticalSorter: {
		"Lipsa curatare sau curatare insuficienta",
		"Lipsa gresare lagare",
		"Zgomote suspecte",
		"Stare neconforma Tamburi",
		"Stare neconforma duze de suflare",
		"Stare neconforma covor de cauciuc",
		"Stare neconforma scaner",
		"Stare neconforma fasie cauciuc etansare laterala covor cauciuc",
		"Stare neconforma instalatie aer",
		"Uzura inele suport covor",
		"Dereglare pozitie covor pe tamburi",
		"Integritate dispozitive si sisteme de siguranta",
		"Neconformitati grup antrenare (motoreductor)",
	},
	models.EquipmentTypeBallisticSeparator: {
		"Lipsa curatare sau curatare insuficienta",
		"Lipsa gresare lagare",
		"Zgomote suspecte",
		"Stare neconforma padele",
		"Stare neconforma strangere site padele",
		"Integritate dispozitive si finctionare sisteme de siguranta",
		"Neconformitati grup antrenare (motoreductor)",
		"Neconformitati integritate structura",
		"Neconformitati functionare instalatie electrica",
	},
	models.EquipmentTypeNonFerrousSeparator: {
		"Lipsa curatare sau curatare insuficienta",
		"Lipsa gresare lagare",
		"Zgomote suspecte",
		"Stare neconforma covor de cauciuc",
		"Neconformitati functionare instalatie electrica",
		"Neconformitati grup antrenare (motoreductor)",
		"Necorelare turatie magnet",
		"Performanta necorespunzatoare de sortare",
	},
	models.EquipmentTypeMetalSeparator: {
		"Lipsa curatare sau curatare insuficienta",
		"Lipsa gresare lagare",
		"Zgomote suspecte",
		"Stare neconforma covor de cauciuc",
		"Neconformitati functionare instalatie electrica",
		"Neconformitati grup antrenare (motoreductor)",
		"Neconformitate pozitie magnet",
		"Performanta necorespunzatoare de sortare",
		"Integritate dispozitive si stare de functionare sisteme de siguranta",
		"Dereglare pozitie covor pe tamburi",
	},
	models.EquipmentTypeRotaryScreen: {
		"Lipsa curatare sau curatare insuficienta",
		"Lipsa gresare lagare",
		"Zgomote suspecte",
		"Stare neconforma site si de fixare",
		"Neconformitati functionare instalatie electrica",
		"Neconformitati grup antrenare (motoreductor)",
		"Integritate dispozitive si stare de functionare sisteme de siguranta",
		"Neconformitati integritate structura",
	},
	models.EquipmentTypeBagOpener: {
		"Lipsa curatare sau curatare insuficienta",
		"Lipsa gresare lagare",
		"Zgomote suspecte",
		"Stare neconforma cutite de dezmembrare",
		"Neconformitati functionare instalatie electrica",
		"Neconformitati grup antrenare (motoreductor)",
		"Integritate dispozitive si stare de functionare sisteme de siguranta",
		"Neconformitati integritate structura",
		"Neconformitati functionare instalatie hidraulica",
	},
	models.EquipmentTypeBaler: {
		"Lipsa curatare sau curatare insuficienta",
		"Lipsa gresare lagare",
		"Zgomote suspecte",
		"Stare neconforma cutit contracutit placa de presare",
		"Stare neconforma legatori",
		"Neconformitati ace de legare",
		"Neconformitati functionare instalatie electrica",
		"Neconformitati grup antrenare (motoreductor)",
		"Integritate dispozitive si stare de functionare sisteme de siguranta",
		"Neconformitati integritate structura",
		"Neconformitati functionare instalatie hidraulica",
	},
	models.EquipmentTypeAirCompressor: {
		"Lipsa curatare filtre aer",
		"Integritate dispozitive si stare de functionare sisteme de siguranta",
		"Neconformitati integritate structura",
		"Neconformitati functionare instalatie hidraulica",
		"Neconformitati functionare instalatie pneumatica",
	},
	models.EquipmentTypeUnknown: {
		"Neconformitate nespecificată",
	},
}
