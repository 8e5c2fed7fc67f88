package catalog

import "sort"

// Impediment is a fixed-catalog entry describing who cannot contract with the
// State and for how long after leaving office (Art. 11 de la Ley 32069).
type Impediment struct {
	RoleKey        string
	DisplayName    string
	PostTermMonths int    // months of impediment after leaving office; 0 = only while serving
	Scope          string // territorial or functional reach of the impediment
	Citation       string
}

var impediments = map[string]Impediment{
	"presidente": {
		RoleKey: "presidente", DisplayName: "Presidente de la República",
		PostTermMonths: 12, Scope: "Todo proceso de contratación a nivel nacional",
		Citation: "Art. 11 inc. a",
	},
	"vicepresidente": {
		RoleKey: "vicepresidente", DisplayName: "Vicepresidentes de la República",
		PostTermMonths: 12, Scope: "Todo proceso de contratación a nivel nacional",
		Citation: "Art. 11 inc. a",
	},
	"congresista": {
		RoleKey: "congresista", DisplayName: "Congresistas de la República",
		PostTermMonths: 12, Scope: "Todo proceso de contratación a nivel nacional",
		Citation: "Art. 11 inc. b",
	},
	"ministro": {
		RoleKey: "ministro", DisplayName: "Ministros y Viceministros de Estado",
		PostTermMonths: 12, Scope: "Todo proceso de contratación a nivel nacional",
		Citation: "Art. 11 inc. b",
	},
	"juez_supremo": {
		RoleKey: "juez_supremo", DisplayName: "Jueces Supremos y Fiscales Supremos",
		PostTermMonths: 12, Scope: "Todo proceso de contratación a nivel nacional",
		Citation: "Art. 11 inc. c",
	},
	"gobernador": {
		RoleKey: "gobernador", DisplayName: "Gobernadores y Vicegobernadores Regionales",
		PostTermMonths: 12, Scope: "Ámbito regional donde ejerció el cargo",
		Citation: "Art. 11 inc. d",
	},
	"consejero_regional": {
		RoleKey: "consejero_regional", DisplayName: "Consejeros Regionales",
		PostTermMonths: 12, Scope: "Ámbito regional donde ejerció el cargo",
		Citation: "Art. 11 inc. d",
	},
	"alcalde": {
		RoleKey: "alcalde", DisplayName: "Alcaldes",
		PostTermMonths: 12, Scope: "Ámbito de la entidad donde ejerció el cargo",
		Citation: "Art. 11 inc. e",
	},
	"regidor": {
		RoleKey: "regidor", DisplayName: "Regidores Municipales",
		PostTermMonths: 12, Scope: "Ámbito de la entidad donde ejerció el cargo",
		Citation: "Art. 11 inc. e",
	},
	"titular_entidad": {
		RoleKey: "titular_entidad", DisplayName: "Titulares de Entidades y organismos públicos",
		PostTermMonths: 12, Scope: "Entidad donde ejerció el cargo",
		Citation: "Art. 11 inc. f",
	},
	"funcionario_oec": {
		RoleKey: "funcionario_oec", DisplayName: "Servidores del órgano encargado de las contrataciones",
		PostTermMonths: 12, Scope: "Entidad donde interviene o intervino en el proceso",
		Citation: "Art. 11 inc. g",
	},
	"miembro_comite": {
		RoleKey: "miembro_comite", DisplayName: "Integrantes del comité de selección",
		PostTermMonths: 12, Scope: "Procedimiento en el que intervienen",
		Citation: "Art. 11 inc. g",
	},
}

// ImpedimentByRole returns the catalog entry for a role key.
func ImpedimentByRole(key string) (Impediment, bool) {
	imp, ok := impediments[key]
	return imp, ok
}

// ImpedimentRoleKeys lists valid role keys in sorted order.
func ImpedimentRoleKeys() []string {
	keys := make([]string, 0, len(impediments))
	for k := range impediments {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// KinshipDegree maps Spanish kinship terms to their degree and line.
// Degree ≤ 2 (consanguinity or affinity) is impeded under Art. 11 inc. k.
type KinshipDegree struct {
	Term     string
	Degree   int
	Affinity bool // true = afinidad, false = consanguinidad
}

var kinshipTerms = map[string]KinshipDegree{
	"conyuge":     {Term: "cónyuge", Degree: 0, Affinity: true},
	"esposo":      {Term: "cónyuge", Degree: 0, Affinity: true},
	"esposa":      {Term: "cónyuge", Degree: 0, Affinity: true},
	"conviviente": {Term: "conviviente", Degree: 0, Affinity: true},
	"padre":       {Term: "padre", Degree: 1, Affinity: false},
	"madre":       {Term: "madre", Degree: 1, Affinity: false},
	"hijo":        {Term: "hijo", Degree: 1, Affinity: false},
	"hija":        {Term: "hija", Degree: 1, Affinity: false},
	"suegro":      {Term: "suegro", Degree: 1, Affinity: true},
	"suegra":      {Term: "suegra", Degree: 1, Affinity: true},
	"yerno":       {Term: "yerno", Degree: 1, Affinity: true},
	"nuera":       {Term: "nuera", Degree: 1, Affinity: true},
	"hermano":     {Term: "hermano", Degree: 2, Affinity: false},
	"hermana":     {Term: "hermana", Degree: 2, Affinity: false},
	"abuelo":      {Term: "abuelo", Degree: 2, Affinity: false},
	"abuela":      {Term: "abuela", Degree: 2, Affinity: false},
	"nieto":       {Term: "nieto", Degree: 2, Affinity: false},
	"nieta":       {Term: "nieta", Degree: 2, Affinity: false},
	"cunado":      {Term: "cuñado", Degree: 2, Affinity: true},
	"cunada":      {Term: "cuñada", Degree: 2, Affinity: true},
	"tio":         {Term: "tío", Degree: 3, Affinity: false},
	"tia":         {Term: "tía", Degree: 3, Affinity: false},
	"sobrino":     {Term: "sobrino", Degree: 3, Affinity: false},
	"sobrina":     {Term: "sobrina", Degree: 3, Affinity: false},
	"primo":       {Term: "primo", Degree: 4, Affinity: false},
	"prima":       {Term: "prima", Degree: 4, Affinity: false},
}

// KinshipByTerm looks up a kinship term already normalized (lowercase, no accents).
func KinshipByTerm(term string) (KinshipDegree, bool) {
	k, ok := kinshipTerms[term]
	return k, ok
}
