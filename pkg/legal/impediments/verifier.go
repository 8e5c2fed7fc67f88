// Package impediments verifies whether a person can contract with the State,
// by role catalog lookup or by kinship degree with a public servant.
package impediments

import (
	"fmt"
	"strings"

	"asesor-legal-be/pkg/legal/catalog"
	"asesor-legal-be/pkg/legal/probe"
	"asesor-legal-be/pkg/utils"
)

// RoleVerdict is the result of checking a role against the catalog.
type RoleVerdict struct {
	Impediment      catalog.Impediment `json:"impediment"`
	Impeded         bool               `json:"impeded"`
	CurrentlyServes bool               `json:"currently_serves"`
	RemainingMonths int                `json:"remaining_months"`
	Reason          string             `json:"reason"`
}

// KinshipVerdict is the result of the kinship-degree check.
type KinshipVerdict struct {
	Kinship     catalog.KinshipDegree `json:"kinship"`
	RelatedRole catalog.Impediment    `json:"related_role"`
	Impeded     bool                  `json:"impeded"`
	Reason      string                `json:"reason"`
}

// VerifyRole checks the role catalog. monthsSinceCease < 0 means the person
// currently serves.
func VerifyRole(roleKey string, monthsSinceCease int) (*RoleVerdict, error) {
	imp, ok := catalog.ImpedimentByRole(roleKey)
	if !ok {
		// Accept free text: try to resolve by display-name substring.
		if resolved, found := resolveRoleFreeText(roleKey); found {
			imp = resolved
		} else {
			return nil, fmt.Errorf("cargo %q no reconocido; claves válidas: %s",
				roleKey, strings.Join(catalog.ImpedimentRoleKeys(), ", "))
		}
	}

	v := &RoleVerdict{Impediment: imp}
	switch {
	case monthsSinceCease < 0:
		v.Impeded = true
		v.CurrentlyServes = true
		v.Reason = "Ejerce actualmente el cargo: impedimento absoluto mientras dure la función."
	case monthsSinceCease < imp.PostTermMonths:
		v.Impeded = true
		v.RemainingMonths = imp.PostTermMonths - monthsSinceCease
		v.Reason = fmt.Sprintf("Cesó hace %d meses; el impedimento se extiende %d meses después del cese.",
			monthsSinceCease, imp.PostTermMonths)
	default:
		v.Reason = fmt.Sprintf("Transcurrieron %d meses desde el cese; el impedimento de %d meses ya venció.",
			monthsSinceCease, imp.PostTermMonths)
	}
	return v, nil
}

func resolveRoleFreeText(text string) (catalog.Impediment, bool) {
	normalized := utils.NormalizeQuery(text)
	for _, key := range catalog.ImpedimentRoleKeys() {
		imp, _ := catalog.ImpedimentByRole(key)
		if strings.Contains(normalized, key) ||
			strings.Contains(normalized, utils.NormalizeQuery(imp.DisplayName)) {
			return imp, true
		}
	}
	return catalog.Impediment{}, false
}

// VerifyKinship applies the degree-≤2 rule (consanguinidad o afinidad) within
// the scope where the related public servant has decision power.
func VerifyKinship(kinshipTerm, relatedRoleKey string) (*KinshipVerdict, error) {
	k, ok := catalog.KinshipByTerm(utils.NormalizeQuery(kinshipTerm))
	if !ok {
		return nil, fmt.Errorf("parentesco %q no reconocido", kinshipTerm)
	}

	role, ok := catalog.ImpedimentByRole(relatedRoleKey)
	if !ok {
		if resolved, found := resolveRoleFreeText(relatedRoleKey); found {
			role = resolved
		} else {
			return nil, fmt.Errorf("cargo %q no reconocido; claves válidas: %s",
				relatedRoleKey, strings.Join(catalog.ImpedimentRoleKeys(), ", "))
		}
	}

	v := &KinshipVerdict{Kinship: k, RelatedRole: role}
	if k.Degree <= 2 {
		v.Impeded = true
		v.Reason = fmt.Sprintf(
			"%s es pariente en %d° grado de %s; el impedimento alcanza hasta el segundo grado (Art. 11 inc. k) en el ámbito: %s.",
			k.Term, k.Degree, role.DisplayName, role.Scope)
	} else {
		v.Reason = fmt.Sprintf("%s es pariente en %d° grado: fuera del alcance del impedimento (hasta 2° grado).",
			k.Term, k.Degree)
	}
	return v, nil
}

func lineLabel(affinity bool) string {
	if affinity {
		return "afinidad"
	}
	return "consanguinidad"
}

// FormatRoleMarkdown renders a role verdict.
func FormatRoleMarkdown(v *RoleVerdict) string {
	var b strings.Builder
	b.WriteString("🚫 **Verificación de impedimento**\n\n")
	fmt.Fprintf(&b, "- **Cargo:** %s\n", v.Impediment.DisplayName)
	fmt.Fprintf(&b, "- **Base legal:** %s\n", v.Impediment.Citation)
	fmt.Fprintf(&b, "- **Ámbito:** %s\n\n", v.Impediment.Scope)
	if v.Impeded {
		b.WriteString("**Resultado: IMPEDIDO de contratar con el Estado.**\n\n")
		if v.RemainingMonths > 0 {
			fmt.Fprintf(&b, "Meses restantes de impedimento: **%d**.\n\n", v.RemainingMonths)
		}
	} else {
		b.WriteString("**Resultado: NO impedido.**\n\n")
	}
	b.WriteString(v.Reason + "\n")
	return b.String()
}

// FormatKinshipMarkdown renders a kinship verdict.
func FormatKinshipMarkdown(v *KinshipVerdict) string {
	var b strings.Builder
	b.WriteString("👪 **Verificación de impedimento por parentesco**\n\n")
	fmt.Fprintf(&b, "- **Parentesco:** %s (%d° grado de %s)\n",
		v.Kinship.Term, v.Kinship.Degree, lineLabel(v.Kinship.Affinity))
	fmt.Fprintf(&b, "- **Cargo relacionado:** %s\n", v.RelatedRole.DisplayName)
	b.WriteString("- **Base legal:** Art. 11 inc. k\n\n")
	if v.Impeded {
		b.WriteString("**Resultado: IMPEDIDO** en el ámbito donde el servidor tiene poder de decisión.\n\n")
	} else {
		b.WriteString("**Resultado: NO impedido.**\n\n")
	}
	b.WriteString(v.Reason + "\n")
	return b.String()
}

var (
	triggerTokens = []string{
		"impedimento", "impedido", "puede contratar", "puede vender al estado",
		"puede participar", "esta impedida", "esta impedido",
	}
	bypassTokens = []string{
		"que es", "lista de impedimentos", "cuales son los impedimentos", "articulo", "explica",
	}
	kinshipHints = []string{
		"conyuge", "esposo", "esposa", "conviviente", "padre", "madre", "hijo", "hija",
		"suegro", "suegra", "yerno", "nuera", "hermano", "hermana", "abuelo", "abuela",
		"nieto", "nieta", "cunado", "cunada", "tio", "tia", "sobrino", "sobrina", "primo", "prima",
	}
)

// NewProbe builds the router probe for impediment checks.
func NewProbe() probe.Probe {
	return probe.Func{ProbeName: "impediments", DetectFn: detect}
}

func detect(message string) (string, bool) {
	normalized := probe.Normalize(message)

	if probe.Bypassed(normalized, bypassTokens) {
		return "", false
	}
	if !probe.ContainsAny(normalized, triggerTokens...) {
		return "", false
	}

	// Kinship path first: "¿el cuñado de un alcalde puede contratar?"
	for _, term := range kinshipHints {
		if !containsToken(normalized, term) {
			continue
		}
		if role, found := resolveRoleFreeText(normalized); found {
			v, err := VerifyKinship(term, role.RoleKey)
			if err != nil {
				return "⚠️ " + err.Error(), true
			}
			return FormatKinshipMarkdown(v), true
		}
	}

	// Role path: "un regidor que cesó hace 6 meses".
	if role, found := resolveRoleFreeText(normalized); found {
		months := -1
		if strings.Contains(normalized, "ceso hace") || strings.Contains(normalized, "dejo el cargo hace") {
			if amounts := probe.ExtractAmounts(message); len(amounts) > 0 {
				months = int(amounts[0])
				if strings.Contains(normalized, "año") || strings.Contains(normalized, "anos") {
					months *= 12
				}
			}
		}
		v, err := VerifyRole(role.RoleKey, months)
		if err != nil {
			return "⚠️ " + err.Error(), true
		}
		return FormatRoleMarkdown(v), true
	}

	return "", false
}

func containsToken(normalized, token string) bool {
	return strings.Contains(" "+normalized+" ", " "+token+" ")
}
