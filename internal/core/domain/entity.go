package domain

import (
	"slices"

	"go.trai.ch/zerr"
)

// EntityCode identifies one selectable organizational unit in the target
// application's entity checklist. It is opaque: only equality matters.
type EntityCode string

// Catalog is the ordered list of entities known to the operator together with
// the subset selected by default.
type Catalog struct {
	All      []EntityCode
	Defaults []EntityCode
}

// DefaultCatalog returns the entity catalog shipped with stravex.
func DefaultCatalog() Catalog {
	all := []EntityCode{
		"D341_HSO_HGM",
		"D342_HSO_HGMD",
		"CC41_HSO_HMIN",
		"C741_HSO_HMSH",
		"AN41_HSO_HMSP",
		"D941_HSO_HMSZ",
		"J34V_HSO_HOME",
		"EM41_HSO_HSEU",
		"A441_HSO_HSOT",
		"WB41_HSOU",
		"D841_HSO_HSOK",
		"CY41_HSO_INNOVIA",
		"WM41_HSO_MID LAB INC",
		"GG41_HSO_FRITZ RUCK",
		"GH41_HSO_EOS",
	}
	return Catalog{
		All:      all,
		Defaults: slices.Clone(all[:11]),
	}
}

// Contains reports whether code is part of the catalog.
func (c Catalog) Contains(code EntityCode) bool {
	return slices.Contains(c.All, code)
}

// Validate checks that the catalog is non-empty, free of duplicates, and that
// every default is a catalog member.
func (c Catalog) Validate() error {
	if len(c.All) == 0 {
		return zerr.With(ErrInvalidConfig, "reason", "entity catalog is empty")
	}

	seen := make(map[EntityCode]struct{}, len(c.All))
	for _, code := range c.All {
		if _, ok := seen[code]; ok {
			return zerr.With(ErrDuplicateEntity, "entity", string(code))
		}
		seen[code] = struct{}{}
	}

	for _, code := range c.Defaults {
		if _, ok := seen[code]; !ok {
			return zerr.With(ErrUnknownEntity, "entity", string(code))
		}
	}
	return nil
}

// Plan is the fully derived input of one automation run.
type Plan struct {
	Period      Period
	Include     []EntityCode
	Exclude     []EntityCode
	SelectBatch int
}

// Iterations is the number of result rows to export: one per kept entity.
func (p Plan) Iterations() int {
	return len(p.Include)
}

// ExcludeStrings returns the exclusions as the literal search strings typed
// into the target application.
func (p Plan) ExcludeStrings() []string {
	out := make([]string, len(p.Exclude))
	for i, code := range p.Exclude {
		out[i] = string(code)
	}
	return out
}

// NewPlan derives a Plan from the operator's selection. An empty include list
// keeps the catalog defaults. Exclusions follow catalog order.
func NewPlan(c Catalog, period string, include []string, selectBatch int) (Plan, error) {
	p, err := ParsePeriod(period)
	if err != nil {
		return Plan{}, err
	}

	if selectBatch < 0 {
		return Plan{}, zerr.With(ErrInvalidBatchSize, "select_batch", selectBatch)
	}

	keep := make([]EntityCode, 0, len(include))
	if len(include) == 0 {
		keep = append(keep, c.Defaults...)
	} else {
		for _, raw := range include {
			code := EntityCode(raw)
			if !c.Contains(code) {
				return Plan{}, zerr.With(ErrUnknownEntity, "entity", raw)
			}
			if !slices.Contains(keep, code) {
				keep = append(keep, code)
			}
		}
	}

	if len(keep) == 0 {
		return Plan{}, ErrEmptySelection
	}

	exclude := make([]EntityCode, 0, len(c.All))
	for _, code := range c.All {
		if !slices.Contains(keep, code) {
			exclude = append(exclude, code)
		}
	}

	return Plan{
		Period:      p,
		Include:     keep,
		Exclude:     exclude,
		SelectBatch: selectBatch,
	}, nil
}
