// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"fmt"

	"github.com/danielhkuo/quickly-poll/models"
)

type positioned[T any] struct {
	Edit     T
	Position int
}

// optionPlan is the set of writes that turns the stored options into the edited list
type optionPlan struct {
	Inserts []positioned[models.NewOption]
	Updates []positioned[models.ExistingOption]
	Deletes []string
}

// Kept is the number of options left after the plan is applied
func (p optionPlan) Kept() int {
	return len(p.Inserts) + len(p.Updates)
}

// planReconcile diffs the stored option IDs against an edited option list.
// Stored options that the list does not mention are deleted.
func planReconcile(stored []string, edits []models.OptionEdit) (optionPlan, error) {
	var plan optionPlan

	storedSet := make(map[string]bool, len(stored))
	for _, id := range stored {
		storedSet[id] = true
	}

	seen := make(map[string]bool)
	removed := make(map[string]bool)
	position := 0

	for _, edit := range edits {
		switch e := edit.(type) {
		case models.NewOption:
			plan.Inserts = append(plan.Inserts, positioned[models.NewOption]{Edit: e, Position: position})
			position++

		case models.ExistingOption:
			if !storedSet[e.ID] {
				return optionPlan{}, fmt.Errorf("%w: option %s does not belong to this poll", ErrInvalidReference, e.ID)
			}
			if seen[e.ID] || removed[e.ID] {
				return optionPlan{}, fmt.Errorf("%w: option %s listed more than once", ErrValidation, e.ID)
			}
			seen[e.ID] = true
			plan.Updates = append(plan.Updates, positioned[models.ExistingOption]{Edit: e, Position: position})
			position++

		case models.RemovedOption:
			if !storedSet[e.ID] {
				return optionPlan{}, fmt.Errorf("%w: option %s does not belong to this poll", ErrInvalidReference, e.ID)
			}
			if seen[e.ID] || removed[e.ID] {
				return optionPlan{}, fmt.Errorf("%w: option %s listed more than once", ErrValidation, e.ID)
			}
			removed[e.ID] = true

		default:
			return optionPlan{}, fmt.Errorf("%w: unknown option edit %T", ErrValidation, edit)
		}
	}

	for _, id := range stored {
		if !seen[id] {
			plan.Deletes = append(plan.Deletes, id)
		}
	}

	return plan, nil
}
