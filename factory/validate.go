package factory

import "fmt"

// Validate checks a decoded Workflow for internal consistency — duplicate
// IDs, dangling references — before compilation ever touches a matrix.
func Validate(wf *Workflow) error {
	placeIDs := make(map[string]struct{})
	taskIDs := make(map[string]struct{})
	gatewayIDs := make(map[string]struct{})

	for _, r := range wf.Resources {
		if r.ID == "" {
			return fmt.Errorf("%w: resource id cannot be empty", ErrInvalidDocument)
		}
		if _, exists := placeIDs[r.ID]; exists {
			return fmt.Errorf("%w: duplicate place id %q", ErrInvalidDocument, r.ID)
		}
		placeIDs[r.ID] = struct{}{}
	}

	for _, c := range wf.Channels {
		if c.ID == "" {
			return fmt.Errorf("%w: channel id cannot be empty", ErrInvalidDocument)
		}
		if _, exists := placeIDs[c.ID]; exists {
			return fmt.Errorf("%w: duplicate place id %q", ErrInvalidDocument, c.ID)
		}
		placeIDs[c.ID] = struct{}{}
	}

	checkPlaceRefs := func(taskID string, refs []string, role string) error {
		for _, ref := range refs {
			if _, ok := placeIDs[ref]; !ok {
				return fmt.Errorf("%w: task %s references missing %s place %q", ErrInvalidDocument, taskID, role, ref)
			}
		}
		return nil
	}

	for _, t := range wf.Tasks {
		if t.ID == "" {
			return fmt.Errorf("%w: task id cannot be empty", ErrInvalidDocument)
		}
		if _, exists := taskIDs[t.ID]; exists {
			return fmt.Errorf("%w: duplicate task id %q", ErrInvalidDocument, t.ID)
		}
		taskIDs[t.ID] = struct{}{}

		if err := checkPlaceRefs(t.ID, t.Inputs, "input"); err != nil {
			return err
		}
		if err := checkPlaceRefs(t.ID, t.Outputs, "output"); err != nil {
			return err
		}
		if err := checkPlaceRefs(t.ID, t.Inhibits, "inhibits"); err != nil {
			return err
		}
		if err := checkPlaceRefs(t.ID, t.Resets, "resets"); err != nil {
			return err
		}
		if err := checkPlaceRefs(t.ID, t.Reads, "reads"); err != nil {
			return err
		}
		for resID, amount := range t.Requires {
			if _, ok := placeIDs[resID]; !ok {
				return fmt.Errorf("%w: task %s requires missing resource %q", ErrInvalidDocument, t.ID, resID)
			}
			if amount <= 0 {
				return fmt.Errorf("%w: task %s requires non-positive amount of %q", ErrInvalidDocument, t.ID, resID)
			}
		}
		if t.Guard != nil && t.Guard.Name == "" {
			return fmt.Errorf("%w: task %s has a guard with an empty name", ErrInvalidDocument, t.ID)
		}
	}

	for _, g := range wf.Gateways {
		if g.ID == "" {
			return fmt.Errorf("%w: gateway id cannot be empty", ErrInvalidDocument)
		}
		if _, exists := gatewayIDs[g.ID]; exists {
			return fmt.Errorf("%w: duplicate gateway id %q", ErrInvalidDocument, g.ID)
		}
		gatewayIDs[g.ID] = struct{}{}

		if g.Type != "barrier" {
			return fmt.Errorf("%w: gateway %s has unsupported type %q", ErrInvalidDocument, g.ID, g.Type)
		}
		if len(g.WaitFor) == 0 {
			return fmt.Errorf("%w: gateway %s has no wait_for entries", ErrInvalidDocument, g.ID)
		}
		for _, wait := range g.WaitFor {
			if _, ok := taskIDs[wait]; !ok {
				return fmt.Errorf("%w: gateway %s references missing task %q", ErrInvalidDocument, g.ID, wait)
			}
		}
	}

	seenGuardDefault := make(map[string]struct{})
	for _, gd := range wf.Guards {
		if gd.Name == "" {
			return fmt.Errorf("%w: guard default entry has an empty name", ErrInvalidDocument)
		}
		if _, exists := seenGuardDefault[gd.Name]; exists {
			return fmt.Errorf("%w: duplicate guard default for %q", ErrInvalidDocument, gd.Name)
		}
		seenGuardDefault[gd.Name] = struct{}{}
	}

	return nil
}
